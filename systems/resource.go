package systems

import "github.com/DipFlip/farmpire-survivors/components"

// AddResource adds amount to the pool, clamped to capacity. Returns
// the amount actually added. Negative amounts are ignored.
func AddResource(p *components.ResourcePool, amount float32) float32 {
	if amount <= 0 {
		return 0
	}
	free := p.Max - p.Current
	if amount > free {
		amount = free
	}
	p.Current += amount
	return amount
}

// ConsumeResource removes amount from the pool. Returns false and
// leaves the pool untouched when it holds less than amount.
func ConsumeResource(p *components.ResourcePool, amount float32) bool {
	if amount < 0 {
		return false
	}
	if p.Current < amount {
		return false
	}
	p.Current -= amount
	return true
}
