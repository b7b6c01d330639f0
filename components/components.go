// Package components defines ECS components for the farm simulation.
package components

// Position represents an entity's world position.
type Position struct {
	X, Y float32
}

// Velocity represents an entity's velocity.
type Velocity struct {
	X, Y float32
}

// Caps is a capability bitmask carried by world entities.
// Systems match targets by capability instead of string tags.
type Caps uint16

const (
	CapHoldable Caps = 1 << iota // can be picked up by a holder
	CapCollectable
	CapChoppable
	CapWaterable
	CapDiggable
	CapHittable
	CapDepositTarget
	CapRefill
)

// Has reports whether all bits in f are set.
func (c Caps) Has(f Caps) bool {
	return c&f == f
}

// ItemType identifies a kind of collectable resource.
type ItemType string

const (
	ItemWood  ItemType = "wood"
	ItemStone ItemType = "stone"
	ItemCrop  ItemType = "crop"
)

// HitKind classifies what a weapon or melee tool delivers on contact.
// The target's own mutation method (ReceiveChop, ReceiveWater, ...)
// interprets the amount.
type HitKind uint8

const (
	HitDamage HitKind = iota
	HitChop
	HitWater
	HitDig
	HitSeed
)
