package systems

import "github.com/DipFlip/farmpire-survivors/components"

// GrowthEvent signals a stage transition produced by a progress
// receiver. The game layer maps events to spawns, effects and
// telemetry.
type GrowthEvent uint8

const (
	GrowthNone GrowthEvent = iota
	GrowthLevelUp
	GrowthHarvestReady
	GrowthDug
	GrowthPlanted
)

// CanWater reports whether the plant still accepts water: not waiting
// on an uncollected harvest and below max level.
func CanWater(p *components.Plant) bool {
	return !p.HarvestReady && p.Level < p.MaxLevel
}

// ReceiveWater accumulates water and advances the plant level when the
// per-level threshold is crossed. Overflow above the threshold is
// dropped; the accumulator always restarts at zero.
func ReceiveWater(p *components.Plant, amount float32) GrowthEvent {
	if amount <= 0 || !CanWater(p) {
		return GrowthNone
	}

	p.Water += amount
	if p.Water < p.WaterPerLevel {
		return GrowthNone
	}

	p.Water = 0
	p.Level++

	if p.Level >= p.MaxLevel {
		p.HarvestReady = true
		return GrowthHarvestReady
	}
	return GrowthLevelUp
}

// ResumeAfterHarvest drops a harvested plant back to its configured
// regrow level. Called once all harvest items have been collected.
func ResumeAfterHarvest(p *components.Plant) {
	p.HarvestReady = false
	p.HarvestItems = nil
	p.Level = p.DropToLevel
	p.Water = 0
}

// CanChop reports whether the tree still accepts chop damage.
func CanChop(t *components.Tree) bool {
	return !t.Fallen
}

// ReceiveChop accumulates chop damage. Returns true exactly once, on
// the tick the tree falls; chopping a fallen tree is a no-op.
func ReceiveChop(t *components.Tree, amount float32) bool {
	if amount <= 0 || t.Fallen {
		return false
	}

	t.Chop += amount
	if t.Chop < t.ChopRequired {
		return false
	}

	t.Chop = t.ChopRequired
	t.Fallen = true
	return true
}

// CanDig reports whether the site still accepts digging.
func CanDig(d *components.DigSite) bool {
	return d.Phase == components.DigUndug
}

// CanSeed reports whether the site accepts seeds. Seeding has no
// effect until the site is fully dug.
func CanSeed(d *components.DigSite) bool {
	return d.Phase == components.DigDug
}

// ReceiveDig accumulates dig progress on an undug site. Crossing the
// threshold moves the site to the Dug phase; the seed accumulator
// starts at zero regardless of dig overflow.
func ReceiveDig(d *components.DigSite, amount float32) GrowthEvent {
	if amount <= 0 || !CanDig(d) {
		return GrowthNone
	}

	d.Dig += amount
	if d.Dig < d.DigRequired {
		return GrowthNone
	}

	d.Dig = d.DigRequired
	d.Phase = components.DigDug
	return GrowthDug
}

// ReceiveSeed accumulates seeds on a dug site. Reaching the threshold
// makes the site terminal; the caller spawns exactly one plant.
func ReceiveSeed(d *components.DigSite, amount float32) GrowthEvent {
	if amount <= 0 || !CanSeed(d) {
		return GrowthNone
	}

	d.Seeds += amount
	if d.Seeds < d.SeedsRequired {
		return GrowthNone
	}

	d.Seeds = d.SeedsRequired
	d.Phase = components.DigPlanted
	return GrowthPlanted
}
