package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/DipFlip/farmpire-survivors/components"
)

// MeleeTryHit consults the per-target cooldown ledger. A hit is
// granted when the target has no pending cooldown, and immediately
// re-arms the cooldown so the same target cannot be hit again within
// the window.
func MeleeTryHit(m *components.Melee, target ecs.Entity) bool {
	if m.NextHit == nil {
		m.NextHit = make(map[ecs.Entity]float32)
	}
	if m.NextHit[target] > 0 {
		return false
	}
	m.NextHit[target] = m.HitCooldown
	return true
}

// MeleeCooldownTick advances all per-target cooldowns and drops the
// ones that elapsed.
func MeleeCooldownTick(m *components.Melee, dt float32) {
	for e, remaining := range m.NextHit {
		remaining -= dt
		if remaining <= 0 {
			delete(m.NextHit, e)
		} else {
			m.NextHit[e] = remaining
		}
	}
}

// MeleePurge removes ledger entries for targets that no longer exist.
// Runs periodically, not every tick.
func MeleePurge(m *components.Melee, alive func(ecs.Entity) bool) {
	for e := range m.NextHit {
		if !alive(e) {
			delete(m.NextHit, e)
		}
	}
}
