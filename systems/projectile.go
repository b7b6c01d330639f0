package systems

import (
	"math"

	"github.com/DipFlip/farmpire-survivors/components"
)

// ProjectileStep moves an active projectile toward the target
// position and reports whether it arrived within its hit radius this
// tick. A projectile that would overshoot snaps to the target and
// counts as a hit.
func ProjectileStep(pos *components.Position, p *components.Projectile, target components.Position, dt float32) bool {
	dx := target.X - pos.X
	dy := target.Y - pos.Y
	dist := float32(math.Sqrt(float64(dx*dx + dy*dy)))

	step := p.Speed * dt
	if dist <= p.HitRadius || dist <= step {
		pos.X = target.X
		pos.Y = target.Y
		return true
	}

	pos.X += dx / dist * step
	pos.Y += dy / dist * step
	return false
}
