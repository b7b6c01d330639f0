package systems

import (
	"math"

	"github.com/DipFlip/farmpire-survivors/components"
)

// NormalizeAngle wraps angle to [-pi, pi].
func NormalizeAngle(a float32) float32 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// SmoothFactor converts an exponential rate into a per-step blend
// factor that is independent of the tick length: applying two steps
// of dt/2 lands where one step of dt would.
func SmoothFactor(rate, dt float32) float32 {
	return 1 - float32(math.Exp(float64(-rate*dt)))
}

// OrbitStep advances an equipped item along its orbit around the
// holder. faceX/faceY is the desired facing direction: toward the
// current target when one is acquired, otherwise the holder's last
// movement direction. The item's orbit angle turns toward
// facing+offset along the shortest arc, and its position eases toward
// the orbit point with exponential smoothing.
func OrbitStep(pos *components.Position, holder components.Position, h *components.Holdable, faceX, faceY, radius, smoothing, faceRate, dt float32) {
	if faceX != 0 || faceY != 0 {
		facing := float32(math.Atan2(float64(faceY), float64(faceX)))
		desired := NormalizeAngle(facing + h.OrbitOffset)
		delta := NormalizeAngle(desired - h.OrbitAngle)
		h.OrbitAngle = NormalizeAngle(h.OrbitAngle + delta*SmoothFactor(faceRate, dt))
	}

	orbitX := holder.X + radius*float32(math.Cos(float64(h.OrbitAngle)))
	orbitY := holder.Y + radius*float32(math.Sin(float64(h.OrbitAngle)))

	k := SmoothFactor(smoothing, dt)
	pos.X += (orbitX - pos.X) * k
	pos.Y += (orbitY - pos.Y) * k
}

// NearestTarget picks the closest neighbor that carries the required
// capabilities and passes the per-behavior validity predicate. Ties
// resolve by scan enumeration order.
func NearestTarget(neighbors []Neighbor, want components.Caps, caps func(Neighbor) components.Caps, valid func(Neighbor) bool) (Neighbor, bool) {
	var best Neighbor
	bestDist := float32(math.MaxFloat32)
	found := false

	for _, n := range neighbors {
		if !caps(n).Has(want) {
			continue
		}
		if !valid(n) {
			continue
		}
		if n.DistSq < bestDist {
			best = n
			bestDist = n.DistSq
			found = true
		}
	}
	return best, found
}
