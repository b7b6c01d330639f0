package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/DipFlip/farmpire-survivors/components"
)

// FlightEase is the easing curve for collection flight: slow lift-off,
// fast arrival (quadratic ease-in).
func FlightEase(t float32) float32 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t * t
}

// SettleTick counts down the post-spawn settle timer that keeps fresh
// drops on the ground before collectors may pull them.
func SettleTick(c *components.Collectable, dt float32) {
	if c.Settle > 0 {
		c.Settle -= dt
	}
}

// CollectableStep advances an in-flight item toward the collector
// position and reports whether it arrived. The flight is an explicit
// per-tick interpolation from the recorded start point; cancelling it
// mid-way leaves the data model intact.
func CollectableStep(c *components.Collectable, pos *components.Position, collector components.Position, dt float32) bool {
	if c.FlightTime <= 0 {
		c.Progress = 1
	} else {
		c.Progress += dt / c.FlightTime
	}

	if c.Progress >= 1 {
		c.Progress = 1
		pos.X = collector.X
		pos.Y = collector.Y
		c.State = components.CollectDone
		return true
	}

	e := FlightEase(c.Progress)
	pos.X = c.FromX + (collector.X-c.FromX)*e
	pos.Y = c.FromY + (collector.Y-c.FromY)*e
	return false
}

// CancelCollection returns an in-flight item to the idle world state,
// restoring its start position. Already-collected items stay
// collected.
func CancelCollection(c *components.Collectable, pos *components.Position) {
	if c.State != components.CollectInFlight {
		return
	}
	c.State = components.CollectIdle
	c.Collector = ecs.Entity{}
	c.Progress = 0
	pos.X = c.FromX
	pos.Y = c.FromY
}
