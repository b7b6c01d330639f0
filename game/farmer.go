package game

import (
	"math"

	"github.com/DipFlip/farmpire-survivors/components"
	"github.com/DipFlip/farmpire-survivors/config"
)

// updateFarmers moves every farmer: direct key input when the player
// is steering, otherwise wandering between random waypoints. Position
// stays inside world bounds and the holder remembers the last movement
// direction so orbiting tools know which way to face.
func (g *Game) updateFarmers() {
	query := g.farmerFilter.Query()
	for query.Next() {
		pos, vel, holder, farmer := query.Get()

		mx, my := g.moveX, g.moveY
		if mx == 0 && my == 0 {
			mx, my = g.wanderStep(pos, farmer)
		} else {
			// Manual steering cancels the current waypoint.
			farmer.HasWaypoint = false
		}

		// Normalize so diagonals are not faster.
		if mag := float32(math.Hypot(float64(mx), float64(my))); mag > 1 {
			mx /= mag
			my /= mag
		}

		vel.X = mx * farmer.Speed
		vel.Y = my * farmer.Speed

		pos.X = clampf(pos.X+vel.X*g.dt, 0, g.width)
		pos.Y = clampf(pos.Y+vel.Y*g.dt, 0, g.height)

		if mx != 0 || my != 0 {
			holder.LastMoveX = mx
			holder.LastMoveY = my
		}
	}
}

// waypointArriveDist is how close counts as "reached" for a waypoint.
const waypointArriveDist = 12.0

// wanderStep returns the movement direction toward the farmer's
// current waypoint, picking a new one after the repick timer elapses.
func (g *Game) wanderStep(pos *components.Position, farmer *components.Farmer) (float32, float32) {
	if farmer.HasWaypoint {
		dx := farmer.TargetX - pos.X
		dy := farmer.TargetY - pos.Y
		dist := float32(math.Hypot(float64(dx), float64(dy)))
		if dist > waypointArriveDist {
			return dx / dist, dy / dist
		}
		farmer.HasWaypoint = false
		farmer.Repick = float32(config.Cfg().Farmer.WaypointRepick)
	}

	if farmer.Repick > 0 {
		farmer.Repick -= g.dt
		return 0, 0
	}

	farmer.TargetX, farmer.TargetY = g.randomSpot()
	farmer.HasWaypoint = true
	dx := farmer.TargetX - pos.X
	dy := farmer.TargetY - pos.Y
	dist := float32(math.Hypot(float64(dx), float64(dy)))
	if dist <= waypointArriveDist {
		farmer.HasWaypoint = false
		return 0, 0
	}
	return dx / dist, dy / dist
}
