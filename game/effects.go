package game

import (
	"log/slog"

	"github.com/mlange-42/ark/ecs"

	"github.com/DipFlip/farmpire-survivors/components"
	"github.com/DipFlip/farmpire-survivors/systems"
	"github.com/DipFlip/farmpire-survivors/telemetry"
)

// updateEffects expires transient visual markers and eases holdable
// pulse scales back to rest.
func (g *Game) updateEffects() {
	query := g.effectFilter.Query()
	for query.Next() {
		effect := query.Get()
		effect.TTL--
		if effect.TTL <= 0 {
			g.toRemove = append(g.toRemove, query.Entity())
		}
	}

	ease := systems.SmoothFactor(pulseEaseRate, g.dt)
	itemQuery := g.holdableFilter.Query()
	for itemQuery.Next() {
		_, h := itemQuery.Get()
		if h.PulseUntil == 0 {
			continue
		}
		if g.tick >= h.PulseUntil {
			h.Scale = 1
			h.PulseUntil = 0
			continue
		}
		h.Scale += (1 - h.Scale) * ease
	}
}

// pulseEaseRate is the exponential rate at which a pulsed item scale
// returns to 1.
const pulseEaseRate = 10.0

// cleanup applies all structural removals deferred during the tick.
func (g *Game) cleanup() {
	for _, e := range g.toRemove {
		if !g.world.Alive(e) {
			continue
		}
		g.removeEntity(e)
	}
	g.toRemove = g.toRemove[:0]
}

// removeEntity picks the archetype mapper that owns the entity.
// Removal goes through the same mapper that spawned it.
func (g *Game) removeEntity(e ecs.Entity) {
	switch {
	case g.collectableMap.Has(e):
		g.collectableMapper.Remove(e)
	case g.treeMap.Has(e):
		g.treeMapper.Remove(e)
	case g.digSiteMap.Has(e):
		g.digSiteMapper.Remove(e)
	case g.plantMap.Has(e):
		g.plantMapper.Remove(e)
	case g.stationMap.Has(e):
		g.stationMapper.Remove(e)
	case g.projectileMap.Has(e):
		g.projectileMapper.Remove(e)
	default:
		g.effectMapper.Remove(e)
	}
}

// flushTelemetry emits the stats window when due.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.tick) {
		return
	}

	stats := g.collector.Flush(g.tick, g.worldCounts())

	if g.logStats {
		slog.Info("stats window", "stats", stats)
		g.perf.Stats().LogStats()
	}
	if g.output != nil {
		if err := g.output.WriteTelemetry(stats); err != nil {
			Logf("telemetry write failed: %v", err)
		}
		if err := g.output.WritePerf(g.perf.Stats(), g.tick); err != nil {
			Logf("perf write failed: %v", err)
		}
	}
}

// worldCounts samples the population snapshot that goes into each
// stats window.
func (g *Game) worldCounts() telemetry.WorldCounts {
	var counts telemetry.WorldCounts

	treeQuery := g.treeFilter.Query()
	for treeQuery.Next() {
		_, tree := treeQuery.Get()
		counts.Trees++
		if tree.Fallen {
			counts.FallenTrees++
		}
	}
	plantQuery := g.plantFilter.Query()
	for plantQuery.Next() {
		counts.Plants++
	}
	collQuery := g.collectableFilter.Query()
	for collQuery.Next() {
		counts.Collectables++
	}
	itemQuery := g.holdableFilter.Query()
	for itemQuery.Next() {
		_, h := itemQuery.Get()
		if h.State == components.ItemEquipped {
			counts.HeldItems++
		}
	}
	var delivered, required int
	stationQuery := g.stationFilter.Query()
	for stationQuery.Next() {
		_, station := stationQuery.Get()
		current, total := systems.StationProgress(station)
		delivered += current
		required += total
	}
	if required > 0 {
		counts.StationProgress = float64(delivered) / float64(required)
	}

	return counts
}
