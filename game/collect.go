package game

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/DipFlip/farmpire-survivors/components"
	"github.com/DipFlip/farmpire-survivors/config"
	"github.com/DipFlip/farmpire-survivors/systems"
	"github.com/DipFlip/farmpire-survivors/telemetry"
)

// updateCollectors runs basket logic: reconcile the in-flight ledger,
// begin new pulls on the pull timer, track station docking and drip
// deposits into the docked station.
func (g *Game) updateCollectors() {
	query := g.collectorFilter.Query()
	for query.Next() {
		basket := query.Entity()
		pos, h, c := query.Get()

		g.reconcileInFlight(basket, c)

		if h.State != components.ItemEquipped {
			c.IsDocked = false
			c.Docked = ecs.Entity{}
			continue
		}

		g.updateDocking(pos, c)

		c.PullIn -= g.dt
		if c.PullIn <= 0 {
			c.PullIn = c.PullDelay
			g.tryPull(basket, h, c)
		}

		if c.IsDocked {
			c.DepositIn -= g.dt
			if c.DepositIn <= 0 {
				c.DepositIn = c.DepositEvery
				g.tryDeposit(c)
			}
		}
	}
}

// reconcileInFlight drops ledger entries whose collectable died or was
// claimed away. Keeps capacity reservations honest.
func (g *Game) reconcileInFlight(basket ecs.Entity, c *components.Collector) {
	var stale []ecs.Entity
	for e := range c.InFlight {
		if !g.world.Alive(e) || !g.collectableMap.Has(e) {
			stale = append(stale, e)
			continue
		}
		coll := g.collectableMap.Get(e)
		if coll.State != components.CollectInFlight || coll.Collector != basket {
			stale = append(stale, e)
		}
	}
	for _, e := range stale {
		systems.CollectorAbort(c, e)
	}
}

// updateDocking latches onto the nearest station whose dock radius
// covers the basket, or clears the latch when none does.
func (g *Game) updateDocking(pos *components.Position, c *components.Collector) {
	if c.IsDocked && g.world.Alive(c.Docked) && g.stationMap.Has(c.Docked) {
		station := g.stationMap.Get(c.Docked)
		sp := g.posMap.Get(c.Docked)
		dx, dy := sp.X-pos.X, sp.Y-pos.Y
		if dx*dx+dy*dy <= station.DockRadius*station.DockRadius && !systems.StationComplete(station) {
			return
		}
	}
	c.IsDocked = false
	c.Docked = ecs.Entity{}

	query := g.stationFilter.Query()
	for query.Next() {
		sp, station := query.Get()
		if systems.StationComplete(station) {
			continue
		}
		dx, dy := sp.X-pos.X, sp.Y-pos.Y
		if dx*dx+dy*dy <= station.DockRadius*station.DockRadius {
			c.Docked = query.Entity()
			c.IsDocked = true
			// Drain the rest of the query to release the lock.
			for query.Next() {
			}
			return
		}
	}
}

// tryPull starts a flight for the basket's current scan target.
func (g *Game) tryPull(basket ecs.Entity, h *components.Holdable, c *components.Collector) {
	if !h.HasTarget || !g.world.Alive(h.Target) || !g.collectableMap.Has(h.Target) {
		return
	}
	coll := g.collectableMap.Get(h.Target)
	if coll.State != components.CollectIdle || !coll.Settled() {
		return
	}
	if !systems.CollectorBeginPull(c, h.Target, coll.Type) {
		return
	}

	itemPos := g.posMap.Get(h.Target)
	coll.State = components.CollectInFlight
	coll.Collector = basket
	coll.FromX = itemPos.X
	coll.FromY = itemPos.Y
	coll.Progress = 0
	coll.FlightTime = float32(config.Cfg().Tools.Basket.FlightTime)

	g.collector.Record(telemetry.Event{Type: telemetry.EventCollectStarted, Tick: g.tick, Item: coll.Type})
}

// tryDeposit moves one unit of the first needed type into the docked
// station. All-or-nothing stations get the full remaining need offered
// at once, since they refuse anything less.
func (g *Game) tryDeposit(c *components.Collector) {
	if !g.world.Alive(c.Docked) || !g.stationMap.Has(c.Docked) {
		c.IsDocked = false
		c.Docked = ecs.Entity{}
		return
	}
	station := g.stationMap.Get(c.Docked)

	t, ok := systems.CollectorFirstNeeded(c, station)
	if !ok {
		return
	}
	offer := 1
	if !station.AcceptPartial {
		offer = c.Counts[t]
		if needed := systems.StationNeeds(station, t); offer > needed {
			offer = needed
		}
	}

	accepted, completed := systems.StationReceive(station, t, offer)
	for i := 0; i < accepted; i++ {
		systems.CollectorTakeOne(c, t)
		g.collector.Record(telemetry.NewDepositEvent(g.tick, t))
	}
	if accepted > 0 {
		g.sound.Play("deposit")
	}
	if completed {
		g.collector.Record(telemetry.Event{Type: telemetry.EventStationComplete, Tick: g.tick})
		sp := g.posMap.Get(c.Docked)
		g.spawnEffect(sp.X, sp.Y, components.EffectSparkle, 0.8)
	}
}

// updateCollectables ticks settle timers and advances in-flight items
// toward their collector, banking them on arrival.
func (g *Game) updateCollectables() {
	query := g.collectableFilter.Query()
	for query.Next() {
		item := query.Entity()
		pos, coll := query.Get()

		systems.SettleTick(coll, g.dt)
		if coll.State != components.CollectInFlight {
			continue
		}

		if !g.world.Alive(coll.Collector) || !g.collectorMap.Has(coll.Collector) {
			systems.CancelCollection(coll, pos)
			g.collector.Record(telemetry.Event{Type: telemetry.EventCollectCancelled, Tick: g.tick})
			continue
		}

		collectorPos := *g.posMap.Get(coll.Collector)
		if systems.CollectableStep(coll, pos, collectorPos, g.dt) {
			c := g.collectorMap.Get(coll.Collector)
			systems.CollectorBank(c, item)
			g.collector.Record(telemetry.NewCollectBankedEvent(g.tick, coll.Type, coll.FlightTime))
			g.sound.Play("collect")
			g.toRemove = append(g.toRemove, item)
		}
	}
}
