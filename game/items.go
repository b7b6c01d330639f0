package game

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/DipFlip/farmpire-survivors/components"
	"github.com/DipFlip/farmpire-survivors/config"
	"github.com/DipFlip/farmpire-survivors/systems"
	"github.com/DipFlip/farmpire-survivors/telemetry"
)

// updatePickups equips ground items that lie within a holder's pickup
// radius, and handles the drop key by shedding everything the holder
// carries.
func (g *Game) updatePickups() {
	query := g.farmerFilter.Query()
	for query.Next() {
		holderEntity := query.Entity()
		pos, _, holder, _ := query.Get()

		if g.dropHeld && len(holder.Slots) > 0 {
			for len(holder.Slots) > 0 {
				g.dropItem(holder, len(holder.Slots)-1)
			}
			continue
		}

		if len(holder.Slots) >= holder.Capacity {
			continue
		}

		g.scanScratch = g.spatialGrid.QueryRadiusInto(g.scanScratch[:0], pos.X, pos.Y, holder.PickupRadius, holderEntity, g.posMap)
		for _, n := range g.scanScratch {
			if len(holder.Slots) >= holder.Capacity {
				break
			}
			if !g.holdableMap.Has(n.E) {
				continue
			}
			h := g.holdableMap.Get(n.E)
			if h.State != components.ItemPickup {
				continue
			}
			g.equip(holder, holderEntity, n.E, h)
		}
	}
	g.dropHeld = false
}

func (g *Game) equip(holder *components.Holder, holderEntity, item ecs.Entity, h *components.Holdable) {
	cfg := config.Cfg()

	h.State = components.ItemEquipped
	h.Holder = holderEntity
	h.HoverY = 0
	h.Scale = float32(cfg.Orbit.PulseScale)
	h.PulseUntil = g.tick + int64(cfg.Orbit.PulseSeconds/cfg.World.DT)

	holder.Slots = append(holder.Slots, item)
	g.reassignOrbitOffsets(holder)
	g.sound.Play("collect")
}

// dropItem returns the item in the given slot to the ground at its
// current position. Dropping a basket spills its contents and cancels
// any pulls still in flight.
func (g *Game) dropItem(holder *components.Holder, slot int) {
	item := holder.Slots[slot]
	holder.Slots = append(holder.Slots[:slot], holder.Slots[slot+1:]...)
	g.reassignOrbitOffsets(holder)

	if !g.world.Alive(item) {
		return
	}
	h := g.holdableMap.Get(item)
	h.State = components.ItemPickup
	h.Holder = ecs.Entity{}
	h.HasTarget = false
	h.HoverY = h.BaseHoverY
	h.Scale = 1
	h.PulseUntil = 0

	if g.collectorMap.Has(item) {
		g.spillCollector(g.collectorMap.Get(item))
	}
}

// spillCollector cancels a dropped basket's in-flight pulls; the
// items glide back to where they came from. Banked inventory stays in
// the basket.
func (g *Game) spillCollector(c *components.Collector) {
	c.IsDocked = false
	c.Docked = ecs.Entity{}
	for _, e := range systems.CollectorRelease(c) {
		if g.world.Alive(e) && g.collectableMap.Has(e) {
			systems.CancelCollection(g.collectableMap.Get(e), g.posMap.Get(e))
			g.collector.Record(telemetry.Event{Type: telemetry.EventCollectCancelled, Tick: g.tick})
		}
	}
}

// reassignOrbitOffsets spreads the holder's items across evenly spaced
// orbit slots centered on the facing direction.
func (g *Game) reassignOrbitOffsets(holder *components.Holder) {
	n := len(holder.Slots)
	for i, item := range holder.Slots {
		if !g.world.Alive(item) || !g.holdableMap.Has(item) {
			continue
		}
		h := g.holdableMap.Get(item)
		h.OrbitOffset = (float32(i) - float32(n-1)/2) * orbitSlotSpacing
	}
}

// updateHoldables advances equipped item orbits and re-runs the target
// scan every tick so a better candidate immediately steals the slot.
func (g *Game) updateHoldables() {
	cfg := config.Cfg()
	radius := float32(cfg.Orbit.Radius)
	smoothing := float32(cfg.Orbit.Smoothing)
	faceRate := float32(cfg.Orbit.FaceRate)

	query := g.holdableFilter.Query()
	for query.Next() {
		item := query.Entity()
		pos, h := query.Get()

		if h.State != components.ItemEquipped {
			continue
		}
		if !g.world.Alive(h.Holder) || !g.holderMap.Has(h.Holder) {
			// Holder vanished; the item falls where it is.
			h.State = components.ItemPickup
			h.Holder = ecs.Entity{}
			h.HasTarget = false
			h.HoverY = h.BaseHoverY
			if g.collectorMap.Has(item) {
				g.spillCollector(g.collectorMap.Get(item))
			}
			continue
		}

		holderPos := *g.posMap.Get(h.Holder)
		holder := g.holderMap.Get(h.Holder)
		systems.OrbitStep(pos, holderPos, h, holder.LastMoveX, holder.LastMoveY, radius, smoothing, faceRate, g.dt)

		g.rescan(item, pos, h)
	}
}

// rescan finds the nearest valid target for an equipped tool. The scan
// runs from the tool's own position, so the current orbit slot decides
// what is in reach.
func (g *Game) rescan(item ecs.Entity, pos *components.Position, h *components.Holdable) {
	valid := g.targetValidator(item)
	if valid == nil {
		h.HasTarget = false
		return
	}

	g.scanScratch = g.spatialGrid.QueryRadiusInto(g.scanScratch[:0], pos.X, pos.Y, h.ScanRadius, item, g.posMap)
	best, ok := systems.NearestTarget(g.scanScratch, h.TargetCaps, g.neighborCaps, valid)
	if !ok {
		h.HasTarget = false
		return
	}
	h.Target = best.E
	h.HasTarget = true
}

func (g *Game) neighborCaps(n systems.Neighbor) components.Caps {
	if g.capsMap.Has(n.E) {
		return *g.capsMap.Get(n.E)
	}
	return 0
}

// targetValidator returns the per-behavior acceptance check for a
// tool, or nil for tools that do not scan.
func (g *Game) targetValidator(item ecs.Entity) func(systems.Neighbor) bool {
	switch {
	case g.meleeMap.Has(item):
		m := g.meleeMap.Get(item)
		if m.Deliver == components.HitChop {
			return func(n systems.Neighbor) bool {
				return g.treeMap.Has(n.E) && systems.CanChop(g.treeMap.Get(n.E))
			}
		}
		return func(n systems.Neighbor) bool {
			return g.digSiteMap.Has(n.E) && systems.CanDig(g.digSiteMap.Get(n.E))
		}

	case g.weaponMap.Has(item):
		w := g.weaponMap.Get(item)
		if w.Deliver == components.HitWater {
			return func(n systems.Neighbor) bool {
				return g.plantMap.Has(n.E) && systems.CanWater(g.plantMap.Get(n.E))
			}
		}
		return func(n systems.Neighbor) bool {
			return g.digSiteMap.Has(n.E) && systems.CanSeed(g.digSiteMap.Get(n.E))
		}

	case g.collectorMap.Has(item):
		c := g.collectorMap.Get(item)
		return func(n systems.Neighbor) bool {
			if systems.CollectorFree(c) <= 0 || !g.collectableMap.Has(n.E) {
				return false
			}
			coll := g.collectableMap.Get(n.E)
			return coll.State == components.CollectIdle && coll.Settled()
		}
	}
	return nil
}
