package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/DipFlip/farmpire-survivors/components"
)

// CollectorFree returns remaining capacity, counting in-flight
// reservations so concurrent pulls cannot overshoot.
func CollectorFree(c *components.Collector) int {
	return c.Capacity - c.Total - len(c.InFlight)
}

// CollectorBeginPull reserves capacity for item and records it as
// in-flight. Returns false when the collector is full.
func CollectorBeginPull(c *components.Collector, item ecs.Entity, t components.ItemType) bool {
	if CollectorFree(c) <= 0 {
		return false
	}
	if c.InFlight == nil {
		c.InFlight = make(map[ecs.Entity]components.ItemType)
	}
	if _, dup := c.InFlight[item]; dup {
		return false
	}
	c.InFlight[item] = t
	return true
}

// CollectorBank moves an arrived in-flight item into the typed
// inventory. No-op for items the collector never pulled.
func CollectorBank(c *components.Collector, item ecs.Entity) {
	t, ok := c.InFlight[item]
	if !ok {
		return
	}
	delete(c.InFlight, item)
	if c.Counts == nil {
		c.Counts = make(map[components.ItemType]int)
	}
	c.Counts[t]++
	c.Total++
}

// CollectorAbort forgets an in-flight item whose collection was
// cancelled externally. Inventory is untouched.
func CollectorAbort(c *components.Collector, item ecs.Entity) {
	delete(c.InFlight, item)
}

// CollectorRelease cancels every in-flight collection, returning the
// item handles so the caller can put them back in the world. Banked
// inventory survives; this is the drop path.
func CollectorRelease(c *components.Collector) []ecs.Entity {
	if len(c.InFlight) == 0 {
		return nil
	}
	items := make([]ecs.Entity, 0, len(c.InFlight))
	for e := range c.InFlight {
		items = append(items, e)
	}
	c.InFlight = make(map[ecs.Entity]components.ItemType)
	return items
}

// CollectorTakeOne removes a single unit of t from the inventory.
// Returns false when none is held.
func CollectorTakeOne(c *components.Collector, t components.ItemType) bool {
	if c.Counts[t] <= 0 {
		return false
	}
	c.Counts[t]--
	if c.Counts[t] == 0 {
		delete(c.Counts, t)
	}
	c.Total--
	return true
}

// CollectorFirstNeeded walks the station's requirement list in order
// and returns the first type the collector can supply. Requirement
// order, not map order, keeps the choice deterministic.
func CollectorFirstNeeded(c *components.Collector, s *components.Station) (components.ItemType, bool) {
	for i := range s.Requirements {
		t := s.Requirements[i].Type
		if c.Counts[t] > 0 && StationNeeds(s, t) > 0 {
			return t, true
		}
	}
	return "", false
}
