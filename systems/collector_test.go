package systems

import (
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/DipFlip/farmpire-survivors/components"
)

// mintEntities creates n distinct live entities for use as handles.
func mintEntities(n int) []ecs.Entity {
	world := ecs.NewWorld()
	posMap := ecs.NewMap1[components.Position](world)
	entities := make([]ecs.Entity, n)
	for i := range entities {
		entities[i] = posMap.NewEntity(&components.Position{})
	}
	return entities
}

func checkCollectorInvariants(t *testing.T, c *components.Collector) {
	t.Helper()
	sum := 0
	for _, n := range c.Counts {
		sum += n
	}
	if sum != c.Total {
		t.Errorf("total %d != sum of counts %d", c.Total, sum)
	}
	if c.Total+len(c.InFlight) > c.Capacity {
		t.Errorf("total %d + in-flight %d exceeds capacity %d", c.Total, len(c.InFlight), c.Capacity)
	}
}

func TestCollector_PullBankAccounting(t *testing.T) {
	items := mintEntities(3)
	c := components.Collector{Capacity: 2}

	if !CollectorBeginPull(&c, items[0], components.ItemWood) {
		t.Fatal("pull refused with free capacity")
	}
	if !CollectorBeginPull(&c, items[1], components.ItemStone) {
		t.Fatal("pull refused with free capacity")
	}
	checkCollectorInvariants(t, &c)

	// In-flight reservations count against capacity.
	if CollectorBeginPull(&c, items[2], components.ItemWood) {
		t.Error("pull accepted beyond capacity")
	}

	CollectorBank(&c, items[0])
	CollectorBank(&c, items[1])
	checkCollectorInvariants(t, &c)

	if c.Total != 2 {
		t.Errorf("expected total 2, got %d", c.Total)
	}
	if c.Counts[components.ItemWood] != 1 || c.Counts[components.ItemStone] != 1 {
		t.Errorf("unexpected counts: %v", c.Counts)
	}
	if CollectorFree(&c) != 0 {
		t.Errorf("expected no free capacity, got %d", CollectorFree(&c))
	}
}

func TestCollector_DuplicatePullRefused(t *testing.T) {
	items := mintEntities(1)
	c := components.Collector{Capacity: 4}

	CollectorBeginPull(&c, items[0], components.ItemWood)
	if CollectorBeginPull(&c, items[0], components.ItemWood) {
		t.Error("same item registered in-flight twice")
	}
}

func TestCollector_AbortForgetsWithoutBanking(t *testing.T) {
	items := mintEntities(1)
	c := components.Collector{Capacity: 4}

	CollectorBeginPull(&c, items[0], components.ItemWood)
	CollectorAbort(&c, items[0])
	checkCollectorInvariants(t, &c)

	if c.Total != 0 {
		t.Errorf("aborted pull changed inventory, total %d", c.Total)
	}
	// Banking an aborted item must be a no-op.
	CollectorBank(&c, items[0])
	if c.Total != 0 {
		t.Errorf("banking an unknown item changed inventory, total %d", c.Total)
	}
}

func TestCollector_ReleaseKeepsBankedInventory(t *testing.T) {
	items := mintEntities(3)
	c := components.Collector{Capacity: 4}

	CollectorBeginPull(&c, items[0], components.ItemWood)
	CollectorBank(&c, items[0])
	CollectorBeginPull(&c, items[1], components.ItemStone)
	CollectorBeginPull(&c, items[2], components.ItemStone)

	released := CollectorRelease(&c)
	if len(released) != 2 {
		t.Errorf("expected 2 released items, got %d", len(released))
	}
	if len(c.InFlight) != 0 {
		t.Errorf("in-flight not cleared: %d", len(c.InFlight))
	}
	if c.Total != 1 || c.Counts[components.ItemWood] != 1 {
		t.Errorf("banked inventory lost on release: total %d counts %v", c.Total, c.Counts)
	}
	checkCollectorInvariants(t, &c)
}

func TestCollectorTakeOne(t *testing.T) {
	items := mintEntities(2)
	c := components.Collector{Capacity: 4}
	CollectorBeginPull(&c, items[0], components.ItemWood)
	CollectorBank(&c, items[0])
	CollectorBeginPull(&c, items[1], components.ItemWood)
	CollectorBank(&c, items[1])

	if !CollectorTakeOne(&c, components.ItemWood) {
		t.Fatal("take refused with stock")
	}
	if c.Total != 1 || c.Counts[components.ItemWood] != 1 {
		t.Errorf("expected one wood left, total %d counts %v", c.Total, c.Counts)
	}
	CollectorTakeOne(&c, components.ItemWood)
	if CollectorTakeOne(&c, components.ItemWood) {
		t.Error("take succeeded on empty inventory")
	}
	if _, held := c.Counts[components.ItemWood]; held {
		t.Error("emptied type should leave the counts map")
	}
	checkCollectorInvariants(t, &c)
}

func TestCollectorFirstNeeded_FollowsRequirementOrder(t *testing.T) {
	items := mintEntities(2)
	c := components.Collector{Capacity: 4}
	CollectorBeginPull(&c, items[0], components.ItemStone)
	CollectorBank(&c, items[0])
	CollectorBeginPull(&c, items[1], components.ItemCrop)
	CollectorBank(&c, items[1])

	s := components.Station{
		Requirements: []components.Requirement{
			{Type: components.ItemWood, Required: 2},
			{Type: components.ItemStone, Required: 1},
			{Type: components.ItemCrop, Required: 1},
		},
		AcceptPartial: true,
	}

	// Wood is needed first but not held; stone is the first match.
	got, ok := CollectorFirstNeeded(&c, &s)
	if !ok || got != components.ItemStone {
		t.Errorf("expected stone, got %q ok=%v", got, ok)
	}

	StationReceive(&s, components.ItemStone, 1)
	got, ok = CollectorFirstNeeded(&c, &s)
	if !ok || got != components.ItemCrop {
		t.Errorf("expected crop after stone satisfied, got %q ok=%v", got, ok)
	}
}
