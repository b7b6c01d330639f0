package systems

import (
	"testing"

	"github.com/DipFlip/farmpire-survivors/components"
)

// ---------- Plant ----------

func newTestPlant() components.Plant {
	return components.Plant{
		Level:         0,
		MaxLevel:      4,
		WaterPerLevel: 50,
		HarvestDrop:   3,
		DropToLevel:   1,
	}
}

func TestReceiveWater_BelowThresholdAccumulates(t *testing.T) {
	p := newTestPlant()

	if ev := ReceiveWater(&p, 30); ev != GrowthNone {
		t.Errorf("expected no event below threshold, got %v", ev)
	}
	if p.Water != 30 {
		t.Errorf("expected water 30, got %f", p.Water)
	}
	if p.Level != 0 {
		t.Errorf("level must not change below threshold, got %d", p.Level)
	}
}

func TestReceiveWater_CrossingThresholdDropsOverflow(t *testing.T) {
	p := newTestPlant()

	ReceiveWater(&p, 30)
	if ev := ReceiveWater(&p, 25); ev != GrowthLevelUp {
		t.Errorf("expected level-up event, got %v", ev)
	}
	if p.Level != 1 {
		t.Errorf("expected level 1, got %d", p.Level)
	}
	// Overflow above the threshold is dropped, not carried forward.
	if p.Water != 0 {
		t.Errorf("expected water reset to 0, got %f", p.Water)
	}
}

func TestReceiveWater_MaxLevelEntersHarvest(t *testing.T) {
	p := newTestPlant()
	p.Level = p.MaxLevel - 1

	if ev := ReceiveWater(&p, 50); ev != GrowthHarvestReady {
		t.Errorf("expected harvest-ready event, got %v", ev)
	}
	if !p.HarvestReady {
		t.Error("plant should be harvest-ready at max level")
	}

	// No further growth until the harvest is collected.
	if ev := ReceiveWater(&p, 50); ev != GrowthNone {
		t.Errorf("harvest-ready plant must refuse water, got %v", ev)
	}
	if p.Water != 0 {
		t.Errorf("refused water must not accumulate, got %f", p.Water)
	}
}

func TestResumeAfterHarvest_DropsToConfiguredLevel(t *testing.T) {
	p := newTestPlant()
	p.Level = p.MaxLevel
	p.HarvestReady = true
	p.Water = 12

	ResumeAfterHarvest(&p)

	if p.Level != 1 {
		t.Errorf("expected drop to level 1, got %d", p.Level)
	}
	if p.HarvestReady {
		t.Error("plant should grow again after harvest")
	}
	if p.Water != 0 {
		t.Errorf("water should reset after harvest, got %f", p.Water)
	}
	if !CanWater(&p) {
		t.Error("resumed plant must accept water")
	}
}

// ---------- Tree ----------

func TestReceiveChop_FallsExactlyOnce(t *testing.T) {
	tree := components.Tree{ChopRequired: 100}

	if ReceiveChop(&tree, 40) {
		t.Error("tree fell below threshold")
	}
	if ReceiveChop(&tree, 40) {
		t.Error("tree fell below threshold")
	}
	if !ReceiveChop(&tree, 40) {
		t.Error("expected tree to fall at threshold")
	}
	if !tree.Fallen {
		t.Error("tree should be fallen")
	}

	// Post-fall chop is a no-op and never signals again.
	if ReceiveChop(&tree, 100) {
		t.Error("fallen tree signalled a second fall")
	}
	if tree.Chop != tree.ChopRequired {
		t.Errorf("chop accumulator should clamp at threshold, got %f", tree.Chop)
	}
}

// ---------- DigSite ----------

func TestDigSite_SeedBeforeDugHasNoEffect(t *testing.T) {
	d := components.DigSite{DigRequired: 40, SeedsRequired: 3}

	if ev := ReceiveSeed(&d, 3); ev != GrowthNone {
		t.Errorf("seeding an undug site must be a no-op, got %v", ev)
	}
	if d.Seeds != 0 {
		t.Errorf("seeds accumulated before dug, got %f", d.Seeds)
	}
	if d.Phase != components.DigUndug {
		t.Errorf("expected Undug, got %v", d.Phase)
	}
}

func TestDigSite_DigThenSeedSequence(t *testing.T) {
	d := components.DigSite{DigRequired: 40, SeedsRequired: 3}

	if ev := ReceiveDig(&d, 25); ev != GrowthNone {
		t.Errorf("unexpected event below dig threshold: %v", ev)
	}
	if d.Phase != components.DigUndug {
		t.Errorf("expected Undug below threshold, got %v", d.Phase)
	}

	if ev := ReceiveDig(&d, 25); ev != GrowthDug {
		t.Errorf("expected Dug transition, got %v", ev)
	}
	if d.Phase != components.DigDug {
		t.Errorf("expected Dug, got %v", d.Phase)
	}

	// Further digging is a no-op.
	if ev := ReceiveDig(&d, 10); ev != GrowthNone {
		t.Errorf("digging a dug site must be a no-op, got %v", ev)
	}

	ReceiveSeed(&d, 2)
	if d.Phase != components.DigDug {
		t.Errorf("expected still Dug below seed threshold, got %v", d.Phase)
	}
	if ev := ReceiveSeed(&d, 1); ev != GrowthPlanted {
		t.Errorf("expected Planted transition, got %v", ev)
	}
	if d.Phase != components.DigPlanted {
		t.Errorf("expected terminal Planted, got %v", d.Phase)
	}

	// Terminal: nothing accepts progress anymore.
	if ev := ReceiveSeed(&d, 5); ev != GrowthNone {
		t.Errorf("planted site accepted seeds: %v", ev)
	}
	if ev := ReceiveDig(&d, 5); ev != GrowthNone {
		t.Errorf("planted site accepted digging: %v", ev)
	}
}
