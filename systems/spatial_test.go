package systems

import (
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/DipFlip/farmpire-survivors/components"
)

func TestSpatialGrid_QueryRadius(t *testing.T) {
	world := ecs.NewWorld()
	posMap := ecs.NewMap1[components.Position](world)

	grid := NewSpatialGrid(400, 400, 64)

	near := posMap.NewEntity(&components.Position{X: 110, Y: 100})
	far := posMap.NewEntity(&components.Position{X: 300, Y: 300})
	self := posMap.NewEntity(&components.Position{X: 100, Y: 100})

	grid.Insert(near, 110, 100)
	grid.Insert(far, 300, 300)
	grid.Insert(self, 100, 100)

	found := grid.QueryRadiusInto(nil, 100, 100, 50, self, posMap)

	if len(found) != 1 {
		t.Fatalf("expected 1 neighbor, got %d", len(found))
	}
	if found[0].E != near {
		t.Error("wrong neighbor returned")
	}
	if found[0].DistSq != 100 {
		t.Errorf("expected distSq 100, got %f", found[0].DistSq)
	}
}

func TestSpatialGrid_ExcludesSelf(t *testing.T) {
	world := ecs.NewWorld()
	posMap := ecs.NewMap1[components.Position](world)
	grid := NewSpatialGrid(400, 400, 64)

	self := posMap.NewEntity(&components.Position{X: 50, Y: 50})
	grid.Insert(self, 50, 50)

	if found := grid.QueryRadiusInto(nil, 50, 50, 30, self, posMap); len(found) != 0 {
		t.Errorf("query returned the excluded entity, %d results", len(found))
	}
}

func TestSpatialGrid_EdgePositionsClamp(t *testing.T) {
	world := ecs.NewWorld()
	posMap := ecs.NewMap1[components.Position](world)
	grid := NewSpatialGrid(400, 400, 64)

	// Out-of-bounds insert clamps to the edge cell rather than
	// wrapping to the far side.
	e := posMap.NewEntity(&components.Position{X: -10, Y: -10})
	grid.Insert(e, -10, -10)

	found := grid.QueryRadiusInto(nil, 5, 5, 40, ecs.Entity{}, posMap)
	if len(found) != 1 {
		t.Fatalf("expected clamped entity found near origin, got %d", len(found))
	}

	farSide := grid.QueryRadiusInto(nil, 395, 395, 40, ecs.Entity{}, posMap)
	if len(farSide) != 0 {
		t.Error("bounded grid leaked an entity across the world")
	}
}

func TestSpatialGrid_ClearEmptiesCells(t *testing.T) {
	world := ecs.NewWorld()
	posMap := ecs.NewMap1[components.Position](world)
	grid := NewSpatialGrid(400, 400, 64)

	e := posMap.NewEntity(&components.Position{X: 100, Y: 100})
	grid.Insert(e, 100, 100)
	grid.Clear()

	if found := grid.QueryRadiusInto(nil, 100, 100, 50, ecs.Entity{}, posMap); len(found) != 0 {
		t.Errorf("cleared grid returned %d results", len(found))
	}
}
