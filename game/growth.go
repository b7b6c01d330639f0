package game

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/DipFlip/farmpire-survivors/components"
	"github.com/DipFlip/farmpire-survivors/systems"
)

// updateHarvests drops crop items from harvest-ready plants and
// resumes growth once every dropped item has been collected.
func (g *Game) updateHarvests() {
	type drop struct {
		plant ecs.Entity
		x, y  float32
		count int
	}
	var drops []drop

	query := g.plantFilter.Query()
	for query.Next() {
		pos, plant := query.Get()
		if !plant.HarvestReady {
			continue
		}

		// Nothing to drop means nothing to wait for.
		if plant.HarvestDrop <= 0 {
			systems.ResumeAfterHarvest(plant)
			continue
		}

		if len(plant.HarvestItems) == 0 {
			drops = append(drops, drop{plant: query.Entity(), x: pos.X, y: pos.Y, count: plant.HarvestDrop})
			continue
		}

		collected := true
		for _, e := range plant.HarvestItems {
			if g.world.Alive(e) && g.collectableMap.Has(e) {
				collected = false
				break
			}
		}
		if collected {
			systems.ResumeAfterHarvest(plant)
			plant.HarvestItems = plant.HarvestItems[:0]
		}
	}

	for _, d := range drops {
		items := g.spawnScatter(d.x, d.y, components.ItemCrop, d.count, harvestScatterRadius)
		if g.world.Alive(d.plant) && g.plantMap.Has(d.plant) {
			g.plantMap.Get(d.plant).HarvestItems = items
		}
	}
}

// harvestScatterRadius is how far harvested crops land from the plant.
const harvestScatterRadius = 40.0

// updateRefills tops up watering-can reserves near a well.
func (g *Game) updateRefills() {
	wellQuery := g.wellFilter.Query()
	for wellQuery.Next() {
		wellPos, well := wellQuery.Get()

		toolQuery := g.weaponFilter.Query()
		for toolQuery.Next() {
			toolPos, _, w := toolQuery.Get()
			if w.Deliver != components.HitWater {
				continue
			}
			item := toolQuery.Entity()
			if !g.poolMap.Has(item) {
				continue
			}
			dx := toolPos.X - wellPos.X
			dy := toolPos.Y - wellPos.Y
			if dx*dx+dy*dy > well.Radius*well.Radius {
				continue
			}
			systems.AddResource(g.poolMap.Get(item), well.Rate*g.dt)
		}
	}
}
