package game

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/DipFlip/farmpire-survivors/components"
	"github.com/DipFlip/farmpire-survivors/systems"
)

var (
	colGround      = rl.NewColor(120, 160, 90, 255)
	colGroundLine  = rl.NewColor(108, 146, 80, 255)
	colTree        = rl.NewColor(34, 102, 54, 255)
	colStump       = rl.NewColor(110, 82, 48, 255)
	colPlant       = rl.NewColor(70, 170, 80, 255)
	colPlantReady  = rl.NewColor(235, 200, 60, 255)
	colDigSite     = rl.NewColor(150, 120, 80, 255)
	colDugSite     = rl.NewColor(100, 75, 45, 255)
	colStation     = rl.NewColor(90, 90, 140, 255)
	colStationDone = rl.NewColor(140, 200, 140, 255)
	colWell        = rl.NewColor(80, 140, 200, 255)
	colFarmer      = rl.NewColor(240, 220, 180, 255)
	colWood        = rl.NewColor(160, 110, 60, 255)
	colStone       = rl.NewColor(140, 140, 140, 255)
	colCrop        = rl.NewColor(230, 180, 70, 255)
	colProjectile  = rl.NewColor(120, 190, 255, 255)
)

func itemColor(t components.ItemType) rl.Color {
	switch t {
	case components.ItemWood:
		return colWood
	case components.ItemStone:
		return colStone
	default:
		return colCrop
	}
}

func toolColor(kind components.ItemKind) rl.Color {
	switch kind {
	case components.KindAxe:
		return rl.NewColor(200, 80, 60, 255)
	case components.KindShovel:
		return rl.NewColor(150, 150, 160, 255)
	case components.KindWateringCan:
		return rl.NewColor(80, 150, 220, 255)
	case components.KindSeedBag:
		return rl.NewColor(180, 150, 90, 255)
	default:
		return rl.NewColor(190, 140, 80, 255)
	}
}

// Draw renders the current world state.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(colGround)

	g.followFarmer()

	g.drawGround()
	g.drawWells()
	g.drawStations()
	g.drawDigSites()
	g.drawPlants()
	g.drawTrees()
	g.drawCollectables()
	g.drawFarmers()
	g.drawHoldables()
	g.drawProjectiles()
	g.drawEffects()

	g.drawHUD()

	rl.EndDrawing()
}

// followFarmer keeps the camera on the first farmer.
func (g *Game) followFarmer() {
	query := g.farmerFilter.Query()
	for query.Next() {
		pos, _, _, _ := query.Get()
		g.cam.Follow(pos.X, pos.Y)
		for query.Next() {
		}
		return
	}
}

// drawGround draws a faint world-space grid so movement reads.
func (g *Game) drawGround() {
	const cell = 100
	for x := float32(0); x <= g.width; x += cell {
		x1, y1 := g.cam.WorldToScreen(x, 0)
		x2, y2 := g.cam.WorldToScreen(x, g.height)
		rl.DrawLineV(rl.Vector2{X: x1, Y: y1}, rl.Vector2{X: x2, Y: y2}, colGroundLine)
	}
	for y := float32(0); y <= g.height; y += cell {
		x1, y1 := g.cam.WorldToScreen(0, y)
		x2, y2 := g.cam.WorldToScreen(g.width, y)
		rl.DrawLineV(rl.Vector2{X: x1, Y: y1}, rl.Vector2{X: x2, Y: y2}, colGroundLine)
	}
}

func (g *Game) drawWells() {
	query := g.wellFilter.Query()
	for query.Next() {
		pos, well := query.Get()
		if !g.cam.IsVisible(pos.X, pos.Y, well.Radius) {
			continue
		}
		sx, sy := g.cam.WorldToScreen(pos.X, pos.Y)
		rl.DrawCircle(int32(sx), int32(sy), 14*g.cam.Zoom, colWell)
		rl.DrawCircleLines(int32(sx), int32(sy), well.Radius*g.cam.Zoom, rl.Fade(colWell, 0.3))
	}
}

func (g *Game) drawStations() {
	query := g.stationFilter.Query()
	for query.Next() {
		pos, station := query.Get()
		if !g.cam.IsVisible(pos.X, pos.Y, station.DockRadius) {
			continue
		}
		sx, sy := g.cam.WorldToScreen(pos.X, pos.Y)
		size := 28 * g.cam.Zoom

		col := colStation
		if systems.StationComplete(station) {
			col = colStationDone
		}
		rl.DrawRectangleV(rl.Vector2{X: sx - size/2, Y: sy - size/2}, rl.Vector2{X: size, Y: size}, col)
		rl.DrawCircleLines(int32(sx), int32(sy), station.DockRadius*g.cam.Zoom, rl.Fade(col, 0.3))

		current, total := systems.StationProgress(station)
		label := fmt.Sprintf("%d/%d", current, total)
		rl.DrawText(label, int32(sx-size/2), int32(sy-size/2-14), 10, rl.White)
	}
}

func (g *Game) drawDigSites() {
	query := g.digSiteFilter.Query()
	for query.Next() {
		pos, site := query.Get()
		if !g.cam.IsVisible(pos.X, pos.Y, 20) {
			continue
		}
		sx, sy := g.cam.WorldToScreen(pos.X, pos.Y)
		col := colDigSite
		if site.Phase == components.DigDug {
			col = colDugSite
		}
		rl.DrawEllipse(int32(sx), int32(sy), 16*g.cam.Zoom, 10*g.cam.Zoom, col)
	}
}

func (g *Game) drawPlants() {
	query := g.plantFilter.Query()
	for query.Next() {
		pos, plant := query.Get()
		if !g.cam.IsVisible(pos.X, pos.Y, 20) {
			continue
		}
		sx, sy := g.cam.WorldToScreen(pos.X, pos.Y)
		radius := (5 + 3*float32(plant.Level)) * g.cam.Zoom
		col := colPlant
		if plant.HarvestReady {
			col = colPlantReady
		}
		rl.DrawCircle(int32(sx), int32(sy), radius, col)
	}
}

func (g *Game) drawTrees() {
	query := g.treeFilter.Query()
	for query.Next() {
		pos, tree := query.Get()
		if !g.cam.IsVisible(pos.X, pos.Y, 24) {
			continue
		}
		sx, sy := g.cam.WorldToScreen(pos.X, pos.Y)
		if tree.Fallen {
			rl.DrawCircle(int32(sx), int32(sy), 7*g.cam.Zoom, colStump)
			continue
		}
		rl.DrawCircle(int32(sx), int32(sy), 16*g.cam.Zoom, colTree)
		// Chop damage ring
		if tree.Chop > 0 {
			frac := tree.Chop / tree.ChopRequired
			rl.DrawCircleLines(int32(sx), int32(sy), (16+4*frac)*g.cam.Zoom, rl.Fade(rl.Red, 0.6))
		}
	}
}

func (g *Game) drawCollectables() {
	query := g.collectableFilter.Query()
	for query.Next() {
		pos, coll := query.Get()
		if !g.cam.IsVisible(pos.X, pos.Y, 10) {
			continue
		}
		sx, sy := g.cam.WorldToScreen(pos.X, pos.Y)
		rl.DrawCircle(int32(sx), int32(sy), 5*g.cam.Zoom, itemColor(coll.Type))
	}
}

func (g *Game) drawFarmers() {
	query := g.farmerFilter.Query()
	for query.Next() {
		pos, _, _, _ := query.Get()
		sx, sy := g.cam.WorldToScreen(pos.X, pos.Y)
		rl.DrawCircle(int32(sx), int32(sy), 10*g.cam.Zoom, colFarmer)
	}
}

func (g *Game) drawHoldables() {
	query := g.holdableFilter.Query()
	for query.Next() {
		pos, h := query.Get()
		if !g.cam.IsVisible(pos.X, pos.Y, 12) {
			continue
		}
		sx, sy := g.cam.WorldToScreen(pos.X, pos.Y-h.HoverY)
		size := 7 * h.Scale * g.cam.Zoom
		rl.DrawCircle(int32(sx), int32(sy), size, toolColor(h.Kind))
	}
}

func (g *Game) drawProjectiles() {
	query := g.projectileFilter.Query()
	for query.Next() {
		pos, p := query.Get()
		if !p.Active || !g.cam.IsVisible(pos.X, pos.Y, 6) {
			continue
		}
		sx, sy := g.cam.WorldToScreen(pos.X, pos.Y)
		rl.DrawCircle(int32(sx), int32(sy), 3*g.cam.Zoom, colProjectile)
	}
}

func (g *Game) drawEffects() {
	query := g.effectFilter.Query()
	for query.Next() {
		effect := query.Get()
		pos := g.posMap.Get(query.Entity())
		sx, sy := g.cam.WorldToScreen(pos.X, pos.Y)

		alpha := float32(effect.TTL) / 30
		if alpha > 1 {
			alpha = 1
		}
		switch effect.Kind {
		case components.EffectSplash:
			rl.DrawCircleLines(int32(sx), int32(sy), 10*g.cam.Zoom, rl.Fade(colWell, alpha))
		case components.EffectSparkle:
			rl.DrawCircleLines(int32(sx), int32(sy), 8*g.cam.Zoom, rl.Fade(rl.Yellow, alpha))
		case components.EffectPoof:
			rl.DrawCircle(int32(sx), int32(sy), 9*g.cam.Zoom, rl.Fade(rl.Beige, alpha*0.6))
		default:
			rl.DrawCircleLines(int32(sx), int32(sy), 6*g.cam.Zoom, rl.Fade(rl.Red, alpha))
		}
	}
}

// drawHUD renders the status panel and per-tool resource bars.
func (g *Game) drawHUD() {
	gui.Panel(rl.Rectangle{X: 10, Y: 10, Width: 210, Height: 96}, "Farm")

	status := fmt.Sprintf("tick %d  speed %dx", g.tick, g.speed)
	if g.paused {
		status += "  [paused]"
	}
	gui.Label(rl.Rectangle{X: 20, Y: 36, Width: 190, Height: 16}, status)

	y := float32(56)
	query := g.weaponFilter.Query()
	for query.Next() {
		_, h, _ := query.Get()
		item := query.Entity()
		if h.State != components.ItemEquipped || !g.poolMap.Has(item) {
			continue
		}
		pool := g.poolMap.Get(item)
		name := "water"
		if h.Kind == components.KindSeedBag {
			name = "seeds"
		}
		gui.ProgressBar(rl.Rectangle{X: 60, Y: y, Width: 120, Height: 12}, name, "", &pool.Current, 0, pool.Max)
		y += 18
	}

	basketQuery := g.collectorFilter.Query()
	for basketQuery.Next() {
		_, h, c := basketQuery.Get()
		if h.State != components.ItemEquipped {
			continue
		}
		label := fmt.Sprintf("basket %d/%d", c.Total, c.Capacity)
		if c.IsDocked {
			label += " docked"
		}
		gui.Label(rl.Rectangle{X: 20, Y: y, Width: 190, Height: 16}, label)
		y += 18
	}
}
