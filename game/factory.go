package game

import (
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/DipFlip/farmpire-survivors/components"
	"github.com/DipFlip/farmpire-survivors/config"
)

// Orbit slot spacing in radians between items carried by one holder.
const orbitSlotSpacing = 0.7

// spawnWorld creates the starting scene: one farmer with a full tool
// set lying nearby, trees, dig sites, plants, stations and a well.
func (g *Game) spawnWorld() {
	cfg := config.Cfg()

	cx := g.width / 2
	cy := g.height / 2

	g.spawnFarmer(cx, cy)

	// Tools start on the ground around the farmer.
	g.spawnAxe(cx-60, cy-40)
	g.spawnShovel(cx+60, cy-40)
	g.spawnWateringCan(cx-60, cy+40)
	g.spawnSeedBag(cx+60, cy+40)
	g.spawnBasket(cx, cy-70)

	for i := 0; i < cfg.Spawns.Trees; i++ {
		g.spawnTree(g.randomSpot())
	}
	for i := 0; i < cfg.Spawns.DigSites; i++ {
		g.spawnDigSite(g.randomSpot())
	}
	for i := 0; i < cfg.Spawns.Plants; i++ {
		x, y := g.randomSpot()
		g.spawnPlant(x, y, 0)
	}

	for i := range cfg.Stations {
		x := g.width * float32(i+1) / float32(len(cfg.Stations)+1)
		g.spawnStation(x, g.height*0.15, &cfg.Stations[i])
	}

	g.spawnWell(g.width*0.15, g.height*0.85)
}

func (g *Game) randomSpot() (float32, float32) {
	// Keep a margin so scatter drops stay inside the world.
	margin := float32(80)
	x := margin + g.rng.Float32()*(g.width-2*margin)
	y := margin + g.rng.Float32()*(g.height-2*margin)
	return x, y
}

func (g *Game) spawnFarmer(x, y float32) ecs.Entity {
	cfg := config.Cfg()

	pos := components.Position{X: x, Y: y}
	vel := components.Velocity{}
	holder := components.Holder{
		Capacity:     cfg.Farmer.HolderSlots,
		PickupRadius: float32(cfg.Farmer.PickupRadius),
		LastMoveX:    1,
	}
	farmer := components.Farmer{Speed: float32(cfg.Farmer.Speed)}

	return g.farmerMapper.NewEntity(&pos, &vel, &holder, &farmer)
}

func (g *Game) newHoldable(kind components.ItemKind, scanRadius float32, targetCaps components.Caps) components.Holdable {
	cfg := config.Cfg()
	return components.Holdable{
		Kind:       kind,
		State:      components.ItemPickup,
		HoverY:     float32(cfg.Orbit.HoverHeight),
		BaseHoverY: float32(cfg.Orbit.HoverHeight),
		ScanRadius: scanRadius,
		TargetCaps: targetCaps,
		Scale:      1,
	}
}

func (g *Game) spawnAxe(x, y float32) ecs.Entity {
	tc := config.Cfg().Tools.Axe
	pos := components.Position{X: x, Y: y}
	h := g.newHoldable(components.KindAxe, float32(tc.ScanRadius), components.CapChoppable)
	m := components.Melee{
		Amount:      float32(tc.Amount),
		Range:       float32(tc.Range),
		Deliver:     components.HitChop,
		HitCooldown: float32(tc.HitCooldown),
		PurgeEvery:  int32(tc.PurgeTicks),
		PurgeIn:     int32(tc.PurgeTicks),
	}
	return g.meleeToolMapper.NewEntity(&pos, &h, &m)
}

func (g *Game) spawnShovel(x, y float32) ecs.Entity {
	tc := config.Cfg().Tools.Shovel
	pos := components.Position{X: x, Y: y}
	h := g.newHoldable(components.KindShovel, float32(tc.ScanRadius), components.CapDiggable)
	m := components.Melee{
		Amount:      float32(tc.Amount),
		Range:       float32(tc.Range),
		Deliver:     components.HitDig,
		HitCooldown: float32(tc.HitCooldown),
		PurgeEvery:  int32(tc.PurgeTicks),
		PurgeIn:     int32(tc.PurgeTicks),
	}
	return g.meleeToolMapper.NewEntity(&pos, &h, &m)
}

func (g *Game) spawnRangedTool(x, y float32, kind components.ItemKind, tc config.RangedToolConfig, deliver components.HitKind, targetCaps components.Caps) ecs.Entity {
	pos := components.Position{X: x, Y: y}
	h := g.newHoldable(kind, float32(tc.ScanRadius), targetCaps)
	w := components.Weapon{
		FireInterval:    1 / float32(tc.FireRate),
		ShotCost:        float32(tc.ShotCost),
		ProjectileSpeed: float32(tc.ProjectileSpeed),
		Amount:          float32(tc.Amount),
		Deliver:         deliver,
		HitRadius:       float32(tc.HitRadius),
		Pool:            make([]ecs.Entity, 0, tc.PoolSize),
	}
	pool := components.ResourcePool{Current: float32(tc.PoolMax), Max: float32(tc.PoolMax)}
	return g.rangedToolMapper.NewEntity(&pos, &h, &w, &pool)
}

func (g *Game) spawnWateringCan(x, y float32) ecs.Entity {
	tc := config.Cfg().Tools.WateringCan
	return g.spawnRangedTool(x, y, components.KindWateringCan, tc, components.HitWater, components.CapWaterable)
}

func (g *Game) spawnSeedBag(x, y float32) ecs.Entity {
	tc := config.Cfg().Tools.SeedBag
	return g.spawnRangedTool(x, y, components.KindSeedBag, tc, components.HitSeed, components.CapDiggable)
}

func (g *Game) spawnBasket(x, y float32) ecs.Entity {
	tc := config.Cfg().Tools.Basket
	pos := components.Position{X: x, Y: y}
	h := g.newHoldable(components.KindBasket, float32(tc.ScanRadius), components.CapCollectable)
	c := components.Collector{
		Capacity:     tc.Capacity,
		Counts:       make(map[components.ItemType]int),
		InFlight:     make(map[ecs.Entity]components.ItemType),
		PullDelay:    float32(tc.PullDelay),
		DepositEvery: float32(tc.DepositEvery),
	}
	return g.basketMapper.NewEntity(&pos, &h, &c)
}

func (g *Game) spawnTree(x, y float32) ecs.Entity {
	tc := config.Cfg().Growth.Tree
	pos := components.Position{X: x, Y: y}
	caps := components.CapChoppable
	tree := components.Tree{
		ChopRequired:  float32(tc.ChopRequired),
		DropCount:     tc.DropCount,
		DropType:      components.ItemWood,
		ScatterRadius: float32(tc.ScatterRadius),
	}
	return g.treeMapper.NewEntity(&pos, &caps, &tree)
}

func (g *Game) spawnDigSite(x, y float32) ecs.Entity {
	dc := config.Cfg().Growth.DigSite
	pos := components.Position{X: x, Y: y}
	caps := components.CapDiggable
	site := components.DigSite{
		DigRequired:   float32(dc.DigRequired),
		SeedsRequired: float32(dc.SeedsRequired),
		DropCount:     dc.StoneDrop,
		DropType:      components.ItemStone,
		ScatterRadius: float32(dc.ScatterRadius),
	}
	return g.digSiteMapper.NewEntity(&pos, &caps, &site)
}

func (g *Game) spawnPlant(x, y float32, level int) ecs.Entity {
	pc := config.Cfg().Growth.Plant
	pos := components.Position{X: x, Y: y}
	caps := components.CapWaterable
	plant := components.Plant{
		Level:         level,
		MaxLevel:      pc.MaxLevel,
		WaterPerLevel: float32(pc.WaterPerLevel),
		HarvestDrop:   pc.HarvestDrop,
		DropToLevel:   pc.DropToLevel,
	}
	return g.plantMapper.NewEntity(&pos, &caps, &plant)
}

func (g *Game) spawnStation(x, y float32, sc *config.StationConfig) ecs.Entity {
	pos := components.Position{X: x, Y: y}
	caps := components.CapDepositTarget
	station := components.Station{
		AcceptPartial: sc.AcceptPartial,
		Reusable:      sc.Reusable,
		DockRadius:    float32(sc.DockRadius),
	}
	for _, r := range sc.Requires {
		station.Requirements = append(station.Requirements, components.Requirement{
			Type:     components.ItemType(r.Type),
			Required: r.Amount,
		})
	}
	return g.stationMapper.NewEntity(&pos, &caps, &station)
}

func (g *Game) spawnWell(x, y float32) ecs.Entity {
	wc := config.Cfg().Growth.Well
	pos := components.Position{X: x, Y: y}
	caps := components.CapRefill
	well := components.Refill{
		Rate:   float32(wc.Rate),
		Radius: float32(wc.Radius),
	}
	return g.wellMapper.NewEntity(&pos, &caps, &well)
}

// spawnCollectable drops a resource item with the configured settle
// delay before collectors may pull it.
func (g *Game) spawnCollectable(x, y float32, t components.ItemType) ecs.Entity {
	pos := components.Position{X: clampf(x, 0, g.width), Y: clampf(y, 0, g.height)}
	caps := components.CapCollectable
	c := components.Collectable{
		Type:   t,
		Settle: float32(config.Cfg().Growth.SettleSeconds),
	}
	return g.collectableMapper.NewEntity(&pos, &caps, &c)
}

// spawnScatter drops count collectables in a randomized ring around
// a point, the way a felled tree sheds its wood.
func (g *Game) spawnScatter(x, y float32, t components.ItemType, count int, radius float32) []ecs.Entity {
	spawned := make([]ecs.Entity, 0, count)
	for i := 0; i < count; i++ {
		angle := g.rng.Float32() * 2 * math.Pi
		dist := radius * (0.4 + 0.6*g.rng.Float32())
		dx := dist * float32(math.Cos(float64(angle)))
		dy := dist * float32(math.Sin(float64(angle)))
		spawned = append(spawned, g.spawnCollectable(x+dx, y+dy, t))
	}
	return spawned
}

// spawnProjectile allocates a fresh pooled projectile entity in the
// inactive state.
func (g *Game) spawnProjectile() ecs.Entity {
	pos := components.Position{}
	p := components.Projectile{}
	return g.projectileMapper.NewEntity(&pos, &p)
}

// spawnEffect places a fire-and-forget visual marker.
func (g *Game) spawnEffect(x, y float32, kind components.EffectKind, seconds float32) {
	pos := components.Position{X: x, Y: y}
	e := components.Effect{
		Kind: kind,
		TTL:  int32(seconds / g.dt),
	}
	g.effectMapper.NewEntity(&pos, &e)
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
