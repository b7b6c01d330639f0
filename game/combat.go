package game

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/DipFlip/farmpire-survivors/components"
	"github.com/DipFlip/farmpire-survivors/config"
	"github.com/DipFlip/farmpire-survivors/systems"
	"github.com/DipFlip/farmpire-survivors/telemetry"
)

// shotRequest is a deferred projectile launch. Spawning entities while
// a query is open would deadlock the world, so firing is two-phase.
type shotRequest struct {
	weapon ecs.Entity
	x, y   float32
	target ecs.Entity
}

// updateWeapons advances fire cooldowns and launches pooled
// projectiles at each ranged tool's current target.
func (g *Game) updateWeapons() {
	var shots []shotRequest

	query := g.weaponFilter.Query()
	for query.Next() {
		item := query.Entity()
		pos, h, w := query.Get()

		if w.Cooldown > 0 {
			w.Cooldown -= g.dt
		}
		if h.State != components.ItemEquipped || !h.HasTarget {
			continue
		}
		if w.Cooldown > 0 || !g.world.Alive(h.Target) {
			continue
		}

		if w.ShotCost > 0 && g.poolMap.Has(item) {
			if !systems.ConsumeResource(g.poolMap.Get(item), w.ShotCost) {
				g.collector.RecordShotRefused()
				continue
			}
		}

		w.Cooldown = w.FireInterval
		shots = append(shots, shotRequest{weapon: item, x: pos.X, y: pos.Y, target: h.Target})
		g.collector.Record(telemetry.Event{Type: telemetry.EventShot, Tick: g.tick})
	}

	for _, s := range shots {
		g.launch(s)
	}
}

// launch fires one projectile, reusing an inactive pool entry when one
// exists and growing the pool otherwise.
func (g *Game) launch(s shotRequest) {
	if !g.world.Alive(s.weapon) || !g.weaponMap.Has(s.weapon) {
		return
	}
	w := g.weaponMap.Get(s.weapon)

	var proj ecs.Entity
	found := false
	for _, e := range w.Pool {
		if g.world.Alive(e) && !g.projectileMap.Get(e).Active {
			proj = e
			found = true
			break
		}
	}
	if !found {
		proj = g.spawnProjectile()
		w.Pool = append(w.Pool, proj)
	}

	p := g.projectileMap.Get(proj)
	*p = components.Projectile{
		Active:    true,
		Owner:     s.weapon,
		Target:    s.target,
		HasTarget: true,
		Speed:     w.ProjectileSpeed,
		Amount:    w.Amount,
		Deliver:   w.Deliver,
		HitRadius: w.HitRadius,
	}
	pos := g.posMap.Get(proj)
	pos.X = s.x
	pos.Y = s.y
}

// updateProjectiles moves active projectiles toward their target and
// applies the payload on arrival.
func (g *Game) updateProjectiles() {
	type impact struct {
		x, y    float32
		deliver components.HitKind
		amount  float32
		target  ecs.Entity
	}
	var impacts []impact

	query := g.projectileFilter.Query()
	for query.Next() {
		pos, p := query.Get()
		if !p.Active {
			continue
		}
		if !p.HasTarget || !g.world.Alive(p.Target) {
			p.Active = false
			continue
		}

		targetPos := *g.posMap.Get(p.Target)
		if systems.ProjectileStep(pos, p, targetPos, g.dt) {
			p.Active = false
			impacts = append(impacts, impact{x: pos.X, y: pos.Y, deliver: p.Deliver, amount: p.Amount, target: p.Target})
		}
	}

	for _, im := range impacts {
		g.applyProjectileHit(im.target, im.deliver, im.amount, im.x, im.y)
	}
}

func (g *Game) applyProjectileHit(target ecs.Entity, deliver components.HitKind, amount, x, y float32) {
	if !g.world.Alive(target) {
		return
	}

	switch deliver {
	case components.HitWater:
		if !g.plantMap.Has(target) {
			return
		}
		g.sound.Play("splash")
		g.spawnEffect(x, y, components.EffectSplash, 0.3)
		switch systems.ReceiveWater(g.plantMap.Get(target), amount) {
		case systems.GrowthLevelUp:
			g.collector.Record(telemetry.Event{Type: telemetry.EventPlantLevelUp, Tick: g.tick})
			g.spawnEffect(x, y, components.EffectSparkle, 0.5)
		case systems.GrowthHarvestReady:
			g.collector.Record(telemetry.Event{Type: telemetry.EventHarvestReady, Tick: g.tick})
			g.spawnEffect(x, y, components.EffectSparkle, 0.5)
		}

	case components.HitSeed:
		if !g.digSiteMap.Has(target) {
			return
		}
		if systems.ReceiveSeed(g.digSiteMap.Get(target), amount) == systems.GrowthPlanted {
			g.collector.Record(telemetry.Event{Type: telemetry.EventSitePlanted, Tick: g.tick})
			g.spawnEffect(x, y, components.EffectSparkle, 0.5)
			pos := *g.posMap.Get(target)
			g.spawnPlant(pos.X, pos.Y, 0)
			g.toRemove = append(g.toRemove, target)
		}
	}
}

// updateMelee lands contact hits on targets inside each melee tool's
// range, honoring the per-target cooldown ledger.
func (g *Game) updateMelee() {
	type felled struct {
		x, y    float32
		count   int
		t       components.ItemType
		scatter float32
	}
	var felledTrees []felled
	var dugSites []ecs.Entity

	query := g.meleeFilter.Query()
	for query.Next() {
		pos, h, m := query.Get()

		systems.MeleeCooldownTick(m, g.dt)
		m.PurgeIn--
		if m.PurgeIn <= 0 {
			systems.MeleePurge(m, g.world.Alive)
			m.PurgeIn = m.PurgeEvery
		}

		if h.State != components.ItemEquipped || !h.HasTarget || !g.world.Alive(h.Target) {
			continue
		}

		targetPos := g.posMap.Get(h.Target)
		dx := targetPos.X - pos.X
		dy := targetPos.Y - pos.Y
		if dx*dx+dy*dy > m.Range*m.Range {
			continue
		}
		if !systems.MeleeTryHit(m, h.Target) {
			continue
		}

		g.collector.Record(telemetry.Event{Type: telemetry.EventMeleeHit, Tick: g.tick, Amount: m.Amount})
		g.pulse(h)

		switch m.Deliver {
		case components.HitChop:
			if !g.treeMap.Has(h.Target) {
				break
			}
			g.sound.Play("chop")
			tree := g.treeMap.Get(h.Target)
			if systems.ReceiveChop(tree, m.Amount) {
				g.collector.Record(telemetry.Event{Type: telemetry.EventTreeFelled, Tick: g.tick})
				g.sound.Play("fell")
				felledTrees = append(felledTrees, felled{
					x: targetPos.X, y: targetPos.Y,
					count: tree.DropCount, t: tree.DropType,
					scatter: tree.ScatterRadius,
				})
				h.HasTarget = false
			}

		case components.HitDig:
			if !g.digSiteMap.Has(h.Target) {
				break
			}
			g.sound.Play("chop")
			if systems.ReceiveDig(g.digSiteMap.Get(h.Target), m.Amount) == systems.GrowthDug {
				g.collector.Record(telemetry.Event{Type: telemetry.EventSiteDug, Tick: g.tick})
				dugSites = append(dugSites, h.Target)
				h.HasTarget = false
			}
		}
	}

	// Fallen trees stay behind as stumps; only their drops are new.
	for _, f := range felledTrees {
		g.spawnScatter(f.x, f.y, f.t, f.count, f.scatter)
		g.spawnEffect(f.x, f.y, components.EffectPoof, 0.4)
	}
	for _, site := range dugSites {
		g.onSiteDug(site)
	}
}

// onSiteDug unearths the site's stone drop and marks the spot. The
// stone scatter is the economy's only mineral source.
func (g *Game) onSiteDug(site ecs.Entity) {
	if !g.world.Alive(site) || !g.digSiteMap.Has(site) {
		return
	}
	d := g.digSiteMap.Get(site)
	pos := *g.posMap.Get(site)
	g.spawnScatter(pos.X, pos.Y, d.DropType, d.DropCount, d.ScatterRadius)
	g.spawnEffect(pos.X, pos.Y, components.EffectPoof, 0.4)
}

// pulse starts the hit animation on a holdable.
func (g *Game) pulse(h *components.Holdable) {
	cfg := config.Cfg()
	h.Scale = float32(cfg.Orbit.PulseScale)
	h.PulseUntil = g.tick + int64(cfg.Orbit.PulseSeconds/cfg.World.DT)
}
