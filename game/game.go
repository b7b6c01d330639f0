// Package game wires the ECS world, runs the deterministic simulation
// tick and owns all cross-system services.
package game

import (
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/DipFlip/farmpire-survivors/audio"
	"github.com/DipFlip/farmpire-survivors/camera"
	"github.com/DipFlip/farmpire-survivors/components"
	"github.com/DipFlip/farmpire-survivors/config"
	"github.com/DipFlip/farmpire-survivors/systems"
	"github.com/DipFlip/farmpire-survivors/telemetry"
)

// Options configures a game instance.
type Options struct {
	Seed           int64
	OutputDir      string
	Headless       bool
	LogStats       bool
	StatsWindowSec float64
	StepsPerUpdate int
}

// Game holds the complete simulation state.
type Game struct {
	world *ecs.World
	rng   *rand.Rand

	tick  int64
	speed int
	dt    float32

	paused   bool
	headless bool

	// Player movement intent for the current frame. Zero when no
	// direction key is held; headless runs leave it zero and the
	// farmer wanders between random waypoints instead.
	moveX, moveY float32
	dropHeld     bool

	// World dimensions
	width, height float32

	// Entity archetype mappers
	farmerMapper      *ecs.Map4[components.Position, components.Velocity, components.Holder, components.Farmer]
	meleeToolMapper   *ecs.Map3[components.Position, components.Holdable, components.Melee]
	rangedToolMapper  *ecs.Map4[components.Position, components.Holdable, components.Weapon, components.ResourcePool]
	basketMapper      *ecs.Map3[components.Position, components.Holdable, components.Collector]
	projectileMapper  *ecs.Map2[components.Position, components.Projectile]
	collectableMapper *ecs.Map3[components.Position, components.Caps, components.Collectable]
	treeMapper        *ecs.Map3[components.Position, components.Caps, components.Tree]
	plantMapper       *ecs.Map3[components.Position, components.Caps, components.Plant]
	digSiteMapper     *ecs.Map3[components.Position, components.Caps, components.DigSite]
	stationMapper     *ecs.Map3[components.Position, components.Caps, components.Station]
	wellMapper        *ecs.Map3[components.Position, components.Caps, components.Refill]
	effectMapper      *ecs.Map2[components.Position, components.Effect]

	// Filters for the per-tick passes
	farmerFilter      *ecs.Filter4[components.Position, components.Velocity, components.Holder, components.Farmer]
	holdableFilter    *ecs.Filter2[components.Position, components.Holdable]
	weaponFilter      *ecs.Filter3[components.Position, components.Holdable, components.Weapon]
	meleeFilter       *ecs.Filter3[components.Position, components.Holdable, components.Melee]
	collectorFilter   *ecs.Filter3[components.Position, components.Holdable, components.Collector]
	projectileFilter  *ecs.Filter2[components.Position, components.Projectile]
	collectableFilter *ecs.Filter2[components.Position, components.Collectable]
	treeFilter        *ecs.Filter2[components.Position, components.Tree]
	digSiteFilter     *ecs.Filter2[components.Position, components.DigSite]
	plantFilter       *ecs.Filter2[components.Position, components.Plant]
	stationFilter     *ecs.Filter2[components.Position, components.Station]
	wellFilter        *ecs.Filter2[components.Position, components.Refill]
	effectFilter      *ecs.Filter1[components.Effect]

	// Single-component random access
	posMap         *ecs.Map1[components.Position]
	capsMap        *ecs.Map1[components.Caps]
	holdableMap    *ecs.Map1[components.Holdable]
	weaponMap      *ecs.Map1[components.Weapon]
	meleeMap       *ecs.Map1[components.Melee]
	collectorMap   *ecs.Map1[components.Collector]
	poolMap        *ecs.Map1[components.ResourcePool]
	projectileMap  *ecs.Map1[components.Projectile]
	collectableMap *ecs.Map1[components.Collectable]
	treeMap        *ecs.Map1[components.Tree]
	plantMap       *ecs.Map1[components.Plant]
	digSiteMap     *ecs.Map1[components.DigSite]
	stationMap     *ecs.Map1[components.Station]
	refillMap      *ecs.Map1[components.Refill]
	holderMap      *ecs.Map1[components.Holder]

	// Services
	spatialGrid *systems.SpatialGrid
	sound       *audio.Manager
	cam         *camera.Camera

	// Telemetry
	collector *telemetry.Collector
	perf      *telemetry.PerfCollector
	output    *telemetry.OutputManager
	logStats  bool

	// Deferred structural changes, applied outside query iteration
	toRemove    []ecs.Entity
	scanScratch []systems.Neighbor
}

// NewGameWithOptions creates a fully wired game instance.
func NewGameWithOptions(opts Options) *Game {
	cfg := config.Cfg()
	world := ecs.NewWorld()

	g := &Game{
		world:    world,
		rng:      rand.New(rand.NewSource(opts.Seed)),
		speed:    1,
		dt:       cfg.Derived.DT32,
		headless: opts.Headless,
		width:    cfg.Derived.WorldW32,
		height:   cfg.Derived.WorldH32,
		logStats: opts.LogStats,

		farmerMapper:      ecs.NewMap4[components.Position, components.Velocity, components.Holder, components.Farmer](world),
		meleeToolMapper:   ecs.NewMap3[components.Position, components.Holdable, components.Melee](world),
		rangedToolMapper:  ecs.NewMap4[components.Position, components.Holdable, components.Weapon, components.ResourcePool](world),
		basketMapper:      ecs.NewMap3[components.Position, components.Holdable, components.Collector](world),
		projectileMapper:  ecs.NewMap2[components.Position, components.Projectile](world),
		collectableMapper: ecs.NewMap3[components.Position, components.Caps, components.Collectable](world),
		treeMapper:        ecs.NewMap3[components.Position, components.Caps, components.Tree](world),
		plantMapper:       ecs.NewMap3[components.Position, components.Caps, components.Plant](world),
		digSiteMapper:     ecs.NewMap3[components.Position, components.Caps, components.DigSite](world),
		stationMapper:     ecs.NewMap3[components.Position, components.Caps, components.Station](world),
		wellMapper:        ecs.NewMap3[components.Position, components.Caps, components.Refill](world),
		effectMapper:      ecs.NewMap2[components.Position, components.Effect](world),

		farmerFilter:      ecs.NewFilter4[components.Position, components.Velocity, components.Holder, components.Farmer](world),
		holdableFilter:    ecs.NewFilter2[components.Position, components.Holdable](world),
		weaponFilter:      ecs.NewFilter3[components.Position, components.Holdable, components.Weapon](world),
		meleeFilter:       ecs.NewFilter3[components.Position, components.Holdable, components.Melee](world),
		collectorFilter:   ecs.NewFilter3[components.Position, components.Holdable, components.Collector](world),
		projectileFilter:  ecs.NewFilter2[components.Position, components.Projectile](world),
		collectableFilter: ecs.NewFilter2[components.Position, components.Collectable](world),
		treeFilter:        ecs.NewFilter2[components.Position, components.Tree](world),
		digSiteFilter:     ecs.NewFilter2[components.Position, components.DigSite](world),
		plantFilter:       ecs.NewFilter2[components.Position, components.Plant](world),
		stationFilter:     ecs.NewFilter2[components.Position, components.Station](world),
		wellFilter:        ecs.NewFilter2[components.Position, components.Refill](world),
		effectFilter:      ecs.NewFilter1[components.Effect](world),

		posMap:         ecs.NewMap1[components.Position](world),
		capsMap:        ecs.NewMap1[components.Caps](world),
		holdableMap:    ecs.NewMap1[components.Holdable](world),
		weaponMap:      ecs.NewMap1[components.Weapon](world),
		meleeMap:       ecs.NewMap1[components.Melee](world),
		collectorMap:   ecs.NewMap1[components.Collector](world),
		poolMap:        ecs.NewMap1[components.ResourcePool](world),
		projectileMap:  ecs.NewMap1[components.Projectile](world),
		collectableMap: ecs.NewMap1[components.Collectable](world),
		treeMap:        ecs.NewMap1[components.Tree](world),
		plantMap:       ecs.NewMap1[components.Plant](world),
		digSiteMap:     ecs.NewMap1[components.DigSite](world),
		stationMap:     ecs.NewMap1[components.Station](world),
		refillMap:      ecs.NewMap1[components.Refill](world),
		holderMap:      ecs.NewMap1[components.Holder](world),
	}

	if opts.StepsPerUpdate > 0 {
		g.speed = opts.StepsPerUpdate
	}

	g.spatialGrid = systems.NewSpatialGrid(g.width, g.height, float32(cfg.World.GridCellSize))
	g.cam = camera.New(float32(cfg.Screen.Width), float32(cfg.Screen.Height), g.width, g.height)

	g.sound = audio.NewManager(cfg.Audio, opts.Seed)
	if cfg.Audio.Enabled && !opts.Headless {
		if err := g.sound.Initialize(); err != nil {
			// Best effort: a missing audio device leaves the game silent.
			Logf("audio init failed: %v", err)
		}
	}

	statsWindow := opts.StatsWindowSec
	if statsWindow <= 0 {
		statsWindow = cfg.Telemetry.StatsWindow
	}
	g.collector = telemetry.NewCollector(statsWindow, g.dt)
	g.perf = telemetry.NewPerfCollector(int(statsWindow / float64(g.dt)))

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		Logf("output disabled: %v", err)
	} else {
		g.output = om
		if err := g.output.WriteConfig(cfg); err != nil {
			Logf("config snapshot failed: %v", err)
		}
	}

	g.spawnWorld()

	return g
}

// Tick returns the current simulation tick.
func (g *Game) Tick() int64 {
	return g.tick
}

// Camera exposes the viewport camera for rendering.
func (g *Game) Camera() *camera.Camera {
	return g.cam
}

// Unload releases services. The ECS world needs no teardown.
func (g *Game) Unload() {
	g.sound.Cleanup()
	g.output.Close()
}

// Update runs input handling and the configured number of simulation
// steps. Graphics mode only.
func (g *Game) Update() {
	g.handleInput()
	g.perf.RecordFrame()

	if g.paused {
		return
	}
	for i := 0; i < g.speed; i++ {
		g.simulationStep()
	}
}

// UpdateHeadless runs simulation steps without touching input or the
// window.
func (g *Game) UpdateHeadless() {
	for i := 0; i < g.speed; i++ {
		g.simulationStep()
	}
}

// simulationStep runs a single tick. The system order is fixed;
// economy invariants rely on it.
func (g *Game) simulationStep() {
	g.perf.StartTick()

	g.perf.StartPhase(telemetry.PhaseSpatialGrid)
	g.updateSpatialGrid()

	g.perf.StartPhase(telemetry.PhaseMovement)
	g.updateFarmers()

	g.perf.StartPhase(telemetry.PhaseItems)
	g.updatePickups()
	g.updateHoldables()

	g.perf.StartPhase(telemetry.PhaseProjectiles)
	g.updateWeapons()
	g.updateProjectiles()

	g.perf.StartPhase(telemetry.PhaseMelee)
	g.updateMelee()

	g.perf.StartPhase(telemetry.PhaseCollectors)
	g.updateCollectors()
	g.updateCollectables()

	g.perf.StartPhase(telemetry.PhaseGrowth)
	g.updateHarvests()
	g.updateRefills()

	g.perf.StartPhase(telemetry.PhaseEffects)
	g.updateEffects()

	g.perf.StartPhase(telemetry.PhaseCleanup)
	g.cleanup()

	g.perf.StartPhase(telemetry.PhaseTelemetry)
	g.flushTelemetry()

	g.perf.EndTick()
	g.tick++
}

// updateSpatialGrid rebuilds the spatial index from every positioned
// entity that can be found by a scan.
func (g *Game) updateSpatialGrid() {
	g.spatialGrid.Clear()

	insert := func(e ecs.Entity, pos *components.Position) {
		g.spatialGrid.Insert(e, pos.X, pos.Y)
	}

	treeQuery := g.treeFilter.Query()
	for treeQuery.Next() {
		pos, _ := treeQuery.Get()
		insert(treeQuery.Entity(), pos)
	}
	plantQuery := g.plantFilter.Query()
	for plantQuery.Next() {
		pos, _ := plantQuery.Get()
		insert(plantQuery.Entity(), pos)
	}
	collQuery := g.collectableFilter.Query()
	for collQuery.Next() {
		pos, _ := collQuery.Get()
		insert(collQuery.Entity(), pos)
	}
	stationQuery := g.stationFilter.Query()
	for stationQuery.Next() {
		pos, _ := stationQuery.Get()
		insert(stationQuery.Entity(), pos)
	}
	wellQuery := g.wellFilter.Query()
	for wellQuery.Next() {
		pos, _ := wellQuery.Get()
		insert(wellQuery.Entity(), pos)
	}

	digQuery := g.digSiteFilter.Query()
	for digQuery.Next() {
		pos, _ := digQuery.Get()
		insert(digQuery.Entity(), pos)
	}

	// Items lying on the ground are pickup targets.
	itemQuery := g.holdableFilter.Query()
	for itemQuery.Next() {
		pos, h := itemQuery.Get()
		if h.State == components.ItemPickup {
			insert(itemQuery.Entity(), pos)
		}
	}
}
