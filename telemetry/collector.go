package telemetry

import "github.com/DipFlip/farmpire-survivors/components"

// Collector accumulates events within time windows and produces
// WindowStats.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int64
	dt                  float32

	windowStartTick int64

	// Event counters for the current window
	shots            int
	shotsRefused     int
	meleeHits        int
	treesFelled      int
	plantLevelUps    int
	harvestsReady    int
	collectsStarted  int
	collectsBanked   int
	collectsAborted  int
	deposits         int
	stationsComplete int
	sitesDug         int
	sitesPlanted     int

	// Per-item deposit counts for the window
	depositsByType map[components.ItemType]int

	// Flight durations of banked collections, for aggregates
	flightSec []float64
}

// NewCollector creates a stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds
// dt: seconds per tick (used for tick-to-time conversion)
func NewCollector(windowDurationSec float64, dt float32) *Collector {
	ticksPerWindow := int64(windowDurationSec / float64(dt))
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
		depositsByType:      make(map[components.ItemType]int),
	}
}

// Record routes an event into the window counters.
func (c *Collector) Record(ev Event) {
	switch ev.Type {
	case EventShot:
		c.shots++
	case EventMeleeHit:
		c.meleeHits++
	case EventTreeFelled:
		c.treesFelled++
	case EventPlantLevelUp:
		c.plantLevelUps++
	case EventHarvestReady:
		c.harvestsReady++
	case EventCollectStarted:
		c.collectsStarted++
	case EventCollectBanked:
		c.collectsBanked++
		c.flightSec = append(c.flightSec, float64(ev.Amount))
	case EventCollectCancelled:
		c.collectsAborted++
	case EventDeposit:
		c.deposits++
		c.depositsByType[ev.Item]++
	case EventStationComplete:
		c.stationsComplete++
	case EventSiteDug:
		c.sitesDug++
	case EventSitePlanted:
		c.sitesPlanted++
	}
}

// RecordShotRefused counts a fire attempt refused by the resource
// pool. Not an Event because it never leaves the weapon system.
func (c *Collector) RecordShotRefused() {
	c.shotsRefused++
}

// ShouldFlush returns true if enough ticks have passed to flush the
// window.
func (c *Collector) ShouldFlush(currentTick int64) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// WorldCounts is the caller-sampled population snapshot at window end.
type WorldCounts struct {
	Trees           int
	FallenTrees     int
	Plants          int
	Collectables    int
	HeldItems       int
	StationProgress float64 // delivered / required over all stations
}

// Flush produces a WindowStats and resets counters for the next
// window.
func (c *Collector) Flush(currentTick int64, counts WorldCounts) WindowStats {
	flightMean, flightStd := FlightStats(c.flightSec)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * float64(c.dt),

		Trees:           counts.Trees,
		FallenTrees:     counts.FallenTrees,
		Plants:          counts.Plants,
		Collectables:    counts.Collectables,
		HeldItems:       counts.HeldItems,
		StationProgress: counts.StationProgress,

		Shots:            c.shots,
		ShotsRefused:     c.shotsRefused,
		MeleeHits:        c.meleeHits,
		TreesFelled:      c.treesFelled,
		PlantLevelUps:    c.plantLevelUps,
		HarvestsReady:    c.harvestsReady,
		CollectsStarted:  c.collectsStarted,
		CollectsBanked:   c.collectsBanked,
		CollectsAborted:  c.collectsAborted,
		Deposits:         c.deposits,
		DepositsWood:     c.depositsByType[components.ItemWood],
		DepositsStone:    c.depositsByType[components.ItemStone],
		DepositsCrop:     c.depositsByType[components.ItemCrop],
		StationsComplete: c.stationsComplete,
		SitesDug:         c.sitesDug,
		SitesPlanted:     c.sitesPlanted,

		FlightMeanSec: flightMean,
		FlightStdSec:  flightStd,
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.shots = 0
	c.shotsRefused = 0
	c.meleeHits = 0
	c.treesFelled = 0
	c.plantLevelUps = 0
	c.harvestsReady = 0
	c.collectsStarted = 0
	c.collectsBanked = 0
	c.collectsAborted = 0
	c.deposits = 0
	c.stationsComplete = 0
	c.sitesDug = 0
	c.sitesPlanted = 0
	c.depositsByType = make(map[components.ItemType]int)
	c.flightSec = c.flightSec[:0]

	return stats
}
