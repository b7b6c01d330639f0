package components

import "github.com/mlange-42/ark/ecs"

// CollectState is the lifecycle of a collectable resource item.
type CollectState uint8

const (
	CollectIdle CollectState = iota
	CollectInFlight
	CollectDone // terminal; banked by a collector
)

// Collectable is a resource item lying in the world. A settle timer
// keeps freshly spawned items on the ground briefly before collectors
// may pull them.
type Collectable struct {
	Type   ItemType
	State  CollectState
	Settle float32 // seconds until collectible

	// Flight toward a collector, advanced as an explicit eased
	// interpolation each tick.
	Collector    ecs.Entity
	FromX, FromY float32
	Progress     float32 // 0..1
	FlightTime   float32 // seconds for the full flight
}

// Settled reports whether the item may be targeted by collectors.
func (c *Collectable) Settled() bool {
	return c.Settle <= 0
}

// Requirement is one line of a deposit station's shopping list.
type Requirement struct {
	Type     ItemType
	Required int
	Current  int
}

// Station accumulates typed deposits against a requirement list.
type Station struct {
	Requirements []Requirement

	// AcceptPartial stations take any amount toward a requirement.
	// Otherwise a type transfers only when the offer covers its full
	// remaining need in one call.
	AcceptPartial bool

	// Reusable stations reset on completion; single-use stations stay
	// complete forever.
	Reusable bool
	Complete bool

	DockRadius float32
}

// Plant grows through discrete levels as it receives water. At max
// level it spawns harvest items, refuses water until they are all
// collected, then drops back and regrows.
type Plant struct {
	Level    int
	MaxLevel int

	Water         float32
	WaterPerLevel float32

	HarvestReady bool
	HarvestDrop  int // collectables spawned per harvest
	DropToLevel  int // level after a completed harvest
	HarvestItems []ecs.Entity
}

// Tree accumulates chop damage and falls once, spawning scattered
// collectables. Chopping a fallen tree is a no-op.
type Tree struct {
	Chop         float32
	ChopRequired float32
	Fallen       bool

	DropCount     int
	DropType      ItemType
	ScatterRadius float32
}

// DigPhase orders the two-stage dig-then-seed machine.
type DigPhase uint8

const (
	DigUndug DigPhase = iota
	DigDug
	DigPlanted // terminal; a plant has been spawned
)

// DigSite must be fully dug before seeds have any effect. Digging it
// open unearths stone; reaching the seed threshold spawns exactly one
// plant.
type DigSite struct {
	Phase DigPhase

	Dig         float32
	DigRequired float32

	Seeds         float32
	SeedsRequired float32

	DropCount     int
	DropType      ItemType
	ScatterRadius float32
}

// Refill regenerates the resource pool of watering cans docked in
// range (a well).
type Refill struct {
	Rate   float32 // resource per second
	Radius float32
}

// Holder carries equipped items in ordered slots. Capacity 1 models
// the single-item holder; the watering-can holder uses more slots.
type Holder struct {
	Slots        []ecs.Entity
	Capacity     int
	PickupRadius float32

	// Last nonzero movement direction, feeds item facing when no
	// target is acquired.
	LastMoveX, LastMoveY float32
}

// Farmer is waypoint-walking movement state for headless runs. In
// graphics mode input overrides the waypoint.
type Farmer struct {
	Speed float32

	TargetX, TargetY float32
	HasWaypoint      bool
	Repick           float32 // seconds until a new waypoint is picked
}

// EffectKind selects the visual for a fire-and-forget effect entity.
type EffectKind uint8

const (
	EffectHit EffectKind = iota
	EffectSplash
	EffectPoof
	EffectSparkle
)

// Effect is a short-lived visual marker removed by the cleanup system
// when TTL reaches zero. Purely cosmetic; gameplay never reads it.
type Effect struct {
	Kind EffectKind
	TTL  int32 // ticks remaining
}
