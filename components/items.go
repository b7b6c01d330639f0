package components

import "github.com/mlange-42/ark/ecs"

// ItemState tracks whether a holdable item sits in the world or
// orbits a holder.
type ItemState uint8

const (
	ItemPickup ItemState = iota
	ItemEquipped
)

// ItemKind selects rendering and audio for a holdable item. Behavior
// comes from the Weapon/Melee/Collector component attached alongside.
type ItemKind uint8

const (
	KindAxe ItemKind = iota
	KindShovel
	KindWateringCan
	KindSeedBag
	KindBasket
)

// Holdable is the shared state of every carriable tool: equip state,
// orbit placement around the holder, and the current scan target.
// Target is a weak handle into the live world; consumers must check
// aliveness every tick and treat a dead handle as "no target".
type Holdable struct {
	Kind   ItemKind
	State  ItemState
	Holder ecs.Entity // valid only while equipped

	OrbitAngle  float32 // current angle around the holder (radians)
	OrbitOffset float32 // slot offset assigned by the holder

	HoverY     float32 // draw-height bob above the ground
	BaseHoverY float32 // rest height restored on drop

	Target     ecs.Entity
	HasTarget  bool
	ScanRadius float32
	TargetCaps Caps // capability mask a candidate must carry

	// Visual pulse, advanced by the effects system. PulseUntil == 0
	// means no pulse is running.
	Scale      float32
	PulseUntil int64
}

// ResourcePool is a bounded consumable reserve (water, seeds).
// Current stays within [0, Max] under any Add/Consume sequence.
type ResourcePool struct {
	Current float32
	Max     float32
}

// Weapon fires pooled projectiles at the holdable's current target.
type Weapon struct {
	FireInterval    float32 // seconds between shots (1 / fire rate)
	Cooldown        float32 // seconds until the next shot is allowed
	ShotCost        float32 // resource consumed per shot; 0 = free
	ProjectileSpeed float32
	Amount          float32 // payload delivered on hit
	Deliver         HitKind
	HitRadius       float32 // stamped onto launched projectiles

	// Grow-only projectile pool. Firing reuses the first inactive
	// entry and allocates a new projectile when all are busy.
	Pool []ecs.Entity
}

// Melee applies flat contact damage with a per-target cooldown so a
// target inside the contact range is not hit every tick.
type Melee struct {
	Amount  float32
	Range   float32
	Deliver HitKind

	HitCooldown float32                // seconds per target between hits
	NextHit     map[ecs.Entity]float32 // seconds until target can be hit again
	PurgeEvery  int32                  // ticks between dead-handle purges
	PurgeIn     int32                  // ticks until the next purge
}

// Collector passively pulls nearby collectables into a typed
// inventory. In-flight items count against capacity so concurrent
// pulls cannot overshoot.
type Collector struct {
	Capacity int
	Total    int
	Counts   map[ItemType]int
	InFlight map[ecs.Entity]ItemType

	PullDelay float32 // seconds between pull attempts
	PullIn    float32

	DepositEvery float32 // seconds between single-unit deposits
	DepositIn    float32

	Docked   ecs.Entity // station in range, when IsDocked
	IsDocked bool
}

// InFlightCount returns the number of collectables currently flying
// toward the collector.
func (c *Collector) InFlightCount() int {
	return len(c.InFlight)
}

// Projectile is a pooled homing shot. Inactive projectiles stay in
// their owner's pool awaiting reuse.
type Projectile struct {
	Active    bool
	Owner     ecs.Entity
	Target    ecs.Entity
	HasTarget bool

	Speed     float32
	Amount    float32
	Deliver   HitKind
	HitRadius float32
}
