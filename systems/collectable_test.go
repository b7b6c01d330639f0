package systems

import (
	"math"
	"testing"

	"github.com/DipFlip/farmpire-survivors/components"
)

func TestSettleTick_GatesCollectibility(t *testing.T) {
	c := components.Collectable{Type: components.ItemWood, Settle: 0.1}

	if c.Settled() {
		t.Error("fresh drop should not be collectible")
	}
	for i := 0; i < 7; i++ {
		SettleTick(&c, 1.0/60.0)
	}
	if !c.Settled() {
		t.Errorf("expected settled after timer, remaining %f", c.Settle)
	}
}

func TestCollectableStep_ArrivesAndGoesTerminal(t *testing.T) {
	c := components.Collectable{
		Type:       components.ItemWood,
		State:      components.CollectInFlight,
		FromX:      0,
		FromY:      0,
		FlightTime: 0.5,
	}
	pos := components.Position{}
	dest := components.Position{X: 100, Y: 50}

	arrived := false
	for i := 0; i < 60 && !arrived; i++ {
		arrived = CollectableStep(&c, &pos, dest, 1.0/60.0)
	}

	if !arrived {
		t.Fatal("flight never arrived")
	}
	if c.State != components.CollectDone {
		t.Errorf("expected terminal CollectDone, got %v", c.State)
	}
	if pos.X != dest.X || pos.Y != dest.Y {
		t.Errorf("expected final position at collector, got (%f,%f)", pos.X, pos.Y)
	}
}

func TestCollectableStep_EasedFlightStartsSlow(t *testing.T) {
	c := components.Collectable{
		State:      components.CollectInFlight,
		FromX:      0,
		FromY:      0,
		FlightTime: 1.0,
	}
	pos := components.Position{}
	dest := components.Position{X: 100, Y: 0}

	CollectableStep(&c, &pos, dest, 0.25)

	// Quadratic ease-in: at t=0.25 the item covered ~6% of the path.
	if pos.X > 10 {
		t.Errorf("expected slow start, covered %f", pos.X)
	}
}

func TestCancelCollection_RestoresIdleState(t *testing.T) {
	c := components.Collectable{
		State:      components.CollectInFlight,
		FromX:      30,
		FromY:      40,
		FlightTime: 1.0,
	}
	pos := components.Position{X: 55, Y: 60}

	CancelCollection(&c, &pos)

	if c.State != components.CollectIdle {
		t.Errorf("expected Idle after cancel, got %v", c.State)
	}
	if pos.X != 30 || pos.Y != 40 {
		t.Errorf("expected position restored to origin, got (%f,%f)", pos.X, pos.Y)
	}
	if c.Progress != 0 {
		t.Errorf("expected progress reset, got %f", c.Progress)
	}
}

func TestCancelCollection_DoesNotReviveCollected(t *testing.T) {
	c := components.Collectable{State: components.CollectDone}
	pos := components.Position{X: 1, Y: 2}

	CancelCollection(&c, &pos)

	if c.State != components.CollectDone {
		t.Errorf("terminal state reverted: %v", c.State)
	}
}

func TestFlightEase_Bounds(t *testing.T) {
	if FlightEase(-0.5) != 0 || FlightEase(1.5) != 1 {
		t.Error("ease must clamp to [0,1]")
	}
	if math.Abs(float64(FlightEase(0.5)-0.25)) > 1e-6 {
		t.Errorf("expected quadratic ease 0.25 at midpoint, got %f", FlightEase(0.5))
	}
}
