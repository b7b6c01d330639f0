package systems

import (
	"testing"

	"github.com/DipFlip/farmpire-survivors/components"
)

func newTestStation() components.Station {
	return components.Station{
		Requirements: []components.Requirement{
			{Type: components.ItemWood, Required: 3},
			{Type: components.ItemStone, Required: 2},
		},
		AcceptPartial: true,
	}
}

func TestStationReceive_FullDeliveryCompletes(t *testing.T) {
	s := newTestStation()

	if acc, done := StationReceive(&s, components.ItemWood, 3); acc != 3 || done {
		t.Errorf("expected 3 wood accepted without completion, got %d, %v", acc, done)
	}
	acc, done := StationReceive(&s, components.ItemStone, 2)
	if acc != 2 {
		t.Errorf("expected 2 stone accepted, got %d", acc)
	}
	if !done {
		t.Error("expected completion on final deposit")
	}
	if !StationComplete(&s) {
		t.Error("station should report complete")
	}
}

func TestStationReceive_PartialProgress(t *testing.T) {
	s := newTestStation()

	StationReceive(&s, components.ItemWood, 2)

	if StationComplete(&s) {
		t.Error("station complete with missing requirements")
	}
	cur, total := StationProgress(&s)
	if cur != 2 || total != 5 {
		t.Errorf("expected progress 2/5, got %d/%d", cur, total)
	}
}

func TestStationReceive_NeverExceedsRequired(t *testing.T) {
	s := newTestStation()

	if acc, _ := StationReceive(&s, components.ItemWood, 10); acc != 3 {
		t.Errorf("expected acceptance clamped to need 3, got %d", acc)
	}
	for _, r := range s.Requirements {
		if r.Current > r.Required {
			t.Errorf("%s current %d exceeds required %d", r.Type, r.Current, r.Required)
		}
	}
	// Saturated type refuses more.
	if acc, _ := StationReceive(&s, components.ItemWood, 1); acc != 0 {
		t.Errorf("saturated requirement accepted %d", acc)
	}
}

func TestStationReceive_UnknownTypeRefused(t *testing.T) {
	s := newTestStation()

	if acc, _ := StationReceive(&s, components.ItemCrop, 5); acc != 0 {
		t.Errorf("station accepted %d of an unlisted type", acc)
	}
}

func TestStationReceive_AllOrNothing(t *testing.T) {
	s := newTestStation()
	s.AcceptPartial = false

	if acc, _ := StationReceive(&s, components.ItemWood, 2); acc != 0 {
		t.Errorf("all-or-nothing station accepted a short offer: %d", acc)
	}
	if acc, _ := StationReceive(&s, components.ItemWood, 3); acc != 3 {
		t.Errorf("expected full offer accepted, got %d", acc)
	}
	// Offer above the need still transfers only the need.
	if acc, _ := StationReceive(&s, components.ItemStone, 5); acc != 2 {
		t.Errorf("expected acceptance clamped to 2, got %d", acc)
	}
}

func TestStationReceive_SingleUseIsTerminal(t *testing.T) {
	s := newTestStation()
	StationReceive(&s, components.ItemWood, 3)
	StationReceive(&s, components.ItemStone, 2)

	if acc, _ := StationReceive(&s, components.ItemWood, 1); acc != 0 {
		t.Errorf("terminal station accepted %d", acc)
	}
}

func TestStationReceive_ReusableResets(t *testing.T) {
	s := newTestStation()
	s.Reusable = true

	StationReceive(&s, components.ItemWood, 3)
	_, done := StationReceive(&s, components.ItemStone, 2)
	if !done {
		t.Error("expected completion signal")
	}

	// Reusable stations go right back to zero and keep accepting.
	cur, _ := StationProgress(&s)
	if cur != 0 {
		t.Errorf("expected reset progress, got %d", cur)
	}
	if s.Complete {
		t.Error("reusable station must not latch complete")
	}
	if acc, _ := StationReceive(&s, components.ItemWood, 1); acc != 1 {
		t.Errorf("reset station refused deposit, accepted %d", acc)
	}
}
