package telemetry

import (
	"testing"

	"github.com/DipFlip/farmpire-survivors/components"
)

const testDT = float32(1.0 / 60.0)

func TestCollector_WindowFlushTiming(t *testing.T) {
	c := NewCollector(1.0, testDT) // 60-tick windows

	if c.ShouldFlush(30) {
		t.Error("flushed before the window elapsed")
	}
	if !c.ShouldFlush(60) {
		t.Error("did not flush at window boundary")
	}

	c.Flush(60, WorldCounts{})
	if c.ShouldFlush(90) {
		t.Error("flushed half-way through the second window")
	}
	if !c.ShouldFlush(120) {
		t.Error("did not flush at second window boundary")
	}
}

func TestCollector_PerTypeDeposits(t *testing.T) {
	c := NewCollector(1.0, testDT)

	c.Record(NewDepositEvent(1, components.ItemWood))
	c.Record(NewDepositEvent(2, components.ItemWood))
	c.Record(NewDepositEvent(3, components.ItemStone))
	c.Record(NewDepositEvent(4, components.ItemCrop))

	stats := c.Flush(60, WorldCounts{})
	if stats.Deposits != 4 {
		t.Errorf("deposits = %d, want 4", stats.Deposits)
	}
	if stats.DepositsWood != 2 || stats.DepositsStone != 1 || stats.DepositsCrop != 1 {
		t.Errorf("per-type deposits wrong: wood %d stone %d crop %d",
			stats.DepositsWood, stats.DepositsStone, stats.DepositsCrop)
	}

	next := c.Flush(120, WorldCounts{})
	if next.DepositsWood != 0 || next.DepositsStone != 0 || next.DepositsCrop != 0 {
		t.Errorf("per-type deposits not reset: %+v", next)
	}
}

func TestCollector_CountsAndResets(t *testing.T) {
	c := NewCollector(1.0, testDT)

	c.Record(Event{Type: EventShot, Tick: 1})
	c.Record(Event{Type: EventShot, Tick: 2})
	c.Record(Event{Type: EventTreeFelled, Tick: 3})
	c.Record(NewCollectBankedEvent(4, components.ItemWood, 0.6))
	c.Record(NewDepositEvent(5, components.ItemWood))
	c.RecordShotRefused()

	stats := c.Flush(60, WorldCounts{Trees: 9, FallenTrees: 1})

	if stats.Shots != 2 || stats.ShotsRefused != 1 {
		t.Errorf("shot counts wrong: %d fired / %d refused", stats.Shots, stats.ShotsRefused)
	}
	if stats.TreesFelled != 1 || stats.Trees != 9 || stats.FallenTrees != 1 {
		t.Errorf("tree counts wrong: %+v", stats)
	}
	if stats.CollectsBanked != 1 || stats.Deposits != 1 {
		t.Errorf("economy counts wrong: %+v", stats)
	}
	if stats.FlightMeanSec < 0.59 || stats.FlightMeanSec > 0.61 {
		t.Errorf("flight mean wrong: %f", stats.FlightMeanSec)
	}

	// A fresh window starts from zero.
	next := c.Flush(120, WorldCounts{})
	if next.Shots != 0 || next.CollectsBanked != 0 || next.FlightMeanSec != 0 {
		t.Errorf("counters not reset: %+v", next)
	}
	if next.WindowStartTick != 60 {
		t.Errorf("expected window start 60, got %d", next.WindowStartTick)
	}
}
