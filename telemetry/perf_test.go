package telemetry

import (
	"testing"
	"time"
)

func TestPerfCollector_SampleWindow(t *testing.T) {
	p := NewPerfCollector(4)

	for i := 0; i < 6; i++ {
		p.StartTick()
		p.StartPhase(PhaseSpatialGrid)
		time.Sleep(time.Microsecond)
		p.StartPhase(PhaseItems)
		time.Sleep(time.Microsecond)
		p.EndTick()
	}

	stats := p.Stats()
	if stats.AvgTickDuration <= 0 {
		t.Error("expected positive average tick duration")
	}
	if stats.PhaseAvg[PhaseSpatialGrid] <= 0 || stats.PhaseAvg[PhaseItems] <= 0 {
		t.Errorf("expected both phases measured: %+v", stats.PhaseAvg)
	}
	if stats.TicksPerSecond <= 0 {
		t.Error("expected positive throughput")
	}
	if stats.P95TickDuration <= 0 {
		t.Error("expected positive p95 tick duration")
	}
	if stats.P95TickDuration > stats.MaxTickDuration {
		t.Errorf("p95 %v exceeds max %v", stats.P95TickDuration, stats.MaxTickDuration)
	}
	if csv := stats.ToCSV(240); csv.P95TickUS != stats.P95TickDuration.Microseconds() {
		t.Errorf("csv p95 = %d, want %d", csv.P95TickUS, stats.P95TickDuration.Microseconds())
	}
}

func TestPerfCollector_EmptyStats(t *testing.T) {
	p := NewPerfCollector(8)
	stats := p.Stats()
	if stats.AvgTickDuration != 0 {
		t.Errorf("expected zero average with no samples, got %v", stats.AvgTickDuration)
	}
	if stats.PhaseAvg == nil || stats.PhasePct == nil {
		t.Error("expected non-nil maps for empty stats")
	}
	if stats.P95TickDuration != 0 {
		t.Errorf("expected zero p95 with no samples, got %v", stats.P95TickDuration)
	}
}
