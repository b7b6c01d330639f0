package telemetry

import (
	"math"
	"testing"
)

func TestFlightStats(t *testing.T) {
	mean, std := FlightStats(nil)
	if mean != 0 || std != 0 {
		t.Errorf("empty sample should yield zeros, got %f/%f", mean, std)
	}

	mean, std = FlightStats([]float64{0.5})
	if mean != 0.5 || std != 0 {
		t.Errorf("single sample: expected 0.5/0, got %f/%f", mean, std)
	}

	mean, std = FlightStats([]float64{0.4, 0.6})
	if math.Abs(mean-0.5) > 1e-9 {
		t.Errorf("expected mean 0.5, got %f", mean)
	}
	if std <= 0 {
		t.Errorf("expected positive stddev, got %f", std)
	}
}

func TestPercentile(t *testing.T) {
	if Percentile(nil, 0.5) != 0 {
		t.Error("empty percentile should be 0")
	}

	values := []float64{5, 1, 3, 2, 4}
	if got := Percentile(values, 0); got != 1 {
		t.Errorf("p0: expected 1, got %f", got)
	}
	if got := Percentile(values, 1); got != 5 {
		t.Errorf("p100: expected 5, got %f", got)
	}
	mid := Percentile(values, 0.5)
	if mid < 2 || mid > 4 {
		t.Errorf("median outside [2,4]: %f", mid)
	}
	// Input must not be reordered.
	if values[0] != 5 {
		t.Error("Percentile mutated its input")
	}
}
