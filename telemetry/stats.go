package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartTick int64   `csv:"-"`
	WindowEndTick   int64   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// World snapshot at window end
	Trees           int     `csv:"trees"`
	FallenTrees     int     `csv:"fallen_trees"`
	Plants          int     `csv:"plants"`
	Collectables    int     `csv:"collectables"`
	HeldItems       int     `csv:"held_items"`
	StationProgress float64 `csv:"station_progress"`

	// Events during window
	Shots            int `csv:"shots"`
	ShotsRefused     int `csv:"shots_refused"`
	MeleeHits        int `csv:"melee_hits"`
	TreesFelled      int `csv:"trees_felled"`
	PlantLevelUps    int `csv:"plant_level_ups"`
	HarvestsReady    int `csv:"harvests_ready"`
	CollectsStarted  int `csv:"collects_started"`
	CollectsBanked   int `csv:"collects_banked"`
	CollectsAborted  int `csv:"collects_aborted"`
	Deposits         int `csv:"deposits"`
	DepositsWood     int `csv:"deposits_wood"`
	DepositsStone    int `csv:"deposits_stone"`
	DepositsCrop     int `csv:"deposits_crop"`
	StationsComplete int `csv:"stations_complete"`
	SitesDug         int `csv:"sites_dug"`
	SitesPlanted     int `csv:"sites_planted"`

	// Collection flight aggregates
	FlightMeanSec float64 `csv:"flight_mean_sec"`
	FlightStdSec  float64 `csv:"flight_std_sec"`
}

// FlightStats returns mean and standard deviation of the sampled
// flight durations. Zero for an empty window.
func FlightStats(values []float64) (mean, std float64) {
	if len(values) == 0 {
		return 0, 0
	}
	mean = stat.Mean(values, nil)
	if len(values) > 1 {
		std = stat.StdDev(values, nil)
	}
	return mean, std
}

// Percentile calculates the p-th percentile of values, p in [0, 1].
// Returns 0 for an empty slice.
func Percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[len(sorted)-1]
	}
	return stat.Quantile(p, stat.Empirical, sorted, nil)
}

// LogValue lets WindowStats render as structured slog output.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("trees", s.Trees),
		slog.Int("fallen_trees", s.FallenTrees),
		slog.Int("plants", s.Plants),
		slog.Int("collectables", s.Collectables),
		slog.Float64("station_progress", s.StationProgress),
		slog.Int("shots", s.Shots),
		slog.Int("melee_hits", s.MeleeHits),
		slog.Int("trees_felled", s.TreesFelled),
		slog.Int("collects_banked", s.CollectsBanked),
		slog.Int("deposits", s.Deposits),
		slog.Int("stations_complete", s.StationsComplete),
	)
}
