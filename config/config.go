// Package config provides configuration loading and access for the
// farm simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	World     WorldConfig     `yaml:"world"`
	Farmer    FarmerConfig    `yaml:"farmer"`
	Orbit     OrbitConfig     `yaml:"orbit"`
	Tools     ToolsConfig     `yaml:"tools"`
	Growth    GrowthConfig    `yaml:"growth"`
	Stations  []StationConfig `yaml:"stations"`
	Spawns    SpawnConfig     `yaml:"spawns"`
	Audio     AudioConfig     `yaml:"audio"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// WorldConfig holds the bounded world dimensions. World can be larger
// than the screen; the camera handles the viewport.
type WorldConfig struct {
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	GridCellSize float64 `yaml:"grid_cell_size"`
	DT           float64 `yaml:"dt"` // seconds per tick
}

// FarmerConfig holds movement parameters for the character.
type FarmerConfig struct {
	Speed          float64 `yaml:"speed"`
	PickupRadius   float64 `yaml:"pickup_radius"`
	HolderSlots    int     `yaml:"holder_slots"`
	WaypointRepick float64 `yaml:"waypoint_repick"` // seconds between headless waypoints
}

// OrbitConfig tunes how equipped items circle their holder.
type OrbitConfig struct {
	Radius       float64 `yaml:"radius"`
	Smoothing    float64 `yaml:"smoothing"`     // exponential rate toward the orbit point
	FaceRate     float64 `yaml:"face_rate"`     // shortest-arc rate toward facing
	HoverHeight  float64 `yaml:"hover_height"`  // rest draw height when dropped
	PulseScale   float64 `yaml:"pulse_scale"`   // scale at pulse start
	PulseSeconds float64 `yaml:"pulse_seconds"` // pulse duration
}

// ToolsConfig groups per-tool tuning.
type ToolsConfig struct {
	Axe         MeleeToolConfig  `yaml:"axe"`
	Shovel      MeleeToolConfig  `yaml:"shovel"`
	WateringCan RangedToolConfig `yaml:"watering_can"`
	SeedBag     RangedToolConfig `yaml:"seed_bag"`
	Basket      BasketConfig     `yaml:"basket"`
}

// MeleeToolConfig tunes a contact tool (axe, shovel).
type MeleeToolConfig struct {
	Amount      float64 `yaml:"amount"`
	Range       float64 `yaml:"range"`
	ScanRadius  float64 `yaml:"scan_radius"`
	HitCooldown float64 `yaml:"hit_cooldown"` // per-target seconds
	PurgeTicks  int     `yaml:"purge_ticks"`  // dead-handle purge interval
}

// RangedToolConfig tunes a projectile tool (watering can, seed bag).
type RangedToolConfig struct {
	FireRate        float64 `yaml:"fire_rate"` // shots per second
	Amount          float64 `yaml:"amount"`
	ScanRadius      float64 `yaml:"scan_radius"`
	ProjectileSpeed float64 `yaml:"projectile_speed"`
	HitRadius       float64 `yaml:"hit_radius"`
	PoolSize        int     `yaml:"pool_size"`
	ShotCost        float64 `yaml:"shot_cost"`
	PoolMax         float64 `yaml:"pool_max"` // resource capacity; 0 = no pool
}

// BasketConfig tunes the collector tool.
type BasketConfig struct {
	Capacity     int     `yaml:"capacity"`
	ScanRadius   float64 `yaml:"scan_radius"`
	PullDelay    float64 `yaml:"pull_delay"`
	DepositEvery float64 `yaml:"deposit_every"`
	FlightTime   float64 `yaml:"flight_time"`
}

// GrowthConfig tunes plants, trees, dig sites and the well.
type GrowthConfig struct {
	Plant   PlantConfig   `yaml:"plant"`
	Tree    TreeConfig    `yaml:"tree"`
	DigSite DigSiteConfig `yaml:"dig_site"`
	Well    WellConfig    `yaml:"well"`

	SettleSeconds float64 `yaml:"settle_seconds"` // collectable settle after spawn
}

// PlantConfig tunes plant leveling and harvest.
type PlantConfig struct {
	WaterPerLevel float64 `yaml:"water_per_level"`
	MaxLevel      int     `yaml:"max_level"`
	HarvestDrop   int     `yaml:"harvest_drop"`
	DropToLevel   int     `yaml:"drop_to_level"`
}

// TreeConfig tunes chopping and drops.
type TreeConfig struct {
	ChopRequired  float64 `yaml:"chop_required"`
	DropCount     int     `yaml:"drop_count"`
	ScatterRadius float64 `yaml:"scatter_radius"`
}

// DigSiteConfig tunes the dig-then-seed thresholds and the stone
// unearthed when a site is dug open.
type DigSiteConfig struct {
	DigRequired   float64 `yaml:"dig_required"`
	SeedsRequired float64 `yaml:"seeds_required"`
	StoneDrop     int     `yaml:"stone_drop"`
	ScatterRadius float64 `yaml:"scatter_radius"`
}

// WellConfig tunes watering-can refill.
type WellConfig struct {
	Rate   float64 `yaml:"rate"`
	Radius float64 `yaml:"radius"`
}

// StationConfig declares one deposit station and its requirements.
type StationConfig struct {
	AcceptPartial bool                     `yaml:"accept_partial"`
	Reusable      bool                     `yaml:"reusable"`
	DockRadius    float64                  `yaml:"dock_radius"`
	Requires      []StationRequirementSpec `yaml:"requires"`
}

// StationRequirementSpec is one requirement line in the config file.
type StationRequirementSpec struct {
	Type   string `yaml:"type"`
	Amount int    `yaml:"amount"`
}

// SpawnConfig holds initial world population counts.
type SpawnConfig struct {
	Trees    int `yaml:"trees"`
	DigSites int `yaml:"dig_sites"`
	Plants   int `yaml:"plants"`
}

// AudioConfig holds per-sound pitch ranges. Audio is best-effort;
// Enabled=false or a failed device skips playback silently.
type AudioConfig struct {
	Enabled bool                   `yaml:"enabled"`
	Sounds  map[string]SoundConfig `yaml:"sounds"`
}

// SoundConfig is one sound definition: base frequency plus the pitch
// multiplier range sampled per play.
type SoundConfig struct {
	Frequency float64 `yaml:"frequency"`
	PitchMin  float64 `yaml:"pitch_min"`
	PitchMax  float64 `yaml:"pitch_max"`
	Seconds   float64 `yaml:"seconds"`
}

// TelemetryConfig holds stats collection settings.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // seconds per stats window
	LogStats    bool    `yaml:"log_stats"`
}

// DerivedConfig holds values computed after loading.
type DerivedConfig struct {
	DT32     float32
	WorldW32 float32
	WorldH32 float32
}

var global *Config

// Init loads configuration and installs it as the global config.
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is Init that panics on failure. Used by tests.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global config. Panics if Init was never called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load reads the embedded defaults and overlays the optional user
// config file on top.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into the same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()

	return cfg, nil
}

func (c *Config) computeDerived() {
	c.Derived.DT32 = float32(c.World.DT)

	// World dimensions default to screen size if not specified
	worldW := c.World.Width
	if worldW == 0 {
		worldW = c.Screen.Width
	}
	worldH := c.World.Height
	if worldH == 0 {
		worldH = c.Screen.Height
	}
	c.Derived.WorldW32 = float32(worldW)
	c.Derived.WorldH32 = float32(worldH)
}

// WriteYAML writes the effective config to a file, for run snapshots.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
