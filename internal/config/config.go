// Package config provides YAML-based variant configuration loading and
// pacing management for the runner.
package config

// RunnerConfig contains all configuration for one runner variant.
// Distances are in world units on the playfield, durations in ticks.
type RunnerConfig struct {
	Variant   VariantInfo    `yaml:"variant"`
	World     WorldConfig    `yaml:"world"`
	Physics   PhysicsConfig  `yaml:"physics"`
	Player    PlayerConfig   `yaml:"player"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Pickups   PickupConfig   `yaml:"pickups"`
	Scoring   ScoringConfig  `yaml:"scoring"`
	Pacing    PacingConfig   `yaml:"pacing"`
	Wallet    WalletConfig   `yaml:"wallet"`
	Links     LinksConfig    `yaml:"links"`
}

// VariantInfo holds the branding copy of a variant.
type VariantInfo struct {
	ID        string `yaml:"id"`
	Title     string `yaml:"title"`
	Tagline   string `yaml:"tagline"`
	StartHint string `yaml:"start_hint"`
	OverTitle string `yaml:"over_title"`
	OverLine  string `yaml:"over_line"`
	Ticker    string `yaml:"ticker"`
}

// WorldConfig defines the playfield in world units.
type WorldConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	GroundY float64 `yaml:"ground_y"`
}

// PhysicsConfig defines player physics.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"` // negative is up
	BaseSpeed   float64 `yaml:"base_speed"`
}

// PlayerConfig defines the fixed player sprite bounds.
type PlayerConfig struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ObstacleConfig defines obstacle spawning and hit testing.
type ObstacleConfig struct {
	SpawnOffset float64  `yaml:"spawn_offset"` // spawn at world width + offset
	MinWidth    float64  `yaml:"min_width"`
	WidthRange  float64  `yaml:"width_range"`
	MinHeight   float64  `yaml:"min_height"`
	HeightRange float64  `yaml:"height_range"`
	HitMargin   float64  `yaml:"hit_margin"` // obstacle box inset on left, right and top
	PruneX      float64  `yaml:"prune_x"`    // dropped once the trailing edge is at or left of this
	ClearLineX  float64  `yaml:"clear_line_x"`
	Categories  []string `yaml:"categories"`
}

// PickupConfig defines pickup spawning and hit testing.
type PickupConfig struct {
	Every         int      `yaml:"every"`
	Gate          float64  `yaml:"gate"` // spawn only when rand > gate
	MinLift       float64  `yaml:"min_lift"`
	LiftRange     float64  `yaml:"lift_range"`
	Size          float64  `yaml:"size"`
	Reach         float64  `yaml:"reach"` // pickup box grown by this on every side
	PruneX        float64  `yaml:"prune_x"`
	Denominations []int64  `yaml:"denominations"` // cents
	Labels        []string `yaml:"labels"`
}

// ScoringConfig defines passive accrual and pickup bonuses.
type ScoringConfig struct {
	TickEvery   int   `yaml:"tick_every"`
	TickPoints  int   `yaml:"tick_points"`
	TickCents   int64 `yaml:"tick_cents"`
	PickupBonus int   `yaml:"pickup_bonus"`
}

// PacingConfig defines how speed and obstacle cadence evolve with frames.
type PacingConfig struct {
	SpeedStepEvery     int     `yaml:"speed_step_every"`
	SpeedStep          float64 `yaml:"speed_step"`
	CadenceStart       int     `yaml:"cadence_start"`
	CadenceShrink      int     `yaml:"cadence_shrink"`
	CadenceShrinkEvery int     `yaml:"cadence_shrink_every"`
	CadenceFloor       int     `yaml:"cadence_floor"`
}

// WalletConfig holds the transfer and balance settings of a variant.
type WalletConfig struct {
	Treasury           string    `yaml:"treasury"`
	DefaultMint        string    `yaml:"default_mint"`
	RPCEndpoint        string    `yaml:"rpc_endpoint"`
	FeeReserveLamports uint64    `yaml:"fee_reserve_lamports"`
	PollSeconds        int       `yaml:"poll_seconds"`
	PresetAmounts      []float64 `yaml:"preset_amounts"`
	PercentButtons     []int     `yaml:"percent_buttons"`
}

// LinksConfig holds the community links shown on the about screen.
type LinksConfig struct {
	Community string `yaml:"community"` // where signed proofs are posted
	X         string `yaml:"x"`
	Telegram  string `yaml:"telegram"`
}

// DifficultyPreset represents a named pacing level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a flag value to a preset. Unknown values yield normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), true
	default:
		return DifficultyNormal, false
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
