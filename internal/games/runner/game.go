package runner

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/tiniprime/RugRun/internal/config"
	"github.com/tiniprime/RugRun/internal/core"
	"github.com/tiniprime/RugRun/internal/proof"
	"github.com/tiniprime/RugRun/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names use the
// configured pacing.
func SetDifficultyPreset(preset string) {
	if p, ok := config.ParsePreset(preset); ok {
		difficultyPreset = p
	} else {
		difficultyPreset = ""
	}
}

// SetLogger sets the logger handed to every new engine.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// Game adapts an Engine to the platform: it maps input frames onto engine
// intents and adds pausing.
type Game struct {
	variant string
	cfg     config.RunnerConfig
	engine  *Engine
	paused  bool
}

// NewGame creates a game for the given variant.
func NewGame(variant string) *Game {
	g := &Game{variant: variant}
	g.cfg = g.loadConfig()
	g.engine = New(g.cfg, WithLogger(logger))
	return g
}

func (g *Game) loadConfig() config.RunnerConfig {
	cfg, err := config.Load(g.variant, configPath)
	if err != nil {
		logger.Warn("using default config", "variant", g.variant, "err", err)
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	return cfg
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.variant
}

// Title returns the variant's display name.
func (g *Game) Title() string {
	return g.cfg.Variant.Title
}

// Reset builds a fresh engine in the Idle phase.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.cfg = g.loadConfig()
	g.engine = New(g.cfg,
		WithSeed(runtime.Seed),
		WithRecorder(runtime.Recorder),
		WithIdentity(runtime.Identity),
		WithLogger(logger),
	)
	g.paused = false
}

// Step applies the frame's intents, then advances the engine one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	phase := g.engine.State().Phase

	if in.Has(core.ActionPause) && phase == core.PhasePlaying {
		g.paused = !g.paused
	}
	if in.Has(core.ActionRestart) && phase == core.PhaseOver {
		g.engine.StartRun()
	}
	if in.Has(core.ActionJump) && !g.paused {
		g.engine.RequestJump()
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	res := g.engine.Step()
	res.State.Paused = g.paused
	return res
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	g.engine.Render(dst)
	if g.paused {
		drawCard(dst, []line{
			{"PAUSED", core.ColorYellow},
			{"Press P to resume", core.ColorGray},
		})
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := g.engine.State()
	st.Paused = g.paused
	return st
}

// LastProof returns the proof of the most recent finished run.
func (g *Game) LastProof() (proof.RunProof, bool) {
	return g.engine.LastProof()
}

// Engine exposes the underlying simulation.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Register the variants with the registry
func init() {
	for _, id := range []string{config.VariantRugRun, config.VariantGetRichQuick} {
		variant := id
		registry.Register(variant, func() registry.Game {
			return NewGame(variant)
		})
	}
}
