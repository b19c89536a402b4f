// Package runner implements the meme-token endless runner: the player jumps
// over scams while the run accrues score and cash.
//
// The Engine is a pure simulation driven one tick at a time through Step.
// It knows nothing about terminals or timers; the platform calls Step at a
// steady rate and forwards jump intents between ticks.
package runner

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tiniprime/RugRun/internal/config"
	"github.com/tiniprime/RugRun/internal/core"
	"github.com/tiniprime/RugRun/internal/proof"
)

// RunState is the mutable state of one run.
type RunState struct {
	Phase            core.Phase
	PlayerY          float64 // Top of the player sprite in world units
	PlayerVelocity   float64 // Positive is down
	Airborne         bool
	Score            int
	Cents            int64 // currency accrued, in cents
	ObstaclesCleared int
	Speed            float64
	Frame            int
}

// Currency returns the accrued currency in whole units.
func (s RunState) Currency() float64 {
	return float64(s.Cents) / 100
}

// Snapshot is a read-only copy of the engine state.
type Snapshot struct {
	RunState
	Obstacles []Obstacle
	Pickups   []Pickup
}

// Engine owns a RunState and advances it.
type Engine struct {
	cfg      config.RunnerConfig
	pacing   *config.Pacing
	rng      *rand.Rand
	recorder core.ScoreRecorder
	proofs   *proof.Builder
	identity string
	log      *log.Logger

	state     RunState
	obstacles *ObstacleManager
	pickups   *PickupManager
	lastProof *proof.RunProof
	best      int
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand sets the random source used for spawns.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) { e.rng = r }
}

// WithSeed seeds the random source used for spawns.
func WithSeed(seed int64) Option {
	return func(e *Engine) { e.rng = rand.New(rand.NewSource(seed)) }
}

// WithRecorder sets where finished runs are persisted.
func WithRecorder(r core.ScoreRecorder) Option {
	return func(e *Engine) { e.recorder = r }
}

// WithProofs sets the proof builder used on game over.
func WithProofs(b *proof.Builder) Option {
	return func(e *Engine) { e.proofs = b }
}

// WithIdentity sets who runs are attributed to.
func WithIdentity(identity string) Option {
	return func(e *Engine) { e.identity = identity }
}

// WithLogger sets the engine logger.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// New creates an engine in the Idle phase with the player on the ground.
func New(variant config.RunnerConfig, opts ...Option) *Engine {
	e := &Engine{
		cfg:      variant,
		identity: core.GuestIdentity,
		log:      log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if e.proofs == nil {
		e.proofs = proof.NewBuilder(nil)
	}
	if e.identity == "" {
		e.identity = core.GuestIdentity
	}

	e.pacing = config.NewPacing(e.cfg.Pacing, e.cfg.Physics.BaseSpeed)
	e.obstacles = NewObstacleManager(e.rng, &e.cfg)
	e.pickups = NewPickupManager(e.rng, &e.cfg)
	e.reset()
	e.state.Phase = core.PhaseIdle
	e.refreshBest()
	return e
}

// reset restores the initial run values. The phase is left to the caller.
func (e *Engine) reset() {
	e.state = RunState{
		PlayerY: e.groundTop(),
		Speed:   e.cfg.Physics.BaseSpeed,
	}
	e.obstacles.Reset()
	e.pickups.Reset()
	e.lastProof = nil
}

func (e *Engine) groundTop() float64 {
	return e.cfg.World.GroundY - e.cfg.Player.Height
}

func (e *Engine) refreshBest() {
	if bs, ok := e.recorder.(core.BestScorer); ok {
		e.best = bs.BestScore(e.identity)
	}
}

// StartRun resets the run and enters Playing. Valid from any phase.
func (e *Engine) StartRun() {
	e.reset()
	e.state.Phase = core.PhasePlaying
	e.log.Debug("run started", "identity", e.identity)
}

// RequestJump starts a run from Idle, jumps when Playing on the ground and
// does nothing otherwise.
func (e *Engine) RequestJump() {
	switch e.state.Phase {
	case core.PhaseIdle:
		e.StartRun()
	case core.PhasePlaying:
		if !e.state.Airborne {
			e.state.PlayerVelocity = e.cfg.Physics.JumpImpulse
			e.state.Airborne = true
		}
	}
}

// playerBox returns the player's collision box.
func (e *Engine) playerBox() core.Box {
	return core.NewBox(e.cfg.Player.X, e.state.PlayerY, e.cfg.Player.Width, e.cfg.Player.Height)
}

// Step advances the simulation by exactly one tick. It is a no-op unless the
// run is Playing.
func (e *Engine) Step() core.StepResult {
	if e.state.Phase != core.PhasePlaying {
		return core.StepResult{State: e.State()}
	}
	s := &e.state

	s.Frame++
	s.Speed = e.pacing.Speed(s.Frame)

	if s.Frame%e.cfg.Scoring.TickEvery == 0 {
		s.Score += e.cfg.Scoring.TickPoints
		s.Cents += e.cfg.Scoring.TickCents
	}

	if e.pacing.SpawnDue(s.Frame) {
		e.obstacles.Spawn()
	}
	if s.Frame%e.cfg.Pickups.Every == 0 {
		e.pickups.MaybeSpawn()
	}

	// Physics
	s.PlayerVelocity += e.cfg.Physics.Gravity
	s.PlayerY += s.PlayerVelocity
	if ground := e.groundTop(); s.PlayerY >= ground {
		s.PlayerY = ground
		s.PlayerVelocity = 0
		s.Airborne = false
	}

	e.obstacles.Advance(s.Speed)
	e.pickups.Advance(s.Speed)

	player := e.playerBox()
	if hit := e.obstacles.Collide(player); hit >= 0 {
		e.endRun(e.obstacles.Obstacles()[hit].Category)
		return core.StepResult{State: e.State(), Ended: true}
	}

	s.ObstaclesCleared += e.obstacles.MarkCleared(e.cfg.Obstacles.ClearLineX)

	if n, cents := e.pickups.Collect(player); n > 0 {
		s.Score += n * e.cfg.Scoring.PickupBonus
		s.Cents += cents
	}
	e.pickups.Prune()

	return core.StepResult{State: e.State()}
}

// endRun freezes the run, persists it and builds its proof.
func (e *Engine) endRun(cause string) {
	s := e.state
	e.state.Phase = core.PhaseOver

	if e.recorder != nil {
		e.recorder.AppendScore(e.identity, s.Score)
		e.recorder.RecordBestScore(e.identity, s.Score)
	}
	if s.Score > e.best {
		e.best = s.Score
	}

	currency := s.Currency()
	cleared := s.ObstaclesCleared
	p := e.proofs.Build(e.identity, proof.Summary{
		Score:            s.Score,
		Currency:         &currency,
		ObstaclesCleared: &cleared,
	})
	e.lastProof = &p

	e.log.Info("run over",
		"identity", e.identity,
		"score", s.Score,
		"cash", currency,
		"dodged", cleared,
		"cause", cause,
		"frames", s.Frame,
	)
}

// State returns the summary the platform needs.
func (e *Engine) State() core.GameState {
	return core.GameState{Phase: e.state.Phase, Score: e.state.Score}
}

// Snapshot returns a copy of the current run.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		RunState:  e.state,
		Obstacles: append([]Obstacle(nil), e.obstacles.Obstacles()...),
		Pickups:   append([]Pickup(nil), e.pickups.Pickups()...),
	}
}

// LastProof returns the proof of the most recent finished run.
// It is cleared when a new run starts.
func (e *Engine) LastProof() (proof.RunProof, bool) {
	if e.lastProof == nil {
		return proof.RunProof{}, false
	}
	return *e.lastProof, true
}

// Identity returns who runs are attributed to.
func (e *Engine) Identity() string {
	return e.identity
}

// BestScore returns the best score known for the engine's identity.
func (e *Engine) BestScore() int {
	return e.best
}

// Config returns the variant configuration.
func (e *Engine) Config() config.RunnerConfig {
	return e.cfg
}
