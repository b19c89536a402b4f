package core

// RuntimeConfig contains configuration passed to the engine by the platform.
type RuntimeConfig struct {
	ScreenW  int    // Screen width in characters
	ScreenH  int    // Screen height in characters
	TickRate int    // Simulation ticks per second (default 60)
	Seed     int64  // RNG seed for deterministic gameplay
	Identity string // Who scores are attributed to (wallet address or "guest")

	// Recorder receives every finished run. Nil disables persistence.
	Recorder ScoreRecorder
}

// ScoreRecorder persists finished runs. Implementations are best-effort:
// they swallow their own failures and never block the caller for long.
type ScoreRecorder interface {
	AppendScore(identity string, score int)
	RecordBestScore(identity string, score int)
}

// BestScorer is optionally implemented by a ScoreRecorder that can report
// the stored best score of an identity.
type BestScorer interface {
	BestScore(identity string) int
}

// GuestIdentity is used when no wallet is connected.
const GuestIdentity = "guest"

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
		Identity: GuestIdentity,
	}
}

// Phase is the run lifecycle state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePlaying
	PhaseOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlaying:
		return "playing"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// GameState is the summary the platform needs after every tick.
type GameState struct {
	Phase  Phase
	Score  int
	Paused bool
}

// GameOver reports whether the run has ended.
func (s GameState) GameOver() bool {
	return s.Phase == PhaseOver
}

// StepResult is returned by Step after each simulation tick.
type StepResult struct {
	State GameState
	Ended bool // True only on the tick where the run transitioned to Over
}
