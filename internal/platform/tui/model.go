package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tiniprime/RugRun/internal/core"
	"github.com/tiniprime/RugRun/internal/registry"
	"github.com/tiniprime/RugRun/internal/storage"
)

const statusDuration = 3 * time.Second

// GameModel runs one variant: it owns the tick loop, maps keys onto the
// input frame and handles the platform-side keys (copy proof, screenshot).
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	board      *storage.Leaderboard
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	proofDir   string
	status     string
	statusID   int
	standalone bool // Back quits instead of returning to a menu
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game model. Finished runs are recorded on board
// when it is non-nil.
func NewGameModel(game registry.Game, board *storage.Leaderboard, cfg core.RuntimeConfig) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if cfg.Identity == "" {
		cfg.Identity = core.GuestIdentity
	}
	if board != nil {
		cfg.Recorder = board
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		board:      board,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		proofDir:   proofDir(),
	}
}

// Init initializes the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The playfield is scaled into whatever size we get, so the run
		// survives a resize.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()

	case statusClearMsg:
		if msg.id == m.statusID {
			m.status = ""
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		return m.setStatus(m.saveScreenshot())
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame, m.gameState.Phase) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back only works while idle, paused or after game over
	if m.inputFrame.Has(core.ActionBack) {
		m.inputFrame.Clear()
		if m.gameState.Phase == core.PhasePlaying && !m.gameState.Paused {
			return m, nil
		}
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
		return m, nil
	}

	if m.inputFrame.Has(core.ActionCopyProof) {
		return m.setStatus(m.copyProof())
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	// Restart continues on the game's own RNG; the engine is not rebuilt.
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// copyProof copies the last run's proof, if there is one.
func (m GameModel) copyProof() string {
	prover, ok := m.game.(registry.Prover)
	if !ok {
		return "No proof available"
	}
	p, ok := prover.LastProof()
	if !ok {
		return "Finish a run to get a proof"
	}
	status, err := CopyProof(p, m.proofDir)
	if err != nil {
		return "Could not save proof: " + err.Error()
	}
	return status
}

func (m GameModel) setStatus(text string) (tea.Model, tea.Cmd) {
	m.statusID++
	m.status = text
	return m, clearStatusCmd(m.statusID, statusDuration)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() string {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "Screenshot failed"
	}
	dir := filepath.Join(home, ".rugrun", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "Screenshot failed"
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "Screenshot failed"
	}
	return "Screenshot saved to " + path
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	if m.status != "" {
		row := m.screen.Height() - 1
		m.screen.DrawHLine(0, row, m.screen.Width(), ' ', core.ColorDefault)
		m.screen.DrawTextCentered(row, m.status, core.ColorYellow)
	}

	return RenderScreen(m.screen)
}

// State returns the last observed game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single variant until the user quits.
func Run(game registry.Game, board *storage.Leaderboard, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, board, cfg)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
