package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tiniprime/RugRun/internal/config"
	"github.com/tiniprime/RugRun/internal/core"
	"github.com/tiniprime/RugRun/internal/games/runner"
	"github.com/tiniprime/RugRun/internal/platform/tui"
	"github.com/tiniprime/RugRun/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start a run of the given variant (default: rugrun).

Controls:
  Space/Up/W  - Jump (also starts the run)
  Enter/R     - Restart after game over
  C           - Copy the run proof
  P           - Pause
  B/Esc       - Leave (when paused or after game over)
  Q/Ctrl+C    - Quit
  Ctrl+S      - Save a screenshot

Difficulty options:
  easy   - Slower ramp, more room between scams
  normal - Speed and spawn rate ramp up as you go
  hard   - Faster from the first frame
  fixed  - No ramp, the pace never changes

Examples:
  rugrun play
  rugrun play getrichquick
  rugrun play --difficulty hard
  rugrun play --config ./my-rugrun.yaml
  rugrun play --identity AwPS9jNY6PRPcX6W3Z1djxyTsdrpkpCeDbsC93cZ8KHM`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom variant config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// terminalConfig builds the runtime config from the flags and terminal size.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Identity: flagIdentity,
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := config.VariantRugRun
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'rugrun list' to see available variants.")
		os.Exit(1)
	}
	if flagDifficulty != "" {
		if _, ok := config.ParsePreset(flagDifficulty); !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", flagDifficulty)
			os.Exit(1)
		}
	}

	runner.SetConfigPath(flagConfig)
	runner.SetDifficultyPreset(flagDifficulty)
	runner.SetLogger(quietLogger())

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	board, closeBoard := openBoard(quietLogger())

	runErr := tui.Run(game, board, terminalConfig())

	// Close store before potential exit
	closeBoard()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
