package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tiniprime/RugRun/internal/games/runner"
	"github.com/tiniprime/RugRun/internal/platform/tui"
	"github.com/tiniprime/RugRun/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a variant picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant, then pick a
difficulty. After a run you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Leaderboard
  ?            - How to claim rewards / FAQ
  Q            - Quit

Examples:
  rugrun menu
  rugrun menu --fps 30
  rugrun menu --db ./rugrun.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	board, closeBoard := openBoard(quietLogger())
	defer closeBoard()

	runner.SetConfigPath(flagConfig)
	runner.SetLogger(quietLogger())

	cfg := terminalConfig()

	for {
		menuResult, err := tui.RunMenu(board, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(board, cfg.Identity, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		if menuResult.WantsAbout {
			info := tui.NewAboutInfo(loadVariant(), board)
			goBack, aboutErr := tui.RunAbout(info, cfg.ScreenW, cfg.ScreenH)
			if aboutErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", aboutErr)
			}
			if goBack {
				continue
			}
			break
		}

		gameID := menuResult.GameID
		if gameID == "" {
			break
		}

		game, err := registry.Create(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		preset, ok, err := tui.RunDifficultySelector(game.Title(), cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		if !ok {
			continue
		}
		runner.SetDifficultyPreset(string(preset))

		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, board, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}
}
