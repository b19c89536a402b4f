// rugrun is an endless runner for the terminal: dodge rugs, stack bags.
//
// Usage:
//
//	rugrun list                - List available variants
//	rugrun play [variant]      - Play a variant
//	rugrun menu                - Start menu to pick variants interactively
//	rugrun serve               - Start SSH server for remote play
//	rugrun scores              - Show the leaderboard
//	rugrun best                - Show the best score of an identity
//	rugrun reset               - Clear the leaderboard
//	rugrun token [set <mint>]  - Show or change the token mint
//	rugrun balance <address>   - Show a SOL balance
//	rugrun buy <amount|pct%>   - Send SOL to the treasury
//	rugrun about [page]        - How to claim rewards, FAQ and links
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set database path (default: ~/.rugrun/rugrun.db)
//	--identity <name>  - Who scores are attributed to (default: guest)
//	--log-level <lvl>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/tiniprime/RugRun/internal/config"
	"github.com/tiniprime/RugRun/internal/core"
	"github.com/tiniprime/RugRun/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagIdentity string
	flagLogLevel string
	flagVariant  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rugrun",
	Short: "RugRun - dodge the rugs, stack the bags",
	Long: `RugRun is an endless runner for your terminal. Jump over rugs and
scams, grab the bags, and get on the leaderboard.

Available commands:
  list     - Show all variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  serve    - Start SSH server for remote play
  scores   - View the leaderboard
  best     - Show a best score
  reset    - Clear the leaderboard
  token    - Show or change the token mint
  balance  - Show a SOL balance
  buy      - Send SOL to the treasury
  about    - How to claim rewards, FAQ and links

Examples:
  rugrun play
  rugrun play getrichquick --difficulty hard
  rugrun menu
  rugrun serve --ssh :2222
  rugrun scores`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		// A missing .env is fine
		_ = godotenv.Load()
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.rugrun/rugrun.db", "Path to leaderboard database")
	rootCmd.PersistentFlags().StringVar(&flagIdentity, "identity", core.GuestIdentity, "Wallet address or name scores are recorded under")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagVariant, "variant", config.VariantRugRun, "Variant whose wallet settings and links the token, balance, buy and about commands use")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(bestCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(tokenCmd)
	rootCmd.AddCommand(balanceCmd)
	rootCmd.AddCommand(buyCmd)
	rootCmd.AddCommand(aboutCmd)
}

// newLogger returns the stderr logger for non-interactive commands.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "rugrun",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// quietLogger is used while a full-screen UI owns the terminal.
func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

// openBoard opens the leaderboard database. When it cannot be opened the
// leaderboard falls back to memory and close is a no-op.
func openBoard(logger *log.Logger) (board *storage.Leaderboard, closeFn func()) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open leaderboard database: %v\n", err)
		return storage.NewLeaderboard(storage.NewMemory(), storage.WithLogger(logger)), func() {}
	}
	return storage.NewLeaderboard(store, storage.WithLogger(logger)), func() { store.Close() }
}
