package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/tiniprime/RugRun/internal/storage"
	"github.com/tiniprime/RugRun/internal/wallet"
)

var (
	flagLimit   int
	flagFullIDs bool
	flagAll     bool
	flagYes     bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the top runs on this device, shared by every variant.

Examples:
  rugrun scores
  rugrun scores --limit 50 --full`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

var bestCmd = &cobra.Command{
	Use:   "best",
	Short: "Show the best score of an identity",
	Long: `Print the best score recorded for --identity.

Examples:
  rugrun best
  rugrun best --identity AwPS9jNY6PRPcX6W3Z1djxyTsdrpkpCeDbsC93cZ8KHM`,
	Args: cobra.NoArgs,
	Run:  runBest,
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the leaderboard",
	Long: `Delete every leaderboard entry. Best scores are kept.

Examples:
  rugrun reset --yes`,
	Args: cobra.NoArgs,
	Run:  runReset,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", storage.DefaultTopScores, "Number of entries to show")
	scoresCmd.Flags().BoolVar(&flagFullIDs, "full", false, "Show full wallet addresses")
	bestCmd.Flags().BoolVar(&flagAll, "all", false, "Show the best score of every identity")
	resetCmd.Flags().BoolVar(&flagYes, "yes", false, "Skip the confirmation")
}

func runScores(cmd *cobra.Command, args []string) {
	board, closeBoard := openBoard(newLogger())
	defer closeBoard()

	scores := board.TopScores(flagLimit)

	fmt.Println("Leaderboard")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'rugrun play' to set the first score!")
		return
	}

	fmt.Printf("  %-4s  %-15s  %-8s  %s\n", "Rank", "Wallet", "Score", "Date")
	fmt.Printf("  %-4s  %-15s  %-8s  %s\n", "----", "------", "-----", "----")

	for i, entry := range scores {
		who := entry.Identity
		if !flagFullIDs {
			who = wallet.Truncate(who, 5)
		}
		dateStr := entry.RecordedAt.Local().Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-15s  %-8d  %s\n", i+1, who, entry.Score, dateStr)
	}

	stats := board.Stats()
	fmt.Println()
	fmt.Printf("Runs: %d  High: %d  Average: %.1f\n", stats.Entries, stats.HighScore, stats.AvgScore)
}

func runBest(cmd *cobra.Command, args []string) {
	board, closeBoard := openBoard(newLogger())
	defer closeBoard()

	if flagAll {
		all := board.BestScores()
		if len(all) == 0 {
			fmt.Println("No best scores recorded yet.")
			return
		}
		ids := make([]string, 0, len(all))
		for identity := range all {
			ids = append(ids, identity)
		}
		sort.Slice(ids, func(i, j int) bool { return all[ids[i]] > all[ids[j]] })
		for _, identity := range ids {
			fmt.Printf("  %-15s  %d\n", wallet.Truncate(identity, 5), all[identity])
		}
		return
	}

	fmt.Printf("Best (%s): %d\n", wallet.Truncate(flagIdentity, 5), board.BestScore(flagIdentity))
}

func runReset(cmd *cobra.Command, args []string) {
	if !flagYes {
		fmt.Fprintln(os.Stderr, "Error: this deletes every leaderboard entry; pass --yes to confirm")
		os.Exit(1)
	}

	board, closeBoard := openBoard(newLogger())
	defer closeBoard()

	board.ResetLeaderboard()
	fmt.Println("Leaderboard cleared.")
}
