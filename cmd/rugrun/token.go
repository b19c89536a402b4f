package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tiniprime/RugRun/internal/config"
	"github.com/tiniprime/RugRun/internal/storage"
	"github.com/tiniprime/RugRun/internal/wallet"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Show the token mint and its explorer links",
	Long: `Print the token mint the game points at, with Solscan and
Dexscreener links. The mint is stored on this device and falls back to the
variant's default.

Examples:
  rugrun token
  rugrun token set BxThE9mZyYCgHuaCSKw5Az4pUzhspUcG8fiYr4AWpump
  rugrun token clear`,
	Args: cobra.NoArgs,
	Run:  runToken,
}

var tokenSetCmd = &cobra.Command{
	Use:   "set <mint>",
	Short: "Store a token mint on this device",
	Args:  cobra.ExactArgs(1),
	Run:   runTokenSet,
}

var tokenClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget the stored mint and use the default",
	Args:  cobra.NoArgs,
	Run:   runTokenClear,
}

func init() {
	tokenCmd.AddCommand(tokenSetCmd)
	tokenCmd.AddCommand(tokenClearCmd)
}

// loadVariant loads the config of flagVariant, reporting problems on stderr.
func loadVariant() config.RunnerConfig {
	cfg, err := config.Load(flagVariant, flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	return cfg
}

func printMint(board *storage.Leaderboard, cfg config.RunnerConfig) {
	mint := board.TokenMint(cfg.Wallet.DefaultMint)
	fmt.Printf("$%s mint: %s\n", cfg.Variant.Ticker, mint)
	fmt.Println()
	fmt.Printf("  Solscan:     %s\n", wallet.SolscanTokenURL(mint))
	fmt.Printf("  Dexscreener: %s\n", wallet.DexscreenerURL(mint))
}

func runToken(cmd *cobra.Command, args []string) {
	board, closeBoard := openBoard(newLogger())
	defer closeBoard()

	printMint(board, loadVariant())
}

func runTokenSet(cmd *cobra.Command, args []string) {
	board, closeBoard := openBoard(newLogger())
	defer closeBoard()

	board.SetTokenMint(args[0])
	printMint(board, loadVariant())
}

func runTokenClear(cmd *cobra.Command, args []string) {
	board, closeBoard := openBoard(newLogger())
	defer closeBoard()

	board.SetTokenMint("")
	printMint(board, loadVariant())
}
