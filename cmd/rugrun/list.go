package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tiniprime/RugRun/internal/config"
	"github.com/tiniprime/RugRun/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available variants",
	Long:  `Shows every runner variant that can be played.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No variants available.")
		return
	}

	fmt.Println("Available variants:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Printf("  %-*s  %-14s %s\n", maxIDLen, "ID", "Title", "Tagline")
	fmt.Printf("  %-*s  %-14s %s\n", maxIDLen, "--", "-----", "-------")

	for _, g := range games {
		fmt.Printf("  %-*s  %-14s %s\n", maxIDLen, g.ID, g.Title, config.Default(g.ID).Variant.Tagline)
	}

	fmt.Println()
	fmt.Println("Run 'rugrun play <id>' to play.")
}
