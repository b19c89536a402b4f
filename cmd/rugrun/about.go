package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tiniprime/RugRun/internal/platform/tui"
)

var aboutCmd = &cobra.Command{
	Use:     "about [rewards|faq|links]",
	Aliases: []string{"faq", "rewards"},
	Short:   "How to claim rewards, the FAQ and community links",
	Long: `Print how claiming rewards works, the FAQ and the community links.
Pass a page name to print only that page.

Examples:
  rugrun about
  rugrun about faq
  rugrun about links --variant getrichquick`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"rewards", "faq", "links"},
	Run:       runAbout,
}

// aboutSections maps the optional page argument to the pages to print.
func aboutSections(args []string) ([]tui.AboutSection, error) {
	if len(args) == 0 {
		return nil, nil
	}
	s, ok := tui.ParseAboutSection(args[0])
	if !ok {
		return nil, fmt.Errorf("unknown page %q (valid: rewards, faq, links)", args[0])
	}
	return []tui.AboutSection{s}, nil
}

func runAbout(_ *cobra.Command, args []string) {
	sections, err := aboutSections(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	board, closeBoard := openBoard(quietLogger())
	defer closeBoard()

	info := tui.NewAboutInfo(loadVariant(), board)
	width := min(terminalConfig().ScreenW, 80)
	fmt.Print(tui.AboutText(info, width, sections...))
}
