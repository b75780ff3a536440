package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available game modes",
	Long:  `Shows every registered game mode with its ID.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available modes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, "ID", "Field", "Title")
	fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, "--", "-----", "-----")

	for _, g := range games {
		fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, g.ID, fmt.Sprintf("%dx%d", g.Width, g.Height), g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'shooter play classic' or 'shooter play endless' to play.")
}
