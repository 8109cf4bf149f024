package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/registry"
)

var patternsCmd = &cobra.Command{
	Use:     "patterns",
	Aliases: []string{"list", "ls"},
	Short:   "List available seed patterns",
	Run:     runPatterns,
}

func runPatterns(_ *cobra.Command, _ []string) {
	patterns := registry.List()

	if len(patterns) == 0 {
		fmt.Println("No patterns registered.")
		return
	}

	fmt.Println("Available patterns:")
	fmt.Println()
	for _, p := range patterns {
		fmt.Printf("  %-14s %s\n", p.ID, p.Title)
	}
	fmt.Println()
	fmt.Println("Run 'life play <pattern>' to start.")
}
