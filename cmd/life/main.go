// life is Conway's Game of Life in the terminal.
//
// Usage:
//
//	life patterns            - List available seed patterns
//	life play [pattern]      - Run a session
//	life menu                - Pick a pattern interactively
//	life runs [pattern]      - Show the longest recorded runs
//	life serve               - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>      - Custom config YAML
//	--seed <value>       - Set RNG seed for reproducible runs
//	--frame-skip <k>     - Run the simulation every k-th tick
//	--pattern <id>       - Seed pattern (default from config)
//	--db <path>          - Set database path (default: ~/.tui-life/runs.db)
//	--log-file <path>    - Write debug logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import patterns to register them
	_ "github.com/vovakirdan/tui-life/internal/patterns"
)

var (
	// Global flags
	flagConfig    string
	flagSeed      int64
	flagFrameSkip uint32
	flagPattern   string
	flagDBPath    string
	flagLogFile   string
	flagPlayer    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "life",
	Short: "Conway's Game of Life in your terminal",
	Long: `life runs Conway's Game of Life on an 80x80 toroidal grid.

Paint cells with the left mouse button, erase with the right one,
pause with X and clear with Z.

Available commands:
  patterns - Show all seed patterns
  play     - Start a session directly
  menu     - Interactive pattern picker
  runs     - View the longest runs
  serve    - Start SSH server for remote play

Examples:
  life play
  life play gosper-gun --frame-skip 4
  life menu
  life serve --ssh :2222
  life runs acorn`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().Uint32Var(&flagFrameSkip, "frame-skip", 0, "Run the simulation every k-th tick (0 = every tick)")
	rootCmd.PersistentFlags().StringVar(&flagPattern, "pattern", "", "Seed pattern ID (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tui-life/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write debug logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", defaultPlayer(), "Name recorded with the run history")

	// Add subcommands
	rootCmd.AddCommand(patternsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(serveCmd)
}

func defaultPlayer() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "local"
}
