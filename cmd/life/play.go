package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/platform/tui"
)

// Smallest terminal that shows the whole board plus the help line.
const (
	minTermWidth  = 80
	minTermHeight = 42
)

var playCmd = &cobra.Command{
	Use:   "play [pattern]",
	Short: "Start a session",
	Long: `Start a Game of Life session with the given seed pattern.
Without an argument the pattern from --pattern or the config is used.

Controls:
  Left mouse   Paint live cells
  Right mouse  Erase cells
  Alt / Shift  With a click, target the lower cell of a terminal row
  X / Space    Pause or resume
  Z / C        Clear the grid
  . / N        Advance one generation
  [ / ]        Slow down / speed up (frame skip)
  ?            Toggle help
  Q / Esc      Quit

Examples:
  life play
  life play glider
  life play acorn --seed 42 --frame-skip 2`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	if len(args) == 1 {
		flagPattern = args[0]
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closer, err := openLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	rt := runtimeConfig()
	if rt.ScreenW < minTermWidth || rt.ScreenH < minTermHeight {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the full board needs %dx%d\n",
			rt.ScreenW, rt.ScreenH, minTermWidth, minTermHeight)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	opts := tui.Options{
		Config:  cfg,
		Runtime: rt,
		Store:   store,
		Logger:  logger,
	}
	if err := tui.Run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runtimeConfig collects per-run values from flags and the terminal.
func runtimeConfig() core.RuntimeConfig {
	rt := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	rt.Seed = flagSeed
	rt.Player = flagPlayer
	return rt
}
