package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/registry"
	"github.com/vovakirdan/tui-life/internal/storage"
)

// loadConfig loads the YAML configuration and applies flag overrides.
func loadConfig(cmd *cobra.Command) (config.LifeConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if cmd.Flags().Changed("frame-skip") {
		cfg.Simulation.FrameSkip = flagFrameSkip
	}
	if flagPattern != "" {
		cfg.Simulation.Pattern = flagPattern
	}
	if !registry.Exists(cfg.Simulation.Pattern) {
		return cfg, fmt.Errorf("unknown pattern %q (run 'life patterns' to see available patterns)", cfg.Simulation.Pattern)
	}

	return cfg, nil
}

// openLogger returns a debug logger writing to --log-file, or a discarding
// logger. The returned closer must be called on exit.
func openLogger() (*log.Logger, io.Closer, error) {
	if flagLogFile == "" {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "life",
	})
	return logger, f, nil
}

// openStore opens the run history, degrading to no history on failure.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - the game still works
		return nil
	}
	return store
}
