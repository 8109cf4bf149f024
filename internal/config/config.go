// Package config provides YAML-based configuration loading for the life engine.
package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/tui-life/internal/core"
)

// LifeConfig contains all configuration for the game.
type LifeConfig struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Display    DisplayConfig    `yaml:"display"`
	Controls   ControlsConfig   `yaml:"controls"`
}

// SimulationConfig defines how the grid is seeded and stepped.
type SimulationConfig struct {
	AliveProbability float64 `yaml:"alive_probability"`
	FrameSkip        uint32  `yaml:"frame_skip"`
	Pattern          string  `yaml:"pattern"`
}

// DisplayConfig defines colors and timed overlays.
type DisplayConfig struct {
	BannerSeconds      int      `yaml:"banner_seconds"`
	PaletteCycleFrames uint64   `yaml:"palette_cycle_frames"` // 0 disables cycling
	Palette            []string `yaml:"palette"`
	AliveColor         uint8    `yaml:"alive_color"` // palette slot 1-4
	DeadColor          uint8    `yaml:"dead_color"`  // palette slot 1-4
}

// ControlsConfig maps terminal keys to virtual buttons and host actions.
type ControlsConfig struct {
	Pause    []string `yaml:"pause"`
	Clear    []string `yaml:"clear"`
	Step     []string `yaml:"step"`
	SlowDown []string `yaml:"slow_down"`
	SpeedUp  []string `yaml:"speed_up"`
}

// Validate checks value ranges. It reports every problem at once.
func (c LifeConfig) Validate() error {
	var errs []error

	p := c.Simulation.AliveProbability
	if math.IsNaN(p) || p < 0 || p > 1 {
		errs = append(errs, fmt.Errorf("simulation.alive_probability %v outside [0, 1]", p))
	}
	if c.Simulation.Pattern == "" {
		errs = append(errs, errors.New("simulation.pattern must not be empty"))
	}
	if c.Display.BannerSeconds < 0 {
		errs = append(errs, fmt.Errorf("display.banner_seconds %d is negative", c.Display.BannerSeconds))
	}
	if len(c.Display.Palette) != core.PaletteSize {
		errs = append(errs, fmt.Errorf("display.palette has %d colors, expected %d", len(c.Display.Palette), core.PaletteSize))
	} else if _, err := c.Palette(); err != nil {
		errs = append(errs, err)
	}
	if !validSlot(c.Display.AliveColor) {
		errs = append(errs, fmt.Errorf("display.alive_color %d outside 1-4", c.Display.AliveColor))
	}
	if !validSlot(c.Display.DeadColor) {
		errs = append(errs, fmt.Errorf("display.dead_color %d outside 1-4", c.Display.DeadColor))
	}
	if len(c.Controls.Pause) == 0 || len(c.Controls.Clear) == 0 {
		errs = append(errs, errors.New("controls.pause and controls.clear need at least one key"))
	}

	return errors.Join(errs...)
}

func validSlot(v uint8) bool {
	return v >= uint8(core.P1) && v <= uint8(core.P4)
}

// Palette parses the configured hex colors.
func (c LifeConfig) Palette() (core.Palette, error) {
	var p core.Palette
	if len(c.Display.Palette) != core.PaletteSize {
		return p, fmt.Errorf("display.palette has %d colors, expected %d", len(c.Display.Palette), core.PaletteSize)
	}
	for i, s := range c.Display.Palette {
		color, err := core.ParseHex(s)
		if err != nil {
			return p, fmt.Errorf("display.palette[%d]: %w", i, err)
		}
		p[i] = color
	}
	return p, nil
}

// AliveColor returns the palette selector for live cells.
func (c LifeConfig) AliveColor() core.PaletteColor {
	return core.PaletteColor(c.Display.AliveColor)
}

// DeadColor returns the palette selector for dead cells.
func (c LifeConfig) DeadColor() core.PaletteColor {
	return core.PaletteColor(c.Display.DeadColor)
}
