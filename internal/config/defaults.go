package config

import (
	_ "embed"
)

//go:embed defaults/life.yaml
var defaultLifeYAML []byte

// DefaultLifeConfig returns the default configuration.
func DefaultLifeConfig() LifeConfig {
	return LifeConfig{
		Simulation: SimulationConfig{
			AliveProbability: 0.5,
			FrameSkip:        0,
			Pattern:          "random",
		},
		Display: DisplayConfig{
			BannerSeconds:      10,
			PaletteCycleFrames: 480,
			Palette:            []string{"#e0f8cf", "#86c06c", "#306850", "#071821"},
			AliveColor:         1,
			DeadColor:          4,
		},
		Controls: ControlsConfig{
			Pause:    []string{"x", " "},
			Clear:    []string{"z", "c"},
			Step:     []string{".", "n"},
			SlowDown: []string{"["},
			SpeedUp:  []string{"]"},
		},
	}
}
