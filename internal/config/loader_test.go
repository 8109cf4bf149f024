package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-life/internal/core"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "life.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(defaultLifeYAML)
	if err != nil {
		t.Fatalf("embedded defaults invalid: %v", err)
	}
	def := DefaultLifeConfig()

	if cfg.Simulation != def.Simulation {
		t.Errorf("simulation = %+v, expected %+v", cfg.Simulation, def.Simulation)
	}
	if cfg.Display.BannerSeconds != def.Display.BannerSeconds ||
		cfg.Display.PaletteCycleFrames != def.Display.PaletteCycleFrames ||
		cfg.Display.AliveColor != def.Display.AliveColor ||
		cfg.Display.DeadColor != def.Display.DeadColor {
		t.Errorf("display = %+v, expected %+v", cfg.Display, def.Display)
	}
	pal, err := cfg.Palette()
	if err != nil {
		t.Fatalf("Palette(): %v", err)
	}
	if pal != core.DefaultPalette() {
		t.Errorf("Palette() = %v, expected default palette", pal)
	}
}

func TestLoadCustomPathOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
simulation:
  frame_skip: 3
  pattern: glider
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Simulation.FrameSkip != 3 {
		t.Errorf("FrameSkip = %d, expected 3", cfg.Simulation.FrameSkip)
	}
	if cfg.Simulation.Pattern != "glider" {
		t.Errorf("Pattern = %q, expected glider", cfg.Simulation.Pattern)
	}
	// Untouched keys keep defaults.
	if cfg.Simulation.AliveProbability != 0.5 {
		t.Errorf("AliveProbability = %v, expected 0.5", cfg.Simulation.AliveProbability)
	}
	if cfg.AliveColor() != core.P1 || cfg.DeadColor() != core.P4 {
		t.Errorf("colors = %v/%v, expected P1/P4", cfg.AliveColor(), cfg.DeadColor())
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load should fail for a missing custom path")
	}
	if !strings.Contains(err.Error(), "failed to read config") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"probability", "simulation:\n  alive_probability: 1.5\n", "alive_probability"},
		{"palette length", "display:\n  palette: [\"#000000\"]\n", "display.palette"},
		{"palette hex", "display:\n  palette: [\"#zzzzzz\", \"#000000\", \"#000000\", \"#000000\"]\n", "display.palette[0]"},
		{"alive slot", "display:\n  alive_color: 0\n", "alive_color"},
		{"dead slot", "display:\n  dead_color: 5\n", "dead_color"},
		{"syntax", "simulation: [\n", "failed to parse"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.body))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	cfg := DefaultLifeConfig()
	cfg.Simulation.AliveProbability = -1
	cfg.Simulation.Pattern = ""
	cfg.Display.BannerSeconds = -2

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate should fail")
	}
	for _, want := range []string{"alive_probability", "pattern", "banner_seconds"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err, want)
		}
	}
}
