package core

// RuntimeConfig contains the per-session settings handed to the host at startup.
// File-based tunables live in the config package; these are per-run values.
type RuntimeConfig struct {
	ScreenW int    // Terminal width in characters
	ScreenH int    // Terminal height in characters
	Seed    int64  // RNG seed for grid seeding and palette cycling
	Pattern string // Seed pattern ID, empty means the configured default
	Player  string // Name recorded with the run history
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
		Player:  "local",
	}
}
