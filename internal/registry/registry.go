// Package registry provides a global registry for seed pattern factories.
// Patterns register themselves in init() functions, allowing the game and
// the platform to discover them without hardcoded dependencies.
package registry

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-life/internal/life"
)

// Pattern fills a freshly created grid with an initial generation.
// Patterns contain pure logic and never touch the platform.
type Pattern interface {
	// ID returns a unique identifier (e.g., "glider", "acorn").
	// Used for CLI flags, config files and run history.
	ID() string

	// Title returns a human-readable name for display (e.g., "Gosper Glider Gun").
	Title() string

	// Seed writes the initial generation into g. Both grid buffers must
	// agree afterwards. probability is the live-cell density for random
	// patterns; fixed patterns ignore it.
	Seed(g *life.Grid, rng *rand.Rand, probability float64)
}

// PatternInfo contains metadata about a registered pattern.
type PatternInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a pattern.
type Factory func() Pattern

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a pattern factory to the registry.
// Typically called from an init() function.
// Panics if a pattern with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: pattern %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	p := f()
	titles[id] = p.Title()
}

// List returns information about all registered patterns, sorted by ID.
func List() []PatternInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PatternInfo, 0, len(factories))
	for id := range factories {
		result = append(result, PatternInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new pattern by its ID.
// Returns an error if the pattern ID is not registered.
func Create(id string) (Pattern, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown pattern %q", id)
	}

	return f(), nil
}

// Exists checks if a pattern with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
