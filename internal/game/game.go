// Package game ties the automaton, the input tracker and the frame scheduler
// together into the per-tick body: interact, step, render, then the timed
// extras (banner window, palette cycling, audio).
//
// Game contains pure logic with no terminal dependencies. The platform owns
// the raw input source and the display surface.
package game

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/engine"
	"github.com/vovakirdan/tui-life/internal/life"
	"github.com/vovakirdan/tui-life/internal/registry"
)

// Grid geometry. The grid exactly covers the square screen.
const (
	ScreenSize = core.ScreenSize
	CellSize   = 2
	GridWidth  = ScreenSize / CellSize
	GridHeight = ScreenSize / CellSize
)

// Surface is the display contract the renderer draws through.
// *core.Screen implements it.
type Surface interface {
	SetDrawColor(slot core.DrawColorIndex, color core.PaletteColor)
	Rect(x, y, w, h int)
	Palette() core.Palette
	SetPalette(p core.Palette)
}

// Playback is advanced once per executed tick with the frame counter.
type Playback interface {
	Advance(frame uint64)
}

// Settings holds the tunables for one game session.
type Settings struct {
	Pattern            string
	AliveProbability   float64
	Seed               int64
	FrameSkip          uint32
	BannerSeconds      int
	// PaletteCycleFrames is counted in host ticks, not executed ones; 0
	// disables cycling. Cycling happens on an executed tick whose frame is a
	// multiple of it, so with frame skip k it fires every lcm(k, n) ticks.
	PaletteCycleFrames uint64
	AliveColor         core.PaletteColor
	DeadColor          core.PaletteColor
}

// DefaultSettings mirrors the stock configuration.
func DefaultSettings() Settings {
	return Settings{
		Pattern:            "random",
		AliveProbability:   0.5,
		BannerSeconds:      10,
		PaletteCycleFrames: 480,
		AliveColor:         core.P1,
		DeadColor:          core.P4,
	}
}

// Option configures optional collaborators.
type Option func(*Game)

// WithLogger sets the logger for debug events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithPlayback attaches an audio track.
func WithPlayback(p Playback) Option {
	return func(g *Game) {
		g.playback = p
	}
}

// Stats summarizes a session so far.
type Stats struct {
	Generations    uint64
	Population     int
	PeakPopulation int
	Frames         uint64 // host ticks processed
	ExecutedFrames uint64 // ticks whose body ran
}

// Game is one Game of Life session.
type Game struct {
	settings Settings
	pattern  registry.Pattern
	grid     *life.Grid
	tracker  *core.InputTracker
	sched    *engine.Scheduler
	rng      *rand.Rand
	logger   *log.Logger
	playback Playback

	banner   bool
	executed uint64
	peak     int
}

// New creates a session reading raw input from source. The grid is seeded
// with the configured pattern before New returns.
func New(source core.InputSource, settings Settings, opts ...Option) (*Game, error) {
	pattern, err := registry.Create(settings.Pattern)
	if err != nil {
		return nil, err
	}

	tracker := core.NewInputTracker(source, core.NewRect(0, 0, ScreenSize, ScreenSize))
	g := &Game{
		settings: settings,
		pattern:  pattern,
		grid:     life.NewGrid(GridWidth, GridHeight),
		tracker:  tracker,
		sched:    engine.NewScheduler(tracker, settings.FrameSkip),
		rng:      rand.New(rand.NewSource(settings.Seed)),
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.Setup()
	return g, nil
}

// Setup seeds the grid with the session's pattern.
func (g *Game) Setup() {
	g.pattern.Seed(g.grid, g.rng, g.settings.AliveProbability)
	g.banner = g.settings.BannerSeconds > 0
	g.peak = g.grid.Population()
	g.logger.Debug("grid seeded", "pattern", g.pattern.ID(), "population", g.peak)
}

// Update processes one host tick and reports whether the body ran.
// dst is only drawn on executed ticks; skipped ticks leave it untouched.
func (g *Game) Update(dst Surface) bool {
	return g.sched.RunFrame(func(ctx engine.FrameContext) {
		g.tick(ctx, dst)
	})
}

func (g *Game) tick(ctx engine.FrameContext, dst Surface) {
	g.interact(ctx)
	g.grid.Step()
	g.render(dst)

	g.banner = ctx.Frame < uint64(engine.TicksPerSecond)*uint64(g.settings.BannerSeconds)

	if n := g.settings.PaletteCycleFrames; n > 0 && ctx.Frame > 0 && ctx.Frame%n == 0 {
		g.cyclePalette(dst)
	}

	if g.playback != nil {
		g.playback.Advance(ctx.Frame)
	}

	g.executed++
	g.trackPeak()
}

// interact applies pointer painting and the gamepad 1 actions.
func (g *Game) interact(ctx engine.FrameContext) {
	mouse := ctx.Mouse()
	mx, my := mouse.Position()
	cx, cy := core.Max(mx, 0)/CellSize, core.Max(my, 0)/CellSize

	if cx < GridWidth && cy < GridHeight {
		if mouse.Held(core.MouseLeft) {
			g.grid.SetCell(cx, cy, life.Alive)
		} else if mouse.Held(core.MouseRight) {
			g.grid.SetCell(cx, cy, life.Dead)
		}
	}

	pad := ctx.Gamepad(core.Gamepad1)
	if pad.JustPressed(core.ButtonX) {
		running := g.grid.ToggleRunning()
		g.logger.Debug("simulation toggled", "running", running, "frame", ctx.Frame)
	}
	if pad.JustPressed(core.ButtonZ) {
		g.grid.Clear()
		g.logger.Debug("grid cleared", "frame", ctx.Frame)
	}
}

// render draws one cell-sized rectangle per cell from the front buffer.
func (g *Game) render(dst Surface) {
	for idx, cell := range g.grid.Front() {
		x, y := idx%GridWidth, idx/GridWidth
		if cell.State == life.Alive {
			dst.SetDrawColor(core.I1, g.settings.AliveColor)
		} else {
			dst.SetDrawColor(core.I1, g.settings.DeadColor)
		}
		dst.Rect(x*CellSize, y*CellSize, CellSize, CellSize)
	}
}

// cyclePalette replaces the alive color with a random one.
func (g *Game) cyclePalette(dst Surface) {
	p := dst.Palette()
	c := core.Color{
		R: uint8(g.rng.Intn(256)),
		G: uint8(g.rng.Intn(256)),
		B: uint8(g.rng.Intn(256)),
	}
	p[g.settings.AliveColor.Index()] = c
	dst.SetPalette(p)
	g.logger.Debug("palette cycled", "color", c.Hex())
}

func (g *Game) trackPeak() {
	if pop := g.grid.Population(); pop > g.peak {
		g.peak = pop
	}
}

// StepOnce advances one generation even while paused.
// It does not touch the frame counter or input history.
func (g *Game) StepOnce() {
	g.grid.StepOnce()
	g.trackPeak()
}

// BannerVisible reports whether the instruction banner should be drawn.
// It holds for every executed tick whose frame is inside the banner window.
func (g *Game) BannerVisible() bool {
	return g.banner
}

// Running reports whether generations advance on executed ticks.
func (g *Game) Running() bool {
	return g.grid.Running()
}

// SetFrameSkip changes the skip factor at runtime.
func (g *Game) SetFrameSkip(k uint32) {
	g.sched.SetFrameSkip(k)
	g.logger.Debug("frame skip changed", "skip", k)
}

// FrameSkip returns the current skip factor.
func (g *Game) FrameSkip() uint32 {
	return g.sched.FrameSkip()
}

// WillRun reports whether the next Update executes the tick body.
// Hosts that synthesize button presses use it to present them on a tick
// that will observe them.
func (g *Game) WillRun() bool {
	return g.sched.ShouldRun(g.sched.FrameCount())
}

// Frame returns the number of host ticks processed.
func (g *Game) Frame() uint64 {
	return g.sched.FrameCount()
}

// Elapsed returns nominal whole seconds since the session began.
func (g *Game) Elapsed() uint64 {
	return g.sched.Elapsed()
}

// Grid exposes the automaton for read-only inspection.
func (g *Game) Grid() *life.Grid {
	return g.grid
}

// Pattern returns the seed pattern ID.
func (g *Game) Pattern() string {
	return g.pattern.ID()
}

// Seed returns the RNG seed for this session.
func (g *Game) Seed() int64 {
	return g.settings.Seed
}

// Stats returns the session statistics.
func (g *Game) Stats() Stats {
	return Stats{
		Generations:    g.grid.Generation(),
		Population:     g.grid.Population(),
		PeakPopulation: g.peak,
		Frames:         g.sched.FrameCount(),
		ExecutedFrames: g.executed,
	}
}
