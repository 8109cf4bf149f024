// Package life implements Conway's Game of Life (B3/S23) on a fixed-size
// toroidal grid with double-buffered generations.
package life

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-life/internal/core"
)

// State is the state of a single cell.
type State uint8

// Cell states. The zero value is Dead.
const (
	Dead State = iota
	Alive
)

// String returns a human-readable name for the state.
func (s State) String() string {
	if s == Alive {
		return "Alive"
	}
	return "Dead"
}

// Cell is one grid cell.
type Cell struct {
	State State
}

// neighborOffsets lists the 8 Moore neighbors.
var neighborOffsets = [8][2]int{
	{-1, 1}, {0, 1}, {1, 1},
	{-1, 0}, {1, 0},
	{-1, -1}, {0, -1}, {1, -1},
}

// Grid owns two equally sized cell buffers over a toroidal lattice.
// The front buffer is the authoritative generation; steps write the back
// buffer and then flip which one is front.
//
// A step flips without copying, so afterwards the back buffer still holds the
// previous generation rather than a copy of front. Nothing reads back outside
// a step, and every step overwrites all of it before the flip. Randomize and
// Clear leave both buffers identical; SetCell writes the cell in both.
//
// A Grid is not safe for concurrent use.
type Grid struct {
	width   int
	height  int
	buffers [2][]Cell
	front   int
	running bool

	generation uint64
}

// NewGrid allocates both buffers once. Dimensions never change afterwards.
// The simulation starts in the running state.
func NewGrid(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("life: invalid grid size %dx%d", width, height))
	}
	n := width * height
	return &Grid{
		width:   width,
		height:  height,
		buffers: [2][]Cell{make([]Cell, n), make([]Cell, n)},
		running: true,
	}
}

// Width returns the grid width in cells.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the grid height in cells.
func (g *Grid) Height() int {
	return g.height
}

// Len returns the number of cells.
func (g *Grid) Len() int {
	return g.width * g.height
}

// Front returns the authoritative generation. Callers must not modify it.
func (g *Grid) Front() []Cell {
	return g.buffers[g.front]
}

func (g *Grid) back() []Cell {
	return g.buffers[1-g.front]
}

func (g *Grid) swap() {
	g.front = 1 - g.front
}

// sync copies front into back so both buffers agree.
func (g *Grid) sync() {
	copy(g.back(), g.Front())
}

// Index maps (x, y) to a buffer index. Panics when out of range.
func (g *Grid) Index(x, y int) int {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		panic(fmt.Sprintf("life: cell (%d, %d) outside %dx%d grid", x, y, g.width, g.height))
	}
	return x + y*g.width
}

// Coords maps a buffer index back to (x, y). Panics when out of range.
func (g *Grid) Coords(index int) (int, int) {
	if index < 0 || index >= g.Len() {
		panic(fmt.Sprintf("life: index %d outside grid of %d cells", index, g.Len()))
	}
	return index % g.width, index / g.width
}

// Get returns the state of a cell in the front buffer.
func (g *Grid) Get(x, y int) State {
	return g.Front()[g.Index(x, y)].State
}

// IsAlive reports whether the cell at (x, y) is alive in the front buffer.
func (g *Grid) IsAlive(x, y int) bool {
	return g.Get(x, y) == Alive
}

// Running reports whether generations advance on Step.
func (g *Grid) Running() bool {
	return g.running
}

// SetRunning pauses or resumes the simulation.
func (g *Grid) SetRunning(running bool) {
	g.running = running
}

// ToggleRunning flips the running flag and returns the new value.
func (g *Grid) ToggleRunning() bool {
	g.running = !g.running
	return g.running
}

// Generation returns the number of generations computed since creation.
func (g *Grid) Generation() uint64 {
	return g.generation
}

// Randomize makes each cell alive with the given probability, then publishes
// the new field to both buffers. Panics if probability is outside [0, 1].
func (g *Grid) Randomize(probability float64, rng *rand.Rand) {
	if math.IsNaN(probability) || probability < 0 || probability > 1 {
		panic(fmt.Sprintf("life: alive probability %v outside [0, 1]", probability))
	}
	back := g.back()
	for i := range back {
		if rng.Float64() < probability {
			back[i] = Cell{State: Alive}
		} else {
			back[i] = Cell{State: Dead}
		}
	}
	g.swap()
	g.sync()
}

// Clear kills every cell in both buffers.
func (g *Grid) Clear() {
	back := g.back()
	for i := range back {
		back[i] = Cell{State: Dead}
	}
	g.swap()
	g.sync()
}

// SetCell writes a state into both buffers so the edit is visible now and
// is read by the next step's neighbor count.
func (g *Grid) SetCell(x, y int, state State) {
	idx := g.Index(x, y)
	g.buffers[0][idx].State = state
	g.buffers[1][idx].State = state
}

// AliveNeighbors counts live cells among the 8 wrapped neighbors of (x, y)
// in the front buffer.
func (g *Grid) AliveNeighbors(x, y int) int {
	front := g.Front()
	count := 0
	for _, off := range neighborOffsets {
		nx := core.Wrap(x+off[0], g.width)
		ny := core.Wrap(y+off[1], g.height)
		if front[nx+ny*g.width].State == Alive {
			count++
		}
	}
	return count
}

// Step advances one generation if the simulation is running.
func (g *Grid) Step() {
	if !g.running {
		return
	}
	g.advance()
}

// StepOnce advances exactly one generation regardless of the running flag.
func (g *Grid) StepOnce() {
	g.advance()
}

// advance reads only front and writes only back, then flips.
func (g *Grid) advance() {
	front := g.Front()
	back := g.back()
	for idx, cell := range front {
		x, y := idx%g.width, idx/g.width
		back[idx].State = nextState(cell.State, g.AliveNeighbors(x, y))
	}
	g.swap()
	g.generation++
}

// nextState applies B3/S23.
func nextState(current State, neighbors int) State {
	switch {
	case current == Alive && (neighbors == 2 || neighbors == 3):
		return Alive
	case current == Dead && neighbors == 3:
		return Alive
	default:
		return Dead
	}
}

// Population counts live cells in the front buffer.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.Front() {
		if c.State == Alive {
			n++
		}
	}
	return n
}
