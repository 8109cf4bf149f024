// Package patterns provides the seed patterns offered at game setup.
// Every pattern registers itself with the registry in init().
package patterns

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/life"
	"github.com/vovakirdan/tui-life/internal/registry"
)

func init() {
	registry.Register("random", func() registry.Pattern { return Random{} })
	registry.Register("blank", func() registry.Pattern { return Blank{} })
	for _, s := range shapes {
		registry.Register(s.id, func() registry.Pattern { return s })
	}
}

// Random fills every cell independently with the given live probability.
type Random struct{}

func (Random) ID() string    { return "random" }
func (Random) Title() string { return "Random Soup" }

func (Random) Seed(g *life.Grid, rng *rand.Rand, probability float64) {
	g.Randomize(probability, rng)
}

// Blank starts with an empty grid for free drawing.
type Blank struct{}

func (Blank) ID() string    { return "blank" }
func (Blank) Title() string { return "Blank Canvas" }

func (Blank) Seed(g *life.Grid, _ *rand.Rand, _ float64) {
	g.Clear()
}

// Shape is a fixed pattern drawn in plaintext cell notation:
// 'O' is a live cell, anything else is dead.
type Shape struct {
	id    string
	title string
	cells [][2]int
	w, h  int
}

// NewShape parses plaintext rows into a Shape.
func NewShape(id, title string, rows ...string) Shape {
	s := Shape{id: id, title: title, h: len(rows)}
	for y, row := range rows {
		s.w = core.Max(s.w, len(row))
		for x, ch := range row {
			if ch == 'O' {
				s.cells = append(s.cells, [2]int{x, y})
			}
		}
	}
	if len(s.cells) == 0 {
		panic(fmt.Sprintf("patterns: shape %q has no live cells", id))
	}
	return s
}

func (s Shape) ID() string    { return s.id }
func (s Shape) Title() string { return s.title }

// Size returns the bounding box of the shape.
func (s Shape) Size() (int, int) { return s.w, s.h }

// Cells returns the live cell offsets relative to the shape's top-left corner.
func (s Shape) Cells() [][2]int {
	out := make([][2]int, len(s.cells))
	copy(out, s.cells)
	return out
}

// Seed clears the grid and stamps the shape at its center. Shapes larger
// than the grid wrap around the torus.
func (s Shape) Seed(g *life.Grid, _ *rand.Rand, _ float64) {
	g.Clear()
	ox := (g.Width() - s.w) / 2
	oy := (g.Height() - s.h) / 2
	for _, c := range s.cells {
		x := core.Wrap(ox+c[0], g.Width())
		y := core.Wrap(oy+c[1], g.Height())
		g.SetCell(x, y, life.Alive)
	}
}

// String renders the shape back to plaintext rows.
func (s Shape) String() string {
	rows := make([][]byte, s.h)
	for y := range rows {
		rows[y] = []byte(strings.Repeat(".", s.w))
	}
	for _, c := range s.cells {
		rows[c[1]][c[0]] = 'O'
	}
	lines := make([]string, s.h)
	for y, r := range rows {
		lines[y] = string(r)
	}
	return strings.Join(lines, "\n")
}

var shapes = []Shape{
	NewShape("glider", "Glider",
		".O.",
		"..O",
		"OOO",
	),
	NewShape("r-pentomino", "R-pentomino",
		".OO",
		"OO.",
		".O.",
	),
	NewShape("acorn", "Acorn",
		".O.....",
		"...O...",
		"OO..OOO",
	),
	NewShape("gosper-gun", "Gosper Glider Gun",
		"........................O...........",
		"......................O.O...........",
		"............OO......OO............OO",
		"...........O...O....OO............OO",
		"OO........O.....O...OO..............",
		"OO........O...O.OO....O.O...........",
		"..........O.....O.......O...........",
		"...........O...O....................",
		"............OO......................",
	),
}
