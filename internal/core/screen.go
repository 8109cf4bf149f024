package core

import "fmt"

// ScreenSize is the width and height of the display in pixels.
const ScreenSize = 160

// Screen is a 2-bit-per-pixel framebuffer with a four-entry palette and
// selectable draw colors. It decouples game rendering from the terminal:
// the game only fills rectangles, the platform decides how pixels look.
type Screen struct {
	width      int
	height     int
	pixels     []uint8 // palette index (0..3) per pixel, row-major
	palette    Palette
	drawColors DrawColors
}

// NewScreen creates a framebuffer with the given dimensions and the default palette.
func NewScreen(width, height int) *Screen {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("core: invalid screen size %dx%d", width, height))
	}
	return &Screen{
		width:      width,
		height:     height,
		pixels:     make([]uint8, width*height),
		palette:    DefaultPalette(),
		drawColors: DrawColors{P1, Transparent, Transparent, Transparent},
	}
}

// Width returns the screen width in pixels.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in pixels.
func (s *Screen) Height() int {
	return s.height
}

// Bounds returns the screen rectangle.
func (s *Screen) Bounds() Rect {
	return NewRect(0, 0, s.width, s.height)
}

// Clear sets every pixel to palette entry 0.
func (s *Screen) Clear() {
	for i := range s.pixels {
		s.pixels[i] = 0
	}
}

// SetDrawColor assigns a palette selector to a draw slot.
func (s *Screen) SetDrawColor(slot DrawColorIndex, color PaletteColor) {
	if slot > I4 {
		panic(fmt.Sprintf("core: draw color slot %d out of range", slot))
	}
	if color > P4 {
		panic(fmt.Sprintf("core: palette color %d out of range", color))
	}
	s.drawColors[slot] = color
}

// DrawColor returns the palette selector assigned to a draw slot.
func (s *Screen) DrawColor(slot DrawColorIndex) PaletteColor {
	return s.drawColors[slot]
}

// Palette returns a copy of the current palette.
func (s *Screen) Palette() Palette {
	return s.palette
}

// SetPalette replaces the palette.
func (s *Screen) SetPalette(p Palette) {
	s.palette = p
}

// Rect fills a rectangle with the color in draw slot I1.
// The rectangle is clipped to the screen; a transparent fill draws nothing.
func (s *Screen) Rect(x, y, w, h int) {
	fill := s.drawColors[I1]
	if fill == Transparent {
		return
	}
	r := s.Bounds().Intersect(NewRect(x, y, w, h))
	if r.Empty() {
		return
	}
	idx := uint8(fill.Index())
	for py := r.Y; py < r.Bottom(); py++ {
		row := py * s.width
		for px := r.X; px < r.Right(); px++ {
			s.pixels[row+px] = idx
		}
	}
}

// Pixel returns the palette index (0..3) at the given position.
// Returns 0 for out-of-bounds coordinates.
func (s *Screen) Pixel(x, y int) uint8 {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return 0
	}
	return s.pixels[y*s.width+x]
}

// ColorAt resolves the pixel at (x, y) through the palette.
func (s *Screen) ColorAt(x, y int) Color {
	return s.palette[s.Pixel(x, y)]
}
