package core

import (
	"fmt"
	"strconv"
)

// Color is a 24-bit RGB color stored in a palette entry.
type Color struct {
	R, G, B uint8
}

// RGB builds a Color from a packed 0xRRGGBB value.
func RGB(v uint32) Color {
	return Color{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}
}

// Packed returns the color as a 0xRRGGBB value.
func (c Color) Packed() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Hex returns the color as a "#rrggbb" string (lipgloss accepts this form).
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex parses "#rrggbb" or "rrggbb".
func ParseHex(s string) (Color, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return Color{}, fmt.Errorf("invalid color %q: expected 6 hex digits", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return RGB(uint32(v)), nil
}

// PaletteSize is the number of entries in the display palette.
const PaletteSize = 4

// Palette holds the four colors the display can show.
type Palette [PaletteSize]Color

// DefaultPalette returns the stock four-shade green palette.
func DefaultPalette() Palette {
	return Palette{
		RGB(0xe0f8cf),
		RGB(0x86c06c),
		RGB(0x306850),
		RGB(0x071821),
	}
}

// PaletteColor selects a palette entry for drawing. Zero means transparent.
type PaletteColor uint8

// Palette color selectors.
const (
	Transparent PaletteColor = iota
	P1
	P2
	P3
	P4
)

// Index returns the zero-based palette index for this selector.
// Panics for Transparent or unknown selectors.
func (p PaletteColor) Index() int {
	if p < P1 || p > P4 {
		panic(fmt.Sprintf("core: palette color %d has no palette index", p))
	}
	return int(p) - 1
}

// DrawColorIndex selects one of the four draw color slots.
type DrawColorIndex uint8

// Draw color slots. I1 is the fill color used by Rect.
const (
	I1 DrawColorIndex = iota
	I2
	I3
	I4
)

// DrawColors maps draw slots to palette selectors.
type DrawColors [4]PaletteColor
