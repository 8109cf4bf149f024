package core

import "fmt"

// Button is a single gamepad button bit.
type Button uint8

// Gamepad button bits as laid out in the raw gamepad byte.
const (
	ButtonX     Button = 1 << 0 // Primary action
	ButtonZ     Button = 1 << 1 // Secondary action
	ButtonLeft  Button = 1 << 4
	ButtonRight Button = 1 << 5
	ButtonUp    Button = 1 << 6
	ButtonDown  Button = 1 << 7
)

// String returns a human-readable name for the button.
func (b Button) String() string {
	switch b {
	case ButtonX:
		return "X"
	case ButtonZ:
		return "Z"
	case ButtonLeft:
		return "Left"
	case ButtonRight:
		return "Right"
	case ButtonUp:
		return "Up"
	case ButtonDown:
		return "Down"
	default:
		return "Unknown"
	}
}

// mask returns the button bit, panicking for anything that is not a known button.
func (b Button) mask() uint8 {
	switch b {
	case ButtonX, ButtonZ, ButtonLeft, ButtonRight, ButtonUp, ButtonDown:
		return uint8(b)
	}
	panic(fmt.Sprintf("core: unknown gamepad button %#x", uint8(b)))
}

// MouseButton is a single pointer button bit.
type MouseButton uint8

// Mouse button bits as laid out in the raw mouse button byte.
const (
	MouseLeft   MouseButton = 1 << 0
	MouseRight  MouseButton = 1 << 1
	MouseMiddle MouseButton = 1 << 2
)

func (b MouseButton) mask() uint8 {
	switch b {
	case MouseLeft, MouseRight, MouseMiddle:
		return uint8(b)
	}
	panic(fmt.Sprintf("core: unknown mouse button %#x", uint8(b)))
}

// Slot identifies a gamepad.
type Slot int

// Gamepad slots.
const (
	Gamepad1 Slot = iota
	Gamepad2
	Gamepad3
	Gamepad4
)

// MaxGamepads is the number of gamepad slots tracked.
const MaxGamepads = 4

// InputSource exposes the raw input state for the current tick.
// Implementations are read-only from the tracker's point of view.
type InputSource interface {
	// Gamepad returns the bitmask of buttons currently held on a slot.
	Gamepad(slot Slot) uint8
	// Mouse returns the pointer position in screen pixels and the held button bitmask.
	Mouse() (x, y int, buttons uint8)
}

// justPressed is "current AND NOT previous", written as current & (current ^ previous).
func justPressed(current, previous uint8) uint8 {
	return current & (current ^ previous)
}

// GamepadState is one tick's view of a gamepad.
type GamepadState struct {
	pressed     uint8
	justPressed uint8
}

// NewGamepadState derives held and just-pressed bits from two raw snapshots.
func NewGamepadState(current, previous uint8) GamepadState {
	return GamepadState{
		pressed:     current,
		justPressed: justPressed(current, previous),
	}
}

// Held reports whether the button is down this tick (level-triggered).
func (s GamepadState) Held(b Button) bool {
	return s.pressed&b.mask() != 0
}

// JustPressed reports whether the button went down this tick (edge-triggered).
func (s GamepadState) JustPressed(b Button) bool {
	return s.justPressed&b.mask() != 0
}

// MouseState is one tick's view of the pointer.
type MouseState struct {
	x, y        int
	pressed     uint8
	justPressed uint8
}

// NewMouseState derives held and just-pressed bits for the pointer.
func NewMouseState(x, y int, current, previous uint8) MouseState {
	return MouseState{
		x:           x,
		y:           y,
		pressed:     current,
		justPressed: justPressed(current, previous),
	}
}

// Position returns the pointer position in screen pixels.
func (s MouseState) Position() (int, int) {
	return s.x, s.y
}

// Held reports whether the mouse button is down this tick.
func (s MouseState) Held(b MouseButton) bool {
	return s.pressed&b.mask() != 0
}

// JustPressed reports whether the mouse button went down this tick.
func (s MouseState) JustPressed(b MouseButton) bool {
	return s.justPressed&b.mask() != 0
}

// InputTracker keeps one tick of history per input source and turns raw
// bitmasks into held/just-pressed state.
//
// Per tick: Refresh once, query any number of times, Commit once at tick end.
// Committing before the queries would make edges never fire; skipping Commit
// would make them fire forever.
type InputTracker struct {
	source InputSource
	bounds Rect

	current  [MaxGamepads]uint8
	previous [MaxGamepads]uint8

	mouseX, mouseY int
	mouseCurrent   uint8
	mousePrevious  uint8

	gamepads [MaxGamepads]GamepadState
	mouse    MouseState
}

// NewInputTracker creates a tracker reading from source. Pointer positions are
// clamped to bounds.
func NewInputTracker(source InputSource, bounds Rect) *InputTracker {
	if source == nil {
		panic("core: nil input source")
	}
	if bounds.Empty() {
		panic("core: empty pointer bounds")
	}
	return &InputTracker{
		source: source,
		bounds: bounds,
	}
}

// Refresh reads the raw source and computes this tick's state.
func (t *InputTracker) Refresh() {
	for i := range t.current {
		t.current[i] = t.source.Gamepad(Slot(i))
		t.gamepads[i] = NewGamepadState(t.current[i], t.previous[i])
	}

	x, y, buttons := t.source.Mouse()
	t.mouseX = Clamp(x, t.bounds.X, t.bounds.Right()-1)
	t.mouseY = Clamp(y, t.bounds.Y, t.bounds.Bottom()-1)
	t.mouseCurrent = buttons
	t.mouse = NewMouseState(t.mouseX, t.mouseY, t.mouseCurrent, t.mousePrevious)
}

// Gamepad returns this tick's state for a slot. Panics for an invalid slot.
func (t *InputTracker) Gamepad(slot Slot) GamepadState {
	if slot < Gamepad1 || slot > Gamepad4 {
		panic(fmt.Sprintf("core: gamepad slot %d out of range", slot))
	}
	return t.gamepads[slot]
}

// Gamepads returns this tick's state for all slots.
func (t *InputTracker) Gamepads() [MaxGamepads]GamepadState {
	return t.gamepads
}

// Mouse returns this tick's pointer state.
func (t *InputTracker) Mouse() MouseState {
	return t.mouse
}

// Commit stores this tick's raw state as the previous snapshot.
func (t *InputTracker) Commit() {
	t.previous = t.current
	t.mousePrevious = t.mouseCurrent
}
