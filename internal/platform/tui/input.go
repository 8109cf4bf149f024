package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/game"
)

// TerminalInput is the raw input source fed from Bubble Tea messages.
//
// Terminals report key presses but never releases, so a key press is queued
// and presented as a held gamepad bit for exactly one executed tick. Mouse
// buttons are real levels: press sets a bit, release clears it.
type TerminalInput struct {
	pending uint8 // presses since the last executed tick
	latched uint8 // bits presented to the current tick

	mouseX, mouseY int
	mouseButtons   uint8
}

// NewTerminalInput creates an input source with nothing pressed.
func NewTerminalInput() *TerminalInput {
	return &TerminalInput{}
}

// Press queues a gamepad 1 button press.
func (t *TerminalInput) Press(b core.Button) {
	t.pending |= uint8(b)
}

// BeginTick decides what the coming tick observes. Queued presses are only
// handed over on ticks whose body executes, so frame skip cannot swallow them.
func (t *TerminalInput) BeginTick(executes bool) {
	if executes {
		t.latched = t.pending
		t.pending = 0
		return
	}
	t.latched = 0
}

// Gamepad implements core.InputSource. Only slot 1 is wired to the keyboard.
func (t *TerminalInput) Gamepad(slot core.Slot) uint8 {
	if slot == core.Gamepad1 {
		return t.latched
	}
	return 0
}

// Mouse implements core.InputSource.
func (t *TerminalInput) Mouse() (int, int, uint8) {
	return t.mouseX, t.mouseY, t.mouseButtons
}

// HandleMouse converts a terminal mouse event to pixel coordinates.
// Each terminal column is one cell wide and each row shows two cell rows.
// A plain pointer lands on the upper cell of the pair; with Alt or Shift held
// it lands on the lower one. Leaving the board releases all buttons so
// clicks on the sidebar never paint.
func (t *TerminalInput) HandleMouse(msg tea.MouseMsg) {
	if msg.X < 0 || msg.X >= game.GridWidth || msg.Y < 0 || msg.Y >= boardRows {
		t.mouseButtons = 0
		return
	}
	t.mouseX = msg.X * game.CellSize
	t.mouseY = msg.Y * 2 * game.CellSize
	if msg.Alt || msg.Shift {
		t.mouseY += game.CellSize
	}

	bit := mouseBit(msg.Button)
	switch msg.Action {
	case tea.MouseActionPress:
		t.mouseButtons |= bit
	case tea.MouseActionRelease:
		if bit == 0 {
			// X10 style release does not say which button.
			t.mouseButtons = 0
		} else {
			t.mouseButtons &^= bit
		}
	case tea.MouseActionMotion:
		if bit != 0 {
			t.mouseButtons |= bit
		}
	}
}

// mouseBit maps a Bubble Tea button to the pointer bitmask.
func mouseBit(b tea.MouseButton) uint8 {
	switch b {
	case tea.MouseButtonLeft:
		return uint8(core.MouseLeft)
	case tea.MouseButtonRight:
		return uint8(core.MouseRight)
	case tea.MouseButtonMiddle:
		return uint8(core.MouseMiddle)
	}
	return 0
}
