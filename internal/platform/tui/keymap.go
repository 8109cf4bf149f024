package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/core"
)

// KeyMap holds the in-game key bindings. Pause, Clear and the arrows latch
// virtual gamepad buttons; the rest are host actions.
type KeyMap struct {
	Pause    key.Binding
	Clear    key.Binding
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Step     key.Binding
	SlowDown key.Binding
	SpeedUp  key.Binding
	Help     key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// NewKeyMap builds bindings from the configured controls.
func NewKeyMap(c config.ControlsConfig) KeyMap {
	return KeyMap{
		Pause:    binding(c.Pause, "pause/resume"),
		Clear:    binding(c.Clear, "clear grid"),
		Step:     binding(c.Step, "step once"),
		SlowDown: binding(c.SlowDown, "slower"),
		SpeedUp:  binding(c.SpeedUp, "faster"),
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// binding creates a binding whose help label lists every key.
func binding(keys []string, desc string) key.Binding {
	labels := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		labels[i] = k
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(labels, "/"), desc),
	)
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Clear, k.Step, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause, k.Clear, k.Step},
		{k.SlowDown, k.SpeedUp},
		{k.Help, k.Back, k.Quit},
	}
}

// Button maps a key to the virtual gamepad button it latches.
func (k KeyMap) Button(msg tea.KeyMsg) (core.Button, bool) {
	switch {
	case key.Matches(msg, k.Pause):
		return core.ButtonX, true
	case key.Matches(msg, k.Clear):
		return core.ButtonZ, true
	case key.Matches(msg, k.Up):
		return core.ButtonUp, true
	case key.Matches(msg, k.Down):
		return core.ButtonDown, true
	case key.Matches(msg, k.Left):
		return core.ButtonLeft, true
	case key.Matches(msg, k.Right):
		return core.ButtonRight, true
	}
	return 0, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionRuns
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionRuns
	}

	return MenuActionNone
}
