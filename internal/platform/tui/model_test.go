package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/game"
	_ "github.com/vovakirdan/tui-life/internal/patterns"
	"github.com/vovakirdan/tui-life/internal/storage"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T, store *storage.Store) GameModel {
	t.Helper()
	m, err := NewGameModel(Options{
		Config:  config.DefaultLifeConfig(),
		Runtime: core.RuntimeConfig{Seed: 1, Pattern: "blank", Player: "tester"},
		Store:   store,
	})
	if err != nil {
		t.Fatalf("NewGameModel: %v", err)
	}
	return m
}

func send(t *testing.T, m GameModel, msgs ...tea.Msg) GameModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		gm, ok := next.(GameModel)
		if !ok {
			t.Fatalf("Update returned %T", next)
		}
		m = gm
	}
	return m
}

func tick() tea.Msg { return TickMsg(time.Now()) }

func TestPauseKeyTogglesOnNextTick(t *testing.T) {
	m := newTestModel(t, nil)

	m = send(t, m, runeKey("x"))
	if !m.Game().Running() {
		t.Fatal("key press alone should not toggle before a tick")
	}

	m = send(t, m, tick())
	if m.Game().Running() {
		t.Fatal("x should pause on the next tick")
	}

	// Further ticks without a key keep the state.
	m = send(t, m, tick(), tick())
	if m.Game().Running() {
		t.Error("pause should persist without another press")
	}
}

func TestPauseSurvivesFrameSkip(t *testing.T) {
	m := newTestModel(t, nil)
	m.Game().SetFrameSkip(4)

	m = send(t, m, tick()) // frame 0 runs, frames 1-3 skip
	m = send(t, m, runeKey("x"), tick(), tick(), tick())
	if !m.Game().Running() {
		t.Fatal("press should wait for the next executed tick")
	}

	m = send(t, m, tick()) // frame 4
	if m.Game().Running() {
		t.Error("press queued during skipped ticks should apply on frame 4")
	}
}

func TestMousePaintsCell(t *testing.T) {
	m := newTestModel(t, nil)
	m = send(t, m, runeKey("x"), tick())

	m = send(t, m, tea.MouseMsg{X: 7, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, tick())
	if !m.Game().Grid().IsAlive(7, 6) {
		t.Error("click at column 7, row 3 should paint cell (7, 6)")
	}
}

func TestEveryRowReachable(t *testing.T) {
	m := newTestModel(t, nil)
	m = send(t, m, runeKey("x"), tick())

	const col = 5
	for row := 0; row < boardRows; row++ {
		for _, lower := range []bool{false, true} {
			press := tea.MouseMsg{X: col, Y: row, Alt: lower, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
			release := tea.MouseMsg{X: col, Y: row, Alt: lower, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
			m = send(t, m, press, tick(), release, tick())
		}
	}

	for y := 0; y < game.GridHeight; y++ {
		if !m.Game().Grid().IsAlive(col, y) {
			t.Errorf("cell (%d, %d) was not painted", col, y)
		}
	}

	// Erase an odd row.
	m = send(t, m, tea.MouseMsg{X: col, Y: 20, Shift: true, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, tick())
	if m.Game().Grid().IsAlive(col, 41) {
		t.Error("shift right-click at row 20 should erase cell (5, 41)")
	}
	if !m.Game().Grid().IsAlive(col, 40) {
		t.Error("upper cell of the pair should stay alive")
	}
}

func TestStepAndSpeedKeys(t *testing.T) {
	m := newTestModel(t, nil)

	before := m.Game().Stats().Generations
	m = send(t, m, runeKey("."))
	if m.Game().Stats().Generations != before+1 {
		t.Errorf("step key should advance one generation")
	}

	m = send(t, m, runeKey("["))
	if m.Game().FrameSkip() != 2 {
		t.Errorf("FrameSkip() = %d after slow down, expected 2", m.Game().FrameSkip())
	}
	m = send(t, m, runeKey("["))
	if m.Game().FrameSkip() != 3 {
		t.Errorf("FrameSkip() = %d after slow down, expected 3", m.Game().FrameSkip())
	}
	m = send(t, m, runeKey("]"), runeKey("]"))
	if m.Game().FrameSkip() != 0 {
		t.Errorf("FrameSkip() = %d after speed up, expected 0", m.Game().FrameSkip())
	}
}

func TestFrameSkipSteps(t *testing.T) {
	tests := []struct {
		in, slow, fast uint32
	}{
		{0, 2, 0},
		{2, 3, 0},
		{5, 6, 4},
		{maxFrameSkip, maxFrameSkip, maxFrameSkip - 1},
	}
	for _, tc := range tests {
		if got := slower(tc.in); got != tc.slow {
			t.Errorf("slower(%d) = %d, expected %d", tc.in, got, tc.slow)
		}
		if got := faster(tc.in); got != tc.fast {
			t.Errorf("faster(%d) = %d, expected %d", tc.in, got, tc.fast)
		}
	}
}

func TestQuitSavesRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, store)
	m = send(t, m, tick(), tick(), tick())

	next, cmd := m.Update(runeKey("q"))
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	m = next.(GameModel)
	if !m.IsQuitting() {
		t.Error("model should report quitting")
	}
	m = send(t, m, runeKey("q"))

	runs, err := store.TopRuns("", 10)
	if err != nil {
		t.Fatalf("TopRuns: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 saved run, got %d", len(runs))
	}
	r := runs[0]
	if r.Player != "tester" || r.Pattern != "blank" || r.Seed != 1 || r.Frames != 3 || r.Generations != 3 {
		t.Errorf("saved run = %+v", r)
	}
}

func TestViewShowsSidebarAndBanner(t *testing.T) {
	m := newTestModel(t, nil)
	m = send(t, m, tick())

	view := m.View()
	for _, want := range []string{"Game of Life", "blank", "Have fun!", "pause/resume"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestViewTooSmall(t *testing.T) {
	m := newTestModel(t, nil)
	m = send(t, m, tea.WindowSizeMsg{Width: 40, Height: 20})
	if !strings.Contains(m.View(), "Terminal too small") {
		t.Error("View() should warn about a small terminal")
	}
}
