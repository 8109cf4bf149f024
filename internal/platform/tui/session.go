package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/storage"
)

// sessionView identifies the active screen of a session.
type sessionView int

const (
	viewMenu sessionView = iota
	viewRuns
	viewGame
)

// SessionModel manages the full session flow: menu -> game -> menu, with
// the run history reachable from the menu. It is the top-level model for
// the local menu command and for every SSH session. Each session owns its
// own game; nothing is shared between sessions except the store.
type SessionModel struct {
	store    *storage.Store
	cfg      config.LifeConfig
	runtime  core.RuntimeConfig
	logger   *log.Logger
	view     sessionView
	menu     MenuModel
	runs     RunsModel
	game     *GameModel
	lastErr  error
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(store *storage.Store, cfg config.LifeConfig, rt core.RuntimeConfig, logger *log.Logger) SessionModel {
	return SessionModel{
		store:   store,
		cfg:     cfg,
		runtime: rt,
		logger:  logger,
		menu:    NewMenuModel(rt, preselectPattern(cfg, rt)),
	}
}

func preselectPattern(cfg config.LifeConfig, rt core.RuntimeConfig) string {
	if rt.Pattern != "" {
		return rt.Pattern
	}
	return cfg.Simulation.Pattern
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.runtime.ScreenW = wsm.Width
		m.runtime.ScreenH = wsm.Height
	}

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewRuns:
		return m.updateRuns(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsRuns() {
		m.runs = NewRunsModel(m.store, m.runtime.ScreenW, m.runtime.ScreenH)
		m.view = viewRuns
		return m, m.runs.Init()
	}

	if selected := m.menu.Selected(); selected != nil {
		rt := m.runtime
		rt.Pattern = selected.PatternID
		gameModel, err := NewGameModel(Options{
			Config:   m.cfg,
			Runtime:  rt,
			Store:    m.store,
			Logger:   m.logger,
			Embedded: true,
		})
		if err != nil {
			// Shouldn't happen since the menu only shows registered patterns
			m.lastErr = err
			m.menu = NewMenuModel(m.runtime, selected.PatternID)
			return m, nil
		}

		m.game = &gameModel
		m.view = viewGame
		return m, m.game.Init()
	}

	return m, cmd
}

// updateRuns handles updates when the run history is open.
func (m SessionModel) updateRuns(msg tea.Msg) (tea.Model, tea.Cmd) {
	newRuns, cmd := m.runs.Update(msg)
	if runsModel, ok := newRuns.(RunsModel); ok {
		m.runs = runsModel
	}

	if m.runs.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.runs.IsGoingBack() {
		return m.backToMenu("")
	}
	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = &gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		pattern := m.game.Game().Pattern()
		m.game = nil
		return m.backToMenu(pattern)
	}

	return m, cmd
}

func (m SessionModel) backToMenu(preselect string) (tea.Model, tea.Cmd) {
	if preselect == "" {
		preselect = preselectPattern(m.cfg, m.runtime)
	}
	m.menu = NewMenuModel(m.runtime, preselect)
	m.view = viewMenu
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewGame:
		if m.game != nil {
			return m.game.View()
		}
	case viewRuns:
		return m.runs.View()
	}

	view := m.menu.View()
	if m.lastErr != nil {
		view += "\n" + centerText(pausedStyle.Render(m.lastErr.Error()), m.runtime.ScreenW)
	}
	return view
}

// RunSession runs the menu-driven session in the local terminal.
func RunSession(store *storage.Store, cfg config.LifeConfig, rt core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewSessionModel(store, cfg, rt, logger),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
