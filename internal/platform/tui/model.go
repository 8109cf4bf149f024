package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/engine"
	"github.com/vovakirdan/tui-life/internal/game"
	"github.com/vovakirdan/tui-life/internal/storage"
)

// maxFrameSkip bounds the slow-down key.
const maxFrameSkip = 60

// Options configures a game model.
type Options struct {
	Config  config.LifeConfig
	Runtime core.RuntimeConfig
	Store   *storage.Store // nil disables run history
	Logger  *log.Logger    // nil discards debug output

	// Embedded models return to a parent (the session menu) instead of
	// quitting the program on back.
	Embedded bool
}

// GameModel is the Bubble Tea model running one life session.
type GameModel struct {
	game    *game.Game
	screen  *core.Screen
	input   *TerminalInput
	keys    KeyMap
	help    help.Model
	store   *storage.Store
	logger  *log.Logger
	runtime core.RuntimeConfig
	started time.Time

	embedded   bool
	width      int
	height     int
	quitting   bool
	backToMenu bool
	saved      bool // Whether the run has been recorded
}

// settingsFor merges file configuration with per-run overrides.
func settingsFor(cfg config.LifeConfig, rt core.RuntimeConfig) game.Settings {
	s := game.Settings{
		Pattern:            cfg.Simulation.Pattern,
		AliveProbability:   cfg.Simulation.AliveProbability,
		Seed:               rt.Seed,
		FrameSkip:          cfg.Simulation.FrameSkip,
		BannerSeconds:      cfg.Display.BannerSeconds,
		PaletteCycleFrames: cfg.Display.PaletteCycleFrames,
		AliveColor:         cfg.AliveColor(),
		DeadColor:          cfg.DeadColor(),
	}
	if rt.Pattern != "" {
		s.Pattern = rt.Pattern
	}
	return s
}

// NewGameModel creates a model with a freshly seeded game.
func NewGameModel(opts Options) (GameModel, error) {
	// Use time-based seed if not specified
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	palette, err := opts.Config.Palette()
	if err != nil {
		return GameModel{}, fmt.Errorf("tui: %w", err)
	}

	input := NewTerminalInput()
	g, err := game.New(input, settingsFor(opts.Config, opts.Runtime), game.WithLogger(logger))
	if err != nil {
		return GameModel{}, fmt.Errorf("tui: %w", err)
	}

	screen := core.NewScreen(game.ScreenSize, game.ScreenSize)
	screen.SetPalette(palette)

	return GameModel{
		game:     g,
		screen:   screen,
		input:    input,
		keys:     NewKeyMap(opts.Config.Controls),
		help:     help.New(),
		store:    opts.Store,
		logger:   logger,
		runtime:  opts.Runtime,
		started:  time.Now(),
		embedded: opts.Embedded,
		width:    opts.Runtime.ScreenW,
		height:   opts.Runtime.ScreenH,
	}, nil
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(engine.TicksPerSecond)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.input.HandleMouse(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.saveRun()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.saveRun()
		m.backToMenu = true
		if !m.embedded {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Step):
		m.game.StepOnce()
		return m, nil

	case key.Matches(msg, m.keys.SlowDown):
		m.game.SetFrameSkip(slower(m.game.FrameSkip()))
		return m, nil

	case key.Matches(msg, m.keys.SpeedUp):
		m.game.SetFrameSkip(faster(m.game.FrameSkip()))
		return m, nil
	}

	if b, ok := m.keys.Button(msg); ok {
		m.input.Press(b)
	}
	return m, nil
}

// slower and faster move the frame skip factor. Skip 1 runs every tick just
// like 0, so both steps jump over it.
func slower(k uint32) uint32 {
	if k < 2 {
		return 2
	}
	return uint32(core.Min(int(k)+1, maxFrameSkip))
}

func faster(k uint32) uint32 {
	if k <= 2 {
		return 0
	}
	return k - 1
}

// handleTick runs one host tick.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}
	m.input.BeginTick(m.game.WillRun())
	m.game.Update(m.screen)
	return m, tickCmd(engine.TicksPerSecond)
}

// saveRun records the session in the run history once.
func (m *GameModel) saveRun() {
	if m.saved {
		return
	}
	m.saved = true

	st := m.game.Stats()
	if m.store == nil || st.Frames == 0 {
		return
	}
	id, err := m.store.SaveRun(storage.RunRecord{
		Player:         m.runtime.Player,
		Pattern:        m.game.Pattern(),
		Seed:           m.game.Seed(),
		Generations:    st.Generations,
		PeakPopulation: st.PeakPopulation,
		Frames:         st.Frames,
		Duration:       int(time.Since(m.started).Seconds()),
	})
	if err != nil {
		m.logger.Warn("could not save run", "error", err)
		return
	}
	m.logger.Debug("run saved", "run", id, "generations", st.Generations)
}

// View renders the board, the status column and the help bar.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	if m.width > 0 && m.height > 0 && (m.width < boardCols || m.height < boardRows+1) {
		return fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d.\nPress q to quit.",
			boardCols, boardRows+1, m.width, m.height)
	}

	view := RenderBoard(m.screen)
	if m.width == 0 || m.width >= boardCols+2+sidebarWidth {
		sidebar := RenderSidebar(SidebarInfo{
			Pattern:   m.game.Pattern(),
			Running:   m.game.Running(),
			Banner:    m.game.BannerVisible(),
			FrameSkip: m.game.FrameSkip(),
			Stats:     m.game.Stats(),
			Keys:      m.keys,
		})
		view = lipgloss.JoinHorizontal(lipgloss.Top, view, "  ", sidebar)
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return view + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Game exposes the running session.
func (m GameModel) Game() *game.Game {
	return m.game
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a standalone Bubble Tea program for one session.
func Run(opts Options) error {
	model, err := NewGameModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Drag to paint
	)

	_, err = p.Run()
	return err
}
