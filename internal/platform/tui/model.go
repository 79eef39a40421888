package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/chaos-arcade/internal/config"
	"github.com/vovakirdan/chaos-arcade/internal/core"
	"github.com/vovakirdan/chaos-arcade/internal/registry"
	"github.com/vovakirdan/chaos-arcade/internal/storage"
)

// Reconfigurable is implemented by games that accept reloaded tuning.
type Reconfigurable interface {
	ApplyConfig(cfg config.ChaosConfig)
}

// configMsg carries a reloaded config from the watcher.
type configMsg config.ChaosConfig

// configErrMsg carries a rejected config edit from the watcher.
type configErrMsg struct{ err error }

// Option customizes a Model.
type Option func(*Model)

// WithWatcher delivers config reloads from w to the game.
func WithWatcher(w *config.Watcher) Option {
	return func(m *Model) { m.watcher = w }
}

// WithLogger sets the logger for score and config events.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithEmbedded makes quitting the game return to the caller's menu instead
// of ending the program. Ctrl+C still ends it.
func WithEmbedded() Option {
	return func(m *Model) { m.embedded = true }
}

// Model is the Bubble Tea model for running arcade games.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       *KeyMapper
	latch      *InputLatch
	help       help.Model
	watcher    *config.Watcher
	logger     *log.Logger
	gameState  core.GameState
	embedded   bool
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for the current run
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		config: cfg,
		keys:   NewKeyMapper(),
		// Half a second bridges the keyboard's auto-repeat delay.
		latch:  NewInputLatch(cfg.TickRate / 2),
		help:   h,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)

	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}
	if m.watcher != nil {
		cmds = append(cmds, waitForConfig(m.watcher))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The games draw in world units, so a resize only changes the canvas.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()

	case configMsg:
		if g, ok := m.game.(Reconfigurable); ok {
			g.ApplyConfig(config.ChaosConfig(msg))
		}
		m.logger.Info("config reloaded", "path", m.watcher.Path())
		return m, waitForConfig(m.watcher)

	case configErrMsg:
		m.logger.Warn("config reload rejected", "err", msg.err)
		return m, waitForConfig(m.watcher)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys.Keys()
	switch {
	case msg.String() == "ctrl+c":
		m.saveScore()
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	// Quit goes through the game too, so it lands on a tick boundary.
	m.latch.Press(m.keys.MapKey(msg))
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	in := m.latch.Frame()

	// Check for restart
	if in.Has(core.ActionRestart) && m.gameState.GameOver {
		// Reset seed for new game
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.latch.Release()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(in)
	m.gameState = result.State

	if m.gameState.GameOver {
		m.saveScore()
	}

	if m.gameState.Quit {
		m.saveScore()
		if m.embedded {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScore records the current run in the score history once.
func (m *Model) saveScore() {
	if m.scoreSaved || m.gameState.Score <= 0 {
		return
	}
	m.scoreSaved = true
	if m.store == nil {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score); err != nil {
		// Best-effort save, game continues regardless
		m.logger.Warn("save score", "game", m.game.ID(), "err", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot", "path", path, "err", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	footer := helpStyle.Render(m.help.View(m.keys.Keys()))
	h := max(m.config.ScreenH-lipgloss.Height(footer), 1)
	if m.screen.Width() != m.config.ScreenW || m.screen.Height() != h {
		m.screen.Resize(m.config.ScreenW, h)
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + footer
}

// IsQuitting returns true if the user ended the program.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if an embedded game was quit.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// waitForConfig blocks on the watcher until it reports a reload or error.
func waitForConfig(w *config.Watcher) tea.Cmd {
	return func() tea.Msg {
		select {
		case cfg, ok := <-w.Updates:
			if !ok {
				return nil
			}
			return configMsg(cfg)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return configErrMsg{err: err}
		}
	}
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) error {
	model := NewModel(game, store, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
