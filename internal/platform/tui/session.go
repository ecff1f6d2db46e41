package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-rush/internal/config"
	"github.com/vovakirdan/neon-rush/internal/core"
	"github.com/vovakirdan/neon-rush/internal/registry"
	"github.com/vovakirdan/neon-rush/internal/storage"
)

type sessionView int

const (
	viewMenu sessionView = iota
	viewScoreboard
	viewGame
)

// difficultySetter is implemented by games with per-instance presets.
type difficultySetter interface {
	SetDifficulty(preset config.DifficultyPreset)
}

// SessionModel runs the full flow in one program: menu, scoreboard and
// game, returning to the menu when a run is left with the back key.
// It backs both SSH sessions and the local interactive launcher.
type SessionModel struct {
	store      *storage.Store
	config     core.RuntimeConfig
	logger     *log.Logger
	publisher  Publisher
	view       sessionView
	menu       MenuModel
	scoreboard ScoreboardModel
	game       Model
	quitting   bool
}

// NewSessionModel creates a session starting at the menu.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig) SessionModel {
	return SessionModel{
		store:  store,
		config: cfg,
		menu:   NewMenuModel(store, cfg),
	}
}

// WithLogger returns a copy of the session that logs to l.
func (m SessionModel) WithLogger(l *log.Logger) SessionModel {
	m.logger = l
	return m
}

// WithPublisher returns a copy of the session whose games publish to p.
func (m SessionModel) WithPublisher(p Publisher) SessionModel {
	m.publisher = p
	return m
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active view.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.view {
	case viewScoreboard:
		return m.updateScoreboard(msg)
	case viewGame:
		return m.updateGame(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.scoreboard = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.view = viewScoreboard
		return m, m.scoreboard.Init()

	case m.menu.Selected() != nil:
		return m.startGame(m.menu.Selected().GameID, m.menu.Difficulty())
	}

	return m, cmd
}

func (m SessionModel) startGame(id string, preset config.DifficultyPreset) (tea.Model, tea.Cmd) {
	game, err := registry.Create(id)
	if err != nil {
		// Only registered modes are listed
		m.menu = NewMenuModel(m.store, m.config)
		return m, nil
	}
	if ds, ok := game.(difficultySetter); ok {
		ds.SetDifficulty(preset)
	}
	if m.logger != nil {
		m.logger.Info("run started", "mode", id, "difficulty", preset)
	}

	m.game = NewModel(game, m.store, m.config).WithBack().WithLogger(m.logger)
	if m.publisher != nil {
		m.game = m.game.WithPublisher(m.publisher)
	}
	m.view = viewGame
	return m, m.game.Init()
}

func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	if sb, ok := next.(ScoreboardModel); ok {
		m.scoreboard = sb
	}

	switch {
	case m.scoreboard.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scoreboard.IsGoingBack():
		return m.backToMenu()
	}
	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if game, ok := next.(Model); ok {
		m.game = game
	}

	switch {
	case m.game.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.game.BackToMenu():
		return m.backToMenu()
	}
	return m, cmd
}

// backToMenu rebuilds the menu so the best score is re-read. Pending
// game ticks are dropped by the menu.
func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.menu = NewMenuModel(m.store, m.config)
	m.view = viewMenu
	return m, m.menu.Init()
}

// View renders the active view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewScoreboard:
		return m.scoreboard.View()
	case viewGame:
		return m.game.View()
	default:
		return m.menu.View()
	}
}

// RunSession starts the interactive launcher locally. pub may be nil.
func RunSession(store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger, pub Publisher) error {
	model := NewSessionModel(store, cfg).WithLogger(logger)
	if pub != nil {
		model = model.WithPublisher(pub)
	}

	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
