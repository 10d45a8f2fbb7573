// Package tui implements the interactive terminal dashboard.
package tui

import (
	"github.com/Veraticus/sprout/internal/dashboard"
	"github.com/Veraticus/sprout/internal/tui/themes"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// reloadedMsg carries the result of a reload.
type reloadedMsg struct {
	board *dashboard.Board
	err   error
}

// Model holds the dashboard TUI state.
type Model struct {
	theme     themes.Theme
	lastError error
	board     *dashboard.Board
	reload    ReloadFunc
	recorder  *Recorder
	help      help.Model
	keymap    KeyMap
	snapshot  dashboard.Snapshot
	window    dashboard.Window
	width     int
	height    int
	step      int
	quitting  bool
}

// New creates the dashboard model for board.
func New(board *dashboard.Board, opts ...Option) Model {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	h := help.New()
	h.ShowAll = cfg.ShowHelp

	m := Model{
		theme:    cfg.Theme,
		board:    board,
		reload:   cfg.Reload,
		recorder: cfg.Recorder,
		help:     h,
		keymap:   DefaultKeyMap(),
		width:    cfg.Width,
		height:   cfg.Height,
		step:     cfg.Step,
	}
	m.setWindow(cfg.Window)
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Window returns the current row window.
func (m Model) Window() dashboard.Window {
	return m.window
}

// Snapshot returns the snapshot currently displayed.
func (m Model) Snapshot() dashboard.Snapshot {
	return m.snapshot
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	m.recorder.RecordState(next, msg)
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case reloadedMsg:
		if msg.err != nil {
			m.lastError = msg.err
			return m, nil
		}
		m.lastError = nil
		m.board = msg.board
		m.setWindow(m.window)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	n := m.board.Dataset().Len()
	w := m.window

	switch {
	case key.Matches(msg, m.keymap.ForceQuit), key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.ToggleHelp):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keymap.Reload):
		if m.reload == nil {
			return m, nil
		}
		reload := m.reload
		return m, func() tea.Msg {
			board, err := reload()
			return reloadedMsg{board: board, err: err}
		}

	case key.Matches(msg, m.keymap.Left):
		shift := min(m.step, w.From)
		w = dashboard.Window{From: w.From - shift, To: w.To - shift}

	case key.Matches(msg, m.keymap.Right):
		shift := min(m.step, n-w.To)
		w = dashboard.Window{From: w.From + shift, To: w.To + shift}

	case key.Matches(msg, m.keymap.Shrink):
		length := max(1, w.Len()-m.step)
		w = dashboard.Window{From: w.From, To: w.From + length}

	case key.Matches(msg, m.keymap.Grow):
		to := min(n, w.To+m.step)
		from := w.From
		if to-w.To < m.step {
			from = max(0, from-(m.step-(to-w.To)))
		}
		w = dashboard.Window{From: from, To: to}

	case key.Matches(msg, m.keymap.Home):
		w = dashboard.Window{From: 0, To: w.Len()}

	case key.Matches(msg, m.keymap.End):
		w = dashboard.Window{From: n - w.Len(), To: n}

	case key.Matches(msg, m.keymap.Reset):
		w = dashboard.Window{From: 0, To: n}

	default:
		return m, nil
	}

	m.setWindow(w)
	return m, nil
}

// setWindow clamps w and recomputes the snapshot.
func (m *Model) setWindow(w dashboard.Window) {
	m.window = w.Clamp(m.board.Dataset().Len())
	m.snapshot = m.board.Snapshot(m.window)
}
