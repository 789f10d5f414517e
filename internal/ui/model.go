// Package ui drives a picker session from keyboard input and draws it.
package ui

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zackbart/sharkit/internal/session"
)

// Options configures the picker model and program.
type Options struct {
	Dir       string
	Highlight bool
	Markdown  bool
	Style     string
	Logger    *slog.Logger

	// Output is where the UI is drawn and whose terminal decides the colour
	// profile. Defaults to stderr so stdout stays free for the result.
	Output io.Writer
	// Input is read for key presses. When nil and InputTTY is set the
	// controlling terminal is opened instead.
	Input    io.Reader
	InputTTY bool
}

// Model is the bubbletea model around a session.
type Model struct {
	session *session.Session
	keys    keyMap
	help    help.Model
	deco    *decorator
	logger  *slog.Logger
	st      styles

	dir    string
	state  State
	width  int
	height int
}

// New wraps s in a model. The session is mutated in place by Update.
func New(s *session.Session, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	m := Model{
		session: s,
		keys:    defaultKeyMap(),
		help:    help.New(),
		deco:    newDecorator(opts.Highlight, opts.Markdown, opts.Style),
		logger:  logger,
		dir:     opts.Dir,
	}
	m.setRenderer(lipgloss.NewRenderer(out))
	return m
}

func (m *Model) setRenderer(r *lipgloss.Renderer) {
	m.st = newStyles(r)
	m.help.ShortSeparator = "  ·  "
	m.help.Styles.ShortKey = m.st.hintKey
	m.help.Styles.ShortDesc = m.st.hintText
	m.help.Styles.ShortSeparator = m.st.hintSep
	m.help.Styles.Ellipsis = m.st.hintSep
}

// State is the loop state after the last handled message.
func (m Model) State() State { return m.state }

// Session returns the underlying session.
func (m Model) Session() *session.Session { return m.session }

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state.Done() {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		cmd := m.keys.resolve(msg)
		if cmd.Action == ActionNone {
			return m, nil
		}
		m.state = Apply(m.session, cmd)
		m.logger.Debug("key handled",
			"key", msg.String(),
			"action", cmd.Action.String(),
			"cursor", m.session.Cursor(),
			"selected", m.session.SelectedCount(),
			"state", m.state.String())
		if m.state.Done() {
			return m, tea.Quit
		}
	}

	return m, nil
}

// Run draws the picker until the user confirms or cancels and returns the
// final state. The terminal is restored before Run returns on every path.
func Run(s *session.Session, opts Options) (State, error) {
	m := New(s, opts)

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	progOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithOutput(out)}
	switch {
	case opts.Input != nil:
		progOpts = append(progOpts, tea.WithInput(opts.Input))
	case opts.InputTTY:
		progOpts = append(progOpts, tea.WithInputTTY())
	}

	final, err := tea.NewProgram(m, progOpts...).Run()
	if err != nil {
		return Cancelled, fmt.Errorf("run picker: %w", err)
	}
	fm, ok := final.(Model)
	if !ok || !fm.state.Done() {
		// Killed or interrupted without a decision.
		return Cancelled, nil
	}
	return fm.state, nil
}
