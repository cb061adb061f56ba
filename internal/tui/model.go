package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/DoyleJ11/freecell-client/internal/selection"
	"github.com/DoyleJ11/freecell-client/internal/session"
)

// Model is the main Bubbletea model
type Model struct {
	inbox   chan<- session.Msg
	frames  <-chan session.Frame
	frame   session.Frame
	cursor  int
	spinner spinner.Model
	width   int
	height  int
	closed  bool
}

// Messages for async operations
type frameMsg session.Frame
type framesClosedMsg struct{}

// New creates a Model fed by a session outbox
func New(inbox chan<- session.Msg, frames <-chan session.Frame) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	return Model{
		inbox:   inbox,
		frames:  frames,
		spinner: s,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.waitForFrame(), m.spinner.Tick)
}

func (m Model) waitForFrame() tea.Cmd {
	return func() tea.Msg {
		f, ok := <-m.frames
		if !ok {
			return framesClosedMsg{}
		}
		return frameMsg(f)
	}
}

// send hands a message to the session without blocking Update.
func (m Model) send(msg session.Msg) tea.Cmd {
	return func() tea.Msg {
		m.inbox <- msg
		return nil
	}
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case frameMsg:
		return m.applyFrame(session.Frame(msg)), m.waitForFrame()

	case framesClosedMsg:
		m.closed = true
		return m, tea.Quit
	}
	return m, nil
}

// applyFrame swaps in a new frame, dropping any older than the one shown,
// and keeps the cursor on the same element when it still exists.
func (m Model) applyFrame(f session.Frame) Model {
	if f.Version < m.frame.Version {
		return m
	}
	var prev *selection.Target
	if old := m.frame.View.Targets(); m.cursor < len(old) {
		prev = &old[m.cursor]
	}
	m.frame = f

	targets := f.View.Targets()
	switch {
	case len(targets) == 0:
		m.cursor = 0
	case prev != nil:
		m.cursor = nearest(targets, *prev)
	case m.cursor >= len(targets):
		m.cursor = len(targets) - 1
	}
	return m
}

// Frame returns the frame currently on screen
func (m Model) Frame() session.Frame { return m.frame }

// Cursor returns the target under the cursor, if any
func (m Model) Cursor() (selection.Target, bool) {
	targets := m.frame.View.Targets()
	if m.cursor < 0 || m.cursor >= len(targets) {
		return selection.Target{}, false
	}
	return targets[m.cursor], true
}

// View implements tea.Model
func (m Model) View() string {
	if m.closed {
		return ""
	}
	return renderScreen(m)
}
