package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/DoyleJ11/freecell-client/internal/session"
)

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "left", "h":
		m.cursor = step(m.frame.View.Targets(), m.cursor, dirLeft)
	case "right", "l":
		m.cursor = step(m.frame.View.Targets(), m.cursor, dirRight)
	case "up", "k":
		m.cursor = step(m.frame.View.Targets(), m.cursor, dirUp)
	case "down", "j":
		m.cursor = step(m.frame.View.Targets(), m.cursor, dirDown)

	case "tab":
		if n := len(m.frame.View.Targets()); n > 0 {
			m.cursor = (m.cursor + 1) % n
		}
	case "shift+tab":
		if n := len(m.frame.View.Targets()); n > 0 {
			m.cursor = (m.cursor - 1 + n) % n
		}

	case "enter", " ":
		if t, ok := m.Cursor(); ok {
			return m, m.send(session.Click{Target: t})
		}

	case "n":
		return m, m.send(session.NewGame{})
	case "c":
		return m, m.send(session.ComputerMove{})
	case "u":
		return m, m.send(session.Undo{})
	case "x":
		return m, m.send(session.Quit{})
	case "r":
		return m, m.send(session.Refresh{})
	}
	return m, nil
}
