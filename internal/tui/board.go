package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/DoyleJ11/freecell-client/internal/render"
	"github.com/DoyleJ11/freecell-client/internal/selection"
)

const (
	columnWidth = 7
)

func renderScreen(m Model) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("FreeCell"))
	b.WriteString("\n\n")

	cursor, hasCursor := m.Cursor()
	isCursor := func(t selection.Target) bool { return hasCursor && cursor.Same(t) }
	isArmed := func(t selection.Target) bool { return m.frame.Armed != nil && m.frame.Armed.Target.Same(t) }
	paint := func(t selection.Target, text string, base lipgloss.Style) string {
		switch {
		case isArmed(t):
			return ArmedStyle.Render(text)
		case isCursor(t):
			return base.Inherit(CursorStyle).Render(text)
		default:
			return base.Render(text)
		}
	}

	b.WriteString(renderCells(m.frame.View, paint))
	b.WriteString("\n\n")
	b.WriteString(SeparatorStyle.Render(strings.Repeat("─", 8*columnWidth)))
	b.WriteString("\n")
	b.WriteString(renderTable(m.frame.View, paint))
	b.WriteString("\n\n")
	b.WriteString(renderStatus(m))
	b.WriteString("\n\n")
	b.WriteString(renderHelp())
	return b.String()
}

type painter func(t selection.Target, text string, base lipgloss.Style) string

func cardText(t selection.Target) (string, lipgloss.Style) {
	if t.Card == nil {
		return "[   ]", DimmedStyle
	}
	label := lipgloss.PlaceHorizontal(3, lipgloss.Right, t.Card.Label())
	switch {
	case t.Card.Red():
		return "[" + label + "]", RedCardStyle
	case t.Card.Black():
		return "[" + label + "]", BlackCardStyle
	default:
		return "[" + label + "]", DimmedStyle
	}
}

func renderCells(v render.View, paint painter) string {
	if !v.Started {
		return ColumnHeaderStyle.Render("Free ") + DimmedStyle.Render(render.PlaceholderCells) +
			"    " + ColumnHeaderStyle.Render("Home ") + DimmedStyle.Render(render.PlaceholderCells)
	}
	var free, home []string
	for _, s := range v.Free {
		text, style := cardText(s.Target)
		free = append(free, paint(s.Target, text, style))
	}
	for _, s := range v.Home {
		text, style := cardText(s.Target)
		home = append(home, paint(s.Target, text, style))
	}
	return strings.Join(free, " ") + "   " + strings.Join(home, " ")
}

func renderTable(v render.View, paint painter) string {
	switch {
	case !v.Started:
		return DimmedStyle.Render(render.PlaceholderTable)
	case v.NoColumns:
		return DimmedStyle.Render(render.PlaceholderNoTable)
	}

	cols := make([]string, 0, len(v.Columns))
	for _, col := range v.Columns {
		lines := []string{ColumnHeaderStyle.Render(col.Header)}
		if col.Placeholder != nil {
			lines = append(lines, paint(*col.Placeholder, render.PlaceholderEmpty, DimmedStyle))
		}
		for _, t := range col.Cards {
			text, style := cardText(t)
			lines = append(lines, paint(t, text, style))
		}
		cols = append(cols, lipgloss.NewStyle().Width(columnWidth).Render(strings.Join(lines, "\n")))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func renderStatus(m Model) string {
	st := m.frame.Status
	line := SuccessStyle.Render(st.Text)
	if st.IsError {
		line = ErrorStyle.Render(st.Text)
	}
	if m.frame.Busy {
		line = m.spinner.View() + " " + line
	}
	return line
}

func renderHelp() string {
	keys := []string{
		RenderKeyBinding("←↑↓→", "move"),
		RenderKeyBinding("enter", "click"),
		RenderKeyBinding("n", "new game"),
		RenderKeyBinding("c", "computer"),
		RenderKeyBinding("u", "undo"),
		RenderKeyBinding("x", "quit game"),
		RenderKeyBinding("r", "refresh"),
		RenderKeyBinding("q", "exit"),
	}
	return strings.Join(keys, HelpStyle.Render(" • "))
}
