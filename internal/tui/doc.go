// Package tui is the terminal front end, built on Bubble Tea.
//
// The Model never talks to the engine. Key presses become session messages
// (a cursor over the board's click targets stands in for the mouse) and the
// Model redraws whatever Frame the session last broadcast:
//
//	enter on a target → session.Click → Frame (armed / moved / rejected)
//	n, c, u, x, r     → session.NewGame, ComputerMove, Undo, Quit, Refresh
//
// Frames arrive through waitForFrame, a tea.Cmd blocked on the session
// outbox. When the outbox closes the program exits.
//
// # Key Files
//
//   - model.go: Model definition and Update/View methods
//   - keys.go: keyboard handlers
//   - cursor.go: cursor movement over click targets
//   - board.go: board rendering
//   - styles.go: Lipgloss styling
package tui
