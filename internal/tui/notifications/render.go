// Package notifications renders user-facing messages for the status bar.
package notifications

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/kanban/internal/tui/state"
)

// RenderInline renders a compact single-line notification
func RenderInline(severity Severity, message string) string {
	s := severity.style()
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.foreground)).
		Render(s.icon + " " + message)
}

// RenderInlineFromState renders a compact inline notification from state
func RenderInlineFromState(n state.Notification) string {
	if n.Level == state.LevelError {
		return RenderInline(Error, n.Message)
	}
	return RenderInline(Info, n.Message)
}
