package components

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// StatusBarProps describes the bottom line of the board
type StatusBarProps struct {
	Width        int
	Mode         string
	Theme        string
	Notification string // already rendered
}

// RenderStatusBar renders a status bar with left and right aligned text
// Left side: mode badge and the latest notification
// Right side: theme and "? for help"
func RenderStatusBar(props StatusBarProps) string {
	left := ModeStyle.Render(props.Mode)
	if props.Notification != "" {
		left += " " + props.Notification
	}
	right := StatusBarStyle.Render(props.Theme + " · press ? for help")

	gapWidth := max(props.Width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", gapWidth), right)
}
