package notifications

import "github.com/thenoetrevino/kanban/internal/tui/palette"

// Severity selects the icon and color of a notification
type Severity int

const (
	Info Severity = iota
	Error
)

type style struct {
	icon       string
	foreground string
}

func (s Severity) style() style {
	switch s {
	case Error:
		return style{icon: "✕", foreground: palette.ErrorFg}
	default:
		return style{icon: "🔔", foreground: palette.InfoFg}
	}
}
