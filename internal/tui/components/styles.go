// Package components provides reusable UI components and styles.
// Call InitStyles() to switch palettes; the light scheme is loaded by default.
package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/kanban/internal/config"
	"github.com/thenoetrevino/kanban/internal/tui/palette"
	"github.com/thenoetrevino/kanban/internal/types"
)

// Fixed sizes of the board pieces
const (
	columnContentWidth = 30
	cardContentWidth   = 26
	cardTitleMaxLength = 24
)

// These are cached to avoid recomputing on every redraw.
var (
	// ColumnStyle defines the appearance of kanban board columns
	ColumnStyle lipgloss.Style

	// CardStyle defines the appearance of individual cards
	CardStyle lipgloss.Style

	// TitleStyle defines the appearance of titles (column names, app header)
	TitleStyle lipgloss.Style

	// SubtleStyle is muted helper text
	SubtleStyle lipgloss.Style

	// CreateInputBoxStyle defines the base style for creation dialogs
	CreateInputBoxStyle lipgloss.Style

	// EditInputBoxStyle defines the base style for edit dialogs
	EditInputBoxStyle lipgloss.Style

	// DeleteConfirmBoxStyle defines the base style for deletion confirmations
	DeleteConfirmBoxStyle lipgloss.Style

	// HelpBoxStyle defines the base style for help screen
	HelpBoxStyle lipgloss.Style

	// DetailBoxStyle frames the card detail view
	DetailBoxStyle lipgloss.Style

	// IndicatorStyle defines the appearance of scroll indicators
	IndicatorStyle lipgloss.Style

	// StatusBarStyle defines the base style for the status bar
	StatusBarStyle lipgloss.Style

	// ModeStyle is the mode badge at the left of the status bar
	ModeStyle lipgloss.Style
)

func init() {
	InitStyles(config.DefaultColors().Light)
}

// InitStyles initializes all styles with the given color scheme
func InitStyles(colors config.ColorScheme) {
	palette.Init(colors)

	ColumnStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(palette.ColumnBorder)).
		Background(lipgloss.Color(palette.ColumnBg)).
		PaddingLeft(1).
		PaddingRight(1).
		Width(columnContentWidth)

	CardStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color(palette.CardBorder)).
		BorderBackground(lipgloss.Color(palette.CardBg)).
		Background(lipgloss.Color(palette.CardBg)).
		Padding(0).
		Width(cardContentWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(palette.Title))

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(palette.Subtle))

	dialog := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2)

	CreateInputBoxStyle = dialog.BorderForeground(lipgloss.Color(palette.PriorityLow))
	EditInputBoxStyle = dialog.BorderForeground(lipgloss.Color(palette.Accent))
	DeleteConfirmBoxStyle = dialog.BorderForeground(lipgloss.Color(palette.ErrorFg))
	HelpBoxStyle = dialog.BorderForeground(lipgloss.Color(palette.Accent))
	DetailBoxStyle = dialog.BorderForeground(lipgloss.Color(palette.Accent))

	IndicatorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(palette.Subtle)).
		Align(lipgloss.Center)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(palette.Subtle))

	ModeStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(palette.Background)).
		Background(lipgloss.Color(palette.Accent)).
		Padding(0, 1)
}

// PriorityColor returns the palette color for a priority
func PriorityColor(p types.Priority) string {
	switch p {
	case types.PriorityLow:
		return palette.PriorityLow
	case types.PriorityMedium:
		return palette.PriorityMedium
	case types.PriorityHigh:
		return palette.PriorityHigh
	}
	return palette.Subtle
}
