// Package palette holds the colors of the active theme for the TUI.
package palette

import "github.com/thenoetrevino/kanban/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Accent         string
	Background     string
	ColumnBg       string
	ColumnBorder   string
	CardBorder     string
	CardBg         string
	SelectedBorder string
	SelectedBg     string
	DragBorder     string
	Title          string
	Subtle         string
	Normal         string
	PriorityLow    string
	PriorityMedium string
	PriorityHigh   string
	InfoFg         string
	ErrorFg        string
)

// Init initializes the palette from the given color scheme
func Init(colors config.ColorScheme) {
	Accent = colors.Accent
	Background = colors.Background
	ColumnBg = colors.ColumnBackground
	ColumnBorder = colors.ColumnBorder
	CardBorder = colors.CardBorder
	CardBg = colors.CardBackground
	SelectedBorder = colors.SelectedBorder
	SelectedBg = colors.SelectedBg
	DragBorder = colors.DragBorder
	Title = colors.Title
	Subtle = colors.Subtle
	Normal = colors.Normal
	PriorityLow = colors.PriorityLow
	PriorityMedium = colors.PriorityMedium
	PriorityHigh = colors.PriorityHigh
	InfoFg = colors.InfoFg
	ErrorFg = colors.ErrorFg
}
