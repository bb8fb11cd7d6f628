package components

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/kanban/internal/config"
)

// HelpLines lists the key bindings shown by the help overlay
func HelpLines(km config.KeyMappings) []string {
	row := func(keys, what string) string {
		return fmt.Sprintf("%-14s %s", keys, what)
	}
	return []string{
		TitleStyle.Render("Navigation"),
		row(km.PrevColumn+"/"+km.NextColumn+" ←/→", "previous/next column"),
		row(km.PrevCard+"/"+km.NextCard+" ↑/↓", "previous/next card"),
		row(km.FindCard, "find a card"),
		"",
		TitleStyle.Render("Cards"),
		row(km.AddCard, "add card"),
		row(km.ViewCard+"/enter", "show card"),
		row(km.GrabCard, "grab card, move with arrows, enter to drop"),
		row(km.DeleteCard, "delete card"),
		"",
		TitleStyle.Render("Columns"),
		row(km.CreateColumn, "add column"),
		row(km.RenameColumn, "rename column"),
		row(km.DeleteColumn, "delete column"),
		"",
		TitleStyle.Render("Other"),
		row(km.ToggleTheme, "toggle light/dark theme"),
		row(km.ShowHelp, "toggle help"),
		row(km.Quit+"/ctrl+c", "quit"),
	}
}

// RenderHelp renders the help overlay body
func RenderHelp(km config.KeyMappings) string {
	return strings.Join(HelpLines(km), "\n") + "\n\n" + SubtleStyle.Render("esc: close")
}
