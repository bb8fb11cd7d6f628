package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/tui/palette"
	"github.com/thenoetrevino/kanban/internal/types"
)

// RenderCard renders a single card with a fixed height
//
//	┏━━━━━━━━━━━━━━━━━━━━━━┓
//	┃ {Card Title}         ┃
//	┃ [priority]           ┃
//	┃ #tag1 #tag2          ┃
//	┗━━━━━━━━━━━━━━━━━━━━━━┛
func RenderCard(card models.Card, selected, dragging bool) string {
	bg := palette.CardBg
	border := palette.CardBorder
	if selected {
		bg = palette.SelectedBg
		border = palette.SelectedBorder
	}
	if dragging {
		border = palette.DragBorder
	}

	lines := []string{
		renderCardTitle(card.Title, bg),
		renderCardPriority(card.Priority, bg),
		renderCardTags(card.Tags, bg),
	}

	return CardStyle.
		BorderForeground(lipgloss.Color(border)).
		BorderBackground(lipgloss.Color(bg)).
		Background(lipgloss.Color(bg)).
		Render(strings.Join(lines, "\n"))
}

// TruncateTitle shortens a title to fit on a card
func TruncateTitle(title string) string {
	r := []rune(title)
	if len(r) <= cardTitleMaxLength {
		return title
	}
	return string(r[:cardTitleMaxLength-1]) + "…"
}

func renderCardTitle(title string, bg string) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(palette.Normal)).
		Background(lipgloss.Color(bg)).
		Render(TruncateTitle(title))
}

func renderCardPriority(p types.Priority, bg string) string {
	style := lipgloss.NewStyle().Background(lipgloss.Color(bg))
	if p == types.PriorityNone {
		return style.Render(" ")
	}
	return style.
		Bold(true).
		Foreground(lipgloss.Color(PriorityColor(p))).
		Render("[" + string(p) + "]")
}

func renderCardTags(tags []string, bg string) string {
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(palette.Subtle)).
		Background(lipgloss.Color(bg))
	if len(tags) == 0 {
		return style.Render(" ")
	}
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = "#" + t
	}
	return style.Render(TruncateTitle(strings.Join(parts, " ")))
}
