package components

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/tui/palette"
	"github.com/thenoetrevino/kanban/internal/types"
)

// ColumnProps describes one column to render
type ColumnProps struct {
	Column       models.Column
	Cards        []models.Card
	Selected     bool         // column has the cursor
	SelectedCard int          // index of the cursor card, -1 for none
	Dragging     types.CardID // card being carried, if any
	Height       int          // fixed height, 0 for auto
	ScrollOffset int          // index of the first visible card
	VisibleCards int          // cards that fit in Height
}

// RenderColumn renders a complete column with its title and cards
//
// Layout:
//
//	{Column Title} ({count})
//	▲ (if scrolled down)
//	{Card 1}
//	{Card 2}
//	...
//	▼ (if more cards below)
func RenderColumn(p ColumnProps) string {
	header := fmt.Sprintf("%s (%d)", p.Column.Title, len(p.Cards))
	content := TitleStyle.Render(TruncateTitle(header)) + "\n"

	if len(p.Cards) == 0 {
		empty := lipgloss.NewStyle().
			Foreground(lipgloss.Color(palette.Subtle)).
			Italic(true).
			Padding(1, 0)
		content += empty.Render("No cards")
	} else {
		visible := max(p.VisibleCards, 1)
		offset := max(0, min(p.ScrollOffset, len(p.Cards)-1))

		if offset > 0 {
			content += IndicatorStyle.Render("▲ more above") + "\n"
		} else {
			content += "\n"
		}

		end := min(offset+visible, len(p.Cards))
		for i, card := range p.Cards[offset:end] {
			idx := offset + i
			content += RenderCard(card, p.Selected && idx == p.SelectedCard, card.ID == p.Dragging) + "\n"
		}

		if end < len(p.Cards) {
			content += IndicatorStyle.Render("▼ more below")
		}
	}

	style := ColumnStyle
	if p.Selected {
		style = style.BorderForeground(lipgloss.Color(palette.SelectedBorder))
	}
	if p.Height > 0 {
		style = style.Height(p.Height)
	}
	return style.Render(content)
}
