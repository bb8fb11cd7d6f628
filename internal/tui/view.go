package tui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/tui/components"
	"github.com/thenoetrevino/kanban/internal/tui/notifications"
	"github.com/thenoetrevino/kanban/internal/tui/palette"
	"github.com/thenoetrevino/kanban/internal/tui/state"
	"github.com/thenoetrevino/kanban/internal/types"
)

// View renders the board with the overlay of the current mode on top.
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.BackgroundColor = lipgloss.Color(palette.Background)

	// Wait for terminal size to be initialized
	if m.UIState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	b := m.snapshot()
	layers := []*lipgloss.Layer{
		lipgloss.NewLayer(m.viewBoard(b)),
	}
	if modal := m.modalLayer(b); modal != nil {
		layers = append(layers, modal)
	}

	view.Content = lipgloss.NewCanvas(layers...).Render()
	return view
}

// viewBoard renders the header, the visible columns and the status bar
func (m Model) viewBoard(b models.Board) string {
	header := components.TitleStyle.Render(b.Title) +
		components.SubtleStyle.Render(fmt.Sprintf("  %d columns · %d cards", len(b.Columns), b.CardCount()))

	var body string
	if len(b.Columns) == 0 {
		body = components.SubtleStyle.Italic(true).
			Render(fmt.Sprintf("No columns yet. Press %s to add one.", m.Keys.CreateColumn))
	} else {
		body = m.viewColumns(b)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		body,
		m.viewStatusBar(),
	)
}

// viewColumns renders the columns inside the horizontal viewport
func (m Model) viewColumns(b models.Board) string {
	offset := m.UIState.ViewportOffset()
	end := min(offset+m.UIState.ViewportSize(), len(b.Columns))

	dragging := m.draggedCard()
	rendered := make([]string, 0, end-offset+2)
	if offset > 0 {
		rendered = append(rendered, components.IndicatorStyle.Render("◀"))
	}
	for i := offset; i < end; i++ {
		col := b.Columns[i]
		selected := i == m.UIState.SelectedColumn()
		selectedCard := -1
		if selected {
			selectedCard = m.UIState.SelectedCard()
		}
		rendered = append(rendered, components.RenderColumn(components.ColumnProps{
			Column:       col,
			Cards:        b.CardsIn(col.ID),
			Selected:     selected,
			SelectedCard: selectedCard,
			Dragging:     dragging,
			Height:       m.UIState.ContentHeight(),
			ScrollOffset: m.UIState.CardScrollOffset(col.ID),
			VisibleCards: m.UIState.VisibleCards(),
		}))
	}
	if end < len(b.Columns) {
		rendered = append(rendered, components.IndicatorStyle.Render("▶"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) viewStatusBar() string {
	var note string
	if n, ok := m.NotificationState.Current(); ok {
		note = notifications.RenderInlineFromState(n)
	}
	return components.RenderStatusBar(components.StatusBarProps{
		Width:        m.UIState.Width(),
		Mode:         m.UIState.Mode().String(),
		Theme:        m.App.Theme.Theme().String(),
		Notification: note,
	})
}

// draggedCard returns the card being carried, or "" outside a drag
func (m Model) draggedCard() types.CardID {
	if m.UIState.Mode() != state.DragMode {
		return ""
	}
	cardID, _, _ := m.Resolver.Active()
	return cardID
}
