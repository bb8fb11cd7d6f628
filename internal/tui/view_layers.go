package tui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/kanban/internal/markdown"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/tui/components"
	"github.com/thenoetrevino/kanban/internal/tui/layers"
	"github.com/thenoetrevino/kanban/internal/tui/palette"
	"github.com/thenoetrevino/kanban/internal/tui/state"
)

const (
	modalMinWidth = 40
	modalMaxWidth = 80
)

// modalLayer renders the overlay for the current mode, or nil in modes
// that only show the board
func (m Model) modalLayer(b models.Board) *lipgloss.Layer {
	var box string
	switch m.UIState.Mode() {
	case state.AddCardMode, state.AddColumnMode:
		box = m.renderInput(components.CreateInputBoxStyle)
	case state.RenameColumnMode:
		box = m.renderInput(components.EditInputBoxStyle)
	case state.DeleteCardConfirmMode:
		box = m.renderDeleteCard(b)
	case state.DeleteColumnConfirmMode:
		box = m.renderDeleteColumn(b)
	case state.DetailMode:
		box = m.renderDetail(b)
	case state.SearchMode:
		box = m.renderSearch(b)
	case state.HelpMode:
		box = components.HelpBoxStyle.Render(components.RenderHelp(m.Keys))
	default:
		return nil
	}
	return layers.CreateCenteredLayer(box, m.UIState.Width(), m.UIState.Height())
}

func (m Model) modalWidth() int {
	return layers.ModalWidth(m.UIState.Width(), modalMinWidth, modalMaxWidth)
}

func (m Model) renderInput(style lipgloss.Style) string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		components.TitleStyle.Render(m.InputState.Prompt),
		"",
		m.InputState.View(),
		"",
		components.SubtleStyle.Render("enter: save  esc: cancel"),
	)
	return style.Width(m.modalWidth()).Render(content)
}

func (m Model) renderDeleteCard(b models.Board) string {
	card, _, ok := m.currentCard(b)
	if !ok {
		return ""
	}
	return m.renderConfirm(fmt.Sprintf("Delete card '%s'?", card.Title))
}

func (m Model) renderDeleteColumn(b models.Board) string {
	col, ok := m.currentColumn(b)
	if !ok {
		return ""
	}
	prompt := fmt.Sprintf("Delete column '%s'?", col.Title)
	if n := len(col.CardIDs); n > 0 {
		prompt += fmt.Sprintf("\nIts %d card(s) will be deleted too.", n)
	}
	return m.renderConfirm(prompt)
}

func (m Model) renderConfirm(prompt string) string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		prompt,
		"",
		components.SubtleStyle.Render("y: delete  n: cancel"),
	)
	return components.DeleteConfirmBoxStyle.Width(m.modalWidth()).Render(content)
}

// renderDetail shows one card with its description rendered as markdown
func (m Model) renderDetail(b models.Board) string {
	card, col, ok := m.currentCard(b)
	if !ok {
		return ""
	}
	width := m.modalWidth()
	label := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(palette.Accent))

	lines := []string{
		components.TitleStyle.Render(card.Title),
		"",
		label.Render("Column: ") + col.Title,
	}
	if card.Priority != "" {
		lines = append(lines, label.Render("Priority: ")+
			lipgloss.NewStyle().Foreground(lipgloss.Color(components.PriorityColor(card.Priority))).Render(string(card.Priority)))
	}
	if len(card.Tags) > 0 {
		lines = append(lines, label.Render("Tags: ")+"#"+strings.Join(card.Tags, " #"))
	}
	lines = append(lines,
		label.Render("Created: ")+card.CreatedAt.Local().Format("2006-01-02 15:04"),
		label.Render("Updated: ")+card.UpdatedAt.Local().Format("2006-01-02 15:04"),
		"",
	)
	if desc := markdown.Render(card.Description, width-6, m.App.Theme.Theme().String()); desc != "" {
		lines = append(lines, desc)
	} else {
		lines = append(lines, components.SubtleStyle.Italic(true).Render("No description"))
	}
	lines = append(lines, "", components.SubtleStyle.Render("esc: close"))

	return components.DetailBoxStyle.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// renderSearch shows the query and the best matches with their columns
func (m Model) renderSearch(b models.Board) string {
	lines := []string{
		components.TitleStyle.Render(m.InputState.Prompt),
		m.InputState.View(),
		"",
	}
	switch {
	case len(m.SearchState.Results) > 0:
		highlight := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(palette.Accent))
		for i, card := range m.SearchState.Results {
			where := ""
			if colID, ok := b.ColumnOf(card.ID); ok {
				if col, ok := b.Column(colID); ok {
					where = components.SubtleStyle.Render("  " + col.Title)
				}
			}
			line := "  " + card.Title
			if i == m.SearchState.Selected {
				line = highlight.Render("▸ " + card.Title)
			}
			lines = append(lines, line+where)
		}
	case m.InputState.IsEmpty():
		lines = append(lines, components.SubtleStyle.Render("Type to search card titles"))
	default:
		lines = append(lines, components.SubtleStyle.Render("No matches"))
	}
	lines = append(lines, "", components.SubtleStyle.Render("↑/↓: choose  enter: go  esc: cancel"))

	return components.EditInputBoxStyle.Width(m.modalWidth()).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
