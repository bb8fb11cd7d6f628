package styles

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/kanban/internal/config"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/types"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 80

	// Board styles
	ColumnStyle lipgloss.Style
	ColumnWidth = 28

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Priority:"
	ValueStyle    lipgloss.Style // For field values
	SectionStyle  lipgloss.Style // For section headers like "Description"

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style

	priorityColors map[types.Priority]string
)

func init() {
	Init(config.DefaultColors().Light)
}

// Init initializes all CLI styles with the given color scheme
func Init(colors config.ColorScheme) {
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(1, 2).
		Width(CardWidth)

	ColumnStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.ColumnBorder)).
		Padding(0, 1).
		Width(ColumnWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Accent)).
		Bold(true).
		MarginTop(1)

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.InfoFg))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.ErrorFg))

	priorityColors = map[types.Priority]string{
		types.PriorityLow:    colors.PriorityLow,
		types.PriorityMedium: colors.PriorityMedium,
		types.PriorityHigh:   colors.PriorityHigh,
	}
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// ColoredText renders text with a hex color
func ColoredText(text, hexColor string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(hexColor)).
		Render(text)
}

// RenderPriority renders a priority as a colored chip; unset renders empty
func RenderPriority(p types.Priority) string {
	if p == types.PriorityNone {
		return ""
	}
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(priorityColors[p])).
		Render("[" + string(p) + "]")
}

// RenderTags renders tags as "#tag" separated by spaces
func RenderTags(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = "#" + t
	}
	return SubtitleStyle.Render(strings.Join(parts, " "))
}

// RenderCard wraps content in a styled card border
func RenderCard(content string) string {
	return CardStyle.Render(content)
}

// RenderBoard lays the columns of b out side by side
func RenderBoard(b models.Board) string {
	columns := make([]string, 0, len(b.Columns))
	for i, col := range b.Columns {
		var sb strings.Builder
		fmt.Fprintf(&sb, "%s %s\n", TitleStyle.Render(fmt.Sprintf("%d. %s", i+1, col.Title)),
			SubtitleStyle.Render(fmt.Sprintf("(%d)", len(col.CardIDs))))
		if len(col.CardIDs) == 0 {
			sb.WriteString(SubtitleStyle.Italic(true).Render("empty"))
		}
		for j, id := range col.CardIDs {
			card := b.Cards[id]
			line := ValueStyle.Render("• " + card.Title)
			if chip := RenderPriority(card.Priority); chip != "" {
				line += " " + chip
			}
			sb.WriteString(line)
			if j < len(col.CardIDs)-1 {
				sb.WriteString("\n")
			}
		}
		columns = append(columns, ColumnStyle.Render(sb.String()))
	}

	header := TitleStyle.Render(b.Title)
	if len(columns) == 0 {
		return header + "\n" + SubtitleStyle.Render("No columns")
	}
	return header + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}
