package card

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/models"
)

// CardCmd returns the card parent command
func CardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "card",
		Short: "Manage cards",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(MoveCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(FindCmd())

	return cmd
}

// cardResult is the JSON shape of a card with its placement
type cardResult struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Priority    string    `json:"priority,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	ColumnID    string    `json:"column_id"`
	ColumnTitle string    `json:"column_title"`
	Position    int       `json:"position"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (c cardResult) GetID() string { return c.ID }

func newResult(b models.Board, card models.Card) cardResult {
	res := cardResult{
		ID:          string(card.ID),
		Title:       card.Title,
		Description: card.Description,
		Priority:    string(card.Priority),
		Tags:        card.Tags,
		CreatedAt:   card.CreatedAt,
		UpdatedAt:   card.UpdatedAt,
	}
	if colID, ok := b.ColumnOf(card.ID); ok {
		col, _ := b.Column(colID)
		res.ColumnID = string(col.ID)
		res.ColumnTitle = col.Title
		res.Position = col.IndexOf(card.ID) + 1
	}
	return res
}
