package column

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/models"
)

// ColumnCmd returns the column parent command
func ColumnCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "column",
		Short: "Manage columns",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(RenameCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(MoveCmd())

	return cmd
}

// columnResult is the JSON shape of a column
type columnResult struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Position int    `json:"position"`
	Cards    int    `json:"cards"`
}

func (c columnResult) GetID() string { return c.ID }

func newResult(b models.Board, col models.Column) columnResult {
	return columnResult{
		ID:       string(col.ID),
		Title:    col.Title,
		Position: b.ColumnIndex(col.ID) + 1,
		Cards:    len(col.CardIDs),
	}
}
