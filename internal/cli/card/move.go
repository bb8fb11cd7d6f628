package card

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
)

// MoveCmd returns the card move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <card>",
		Short: "Move a card to a column and position",
		Long: `Move a card to another column, or to another position in its own column.
Positions are 1-based; without --position the card goes to the bottom.
Out-of-range positions are clamped.

Examples:
  kanban card move 3f2a --to=Done
  kanban card move 3f2a --to="To Do" --position=1
`,
		Args: cobra.ExactArgs(1),
		RunE: runMove,
	}

	cmd.Flags().String("to", "", "Destination column ID, position or title (required)")
	if err := cmd.MarkFlagRequired("to"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}
	cmd.Flags().Int("position", 0, "1-based position in the destination column (0 = bottom)")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	toRef, _ := cmd.Flags().GetString("to")
	position, _ := cmd.Flags().GetInt("position")
	if position < 0 {
		return cli.Fail(formatter, cli.ExitValidation, "INVALID_POSITION", "position must not be negative")
	}

	cliInstance, closeCLI, err := cli.Open(cmd.Context(), formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	store := cliInstance.App.Board
	b := store.Board()
	card, from, err := cli.FindCard(b, args[0])
	if err != nil {
		return cli.Fail(formatter, cli.LookupExitCode(err), "CARD_NOT_FOUND", err.Error())
	}
	dest, err := cli.FindColumn(b, toRef)
	if err != nil {
		return cli.Fail(formatter, cli.LookupExitCode(err), "COLUMN_NOT_FOUND", err.Error())
	}

	index := len(dest.CardIDs)
	if position > 0 {
		index = position - 1
	}
	store.MoveCard(card.ID, from, dest.ID, index)

	b = store.Board()
	res := newResult(b, card)
	if formatter.JSON || formatter.Quiet {
		return formatter.Success(res)
	}
	formatter.Printf("✓ Card '%s' moved to '%s' (position %d)\n", card.Title, res.ColumnTitle, res.Position)
	return nil
}
