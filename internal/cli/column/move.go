package column

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/placement"
)

// MoveCmd returns the column move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <column>",
		Short: "Move a column to another position",
		Long: `Move a column to a new 1-based position. Positions past the end move the
column to the end.

Examples:
  kanban column move Done --to=1
`,
		Args: cobra.ExactArgs(1),
		RunE: runMove,
	}

	cmd.Flags().Int("to", 0, "Target position, 1-based (required)")
	if err := cmd.MarkFlagRequired("to"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	to, _ := cmd.Flags().GetInt("to")
	if to < 1 {
		return cli.Fail(formatter, cli.ExitValidation, "INVALID_POSITION", "position must be 1 or greater")
	}

	cliInstance, closeCLI, err := cli.Open(cmd.Context(), formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	store := cliInstance.App.Board
	b := store.Board()
	col, err := cli.FindColumn(b, args[0])
	if err != nil {
		return cli.Fail(formatter, cli.LookupExitCode(err), "COLUMN_NOT_FOUND", err.Error())
	}

	store.ReorderColumns(placement.MoveIndex(b.Columns, b.ColumnIndex(col.ID), to-1))
	b = store.Board()

	if formatter.JSON || formatter.Quiet {
		return formatter.Success(newResult(b, col))
	}
	formatter.Printf("✓ Column '%s' moved to position %d\n", col.Title, b.ColumnIndex(col.ID)+1)
	return nil
}
