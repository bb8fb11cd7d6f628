package column

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
)

// AddCmd returns the column add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a column to the end of the board",
		Long: `Add a new, empty column to the right end of the board.

Examples:
  # Human-readable output
  kanban column add --title="Review"

  # Quiet mode for bash capture
  COLUMN_ID=$(kanban column add --title="Review" --quiet)
`,
		RunE: runAdd,
	}

	// Required flags
	cmd.Flags().String("title", "", "Column title (required)")
	if err := cmd.MarkFlagRequired("title"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	rawTitle, _ := cmd.Flags().GetString("title")
	title, err := cli.ValidateTitle(rawTitle)
	if err != nil {
		return cli.Fail(formatter, cli.ExitValidation, "INVALID_TITLE", err.Error())
	}

	cliInstance, closeCLI, err := cli.Open(cmd.Context(), formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	store := cliInstance.App.Board
	id := store.AddColumn(title)
	b := store.Board()
	col, _ := b.Column(id)

	if formatter.JSON || formatter.Quiet {
		return formatter.Success(newResult(b, col))
	}
	formatter.Printf("✓ Column '%s' added (ID: %s, position %d)\n", col.Title, cli.ShortID(string(col.ID)), b.ColumnIndex(id)+1)
	return nil
}
