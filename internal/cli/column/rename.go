package column

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
)

// RenameCmd returns the column rename subcommand
func RenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename <column>",
		Short: "Rename a column",
		Long: `Rename a column. The column may be given by ID, 1-based position or title.

Examples:
  kanban column rename 2 --title="Doing"
  kanban column rename "In Progress" --title="Doing" --json
`,
		Args: cobra.ExactArgs(1),
		RunE: runRename,
	}

	cmd.Flags().String("title", "", "New column title (required)")
	if err := cmd.MarkFlagRequired("title"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runRename(cmd *cobra.Command, args []string) error {
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
	col, err := cli.FindColumn(store.Board(), args[0])
	if err != nil {
		return cli.Fail(formatter, cli.LookupExitCode(err), "COLUMN_NOT_FOUND", err.Error())
	}

	oldTitle := col.Title
	store.UpdateColumn(col.ID, title)
	b := store.Board()
	col, _ = b.Column(col.ID)

	if formatter.JSON || formatter.Quiet {
		return formatter.Success(newResult(b, col))
	}
	formatter.Printf("✓ Column '%s' renamed to '%s'\n", oldTitle, col.Title)
	return nil
}
