package card

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
)

// AddCmd returns the card add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a card to a column",
		Long: `Add a new card to the bottom of a column. The column may be given by ID,
1-based position or title; it defaults to the first column.

Examples:
  # Add to the first column
  kanban card add --title="Write release notes"

  # Add with a markdown description to a named column
  kanban card add --title="Fix login" --column="In Progress" --description="Repro in **staging**"

  # Quiet mode for bash capture
  CARD_ID=$(kanban card add --title="Triage" --quiet)
`,
		RunE: runAdd,
	}

	// Required flags
	cmd.Flags().String("title", "", "Card title (required)")
	if err := cmd.MarkFlagRequired("title"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}

	// Optional flags
	cmd.Flags().String("column", "1", "Column ID, position or title")
	cmd.Flags().String("description", "", "Card description (markdown)")

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	rawTitle, _ := cmd.Flags().GetString("title")
	columnRef, _ := cmd.Flags().GetString("column")
	description, _ := cmd.Flags().GetString("description")

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
	col, err := cli.FindColumn(store.Board(), columnRef)
	if err != nil {
		return cli.FailWithSuggestion(formatter, cli.LookupExitCode(err), "COLUMN_NOT_FOUND", err.Error(),
			"List columns with: kanban board show")
	}

	id, ok := store.AddCard(col.ID, title, description)
	if !ok {
		return cli.Fail(formatter, cli.ExitNotFound, "COLUMN_NOT_FOUND", "column disappeared before the card was added")
	}

	b := store.Board()
	card, _ := b.Card(id)
	if formatter.JSON || formatter.Quiet {
		return formatter.Success(newResult(b, card))
	}
	formatter.Printf("✓ Card '%s' added to '%s' (ID: %s)\n", card.Title, col.Title, cli.ShortID(string(id)))
	return nil
}
