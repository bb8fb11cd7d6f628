package column

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
)

// DeleteCmd returns the column delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <column>",
		Short: "Delete a column and its cards",
		Long: `Delete a column (requires confirmation unless --force or --quiet).

Warning: Deleting a column also deletes every card in it.

Examples:
  # Delete with confirmation
  kanban column delete 3

  # Skip confirmation
  kanban column delete Done --force
`,
		Args: cobra.ExactArgs(1),
		RunE: runDelete,
	}

	cmd.Flags().Bool("force", false, "Skip confirmation")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)
	force, _ := cmd.Flags().GetBool("force")

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

	// Ask for confirmation unless force, quiet or JSON mode
	if !force && !formatter.Quiet && !formatter.JSON {
		prompt := fmt.Sprintf("Delete column '%s' and its %d card(s)?", col.Title, len(col.CardIDs))
		if !cli.Confirm(cmd, prompt) {
			formatter.Printf("Cancelled\n")
			return nil
		}
	}

	store.DeleteColumn(col.ID)

	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return formatter.Success(map[string]interface{}{
			"column_id":     col.ID,
			"deleted_cards": len(col.CardIDs),
		})
	}
	formatter.Printf("✓ Column '%s' deleted (%d card(s) removed)\n", col.Title, len(col.CardIDs))
	return nil
}
