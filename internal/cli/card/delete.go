package card

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
)

// DeleteCmd returns the card delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <card>",
		Short: "Delete a card",
		Long: `Delete a card by ID or unique ID prefix (requires confirmation unless --force
or --quiet).

Examples:
  kanban card delete 3f2a
  kanban card delete 3f2a --force
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
	card, columnID, err := cli.FindCard(store.Board(), args[0])
	if err != nil {
		return cli.Fail(formatter, cli.LookupExitCode(err), "CARD_NOT_FOUND", err.Error())
	}

	if !force && !formatter.Quiet && !formatter.JSON {
		if !cli.Confirm(cmd, fmt.Sprintf("Delete card '%s'?", card.Title)) {
			formatter.Printf("Cancelled\n")
			return nil
		}
	}

	store.DeleteCard(card.ID, columnID)

	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return formatter.Success(map[string]interface{}{"card_id": card.ID})
	}
	formatter.Printf("✓ Card '%s' deleted\n", card.Title)
	return nil
}
