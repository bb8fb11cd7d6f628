package board

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/models"
)

// ResetCmd returns the board reset subcommand
func ResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Replace the board with a fresh default board",
		Long: `Replace the board with a fresh board using the configured title and columns.
All cards are lost (requires confirmation unless --force or --quiet).

Examples:
  kanban board reset --force
`,
		RunE: runReset,
	}

	cmd.Flags().Bool("force", false, "Skip confirmation")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runReset(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)
	force, _ := cmd.Flags().GetBool("force")

	cliInstance, closeCLI, err := cli.Open(cmd.Context(), formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	store := cliInstance.App.Board
	if !force && !formatter.Quiet && !formatter.JSON {
		if !cli.Confirm(cmd, "Replace the board and delete all cards?") {
			formatter.Printf("Cancelled\n")
			return nil
		}
	}

	cfg := cliInstance.App.Config.Board
	store.SetBoard(models.DefaultBoard(cfg.Title, cfg.Columns...))
	b := store.Board()

	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return formatter.Success(b)
	}
	formatter.Printf("✓ Board reset to '%s' with %d columns\n", b.Title, len(b.Columns))
	return nil
}
