package board

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
)

// ShowCmd returns the board show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the board",
		Long: `Show every column and its cards.

Examples:
  kanban board show
  kanban board show --json
`,
		RunE: runShow,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	cliInstance, closeCLI, err := cli.Open(cmd.Context(), formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	b := cliInstance.App.Board.Board()

	if formatter.Quiet {
		for _, col := range b.Columns {
			formatter.Println(col.ID)
		}
		return nil
	}
	if formatter.JSON {
		return formatter.Success(b)
	}

	cliInstance.InitStyles()
	formatter.Printf("%s\n", styles.RenderBoard(b))
	return nil
}
