package board

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/persistence"
)

// ExportCmd returns the board export subcommand
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the board snapshot as JSON",
		Long: `Write the board snapshot in its storage format, to stdout or a file.
The output can be read back with 'kanban board import'.

Examples:
  kanban board export > board.json
  kanban board export --output=board.json
`,
		RunE: runExport,
	}

	cmd.Flags().StringP("output", "o", "", "Write to this file instead of stdout")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)
	output, _ := cmd.Flags().GetString("output")

	cliInstance, closeCLI, err := cli.Open(cmd.Context(), formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	data, err := persistence.EncodeBoard(cliInstance.App.Board.Board())
	if err != nil {
		return cli.Fail(formatter, cli.ExitError, "EXPORT_ERROR", err.Error())
	}

	if output == "" {
		formatter.Println(string(data))
		return nil
	}
	if err := os.WriteFile(output, append(data, '\n'), 0644); err != nil {
		return cli.Fail(formatter, cli.ExitError, "EXPORT_ERROR", err.Error())
	}
	formatter.Printf("✓ Board exported to %s\n", output)
	return nil
}
