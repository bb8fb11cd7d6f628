package board

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/persistence"
)

// ImportCmd returns the board import subcommand
func ImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the board with a JSON snapshot",
		Long: `Replace the board with a snapshot written by 'kanban board export'.
Use "-" to read from stdin. The snapshot is validated first; an invalid
snapshot leaves the board untouched and exits with code 4.

Examples:
  kanban board import board.json
  cat board.json | kanban board import -
`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	var (
		data []byte
		err  error
	)
	if args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return cli.Fail(formatter, cli.ExitError, "READ_ERROR", err.Error())
	}

	imported, err := persistence.DecodeBoard(data)
	if err != nil {
		return cli.Fail(formatter, cli.ExitDataErr, "INVALID_SNAPSHOT", err.Error())
	}

	cliInstance, closeCLI, err := cli.Open(cmd.Context(), formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	cliInstance.App.Board.SetBoard(imported)

	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return formatter.Success(map[string]interface{}{
			"title":   imported.Title,
			"columns": len(imported.Columns),
			"cards":   imported.CardCount(),
		})
	}
	formatter.Printf("✓ Imported '%s' (%d columns, %d cards)\n", imported.Title, len(imported.Columns), imported.CardCount())
	return nil
}
