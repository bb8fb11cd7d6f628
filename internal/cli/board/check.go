package board

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/persistence"
)

// CheckCmd returns the board check subcommand
func CheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify the board's structural invariants",
		Long: `Verify that every card referenced by a column exists, every card sits in
exactly one column exactly once, and column IDs are unique.

Also reports how the board was loaded from storage: whether the stored
snapshot had to be repaired or replaced by a fresh board.

Exits with code 4 when a violation is found.
`,
		RunE: runCheck,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	cliInstance, closeCLI, err := cli.Open(cmd.Context(), formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	b := cliInstance.App.Board.Board()
	stats := cliInstance.App.Repo.Stats().Snapshot()
	if err := models.Validate(b); err != nil {
		if formatter.JSON {
			if fmtErr := formatter.Success(map[string]interface{}{
				"valid":      false,
				"violations": violations(err),
				"storage":    stats,
			}); fmtErr != nil {
				return fmtErr
			}
			return &cli.ExitCodeError{Code: cli.ExitDataErr, Err: err}
		}
		return cli.Fail(formatter, cli.ExitDataErr, "INVALID_BOARD", err.Error())
	}

	if formatter.JSON {
		return formatter.Success(map[string]interface{}{
			"valid":   true,
			"columns": len(b.Columns),
			"cards":   b.CardCount(),
			"storage": stats,
		})
	}
	formatter.Printf("✓ Board '%s' is consistent (%d columns, %d cards)\n", b.Title, len(b.Columns), b.CardCount())
	printLoadStats(formatter, stats)
	return nil
}

func printLoadStats(formatter *cli.OutputFormatter, stats persistence.Snapshot) {
	switch {
	case stats.LoadFallbacks > 0:
		formatter.Println("  Stored board was missing or unreadable; a fresh board was loaded")
	case stats.LoadRepairs > 0:
		formatter.Println("  Stored board was repaired on load; details are in the log")
	}
}

func violations(err error) []string {
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		out := make([]string, 0, len(joined.Unwrap()))
		for _, e := range joined.Unwrap() {
			out = append(out, e.Error())
		}
		return out
	}
	return []string{err.Error()}
}
