package card

import (
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/board"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/models"
)

// FindCmd returns the card find subcommand
func FindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find <query>",
		Short: "Fuzzy-find cards by title",
		Long: `Fuzzy-find cards by title across all columns, best matches first.

Examples:
  kanban card find login
  kanban card find "rel nts" --limit=3 --json
  kanban card find docs --tag=backend
`,
		Args: cobra.MinimumNArgs(1),
		RunE: runFind,
	}

	cmd.Flags().Int("limit", 10, "Maximum number of results (0 = no limit)")
	cmd.Flags().String("tag", "", "Only match cards carrying this tag")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runFind(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)
	limit, _ := cmd.Flags().GetInt("limit")
	tag, _ := cmd.Flags().GetString("tag")
	query := strings.Join(args, " ")

	cliInstance, closeCLI, err := cli.Open(cmd.Context(), formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	b := cliInstance.App.Board.Board()
	found := board.Search(b, query, 0)
	if tag != "" {
		found = slices.DeleteFunc(found, func(c models.Card) bool { return !c.HasTag(tag) })
	}
	if limit > 0 && len(found) > limit {
		found = found[:limit]
	}

	if formatter.Quiet {
		for _, c := range found {
			formatter.Println(c.ID)
		}
		return nil
	}

	if formatter.JSON {
		results := make([]cardResult, len(found))
		for i, c := range found {
			results[i] = newResult(b, c)
		}
		return formatter.Success(results)
	}

	if len(found) == 0 {
		formatter.Printf("No cards match '%s'\n", query)
		return nil
	}
	for _, c := range found {
		res := newResult(b, c)
		formatter.Printf("  %s  %s  [%s]\n", cli.ShortID(res.ID), c.Title, res.ColumnTitle)
	}
	return nil
}
