package card

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/types"
)

// UpdateCmd returns the card update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <card>",
		Short: "Update a card",
		Long: `Update a card's title, description, priority or tags. Only the flags given
are changed. The card may be given by ID or a unique ID prefix.

Examples:
  kanban card update 3f2a --title="Fix login redirect"
  kanban card update 3f2a --priority=high --tag=backend --tag=auth
  kanban card update 3f2a --priority="" --clear-tags
`,
		Args: cobra.ExactArgs(1),
		RunE: runUpdate,
	}

	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("description", "", "New description (markdown)")
	cmd.Flags().String("priority", "", "Priority: low, medium, high, or empty to clear")
	cmd.Flags().StringSlice("tag", nil, "Replace tags (repeatable)")
	cmd.Flags().Bool("clear-tags", false, "Remove all tags")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	var update models.CardUpdate
	if cmd.Flags().Changed("title") {
		raw, _ := cmd.Flags().GetString("title")
		title, err := cli.ValidateTitle(raw)
		if err != nil {
			return cli.Fail(formatter, cli.ExitValidation, "INVALID_TITLE", err.Error())
		}
		update.Title = &title
	}
	if cmd.Flags().Changed("description") {
		description, _ := cmd.Flags().GetString("description")
		update.Description = &description
	}
	if cmd.Flags().Changed("priority") {
		raw, _ := cmd.Flags().GetString("priority")
		priority, err := types.ParsePriority(raw)
		if err != nil {
			return cli.Fail(formatter, cli.ExitValidation, "INVALID_PRIORITY", err.Error())
		}
		update.Priority = &priority
	}
	clearTags, _ := cmd.Flags().GetBool("clear-tags")
	switch {
	case clearTags:
		tags := []string{}
		update.Tags = &tags
	case cmd.Flags().Changed("tag"):
		tags, _ := cmd.Flags().GetStringSlice("tag")
		for i := range tags {
			tags[i] = strings.TrimSpace(tags[i])
		}
		update.Tags = &tags
	}

	if update.Empty() {
		return cli.FailWithSuggestion(formatter, cli.ExitUsage, "NO_UPDATES", "no fields to update",
			"Pass at least one of --title, --description, --priority, --tag or --clear-tags")
	}

	cliInstance, closeCLI, err := cli.Open(cmd.Context(), formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	store := cliInstance.App.Board
	card, _, err := cli.FindCard(store.Board(), args[0])
	if err != nil {
		return cli.Fail(formatter, cli.LookupExitCode(err), "CARD_NOT_FOUND", err.Error())
	}

	store.UpdateCard(card.ID, update)
	b := store.Board()
	card, _ = b.Card(card.ID)

	if formatter.JSON || formatter.Quiet {
		return formatter.Success(newResult(b, card))
	}
	formatter.Printf("✓ Card '%s' updated\n", card.Title)
	return nil
}
