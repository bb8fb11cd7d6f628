package card

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
	"github.com/thenoetrevino/kanban/internal/markdown"
)

// ShowCmd returns the card show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <card>",
		Short: "Show a card",
		Long: `Show a card's details. The description is rendered as markdown.

Examples:
  kanban card show 3f2a
  kanban card show 3f2a --json
`,
		Args: cobra.ExactArgs(1),
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
	card, _, err := cli.FindCard(b, args[0])
	if err != nil {
		return cli.Fail(formatter, cli.LookupExitCode(err), "CARD_NOT_FOUND", err.Error())
	}

	res := newResult(b, card)
	if formatter.JSON || formatter.Quiet {
		return formatter.Success(res)
	}

	cliInstance.InitStyles()

	var sb strings.Builder
	title := styles.TitleStyle.Render(card.Title)
	if chip := styles.RenderPriority(card.Priority); chip != "" {
		title += " " + chip
	}
	sb.WriteString(title + "\n\n")
	fmt.Fprintf(&sb, "%s %s\n", styles.LabelStyle.Render("ID:"), styles.ValueStyle.Render(res.ID))
	fmt.Fprintf(&sb, "%s %s (position %d)\n", styles.LabelStyle.Render("Column:"),
		styles.ValueStyle.Render(res.ColumnTitle), res.Position)
	if tags := styles.RenderTags(card.Tags); tags != "" {
		fmt.Fprintf(&sb, "%s %s\n", styles.LabelStyle.Render("Tags:"), tags)
	}
	fmt.Fprintf(&sb, "%s %s\n", styles.LabelStyle.Render("Created:"),
		styles.ValueStyle.Render(card.CreatedAt.Local().Format("2006-01-02 15:04")))
	fmt.Fprintf(&sb, "%s %s", styles.LabelStyle.Render("Updated:"),
		styles.ValueStyle.Render(card.UpdatedAt.Local().Format("2006-01-02 15:04")))

	sb.WriteString("\n" + styles.SectionStyle.Render("Description") + "\n")
	if desc := markdown.Render(card.Description, styles.CardWidth-6, cliInstance.ThemeName()); desc != "" {
		sb.WriteString(desc)
	} else {
		sb.WriteString(styles.SubtitleStyle.Italic(true).Render("No description"))
	}

	formatter.Printf("%s\n", styles.RenderCard(sb.String()))
	return nil
}
