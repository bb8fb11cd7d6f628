package tutorial

import (
	_ "embed"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/markdown"
)

//go:embed tutorial.md
var tutorialContent string

// Content returns the tutorial as markdown
func Content() string {
	return tutorialContent
}

// TutorialCmd returns the tutorial command
func TutorialCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tutorial",
		Short: "Print a short guide to the board and the CLI",
		Long: `Print a short guide to the interactive board, the scripting commands
and their exit codes.

By default the guide is printed as plain markdown, which suits pipes and
agents. Use --render to format it for the terminal.`,
		RunE: runTutorial,
	}
	cmd.Flags().Bool("render", false, "Render the markdown for the terminal")
	cmd.Flags().Int("width", 80, "Wrap width used with --render")
	return cmd
}

func runTutorial(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)
	render, _ := cmd.Flags().GetBool("render")
	if !render {
		formatter.Println(tutorialContent)
		return nil
	}

	width, _ := cmd.Flags().GetInt("width")
	cliInstance, closeCLI, err := cli.Open(cmd.Context(), formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	formatter.Println(markdown.Render(tutorialContent, width, cliInstance.ThemeName()))
	return nil
}
