// Package cmd assembles the kanban command tree.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/board"
	"github.com/thenoetrevino/kanban/internal/cli/card"
	"github.com/thenoetrevino/kanban/internal/cli/column"
	"github.com/thenoetrevino/kanban/internal/cli/theme"
	"github.com/thenoetrevino/kanban/internal/cli/tutorial"
	"github.com/thenoetrevino/kanban/internal/launcher"
)

// NewRootCmd builds the root command with every subcommand attached.
// Without a subcommand it opens the interactive board.
func NewRootCmd() *cobra.Command {
	var cfgPath string

	rootCmd := &cobra.Command{
		Use:   "kanban",
		Short: "Kanban - A terminal-based kanban board",
		Long: `Kanban is a terminal-based kanban board. Run it without arguments for
the interactive board, or use the subcommands to script it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if cfgPath != "" {
				cmd.SetContext(cli.WithConfigPath(cmd.Context(), cfgPath))
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return launcher.Launch(cmd.Context(), cfgPath)
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Path to a config file (default: user config dir)")

	rootCmd.AddCommand(board.BoardCmd())
	rootCmd.AddCommand(column.ColumnCmd())
	rootCmd.AddCommand(card.CardCmd())
	rootCmd.AddCommand(theme.ThemeCmd())
	rootCmd.AddCommand(tutorial.TutorialCmd())

	return rootCmd
}

// Execute runs the command tree and returns the process exit code
func Execute(ctx context.Context) int {
	err := NewRootCmd().ExecuteContext(ctx)

	// Commands report their own failures; anything else goes to stderr
	var reported *cli.ExitCodeError
	if err != nil && !errors.As(err, &reported) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return cli.ExitCode(err)
}
