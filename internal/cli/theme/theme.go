package theme

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/theme"
)

// ThemeCmd returns the theme parent command
func ThemeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the light/dark theme",
	}

	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(ToggleCmd())
	cmd.AddCommand(SetCmd())

	return cmd
}

// ShowCmd returns the theme show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the current theme",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, nil)
		},
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

// ToggleCmd returns the theme toggle subcommand
func ToggleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toggle",
		Short: "Switch between light and dark",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(s *theme.Store) { s.Toggle() })
		},
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

// SetCmd returns the theme set subcommand
func SetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <light|dark>",
		Short: "Set the theme explicitly",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := theme.Parse(args[0])
			if err != nil {
				return cli.Fail(cli.NewFormatter(cmd), cli.ExitValidation, "INVALID_THEME", err.Error())
			}
			return run(cmd, func(s *theme.Store) { s.Set(t) })
		},
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

type themeResult struct {
	Theme string `json:"theme"`
}

func (r themeResult) GetID() string { return r.Theme }

func (r themeResult) String() string { return r.Theme }

func run(cmd *cobra.Command, change func(*theme.Store)) error {
	formatter := cli.NewFormatter(cmd)

	cliInstance, closeCLI, err := cli.Open(cmd.Context(), formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	store := cliInstance.App.Theme
	if change != nil {
		change(store)
	}
	return formatter.Success(themeResult{Theme: store.Theme().String()})
}
