package board

import (
	"github.com/spf13/cobra"
)

// BoardCmd returns the board parent command
func BoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Inspect, check, reset, export and import the board",
	}

	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(CheckCmd())
	cmd.AddCommand(ResetCmd())
	cmd.AddCommand(ExportCmd())
	cmd.AddCommand(ImportCmd())

	return cmd
}
