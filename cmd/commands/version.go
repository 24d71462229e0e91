package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is set during build with -ldflags
var Version = "dev"

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of sidebar-builder",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "sidebar-builder version %s\n", Version)
		},
	}
}
