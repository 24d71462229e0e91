package commands

import (
	"github.com/spf13/cobra"

	"github.com/pluqqy/sidebar-builder/internal/cli"
)

// commandContext builds a CommandContext from the inherited --config flag.
// Commands call ValidateProject themselves when they need the state files.
func commandContext(cmd *cobra.Command) (*cli.CommandContext, error) {
	cfgFile, _ := cmd.Flags().GetString("config")
	return cli.NewCommandContext(cfgFile)
}

// projectContext is commandContext plus the project check
func projectContext(cmd *cobra.Command) (*cli.CommandContext, error) {
	ctx, err := commandContext(cmd)
	if err != nil {
		return nil, err
	}
	if err := ctx.ValidateProject(); err != nil {
		return nil, err
	}
	return ctx, nil
}

// outputFormat returns the inherited --output flag, defaulting to text
func outputFormat(cmd *cobra.Command) string {
	format, _ := cmd.Flags().GetString("output")
	if format == "" {
		return string(cli.FormatText)
	}
	return format
}

// closeContext flushes the stores and keeps the first error
func closeContext(ctx *cli.CommandContext, err *error) {
	if cerr := ctx.Close(); cerr != nil && *err == nil {
		*err = cerr
	}
}
