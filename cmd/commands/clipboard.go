package commands

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/pluqqy/sidebar-builder/internal/cli"
	"github.com/pluqqy/sidebar-builder/pkg/utils"
)

// writeClipboard is replaced in tests
var writeClipboard = clipboard.WriteAll

// NewClipboardCommand creates the clipboard command
func NewClipboardCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clipboard <file>",
		Short: "Copy a generated file to the clipboard",
		Long: `Copy one generated file to the system clipboard, ready to paste
into an editor.

The file is selected by name, path or name without extension.

Examples:
  sidebar-builder clipboard app-sidebar
  sidebar-builder clipboard styles/sidebar-variables.css`,
		Args:    cobra.ExactArgs(1),
		Aliases: []string{"clip", "copy"},
		RunE:    runClipboard,
	}

	return cmd
}

func runClipboard(cmd *cobra.Command, args []string) (err error) {
	ctx, err := commandContext(cmd)
	if err != nil {
		return err
	}
	defer closeContext(ctx, &err)

	generated, err := ctx.Generate()
	if err != nil {
		return err
	}

	f, err := cli.ResolveArtifact(generated, args[0])
	if err != nil {
		return err
	}

	if err := writeClipboard(f.Content); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}

	cli.PrintSuccess("Copied %s to clipboard (%s)", f.Path, utils.FormatTokenCount(utils.EstimateTokens(f.Content)))
	return nil
}
