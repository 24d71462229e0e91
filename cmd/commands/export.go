package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pluqqy/sidebar-builder/internal/cli"
	"github.com/pluqqy/sidebar-builder/pkg/files"
)

// NewExportCommand creates the export command
func NewExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [dir]",
		Short: "Write the generated files to a directory",
		Long: `Write every generated file under a directory, keeping the
components/, styles/ and examples/ layout.

The directory defaults to export_dir from the configuration ("sidebar").
Existing files are overwritten.

Examples:
  # Export to the configured directory
  sidebar-builder export

  # Export straight into a Next.js project
  sidebar-builder export ../web/src`,
		Args: cobra.MaximumNArgs(1),
		RunE: runExport,
	}

	return cmd
}

func runExport(cmd *cobra.Command, args []string) (err error) {
	ctx, err := commandContext(cmd)
	if err != nil {
		return err
	}
	defer closeContext(ctx, &err)

	var dir string
	if len(args) == 1 {
		dir = args[0]
	}
	dir = ctx.ExportDir(dir)

	generated, err := ctx.Generate()
	if err != nil {
		return err
	}

	written, err := files.WriteArtifacts(dir, generated)
	if err != nil {
		return fmt.Errorf("failed to export: %w", err)
	}
	ctx.Log.WithFields(map[string]any{"dir": dir, "files": len(written)}).Debug("exported artifacts")

	format := outputFormat(cmd)
	if cli.Structured(format) {
		return cli.WriteStructured(cmd.OutOrStdout(), format, written)
	}

	for _, path := range written {
		cli.PrintInfo("%s", filepath.ToSlash(path))
	}
	cli.PrintSuccess("Exported %d files to %s", len(written), dir)
	return nil
}
