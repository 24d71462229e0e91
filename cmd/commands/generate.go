package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pluqqy/sidebar-builder/internal/cli"
	"github.com/pluqqy/sidebar-builder/pkg/models"
	"github.com/pluqqy/sidebar-builder/pkg/utils"
)

var (
	generateToFile string
	generateList   bool
)

// NewGenerateCommand creates the generate command
func NewGenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [file]",
		Short: "Print the generated sidebar source files",
		Long: `Generate the sidebar source files from the current settings and content.

Without an argument every file is printed, each preceded by a header with
its path. A single file can be selected by name (nav-main.tsx), path
(components/nav-main.tsx) or name without extension (nav-main).

Outside a project the default settings and content are used.

Examples:
  # Print every file
  sidebar-builder generate

  # Print one file
  sidebar-builder generate app-sidebar

  # Write one file somewhere else
  sidebar-builder generate README.md --file SIDEBAR.md

  # Structured output
  sidebar-builder generate -o json

  # Show line and token estimates
  sidebar-builder generate --list`,
		Args:    cobra.MaximumNArgs(1),
		Aliases: []string{"gen"},
		RunE:    runGenerate,
	}

	cmd.Flags().StringVarP(&generateToFile, "file", "f", "", "Write to file instead of stdout")
	cmd.Flags().BoolVar(&generateList, "list", false, "List generated files with line and token estimates")

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) (err error) {
	format := outputFormat(cmd)
	if err := cli.ValidateOutputFormat(format); err != nil {
		return err
	}

	ctx, err := commandContext(cmd)
	if err != nil {
		return err
	}
	defer closeContext(ctx, &err)

	generated, err := ctx.Generate()
	if err != nil {
		return err
	}

	if len(args) == 1 {
		f, err := cli.ResolveArtifact(generated, args[0])
		if err != nil {
			return err
		}
		generated = []models.CodeFile{f}
	}

	if generateList {
		return printFileStats(cmd.OutOrStdout(), format, generated)
	}

	if format != string(cli.FormatText) {
		return cli.WriteStructured(cmd.OutOrStdout(), format, generated)
	}

	var out string
	if len(generated) == 1 {
		out = generated[0].Content
	} else {
		out = concatFiles(generated)
	}

	if generateToFile != "" {
		if err := os.WriteFile(generateToFile, []byte(out), 0644); err != nil {
			return fmt.Errorf("failed to write file: %w", err)
		}
		cli.PrintSuccess("Wrote %s to %s", describeFiles(generated), generateToFile)
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

// concatFiles joins files with a path header before each one
func concatFiles(files []models.CodeFile) string {
	var b strings.Builder
	for i, f := range files {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "// ===== %s =====\n", f.Path)
		b.WriteString(f.Content)
	}
	return b.String()
}

func describeFiles(files []models.CodeFile) string {
	if len(files) == 1 {
		return files[0].Path
	}
	return fmt.Sprintf("%d files", len(files))
}

func printFileStats(w io.Writer, format string, files []models.CodeFile) error {
	stats := utils.Stats(files)
	if format != string(cli.FormatText) {
		return cli.WriteStructured(w, format, stats)
	}

	return cli.WriteArtifactStats(w, stats)
}
