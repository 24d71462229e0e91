package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/pluqqy/sidebar-builder/internal/cli"
	"github.com/pluqqy/sidebar-builder/pkg/files"
)

var diffExitCode bool

// NewDiffCommand creates the diff command
func NewDiffCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff [dir]",
		Short: "Compare exported files with a fresh generation",
		Long: `Compare the files under an export directory with what the current
settings and content would generate.

Changed files are printed as line diffs, files that were never exported are
reported as missing.

Examples:
  # Compare with the configured export directory
  sidebar-builder diff

  # Fail when anything differs (for CI)
  sidebar-builder diff ../web/src --exit-code`,
		Args: cobra.MaximumNArgs(1),
		RunE: runDiff,
	}

	cmd.Flags().BoolVar(&diffExitCode, "exit-code", false, "Return an error when differences are found")

	return cmd
}

// fileDiff is the comparison result for one artifact
type fileDiff struct {
	Path    string `json:"path" yaml:"path"`
	Status  string `json:"status" yaml:"status"`
	Added   int    `json:"added" yaml:"added"`
	Removed int    `json:"removed" yaml:"removed"`
	Patch   string `json:"-" yaml:"-"`
}

const (
	diffUnchanged = "unchanged"
	diffChanged   = "changed"
	diffMissing   = "missing"
)

func runDiff(cmd *cobra.Command, args []string) (err error) {
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
	exported, err := files.ReadArtifacts(dir, generated)
	if err != nil {
		return err
	}

	diffs := make([]fileDiff, len(generated))
	changed := 0
	for i, f := range generated {
		diffs[i] = compareFile(exported[i], f.Content)
		if diffs[i].Status != diffUnchanged {
			changed++
		}
	}

	format := outputFormat(cmd)
	if cli.Structured(format) {
		if err := cli.WriteStructured(cmd.OutOrStdout(), format, diffs); err != nil {
			return err
		}
	} else {
		printDiffs(cmd.OutOrStdout(), diffs)
		if changed == 0 {
			cli.PrintSuccess("%s is up to date", dir)
		} else {
			if err := summarizeDiffs(cmd.OutOrStdout(), diffs); err != nil {
				return err
			}
			cli.PrintWarning("%d of %d files differ from %s", changed, len(diffs), dir)
		}
	}

	if diffExitCode && changed > 0 {
		return fmt.Errorf("%d files differ", changed)
	}
	return nil
}

// compareFile diffs the exported copy against the generated content line by line
func compareFile(exported files.ExportedFile, generated string) fileDiff {
	d := fileDiff{Path: exported.Path, Status: diffUnchanged}
	if !exported.Exists {
		d.Status = diffMissing
		d.Added = len(splitLines(generated))
		return d
	}
	if exported.Content == generated {
		return d
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(exported.Content, generated)
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)

	var patch strings.Builder
	for _, part := range diffs {
		prefix := "  "
		switch part.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		}
		for _, line := range splitLines(part.Text) {
			switch part.Type {
			case diffmatchpatch.DiffInsert:
				d.Added++
			case diffmatchpatch.DiffDelete:
				d.Removed++
			default:
				continue
			}
			patch.WriteString(prefix + line + "\n")
		}
	}

	d.Status = diffChanged
	d.Patch = patch.String()
	return d
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func summarizeDiffs(w io.Writer, diffs []fileDiff) error {
	statuses := make([]string, len(diffs))
	var added, removed int
	for i, d := range diffs {
		statuses[i] = d.Status
		added += d.Added
		removed += d.Removed
	}
	fmt.Fprintln(w)
	return cli.WriteDiffSummary(w, statuses, added, removed)
}

func printDiffs(w io.Writer, diffs []fileDiff) {
	for _, d := range diffs {
		switch d.Status {
		case diffMissing:
			fmt.Fprintf(w, "%s: missing (+%d)\n", d.Path, d.Added)
		case diffChanged:
			fmt.Fprintf(w, "%s: changed (+%d -%d)\n", d.Path, d.Added, d.Removed)
			fmt.Fprint(w, d.Patch)
		}
	}
}
