package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/pluqqy/sidebar-builder/pkg/utils"
)

// OutputFormat is a value of the global --output flag
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

// Structured reports whether format is machine readable
func Structured(format string) bool {
	return format == string(FormatJSON) || format == string(FormatYAML)
}

// Table aligns rows under an underlined header
type Table struct {
	tw *tabwriter.Writer
}

// NewTable writes the header of a table with the given columns to w
func NewTable(w io.Writer, columns ...string) *Table {
	t := &Table{tw: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
	t.Row(columns...)
	rule := make([]string, len(columns))
	for i, c := range columns {
		rule[i] = strings.Repeat("-", utf8.RuneCountInString(c))
	}
	t.Row(rule...)
	return t
}

// Row adds one line of cells
func (t *Table) Row(cells ...string) {
	fmt.Fprintln(t.tw, strings.Join(cells, "\t"))
}

// Flush writes the aligned table
func (t *Table) Flush() error {
	return t.tw.Flush()
}

// WriteArtifactStats lists the size of each generated artifact followed
// by a total row
func WriteArtifactStats(w io.Writer, stats []utils.FileStats) error {
	t := NewTable(w, "NAME", "PATH", "LINES", "BYTES", "TOKENS")
	for _, s := range stats {
		t.Row(s.Name, s.Path, strconv.Itoa(s.Lines), strconv.Itoa(s.Bytes), utils.FormatTokenCount(s.Tokens))
	}
	total := utils.Total(stats)
	t.Row("total", fmt.Sprintf("%d files", len(stats)), strconv.Itoa(total.Lines), strconv.Itoa(total.Bytes), utils.FormatTokenCount(total.Tokens))
	return t.Flush()
}

// WriteDiffSummary counts the artifacts per diff status and the lines
// added and removed across all of them
func WriteDiffSummary(w io.Writer, statuses []string, added, removed int) error {
	counts := map[string]int{}
	var order []string
	for _, s := range statuses {
		if counts[s] == 0 {
			order = append(order, s)
		}
		counts[s]++
	}

	t := NewTable(w, "STATUS", "FILES")
	for _, s := range order {
		t.Row(s, strconv.Itoa(counts[s]))
	}
	t.Row("lines", fmt.Sprintf("+%d -%d", added, removed))
	return t.Flush()
}

// WriteStructured encodes data as JSON or YAML. Text output is written by
// each command itself.
func WriteStructured(w io.Writer, format string, data any) error {
	switch OutputFormat(format) {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(data)

	case FormatYAML:
		out, err := yaml.Marshal(data)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	}
	return fmt.Errorf("unsupported output format: %s", format)
}
