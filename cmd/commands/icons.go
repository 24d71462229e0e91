package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/sidebar-builder/internal/cli"
	"github.com/pluqqy/sidebar-builder/pkg/icons"
)

// iconEntry is one row of the icons listing
type iconEntry struct {
	Name  string `json:"name" yaml:"name"`
	Glyph string `json:"glyph" yaml:"glyph"`
}

// NewIconsCommand creates the icons command
func NewIconsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "icons [filter]",
		Short: "List the icon names the preview knows",
		Long: `List the Lucide icon names that have a glyph in the terminal preview.

Other names are still emitted into the generated code, they just show no
glyph in the preview.

Examples:
  sidebar-builder icons
  sidebar-builder icons chart`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var filter string
			if len(args) == 1 {
				filter = args[0]
			}

			names := icons.Filter(filter)
			if len(names) == 0 {
				return fmt.Errorf("no icons match '%s'", filter)
			}

			entries := make([]iconEntry, len(names))
			for i, name := range names {
				entries[i] = iconEntry{Name: name, Glyph: icons.Resolve(name)}
			}

			format := outputFormat(cmd)
			if format != string(cli.FormatText) {
				return cli.WriteStructured(cmd.OutOrStdout(), format, entries)
			}

			table := cli.NewTable(cmd.OutOrStdout(), "GLYPH", "NAME")
			for _, e := range entries {
				table.Row(e.Glyph, e.Name)
			}
			return table.Flush()
		},
	}

	return cmd
}
