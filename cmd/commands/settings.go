package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/sidebar-builder/internal/cli"
	"github.com/pluqqy/sidebar-builder/pkg/models"
)

// NewSettingsCommand creates the settings command and its subcommands
func NewSettingsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change the sidebar settings",
		Long: `Show or change the builder settings stored in .sidebar-builder/settings.yaml.

Field names are the snake_case keys of the settings file. sidebar_width and
sidebar_mobile_width are derived from their value and unit fields.

Examples:
  sidebar-builder settings show
  sidebar-builder settings set sidebar_variant floating
  sidebar-builder settings set sidebar_width_value 20
  sidebar-builder settings reset`,
	}

	cmd.AddCommand(newSettingsShowCommand())
	cmd.AddCommand(newSettingsSetCommand())
	cmd.AddCommand(newSettingsResetCommand())

	return cmd
}

func newSettingsShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show [field]",
		Short: "Print the current settings",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			ctx, err := commandContext(cmd)
			if err != nil {
				return err
			}
			defer closeContext(ctx, &err)

			settings, err := ctx.SettingsStore()
			if err != nil {
				return err
			}
			snapshot := settings.Snapshot()

			if len(args) == 1 {
				value, ok := snapshot.Field(args[0])
				if !ok {
					return cli.ValidateSettingField(args[0])
				}
				fmt.Fprintln(cmd.OutOrStdout(), value)
				return nil
			}

			format := outputFormat(cmd)
			if format != string(cli.FormatText) {
				return cli.WriteStructured(cmd.OutOrStdout(), format, snapshot)
			}

			table := cli.NewTable(cmd.OutOrStdout(), "SETTING", "VALUE")
			for _, field := range displayFields() {
				value, _ := snapshot.Field(field)
				table.Row(field, value)
			}
			return table.Flush()
		},
	}
}

// displayFields is SettingFields with the derived widths after their units
func displayFields() []string {
	out := make([]string, 0, len(models.SettingFields)+2)
	for _, field := range models.SettingFields {
		out = append(out, field)
		switch field {
		case "sidebar_width_unit":
			out = append(out, "sidebar_width")
		case "sidebar_mobile_width_unit":
			out = append(out, "sidebar_mobile_width")
		}
	}
	return out
}

func newSettingsSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set <field> <value>",
		Short: "Change one setting",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			ctx, err := projectContext(cmd)
			if err != nil {
				return err
			}
			defer closeContext(ctx, &err)

			settings, err := ctx.SettingsStore()
			if err != nil {
				return err
			}
			if err := settings.Set(args[0], args[1]); err != nil {
				return err
			}

			value, _ := settings.Snapshot().Field(args[0])
			cli.PrintSuccess("Set %s to %s", args[0], value)
			return nil
		},
	}
}

func newSettingsResetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Restore the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			ctx, err := projectContext(cmd)
			if err != nil {
				return err
			}
			defer closeContext(ctx, &err)

			ok, err := cli.Confirm("Reset all settings to their defaults?", false)
			if err != nil {
				return err
			}
			if !ok {
				cli.PrintInfo("Reset cancelled")
				return nil
			}

			settings, err := ctx.SettingsStore()
			if err != nil {
				return err
			}
			settings.Reset()
			cli.PrintSuccess("Settings reset to defaults")
			return nil
		},
	}
}
