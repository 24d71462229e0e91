package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pluqqy/sidebar-builder/internal/cli"
	"github.com/pluqqy/sidebar-builder/internal/config"
	"github.com/pluqqy/sidebar-builder/pkg/examples"
	"github.com/pluqqy/sidebar-builder/pkg/files"
)

var initPreset string

// NewInitCommand creates the init command
func NewInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new sidebar-builder project",
		Long: `Creates the .sidebar-builder folder in the current directory with
default settings, content and configuration. Existing files are kept.

Examples:
  sidebar-builder init
  sidebar-builder init --preset dashboard`,
		Args: cobra.NoArgs,
		RunE: runInit,
	}

	cmd.Flags().StringVar(&initPreset, "preset", "", "Start from a content preset instead of the default content")

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	var preset *examples.Preset
	if initPreset != "" {
		p, err := examples.Get(initPreset)
		if err != nil {
			return err
		}
		preset = &p
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to determine current directory: %w", err)
	}
	cli.PrintInfo("Initializing sidebar-builder project in %s", cwd)

	existed := files.ProjectExists()
	if err := files.InitProjectStructure(); err != nil {
		return fmt.Errorf("failed to initialize project structure: %w", err)
	}

	if _, err := os.Stat(files.ConfigPath()); os.IsNotExist(err) {
		if err := config.WriteDefaultConfig(files.ConfigPath()); err != nil {
			return err
		}
	}

	if preset != nil {
		if err := files.WriteContent(preset.Content()); err != nil {
			return err
		}
		cli.PrintSuccess("Applied the %s preset", preset.Name)
	}

	if existed {
		cli.PrintSuccess("%s folder already exists, missing files were created", files.ProjectDir)
	} else {
		cli.PrintSuccess("Created %s folder structure", files.ProjectDir)
	}
	cli.PrintInfo("Run 'sidebar-builder' to open the builder or 'sidebar-builder export' to write the files.")
	return nil
}
