package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pluqqy/sidebar-builder/cmd/commands"
	"github.com/pluqqy/sidebar-builder/internal/cli"
	"github.com/pluqqy/sidebar-builder/internal/config"
	"github.com/pluqqy/sidebar-builder/internal/logger"
	"github.com/pluqqy/sidebar-builder/pkg/files"
	"github.com/pluqqy/sidebar-builder/pkg/tui"
)

var (
	cfgFile      string
	outputFormat string
	quiet        bool
	noColor      bool
	skipConfirm  bool
)

var rootCmd = &cobra.Command{
	Use:   "sidebar-builder",
	Short: "Terminal builder for shadcn/ui sidebars",
	Long: `sidebar-builder configures a shadcn/ui sidebar in the terminal and generates
the React components, CSS variables, usage example and README for it.

Settings and content live as YAML under .sidebar-builder/. Run without a
subcommand to open the interactive builder.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cli.SetGlobalFlags(quiet, noColor, skipConfirm)
	},
	RunE: runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	if !files.ProjectExists() {
		return fmt.Errorf("no %s directory found in the current directory. Run 'sidebar-builder init' first", files.ProjectDir)
	}

	loaded, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	log, closer, err := logger.OpenFile(loaded.Config.LogFile, loaded.Config.LogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	app, err := tui.NewApp(tui.Options{Config: loaded.Config, Logger: log})
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Error(err, "failed to save state on exit")
		}
	}()

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to start the terminal user interface: %w", err)
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default .sidebar-builder/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text", "Output format: text, json, yaml")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress informational output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable symbols in status messages")
	rootCmd.PersistentFlags().BoolVarP(&skipConfirm, "yes", "y", false, "Answer yes to confirmation prompts")

	rootCmd.AddCommand(commands.NewInitCommand())
	rootCmd.AddCommand(commands.NewGenerateCommand())
	rootCmd.AddCommand(commands.NewExportCommand())
	rootCmd.AddCommand(commands.NewDiffCommand())
	rootCmd.AddCommand(commands.NewClipboardCommand())
	rootCmd.AddCommand(commands.NewSettingsCommand())
	rootCmd.AddCommand(commands.NewContentCommand())
	rootCmd.AddCommand(commands.NewIconsCommand())
	rootCmd.AddCommand(commands.NewWatchCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
