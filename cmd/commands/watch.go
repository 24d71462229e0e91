package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pluqqy/sidebar-builder/internal/cli"
	"github.com/pluqqy/sidebar-builder/internal/logger"
	"github.com/pluqqy/sidebar-builder/internal/watcher"
	"github.com/pluqqy/sidebar-builder/pkg/files"
	"github.com/pluqqy/sidebar-builder/pkg/generator"
)

// NewWatchCommand creates the watch command
func NewWatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [dir]",
		Short: "Re-export the generated files whenever the state changes",
		Long: `Export the generated files, then keep exporting whenever
settings.yaml or content.yaml changes. Stop with Ctrl+C.

The debounce window comes from watch.debounce in the configuration.

Examples:
  sidebar-builder watch
  sidebar-builder watch ../web/src`,
		Args: cobra.MaximumNArgs(1),
		RunE: runWatch,
	}

	return cmd
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, err := projectContext(cmd)
	if err != nil {
		return err
	}

	var dir string
	if len(args) == 1 {
		dir = args[0]
	}
	dir = ctx.ExportDir(dir)

	w, err := watcher.New(watcher.Config{
		Dir:         files.ProjectDir,
		Files:       []string{files.SettingsFile, files.ContentFile},
		DebounceDur: ctx.Config.Watch.Debounce,
		Logger:      ctx.Log,
	})
	if err != nil {
		return err
	}
	changes, err := w.Start()
	if err != nil {
		return err
	}
	defer w.Stop()

	runCtx := cmd.Context()
	if runCtx == nil {
		runCtx = context.Background()
	}
	runCtx, stop := signal.NotifyContext(runCtx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cache := generator.NewCache(generator.DefaultCacheExpiration, generator.DefaultCleanupInterval)
	exporter := &stateExporter{dir: dir, cache: cache, log: ctx.Log.With("watch")}

	if err := exporter.export(); err != nil {
		return err
	}
	cli.PrintInfo("Watching %s for changes, exporting to %s", files.ProjectDir, dir)

	for {
		select {
		case <-runCtx.Done():
			cli.PrintInfo("Stopped watching")
			return nil
		case change, ok := <-changes:
			if !ok {
				return nil
			}
			exporter.log.WithFields(map[string]any{"files": change.Files}).Debug("state changed")
			if err := exporter.export(); err != nil {
				// A half-written or invalid file is reported and the next change retried.
				cli.PrintError("%v", err)
			}
		}
	}
}

// stateExporter reads the state files and writes the artifacts they produce
type stateExporter struct {
	dir   string
	cache *generator.Cache
	log   *logger.Logger
	runs  int
}

func (e *stateExporter) export() error {
	settings, err := files.ReadSettings()
	if err != nil {
		return err
	}
	content, err := files.ReadContent()
	if err != nil {
		return err
	}

	written, err := files.WriteArtifacts(e.dir, e.cache.Generate(settings, content))
	if err != nil {
		return fmt.Errorf("failed to export: %w", err)
	}
	e.runs++
	e.log.WithFields(map[string]any{"run": e.runs, "files": len(written)}).Info("exported artifacts")
	cli.PrintSuccess("Exported %d files to %s", len(written), e.dir)
	return nil
}
