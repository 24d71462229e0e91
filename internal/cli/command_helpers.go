package cli

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pluqqy/sidebar-builder/internal/config"
	"github.com/pluqqy/sidebar-builder/internal/logger"
	"github.com/pluqqy/sidebar-builder/pkg/files"
	"github.com/pluqqy/sidebar-builder/pkg/generator"
	"github.com/pluqqy/sidebar-builder/pkg/models"
	"github.com/pluqqy/sidebar-builder/pkg/store"
)

// CommandContext manages project validation, configuration and the state
// stores a command works on
type CommandContext struct {
	ProjectPath string
	Config      config.Config
	ConfigPath  string
	Log         *logger.Logger

	settings  *store.SettingsStore
	content   *store.ContentStore
	validated bool
}

// NewCommandContext loads configuration and creates a logger writing to stderr
func NewCommandContext(cfgFile string) (*CommandContext, error) {
	loaded, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(logger.Options{
		Level:         loaded.Config.LogLevel,
		HumanReadable: true,
		Writer:        stderr,
	})
	if err != nil {
		return nil, err
	}

	return &CommandContext{
		ProjectPath: files.ProjectDir,
		Config:      loaded.Config,
		ConfigPath:  loaded.Path,
		Log:         log,
	}, nil
}

// ValidateProject ensures the project is initialized
func (c *CommandContext) ValidateProject() error {
	if c.validated {
		return nil
	}

	if _, err := os.Stat(c.ProjectPath); os.IsNotExist(err) {
		return fmt.Errorf("no %s directory found. Run 'sidebar-builder init' first", files.ProjectDir)
	}

	c.validated = true
	return nil
}

func (c *CommandContext) storeOptions() []store.Option {
	opts := []store.Option{store.WithLogger(c.Log.With("store"))}
	if files.ProjectExists() {
		opts = append(opts,
			store.WithSettingsPersister(files.Persister{}),
			store.WithContentPersister(files.Persister{}),
		)
	}
	return opts
}

// SettingsStore loads the settings state file into a store. Changes are
// saved back when the project exists.
func (c *CommandContext) SettingsStore() (*store.SettingsStore, error) {
	if c.settings != nil {
		return c.settings, nil
	}

	settings, err := files.ReadSettings()
	if err != nil {
		return nil, err
	}

	c.settings = store.NewSettingsStore(settings, c.storeOptions()...)
	return c.settings, nil
}

// ContentStore loads the content state file into a store. Changes are saved
// back when the project exists.
func (c *CommandContext) ContentStore() (*store.ContentStore, error) {
	if c.content != nil {
		return c.content, nil
	}

	content, err := files.ReadContent()
	if err != nil {
		return nil, err
	}

	c.content = store.NewContentStore(content, c.storeOptions()...)
	return c.content, nil
}

// Generate produces the artifact set for the current state
func (c *CommandContext) Generate() ([]models.CodeFile, error) {
	settings, err := c.SettingsStore()
	if err != nil {
		return nil, err
	}
	content, err := c.ContentStore()
	if err != nil {
		return nil, err
	}
	return generator.Generate(settings.Snapshot(), content.Snapshot()), nil
}

// ExportDir returns dir, or the configured export directory when dir is empty
func (c *CommandContext) ExportDir(dir string) string {
	if dir != "" {
		return dir
	}
	return c.Config.ExportDir
}

// Close flushes pending saves and reports the first failure
func (c *CommandContext) Close() error {
	var errs []error
	if c.settings != nil {
		if err := c.settings.Close(); err != nil {
			errs = append(errs, fmt.Errorf("saving settings: %w", err))
		}
	}
	if c.content != nil {
		if err := c.content.Close(); err != nil {
			errs = append(errs, fmt.Errorf("saving content: %w", err))
		}
	}
	return errors.Join(errs...)
}

// ResolveArtifact finds a generated file by name, path, or name without
// extension
func ResolveArtifact(files []models.CodeFile, ref string) (models.CodeFile, error) {
	ref = filepath.ToSlash(strings.TrimSpace(ref))
	if f, ok := generator.Find(files, ref); ok {
		return f, nil
	}

	for _, f := range files {
		if strings.TrimSuffix(f.Name, filepath.Ext(f.Name)) == ref {
			return f, nil
		}
	}

	names := make([]string, len(files))
	for i, f := range files {
		names[i] = f.Name
	}
	return models.CodeFile{}, fmt.Errorf("no generated file matches '%s' (available: %s)", ref, strings.Join(names, ", "))
}

// EditorLauncher handles all editor-related operations
type EditorLauncher struct {
	DefaultEditor string
}

// NewEditorLauncher creates a new editor launcher
func NewEditorLauncher() *EditorLauncher {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vi"
	}
	return &EditorLauncher{
		DefaultEditor: editor,
	}
}

// Command builds the editor invocation for path
func (e *EditorLauncher) Command(path string) *exec.Cmd {
	parts := strings.Fields(e.DefaultEditor)
	if len(parts) > 1 {
		return exec.Command(parts[0], append(parts[1:], path)...)
	}
	return exec.Command(e.DefaultEditor, path)
}

// OpenFile opens a file in the configured editor
func (e *EditorLauncher) OpenFile(path string) error {
	editorCmd := e.Command(path)
	editorCmd.Stdin = os.Stdin
	editorCmd.Stdout = os.Stdout
	editorCmd.Stderr = os.Stderr

	if err := editorCmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}

	return nil
}
