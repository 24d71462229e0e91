package files

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/pluqqy/sidebar-builder/pkg/models"
)

const (
	ProjectDir   = ".sidebar-builder"
	SettingsFile = "settings.yaml"
	ContentFile  = "content.yaml"
	ConfigFile   = "config.yaml"
	LogsDir      = "logs"
	LogFile      = "sidebar-builder.log"
	ExportDir    = "sidebar"
)

// SettingsPath returns the settings state file relative to the working directory
func SettingsPath() string {
	return filepath.Join(ProjectDir, SettingsFile)
}

// ContentPath returns the content state file relative to the working directory
func ContentPath() string {
	return filepath.Join(ProjectDir, ContentFile)
}

// ConfigPath returns the project config file relative to the working directory
func ConfigPath() string {
	return filepath.Join(ProjectDir, ConfigFile)
}

// LogPath returns the TUI log file relative to the working directory
func LogPath() string {
	return filepath.Join(ProjectDir, LogsDir, LogFile)
}

// ProjectExists reports whether the project directory has been initialized
func ProjectExists() bool {
	info, err := os.Stat(ProjectDir)
	return err == nil && info.IsDir()
}

// InitProjectStructure creates the project directory and writes default
// state files. Existing state files are left alone.
func InitProjectStructure() error {
	dirs := []string{
		ProjectDir,
		filepath.Join(ProjectDir, LogsDir),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	if !exists(SettingsPath()) {
		if err := WriteSettings(models.DefaultSettings()); err != nil {
			return err
		}
	}
	if !exists(ContentPath()) {
		if err := WriteContent(models.DefaultContent()); err != nil {
			return err
		}
	}

	return nil
}

// ReadSettings loads the settings state file. A missing file yields the
// defaults.
func ReadSettings() (models.Settings, error) {
	data, err := os.ReadFile(SettingsPath())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.DefaultSettings(), nil
		}
		return models.Settings{}, fmt.Errorf("failed to read settings: %w", err)
	}

	settings := models.DefaultSettings()
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return models.Settings{}, models.NewParseError(SettingsPath(), err)
	}
	settings.Normalize()

	if err := models.ValidateSettings(settings); err != nil {
		return models.Settings{}, models.NewParseError(SettingsPath(), err)
	}

	return settings, nil
}

// WriteSettings replaces the settings state file
func WriteSettings(settings models.Settings) error {
	settings.Normalize()
	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings to YAML: %w", err)
	}
	if err := writeAtomic(SettingsPath(), data); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}

// ReadContent loads the content state file. A missing file yields the
// default content.
func ReadContent() (*models.Content, error) {
	content, err := LoadContentFile(ContentPath())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.DefaultContent(), nil
		}
		return nil, err
	}
	return content, nil
}

// WriteContent replaces the content state file
func WriteContent(content *models.Content) error {
	if content == nil {
		content = &models.Content{}
	}
	data, err := yaml.Marshal(content)
	if err != nil {
		return fmt.Errorf("failed to marshal content to YAML: %w", err)
	}
	if err := writeAtomic(ContentPath(), data); err != nil {
		return fmt.Errorf("failed to write content: %w", err)
	}
	return nil
}

// WriteFile writes content to a file outside the project directory
func WriteFile(path string, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", path, err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}

// writeAtomic writes through a temp file in the same directory so readers
// and the watcher never observe a half-written state file.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, path)
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
