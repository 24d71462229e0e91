// Package config provides configuration types, defaults and loading for
// sidebar-builder.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/chroma/v2/styles"

	"github.com/pluqqy/sidebar-builder/pkg/files"
)

// Config holds all configuration options for sidebar-builder.
type Config struct {
	LogLevel  string      `mapstructure:"log_level"`
	LogFile   string      `mapstructure:"log_file"`
	ExportDir string      `mapstructure:"export_dir"`
	UI        UIConfig    `mapstructure:"ui"`
	Watch     WatchConfig `mapstructure:"watch"`
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	HighlightStyle string `mapstructure:"highlight_style"` // chroma style for the code viewer
	MarkdownStyle  string `mapstructure:"markdown_style"`  // glamour style for the README
	ShowStats      bool   `mapstructure:"show_stats"`      // line/token counts in the code tab
}

// WatchConfig controls how state file changes are picked up.
type WatchConfig struct {
	Debounce time.Duration `mapstructure:"debounce"`
}

var logLevels = []string{"debug", "info", "warn", "error"}

var markdownStyles = []string{"auto", "dark", "light", "notty", "ascii", "dracula", "pink", "tokyo-night"}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		LogLevel:  "warn",
		LogFile:   files.LogPath(),
		ExportDir: files.ExportDir,
		UI: UIConfig{
			HighlightStyle: "monokai",
			MarkdownStyle:  "dark",
			ShowStats:      true,
		},
		Watch: WatchConfig{
			Debounce: 200 * time.Millisecond,
		},
	}
}

// Validate checks enumerated values and durations.
func Validate(c Config) error {
	if !contains(logLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("log_level %q must be one of %s", c.LogLevel, strings.Join(logLevels, ", "))
	}
	if c.ExportDir == "" {
		return fmt.Errorf("export_dir is required")
	}
	if _, ok := styles.Registry[c.UI.HighlightStyle]; !ok {
		return fmt.Errorf("ui.highlight_style %q is not a known chroma style", c.UI.HighlightStyle)
	}
	if !contains(markdownStyles, c.UI.MarkdownStyle) {
		return fmt.Errorf("ui.markdown_style %q must be one of %s", c.UI.MarkdownStyle, strings.Join(markdownStyles, ", "))
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must not be negative")
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# sidebar-builder configuration

# Log level for CLI output and the TUI log file: debug, info, warn, error
log_level: warn

# Where the TUI writes its log
log_file: .sidebar-builder/logs/sidebar-builder.log

# Default directory for "export", "diff" and "watch"
export_dir: sidebar

ui:
  highlight_style: monokai  # chroma style used by the code viewer
  markdown_style: dark      # glamour style used for README.md: auto, dark, light, notty, ...
  show_stats: true          # show line and token counts in the code tab

watch:
  debounce: 200ms           # wait this long after a change before reloading
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
