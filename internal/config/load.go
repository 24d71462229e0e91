package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/pluqqy/sidebar-builder/pkg/files"
)

// EnvPrefix namespaces environment overrides, e.g. SIDEBAR_BUILDER_LOG_LEVEL.
const EnvPrefix = "SIDEBAR_BUILDER"

// Loaded is a resolved configuration and the file it came from, if any.
type Loaded struct {
	Config Config
	Path   string
}

// Load resolves configuration. Lookup order:
//  1. cfgFile, when set
//  2. .sidebar-builder/config.yaml (current directory)
//  3. ~/.config/sidebar-builder/config.yaml (user config)
//
// A missing config file is not an error; defaults and environment apply.
func Load(cfgFile string) (Loaded, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	switch {
	case cfgFile != "":
		v.SetConfigFile(cfgFile)
	case fileExists(files.ConfigPath()):
		v.SetConfigFile(files.ConfigPath())
	default:
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "sidebar-builder"))
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Loaded{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Loaded{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return Loaded{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return Loaded{Config: cfg, Path: v.ConfigFileUsed()}, nil
}

func setDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_file", d.LogFile)
	v.SetDefault("export_dir", d.ExportDir)
	v.SetDefault("ui.highlight_style", d.UI.HighlightStyle)
	v.SetDefault("ui.markdown_style", d.UI.MarkdownStyle)
	v.SetDefault("ui.show_stats", d.UI.ShowStats)
	v.SetDefault("watch.debounce", d.Watch.Debounce)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
