package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/sidebar-builder/pkg/files"
)

// isolate runs the test in an empty working directory with an empty home
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", filepath.Join(dir, "home"))

	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(oldWd) })
	return dir
}

func TestDefaults(t *testing.T) {
	d := Defaults()
	assert.Equal(t, "warn", d.LogLevel)
	assert.Equal(t, "sidebar", d.ExportDir)
	assert.Equal(t, files.LogPath(), d.LogFile)
	assert.Equal(t, 200*time.Millisecond, d.Watch.Debounce)
	assert.True(t, d.UI.ShowStats)
	require.NoError(t, Validate(d))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "log level", mutate: func(c *Config) { c.LogLevel = "loud" }, wantErr: "log_level"},
		{name: "export dir", mutate: func(c *Config) { c.ExportDir = "" }, wantErr: "export_dir"},
		{name: "highlight style", mutate: func(c *Config) { c.UI.HighlightStyle = "neon" }, wantErr: "highlight_style"},
		{name: "markdown style", mutate: func(c *Config) { c.UI.MarkdownStyle = "sepia" }, wantErr: "markdown_style"},
		{name: "debounce", mutate: func(c *Config) { c.Watch.Debounce = -time.Second }, wantErr: "debounce"},
		{name: "upper case level", mutate: func(c *Config) { c.LogLevel = "DEBUG" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Defaults()
			tt.mutate(&c)
			err := Validate(c)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadWithoutConfigFile(t *testing.T) {
	isolate(t)

	loaded, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), loaded.Config)
	assert.Empty(t, loaded.Path)
}

func TestLoadProjectConfig(t *testing.T) {
	isolate(t)
	require.NoError(t, os.MkdirAll(files.ProjectDir, 0755))
	require.NoError(t, os.WriteFile(files.ConfigPath(), []byte(`log_level: debug
export_dir: out/sidebar
ui:
  markdown_style: light
watch:
  debounce: 1s
`), 0644))

	loaded, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, files.ConfigPath(), loaded.Path)
	assert.Equal(t, "debug", loaded.Config.LogLevel)
	assert.Equal(t, "out/sidebar", loaded.Config.ExportDir)
	assert.Equal(t, "light", loaded.Config.UI.MarkdownStyle)
	assert.Equal(t, "monokai", loaded.Config.UI.HighlightStyle, "unset keys keep defaults")
	assert.Equal(t, time.Second, loaded.Config.Watch.Debounce)
}

func TestLoadExplicitFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("export_dir: elsewhere\n"), 0644))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "elsewhere", loaded.Config.ExportDir)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("SIDEBAR_BUILDER_LOG_LEVEL", "error")
	t.Setenv("SIDEBAR_BUILDER_UI_SHOW_STATS", "false")

	loaded, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "error", loaded.Config.LogLevel)
	assert.False(t, loaded.Config.UI.ShowStats)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	isolate(t)
	require.NoError(t, os.MkdirAll(files.ProjectDir, 0755))
	require.NoError(t, os.WriteFile(files.ConfigPath(), []byte("log_level: chatty\n"), 0644))

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log_level")
}

func TestWriteDefaultConfigRoundTrips(t *testing.T) {
	isolate(t)
	require.NoError(t, WriteDefaultConfig(files.ConfigPath()))

	loaded, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), loaded.Config)
}
