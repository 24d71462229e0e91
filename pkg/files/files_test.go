package files

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/sidebar-builder/pkg/models"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tempDir))
	t.Cleanup(func() { _ = os.Chdir(oldWd) })
	return tempDir
}

func TestInitProjectStructure(t *testing.T) {
	chdirTemp(t)

	require.False(t, ProjectExists())
	require.NoError(t, InitProjectStructure())
	assert.True(t, ProjectExists())

	for _, path := range []string{
		ProjectDir,
		filepath.Join(ProjectDir, LogsDir),
		SettingsPath(),
		ContentPath(),
	} {
		_, err := os.Stat(path)
		assert.NoError(t, err, path)
	}

	settings, err := ReadSettings()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSettings(), settings)

	content, err := ReadContent()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultContent(), content)
}

func TestInitKeepsExistingState(t *testing.T) {
	chdirTemp(t)
	require.NoError(t, InitProjectStructure())

	custom := &models.Content{User: models.User{Name: "Grace", Email: "grace@example.com"}}
	require.NoError(t, WriteContent(custom))
	require.NoError(t, InitProjectStructure())

	got, err := ReadContent()
	require.NoError(t, err)
	assert.Equal(t, "Grace", got.User.Name)
}

func TestMissingStateFallsBackToDefaults(t *testing.T) {
	chdirTemp(t)

	settings, err := ReadSettings()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSettings(), settings)

	content, err := ReadContent()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultContent(), content)
}

func TestSettingsRoundTrip(t *testing.T) {
	chdirTemp(t)

	s := models.DefaultSettings()
	s.SidebarPosition = models.PositionRight
	s.SidebarWidthValue = "300"
	s.SidebarWidthUnit = models.UnitPx
	s.ShowFooter = false
	require.NoError(t, WriteSettings(s))

	got, err := ReadSettings()
	require.NoError(t, err)
	assert.Equal(t, models.PositionRight, got.SidebarPosition)
	assert.Equal(t, "300px", got.SidebarWidth)
	assert.False(t, got.ShowFooter)
}

func TestPartialSettingsFileKeepsDefaults(t *testing.T) {
	chdirTemp(t)
	require.NoError(t, os.MkdirAll(ProjectDir, 0755))
	require.NoError(t, os.WriteFile(SettingsPath(), []byte("sidebar_variant: inset\n"), 0644))

	got, err := ReadSettings()
	require.NoError(t, err)
	assert.Equal(t, models.VariantInset, got.SidebarVariant)
	assert.Equal(t, "16rem", got.SidebarWidth)
	assert.True(t, got.ShowHeader)
}

func TestContentRoundTrip(t *testing.T) {
	chdirTemp(t)

	c := models.DefaultContent()
	c.NavMain[0].Items = append(c.NavMain[0].Items, models.SubItem{Title: "Recent", URL: "/recent"})
	c.Teams = c.Teams[:1]
	require.NoError(t, WriteContent(c))

	got, err := ReadContent()
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		file string
		data string
		read func() error
	}{
		{
			name: "malformed settings",
			file: SettingsFile,
			data: "sidebar_position: [",
			read: func() error { _, err := ReadSettings(); return err },
		},
		{
			name: "settings outside enumeration",
			file: SettingsFile,
			data: "sidebar_position: top\n",
			read: func() error { _, err := ReadSettings(); return err },
		},
		{
			name: "malformed content",
			file: ContentFile,
			data: "teams: {",
			read: func() error { _, err := ReadContent(); return err },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chdirTemp(t)
			require.NoError(t, os.MkdirAll(ProjectDir, 0755))
			require.NoError(t, os.WriteFile(filepath.Join(ProjectDir, tt.file), []byte(tt.data), 0644))

			err := tt.read()
			require.Error(t, err)
			var pe *models.ParseError
			assert.True(t, errors.As(err, &pe))
			assert.Contains(t, err.Error(), tt.file)
		})
	}
}

func TestLoadContentFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "import.yaml")
	doc := `user:
  name: Lin
  email: lin@example.com
  avatar: /lin.png
teams:
  - name: Lab
    icon: Command
    plan: Free
nav_main:
  - title: Home
    url: /
    icon: Home
    is_active: true
    items:
      - title: Overview
        url: /overview
projects: []
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	c, err := LoadContentFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Lin", c.User.Name)
	require.Len(t, c.Teams, 1)
	assert.Equal(t, "Command", c.Teams[0].IconName)
	require.Len(t, c.NavMain, 1)
	assert.True(t, c.NavMain[0].IsActive)
	assert.Equal(t, []models.SubItem{{Title: "Overview", URL: "/overview"}}, c.NavMain[0].Items)

	_, err = LoadContentFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestPersister(t *testing.T) {
	chdirTemp(t)
	var p Persister

	s := models.DefaultSettings()
	s.ShowIcons = false
	require.NoError(t, p.SaveSettings(s))
	require.NoError(t, p.SaveContent(&models.Content{User: models.User{Name: "Ola"}}))

	gotSettings, err := ReadSettings()
	require.NoError(t, err)
	assert.False(t, gotSettings.ShowIcons)

	gotContent, err := ReadContent()
	require.NoError(t, err)
	assert.Equal(t, "Ola", gotContent.User.Name)

	entries, err := os.ReadDir(ProjectDir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".settings.yaml.", "temp files are renamed into place")
	}
}

func TestWriteFile(t *testing.T) {
	chdirTemp(t)
	require.NoError(t, WriteFile(filepath.Join("out", "README.md"), "# hi\n"))

	data, err := os.ReadFile(filepath.Join("out", "README.md"))
	require.NoError(t, err)
	assert.Equal(t, "# hi\n", string(data))
}

func TestEmptyContentRoundTrip(t *testing.T) {
	chdirTemp(t)
	require.NoError(t, WriteContent(nil))

	got, err := ReadContent()
	require.NoError(t, err)
	assert.Empty(t, got.Teams)
	assert.Empty(t, got.NavMain)
	assert.Empty(t, got.Projects)
	assert.Empty(t, got.User.Name)
}
