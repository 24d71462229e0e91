package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/sidebar-builder/pkg/generator"
	"github.com/pluqqy/sidebar-builder/pkg/models"
)

func newTestCodeViewer(t *testing.T) *CodeViewerModel {
	t.Helper()
	m := NewCodeViewerModel("monokai", "notty", true)
	m.SetSize(140, 30)
	m.SetFiles(generator.Generate(models.DefaultSettings(), models.DefaultContent()))
	return m
}

func TestCodeViewerGroupsFilesByDirectory(t *testing.T) {
	m := newTestCodeViewer(t)
	list := m.fileList(30)

	for _, header := range []string{"components/", "styles/", "examples/", "./"} {
		assert.Equal(t, 1, strings.Count(list, header), "header %s", header)
	}
	assert.Less(t, strings.Index(list, "components/"), strings.Index(list, "nav-main.tsx"))
	assert.Less(t, strings.Index(list, "styles/"), strings.Index(list, "sidebar-variables.css"))
	assert.Contains(t, list, "▸ app-sidebar.tsx", "the first file starts active")
}

func TestCodeViewerNavigation(t *testing.T) {
	m := newTestCodeViewer(t)

	m.Update(key("up"))
	f, ok := m.Active()
	require.True(t, ok)
	assert.Equal(t, generator.AppSidebarPath, f.Path)

	m.Update(key("down"))
	m.Update(key("j"))
	f, _ = m.Active()
	assert.Equal(t, generator.NavProjectsPath, f.Path)

	for range 20 {
		m.Update(key("down"))
	}
	f, _ = m.Active()
	assert.Equal(t, generator.ReadmePath, f.Path, "the cursor stops at the last file")
}

func TestCodeViewerKeepsActiveFileAcrossRegeneration(t *testing.T) {
	m := newTestCodeViewer(t)
	m.Update(key("down"))
	m.Update(key("down"))

	settings := models.DefaultSettings()
	settings.SidebarVariant = models.VariantFloating
	m.SetFiles(generator.Generate(settings, models.DefaultContent()))

	f, _ := m.Active()
	assert.Equal(t, generator.NavProjectsPath, f.Path)

	m.SetFiles([]models.CodeFile{{Name: "other.tsx", Path: "other.tsx", Content: "x"}})
	f, _ = m.Active()
	assert.Equal(t, "other.tsx", f.Path, "a vanished file falls back to the first")
}

func TestCodeViewerCopy(t *testing.T) {
	original := copyToClipboard
	t.Cleanup(func() { copyToClipboard = original })

	var copied string
	copyToClipboard = func(text string) error {
		copied = text
		return nil
	}

	m := newTestCodeViewer(t)
	msg := runCmd(m.Update(key("y")))
	assert.Equal(t, StatusMsg("✓ Copied components/app-sidebar.tsx to clipboard"), msg)

	f, _ := m.Active()
	assert.Equal(t, f.Content, copied)

	copyToClipboard = func(string) error { return errors.New("no clipboard") }
	msg = runCmd(m.Update(key("y")))
	require.IsType(t, StatusMsg(""), msg)
	assert.True(t, strings.HasPrefix(string(msg.(StatusMsg)), "✗ Failed to copy"))
}

func TestCodeViewerMarkdownToggle(t *testing.T) {
	m := newTestCodeViewer(t)

	m.Update(key("m"))
	assert.False(t, m.renderMarkdown, "only markdown files can be rendered")

	for range len(generator.Paths()) {
		m.Update(key("down"))
	}
	f, _ := m.Active()
	require.Equal(t, "markdown", f.Language())

	m.Update(key("m"))
	assert.True(t, m.renderMarkdown)
	view := m.View()
	assert.Contains(t, view, "(RENDERED)")
	assert.Contains(t, view, "Custom Sidebar Component")
	assert.Contains(t, m.helpItems(), "m toggle markdown")
}

func TestCodeViewerEmpty(t *testing.T) {
	m := NewCodeViewerModel("monokai", "notty", false)
	m.SetSize(100, 20)

	_, ok := m.Active()
	assert.False(t, ok)
	assert.Contains(t, m.View(), "No files generated")
	assert.Nil(t, m.Update(key("y")))
}

func TestCodeViewerStatsBadge(t *testing.T) {
	m := newTestCodeViewer(t)
	assert.Contains(t, m.statsBadge(), "lines")

	m.showStats = false
	assert.Empty(t, m.statsBadge())
}
