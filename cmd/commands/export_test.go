package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/sidebar-builder/pkg/files"
	"github.com/pluqqy/sidebar-builder/pkg/generator"
	"github.com/pluqqy/sidebar-builder/pkg/models"
)

func TestExportCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantDir string
	}{
		{name: "configured directory", wantDir: files.ExportDir},
		{name: "explicit directory", args: []string{"web/src"}, wantDir: "web/src"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := setupProject(t)

			out, err := execute(t, NewExportCommand(), tt.args...)
			require.NoError(t, err)
			assert.Contains(t, out, "Exported 8 files to "+tt.wantDir)

			expected := generator.Generate(models.DefaultSettings(), models.DefaultContent())
			for _, f := range expected {
				data, err := os.ReadFile(filepath.Join(dir, tt.wantDir, filepath.FromSlash(f.Path)))
				require.NoError(t, err, f.Path)
				assert.Equal(t, f.Content, string(data), f.Path)
			}
		})
	}
}

func TestExportJSONListsWrittenPaths(t *testing.T) {
	setupProject(t)

	out, err := execute(t, NewExportCommand(), "out", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, "components/app-sidebar.tsx")
	assert.NotContains(t, out, "Exported")
}

func TestDiffCommand(t *testing.T) {
	setupProject(t)

	out, err := execute(t, NewDiffCommand(), "out")
	require.NoError(t, err)
	assert.Contains(t, out, "components/app-sidebar.tsx: missing")
	assert.Contains(t, out, "8 of 8 files differ")
	assert.Regexp(t, `missing\s+8`, out)

	_, err = execute(t, NewExportCommand(), "out")
	require.NoError(t, err)

	out, err = execute(t, NewDiffCommand(), "out", "--exit-code")
	require.NoError(t, err)
	assert.Contains(t, out, "out is up to date")

	settings := models.DefaultSettings()
	settings.SidebarWidthValue = "22"
	require.NoError(t, files.WriteSettings(settings))

	out, err = execute(t, NewDiffCommand(), "out")
	require.NoError(t, err)
	assert.Contains(t, out, "styles/sidebar-variables.css: changed (+1 -1)")
	assert.Contains(t, out, "-   --sidebar-width: 16rem;")
	assert.Contains(t, out, "+   --sidebar-width: 22rem;")
	assert.Contains(t, out, "README.md: changed")
	assert.NotContains(t, out, "nav-main.tsx: changed")
	assert.Regexp(t, `changed\s+2`, out)
	assert.Regexp(t, `unchanged\s+6`, out)

	_, err = execute(t, NewDiffCommand(), "out", "--exit-code")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 files differ")
}

func TestCompareFile(t *testing.T) {
	unchanged := compareFile(files.ExportedFile{CodeFile: models.CodeFile{Path: "a"}, Exists: true}, "")
	assert.Equal(t, diffUnchanged, unchanged.Status)

	missing := compareFile(files.ExportedFile{CodeFile: models.CodeFile{Path: "a"}}, "one\ntwo\n")
	assert.Equal(t, diffMissing, missing.Status)
	assert.Equal(t, 2, missing.Added)

	changed := compareFile(files.ExportedFile{
		CodeFile: models.CodeFile{Path: "a", Content: "one\ntwo\nthree\n"},
		Exists:   true,
	}, "one\nTWO\nthree\nfour\n")
	assert.Equal(t, diffChanged, changed.Status)
	assert.Equal(t, 2, changed.Added)
	assert.Equal(t, 1, changed.Removed)
	assert.Contains(t, changed.Patch, "- two\n")
	assert.Contains(t, changed.Patch, "+ TWO\n")
	assert.Contains(t, changed.Patch, "+ four\n")
}

func TestClipboardCommand(t *testing.T) {
	setupProject(t)

	var copied string
	original := writeClipboard
	writeClipboard = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { writeClipboard = original })

	out, err := execute(t, NewClipboardCommand(), "nav-user")
	require.NoError(t, err)
	assert.Contains(t, out, "Copied components/nav-user.tsx to clipboard")
	assert.Contains(t, copied, "export function NavUser")

	_, err = execute(t, NewClipboardCommand(), "missing")
	require.Error(t, err)
}
