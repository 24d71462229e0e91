package commands

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/sidebar-builder/pkg/files"
	"github.com/pluqqy/sidebar-builder/pkg/generator"
	"github.com/pluqqy/sidebar-builder/pkg/models"
)

func TestGenerateCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		noInit   bool
		wantErr  bool
		errMsg   string
		contains []string
		excludes []string
	}{
		{
			name: "all files with path headers",
			contains: []string{
				"// ===== components/app-sidebar.tsx =====",
				"// ===== styles/sidebar-variables.css =====",
				"// ===== README.md =====",
				"export function TeamSwitcher",
			},
		},
		{
			name:     "single file by stem",
			args:     []string{"nav-main"},
			contains: []string{"export function NavMain"},
			excludes: []string{"// =====", "export function NavUser"},
		},
		{
			name:     "single file by path",
			args:     []string{"styles/sidebar-variables.css"},
			contains: []string{"--sidebar-width: 16rem;"},
		},
		{
			name:     "outside a project uses defaults",
			args:     []string{"sidebar-variables.css"},
			noInit:   true,
			contains: []string{"--sidebar-width-collapsed: 4rem;"},
		},
		{
			name:    "unknown file",
			args:    []string{"sidebar.vue"},
			wantErr: true,
			errMsg:  "no generated file matches 'sidebar.vue'",
		},
		{
			name:     "list with stats",
			args:     []string{"--list"},
			contains: []string{"NAME", "BYTES", "TOKENS", "app-sidebar.tsx", "components/nav-user.tsx", "total"},
		},
		{
			name:    "invalid output format",
			args:    []string{"-o", "xml"},
			wantErr: true,
			errMsg:  "invalid output format: xml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.noInit {
				chdirTemp(t)
			} else {
				setupProject(t)
			}

			out, err := execute(t, NewGenerateCommand(), tt.args...)

			if tt.wantErr {
				require.Error(t, err)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
				return
			}
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
			for _, unwanted := range tt.excludes {
				assert.NotContains(t, out, unwanted)
			}
		})
	}
}

func TestGenerateReflectsSettingsFile(t *testing.T) {
	setupProject(t)

	settings := models.DefaultSettings()
	settings.SidebarVariant = models.VariantFloating
	settings.SidebarWidthValue = "20"
	require.NoError(t, files.WriteSettings(settings))

	out, err := execute(t, NewGenerateCommand(), "app-sidebar.tsx")
	require.NoError(t, err)
	assert.Contains(t, out, `variant="floating"`)

	out, err = execute(t, NewGenerateCommand(), "sidebar-variables.css")
	require.NoError(t, err)
	assert.Contains(t, out, "--sidebar-width: 20rem;")
}

func TestGenerateJSONOutput(t *testing.T) {
	setupProject(t)

	out, err := execute(t, NewGenerateCommand(), "-o", "json")
	require.NoError(t, err)

	var decoded []models.CodeFile
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded, len(generator.Paths()))
	for i, path := range generator.Paths() {
		assert.Equal(t, path, decoded[i].Path)
		assert.NotEmpty(t, decoded[i].Content)
	}
}

func TestGenerateToFile(t *testing.T) {
	dir := setupProject(t)
	target := filepath.Join(dir, "out.md")

	out, err := execute(t, NewGenerateCommand(), "README.md", "--file", target)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote README.md to")

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "# Custom Sidebar Component"))
}
