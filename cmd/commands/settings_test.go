package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/sidebar-builder/pkg/files"
	"github.com/pluqqy/sidebar-builder/pkg/models"
)

func TestSettingsShow(t *testing.T) {
	setupProject(t)

	out, err := execute(t, NewSettingsCommand(), "show")
	require.NoError(t, err)
	for _, want := range []string{"SETTING", "sidebar_position", "left", "sidebar_width", "16rem", "menu_button_size"} {
		assert.Contains(t, out, want)
	}

	out, err = execute(t, NewSettingsCommand(), "show", "sidebar_mobile_width")
	require.NoError(t, err)
	assert.Equal(t, "4rem\n", out)

	_, err = execute(t, NewSettingsCommand(), "show", "colour")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown setting: colour")

	out, err = execute(t, NewSettingsCommand(), "show", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "sidebar_variant: sidebar")
}

func TestSettingsSet(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		value   string
		wantErr string
		check   func(t *testing.T, s models.Settings)
	}{
		{
			name: "enum", field: "sidebar_variant", value: "inset",
			check: func(t *testing.T, s models.Settings) { assert.Equal(t, models.VariantInset, s.SidebarVariant) },
		},
		{
			name: "width value recomposes width", field: "sidebar_width_value", value: "18",
			check: func(t *testing.T, s models.Settings) { assert.Equal(t, "18rem", s.SidebarWidth) },
		},
		{
			name: "boolean", field: "show_icons", value: "false",
			check: func(t *testing.T, s models.Settings) { assert.False(t, s.ShowIcons) },
		},
		{name: "value outside enumeration", field: "sidebar_position", value: "top", wantErr: "sidebar_position"},
		{name: "derived field", field: "sidebar_width", value: "3px", wantErr: "derived"},
		{name: "not a boolean", field: "show_footer", value: "maybe", wantErr: "not a boolean"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupProject(t)

			out, err := execute(t, NewSettingsCommand(), "set", tt.field, tt.value)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				saved, err := files.ReadSettings()
				require.NoError(t, err)
				assert.Equal(t, models.DefaultSettings(), saved)
				return
			}

			require.NoError(t, err)
			assert.Contains(t, out, "Set "+tt.field)

			saved, err := files.ReadSettings()
			require.NoError(t, err)
			tt.check(t, saved)
		})
	}
}

func TestSettingsSetRequiresProject(t *testing.T) {
	chdirTemp(t)

	_, err := execute(t, NewSettingsCommand(), "set", "show_icons", "false")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no .sidebar-builder directory found")
}

func TestSettingsReset(t *testing.T) {
	setupProject(t)

	changed := models.DefaultSettings()
	changed.SidebarPosition = models.PositionRight
	require.NoError(t, files.WriteSettings(changed))

	out, err := executeWith(t, runOptions{input: "n\n"}, NewSettingsCommand(), "reset")
	require.NoError(t, err)
	assert.Contains(t, out, "Reset cancelled")
	saved, err := files.ReadSettings()
	require.NoError(t, err)
	assert.Equal(t, models.PositionRight, saved.SidebarPosition)

	out, err = executeWith(t, runOptions{input: "y\n"}, NewSettingsCommand(), "reset")
	require.NoError(t, err)
	assert.Contains(t, out, "Settings reset to defaults")
	saved, err = files.ReadSettings()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSettings(), saved)
}
