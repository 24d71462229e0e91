package examples

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/sidebar-builder/pkg/icons"
	"github.com/pluqqy/sidebar-builder/pkg/models"
)

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"dashboard", "default", "docs", "minimal"}, Names())
	assert.Len(t, All(), 4)
}

func TestGet(t *testing.T) {
	p, err := Get(" Docs ")
	require.NoError(t, err)
	assert.Equal(t, "docs", p.Name)

	_, err = Get("landing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dashboard, default, docs, minimal")
}

func TestDefaultPresetMatchesDefaultContent(t *testing.T) {
	p, err := Get("default")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultContent(), p.Content())
}

func TestPresetsAreValidAndUseKnownIcons(t *testing.T) {
	for _, p := range All() {
		t.Run(p.Name, func(t *testing.T) {
			c := p.Content()
			require.NoError(t, models.ValidateContent(c))
			assert.NotEmpty(t, p.Description)
			assert.NotEmpty(t, c.Teams)
			assert.NotEmpty(t, c.NavMain)

			for _, team := range c.Teams {
				assert.True(t, icons.Known(team.IconName), team.IconName)
			}
			for _, item := range c.NavMain {
				assert.True(t, icons.Known(item.IconName), item.IconName)
			}
			for _, project := range c.Projects {
				assert.True(t, icons.Known(project.IconName), project.IconName)
			}
		})
	}
}

func TestPresetContentIsFresh(t *testing.T) {
	p, err := Get("minimal")
	require.NoError(t, err)

	first := p.Content()
	first.NavMain[0].Title = "changed"
	assert.Equal(t, "Home", p.Content().NavMain[0].Title)
}
