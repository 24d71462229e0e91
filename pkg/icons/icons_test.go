package icons

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/sidebar-builder/pkg/models"
)

func TestResolve(t *testing.T) {
	assert.Equal(t, "⌘", Resolve("Command"))
	assert.Equal(t, "", Resolve("NotAnIcon"))
	assert.Equal(t, "", Resolve(""))

	g, ok := Lookup("Plus")
	assert.True(t, ok)
	assert.Equal(t, "+", g)

	_, ok = Lookup("command")
	assert.False(t, ok, "lookup is case sensitive")
}

func TestDefaultContentIconsAreKnown(t *testing.T) {
	c := models.DefaultContent()

	for _, team := range c.Teams {
		assert.True(t, Known(team.IconName), team.IconName)
	}
	for _, item := range c.NavMain {
		assert.True(t, Known(item.IconName), item.IconName)
	}
	for _, p := range c.Projects {
		assert.True(t, Known(p.IconName), p.IconName)
	}
}

func TestNames(t *testing.T) {
	names := Names()
	require.NotEmpty(t, names)
	assert.True(t, sort.StringsAreSorted(names))

	for _, n := range names {
		assert.NotEmpty(t, Resolve(n), n)
	}
}

func TestFilter(t *testing.T) {
	assert.Equal(t, []string{"ChevronRight", "ChevronsUpDown"}, Filter("chevron"))
	assert.Equal(t, Names(), Filter("  "))
	assert.Empty(t, Filter("zzz"))
}
