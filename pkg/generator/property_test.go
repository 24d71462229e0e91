package generator

import (
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/pluqqy/sidebar-builder/pkg/models"
	"github.com/pluqqy/sidebar-builder/pkg/testhelpers"
)

var importBlock = regexp.MustCompile(`(?s)import \{([^}]*)\} from "lucide-react"`)

// importedIcons lists the names in the lucide-react import of text
func importedIcons(text string) []string {
	m := importBlock.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	var names []string
	for _, part := range strings.Split(m[1], ",") {
		part = strings.TrimSpace(part)
		if part == "" || strings.HasPrefix(part, "type ") {
			continue
		}
		names = append(names, part)
	}
	return names
}

func TestGenerateProperties(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		s := testhelpers.SettingsGen().Draw(rt, "settings")
		c := testhelpers.ContentGen().Draw(rt, "content")
		before := c.Clone()

		files := Generate(s, c)
		again := Generate(s, c)

		require.Equal(rt, files, again, "output must be deterministic")
		require.Equal(rt, before, c, "inputs must not be mutated")

		require.Len(rt, files, len(artifacts))
		for i, f := range files {
			require.Equal(rt, artifacts[i].path, f.Path)
			require.NotEmpty(rt, f.Content)
		}

		for _, f := range files {
			icons := importedIcons(f.Content)
			seen := map[string]bool{}
			for _, name := range icons {
				require.NotEmpty(rt, name)
				require.False(rt, seen[name], "%s imports %s twice", f.Path, name)
				seen[name] = true
			}
		}

		root, _ := Find(files, AppSidebarPath)
		require.Equal(rt, s.ShowHeader, strings.Contains(root.Content, "<SidebarHeader>"))
		require.Equal(rt, s.ShowFooter, strings.Contains(root.Content, "<SidebarFooter>"))
		require.Contains(rt, root.Content, `side="`+string(s.SidebarPosition)+`"`)

		css, _ := Find(files, StylesheetPath)
		require.Contains(rt, css.Content, "--sidebar-width: "+s.SidebarWidthValue+string(s.SidebarWidthUnit)+";")
	})
}

func TestEveryContentIconIsImported(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		c := testhelpers.ContentGen().Draw(rt, "content")
		files := Generate(models.DefaultSettings(), c)

		root, _ := Find(files, AppSidebarPath)
		imported := map[string]bool{}
		for _, name := range importedIcons(root.Content) {
			imported[name] = true
		}

		for _, team := range c.Teams {
			if team.IconName != "" {
				require.True(rt, imported[team.IconName], team.IconName)
			}
		}
		for _, item := range c.NavMain {
			if item.IconName != "" {
				require.True(rt, imported[item.IconName], item.IconName)
			}
		}
		for _, p := range c.Projects {
			if p.IconName != "" {
				require.True(rt, imported[p.IconName], p.IconName)
			}
		}
	})
}

func TestSubItemsRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		sub := rapid.SliceOfN(testhelpers.SubItemGen(), 0, 6).Draw(rt, "items")
		c := &models.Content{NavMain: []models.NavItem{{Title: "Root", URL: "#", IconName: "Bot", Items: sub}}}

		nav, _ := Find(Generate(models.DefaultSettings(), c), NavMainPath)

		var got []models.SubItem
		for _, m := range subItemPattern.FindAllStringSubmatch(nav.Content, -1) {
			title, err := strconv.Unquote(m[1])
			require.NoError(rt, err)
			url, err := strconv.Unquote(m[2])
			require.NoError(rt, err)
			got = append(got, models.SubItem{Title: title, URL: url})
		}

		if len(sub) == 0 {
			require.Empty(rt, got)
			return
		}
		require.Equal(rt, sub, got)
	})
}
