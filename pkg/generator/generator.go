// Package generator turns builder settings and sidebar content into the set
// of source files a project needs to use the configured sidebar.
package generator

import (
	"github.com/pluqqy/sidebar-builder/pkg/models"
)

// Artifact paths. They are relative, fixed and identical across calls.
const (
	AppSidebarPath   = "components/app-sidebar.tsx"
	NavMainPath      = "components/nav-main.tsx"
	NavProjectsPath  = "components/nav-projects.tsx"
	NavUserPath      = "components/nav-user.tsx"
	TeamSwitcherPath = "components/team-switcher.tsx"
	StylesheetPath   = "styles/sidebar-variables.css"
	ExampleUsagePath = "examples/example-usage.tsx"
	ReadmePath       = "README.md"
)

type artifact struct {
	name   string
	path   string
	render func(s models.Settings, c *models.Content) string
}

// artifacts is the output order. The first entry is the one a viewer opens by default.
var artifacts = []artifact{
	{"app-sidebar.tsx", AppSidebarPath, func(s models.Settings, c *models.Content) string {
		return appSidebar(appSidebarParamsFrom(s, c))
	}},
	{"nav-main.tsx", NavMainPath, func(s models.Settings, c *models.Content) string {
		return navMain(navMainParams{
			Items:             c.NavMain,
			ShowIcons:         s.ShowIcons,
			ShowSectionLabels: s.ShowSectionLabels,
			ButtonSize:        s.MenuButtonSize,
		})
	}},
	{"nav-projects.tsx", NavProjectsPath, func(s models.Settings, c *models.Content) string {
		return navProjects(navProjectsParams{
			Projects:          c.Projects,
			ShowIcons:         s.ShowIcons,
			ShowSectionLabels: s.ShowSectionLabels,
			ButtonSize:        s.MenuButtonSize,
		})
	}},
	{"nav-user.tsx", NavUserPath, func(s models.Settings, c *models.Content) string {
		return navUser(navUserParams{User: c.User, ButtonSize: s.MenuButtonSize})
	}},
	{"team-switcher.tsx", TeamSwitcherPath, func(s models.Settings, c *models.Content) string {
		return teamSwitcher(teamSwitcherParams{Teams: c.Teams, ButtonSize: s.MenuButtonSize})
	}},
	{"sidebar-variables.css", StylesheetPath, func(s models.Settings, _ *models.Content) string {
		return stylesheet(stylesheetParams{Width: s.SidebarWidth, CollapsedWidth: s.SidebarMobileWidth})
	}},
	{"example-usage.tsx", ExampleUsagePath, func(s models.Settings, _ *models.Content) string {
		return exampleUsage(exampleParams{DefaultOpen: s.DefaultOpen, KeyboardShortcuts: s.EnableKeyboardShortcuts})
	}},
	{"README.md", ReadmePath, func(s models.Settings, c *models.Content) string {
		return readme(readmeParams{Settings: s, Summary: summarize(c)})
	}},
}

// Generate renders every artifact for the given snapshot. It never fails and
// never mutates its inputs; a nil content is treated as empty content.
func Generate(settings models.Settings, content *models.Content) []models.CodeFile {
	settings.Normalize()
	if content == nil {
		content = &models.Content{}
	}

	files := make([]models.CodeFile, 0, len(artifacts))
	for _, a := range artifacts {
		files = append(files, models.CodeFile{
			Name:    a.name,
			Path:    a.path,
			Content: a.render(settings, content),
		})
	}
	return files
}

// Paths returns the artifact paths in output order
func Paths() []string {
	paths := make([]string, len(artifacts))
	for i, a := range artifacts {
		paths[i] = a.path
	}
	return paths
}

// Find returns the file whose name or path equals ref
func Find(files []models.CodeFile, ref string) (models.CodeFile, bool) {
	for _, f := range files {
		if f.Name == ref || f.Path == ref {
			return f, true
		}
	}
	return models.CodeFile{}, false
}
