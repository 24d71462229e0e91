// Package preview draws a terminal approximation of the generated sidebar.
package preview

import (
	"github.com/pluqqy/sidebar-builder/pkg/generator"
	"github.com/pluqqy/sidebar-builder/pkg/models"
)

// Structure is what a preview shows, independent of styling
type Structure struct {
	Header        bool
	Footer        bool
	Icons         bool
	SectionLabels []string
	Teams         []string
	ActiveTeam    string
	NavTitles     []string
	OpenNav       []string
	Projects      []string
	User          string
	Initials      string
}

const (
	platformLabel = "Platform"
	projectsLabel = "Projects"
)

// Outline reports what Render shows for settings and content with the
// panel expanded and the first team active.
func Outline(settings models.Settings, content *models.Content) Structure {
	if content == nil {
		content = &models.Content{}
	}

	o := Structure{
		Header: settings.ShowHeader,
		Footer: settings.ShowFooter,
		Icons:  settings.ShowIcons,
	}
	if settings.ShowSectionLabels {
		o.SectionLabels = []string{platformLabel, projectsLabel}
	}
	for _, t := range content.Teams {
		o.Teams = append(o.Teams, t.Name)
	}
	if team, ok := content.ActiveTeam(); ok {
		o.ActiveTeam = team.Name
	}
	for _, item := range content.NavMain {
		o.NavTitles = append(o.NavTitles, item.Title)
		if item.IsActive && len(item.Items) > 0 {
			o.OpenNav = append(o.OpenNav, item.Title)
		}
	}
	for _, p := range content.Projects {
		o.Projects = append(o.Projects, p.Name)
	}
	o.User = content.User.Name
	o.Initials = generator.Initials(content.User.Name)
	return o
}
