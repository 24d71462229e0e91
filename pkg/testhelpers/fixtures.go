package testhelpers

import (
	"pgregory.net/rapid"

	"github.com/pluqqy/sidebar-builder/pkg/models"
)

// IconPool mixes known icon names, an unknown one and the empty name so
// generated content exercises deduplication and unresolved icons
var IconPool = []string{"Command", "Bot", "Map", "Frame", "BookOpen", "Settings2", "NotARealIcon", ""}

// SampleContent is a small dataset with repeated icons across collections
func SampleContent() *models.Content {
	return &models.Content{
		User: models.User{Name: "Ada Lovelace", Email: "ada@example.com", Avatar: "/avatars/ada.png"},
		Teams: []models.Team{
			{Name: "Analytical", IconName: "Command", Plan: "Enterprise"},
			{Name: "Engine", IconName: "Command", Plan: "Free"},
		},
		NavMain: []models.NavItem{
			{
				Title:    "Notes",
				URL:      "/notes",
				IconName: "BookOpen",
				IsActive: true,
				Items: []models.SubItem{
					{Title: "Note A", URL: "/notes/a"},
					{Title: "Note G", URL: "/notes/g"},
				},
			},
			{Title: "Machines", URL: "/machines", IconName: "Bot"},
		},
		Projects: []models.Project{
			{Name: "Bernoulli", URL: "/p/bernoulli", IconName: "Frame"},
			{Name: "Looms", URL: "/p/looms", IconName: "Command"},
		},
	}
}

func textGen() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.StringMatching(`[A-Za-z][A-Za-z0-9 &.]{0,12}`),
		rapid.String(),
	)
}

// SubItemGen draws a sub-item with arbitrary text
func SubItemGen() *rapid.Generator[models.SubItem] {
	return rapid.Custom(func(t *rapid.T) models.SubItem {
		return models.SubItem{
			Title: textGen().Draw(t, "title"),
			URL:   textGen().Draw(t, "url"),
		}
	})
}

// ContentGen draws content of arbitrary shape, including empty collections
func ContentGen() *rapid.Generator[*models.Content] {
	icon := rapid.SampledFrom(IconPool)

	team := rapid.Custom(func(t *rapid.T) models.Team {
		return models.Team{
			Name:     textGen().Draw(t, "name"),
			IconName: icon.Draw(t, "icon"),
			Plan:     textGen().Draw(t, "plan"),
		}
	})
	nav := rapid.Custom(func(t *rapid.T) models.NavItem {
		item := models.NavItem{
			Title:    textGen().Draw(t, "title"),
			URL:      textGen().Draw(t, "url"),
			IconName: icon.Draw(t, "icon"),
			IsActive: rapid.Bool().Draw(t, "active"),
		}
		if rapid.Bool().Draw(t, "hasItems") {
			item.Items = rapid.SliceOfN(SubItemGen(), 0, 4).Draw(t, "items")
		}
		return item
	})
	project := rapid.Custom(func(t *rapid.T) models.Project {
		return models.Project{
			Name:     textGen().Draw(t, "name"),
			URL:      textGen().Draw(t, "url"),
			IconName: icon.Draw(t, "icon"),
		}
	})

	return rapid.Custom(func(t *rapid.T) *models.Content {
		return &models.Content{
			User: models.User{
				Name:   textGen().Draw(t, "userName"),
				Email:  textGen().Draw(t, "userEmail"),
				Avatar: textGen().Draw(t, "userAvatar"),
			},
			Teams:    rapid.SliceOfN(team, 0, 4).Draw(t, "teams"),
			NavMain:  rapid.SliceOfN(nav, 0, 5).Draw(t, "navMain"),
			Projects: rapid.SliceOfN(project, 0, 4).Draw(t, "projects"),
		}
	})
}

// SettingsGen draws valid settings covering every enumeration
func SettingsGen() *rapid.Generator[models.Settings] {
	return rapid.Custom(func(t *rapid.T) models.Settings {
		s := models.Settings{
			SidebarPosition:         rapid.SampledFrom(models.SidebarPositions).Draw(t, "position"),
			SidebarVariant:          rapid.SampledFrom(models.SidebarVariants).Draw(t, "variant"),
			SidebarWidthValue:       rapid.StringMatching(`[1-9][0-9]{0,2}`).Draw(t, "width"),
			SidebarWidthUnit:        rapid.SampledFrom(models.WidthUnits).Draw(t, "widthUnit"),
			SidebarMobileWidthValue: rapid.StringMatching(`[1-9][0-9]{0,2}`).Draw(t, "mobileWidth"),
			SidebarMobileWidthUnit:  rapid.SampledFrom(models.WidthUnits).Draw(t, "mobileWidthUnit"),
			CollapseBehavior:        rapid.SampledFrom(models.CollapseBehaviors).Draw(t, "collapse"),
			DefaultOpen:             rapid.Bool().Draw(t, "defaultOpen"),
			EnableKeyboardShortcuts: rapid.Bool().Draw(t, "shortcuts"),
			ShowHeader:              rapid.Bool().Draw(t, "showHeader"),
			ShowFooter:              rapid.Bool().Draw(t, "showFooter"),
			ShowIcons:               rapid.Bool().Draw(t, "showIcons"),
			ShowSectionLabels:       rapid.Bool().Draw(t, "showSectionLabels"),
			MenuButtonSize:          rapid.SampledFrom(models.MenuButtonSizes).Draw(t, "buttonSize"),
			ActiveTab:               rapid.SampledFrom(models.Tabs).Draw(t, "tab"),
		}
		s.Normalize()
		return s
	})
}
