package generator

import (
	"fmt"
	"strings"

	"github.com/pluqqy/sidebar-builder/pkg/models"
)

type appSidebarParams struct {
	Position          models.SidebarPosition
	Variant           models.SidebarVariant
	Collapse          models.CollapseBehavior
	ShowHeader        bool
	ShowFooter        bool
	ShowIcons         bool
	ShowSectionLabels bool
	ButtonSize        models.MenuButtonSize

	User     models.User
	Teams    []models.Team
	NavMain  []models.NavItem
	Projects []models.Project
}

func appSidebarParamsFrom(s models.Settings, c *models.Content) appSidebarParams {
	return appSidebarParams{
		Position:          s.SidebarPosition,
		Variant:           s.SidebarVariant,
		Collapse:          s.CollapseBehavior,
		ShowHeader:        s.ShowHeader,
		ShowFooter:        s.ShowFooter,
		ShowIcons:         s.ShowIcons,
		ShowSectionLabels: s.ShowSectionLabels,
		ButtonSize:        s.MenuButtonSize,
		User:              c.User,
		Teams:             c.Teams,
		NavMain:           c.NavMain,
		Projects:          c.Projects,
	}
}

// appSidebar renders the root component. Icon imports cover every collection
// embedded in the data literal, whether or not its section is shown.
func appSidebar(p appSidebarParams) string {
	var b strings.Builder

	b.WriteString("\"use client\"\n\n")
	b.WriteString("import type * as React from \"react\"\n")

	var icons []string
	icons = append(icons, teamIcons(p.Teams)...)
	icons = append(icons, navIcons(p.NavMain)...)
	icons = append(icons, projectIcons(p.Projects)...)
	b.WriteString(iconImport(uniqueIcons(icons...)))
	b.WriteString("\n")

	b.WriteString("import { NavMain } from \"./nav-main\"\n")
	b.WriteString("import { NavProjects } from \"./nav-projects\"\n")
	if p.ShowFooter {
		b.WriteString("import { NavUser } from \"./nav-user\"\n")
	}
	if p.ShowHeader {
		b.WriteString("import { TeamSwitcher } from \"./team-switcher\"\n")
	}

	ui := []string{"Sidebar", "SidebarContent"}
	if p.ShowFooter {
		ui = append(ui, "SidebarFooter")
	}
	if p.ShowHeader {
		ui = append(ui, "SidebarHeader")
	}
	ui = append(ui, "SidebarRail")
	b.WriteString(namedImport("@/components/ui/sidebar", ui...))
	b.WriteString("\n")

	b.WriteString("const data = ")
	b.WriteString(literalAt(0, func(l *literal) {
		l.object(
			nested("user", func(l *literal) { l.user(p.User) }),
			nested("teams", func(l *literal) { l.teams(p.Teams) }),
			nested("navMain", func(l *literal) { l.navItems(p.NavMain) }),
			nested("projects", func(l *literal) { l.projects(p.Projects) }),
		)
	}))
	b.WriteString("\n\n")

	b.WriteString("interface AppSidebarProps extends React.ComponentProps<typeof Sidebar> {}\n\n")
	b.WriteString("export function AppSidebar({ ...props }: AppSidebarProps) {\n")
	b.WriteString("  return (\n")
	b.WriteString("    <Sidebar\n")
	fmt.Fprintf(&b, "      side=%s\n", quote(string(p.Position)))
	fmt.Fprintf(&b, "      variant=%s\n", quote(string(p.Variant)))
	fmt.Fprintf(&b, "      collapsible=%s\n", quote(string(p.Collapse)))
	b.WriteString("      className=\"sidebar-custom\"\n")
	b.WriteString("      {...props}\n")
	b.WriteString("    >\n")

	if p.ShowHeader {
		b.WriteString("      <SidebarHeader>\n")
		b.WriteString("        <TeamSwitcher teams={data.teams} />\n")
		b.WriteString("      </SidebarHeader>\n")
	}

	b.WriteString("      <SidebarContent>\n")
	writeNavElement(&b, "NavMain", "items={data.navMain}", p)
	writeNavElement(&b, "NavProjects", "projects={data.projects}", p)
	b.WriteString("      </SidebarContent>\n")

	if p.ShowFooter {
		b.WriteString("      <SidebarFooter>\n")
		b.WriteString("        <NavUser user={data.user} />\n")
		b.WriteString("      </SidebarFooter>\n")
	}

	b.WriteString("      <SidebarRail />\n")
	b.WriteString("    </Sidebar>\n")
	b.WriteString("  )\n")
	b.WriteString("}\n")

	return b.String()
}

func writeNavElement(b *strings.Builder, component, dataProp string, p appSidebarParams) {
	fmt.Fprintf(b, "        <%s\n", component)
	fmt.Fprintf(b, "          %s\n", dataProp)
	fmt.Fprintf(b, "          showIcons={%t}\n", p.ShowIcons)
	fmt.Fprintf(b, "          showSectionLabels={%t}\n", p.ShowSectionLabels)
	fmt.Fprintf(b, "          buttonSize=%s\n", quote(string(p.ButtonSize)))
	b.WriteString("        />\n")
}
