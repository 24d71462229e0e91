package generator

import (
	"fmt"
	"strings"

	"github.com/pluqqy/sidebar-builder/pkg/models"
)

// Action icons used by the project menu, imported regardless of content
var navProjectsFixedIcons = []string{"Folder", "Forward", "MoreHorizontal", "Trash2"}

type navProjectsParams struct {
	Projects          []models.Project
	ShowIcons         bool
	ShowSectionLabels bool
	ButtonSize        models.MenuButtonSize
}

func navProjects(p navProjectsParams) string {
	var b strings.Builder

	b.WriteString("\"use client\"\n\n")
	b.WriteString(iconImport(mergeIcons(navProjectsFixedIcons, projectIcons(p.Projects)), "LucideIcon"))
	b.WriteString("\n")
	b.WriteString(namedImport("@/components/ui/dropdown-menu",
		"DropdownMenu",
		"DropdownMenuContent",
		"DropdownMenuItem",
		"DropdownMenuSeparator",
		"DropdownMenuTrigger",
	))
	b.WriteString(namedImport("@/components/ui/sidebar",
		"SidebarGroup",
		"SidebarGroupLabel",
		"SidebarMenu",
		"SidebarMenuAction",
		"SidebarMenuButton",
		"SidebarMenuItem",
		"useSidebar",
	))
	b.WriteString("\n")

	b.WriteString("const navProjectsItems = ")
	b.WriteString(literalAt(0, func(l *literal) { l.projects(p.Projects) }))
	b.WriteString("\n\n")

	b.WriteString(`interface NavProjectsProps {
  projects?: {
    name: string
    url: string
    icon?: LucideIcon
  }[]
  showIcons?: boolean
  showSectionLabels?: boolean
  buttonSize?: "default" | "sm" | "lg"
}

`)

	b.WriteString("export function NavProjects({\n")
	b.WriteString("  projects = navProjectsItems,\n")
	fmt.Fprintf(&b, "  showIcons = %t,\n", p.ShowIcons)
	fmt.Fprintf(&b, "  showSectionLabels = %t,\n", p.ShowSectionLabels)
	fmt.Fprintf(&b, "  buttonSize = %s,\n", quote(string(p.ButtonSize)))
	b.WriteString("}: NavProjectsProps) {\n")

	b.WriteString(`  const { isMobile } = useSidebar()

  return (
    <SidebarGroup className="group-data-[collapsible=icon]:hidden">
      {showSectionLabels && <SidebarGroupLabel>Projects</SidebarGroupLabel>}
      <SidebarMenu>
        {projects.map((item) => (
          <SidebarMenuItem key={item.name}>
            <SidebarMenuButton asChild size={buttonSize}>
              <a href={item.url}>
                {showIcons && item.icon && <item.icon />}
                <span>{item.name}</span>
              </a>
            </SidebarMenuButton>
            <DropdownMenu>
              <DropdownMenuTrigger asChild>
                <SidebarMenuAction showOnHover>
                  <MoreHorizontal />
                  <span className="sr-only">More</span>
                </SidebarMenuAction>
              </DropdownMenuTrigger>
              <DropdownMenuContent
                className="w-48 rounded-lg"
                side={isMobile ? "bottom" : "right"}
                align={isMobile ? "end" : "start"}
              >
                <DropdownMenuItem>
                  <Folder className="text-muted-foreground" />
                  <span>View Project</span>
                </DropdownMenuItem>
                <DropdownMenuItem>
                  <Forward className="text-muted-foreground" />
                  <span>Share Project</span>
                </DropdownMenuItem>
                <DropdownMenuSeparator />
                <DropdownMenuItem>
                  <Trash2 className="text-muted-foreground" />
                  <span>Delete Project</span>
                </DropdownMenuItem>
              </DropdownMenuContent>
            </DropdownMenu>
          </SidebarMenuItem>
        ))}
        <SidebarMenuItem>
          <SidebarMenuButton className="text-sidebar-foreground/70" size={buttonSize}>
            {showIcons && <MoreHorizontal className="text-sidebar-foreground/70" />}
            <span>More</span>
          </SidebarMenuButton>
        </SidebarMenuItem>
      </SidebarMenu>
    </SidebarGroup>
  )
}
`)

	return b.String()
}
