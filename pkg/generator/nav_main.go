package generator

import (
	"fmt"
	"strings"

	"github.com/pluqqy/sidebar-builder/pkg/models"
)

var navMainFixedIcons = []string{"ChevronRight"}

type navMainParams struct {
	Items             []models.NavItem
	ShowIcons         bool
	ShowSectionLabels bool
	ButtonSize        models.MenuButtonSize
}

// navMain renders the main navigation with the current items embedded as its
// default data
func navMain(p navMainParams) string {
	var b strings.Builder

	b.WriteString("\"use client\"\n\n")
	b.WriteString(iconImport(mergeIcons(navMainFixedIcons, navIcons(p.Items)), "LucideIcon"))
	b.WriteString("\n")
	b.WriteString(namedImport("@/components/ui/collapsible",
		"Collapsible",
		"CollapsibleContent",
		"CollapsibleTrigger",
	))
	b.WriteString(namedImport("@/components/ui/sidebar",
		"SidebarGroup",
		"SidebarGroupLabel",
		"SidebarMenu",
		"SidebarMenuButton",
		"SidebarMenuItem",
		"SidebarMenuSub",
		"SidebarMenuSubButton",
		"SidebarMenuSubItem",
	))
	b.WriteString("\n")

	b.WriteString("const navMainItems = ")
	b.WriteString(literalAt(0, func(l *literal) { l.navItems(p.Items) }))
	b.WriteString("\n\n")

	b.WriteString(`interface NavMainProps {
  items?: {
    title: string
    url: string
    icon?: LucideIcon
    isActive?: boolean
    items?: {
      title: string
      url: string
    }[]
  }[]
  showIcons?: boolean
  showSectionLabels?: boolean
  buttonSize?: "default" | "sm" | "lg"
}

`)

	b.WriteString("export function NavMain({\n")
	b.WriteString("  items = navMainItems,\n")
	fmt.Fprintf(&b, "  showIcons = %t,\n", p.ShowIcons)
	fmt.Fprintf(&b, "  showSectionLabels = %t,\n", p.ShowSectionLabels)
	fmt.Fprintf(&b, "  buttonSize = %s,\n", quote(string(p.ButtonSize)))
	b.WriteString("}: NavMainProps) {\n")

	b.WriteString(`  return (
    <SidebarGroup>
      {showSectionLabels && <SidebarGroupLabel>Platform</SidebarGroupLabel>}
      <SidebarMenu>
        {items.map((item) => (
          <Collapsible
            key={item.title}
            asChild
            defaultOpen={item.isActive}
            className="group/collapsible"
          >
            <SidebarMenuItem>
              <CollapsibleTrigger asChild>
                <SidebarMenuButton tooltip={item.title} size={buttonSize}>
                  {showIcons && item.icon && <item.icon />}
                  <span>{item.title}</span>
                  <ChevronRight className="ml-auto transition-transform duration-200 group-data-[state=open]/collapsible:rotate-90" />
                </SidebarMenuButton>
              </CollapsibleTrigger>
              <CollapsibleContent>
                <SidebarMenuSub>
                  {item.items?.map((subItem) => (
                    <SidebarMenuSubItem key={subItem.title}>
                      <SidebarMenuSubButton asChild>
                        <a href={subItem.url}>
                          <span>{subItem.title}</span>
                        </a>
                      </SidebarMenuSubButton>
                    </SidebarMenuSubItem>
                  ))}
                </SidebarMenuSub>
              </CollapsibleContent>
            </SidebarMenuItem>
          </Collapsible>
        ))}
      </SidebarMenu>
    </SidebarGroup>
  )
}
`)

	return b.String()
}
