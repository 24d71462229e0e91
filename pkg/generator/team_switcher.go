package generator

import (
	"fmt"
	"strings"

	"github.com/pluqqy/sidebar-builder/pkg/models"
)

var teamSwitcherFixedIcons = []string{"ChevronsUpDown", "Plus"}

type teamSwitcherParams struct {
	Teams      []models.Team
	ButtonSize models.MenuButtonSize
}

// teamSwitcher renders the header team menu. The first team starts active.
func teamSwitcher(p teamSwitcherParams) string {
	var b strings.Builder

	b.WriteString("\"use client\"\n\n")
	b.WriteString("import * as React from \"react\"\n")
	b.WriteString(iconImport(mergeIcons(teamSwitcherFixedIcons, teamIcons(p.Teams))))
	b.WriteString("\n")
	b.WriteString(namedImport("@/components/ui/dropdown-menu",
		"DropdownMenu",
		"DropdownMenuContent",
		"DropdownMenuItem",
		"DropdownMenuLabel",
		"DropdownMenuSeparator",
		"DropdownMenuShortcut",
		"DropdownMenuTrigger",
	))
	b.WriteString(namedImport("@/components/ui/sidebar",
		"SidebarMenu",
		"SidebarMenuButton",
		"SidebarMenuItem",
		"useSidebar",
	))
	b.WriteString("\n")

	b.WriteString("const defaultTeams = ")
	b.WriteString(literalAt(0, func(l *literal) { l.teams(p.Teams) }))
	b.WriteString("\n\n")

	b.WriteString(`interface TeamSwitcherProps {
  teams?: {
    name: string
    logo?: React.ElementType
    plan: string
  }[]
}

export function TeamSwitcher({ teams = defaultTeams }: TeamSwitcherProps) {
  const { isMobile } = useSidebar()
  const [activeTeam, setActiveTeam] = React.useState(teams[0])

  if (!activeTeam) {
    return null
  }

  return (
    <SidebarMenu>
      <SidebarMenuItem>
        <DropdownMenu>
          <DropdownMenuTrigger asChild>
            <SidebarMenuButton
`)
	fmt.Fprintf(&b, "              size=%s\n", quote(string(p.ButtonSize)))
	b.WriteString(`              className="data-[state=open]:bg-sidebar-accent data-[state=open]:text-sidebar-accent-foreground"
            >
              <div className="bg-sidebar-primary text-sidebar-primary-foreground flex aspect-square size-8 items-center justify-center rounded-lg">
                {activeTeam.logo && <activeTeam.logo className="size-4" />}
              </div>
              <div className="grid flex-1 text-left text-sm leading-tight">
                <span className="truncate font-medium">{activeTeam.name}</span>
                <span className="truncate text-xs">{activeTeam.plan}</span>
              </div>
              <ChevronsUpDown className="ml-auto" />
            </SidebarMenuButton>
          </DropdownMenuTrigger>
          <DropdownMenuContent
            className="w-(--radix-dropdown-menu-trigger-width) min-w-56 rounded-lg"
            align="start"
            side={isMobile ? "bottom" : "right"}
            sideOffset={4}
          >
            <DropdownMenuLabel className="text-muted-foreground text-xs">
              Teams
            </DropdownMenuLabel>
            {teams.map((team, index) => (
              <DropdownMenuItem
                key={team.name}
                onClick={() => setActiveTeam(team)}
                className="gap-2 p-2"
              >
                <div className="flex size-6 items-center justify-center rounded-xs border">
                  {team.logo && <team.logo className="size-4 shrink-0" />}
                </div>
                {team.name}
                <DropdownMenuShortcut>⌘{index + 1}</DropdownMenuShortcut>
              </DropdownMenuItem>
            ))}
            <DropdownMenuSeparator />
            <DropdownMenuItem className="gap-2 p-2">
              <div className="bg-background flex size-6 items-center justify-center rounded-md border">
                <Plus className="size-4" />
              </div>
              <div className="text-muted-foreground font-medium">Add team</div>
            </DropdownMenuItem>
          </DropdownMenuContent>
        </DropdownMenu>
      </SidebarMenuItem>
    </SidebarMenu>
  )
}
`)

	return b.String()
}
