package generator

import (
	"fmt"
	"strings"

	"github.com/pluqqy/sidebar-builder/pkg/models"
)

var navUserFixedIcons = []string{"BadgeCheck", "Bell", "ChevronsUpDown", "CreditCard", "LogOut", "Sparkles"}

type navUserParams struct {
	User       models.User
	ButtonSize models.MenuButtonSize
}

// Initials returns the avatar fallback for name: its first two characters,
// uppercased one rune at a time. Shorter names are not padded.
func Initials(name string) string {
	runes := []rune(name)
	if len(runes) > 2 {
		runes = runes[:2]
	}
	return strings.ToUpper(string(runes))
}

func navUser(p navUserParams) string {
	var b strings.Builder

	b.WriteString("\"use client\"\n\n")
	b.WriteString(iconImport(navUserFixedIcons))
	b.WriteString("\n")
	b.WriteString(namedImport("@/components/ui/avatar",
		"Avatar",
		"AvatarFallback",
		"AvatarImage",
	))
	b.WriteString(namedImport("@/components/ui/dropdown-menu",
		"DropdownMenu",
		"DropdownMenuContent",
		"DropdownMenuGroup",
		"DropdownMenuItem",
		"DropdownMenuLabel",
		"DropdownMenuSeparator",
		"DropdownMenuTrigger",
	))
	b.WriteString(namedImport("@/components/ui/sidebar",
		"SidebarMenu",
		"SidebarMenuButton",
		"SidebarMenuItem",
		"useSidebar",
	))
	b.WriteString("\n")

	b.WriteString("const defaultUser = ")
	b.WriteString(literalAt(0, func(l *literal) { l.user(p.User) }))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "const userInitials = %s\n\n", quote(Initials(p.User.Name)))

	b.WriteString(`interface NavUserProps {
  user?: {
    name: string
    email: string
    avatar: string
  }
}

export function NavUser({ user = defaultUser }: NavUserProps) {
  const { isMobile } = useSidebar()

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
              <Avatar className="h-8 w-8 rounded-lg">
                <AvatarImage src={user.avatar} alt={user.name} />
                <AvatarFallback className="rounded-lg">{userInitials}</AvatarFallback>
              </Avatar>
              <div className="grid flex-1 text-left text-sm leading-tight">
                <span className="truncate font-medium">{user.name}</span>
                <span className="truncate text-xs">{user.email}</span>
              </div>
              <ChevronsUpDown className="ml-auto size-4" />
            </SidebarMenuButton>
          </DropdownMenuTrigger>
          <DropdownMenuContent
            className="w-(--radix-dropdown-menu-trigger-width) min-w-56 rounded-lg"
            side={isMobile ? "bottom" : "right"}
            align="end"
            sideOffset={4}
          >
            <DropdownMenuLabel className="p-0 font-normal">
              <div className="flex items-center gap-2 px-1 py-1.5 text-left text-sm">
                <Avatar className="h-8 w-8 rounded-lg">
                  <AvatarImage src={user.avatar} alt={user.name} />
                  <AvatarFallback className="rounded-lg">{userInitials}</AvatarFallback>
                </Avatar>
                <div className="grid flex-1 text-left text-sm leading-tight">
                  <span className="truncate font-medium">{user.name}</span>
                  <span className="truncate text-xs">{user.email}</span>
                </div>
              </div>
            </DropdownMenuLabel>
            <DropdownMenuSeparator />
            <DropdownMenuGroup>
              <DropdownMenuItem>
                <Sparkles />
                Upgrade to Pro
              </DropdownMenuItem>
            </DropdownMenuGroup>
            <DropdownMenuSeparator />
            <DropdownMenuGroup>
              <DropdownMenuItem>
                <BadgeCheck />
                Account
              </DropdownMenuItem>
              <DropdownMenuItem>
                <CreditCard />
                Billing
              </DropdownMenuItem>
              <DropdownMenuItem>
                <Bell />
                Notifications
              </DropdownMenuItem>
            </DropdownMenuGroup>
            <DropdownMenuSeparator />
            <DropdownMenuItem>
              <LogOut />
              Log out
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
