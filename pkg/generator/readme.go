package generator

import (
	"fmt"
	"strings"

	"github.com/pluqqy/sidebar-builder/pkg/models"
)

// contentSummary is the part of the content the README describes
type contentSummary struct {
	UserName  string
	UserEmail string
	Teams     []string
	NavTitles []string
	Projects  []string
}

func summarize(c *models.Content) contentSummary {
	s := contentSummary{
		UserName:  c.User.Name,
		UserEmail: c.User.Email,
	}
	for _, t := range c.Teams {
		s.Teams = append(s.Teams, t.Name)
	}
	for _, item := range c.NavMain {
		s.NavTitles = append(s.NavTitles, item.Title)
	}
	for _, p := range c.Projects {
		s.Projects = append(s.Projects, p.Name)
	}
	return s
}

type readmeParams struct {
	Settings models.Settings
	Summary  contentSummary
}

const (
	shortcutsEnabledText  = "The sidebar can be toggled with Cmd+B (Mac) or Ctrl+B (Windows)."
	shortcutsDisabledText = "Keyboard shortcuts are disabled for this sidebar."
)

func readme(p readmeParams) string {
	s := p.Settings
	var b strings.Builder

	b.WriteString("# Custom Sidebar Component\n\n")
	b.WriteString("This package contains a customized sidebar component built with shadcn/ui.\n\n")

	b.WriteString("## Installation\n\n")
	b.WriteString("1. Make sure you have shadcn/ui installed in your project.\n")
	b.WriteString("2. Copy these files to your project.\n")
	b.WriteString("3. Import the CSS variables in your global CSS file:\n\n")
	b.WriteString("```css\n/* In your globals.css */\n@import \"./styles/sidebar-variables.css\";\n```\n\n")
	b.WriteString("4. Use the `AppSidebar` component in your layout.\n\n")

	b.WriteString("## Configuration\n\n")
	b.WriteString("The sidebar has been configured with the following settings:\n\n")
	fmt.Fprintf(&b, "- Position: %s\n", s.SidebarPosition)
	fmt.Fprintf(&b, "- Variant: %s\n", s.SidebarVariant)
	fmt.Fprintf(&b, "- Collapse Behavior: %s\n", s.CollapseBehavior)
	fmt.Fprintf(&b, "- Width: %s\n", s.SidebarWidth)
	fmt.Fprintf(&b, "- Mobile Width: %s\n", s.SidebarMobileWidth)
	fmt.Fprintf(&b, "- Default Open: %t\n", s.DefaultOpen)
	fmt.Fprintf(&b, "- Keyboard Shortcuts: %t\n", s.EnableKeyboardShortcuts)
	fmt.Fprintf(&b, "- Show Header: %t\n", s.ShowHeader)
	fmt.Fprintf(&b, "- Show Footer: %t\n", s.ShowFooter)
	fmt.Fprintf(&b, "- Show Icons: %t\n", s.ShowIcons)
	fmt.Fprintf(&b, "- Show Section Labels: %t\n", s.ShowSectionLabels)
	fmt.Fprintf(&b, "- Menu Button Size: %s\n\n", s.MenuButtonSize)

	b.WriteString("## Content\n\n")
	fmt.Fprintf(&b, "- User: %s\n", userLine(p.Summary))
	fmt.Fprintf(&b, "- Teams: %s\n", listOrNone(p.Summary.Teams))
	fmt.Fprintf(&b, "- Navigation: %s\n", listOrNone(p.Summary.NavTitles))
	fmt.Fprintf(&b, "- Projects: %s\n\n", listOrNone(p.Summary.Projects))

	b.WriteString("## Usage\n\n")
	b.WriteString("See the example in `examples/example-usage.tsx`:\n\n")
	b.WriteString("```tsx\n")
	b.WriteString("import { SidebarProvider } from \"@/components/ui/sidebar\"\n")
	b.WriteString("import { AppSidebar } from \"@/components/app-sidebar\"\n\n")
	b.WriteString("export default function Layout({ children }: { children: React.ReactNode }) {\n")
	b.WriteString("  return (\n")
	fmt.Fprintf(&b, "    %s\n", providerTag(exampleParams{DefaultOpen: s.DefaultOpen, KeyboardShortcuts: s.EnableKeyboardShortcuts}))
	b.WriteString("      <div className=\"flex h-screen\">\n")
	b.WriteString("        <AppSidebar />\n")
	b.WriteString("        <main className=\"flex-1 p-4 overflow-auto\">\n")
	b.WriteString("          {children}\n")
	b.WriteString("        </main>\n")
	b.WriteString("      </div>\n")
	b.WriteString("    </SidebarProvider>\n")
	b.WriteString("  )\n")
	b.WriteString("}\n")
	b.WriteString("```\n\n")

	b.WriteString("## Keyboard Shortcuts\n\n")
	if s.EnableKeyboardShortcuts {
		b.WriteString(shortcutsEnabledText)
	} else {
		b.WriteString(shortcutsDisabledText)
	}
	b.WriteString("\n\n")

	b.WriteString("## Customization\n\n")
	b.WriteString("You can customize the sidebar further by modifying the component files directly. ")
	b.WriteString("The components are modular and can be edited independently.\n\n")

	b.WriteString("## Components\n\n")
	b.WriteString("- `app-sidebar.tsx`: The main sidebar component that brings everything together\n")
	b.WriteString("- `nav-main.tsx`: The main navigation menu\n")
	b.WriteString("- `nav-projects.tsx`: The projects navigation menu\n")
	b.WriteString("- `nav-user.tsx`: The user profile component\n")
	b.WriteString("- `team-switcher.tsx`: The team switcher component\n")
	b.WriteString("- `sidebar-variables.css`: CSS variables for sidebar width and other properties\n")
	b.WriteString("- `example-usage.tsx`: A layout showing how to mount the sidebar\n")

	return b.String()
}

func userLine(s contentSummary) string {
	switch {
	case s.UserName == "" && s.UserEmail == "":
		return "none"
	case s.UserEmail == "":
		return s.UserName
	case s.UserName == "":
		return s.UserEmail
	}
	return fmt.Sprintf("%s (%s)", s.UserName, s.UserEmail)
}

func listOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}
