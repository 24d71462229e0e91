package generator

import (
	"fmt"
	"strings"
)

type stylesheetParams struct {
	Width          string
	CollapsedWidth string
}

func stylesheet(p stylesheetParams) string {
	var b strings.Builder

	b.WriteString(":root {\n")
	fmt.Fprintf(&b, "  --sidebar-width: %s;\n", p.Width)
	fmt.Fprintf(&b, "  --sidebar-width-collapsed: %s;\n", p.CollapsedWidth)
	b.WriteString(`}

/* Override the default sidebar width with the configured values */
[data-sidebar-main] {
  width: var(--sidebar-width) !important;
  transition: width 0.3s ease;
}

[data-sidebar-main][data-state="closed"] {
  width: var(--sidebar-width-collapsed) !important;
}

/* Icon-only mode */
[data-sidebar-main][data-collapsible="icon"][data-state="closed"] {
  width: var(--sidebar-width-collapsed) !important;
}
`)

	return b.String()
}

type exampleParams struct {
	DefaultOpen       bool
	KeyboardShortcuts bool
}

// providerTag renders the opening SidebarProvider element shared by the
// usage example and the README
func providerTag(p exampleParams) string {
	tag := fmt.Sprintf("<SidebarProvider defaultOpen={%t}", p.DefaultOpen)
	if p.KeyboardShortcuts {
		tag += " enableKeyboardShortcut"
	}
	return tag + ">"
}

func exampleUsage(p exampleParams) string {
	var b strings.Builder

	b.WriteString(`"use client"

import { SidebarProvider } from "@/components/ui/sidebar"
import { AppSidebar } from "@/components/app-sidebar"

export default function Layout({ children }: { children: React.ReactNode }) {
  return (
`)
	fmt.Fprintf(&b, "    %s\n", providerTag(p))
	b.WriteString(`      <div className="flex h-screen">
        <AppSidebar />
        <main className="flex-1 p-4 overflow-auto">
          {children}
        </main>
      </div>
    </SidebarProvider>
  )
}
`)

	return b.String()
}
