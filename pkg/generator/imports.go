package generator

import (
	"strings"

	"github.com/pluqqy/sidebar-builder/pkg/models"
)

const iconModule = "lucide-react"

// uniqueIcons drops empty names and keeps the first occurrence of each name
func uniqueIcons(names ...string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

// mergeIcons returns the fixed names followed by the content names that are
// not already among them
func mergeIcons(fixed []string, content []string) []string {
	return uniqueIcons(append(append([]string(nil), fixed...), content...)...)
}

func teamIcons(teams []models.Team) []string {
	names := make([]string, 0, len(teams))
	for _, t := range teams {
		names = append(names, t.IconName)
	}
	return uniqueIcons(names...)
}

func navIcons(items []models.NavItem) []string {
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.IconName)
	}
	return uniqueIcons(names...)
}

func projectIcons(projects []models.Project) []string {
	names := make([]string, 0, len(projects))
	for _, p := range projects {
		names = append(names, p.IconName)
	}
	return uniqueIcons(names...)
}

// namedImport renders one combined import statement. Short lists stay on a
// single line. An empty list renders nothing.
func namedImport(module string, names ...string) string {
	if len(names) == 0 {
		return ""
	}
	if len(names) <= 2 {
		return "import { " + strings.Join(names, ", ") + " } from " + quote(module) + "\n"
	}
	var b strings.Builder
	b.WriteString("import {\n")
	for _, name := range names {
		b.WriteString("  ")
		b.WriteString(name)
		b.WriteString(",\n")
	}
	b.WriteString("} from ")
	b.WriteString(quote(module))
	b.WriteByte('\n')
	return b.String()
}

// iconImport renders the lucide-react import, with optional type-only names
// appended after the icons
func iconImport(icons []string, types ...string) string {
	names := append([]string(nil), icons...)
	for _, t := range types {
		names = append(names, "type "+t)
	}
	return namedImport(iconModule, names...)
}
