// Package examples provides ready-made content presets for the sidebar.
package examples

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pluqqy/sidebar-builder/pkg/models"
)

// Preset is a named content dataset
type Preset struct {
	Name        string
	Description string
	build       func() *models.Content
}

// Content returns a fresh copy of the preset's content
func (p Preset) Content() *models.Content {
	return p.build()
}

var presets = map[string]Preset{
	"default": {
		Name:        "default",
		Description: "The stock shadcn sidebar: three teams, four navigation groups, three projects",
		build:       models.DefaultContent,
	},
	"docs": {
		Name:        "docs",
		Description: "A documentation site with guides, API reference and community links",
		build:       docsContent,
	},
	"dashboard": {
		Name:        "dashboard",
		Description: "An analytics dashboard with reports, customers and billing",
		build:       dashboardContent,
	},
	"minimal": {
		Name:        "minimal",
		Description: "A single team and a flat navigation without sub-items",
		build:       minimalContent,
	},
}

// Names returns preset names sorted alphabetically
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns every preset ordered by name
func All() []Preset {
	out := make([]Preset, 0, len(presets))
	for _, name := range Names() {
		out = append(out, presets[name])
	}
	return out
}

// Get looks up a preset by name, ignoring case
func Get(name string) (Preset, error) {
	p, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Preset{}, fmt.Errorf("unknown preset %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return p, nil
}
