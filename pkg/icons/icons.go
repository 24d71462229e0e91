// Package icons maps Lucide icon names to glyphs the terminal can draw.
package icons

import (
	_ "embed"
	"encoding/json"
	"sort"
	"strings"
)

//go:embed icons.json
var iconsJSON []byte

// glyphs is keyed by the Lucide component name, e.g. "SquareTerminal"
var glyphs map[string]string

func init() {
	if err := json.Unmarshal(iconsJSON, &glyphs); err != nil {
		panic("icons: failed to parse embedded icons: " + err.Error())
	}
}

// Resolve returns the glyph for name, or "" when the name is unknown
func Resolve(name string) string {
	return glyphs[name]
}

// Lookup returns the glyph for name and whether it is known
func Lookup(name string) (string, bool) {
	g, ok := glyphs[name]
	return g, ok
}

// Known reports whether name has a glyph
func Known(name string) bool {
	_, ok := glyphs[name]
	return ok
}

// Names returns every known icon name in sorted order
func Names() []string {
	names := make([]string, 0, len(glyphs))
	for name := range glyphs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Filter returns the known names containing query, case-insensitively
func Filter(query string) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return Names()
	}
	var out []string
	for _, name := range Names() {
		if strings.Contains(strings.ToLower(name), query) {
			out = append(out, name)
		}
	}
	return out
}
