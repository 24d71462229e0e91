package preview

import (
	"math"
	"strconv"
	"strings"

	"github.com/pluqqy/sidebar-builder/pkg/models"
)

const (
	defaultWidth    = 80
	minPanelWidth   = 18
	minIconWidth    = 5
	maxIconWidth    = 10
	minInsetWidth   = 12
	columnsPerRem   = 1.75
	pixelsPerColumn = 8
)

// panelMode is how the sidebar panel is drawn
type panelMode int

const (
	modeExpanded panelMode = iota
	modeIcons
	modeHidden
)

func modeFor(behavior models.CollapseBehavior, collapsed bool) panelMode {
	if !collapsed {
		return modeExpanded
	}
	switch behavior {
	case models.CollapseIcon:
		return modeIcons
	case models.CollapseOffcanvas:
		return modeHidden
	}
	return modeExpanded
}

// cssColumns converts a CSS length into terminal columns. Relative units
// resolve against available.
func cssColumns(value string, unit models.WidthUnit, available int) int {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || v <= 0 {
		return 0
	}

	var cols float64
	switch unit {
	case models.UnitPx:
		cols = v / pixelsPerColumn
	case models.UnitRem, models.UnitEm:
		cols = v * columnsPerRem
	case models.UnitPercent, models.UnitVw:
		cols = float64(available) * v / 100
	}
	return int(math.Round(cols))
}

// PanelWidth returns the expanded panel width in columns for a terminal
// area of the given width.
func PanelWidth(settings models.Settings, available int) int {
	if available <= 0 {
		available = defaultWidth
	}
	w := cssColumns(settings.SidebarWidthValue, settings.SidebarWidthUnit, available)
	return clamp(w, minPanelWidth, max(minPanelWidth, available-minInsetWidth))
}

// IconWidth returns the collapsed icon-strip width in columns
func IconWidth(settings models.Settings, available int) int {
	if available <= 0 {
		available = defaultWidth
	}
	w := cssColumns(settings.SidebarMobileWidthValue, settings.SidebarMobileWidthUnit, available)
	return clamp(w, minIconWidth, maxIconWidth)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
