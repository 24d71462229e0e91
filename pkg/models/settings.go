package models

import (
	"strconv"
	"strings"
)

// SidebarPosition is the side of the viewport the sidebar is attached to
type SidebarPosition string

const (
	PositionLeft  SidebarPosition = "left"
	PositionRight SidebarPosition = "right"
)

// SidebarVariant selects the visual container style
type SidebarVariant string

const (
	VariantSidebar  SidebarVariant = "sidebar"
	VariantFloating SidebarVariant = "floating"
	VariantInset    SidebarVariant = "inset"
)

// CollapseBehavior controls what happens when the sidebar is closed
type CollapseBehavior string

const (
	CollapseOffcanvas CollapseBehavior = "offcanvas"
	CollapseIcon      CollapseBehavior = "icon"
	CollapseNone      CollapseBehavior = "none"
)

// MenuButtonSize is the size passed to every menu button
type MenuButtonSize string

const (
	ButtonSizeDefault MenuButtonSize = "default"
	ButtonSizeSmall   MenuButtonSize = "sm"
	ButtonSizeLarge   MenuButtonSize = "lg"
)

// WidthUnit is the CSS unit of a width value
type WidthUnit string

const (
	UnitPx      WidthUnit = "px"
	UnitRem     WidthUnit = "rem"
	UnitEm      WidthUnit = "em"
	UnitPercent WidthUnit = "%"
	UnitVw      WidthUnit = "vw"
)

// Tab is the builder view currently shown
type Tab string

const (
	TabPreview Tab = "preview"
	TabCode    Tab = "code"
)

// Enumerations in declaration order, used by validation and by the editors
// to cycle through values.
var (
	SidebarPositions  = []SidebarPosition{PositionLeft, PositionRight}
	SidebarVariants   = []SidebarVariant{VariantSidebar, VariantFloating, VariantInset}
	CollapseBehaviors = []CollapseBehavior{CollapseOffcanvas, CollapseIcon, CollapseNone}
	MenuButtonSizes   = []MenuButtonSize{ButtonSizeDefault, ButtonSizeSmall, ButtonSizeLarge}
	WidthUnits        = []WidthUnit{UnitPx, UnitRem, UnitEm, UnitPercent, UnitVw}
	Tabs              = []Tab{TabPreview, TabCode}
)

// Settings is the builder configuration. SidebarWidth and SidebarMobileWidth
// are derived from their value/unit pairs and are never set directly.
type Settings struct {
	SidebarPosition SidebarPosition `yaml:"sidebar_position" json:"sidebarPosition" validate:"oneof=left right"`
	SidebarVariant  SidebarVariant  `yaml:"sidebar_variant" json:"sidebarVariant" validate:"oneof=sidebar floating inset"`

	SidebarWidth      string    `yaml:"sidebar_width" json:"sidebarWidth"`
	SidebarWidthValue string    `yaml:"sidebar_width_value" json:"sidebarWidthValue" validate:"required,numeric"`
	SidebarWidthUnit  WidthUnit `yaml:"sidebar_width_unit" json:"sidebarWidthUnit" validate:"width_unit"`

	SidebarMobileWidth      string    `yaml:"sidebar_mobile_width" json:"sidebarMobileWidth"`
	SidebarMobileWidthValue string    `yaml:"sidebar_mobile_width_value" json:"sidebarMobileWidthValue" validate:"required,numeric"`
	SidebarMobileWidthUnit  WidthUnit `yaml:"sidebar_mobile_width_unit" json:"sidebarMobileWidthUnit" validate:"width_unit"`

	CollapseBehavior        CollapseBehavior `yaml:"collapse_behavior" json:"collapseBehavior" validate:"oneof=offcanvas icon none"`
	DefaultOpen             bool             `yaml:"default_open" json:"defaultOpen"`
	EnableKeyboardShortcuts bool             `yaml:"enable_keyboard_shortcuts" json:"enableKeyboardShortcuts"`

	ShowHeader        bool `yaml:"show_header" json:"showHeader"`
	ShowFooter        bool `yaml:"show_footer" json:"showFooter"`
	ShowIcons         bool `yaml:"show_icons" json:"showIcons"`
	ShowSectionLabels bool `yaml:"show_section_labels" json:"showSectionLabels"`

	MenuButtonSize MenuButtonSize `yaml:"menu_button_size" json:"menuButtonSize" validate:"oneof=default sm lg"`
	ActiveTab      Tab            `yaml:"active_tab" json:"activeTab" validate:"oneof=preview code"`
}

// DefaultSettings returns the default builder configuration
func DefaultSettings() Settings {
	s := Settings{
		SidebarPosition:         PositionLeft,
		SidebarVariant:          VariantSidebar,
		SidebarWidthValue:       "16",
		SidebarWidthUnit:        UnitRem,
		SidebarMobileWidthValue: "4",
		SidebarMobileWidthUnit:  UnitRem,
		CollapseBehavior:        CollapseIcon,
		DefaultOpen:             true,
		EnableKeyboardShortcuts: true,
		ShowHeader:              true,
		ShowFooter:              true,
		ShowIcons:               true,
		ShowSectionLabels:       true,
		MenuButtonSize:          ButtonSizeDefault,
		ActiveTab:               TabPreview,
	}
	s.Normalize()
	return s
}

// ComposeWidth joins a width value and unit into a CSS length
func ComposeWidth(value string, unit WidthUnit) string {
	return strings.TrimSpace(value) + string(unit)
}

// Normalize recomputes the composed width strings from their value/unit pairs
func (s *Settings) Normalize() {
	s.SidebarWidth = ComposeWidth(s.SidebarWidthValue, s.SidebarWidthUnit)
	s.SidebarMobileWidth = ComposeWidth(s.SidebarMobileWidthValue, s.SidebarMobileWidthUnit)
}

// SettingFields lists the names accepted by Settings.Field, in display order
var SettingFields = []string{
	"sidebar_position",
	"sidebar_variant",
	"sidebar_width_value",
	"sidebar_width_unit",
	"sidebar_mobile_width_value",
	"sidebar_mobile_width_unit",
	"collapse_behavior",
	"default_open",
	"enable_keyboard_shortcuts",
	"show_header",
	"show_footer",
	"show_icons",
	"show_section_labels",
	"menu_button_size",
	"active_tab",
}

// Field returns the string form of a setting by its yaml name
func (s Settings) Field(name string) (string, bool) {
	switch name {
	case "sidebar_position":
		return string(s.SidebarPosition), true
	case "sidebar_variant":
		return string(s.SidebarVariant), true
	case "sidebar_width":
		return s.SidebarWidth, true
	case "sidebar_width_value":
		return s.SidebarWidthValue, true
	case "sidebar_width_unit":
		return string(s.SidebarWidthUnit), true
	case "sidebar_mobile_width":
		return s.SidebarMobileWidth, true
	case "sidebar_mobile_width_value":
		return s.SidebarMobileWidthValue, true
	case "sidebar_mobile_width_unit":
		return string(s.SidebarMobileWidthUnit), true
	case "collapse_behavior":
		return string(s.CollapseBehavior), true
	case "default_open":
		return strconv.FormatBool(s.DefaultOpen), true
	case "enable_keyboard_shortcuts":
		return strconv.FormatBool(s.EnableKeyboardShortcuts), true
	case "show_header":
		return strconv.FormatBool(s.ShowHeader), true
	case "show_footer":
		return strconv.FormatBool(s.ShowFooter), true
	case "show_icons":
		return strconv.FormatBool(s.ShowIcons), true
	case "show_section_labels":
		return strconv.FormatBool(s.ShowSectionLabels), true
	case "menu_button_size":
		return string(s.MenuButtonSize), true
	case "active_tab":
		return string(s.ActiveTab), true
	}
	return "", false
}

// IsValidPosition reports whether p is a known sidebar position
func IsValidPosition(p SidebarPosition) bool { return containsValue(SidebarPositions, p) }

// IsValidVariant reports whether v is a known sidebar variant
func IsValidVariant(v SidebarVariant) bool { return containsValue(SidebarVariants, v) }

// IsValidCollapseBehavior reports whether c is a known collapse behavior
func IsValidCollapseBehavior(c CollapseBehavior) bool { return containsValue(CollapseBehaviors, c) }

// IsValidButtonSize reports whether b is a known menu button size
func IsValidButtonSize(b MenuButtonSize) bool { return containsValue(MenuButtonSizes, b) }

// IsValidWidthUnit reports whether u is a supported CSS unit
func IsValidWidthUnit(u WidthUnit) bool { return containsValue(WidthUnits, u) }

// IsValidTab reports whether t is a known builder tab
func IsValidTab(t Tab) bool { return containsValue(Tabs, t) }

func containsValue[T comparable](values []T, v T) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

// Next returns the value following current in values, wrapping around.
// Unknown values start over at the first element.
func Next[T comparable](values []T, current T) T {
	for i, v := range values {
		if v == current {
			return values[(i+1)%len(values)]
		}
	}
	return values[0]
}

// Prev returns the value preceding current in values, wrapping around
func Prev[T comparable](values []T, current T) T {
	for i, v := range values {
		if v == current {
			return values[(i-1+len(values))%len(values)]
		}
	}
	return values[0]
}
