package store

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/pluqqy/sidebar-builder/internal/logger"
	"github.com/pluqqy/sidebar-builder/pkg/models"
)

// SettingsStore owns the builder settings. Every setter replaces one field,
// keeps the composed widths in step with their value/unit pairs, notifies
// listeners and queues a save.
type SettingsStore struct {
	mu        sync.RWMutex
	settings  models.Settings
	listeners listeners[models.Settings]
	saver     *saver[models.Settings]
	log       *logger.Logger
}

// NewSettingsStore creates a store holding initial. Invalid initial values
// are replaced by the defaults.
func NewSettingsStore(initial models.Settings, opts ...Option) *SettingsStore {
	o := buildOptions(opts)

	initial.Normalize()
	if err := models.ValidateSettings(initial); err != nil {
		o.log.Warn(fmt.Sprintf("ignoring stored settings: %v", err))
		initial = models.DefaultSettings()
	}

	s := &SettingsStore{settings: initial, log: o.log}
	if o.settingsPersister != nil {
		s.saver = newSaver(o.settingsPersister.SaveSettings, o.log)
	}
	return s
}

// Snapshot returns a copy of the current settings
func (s *SettingsStore) Snapshot() models.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// Subscribe registers fn to run after every change. The returned func removes it.
func (s *SettingsStore) Subscribe(fn func(models.Settings)) func() {
	return s.listeners.add(fn)
}

// Close flushes pending saves and returns the last save error
func (s *SettingsStore) Close() error {
	if s.saver == nil {
		return nil
	}
	return s.saver.close()
}

func (s *SettingsStore) update(apply func(*models.Settings)) {
	s.mu.Lock()
	next := s.settings
	apply(&next)
	next.Normalize()
	s.settings = next
	if s.saver != nil {
		s.saver.submit(next)
	}
	s.mu.Unlock()

	s.listeners.notify(next)
}

func invalid(field string, value any, allowed string) error {
	return models.NewValidationError(field, fmt.Sprintf("%q is not one of %s", fmt.Sprint(value), allowed), nil)
}

// SetSidebarPosition sets which side the sidebar is attached to
func (s *SettingsStore) SetSidebarPosition(p models.SidebarPosition) error {
	if !models.IsValidPosition(p) {
		return invalid("sidebar_position", p, "left, right")
	}
	s.update(func(st *models.Settings) { st.SidebarPosition = p })
	return nil
}

// SetSidebarVariant sets the container style
func (s *SettingsStore) SetSidebarVariant(v models.SidebarVariant) error {
	if !models.IsValidVariant(v) {
		return invalid("sidebar_variant", v, "sidebar, floating, inset")
	}
	s.update(func(st *models.Settings) { st.SidebarVariant = v })
	return nil
}

// SetSidebarWidthValue sets the numeric part of the sidebar width
func (s *SettingsStore) SetSidebarWidthValue(v string) error {
	v = strings.TrimSpace(v)
	if err := models.ValidateWidthValue("sidebar_width_value", v); err != nil {
		return err
	}
	s.update(func(st *models.Settings) { st.SidebarWidthValue = v })
	return nil
}

// SetSidebarWidthUnit sets the unit of the sidebar width
func (s *SettingsStore) SetSidebarWidthUnit(u models.WidthUnit) error {
	if !models.IsValidWidthUnit(u) {
		return invalid("sidebar_width_unit", u, "px, rem, em, %, vw")
	}
	s.update(func(st *models.Settings) { st.SidebarWidthUnit = u })
	return nil
}

// SetSidebarMobileWidthValue sets the numeric part of the collapsed width
func (s *SettingsStore) SetSidebarMobileWidthValue(v string) error {
	v = strings.TrimSpace(v)
	if err := models.ValidateWidthValue("sidebar_mobile_width_value", v); err != nil {
		return err
	}
	s.update(func(st *models.Settings) { st.SidebarMobileWidthValue = v })
	return nil
}

// SetSidebarMobileWidthUnit sets the unit of the collapsed width
func (s *SettingsStore) SetSidebarMobileWidthUnit(u models.WidthUnit) error {
	if !models.IsValidWidthUnit(u) {
		return invalid("sidebar_mobile_width_unit", u, "px, rem, em, %, vw")
	}
	s.update(func(st *models.Settings) { st.SidebarMobileWidthUnit = u })
	return nil
}

// SetCollapseBehavior sets what closing the sidebar does
func (s *SettingsStore) SetCollapseBehavior(c models.CollapseBehavior) error {
	if !models.IsValidCollapseBehavior(c) {
		return invalid("collapse_behavior", c, "offcanvas, icon, none")
	}
	s.update(func(st *models.Settings) { st.CollapseBehavior = c })
	return nil
}

// SetMenuButtonSize sets the size of every menu button
func (s *SettingsStore) SetMenuButtonSize(b models.MenuButtonSize) error {
	if !models.IsValidButtonSize(b) {
		return invalid("menu_button_size", b, "default, sm, lg")
	}
	s.update(func(st *models.Settings) { st.MenuButtonSize = b })
	return nil
}

// SetActiveTab switches the builder view
func (s *SettingsStore) SetActiveTab(t models.Tab) error {
	if !models.IsValidTab(t) {
		return invalid("active_tab", t, "preview, code")
	}
	s.update(func(st *models.Settings) { st.ActiveTab = t })
	return nil
}

func (s *SettingsStore) SetDefaultOpen(v bool) {
	s.update(func(st *models.Settings) { st.DefaultOpen = v })
}

func (s *SettingsStore) SetEnableKeyboardShortcuts(v bool) {
	s.update(func(st *models.Settings) { st.EnableKeyboardShortcuts = v })
}

func (s *SettingsStore) SetShowHeader(v bool) {
	s.update(func(st *models.Settings) { st.ShowHeader = v })
}

func (s *SettingsStore) SetShowFooter(v bool) {
	s.update(func(st *models.Settings) { st.ShowFooter = v })
}

func (s *SettingsStore) SetShowIcons(v bool) {
	s.update(func(st *models.Settings) { st.ShowIcons = v })
}

func (s *SettingsStore) SetShowSectionLabels(v bool) {
	s.update(func(st *models.Settings) { st.ShowSectionLabels = v })
}

// Set assigns a field by its yaml name from its string form. The composed
// width fields are derived and cannot be set.
func (s *SettingsStore) Set(field, value string) error {
	value = strings.TrimSpace(value)

	boolSetter := map[string]func(bool){
		"default_open":              s.SetDefaultOpen,
		"enable_keyboard_shortcuts": s.SetEnableKeyboardShortcuts,
		"show_header":               s.SetShowHeader,
		"show_footer":               s.SetShowFooter,
		"show_icons":                s.SetShowIcons,
		"show_section_labels":       s.SetShowSectionLabels,
	}
	if set, ok := boolSetter[field]; ok {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return models.NewValidationError(field, fmt.Sprintf("%q is not a boolean", value), err)
		}
		set(b)
		return nil
	}

	switch field {
	case "sidebar_position":
		return s.SetSidebarPosition(models.SidebarPosition(value))
	case "sidebar_variant":
		return s.SetSidebarVariant(models.SidebarVariant(value))
	case "sidebar_width_value":
		return s.SetSidebarWidthValue(value)
	case "sidebar_width_unit":
		return s.SetSidebarWidthUnit(models.WidthUnit(value))
	case "sidebar_mobile_width_value":
		return s.SetSidebarMobileWidthValue(value)
	case "sidebar_mobile_width_unit":
		return s.SetSidebarMobileWidthUnit(models.WidthUnit(value))
	case "collapse_behavior":
		return s.SetCollapseBehavior(models.CollapseBehavior(value))
	case "menu_button_size":
		return s.SetMenuButtonSize(models.MenuButtonSize(value))
	case "active_tab":
		return s.SetActiveTab(models.Tab(value))
	case "sidebar_width", "sidebar_mobile_width":
		return models.NewValidationError(field, "derived from its value and unit; set those instead", nil)
	}
	return models.NewValidationError(field, "unknown setting", nil)
}

// Replace swaps in a whole settings record after validating it
func (s *SettingsStore) Replace(next models.Settings) error {
	next.Normalize()
	if err := models.ValidateSettings(next); err != nil {
		return err
	}
	s.update(func(st *models.Settings) { *st = next })
	return nil
}

// Reset restores the default settings
func (s *SettingsStore) Reset() {
	s.update(func(st *models.Settings) { *st = models.DefaultSettings() })
}
