package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pluqqy/sidebar-builder/pkg/models"
	"github.com/pluqqy/sidebar-builder/pkg/store"
)

type fieldKind int

const (
	fieldEnum fieldKind = iota
	fieldBool
	fieldText
)

// settingRow is one editable line of the settings editor
type settingRow struct {
	section string
	field   string
	label   string
	comment string
	kind    fieldKind
	values  []string
}

func enumStrings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

var settingRows = []settingRow{
	{section: "LAYOUT", field: "sidebar_position", label: "Position", kind: fieldEnum, values: enumStrings(models.SidebarPositions),
		comment: "Which side of the page the sidebar is attached to"},
	{section: "LAYOUT", field: "sidebar_variant", label: "Variant", kind: fieldEnum, values: enumStrings(models.SidebarVariants),
		comment: "sidebar is flush, floating is detached, inset frames the page"},
	{section: "LAYOUT", field: "sidebar_width_value", label: "Width", kind: fieldText,
		comment: "Numeric width of the expanded sidebar"},
	{section: "LAYOUT", field: "sidebar_width_unit", label: "Width Unit", kind: fieldEnum, values: enumStrings(models.WidthUnits)},
	{section: "LAYOUT", field: "sidebar_mobile_width_value", label: "Mobile Width", kind: fieldText,
		comment: "Width when collapsed to icons and on mobile"},
	{section: "LAYOUT", field: "sidebar_mobile_width_unit", label: "Mobile Unit", kind: fieldEnum, values: enumStrings(models.WidthUnits)},
	{section: "BEHAVIOR", field: "collapse_behavior", label: "Collapse", kind: fieldEnum, values: enumStrings(models.CollapseBehaviors),
		comment: "offcanvas slides away, icon keeps a rail, none stays open"},
	{section: "BEHAVIOR", field: "default_open", label: "Default Open", kind: fieldBool},
	{section: "BEHAVIOR", field: "enable_keyboard_shortcuts", label: "Keyboard Shortcut", kind: fieldBool,
		comment: "Cmd+B / Ctrl+B toggles the sidebar (ctrl+b in the preview)"},
	{section: "VISIBILITY", field: "show_header", label: "Header", kind: fieldBool},
	{section: "VISIBILITY", field: "show_footer", label: "Footer", kind: fieldBool},
	{section: "VISIBILITY", field: "show_icons", label: "Icons", kind: fieldBool},
	{section: "VISIBILITY", field: "show_section_labels", label: "Section Labels", kind: fieldBool},
	{section: "MENU", field: "menu_button_size", label: "Button Size", kind: fieldEnum, values: enumStrings(models.MenuButtonSizes)},
}

// SettingsEditorModel edits the settings store in place. Every change is
// applied immediately so the preview follows along.
type SettingsEditorModel struct {
	width  int
	height int

	settings *store.SettingsStore
	cursor   int

	editing bool
	input   textinput.Model
	err     error

	resetConfirm *ConfirmationModel
}

// NewSettingsEditorModel creates an editor over s
func NewSettingsEditorModel(s *store.SettingsStore) *SettingsEditorModel {
	input := textinput.New()
	input.CharLimit = 8
	input.Width = 8
	input.Prompt = ""

	return &SettingsEditorModel{
		settings:     s,
		input:        input,
		resetConfirm: NewConfirmation(),
	}
}

// SetSize updates the space the editor may use
func (m *SettingsEditorModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Editing reports whether a text field has focus
func (m *SettingsEditorModel) Editing() bool {
	return m.editing || m.resetConfirm.Active()
}

func (m *SettingsEditorModel) current() settingRow {
	return settingRows[m.cursor]
}

// Update handles the editor's keys
func (m *SettingsEditorModel) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.editing {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return cmd
		}
		return nil
	}

	if m.resetConfirm.Active() {
		return m.resetConfirm.Update(key)
	}

	if m.editing {
		return m.updateEditing(key)
	}

	row := m.current()
	switch key.String() {
	case "esc", "q":
		return switchView(mainView)

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		m.err = nil

	case "down", "j":
		if m.cursor < len(settingRows)-1 {
			m.cursor++
		}
		m.err = nil

	case "left", "h":
		if row.kind == fieldEnum {
			m.cycle(row, -1)
		}

	case "right", "l":
		if row.kind == fieldEnum {
			m.cycle(row, 1)
		}

	case " ", "enter":
		switch row.kind {
		case fieldBool:
			value, _ := m.settings.Snapshot().Field(row.field)
			current, _ := strconv.ParseBool(value)
			m.apply(row.field, strconv.FormatBool(!current))
		case fieldEnum:
			m.cycle(row, 1)
		case fieldText:
			value, _ := m.settings.Snapshot().Field(row.field)
			m.input.SetValue(value)
			m.input.CursorEnd()
			m.editing = true
			return m.input.Focus()
		}

	case "R":
		m.resetConfirm.Show(ConfirmationConfig{
			Message:     "Reset all settings to their defaults?",
			Destructive: true,
			Type:        ConfirmTypeInline,
		}, func() tea.Cmd {
			m.settings.Reset()
			return statusCmd("✓ Settings reset to defaults")
		}, nil)
	}
	return nil
}

func (m *SettingsEditorModel) updateEditing(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "esc":
		m.editing = false
		m.input.Blur()
		m.err = nil
		return nil
	case "enter":
		if m.apply(m.current().field, m.input.Value()) {
			m.editing = false
			m.input.Blur()
		}
		return nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)
	return cmd
}

func (m *SettingsEditorModel) cycle(row settingRow, delta int) {
	value, _ := m.settings.Snapshot().Field(row.field)
	idx := 0
	for i, v := range row.values {
		if v == value {
			idx = i
			break
		}
	}
	n := len(row.values)
	m.apply(row.field, row.values[(idx+delta+n)%n])
}

// apply sets a field and keeps the validation error for display
func (m *SettingsEditorModel) apply(field, value string) bool {
	m.err = m.settings.Set(field, value)
	return m.err == nil
}

// View renders the settings form
func (m *SettingsEditorModel) View() string {
	labelStyle := lipgloss.NewStyle().
		Width(20).
		Foreground(lipgloss.Color(ColorNormal))
	commentStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)).
		Italic(true)
	valueStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWhite))

	snapshot := m.settings.Snapshot()
	innerWidth := max(m.width-4, 20)

	var content strings.Builder
	content.WriteString(paneHeading("EDIT SETTINGS", "", innerWidth, true))
	content.WriteString("\n")

	section := ""
	for i, row := range settingRows {
		if row.section != section {
			section = row.section
			content.WriteString("\n")
			content.WriteString(HeaderStyle.Render(section))
			content.WriteString("\n")
		}

		value, _ := snapshot.Field(row.field)
		var rendered string
		switch row.kind {
		case fieldBool:
			rendered = "[ ]"
			if value == "true" {
				rendered = "[✓]"
			}
		case fieldEnum:
			rendered = "‹ " + value + " ›"
		case fieldText:
			rendered = value
			if m.editing && i == m.cursor {
				rendered = m.input.View()
			}
		}

		line := labelStyle.Render(row.label+":") + " " + valueStyle.Render(rendered)
		if i == m.cursor {
			content.WriteString(CursorStyle.Render("▸ ") + line)
		} else {
			content.WriteString("  " + line)
		}
		content.WriteString("\n")

		if i == m.cursor && row.comment != "" {
			content.WriteString(commentStyle.Render("    # " + row.comment))
			content.WriteString("\n")
		}
	}

	content.WriteString("\n")
	content.WriteString(DescriptionStyle.Render(fmt.Sprintf("Width %s, mobile %s", snapshot.SidebarWidth, snapshot.SidebarMobileWidth)))
	if m.err != nil {
		content.WriteString("\n")
		content.WriteString(ErrorStyle.Render("✗ " + m.err.Error()))
	}
	if m.resetConfirm.Active() {
		content.WriteString("\n\n")
		content.WriteString(m.resetConfirm.View())
	}

	return ActiveBorderStyle.
		Width(max(m.width-2, 20)).
		Height(max(m.height-2, 3)).
		Padding(0, 1).
		Render(content.String())
}

func (m *SettingsEditorModel) helpItems() []string {
	if m.editing {
		return []string{"enter apply", "esc cancel"}
	}
	return []string{"↑/↓ field", "←/→ change", "space toggle", "enter edit", "R reset", "esc back"}
}
