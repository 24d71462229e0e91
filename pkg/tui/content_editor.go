package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pluqqy/sidebar-builder/pkg/icons"
	"github.com/pluqqy/sidebar-builder/pkg/models"
	"github.com/pluqqy/sidebar-builder/pkg/store"
)

type contentSection int

const (
	sectionUser contentSection = iota
	sectionTeams
	sectionNav
	sectionProjects
)

var sectionTitles = []string{"User", "Teams", "Navigation", "Projects"}

// formField is one labeled input of the entry form
type formField struct {
	label string
	input textinput.Model
}

// ContentEditorModel edits the content store: the user and the three
// collections, one entry at a time
type ContentEditorModel struct {
	width  int
	height int

	content *store.ContentStore
	section contentSection
	cursor  int

	// inSub is set while the sub-items of the nav entry under the cursor
	// are listed
	inSub     bool
	subCursor int

	// form is non-nil while an entry is being edited
	form      []formField
	formFocus int
	err       error

	deleteConfirm *ConfirmationModel
}

// NewContentEditorModel creates an editor over c
func NewContentEditorModel(c *store.ContentStore) *ContentEditorModel {
	return &ContentEditorModel{
		content:       c,
		deleteConfirm: NewConfirmation(),
	}
}

// SetSize updates the space the editor may use
func (m *ContentEditorModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Editing reports whether keys are captured by the form or a prompt
func (m *ContentEditorModel) Editing() bool {
	return m.form != nil || m.deleteConfirm.Active()
}

// entries returns the display lines of the current section
func (m *ContentEditorModel) entries(c *models.Content) []string {
	var lines []string
	switch m.section {
	case sectionUser:
		lines = []string{
			"Name:   " + c.User.Name,
			"Email:  " + c.User.Email,
			"Avatar: " + c.User.Avatar,
		}
	case sectionTeams:
		for _, t := range c.Teams {
			lines = append(lines, fmt.Sprintf("%s %s  %s", glyphOrBlank(t.IconName), t.Name, DescriptionStyle.Render(t.Plan)))
		}
	case sectionNav:
		for _, item := range c.NavMain {
			line := fmt.Sprintf("%s %s  %s", glyphOrBlank(item.IconName), item.Title, DescriptionStyle.Render(item.URL))
			if item.IsActive {
				line += SuccessStyle.Render("  active")
			}
			if n := len(item.Items); n > 0 {
				line += DescriptionStyle.Render(fmt.Sprintf("  (%d sub-items)", n))
			}
			lines = append(lines, line)
		}
	case sectionProjects:
		for _, p := range c.Projects {
			lines = append(lines, fmt.Sprintf("%s %s  %s", glyphOrBlank(p.IconName), p.Name, DescriptionStyle.Render(p.URL)))
		}
	}
	return lines
}

func glyphOrBlank(name string) string {
	if g, ok := icons.Lookup(name); ok && g != "" {
		return g
	}
	return " "
}

// Update handles the editor's keys
func (m *ContentEditorModel) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.form != nil {
			var cmd tea.Cmd
			m.form[m.formFocus].input, cmd = m.form[m.formFocus].input.Update(msg)
			return cmd
		}
		return nil
	}

	if m.deleteConfirm.Active() {
		return m.deleteConfirm.Update(key)
	}
	if m.form != nil {
		return m.updateForm(key)
	}

	snapshot := m.content.Snapshot()
	count := len(m.entries(snapshot))
	// Resets and reloads can shrink the section under the cursor
	m.cursor = max(min(m.cursor, count-1), 0)

	if m.inSub {
		return m.updateSubItems(key, snapshot)
	}

	switch key.String() {
	case "esc", "q":
		return switchView(mainView)

	case "tab", "right", "l":
		m.section = (m.section + 1) % contentSection(len(sectionTitles))
		m.cursor = 0
		m.err = nil

	case "shift+tab", "left", "h":
		m.section = (m.section + contentSection(len(sectionTitles)) - 1) % contentSection(len(sectionTitles))
		m.cursor = 0
		m.err = nil

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < count-1 {
			m.cursor++
		}

	case "enter":
		if count > 0 {
			return m.openForm(snapshot)
		}

	case "i":
		if m.section == sectionNav && count > 0 {
			m.inSub = true
			m.subCursor = 0
			m.err = nil
		}

	case " ":
		if m.section == sectionNav && m.cursor < len(snapshot.NavMain) {
			active := !snapshot.NavMain[m.cursor].IsActive
			m.err = m.content.UpdateNavItem(m.cursor, models.NavItemPatch{IsActive: &active})
		}

	case "a":
		return m.addEntry()

	case "d":
		if m.section == sectionUser || count == 0 {
			return nil
		}
		index := m.cursor
		section := m.section
		m.deleteConfirm.Show(ConfirmationConfig{
			Message:     fmt.Sprintf("Delete %s entry %d?", strings.ToLower(sectionTitles[section]), index+1),
			Destructive: true,
			Type:        ConfirmTypeInline,
		}, func() tea.Cmd {
			return m.deleteEntry(section, index)
		}, nil)
	}
	return nil
}

func (m *ContentEditorModel) addEntry() tea.Cmd {
	switch m.section {
	case sectionTeams:
		m.content.AddTeam(models.Team{Name: "New Team", IconName: "GalleryVerticalEnd", Plan: "Free"})
		m.cursor = len(m.content.Snapshot().Teams) - 1
	case sectionNav:
		m.content.AddNavItem(models.NavItem{Title: "New Item", URL: "#", IconName: "SquareTerminal"})
		m.cursor = len(m.content.Snapshot().NavMain) - 1
	case sectionProjects:
		m.content.AddProject(models.Project{Name: "New Project", URL: "#", IconName: "Frame"})
		m.cursor = len(m.content.Snapshot().Projects) - 1
	default:
		return nil
	}
	return m.openForm(m.content.Snapshot())
}

func (m *ContentEditorModel) deleteEntry(section contentSection, index int) tea.Cmd {
	var err error
	switch section {
	case sectionTeams:
		err = m.content.RemoveTeam(index)
	case sectionNav:
		err = m.content.RemoveNavItem(index)
	case sectionProjects:
		err = m.content.RemoveProject(index)
	}
	if err != nil {
		m.err = err
		return nil
	}
	if n := len(m.entries(m.content.Snapshot())); m.cursor >= n && n > 0 {
		m.cursor = n - 1
	}
	return statusCmd("✓ Deleted entry")
}

// updateSubItems handles keys while the sub-item list is open
func (m *ContentEditorModel) updateSubItems(key tea.KeyMsg, c *models.Content) tea.Cmd {
	if m.section != sectionNav || m.cursor >= len(c.NavMain) {
		m.inSub = false
		return nil
	}
	items := c.NavMain[m.cursor].Items
	m.subCursor = max(min(m.subCursor, len(items)-1), 0)

	switch key.String() {
	case "esc", "q", "left", "h":
		m.inSub = false
		m.err = nil

	case "up", "k":
		if m.subCursor > 0 {
			m.subCursor--
		}

	case "down", "j":
		if m.subCursor < len(items)-1 {
			m.subCursor++
		}

	case "enter":
		if len(items) > 0 {
			return m.openSubForm(items[m.subCursor])
		}

	case "a":
		sub := models.SubItem{Title: "New Sub-item", URL: "#"}
		if err := m.setSubItems(m.cursor, append(items, sub)); err != nil {
			m.err = err
			return nil
		}
		m.subCursor = len(items)
		return m.openSubForm(sub)

	case "d":
		if len(items) == 0 {
			return nil
		}
		parent, index := m.cursor, m.subCursor
		m.deleteConfirm.Show(ConfirmationConfig{
			Message:     fmt.Sprintf("Delete sub-item %q?", items[index].Title),
			Destructive: true,
			Type:        ConfirmTypeInline,
		}, func() tea.Cmd {
			return m.deleteSubItem(parent, index)
		}, nil)
	}
	return nil
}

// setSubItems replaces the sub-items of one nav entry, leaving its other
// fields alone
func (m *ContentEditorModel) setSubItems(parent int, items []models.SubItem) error {
	return m.content.UpdateNavItem(parent, models.NavItemPatch{Items: &items})
}

func (m *ContentEditorModel) deleteSubItem(parent, index int) tea.Cmd {
	c := m.content.Snapshot()
	if parent >= len(c.NavMain) || index >= len(c.NavMain[parent].Items) {
		m.err = fmt.Errorf("sub-item %d: %w", index+1, store.ErrIndexOutOfRange)
		return nil
	}
	items := slices.Delete(c.NavMain[parent].Items, index, index+1)
	if err := m.setSubItems(parent, items); err != nil {
		m.err = err
		return nil
	}
	if m.subCursor >= len(items) {
		m.subCursor = max(len(items)-1, 0)
	}
	return statusCmd("✓ Deleted sub-item")
}

func newFormField(label, value string) formField {
	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = 120
	input.Width = 40
	input.SetValue(value)
	return formField{label: label, input: input}
}

// openForm builds the form for the entry under the cursor
func (m *ContentEditorModel) openForm(c *models.Content) tea.Cmd {
	if m.cursor < 0 || m.cursor >= len(m.entries(c)) {
		return nil
	}

	switch m.section {
	case sectionUser:
		m.form = []formField{
			newFormField("Name", c.User.Name),
			newFormField("Email", c.User.Email),
			newFormField("Avatar", c.User.Avatar),
		}
	case sectionTeams:
		t := c.Teams[m.cursor]
		m.form = []formField{
			newFormField("Name", t.Name),
			newFormField("Icon", t.IconName),
			newFormField("Plan", t.Plan),
		}
	case sectionNav:
		item := c.NavMain[m.cursor]
		m.form = []formField{
			newFormField("Title", item.Title),
			newFormField("URL", item.URL),
			newFormField("Icon", item.IconName),
		}
	case sectionProjects:
		p := c.Projects[m.cursor]
		m.form = []formField{
			newFormField("Name", p.Name),
			newFormField("URL", p.URL),
			newFormField("Icon", p.IconName),
		}
	}
	if m.section == sectionUser {
		m.formFocus = m.cursor
	} else {
		m.formFocus = 0
	}
	m.err = nil
	return m.form[m.formFocus].input.Focus()
}

func (m *ContentEditorModel) openSubForm(sub models.SubItem) tea.Cmd {
	m.form = []formField{
		newFormField("Title", sub.Title),
		newFormField("URL", sub.URL),
	}
	m.formFocus = 0
	m.err = nil
	return m.form[0].input.Focus()
}

func (m *ContentEditorModel) closeForm() {
	m.form = nil
	m.formFocus = 0
}

func (m *ContentEditorModel) updateForm(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "esc":
		m.closeForm()
		m.err = nil
		return nil

	case "tab", "down":
		m.form[m.formFocus].input.Blur()
		m.formFocus = (m.formFocus + 1) % len(m.form)
		return m.form[m.formFocus].input.Focus()

	case "shift+tab", "up":
		m.form[m.formFocus].input.Blur()
		m.formFocus = (m.formFocus - 1 + len(m.form)) % len(m.form)
		return m.form[m.formFocus].input.Focus()

	case "enter":
		if err := m.saveForm(); err != nil {
			m.err = err
			return nil
		}
		m.closeForm()
		if m.inSub {
			return statusCmd("✓ Saved sub-item")
		}
		return statusCmd("✓ Saved " + strings.ToLower(sectionTitles[m.section]))
	}

	var cmd tea.Cmd
	m.form[m.formFocus].input, cmd = m.form[m.formFocus].input.Update(key)
	return cmd
}

func (m *ContentEditorModel) formValue(i int) string {
	return strings.TrimSpace(m.form[i].input.Value())
}

// saveForm validates the form and applies it as a partial update
func (m *ContentEditorModel) saveForm() error {
	if m.section != sectionUser && m.formValue(0) == "" {
		return models.NewValidationError(strings.ToLower(m.form[0].label), "cannot be empty", nil)
	}
	if m.inSub {
		return m.saveSubForm()
	}

	switch m.section {
	case sectionUser:
		user := models.User{Name: m.formValue(0), Email: m.formValue(1), Avatar: m.formValue(2)}
		if err := models.ValidateContent(&models.Content{User: user}); err != nil {
			return err
		}
		m.content.SetUser(user)
		return nil

	case sectionTeams:
		name, icon, plan := m.formValue(0), m.formValue(1), m.formValue(2)
		return m.content.UpdateTeam(m.cursor, models.TeamPatch{Name: &name, IconName: &icon, Plan: &plan})

	case sectionNav:
		title, url, icon := m.formValue(0), m.formValue(1), m.formValue(2)
		return m.content.UpdateNavItem(m.cursor, models.NavItemPatch{Title: &title, URL: &url, IconName: &icon})

	case sectionProjects:
		name, url, icon := m.formValue(0), m.formValue(1), m.formValue(2)
		return m.content.UpdateProject(m.cursor, models.ProjectPatch{Name: &name, URL: &url, IconName: &icon})
	}
	return nil
}

func (m *ContentEditorModel) saveSubForm() error {
	c := m.content.Snapshot()
	if m.cursor >= len(c.NavMain) || m.subCursor >= len(c.NavMain[m.cursor].Items) {
		return fmt.Errorf("sub-item %d: %w", m.subCursor+1, store.ErrIndexOutOfRange)
	}
	items := c.NavMain[m.cursor].Items
	items[m.subCursor] = models.SubItem{Title: m.formValue(0), URL: m.formValue(1)}
	return m.setSubItems(m.cursor, items)
}

func (m *ContentEditorModel) renderTabs() string {
	parts := make([]string, len(sectionTitles))
	for i, title := range sectionTitles {
		if contentSection(i) == m.section {
			parts[i] = tabActiveStyle.Render(title)
		} else {
			parts[i] = tabInactiveStyle.Render(title)
		}
	}
	return strings.Join(parts, " ")
}

func (m *ContentEditorModel) renderForm() string {
	labelStyle := lipgloss.NewStyle().
		Width(8).
		Foreground(lipgloss.Color(ColorNormal))

	var b strings.Builder
	for i, f := range m.form {
		prefix := "  "
		if i == m.formFocus {
			prefix = CursorStyle.Render("▸ ")
		}
		b.WriteString(prefix + labelStyle.Render(f.label+":") + " " + f.input.View())
		if f.label == "Icon" {
			if name := strings.TrimSpace(f.input.Value()); name != "" && !icons.Known(name) {
				b.WriteString(WarningStyle.Render("  unknown icon, emitted as given"))
			}
		}
		b.WriteString("\n")
	}

	return InputBoxStyle.Render(strings.TrimSuffix(b.String(), "\n"))
}

// View renders the section tabs, the entries and the form
func (m *ContentEditorModel) View() string {
	snapshot := m.content.Snapshot()
	innerWidth := max(m.width-4, 20)

	var content strings.Builder
	content.WriteString(paneHeading("EDIT CONTENT", "", innerWidth, true))
	content.WriteString("\n\n")
	content.WriteString(m.renderTabs())
	content.WriteString("\n\n")

	entries := m.entries(snapshot)
	if len(entries) == 0 {
		content.WriteString(DescriptionStyle.Render("  No entries. Press a to add one."))
		content.WriteString("\n")
	}
	for i, line := range entries {
		switch {
		case i == m.cursor && m.inSub:
			content.WriteString("  " + SelectedStyle.Render(line))
		case i == m.cursor:
			content.WriteString(CursorStyle.Render("▸ ") + line)
		default:
			content.WriteString("  " + NormalStyle.Render(line))
		}
		content.WriteString("\n")
		if i == m.cursor && m.inSub {
			content.WriteString(m.renderSubItems(snapshot))
		}
	}

	if m.form != nil {
		content.WriteString("\n")
		content.WriteString(m.renderForm())
		content.WriteString("\n")
	}
	if m.err != nil {
		content.WriteString("\n")
		content.WriteString(ErrorStyle.Render("✗ " + m.err.Error()))
		content.WriteString("\n")
	}
	if m.deleteConfirm.Active() {
		content.WriteString("\n")
		content.WriteString(m.deleteConfirm.View())
	}

	return ActiveBorderStyle.
		Width(max(m.width-2, 20)).
		Height(max(m.height-2, 3)).
		Padding(0, 1).
		Render(content.String())
}

func (m *ContentEditorModel) renderSubItems(c *models.Content) string {
	if m.cursor >= len(c.NavMain) {
		return ""
	}
	items := c.NavMain[m.cursor].Items
	if len(items) == 0 {
		return DescriptionStyle.Render("      No sub-items. Press a to add one.") + "\n"
	}

	var b strings.Builder
	for i, sub := range items {
		line := fmt.Sprintf("%s  %s", sub.Title, DescriptionStyle.Render(sub.URL))
		if i == m.subCursor {
			b.WriteString("    " + CursorStyle.Render("▸ ") + line)
		} else {
			b.WriteString("      " + NormalStyle.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m *ContentEditorModel) helpItems() []string {
	if m.form != nil {
		return []string{"tab next field", "enter save", "esc cancel"}
	}
	if m.inSub {
		return []string{"↑/↓ sub-item", "enter edit", "a add", "d delete", "esc back"}
	}
	items := []string{"tab section", "↑/↓ entry", "enter edit"}
	if m.section != sectionUser {
		items = append(items, "a add", "d delete")
	}
	if m.section == sectionNav {
		items = append(items, "space active", "i sub-items")
	}
	return append(items, "esc back")
}
