package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pluqqy/sidebar-builder/pkg/models"
	"github.com/pluqqy/sidebar-builder/pkg/preview"
)

// PreviewModel holds the interactive state of the live preview: whether
// the panel is collapsed and which team is selected
type PreviewModel struct {
	width  int
	height int

	collapsed   bool
	activeTeam  int
	defaultOpen bool
}

// NewPreviewModel starts collapsed when the sidebar is not open by default
func NewPreviewModel(settings models.Settings) *PreviewModel {
	return &PreviewModel{
		collapsed:   !settings.DefaultOpen,
		defaultOpen: settings.DefaultOpen,
	}
}

// SetSize updates the space the preview may use
func (m *PreviewModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Sync adjusts the interactive state after a settings or content change
func (m *PreviewModel) Sync(settings models.Settings, content *models.Content) {
	if settings.DefaultOpen != m.defaultOpen {
		m.defaultOpen = settings.DefaultOpen
		m.collapsed = !settings.DefaultOpen
	}
	if m.activeTeam >= len(content.Teams) {
		m.activeTeam = 0
	}
}

// Update handles the preview's keys. It reports whether the key was used.
func (m *PreviewModel) Update(msg tea.KeyMsg, settings models.Settings, content *models.Content) (bool, tea.Cmd) {
	switch msg.String() {
	case "ctrl+b":
		if !settings.EnableKeyboardShortcuts {
			return true, statusCmd("Keyboard shortcuts are disabled in the settings")
		}
		if settings.CollapseBehavior == models.CollapseNone {
			return true, statusCmd("The sidebar is not collapsible")
		}
		m.collapsed = !m.collapsed
		return true, nil

	case "]":
		if n := len(content.Teams); n > 0 {
			m.activeTeam = (m.activeTeam + 1) % n
		}
		return true, nil

	case "[":
		if n := len(content.Teams); n > 0 {
			m.activeTeam = (m.activeTeam - 1 + n) % n
		}
		return true, nil
	}
	return false, nil
}

// View renders the sidebar preview
func (m *PreviewModel) View(settings models.Settings, content *models.Content) string {
	return preview.Render(settings, content, preview.Options{
		Width:      m.width,
		Height:     m.height,
		Collapsed:  m.collapsed,
		ActiveTeam: m.activeTeam,
	})
}

func (m *PreviewModel) helpItems(settings models.Settings) []string {
	items := []string{"[/] team"}
	if settings.EnableKeyboardShortcuts && settings.CollapseBehavior != models.CollapseNone {
		items = append(items, "ctrl+b collapse")
	}
	return items
}
