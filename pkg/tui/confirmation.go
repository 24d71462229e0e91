package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmationType defines the visual style of the confirmation
type ConfirmationType int

const (
	ConfirmTypeInline ConfirmationType = iota // Single line under the view
	ConfirmTypeDialog                         // Bordered box over the view
)

// ConfirmationConfig holds the configuration for a confirmation prompt
type ConfirmationConfig struct {
	Title       string
	Message     string
	Warning     string   // shown in orange
	Details     []string // bullet lines under the warning
	Destructive bool     // Yes is red, No is green
	Type        ConfirmationType
	Width       int
}

// ConfirmationModel asks a yes/no question and runs the matching callback
type ConfirmationModel struct {
	active    bool
	config    ConfirmationConfig
	onConfirm func() tea.Cmd
	onCancel  func() tea.Cmd
}

// NewConfirmation creates a new confirmation model
func NewConfirmation() *ConfirmationModel {
	return &ConfirmationModel{}
}

// Show activates the confirmation with the given configuration
func (m *ConfirmationModel) Show(config ConfirmationConfig, onConfirm, onCancel func() tea.Cmd) {
	m.active = true
	m.config = config
	m.onConfirm = onConfirm
	m.onCancel = onCancel
}

// Active returns whether the confirmation is currently shown
func (m *ConfirmationModel) Active() bool {
	return m.active
}

// Update handles key events for the confirmation. Any other key is swallowed.
func (m *ConfirmationModel) Update(msg tea.KeyMsg) tea.Cmd {
	if !m.active {
		return nil
	}

	switch msg.String() {
	case "y", "Y":
		m.active = false
		if m.onConfirm != nil {
			return m.onConfirm()
		}
	case "n", "N", "esc":
		m.active = false
		if m.onCancel != nil {
			return m.onCancel()
		}
	}
	return nil
}

// View renders the confirmation based on its type
func (m *ConfirmationModel) View() string {
	if !m.active {
		return ""
	}
	if m.config.Type == ConfirmTypeDialog {
		return m.renderDialog()
	}
	return m.renderInline()
}

func (m *ConfirmationModel) renderInline() string {
	message := fmt.Sprintf("%s %s", m.config.Message, formatConfirmOptions(m.config.Destructive))
	if m.config.Width > 0 && lipgloss.Width(message) < m.config.Width {
		return lipgloss.NewStyle().Width(m.config.Width).Align(lipgloss.Center).Render(message)
	}
	return message
}

func (m *ConfirmationModel) renderDialog() string {
	width := m.config.Width
	if width == 0 {
		width = 60
	}
	inner := width - 4
	center := lipgloss.NewStyle().Width(inner).Align(lipgloss.Center)

	var b strings.Builder
	if m.config.Title != "" {
		b.WriteString(center.Render(HeaderStyle.Render(m.config.Title)))
		b.WriteString("\n\n")
	}
	if m.config.Message != "" {
		b.WriteString(center.Render(m.config.Message))
		b.WriteString("\n")
	}
	if m.config.Warning != "" {
		b.WriteString("\n")
		b.WriteString(center.Render(WarningStyle.Render(m.config.Warning)))
		b.WriteString("\n")
	}
	if len(m.config.Details) > 0 {
		b.WriteString("\n")
		for _, detail := range m.config.Details {
			b.WriteString(NormalStyle.Render("  • " + detail))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(center.Render(formatConfirmOptions(m.config.Destructive)))

	return ActiveBorderStyle.
		Width(width).
		Padding(1, 1).
		Render(b.String())
}

// formatConfirmOptions renders "[y] yes [n] no" colored for the action's risk
func formatConfirmOptions(destructive bool) string {
	yes, no := SuccessStyle, NormalStyle
	if destructive {
		yes, no = ErrorStyle.Bold(true), SuccessStyle
	}
	return yes.Render("[y] yes") + "  " + no.Render("[n] no")
}
