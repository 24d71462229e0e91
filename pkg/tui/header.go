package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pluqqy/sidebar-builder/pkg/models"
)

const logo = `▌ ▘ ▌   ▌
▛▌▌▛▌█▌▛▌▀▌▛▘
▙▘▌▙▌▙▖▙▌█▌▌ builder`

var (
	logoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorBrand)).
			Bold(true)

	tabActiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWhite)).
			Background(lipgloss.Color(ColorActive)).
			Bold(true).
			Padding(0, 1)

	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorNormal)).
				Padding(0, 1)
)

var tabLabels = map[models.Tab]string{
	models.TabPreview: "Preview",
	models.TabCode:    "Code",
}

// renderTabs draws the tab strip with the active tab highlighted
func renderTabs(active models.Tab) string {
	parts := make([]string, 0, len(models.Tabs))
	for _, tab := range models.Tabs {
		if tab == active {
			parts = append(parts, tabActiveStyle.Render(tabLabels[tab]))
		} else {
			parts = append(parts, tabInactiveStyle.Render(tabLabels[tab]))
		}
	}
	return strings.Join(parts, " ")
}

// renderHeader puts the title and tabs on the left and the logo on the right.
// The tabs share the logo's last row.
func renderHeader(width int, title string, active models.Tab) string {
	headerPadding := lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1).
		Width(width)

	logoLines := strings.Split(logo, "\n")
	left := strings.Repeat("\n", len(logoLines)-2) + HeaderStyle.Render(title) + "\n" + renderTabs(active)

	contentWidth := width - 2
	gap := contentWidth - lipgloss.Width(left) - lipgloss.Width(logo)
	if gap < 1 {
		return headerPadding.Render(left)
	}

	return headerPadding.Render(lipgloss.JoinHorizontal(
		lipgloss.Top,
		left,
		strings.Repeat(" ", gap),
		logoStyle.Render(logo),
	))
}

// headerHeight is the number of rows renderHeader uses
func headerHeight() int {
	return strings.Count(logo, "\n") + 1
}
