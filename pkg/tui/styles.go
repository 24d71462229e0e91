package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color constants
const (
	ColorActive   = "170" // Purple/magenta for active elements
	ColorInactive = "240" // Gray for inactive elements
	ColorSelected = "236" // Dark gray for background selection
	ColorNormal   = "245" // Light gray for normal text
	ColorDim      = "241"
	ColorWarning  = "214" // Orange for headings and warnings
	ColorDanger   = "196"
	ColorSuccess  = "28"
	ColorWhite    = "255"
	ColorDark     = "235"
	ColorBrand    = "205" // Pink for the header
)

var (
	ActiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorActive))

	InactiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorInactive))

	SelectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorActive)).
			Background(lipgloss.Color(ColorSelected)).
			Bold(true)

	NormalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorNormal))

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorWarning))

	DirHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorDim))

	ColonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorInactive))

	ContentPaddingStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				PaddingRight(1)

	DescriptionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorDim))

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDanger))

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSuccess))

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWarning))

	CursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorActive)).
			Bold(true)

	StatusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230")).
			Padding(0, 1)

	InputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorActive)).
			Padding(0, 1)

	HelpBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorInactive))

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorActive))

	helpDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorNormal))
)

// GetTokenBadgeStyle picks a badge color for an artifact's token estimate.
// Generated components are small, so the thresholds are low.
func GetTokenBadgeStyle(tokenCount int) lipgloss.Style {
	switch GetTokenStatus(tokenCount) {
	case "good":
		return lipgloss.NewStyle().
			Background(lipgloss.Color(ColorSuccess)).
			Foreground(lipgloss.Color(ColorWhite)).
			Padding(0, 1).
			Bold(true)
	case "warning":
		return lipgloss.NewStyle().
			Background(lipgloss.Color(ColorWarning)).
			Foreground(lipgloss.Color(ColorDark)).
			Padding(0, 1).
			Bold(true)
	default:
		return lipgloss.NewStyle().
			Background(lipgloss.Color(ColorDanger)).
			Foreground(lipgloss.Color(ColorWhite)).
			Padding(0, 1).
			Bold(true)
	}
}

// GetTokenStatus buckets a token count
func GetTokenStatus(tokenCount int) string {
	if tokenCount < 2000 {
		return "good"
	} else if tokenCount < 8000 {
		return "warning"
	}
	return "danger"
}

// GetActiveHeaderStyle colors a pane heading by focus
func GetActiveHeaderStyle(isActive bool) lipgloss.Style {
	color := ColorInactive
	if isActive {
		color = ColorActive
	}
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(color))
}

// paneHeading renders "TITLE ::::: suffix" filling width
func paneHeading(title, suffix string, width int, active bool) string {
	colons := width - lipgloss.Width(title) - lipgloss.Width(suffix) - 2
	if suffix == "" {
		colons++
	}
	if colons < 3 {
		colons = 3
	}
	line := GetActiveHeaderStyle(active).Render(title) + " " + ColonStyle.Render(strings.Repeat(":", colons))
	if suffix != "" {
		line += " " + suffix
	}
	return line
}

// formatHelpText joins "key description" pairs into one help line
func formatHelpText(items []string) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		key, desc, found := strings.Cut(item, " ")
		if !found {
			parts = append(parts, helpKeyStyle.Render(item))
			continue
		}
		parts = append(parts, helpKeyStyle.Render(key)+" "+helpDescStyle.Render(desc))
	}
	return strings.Join(parts, DescriptionStyle.Render(" • "))
}

// renderHelp draws the bordered help pane under a view
func renderHelp(width int, items []string) string {
	return HelpBorderStyle.
		Width(max(width-2, 10)).
		Padding(0, 1).
		Render(formatHelpText(items))
}
