package preview

import "github.com/charmbracelet/lipgloss"

const (
	colorActive  = "170"
	colorBorder  = "243"
	colorNormal  = "245"
	colorDim     = "241"
	colorText    = "252"
	colorAccent  = "62"
	colorOnBadge = "230"
)

var (
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorDim))

	rowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorText))

	activeRowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorActive)).
			Bold(true)

	subRowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorNormal))

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorDim))

	badgeStyle = lipgloss.NewStyle().
			Background(lipgloss.Color(colorAccent)).
			Foreground(lipgloss.Color(colorOnBadge)).
			Bold(true)

	insetTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorNormal)).
			Bold(true)
)
