package preview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/pluqqy/sidebar-builder/pkg/generator"
	"github.com/pluqqy/sidebar-builder/pkg/icons"
	"github.com/pluqqy/sidebar-builder/pkg/models"
)

// Options control the interactive state a preview is drawn in
type Options struct {
	Width      int
	Height     int
	Collapsed  bool
	ActiveTeam int
}

// Render draws the sidebar next to a placeholder page area
func Render(settings models.Settings, content *models.Content, opts Options) string {
	if content == nil {
		content = &models.Content{}
	}
	if opts.Width <= 0 {
		opts.Width = defaultWidth
	}

	r := renderer{
		settings: settings,
		content:  content,
		opts:     opts,
		mode:     modeFor(settings.CollapseBehavior, opts.Collapsed),
	}

	var panel string
	switch r.mode {
	case modeExpanded:
		panel = r.panel(PanelWidth(settings, opts.Width))
	case modeIcons:
		panel = r.panel(IconWidth(settings, opts.Width))
	}

	insetWidth := opts.Width - lipgloss.Width(panel)
	inset := r.inset(max(insetWidth, minInsetWidth), lipgloss.Height(panel))

	if panel == "" {
		return inset
	}
	if settings.SidebarPosition == models.PositionRight {
		return lipgloss.JoinHorizontal(lipgloss.Top, inset, panel)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, panel, inset)
}

type renderer struct {
	settings models.Settings
	content  *models.Content
	opts     Options
	mode     panelMode
}

func (r renderer) activeTeam() (models.Team, bool) {
	teams := r.content.Teams
	if len(teams) == 0 {
		return models.Team{}, false
	}
	i := r.opts.ActiveTeam
	if i < 0 || i >= len(teams) {
		i = 0
	}
	return teams[i], true
}

// panelStyle returns the container style for the variant and how many
// columns and rows its frame takes
func (r renderer) panelStyle() lipgloss.Style {
	style := lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1)
	switch r.settings.SidebarVariant {
	case models.VariantFloating:
		style = style.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colorBorder))
	case models.VariantInset:
		// The page area carries the frame instead.
	default:
		left := r.settings.SidebarPosition == models.PositionRight
		style = style.
			Border(lipgloss.NormalBorder(), false, !left, false, left).
			BorderForeground(lipgloss.Color(colorBorder))
	}
	return style
}

func (r renderer) panel(width int) string {
	style := r.panelStyle()
	inner := width - style.GetHorizontalFrameSize()
	if inner < 1 {
		inner = 1
	}

	var top []string
	if r.settings.ShowHeader {
		top = append(top, r.header(inner)...)
		top = append(top, r.groupGap()...)
	}
	top = append(top, r.navMain(inner)...)
	top = append(top, r.groupGap()...)
	top = append(top, r.projects(inner)...)

	var bottom []string
	if r.settings.ShowFooter {
		bottom = r.footer(inner)
	}

	lines := fit(top, bottom, r.opts.Height-style.GetVerticalFrameSize())
	return style.Width(width - style.GetHorizontalBorderSize()).Render(strings.Join(lines, "\n"))
}

// fit pins bottom to the last rows of an area height tall. A height of zero
// or less means unbounded.
func fit(top, bottom []string, height int) []string {
	if height <= 0 {
		return append(append([]string{}, top...), bottom...)
	}
	room := height - len(bottom)
	if room < 0 {
		room = 0
	}
	if len(top) > room {
		top = top[:room]
	}
	lines := append([]string{}, top...)
	for len(lines) < room {
		lines = append(lines, "")
	}
	lines = append(lines, bottom...)
	if len(lines) > height {
		lines = lines[len(lines)-height:]
	}
	return lines
}

func (r renderer) groupGap() []string {
	if r.settings.MenuButtonSize == models.ButtonSizeSmall {
		return nil
	}
	return []string{""}
}

func (r renderer) rowGap() []string {
	if r.settings.MenuButtonSize == models.ButtonSizeLarge {
		return []string{""}
	}
	return nil
}

// row lays out an optional glyph, a label and a right-aligned suffix
func (r renderer) row(width int, iconName, label, suffix string, style lipgloss.Style) string {
	glyph := ""
	if r.settings.ShowIcons || r.mode == modeIcons {
		glyph = icons.Resolve(iconName)
	}

	if r.mode == modeIcons {
		return style.Render(glyph)
	}

	text := label
	if r.settings.ShowIcons {
		if glyph == "" {
			glyph = " "
		}
		text = glyph + " " + label
	}

	if suffix == "" {
		return style.Render(truncate.StringWithTail(text, uint(width), "…"))
	}
	room := width - lipgloss.Width(suffix) - 1
	if room < 1 {
		return style.Render(truncate.StringWithTail(text, uint(width), "…"))
	}
	text = truncate.StringWithTail(text, uint(room), "…")
	pad := width - lipgloss.Width(text) - lipgloss.Width(suffix)
	return style.Render(text + strings.Repeat(" ", max(pad, 1)) + suffix)
}

func (r renderer) header(width int) []string {
	team, ok := r.activeTeam()
	if !ok {
		return nil
	}

	badge := badgeStyle.Render(" " + padGlyph(icons.Resolve(team.IconName)) + " ")
	if r.mode == modeIcons {
		return []string{badge}
	}

	switcher := icons.Resolve("ChevronsUpDown")
	room := width - lipgloss.Width(badge) - lipgloss.Width(switcher) - 2
	name := truncate.StringWithTail(team.Name, uint(max(room, 1)), "…")
	pad := max(width-lipgloss.Width(badge)-1-lipgloss.Width(name)-lipgloss.Width(switcher), 1)

	lines := []string{
		badge + " " + activeRowStyle.Render(name) + strings.Repeat(" ", pad) + subtleStyle.Render(switcher),
	}
	if team.Plan != "" && r.settings.MenuButtonSize != models.ButtonSizeSmall {
		indent := strings.Repeat(" ", lipgloss.Width(badge)+1)
		lines = append(lines, indent+subtleStyle.Render(truncate.StringWithTail(team.Plan, uint(max(width-len(indent), 1)), "…")))
	}
	return lines
}

func (r renderer) label(text string) []string {
	if !r.settings.ShowSectionLabels || r.mode == modeIcons {
		return nil
	}
	return []string{labelStyle.Render(text)}
}

func (r renderer) navMain(width int) []string {
	lines := r.label(platformLabel)
	for i, item := range r.content.NavMain {
		if i > 0 {
			lines = append(lines, r.rowGap()...)
		}

		open := item.IsActive && len(item.Items) > 0
		suffix := ""
		if len(item.Items) > 0 {
			suffix = icons.Resolve("ChevronRight")
			if open {
				suffix = "▾"
			}
		}
		style := rowStyle
		if item.IsActive {
			style = activeRowStyle
		}
		lines = append(lines, r.row(width, item.IconName, item.Title, suffix, style))

		if !open || r.mode == modeIcons {
			continue
		}
		for _, sub := range item.Items {
			text := truncate.StringWithTail("│ "+sub.Title, uint(max(width-2, 1)), "…")
			lines = append(lines, "  "+subRowStyle.Render(text))
		}
	}
	return lines
}

func (r renderer) projects(width int) []string {
	lines := r.label(projectsLabel)
	for i, p := range r.content.Projects {
		if i > 0 {
			lines = append(lines, r.rowGap()...)
		}
		lines = append(lines, r.row(width, p.IconName, p.Name, "", rowStyle))
	}
	lines = append(lines, r.rowGap()...)
	lines = append(lines, r.row(width, "MoreHorizontal", "More", "", subtleStyle))
	return lines
}

func (r renderer) footer(width int) []string {
	user := r.content.User
	badge := badgeStyle.Render(" " + padInitials(generator.Initials(user.Name)) + " ")
	if r.mode == modeIcons {
		return []string{badge}
	}

	room := max(width-lipgloss.Width(badge)-1, 1)
	lines := []string{
		badge + " " + rowStyle.Render(truncate.StringWithTail(user.Name, uint(room), "…")),
	}
	if user.Email != "" && r.settings.MenuButtonSize != models.ButtonSizeSmall {
		indent := strings.Repeat(" ", lipgloss.Width(badge)+1)
		lines = append(lines, indent+subtleStyle.Render(truncate.StringWithTail(user.Email, uint(room), "…")))
	}
	return lines
}

func (r renderer) inset(width, height int) string {
	style := lipgloss.NewStyle().Padding(0, 1)
	if r.settings.SidebarVariant == models.VariantInset {
		style = style.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colorBorder))
	}

	inner := max(width-style.GetHorizontalFrameSize(), 1)
	lines := []string{insetTitleStyle.Render(truncate.StringWithTail("Page content", uint(inner), "…"))}
	if r.settings.EnableKeyboardShortcuts {
		hint := "ctrl+b toggles the sidebar"
		if r.settings.CollapseBehavior == models.CollapseNone {
			hint = "sidebar is not collapsible"
		}
		lines = append(lines, subtleStyle.Render(truncate.StringWithTail(hint, uint(inner), "…")))
	}

	h := height
	if r.opts.Height > 0 {
		h = r.opts.Height
	}
	h -= style.GetVerticalFrameSize()
	for len(lines) < h {
		lines = append(lines, "")
	}

	return style.Width(width - style.GetHorizontalBorderSize()).Render(strings.Join(lines, "\n"))
}

func padGlyph(glyph string) string {
	if glyph == "" {
		return " "
	}
	return glyph
}

func padInitials(initials string) string {
	if initials == "" {
		return "?"
	}
	return initials
}
