package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"

	"github.com/pluqqy/sidebar-builder/pkg/models"
	"github.com/pluqqy/sidebar-builder/pkg/utils"
)

// copyToClipboard is replaced in tests
var copyToClipboard = clipboard.WriteAll

const fileListWidth = 32

// CodeViewerModel shows the generated files: a list grouped by directory
// on the left and the active file's source on the right
type CodeViewerModel struct {
	width  int
	height int

	files  []models.CodeFile
	active int

	highlightStyle string
	showStats      bool
	markdown       *markdownRenderer
	renderMarkdown bool

	viewport viewport.Model
	// renderedKey identifies what the viewport currently holds
	renderedKey string
}

// NewCodeViewerModel creates an empty code viewer
func NewCodeViewerModel(highlightStyle, markdownStyle string, showStats bool) *CodeViewerModel {
	return &CodeViewerModel{
		highlightStyle: highlightStyle,
		showStats:      showStats,
		markdown:       newMarkdownRenderer(markdownStyle),
		viewport:       viewport.New(80, 20),
	}
}

// SetFiles replaces the file set. The active file is kept when its path is
// still present, otherwise the first file becomes active.
func (m *CodeViewerModel) SetFiles(files []models.CodeFile) {
	var activePath string
	if m.active < len(m.files) {
		activePath = m.files[m.active].Path
	}

	m.files = files
	m.active = 0
	for i, f := range files {
		if f.Path == activePath {
			m.active = i
			break
		}
	}
	m.renderedKey = ""
	m.refresh()
}

// SetSize updates the space the viewer may use
func (m *CodeViewerModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = max(m.sourceWidth()-4, 10)
	m.viewport.Height = max(height-4, 3)
	m.renderedKey = ""
	m.refresh()
}

// Active returns the file shown in the source pane
func (m *CodeViewerModel) Active() (models.CodeFile, bool) {
	if m.active < 0 || m.active >= len(m.files) {
		return models.CodeFile{}, false
	}
	return m.files[m.active], true
}

func (m *CodeViewerModel) sourceWidth() int {
	return m.width - fileListWidth - 5
}

// Update handles the viewer's keys
func (m *CodeViewerModel) Update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		if m.active > 0 {
			m.active--
			m.viewport.GotoTop()
			m.refresh()
		}
		return nil

	case "down", "j":
		if m.active < len(m.files)-1 {
			m.active++
			m.viewport.GotoTop()
			m.refresh()
		}
		return nil

	case "m":
		if f, ok := m.Active(); ok && f.Language() == "markdown" {
			m.renderMarkdown = !m.renderMarkdown
			m.refresh()
		}
		return nil

	case "y":
		return m.copyActive()
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return cmd
}

func (m *CodeViewerModel) copyActive() tea.Cmd {
	f, ok := m.Active()
	if !ok {
		return nil
	}
	content := f.Content
	path := f.Path
	return func() tea.Msg {
		if err := copyToClipboard(content); err != nil {
			return StatusMsg(fmt.Sprintf("✗ Failed to copy %s: %v", path, err))
		}
		return StatusMsg(fmt.Sprintf("✓ Copied %s to clipboard", path))
	}
}

// refresh re-renders the active file into the viewport when needed
func (m *CodeViewerModel) refresh() {
	f, ok := m.Active()
	if !ok {
		m.viewport.SetContent("")
		return
	}

	asMarkdown := m.renderMarkdown && f.Language() == "markdown"
	key := fmt.Sprintf("%s|%t|%d|%d", f.Path, asMarkdown, m.viewport.Width, len(f.Content))
	if key == m.renderedKey {
		return
	}
	m.renderedKey = key

	var body string
	if asMarkdown {
		rendered, err := m.markdown.Render(f.Content, m.viewport.Width)
		if err != nil {
			body = ErrorStyle.Render("Failed to render markdown: "+err.Error()) + "\n\n" + f.Content
		} else {
			body = rendered
		}
	} else {
		body = highlight(f, m.highlightStyle)
	}

	width := m.viewport.Width
	m.viewport.SetContent(wrap.String(wordwrap.String(body, width), width))
}

// fileList renders the directory-grouped list of files
func (m *CodeViewerModel) fileList(width int) string {
	var b strings.Builder
	currentDir := "\x00"
	for i, f := range m.files {
		dir := f.Dir()
		if dir != currentDir {
			if currentDir != "\x00" {
				b.WriteString("\n")
			}
			label := dir + "/"
			if dir == "" {
				label = "./"
			}
			b.WriteString(DirHeaderStyle.Render(label))
			b.WriteString("\n")
			currentDir = dir
		}

		name := truncate.StringWithTail(f.Name, uint(max(width-4, 1)), "…")
		if i == m.active {
			b.WriteString(SelectedStyle.Render("▸ " + name))
		} else {
			b.WriteString(NormalStyle.Render("  " + name))
		}
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// statsBadge summarizes the active file and the whole set
func (m *CodeViewerModel) statsBadge() string {
	f, ok := m.Active()
	if !ok || !m.showStats {
		return ""
	}
	stats := utils.StatsFor(f)
	total := utils.Total(utils.Stats(m.files))
	return DescriptionStyle.Render(utils.FormatLineCount(stats.Lines)+" ") +
		GetTokenBadgeStyle(stats.Tokens).Render(utils.FormatTokenCount(stats.Tokens)) +
		DescriptionStyle.Render(fmt.Sprintf(" of %s", utils.FormatTokenCount(total.Tokens)))
}

// View renders both panes
func (m *CodeViewerModel) View() string {
	if len(m.files) == 0 {
		return DescriptionStyle.Render("No files generated")
	}

	contentHeight := max(m.height-2, 3)

	listContent := paneHeading("FILES", "", fileListWidth-2, false) + "\n\n" + m.fileList(fileListWidth-2)
	left := InactiveBorderStyle.
		Width(fileListWidth).
		Height(contentHeight).
		Padding(0, 1).
		Render(listContent)

	f, _ := m.Active()
	title := f.Path
	if m.renderMarkdown && f.Language() == "markdown" {
		title += " (rendered)"
	}
	rightWidth := max(m.sourceWidth(), 20)
	sourceContent := paneHeading(strings.ToUpper(title), m.statsBadge(), rightWidth-2, true) + "\n\n" + m.viewport.View()
	right := ActiveBorderStyle.
		Width(rightWidth).
		Height(contentHeight).
		Padding(0, 1).
		Render(sourceContent)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

// helpItems lists the viewer's keys for the help pane
func (m *CodeViewerModel) helpItems() []string {
	items := []string{"↑/↓ file", "pgup/pgdn scroll", "y copy"}
	if f, ok := m.Active(); ok && f.Language() == "markdown" {
		items = append(items, "m toggle markdown")
	}
	return items
}
