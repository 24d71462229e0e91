// Package tui is the interactive sidebar builder: a live preview, the
// generated code and editors for the settings and content.
package tui

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pluqqy/sidebar-builder/internal/config"
	"github.com/pluqqy/sidebar-builder/internal/logger"
	"github.com/pluqqy/sidebar-builder/internal/watcher"
	"github.com/pluqqy/sidebar-builder/pkg/files"
	"github.com/pluqqy/sidebar-builder/pkg/generator"
	"github.com/pluqqy/sidebar-builder/pkg/models"
	"github.com/pluqqy/sidebar-builder/pkg/store"
)

type sessionState int

const (
	mainView sessionState = iota
	settingsEditorView
	contentEditorView
)

const statusTimeout = 4 * time.Second

// Options configures the App
type Options struct {
	Config config.Config
	Logger *logger.Logger
	// DisableWatch turns off reloading of externally edited state files
	DisableWatch bool
}

// App is the root bubbletea model
type App struct {
	state  sessionState
	width  int
	height int

	cfg config.Config
	log *logger.Logger

	settings *store.SettingsStore
	content  *store.ContentStore
	cache    *generator.Cache
	files    []models.CodeFile
	dirty    bool
	lastEdit time.Time
	unsub    []func()

	preview        *PreviewModel
	code           *CodeViewerModel
	settingsEditor *SettingsEditorModel
	contentEditor  *ContentEditorModel
	resetConfirm   *ConfirmationModel

	watcher *watcher.Watcher
	changes <-chan watcher.Change

	statusMsg string
	statusSeq int
}

// NewApp loads the state files and wires the stores, the generator cache
// and the state file watcher
func NewApp(opts Options) (*App, error) {
	log := opts.Logger.With("tui")

	settings, err := files.ReadSettings()
	if err != nil {
		return nil, err
	}
	content, err := files.ReadContent()
	if err != nil {
		return nil, err
	}

	storeOpts := []store.Option{store.WithLogger(opts.Logger.With("store"))}
	if files.ProjectExists() {
		storeOpts = append(storeOpts,
			store.WithSettingsPersister(files.Persister{}),
			store.WithContentPersister(files.Persister{}),
		)
	}

	a := &App{
		cfg:          opts.Config,
		log:          log,
		settings:     store.NewSettingsStore(settings, storeOpts...),
		content:      store.NewContentStore(content, storeOpts...),
		cache:        generator.NewCache(generator.DefaultCacheExpiration, generator.DefaultCleanupInterval),
		preview:      NewPreviewModel(settings),
		code:         NewCodeViewerModel(opts.Config.UI.HighlightStyle, opts.Config.UI.MarkdownStyle, opts.Config.UI.ShowStats),
		resetConfirm: NewConfirmation(),
	}
	a.settingsEditor = NewSettingsEditorModel(a.settings)
	a.contentEditor = NewContentEditorModel(a.content)

	markDirty := func() {
		a.dirty = true
		a.lastEdit = time.Now()
	}
	a.unsub = append(a.unsub,
		a.settings.Subscribe(func(models.Settings) { markDirty() }),
		a.content.Subscribe(func(*models.Content) { markDirty() }),
	)
	a.regenerate()

	if !opts.DisableWatch && files.ProjectExists() {
		if err := a.startWatcher(); err != nil {
			log.Error(err, "state file watcher disabled")
		}
	}

	log.Info("builder started")
	return a, nil
}

func (a *App) startWatcher() error {
	w, err := watcher.New(watcher.Config{
		Dir:         files.ProjectDir,
		Files:       []string{files.SettingsFile, files.ContentFile},
		DebounceDur: a.cfg.Watch.Debounce,
		Logger:      a.log,
	})
	if err != nil {
		return err
	}
	changes, err := w.Start()
	if err != nil {
		w.Stop()
		return err
	}
	a.watcher = w
	a.changes = changes
	return nil
}

// regenerate rebuilds the artifact set from the current snapshots
func (a *App) regenerate() {
	settings := a.settings.Snapshot()
	content := a.content.Snapshot()
	a.files = a.cache.Generate(settings, content)
	a.code.SetFiles(a.files)
	a.preview.Sync(settings, content)
	a.dirty = false
}

// Files returns the artifacts for the current state
func (a *App) Files() []models.CodeFile {
	return a.files
}

// Close stops the watcher and waits for pending saves
func (a *App) Close() error {
	if a.watcher != nil {
		a.watcher.Stop()
		a.watcher = nil
	}
	for _, unsub := range a.unsub {
		unsub()
	}
	a.unsub = nil

	var errs []error
	if err := a.settings.Close(); err != nil {
		errs = append(errs, fmt.Errorf("saving settings: %w", err))
	}
	if err := a.content.Close(); err != nil {
		errs = append(errs, fmt.Errorf("saving content: %w", err))
	}
	return errors.Join(errs...)
}

func (a *App) Init() tea.Cmd {
	if a.changes != nil {
		return waitForChange(a.changes)
	}
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := a.update(msg)
	if a.dirty {
		a.regenerate()
	}
	return a, cmd
}

func (a *App) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.layout()
		return nil

	case StatusMsg:
		a.statusSeq++
		a.statusMsg = string(msg)
		seq := a.statusSeq
		return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{seq: seq} })

	case clearStatusMsg:
		if msg.seq == a.statusSeq {
			a.statusMsg = ""
		}
		return nil

	case SwitchViewMsg:
		a.state = msg.view
		a.layout()
		return nil

	case stateChangedMsg:
		a.reloadState(msg.change)
		return waitForChange(a.changes)

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return tea.Quit
		}
		return a.handleKey(msg)
	}

	switch a.state {
	case settingsEditorView:
		return a.settingsEditor.Update(msg)
	case contentEditorView:
		return a.contentEditor.Update(msg)
	}
	return nil
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch a.state {
	case settingsEditorView:
		return a.settingsEditor.Update(msg)
	case contentEditorView:
		return a.contentEditor.Update(msg)
	}

	if a.resetConfirm.Active() {
		return a.resetConfirm.Update(msg)
	}

	settings := a.settings.Snapshot()
	switch msg.String() {
	case "q":
		return tea.Quit

	case "tab":
		next := models.Next(models.Tabs, settings.ActiveTab)
		if err := a.settings.SetActiveTab(next); err != nil {
			return statusCmd("✗ " + err.Error())
		}
		a.layout()
		return nil

	case "s":
		return switchView(settingsEditorView)

	case "e":
		return switchView(contentEditorView)

	case "R":
		a.resetConfirm.Show(ConfirmationConfig{
			Title:       "Reset Content",
			Message:     "Replace the user, teams, navigation and projects with the defaults?",
			Warning:     "This cannot be undone.",
			Destructive: true,
			Type:        ConfirmTypeDialog,
			Width:       min(64, max(a.width-4, 30)),
		}, func() tea.Cmd {
			a.content.Reset()
			a.log.Info("content reset")
			return statusCmd("✓ Content reset to defaults")
		}, nil)
		return nil
	}

	if settings.ActiveTab == models.TabCode {
		return a.code.Update(msg)
	}
	_, cmd := a.preview.Update(msg, settings, a.content.Snapshot())
	return cmd
}

// bodyHeight is the height left for the active view
func (a *App) bodyHeight() int {
	// header, blank line, help pane (3), status line
	return max(a.height-headerHeight()-5, 5)
}

// layout pushes the current size into the sub-models
func (a *App) layout() {
	if a.width == 0 || a.height == 0 {
		return
	}
	body := a.bodyHeight()
	inner := max(a.width-2, 10)

	switch a.state {
	case settingsEditorView:
		editorWidth := min(56, inner/2)
		a.settingsEditor.SetSize(editorWidth, body)
		a.preview.SetSize(inner-editorWidth-1, body)
	case contentEditorView:
		editorWidth := min(64, inner/2)
		a.contentEditor.SetSize(editorWidth, body)
		a.preview.SetSize(inner-editorWidth-1, body)
	default:
		a.preview.SetSize(inner, body)
		a.code.SetSize(inner, body)
	}
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	settings := a.settings.Snapshot()
	content := a.content.Snapshot()

	var title string
	var body string
	var help []string

	switch a.state {
	case settingsEditorView:
		title = "Settings"
		body = lipgloss.JoinHorizontal(lipgloss.Top, a.settingsEditor.View(), " ", a.preview.View(settings, content))
		help = a.settingsEditor.helpItems()
	case contentEditorView:
		title = "Content"
		body = lipgloss.JoinHorizontal(lipgloss.Top, a.contentEditor.View(), " ", a.preview.View(settings, content))
		help = a.contentEditor.helpItems()
	default:
		title = "Sidebar Builder"
		if settings.ActiveTab == models.TabCode {
			body = a.code.View()
			help = a.code.helpItems()
		} else {
			body = a.preview.View(settings, content)
			help = a.preview.helpItems(settings)
		}
		help = append(help, "tab switch view", "s settings", "e content", "R reset", "q quit")

		if a.resetConfirm.Active() {
			body = lipgloss.Place(a.width-2, a.bodyHeight(), lipgloss.Center, lipgloss.Center, a.resetConfirm.View())
		}
	}

	view := lipgloss.JoinVertical(lipgloss.Left,
		renderHeader(a.width, title, settings.ActiveTab),
		"",
		ContentPaddingStyle.Render(body),
		ContentPaddingStyle.Render(renderHelp(a.width-2, help)),
	)

	if a.statusMsg != "" {
		view = lipgloss.JoinVertical(lipgloss.Left, view, StatusBarStyle.Render(a.statusMsg))
	}
	return view
}

// StatusMsg shows a transient message in the status bar
type StatusMsg string

type clearStatusMsg struct {
	seq int
}

// SwitchViewMsg changes the active view
type SwitchViewMsg struct {
	view sessionState
}

func statusCmd(msg string) tea.Cmd {
	return func() tea.Msg { return StatusMsg(msg) }
}

func switchView(view sessionState) tea.Cmd {
	return func() tea.Msg { return SwitchViewMsg{view: view} }
}
