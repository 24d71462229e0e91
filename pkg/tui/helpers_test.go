package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/sidebar-builder/internal/config"
	"github.com/pluqqy/sidebar-builder/internal/logger"
	"github.com/pluqqy/sidebar-builder/pkg/testhelpers"
)

// key builds a KeyMsg from the string bubbletea would report for it
func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "ctrl+b":
		return tea.KeyMsg{Type: tea.KeyCtrlB}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// runCmd executes cmd and returns its message, or nil
func runCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

func testConfig() config.Config {
	cfg := config.Defaults()
	cfg.UI.MarkdownStyle = "notty"
	return cfg
}

// newTestApp builds an App inside a temporary working directory. With
// project set the state files exist and edits are persisted.
func newTestApp(t *testing.T, project bool) *App {
	t.Helper()

	env := testhelpers.NewTestEnvironment(t)
	if project {
		env.InitProject()
	}

	app, err := NewApp(Options{
		Config:       testConfig(),
		Logger:       logger.Nop(),
		DisableWatch: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })
	return app
}

// resize sends a window size so the app lays itself out
func resize(app *App, width, height int) {
	app.Update(tea.WindowSizeMsg{Width: width, Height: height})
}
