package tui

import (
	"bytes"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"gopkg.in/yaml.v3"

	"github.com/pluqqy/sidebar-builder/internal/watcher"
	"github.com/pluqqy/sidebar-builder/pkg/files"
	"github.com/pluqqy/sidebar-builder/pkg/models"
)

// stateChangedMsg carries a debounced change of the state files
type stateChangedMsg struct {
	change watcher.Change
}

// waitForChange blocks until the watcher reports a change. A closed channel
// ends the loop.
func waitForChange(changes <-chan watcher.Change) tea.Cmd {
	return func() tea.Msg {
		change, ok := <-changes
		if !ok {
			return nil
		}
		return stateChangedMsg{change: change}
	}
}

// reloadState pulls externally edited state files into the stores. Files
// that match the current state are skipped, which is also what stops our
// own saves from echoing back.
func (a *App) reloadState(change watcher.Change) {
	// A save of a newer edit may still be pending
	if time.Since(a.lastEdit) < 2*a.cfg.Watch.Debounce {
		a.log.Debug("skipping reload right after a local edit")
		return
	}

	if change.Has(files.SettingsFile) {
		settings, err := files.ReadSettings()
		switch {
		case err != nil:
			a.log.Error(err, "reloading settings")
			a.statusMsg = "✗ " + err.Error()
		case settings != a.settings.Snapshot():
			if err := a.settings.Replace(settings); err != nil {
				a.log.Error(err, "applying reloaded settings")
				a.statusMsg = "✗ " + err.Error()
			} else {
				a.log.Info("settings reloaded")
				a.statusMsg = "Settings reloaded from disk"
			}
		}
	}

	if change.Has(files.ContentFile) {
		content, err := files.ReadContent()
		switch {
		case err != nil:
			a.log.Error(err, "reloading content")
			a.statusMsg = "✗ " + err.Error()
		case !sameContent(content, a.content.Snapshot()):
			a.content.Replace(content)
			a.log.Info("content reloaded")
			a.statusMsg = "Content reloaded from disk"
		}
	}
}

// sameContent compares by serialized form, so nil and empty collections
// are equal
func sameContent(x, y *models.Content) bool {
	bx, err := yaml.Marshal(x)
	if err != nil {
		return false
	}
	by, err := yaml.Marshal(y)
	if err != nil {
		return false
	}
	return bytes.Equal(bx, by)
}
