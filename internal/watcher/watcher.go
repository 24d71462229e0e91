// Package watcher provides file system watching with debouncing for the
// builder's state files.
package watcher

import (
	"fmt"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/pluqqy/sidebar-builder/internal/logger"
)

// Change reports which watched files were touched during a debounce window.
type Change struct {
	Files []string
}

// Has reports whether name (a base file name) is part of the change.
func (c Change) Has(name string) bool {
	for _, f := range c.Files {
		if f == name {
			return true
		}
	}
	return false
}

// Watcher monitors a directory for changes to a fixed set of files.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	dir       string
	names     map[string]bool
	debounce  time.Duration
	log       *logger.Logger
	onChange  chan Change
	done      chan struct{}
}

// Config holds watcher configuration options.
type Config struct {
	Dir         string
	Files       []string
	DebounceDur time.Duration
	Logger      *logger.Logger
}

// DefaultConfig returns sensible defaults for the watcher.
func DefaultConfig(dir string, files ...string) Config {
	return Config{
		Dir:         dir,
		Files:       files,
		DebounceDur: 200 * time.Millisecond,
	}
}

// New creates a new watcher.
func New(cfg Config) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}

	names := make(map[string]bool, len(cfg.Files))
	for _, f := range cfg.Files {
		names[filepath.Base(f)] = true
	}

	return &Watcher{
		fsWatcher: fsw,
		dir:       cfg.Dir,
		names:     names,
		debounce:  cfg.DebounceDur,
		log:       cfg.Logger.With("watcher"),
		onChange:  make(chan Change, 1),
		done:      make(chan struct{}),
	}, nil
}

// Start begins watching the directory.
// Returns a channel that receives the touched files once writes settle.
func (w *Watcher) Start() (<-chan Change, error) {
	if err := w.fsWatcher.Add(w.dir); err != nil {
		return nil, fmt.Errorf("watching directory %s: %w", w.dir, err)
	}

	go w.loop()

	return w.onChange, nil
}

// Stop terminates the watcher and releases resources.
func (w *Watcher) Stop() error {
	close(w.done)
	return w.fsWatcher.Close()
}

func (w *Watcher) loop() {
	defer close(w.onChange)

	var (
		timer   *time.Timer
		timerC  <-chan time.Time
		touched = map[string]bool{}
		order   []string
	)

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if !w.isRelevantEvent(event) {
				continue
			}

			base := filepath.Base(event.Name)
			if !touched[base] {
				touched[base] = true
				order = append(order, base)
			}

			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
			timerC = timer.C

		case <-timerC:
			timerC = nil
			if len(order) == 0 {
				continue
			}
			files := order
			touched = map[string]bool{}
			order = nil

			// An unread change is folded into the new one rather than block.
			select {
			case pending := <-w.onChange:
				w.log.Debug("merging unread change")
				files = mergeFiles(pending.Files, files)
			default:
			}
			select {
			case w.onChange <- Change{Files: files}:
			default:
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.log.Error(err, "watch error")

		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

// mergeFiles appends the names of next missing from prev, keeping
// first-seen order
func mergeFiles(prev, next []string) []string {
	merged := append([]string(nil), prev...)
	for _, name := range next {
		if !slices.Contains(merged, name) {
			merged = append(merged, name)
		}
	}
	return merged
}

// isRelevantEvent checks if the event should trigger a reload. State files
// are replaced by rename, which shows up as Create.
func (w *Watcher) isRelevantEvent(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
		return false
	}
	return w.names[filepath.Base(event.Name)]
}
