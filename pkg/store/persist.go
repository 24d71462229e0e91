// Package store holds the builder's mutable state: the settings record and
// the content record, each with change listeners and background persistence.
package store

import (
	"sync"

	"github.com/pluqqy/sidebar-builder/internal/logger"
	"github.com/pluqqy/sidebar-builder/pkg/models"
)

// SettingsPersister saves a settings snapshot
type SettingsPersister interface {
	SaveSettings(models.Settings) error
}

// ContentPersister saves a content snapshot
type ContentPersister interface {
	SaveContent(*models.Content) error
}

// Option configures a store
type Option func(*options)

type options struct {
	settingsPersister SettingsPersister
	contentPersister  ContentPersister
	log               *logger.Logger
}

// WithSettingsPersister saves every settings change in the background
func WithSettingsPersister(p SettingsPersister) Option {
	return func(o *options) { o.settingsPersister = p }
}

// WithContentPersister saves every content change in the background
func WithContentPersister(p ContentPersister) Option {
	return func(o *options) { o.contentPersister = p }
}

// WithLogger sets the logger used to report persistence failures
func WithLogger(l *logger.Logger) Option {
	return func(o *options) { o.log = l }
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// saver writes snapshots on its own goroutine. Only the newest pending
// snapshot is kept; older ones are dropped unwritten.
type saver[T any] struct {
	save    func(T) error
	log     *logger.Logger
	pending chan T
	done    chan struct{}

	mu      sync.Mutex
	closed  bool
	lastErr error
}

func newSaver[T any](save func(T) error, log *logger.Logger) *saver[T] {
	s := &saver[T]{
		save:    save,
		log:     log,
		pending: make(chan T, 1),
		done:    make(chan struct{}),
	}
	go s.run()
	return s
}

func (s *saver[T]) run() {
	defer close(s.done)
	for v := range s.pending {
		if err := s.save(v); err != nil {
			s.log.Error(err, "failed to persist state")
			s.mu.Lock()
			s.lastErr = err
			s.mu.Unlock()
		}
	}
}

// submit queues v, replacing any snapshot still waiting to be written
func (s *saver[T]) submit(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	select {
	case <-s.pending:
	default:
	}
	s.pending <- v
}

// close writes whatever is pending, stops the goroutine and returns the
// last save error
func (s *saver[T]) close() error {
	s.mu.Lock()
	if !s.closed {
		s.closed = true
		close(s.pending)
	}
	s.mu.Unlock()

	<-s.done

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// listeners is a registration-ordered set of callbacks
type listeners[T any] struct {
	mu     sync.Mutex
	nextID int
	fns    []listener[T]
}

type listener[T any] struct {
	id int
	fn func(T)
}

func (l *listeners[T]) add(fn func(T)) func() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.nextID++
	id := l.nextID
	l.fns = append(l.fns, listener[T]{id: id, fn: fn})
	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		for i, entry := range l.fns {
			if entry.id == id {
				l.fns = append(l.fns[:i:i], l.fns[i+1:]...)
				return
			}
		}
	}
}

func (l *listeners[T]) notify(v T) {
	l.mu.Lock()
	fns := make([]listener[T], len(l.fns))
	copy(fns, l.fns)
	l.mu.Unlock()

	for _, entry := range fns {
		entry.fn(v)
	}
}
