// Package watcher re-runs a handler whenever a single file changes.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/Nomadcxx/slotsheet/internal/logging"
	"github.com/fsnotify/fsnotify"
)

const component = "watch"

type EventType string

const (
	EventCreate EventType = "create"
	EventWrite  EventType = "write"
	EventMove   EventType = "move"
)

type FileEvent struct {
	Type EventType
	Path string
}

// Handler is called once per debounced burst of changes to the file.
type Handler interface {
	HandleFileEvent(event FileEvent) error
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(event FileEvent) error

func (f HandlerFunc) HandleFileEvent(event FileEvent) error {
	return f(event)
}

// Watcher watches the directory holding one file, because editors and form
// exporters usually replace the file instead of writing it in place.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	handler   Handler
	path      string
	debounce  time.Duration
	log       *logging.Logger
}

type Option func(*Watcher)

func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

func WithLogger(l *logging.Logger) Option {
	return func(w *Watcher) {
		if l != nil {
			w.log = l
		}
	}
}

func NewWatcher(path string, handler Handler, opts ...Option) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("unable to resolve %s: %w", path, err)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("unable to create watcher: %w", err)
	}

	w := &Watcher{
		fsWatcher: fsWatcher,
		handler:   handler,
		path:      abs,
		debounce:  250 * time.Millisecond,
		log:       logging.Nop(),
	}
	for _, opt := range opts {
		opt(w)
	}

	dir := filepath.Dir(abs)
	if err := fsWatcher.Add(dir); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("unable to watch %s: %w", dir, err)
	}
	w.log.Info(component, "watching", logging.F("path", abs))

	return w, nil
}

// Run dispatches events until ctx is cancelled or the watcher fails.
func (w *Watcher) Run(ctx context.Context) error {
	var (
		timer   *time.Timer
		fire    <-chan time.Time
		pending FileEvent
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			fe, relevant := w.translate(event)
			if !relevant {
				continue
			}
			w.log.Debug(component, "event", logging.F("type", fe.Type), logging.F("path", fe.Path))
			pending = fe
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			if err := w.handler.HandleFileEvent(pending); err != nil {
				w.log.Error(component, "handler failed", err, logging.F("path", pending.Path))
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.log.Warn(component, "watcher error", logging.F("error", err))
		}
	}
}

func (w *Watcher) Close() error {
	return w.fsWatcher.Close()
}

func (w *Watcher) translate(event fsnotify.Event) (FileEvent, bool) {
	if filepath.Clean(event.Name) != w.path {
		return FileEvent{}, false
	}

	var t EventType
	switch {
	case event.Has(fsnotify.Create):
		t = EventCreate
	case event.Has(fsnotify.Write):
		t = EventWrite
	case event.Has(fsnotify.Rename):
		t = EventMove
	default:
		return FileEvent{}, false
	}
	return FileEvent{Type: t, Path: w.path}, true
}
