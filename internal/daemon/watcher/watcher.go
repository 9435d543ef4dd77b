// Package watcher handles file system watching for the daemon.
package watcher

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"

	"github.com/ech-workers/ech-client/internal/config"
)

// EventType represents the type of file system event.
type EventType int

// Event types for file system changes.
const (
	EventConfigChanged EventType = iota
	EventSettingsChanged
)

func (t EventType) String() string {
	switch t {
	case EventConfigChanged:
		return "config"
	case EventSettingsChanged:
		return "settings"
	default:
		return "unknown"
	}
}

// DefaultDebounce is how long a path must stay quiet before its event fires.
const DefaultDebounce = 300 * time.Millisecond

// Event represents a file system change event.
type Event struct {
	Type EventType
	Path string
}

// Watcher watches the global directory for edits to the config and
// settings files made outside the daemon.
type Watcher struct {
	dir        string
	delay      time.Duration
	fsWatcher  *fsnotify.Watcher
	eventsChan chan Event
	done       chan struct{}
	stopOnce   sync.Once
	debounce   map[string]*time.Timer
	debounceMu sync.Mutex
	log        logrus.FieldLogger
}

// New creates a watcher for dir. An empty dir means config.GlobalDir.
func New(dir string, log logrus.FieldLogger) (*Watcher, error) {
	if dir == "" {
		d, err := config.GlobalDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		dir:        dir,
		delay:      DefaultDebounce,
		fsWatcher:  fsWatcher,
		eventsChan: make(chan Event, 16),
		done:       make(chan struct{}),
		debounce:   make(map[string]*time.Timer),
		log:        log,
	}, nil
}

// SetDebounce changes the debounce delay. Call before Start.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.delay = d
}

// Events returns the channel for receiving events.
func (w *Watcher) Events() <-chan Event {
	return w.eventsChan
}

// Start starts the watcher.
func (w *Watcher) Start() error {
	// Watch the directory, not the files: atomic saves replace the inode.
	if err := w.fsWatcher.Add(w.dir); err != nil {
		return err
	}
	go w.processEvents()
	return nil
}

// Stop stops the watcher.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)
		_ = w.fsWatcher.Close()

		w.debounceMu.Lock()
		for path, timer := range w.debounce {
			timer.Stop()
			delete(w.debounce, path)
		}
		w.debounceMu.Unlock()
	})
}

// processEvents processes file system events.
func (w *Watcher) processEvents() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.log.Debugf("watcher: %s %s", event.Op, event.Name)
			w.handleEvent(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.log.WithError(err).Warn("watcher error")
		}
	}
}

// handleEvent processes a single file system event.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	// Atomic writes (write tmp, rename onto target) show up as Create or
	// Rename on the target.
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}
	typ, ok := classify(event.Name)
	if !ok {
		return
	}
	w.debounceEvent(event.Name, func() {
		select {
		case w.eventsChan <- Event{Type: typ, Path: event.Name}:
		case <-w.done:
		}
	})
}

// debounceEvent debounces events for the same path.
func (w *Watcher) debounceEvent(path string, fn func()) {
	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()

	if timer, ok := w.debounce[path]; ok {
		timer.Stop()
	}
	w.debounce[path] = time.AfterFunc(w.delay, func() {
		w.debounceMu.Lock()
		delete(w.debounce, path)
		w.debounceMu.Unlock()
		fn()
	})
}

func classify(path string) (EventType, bool) {
	switch filepath.Base(path) {
	case config.ConfigFileName:
		return EventConfigChanged, true
	case config.SettingsFileName:
		return EventSettingsChanged, true
	default:
		return 0, false
	}
}
