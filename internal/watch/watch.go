// Package watch re-runs generation when source documents change.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Event is a debounced change to a watched file.
type Event struct {
	Path      string
	Operation string // create, write, remove, rename
	Timestamp time.Time
}

// Watcher watches files for changes. Parent directories are watched rather
// than the files themselves so that editors that save by renaming are seen.
type Watcher struct {
	watcher   *fsnotify.Watcher
	logger    *zap.Logger
	debouncer *Debouncer

	mu    sync.RWMutex
	files map[string]bool
	dirs  map[string]bool
}

// New creates a watcher that coalesces events per file within delay.
func New(logger *zap.Logger, delay time.Duration) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{
		watcher:   fw,
		logger:    logger,
		debouncer: NewDebouncer(delay),
		files:     make(map[string]bool),
		dirs:      make(map[string]bool),
	}, nil
}

// Add starts watching path.
func (w *Watcher) Add(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.files[abs] {
		return nil
	}
	dir := filepath.Dir(abs)
	if !w.dirs[dir] {
		if err := w.watcher.Add(dir); err != nil {
			return fmt.Errorf("watch: %s: %w", dir, err)
		}
		w.dirs[dir] = true
	}
	w.files[abs] = true
	w.logger.Debug("watching file", zap.String("path", abs))
	return nil
}

// Files returns the watched files.
func (w *Watcher) Files() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]string, 0, len(w.files))
	for f := range w.files {
		out = append(out, f)
	}
	return out
}

// Run delivers debounced events to onChange until ctx is done or the
// watcher is closed. onChange is called from timer goroutines.
func (w *Watcher) Run(ctx context.Context, onChange func(Event)) error {
	w.logger.Info("file watcher started", zap.Int("files", len(w.Files())))
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handle(event, onChange)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("file watcher error", zap.Error(err))
		}
	}
}

// Close stops watching and cancels pending events.
func (w *Watcher) Close() error {
	w.debouncer.Stop()
	if err := w.watcher.Close(); err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	w.logger.Info("file watcher stopped")
	return nil
}

func (w *Watcher) handle(event fsnotify.Event, onChange func(Event)) {
	path := filepath.Clean(event.Name)
	w.mu.RLock()
	watched := w.files[path]
	w.mu.RUnlock()
	if !watched || event.Op == fsnotify.Chmod {
		return
	}

	e := Event{
		Path:      path,
		Operation: operation(event.Op),
		Timestamp: time.Now(),
	}
	w.logger.Debug("file event",
		zap.String("path", e.Path),
		zap.String("operation", e.Operation),
	)
	w.debouncer.Debounce(path, func() {
		onChange(e)
	})
}

func operation(op fsnotify.Op) string {
	switch {
	case op.Has(fsnotify.Create):
		return "create"
	case op.Has(fsnotify.Write):
		return "write"
	case op.Has(fsnotify.Remove):
		return "remove"
	case op.Has(fsnotify.Rename):
		return "rename"
	default:
		return "unknown"
	}
}

// Debouncer delays a call until no new call for the same key arrived
// within the delay.
type Debouncer struct {
	delay   time.Duration
	mu      sync.Mutex
	timers  map[string]*time.Timer
	stopped bool
}

// NewDebouncer creates a debouncer.
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{
		delay:  delay,
		timers: make(map[string]*time.Timer),
	}
}

// Debounce schedules fn for key, replacing any pending call for key.
func (d *Debouncer) Debounce(key string, fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if t, ok := d.timers[key]; ok {
		t.Stop()
	}
	var t *time.Timer
	t = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		current := d.timers[key] == t
		if current {
			delete(d.timers, key)
		}
		stopped := d.stopped
		d.mu.Unlock()

		if current && !stopped {
			fn()
		}
	})
	d.timers[key] = t
}

// Pending returns the number of scheduled calls.
func (d *Debouncer) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.timers)
}

// Stop cancels all pending calls. Later calls to Debounce are ignored.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	for key, t := range d.timers {
		t.Stop()
		delete(d.timers, key)
	}
}
