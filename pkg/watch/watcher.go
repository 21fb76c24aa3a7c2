// Package watch turns filesystem changes into debounced change batches,
// the live-reload source for structural notifications: edit a form document
// or a configuration file and the engine recomputes once the burst of
// writes settles.
package watch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Change is one observed file event.
type Change struct {
	Path string
	Op   fsnotify.Op
	Time time.Time
}

// Handler receives a debounced batch of changes. It runs on the watcher's
// goroutine; one batch at a time.
type Handler func(changes []Change)

// Options configures a Watcher.
type Options struct {
	// Debounce is how long to wait for further changes before delivering
	// a batch. Default 250ms.
	Debounce time.Duration

	// Extensions filters events to matching file extensions (with dot,
	// case-insensitive). Empty means every file counts.
	Extensions []string

	// Logger reports watch errors. Optional.
	Logger *slog.Logger
}

// Watcher observes a set of paths and delivers debounced change batches.
type Watcher struct {
	fsw        *fsnotify.Watcher
	handler    Handler
	debounce   time.Duration
	extensions map[string]struct{}
	logger     *slog.Logger

	done     chan struct{}
	stopOnce sync.Once
}

// New constructs a watcher over the given paths. Directories watch their
// direct entries; files watch their parent directory so editors that
// replace-on-save keep being observed.
func New(paths []string, handler Handler, opts Options) (*Watcher, error) {
	if handler == nil {
		return nil, errors.New("watch: handler is required")
	}
	if len(paths) == 0 {
		return nil, errors.New("watch: at least one path is required")
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: create watcher: %w", err)
	}

	w := &Watcher{
		fsw:      fsw,
		handler:  handler,
		debounce: opts.Debounce,
		logger:   opts.Logger,
		done:     make(chan struct{}),
	}
	if w.debounce <= 0 {
		w.debounce = 250 * time.Millisecond
	}
	if w.logger == nil {
		w.logger = slog.Default()
	}
	if len(opts.Extensions) > 0 {
		w.extensions = make(map[string]struct{}, len(opts.Extensions))
		for _, ext := range opts.Extensions {
			w.extensions[strings.ToLower(ext)] = struct{}{}
		}
	}

	for _, path := range paths {
		if err := fsw.Add(path); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("watch: add %s: %w", path, err)
		}
	}

	return w, nil
}

// Start begins delivering batches until the context is cancelled or Stop
// is called.
func (w *Watcher) Start(ctx context.Context) {
	go w.loop(ctx)
}

// Stop shuts the watcher down. Safe to call more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)
		if err := w.fsw.Close(); err != nil {
			w.logger.Warn("closing file watcher", slog.Any("error", err))
		}
	})
}

// loop collects events into a pending batch and flushes it when the
// debounce window passes without new ones.
func (w *Watcher) loop(ctx context.Context) {
	var (
		pending []Change
		timer   *time.Timer
		fire    <-chan time.Time
	)

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.done:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			pending = append(pending, Change{Path: event.Name, Op: event.Op, Time: time.Now()})
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
			fire = timer.C
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("file watch error", slog.Any("error", err))
		case <-fire:
			batch := pending
			pending = nil
			fire = nil
			timer = nil
			if len(batch) > 0 {
				w.handler(batch)
			}
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	if w.extensions == nil {
		return true
	}
	_, ok := w.extensions[strings.ToLower(filepath.Ext(event.Name))]
	return ok
}
