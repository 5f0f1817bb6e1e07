// Package watch reports PDF files that appear in a directory, using fsnotify.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/fincrew/internal/logger"
)

// DefaultDebounce is how long a file must be quiet before it is reported.
// Large PDFs arrive as a burst of write events.
const DefaultDebounce = 500 * time.Millisecond

// Watcher watches one directory (not recursively) for new or rewritten files
// matching a glob pattern.
type Watcher struct {
	dir      string
	pattern  string
	debounce time.Duration

	mu  sync.Mutex
	fsw *fsnotify.Watcher
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the quiet period before a file is reported.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithPattern sets the file name glob, matched case-insensitively (default "*.pdf").
func WithPattern(pattern string) Option {
	return func(w *Watcher) {
		if pattern != "" {
			w.pattern = pattern
		}
	}
}

// New creates a watcher for dir.
func New(dir string, opts ...Option) *Watcher {
	w := &Watcher{
		dir:      dir,
		pattern:  "*.pdf",
		debounce: DefaultDebounce,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Watch starts watching and returns a channel of settled file paths. The
// channel is closed when ctx is cancelled or Close is called.
func (w *Watcher) Watch(ctx context.Context) (<-chan string, error) {
	info, err := os.Stat(w.dir)
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", w.dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("watch %s: not a directory", w.dir)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(w.dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", w.dir, err)
	}

	w.mu.Lock()
	w.fsw = fsw
	w.mu.Unlock()

	out := make(chan string)
	go w.loop(ctx, fsw, out)
	return out, nil
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.fsw == nil {
		return nil
	}
	err := w.fsw.Close()
	w.fsw = nil
	return err
}

func (w *Watcher) loop(ctx context.Context, fsw *fsnotify.Watcher, out chan<- string) {
	defer close(out)
	defer w.Close()

	ticker := time.NewTicker(w.debounce / 2)
	defer ticker.Stop()

	pending := make(map[string]time.Time)

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if path, ok := w.handleEvent(event); ok {
				pending[path] = time.Now()
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			logger.Warn("Watch %s: %v", w.dir, err)

		case now := <-ticker.C:
			for path, last := range pending {
				if now.Sub(last) < w.debounce {
					continue
				}
				delete(pending, path)
				select {
				case out <- path:
				case <-ctx.Done():
					return
				}
			}
		}
	}
}

// handleEvent returns the path to report for event, if any.
func (w *Watcher) handleEvent(event fsnotify.Event) (string, bool) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return "", false
	}

	name := filepath.Base(event.Name)
	if strings.HasPrefix(name, ".") {
		return "", false
	}
	if ok, _ := filepath.Match(strings.ToLower(w.pattern), strings.ToLower(name)); !ok {
		return "", false
	}

	info, err := os.Stat(event.Name)
	if err != nil || info.IsDir() {
		return "", false
	}
	return event.Name, true
}
