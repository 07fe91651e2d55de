// Package watch re-runs a callback when Go sources in a set of
// directories change.
package watch

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is used when Options.Debounce is zero.
const DefaultDebounce = 200 * time.Millisecond

// Options configures a Watcher.
type Options struct {
	// Dirs are watched non-recursively. Directories created inside a
	// watched directory are watched from then on.
	Dirs []string

	// Debounce collapses bursts of events into one callback.
	Debounce time.Duration

	// Logger receives watcher errors. Nil discards.
	Logger *charmlog.Logger
}

// Watcher watches directories for changes to .go files.
type Watcher struct {
	fsw      *fsnotify.Watcher
	debounce time.Duration
	logger   *charmlog.Logger
	watched  map[string]bool
}

// New starts watching opts.Dirs. Events that happen after New returns
// are delivered by Run.
func New(opts Options) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	w := &Watcher{fsw: fsw, watched: make(map[string]bool)}
	if err := w.Add(opts.Dirs...); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	logger := opts.Logger
	if logger == nil {
		logger = charmlog.New(io.Discard)
	}
	w.debounce = debounce
	w.logger = logger
	return w, nil
}

// Add watches dirs that are not watched yet. It must be called from
// the goroutine running Run, or before Run starts; the callback
// passed to Run qualifies.
func (w *Watcher) Add(dirs ...string) error {
	for _, d := range dirs {
		d = filepath.Clean(d)
		if w.watched[d] {
			continue
		}
		if err := w.fsw.Add(d); err != nil {
			return fmt.Errorf("watching %s: %w", d, err)
		}
		w.watched[d] = true
	}
	return nil
}

// Run calls fn once per burst of source changes until ctx is done,
// then closes the watcher. fn runs on the calling goroutine.
func (w *Watcher) Run(ctx context.Context, fn func()) error {
	defer w.fsw.Close()

	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Create) && isDir(event.Name) {
				if err := w.Add(event.Name); err != nil {
					w.logger.Warn("watcher error", "err", err)
				}
				continue
			}
			if !relevant(event) {
				continue
			}
			w.logger.Debug("source changed", "file", event.Name, "op", event.Op)
			fire = time.After(w.debounce)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", "err", err)

		case <-fire:
			fire = nil
			fn()
		}
	}
}

func isDir(name string) bool {
	fi, err := os.Stat(name)
	return err == nil && fi.IsDir()
}

// relevant reports whether event touches a non-test Go source file.
func relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	name := filepath.Base(event.Name)
	return filepath.Ext(name) == ".go" && !strings.HasSuffix(name, "_test.go")
}
