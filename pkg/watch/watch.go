// Package watch reports changes to the keymap file.
package watch

import (
	"context"
	"fmt"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
	"path/filepath"
	"time"
)

const DefaultSettle = 100 * time.Millisecond

// Watcher watches the directory holding a file, so editors that replace the
// file by renaming a temporary copy over it are noticed too. Bursts of events
// are collapsed into one notice once the directory has been quiet for Settle.
type Watcher struct {
	Settle time.Duration

	path    string
	base    string
	fsw     *fsnotify.Watcher
	changes chan struct{}
	log     *zap.SugaredLogger
}

func New(path string, log *zap.SugaredLogger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	abs = filepath.Clean(abs)

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	err = fsw.Add(filepath.Dir(abs))
	if err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{
		Settle:  DefaultSettle,
		path:    abs,
		base:    filepath.Base(abs),
		fsw:     fsw,
		changes: make(chan struct{}, 1),
		log:     log,
	}, nil
}

// Changes delivers at most one pending notice at a time.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Run forwards changes until ctx is done or the watcher is closed. It closes
// the Changes channel on return.
func (w *Watcher) Run(ctx context.Context) error {
	defer close(w.changes)

	var settled <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !shouldReload(w.path, w.base, ev) {
				continue
			}
			w.log.Debugw("keymap file changed", "event", ev.String())
			settled = time.After(w.Settle)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.log.Warnw("keymap watcher error", "error", err)
		case <-settled:
			settled = nil
			select {
			case w.changes <- struct{}{}:
			default:
			}
		}
	}
}

func (w *Watcher) Close() error {
	return w.fsw.Close()
}

func shouldReload(path, base string, ev fsnotify.Event) bool {
	if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	name := filepath.Clean(ev.Name)
	if name == path {
		return true
	}
	// temp + rename writes can report a different directory prefix
	return filepath.Base(name) == base
}
