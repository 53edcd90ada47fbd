// Package watch monitors a manual spec document and triggers regeneration
// after changes settle.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period applied when none is configured.
const DefaultDebounce = 500 * time.Millisecond

// Watcher invokes a callback after the watched spec document changes and a
// debounce period passes without further events.
type Watcher struct {
	specPath   string
	onChange   func()
	debounce   time.Duration
	watcher    *fsnotify.Watcher
	stopOnce   sync.Once
	stopChan   chan struct{}
	changeChan chan struct{}
}

// New creates a watcher for the given spec document. A non-positive debounce
// falls back to DefaultDebounce.
func New(specPath string, debounce time.Duration, onChange func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}
	absPath, err := filepath.Abs(specPath)
	if err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("resolve spec path: %w", err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		specPath:   absPath,
		onChange:   onChange,
		debounce:   debounce,
		watcher:    fsw,
		stopChan:   make(chan struct{}),
		changeChan: make(chan struct{}, 1),
	}, nil
}

// Start begins watching. The parent directory is watched rather than the
// file itself, which survives editors that replace the file on save.
func (w *Watcher) Start(ctx context.Context) error {
	if err := w.watcher.Add(filepath.Dir(w.specPath)); err != nil {
		return fmt.Errorf("watch spec directory: %w", err)
	}
	slog.Info("Watching spec document", "path", w.specPath)
	go w.eventLoop(ctx)
	go w.debounceLoop(ctx)
	return nil
}

// Stop stops the watcher. Safe to call more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopChan)
		if err := w.watcher.Close(); err != nil {
			slog.Error("Error closing file watcher", "error", err)
		}
	})
}

func (w *Watcher) eventLoop(ctx context.Context) {
	specFile := filepath.Base(w.specPath)
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopChan:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != specFile {
				continue
			}
			switch {
			case event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0:
				slog.Debug("Spec document changed", "op", event.Op.String(), "file", event.Name)
				w.trigger()
			case event.Op&fsnotify.Remove != 0:
				slog.Warn("Spec document removed", "file", event.Name)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("Spec watcher error", "error", err)
		}
	}
}

// trigger coalesces bursts of events into a single pending change.
func (w *Watcher) trigger() {
	select {
	case w.changeChan <- struct{}{}:
	default:
	}
}

func (w *Watcher) debounceLoop(ctx context.Context) {
	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopChan:
			return
		case <-w.changeChan:
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(w.debounce)
			fire = timer.C
		case <-fire:
			fire = nil
			w.onChange()
		}
	}
}
