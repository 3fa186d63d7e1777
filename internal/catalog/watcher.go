// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"hislight/internal/debounce"
)

// Watcher reloads the catalog from a directory whenever its JSON files
// change. Bursts of filesystem events collapse into one reload after the
// debounce delay. A reload that fails to load or validate keeps the
// previous snapshot.
type Watcher struct {
	dir    string
	holder *Holder
	strict bool

	fsw       *fsnotify.Watcher
	debouncer *debounce.Debouncer[string]

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// NewWatcher prepares a watcher for dir. A non-positive delay uses
// debounce.DefaultDelay.
func NewWatcher(dir string, holder *Holder, strict bool, delay time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fs watcher: %w", err)
	}

	w := &Watcher{
		dir:    dir,
		holder: holder,
		strict: strict,
		fsw:    fsw,
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
	w.debouncer = debounce.New(delay, func(trigger string) {
		if err := w.Reload(); err != nil {
			slog.Error("catalog reload failed, keeping previous snapshot", "trigger", trigger, "error", err)
		}
	})
	return w, nil
}

// Start begins watching. It returns immediately; events are handled on a
// background goroutine until ctx is cancelled or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return nil
	}
	if err := w.fsw.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}
	w.running = true

	go w.run(ctx)

	slog.Info("catalog watcher started", "dir", w.dir)
	return nil
}

// Stop ends the event loop, cancels a pending reload, waits for a reload
// in progress, and releases the OS watcher. It is safe to call more than once.
func (w *Watcher) Stop() {
	w.mu.Lock()
	wasRunning := w.running
	w.running = false
	w.mu.Unlock()

	if wasRunning {
		close(w.stopCh)
		<-w.doneCh
	}
	w.debouncer.Stop()

	if err := w.fsw.Close(); err != nil {
		slog.Warn("catalog watcher close failed", "error", err)
	}
}

// run is the event loop.
func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if relevant(event) {
				slog.Debug("catalog file changed", "path", event.Name, "op", event.Op.String())
				w.debouncer.Push(event.Name)
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			slog.Warn("catalog watcher error", "error", err)
		}
	}
}

// relevant reports whether an event may change the catalog contents.
func relevant(event fsnotify.Event) bool {
	if !strings.EqualFold(filepath.Ext(event.Name), ".json") {
		return false
	}
	return event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0
}

// Reload loads and validates the directory and swaps it into the holder.
func (w *Watcher) Reload() error {
	s, err := LoadDir(w.dir)
	if err != nil {
		return err
	}

	report := Validate(s)
	for _, issue := range report.Issues {
		slog.Warn("catalog issue", "issue", issue.String())
	}
	if err := report.Err(w.strict); err != nil {
		return err
	}

	w.holder.Swap(s)

	cats, subs, res := s.Len()
	slog.Info("catalog reloaded",
		"dir", w.dir,
		"categories", cats,
		"subcategories", subs,
		"resources", res,
	)
	return nil
}
