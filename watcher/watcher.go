package watcher

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/giovannicoppola/alfred-WhoWasWhen/logger"
)

// ReloadCallback is called after the debounce window when watched
// sheets have changed. A failing rebuild keeps the previous snapshot.
type ReloadCallback func() error

// SheetWatcher watches the TSV source sheets and triggers reload
// callbacks on change.
type SheetWatcher struct {
	paths          []string
	watcher        *fsnotify.Watcher
	callbacks      []ReloadCallback
	mu             sync.RWMutex
	debounceTimer  *time.Timer
	debouncePeriod time.Duration
}

// NewSheetWatcher creates a watcher over the given sheet files. Paths
// that do not exist yet are skipped; at least one must be watchable.
func NewSheetWatcher(paths ...string) (*SheetWatcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	watched := 0
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			logger.Debugw("Sheet not present, not watching", "path", path)
			continue
		}
		if err := fsw.Add(path); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("failed to watch sheet %s: %w", path, err)
		}
		watched++
	}
	if watched == 0 {
		fsw.Close()
		return nil, fmt.Errorf("none of the sheets exist: %s", strings.Join(paths, ", "))
	}

	sw := &SheetWatcher{
		paths:          paths,
		watcher:        fsw,
		callbacks:      make([]ReloadCallback, 0),
		debouncePeriod: 500 * time.Millisecond, // Debounce rapid file changes
	}

	return sw, nil
}

// OnReload registers a callback to be called after a change settles
func (sw *SheetWatcher) OnReload(callback ReloadCallback) {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	sw.callbacks = append(sw.callbacks, callback)
}

// Start begins watching for sheet changes
func (sw *SheetWatcher) Start() {
	go sw.watchLoop()
}

// watchLoop monitors file system events
func (sw *SheetWatcher) watchLoop() {
	for {
		select {
		case event, ok := <-sw.watcher.Events:
			if !ok {
				return
			}

			// Only reload on Write or Create events. Editors that
			// replace files trigger Create on the watched name.
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				logger.Infow("Sheet watcher detected change",
					"file", event.Name,
					"op", event.Op.String())
				sw.scheduleReload()
			}

		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return
			}
			logger.Warnw("Sheet watcher error",
				"error", err)
		}
	}
}

// scheduleReload debounces rapid file changes and triggers reload
func (sw *SheetWatcher) scheduleReload() {
	sw.mu.Lock()
	defer sw.mu.Unlock()

	// Cancel existing timer if any
	if sw.debounceTimer != nil {
		sw.debounceTimer.Stop()
	}

	// Schedule reload after debounce period
	sw.debounceTimer = time.AfterFunc(sw.debouncePeriod, func() {
		if err := sw.reload(); err != nil {
			logger.Errorw("Sheet reload failed",
				"error", err)
		}
	})
}

// reload calls all registered callbacks
func (sw *SheetWatcher) reload() error {
	sw.mu.RLock()
	callbacks := make([]ReloadCallback, len(sw.callbacks))
	copy(callbacks, sw.callbacks)
	sw.mu.RUnlock()

	for _, callback := range callbacks {
		if err := callback(); err != nil {
			logger.Warnw("Sheet reload callback error",
				"error", err)
			// Continue calling other callbacks even if one fails
		}
	}

	logger.Infow("Sheets reloaded", "paths", sw.paths)
	return nil
}

// Stop stops watching for sheet changes
func (sw *SheetWatcher) Stop() error {
	return sw.watcher.Close()
}
