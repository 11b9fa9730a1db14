package expand

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher re-expands files as they change on disk.
type Watcher struct {
	expander   *Expander
	watcher    *fsnotify.Watcher
	logger     *zap.Logger
	onResult   func(Result)
	isWatching bool
}

// NewWatcher wires an Expander to filesystem events. onResult is called
// for every successfully expanded file.
func NewWatcher(e *Expander, logger *zap.Logger, onResult func(Result)) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		expander: e,
		watcher:  fsWatcher,
		logger:   logger,
		onResult: onResult,
	}, nil
}

// Start registers paths (directories recursively) and begins watching.
func (w *Watcher) Start(paths []string) error {
	if w.isWatching {
		return fmt.Errorf("already watching")
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("adding %s to watcher: %w", path, err)
		}
		if !info.IsDir() {
			if err := w.watcher.Add(path); err != nil {
				return fmt.Errorf("adding %s to watcher: %w", path, err)
			}
			continue
		}
		err = filepath.Walk(path, func(p string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				return w.watcher.Add(p)
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("adding %s to watcher: %w", path, err)
		}
	}

	w.isWatching = true
	go w.loop()
	return nil
}

// Stop ends the watch loop and releases the filesystem watcher.
func (w *Watcher) Stop() error {
	w.isWatching = false
	return w.watcher.Close()
}

func (w *Watcher) loop() {
	for w.isWatching {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFileEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) handleFileEvent(event fsnotify.Event) {
	if event.Op&fsnotify.Write != fsnotify.Write {
		return
	}
	if !strings.HasSuffix(event.Name, ".go") {
		return
	}

	// editors fire several events per save; let the file settle
	time.Sleep(100 * time.Millisecond)

	result, err := w.expander.ExpandFile(event.Name)
	if err != nil {
		w.logger.Error("Error expanding changed file", zap.String("path", event.Name), zap.Error(err))
		return
	}
	if w.onResult != nil {
		w.onResult(result)
	}
}
