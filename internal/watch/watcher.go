// Package watch re-translates files as they change. It watches the
// input tree and emits debounced change events for regular files.
package watch

import (
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounceDelay = 100 * time.Millisecond

// Watcher watches an input directory tree for file changes.
type Watcher struct {
	inputDir   string
	fsWatcher  *fsnotify.Watcher
	eventsChan chan string
	done       chan struct{}
	closeOnce  sync.Once
	debounce   map[string]*time.Timer
	debounceMu sync.Mutex
}

// New creates a watcher for the given input directory.
func New(inputDir string) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		inputDir:   inputDir,
		fsWatcher:  fsWatcher,
		eventsChan: make(chan string, 100),
		done:       make(chan struct{}),
		debounce:   make(map[string]*time.Timer),
	}, nil
}

// Events returns the channel delivering changed file paths.
func (w *Watcher) Events() <-chan string {
	return w.eventsChan
}

// Start registers the input tree and begins processing events.
// fsnotify watches are not recursive, so every subdirectory is added,
// and directories created later are picked up from their create events.
func (w *Watcher) Start() error {
	err := filepath.WalkDir(w.inputDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.fsWatcher.Add(path)
		}
		return nil
	})
	if err != nil {
		return err
	}

	go w.processEvents()
	return nil
}

// Stop stops the watcher.
func (w *Watcher) Stop() {
	w.closeOnce.Do(func() {
		close(w.done)
		_ = w.fsWatcher.Close()
	})
}

func (w *Watcher) processEvents() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case _, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	// Rename matters: atomic writes (write tmp, rename to target)
	// surface as Rename on the target file.
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}

	info, err := os.Stat(event.Name)
	if err != nil {
		return // removed again before we got here
	}
	if info.IsDir() {
		if event.Op&fsnotify.Create != 0 {
			_ = w.fsWatcher.Add(event.Name)
		}
		return
	}

	w.debounceEvent(event.Name, func() {
		select {
		case w.eventsChan <- event.Name:
		case <-w.done:
		}
	})
}

// debounceEvent coalesces bursts of events for the same path.
func (w *Watcher) debounceEvent(path string, fn func()) {
	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()

	if timer, ok := w.debounce[path]; ok {
		timer.Stop()
	}

	w.debounce[path] = time.AfterFunc(debounceDelay, func() {
		w.debounceMu.Lock()
		delete(w.debounce, path)
		w.debounceMu.Unlock()
		fn()
	})
}
