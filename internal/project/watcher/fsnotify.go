package watcher

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FSNotifyWatcher implements Watcher on top of fsnotify. It watches the
// parent directory of every file and forwards only events for the files
// themselves.
type FSNotifyWatcher struct {
	fsw    *fsnotify.Watcher
	config Config
	events chan Event

	mu     sync.RWMutex
	files  map[string]bool // absolute paths
	dirs   map[string]int  // watched files per directory
	closed bool

	done chan struct{}
	wg   sync.WaitGroup
}

// NewFSNotifyWatcher starts a watcher with no files.
func NewFSNotifyWatcher(opts ...WatcherOption) (*FSNotifyWatcher, error) {
	config := DefaultConfig()
	for _, opt := range opts {
		opt(&config)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &FSNotifyWatcher{
		fsw:    fsw,
		config: config,
		events: make(chan Event, config.BufferSize),
		files:  make(map[string]bool),
		dirs:   make(map[string]int),
		done:   make(chan struct{}),
	}
	w.wg.Add(1)
	go w.run()
	return w, nil
}

// Watch starts watching the file at path. The file need not exist.
func (w *FSNotifyWatcher) Watch(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	switch {
	case w.closed:
		return ErrWatcherClosed
	case w.files[abs]:
		return ErrAlreadyWatching
	}

	dir := filepath.Dir(abs)
	if w.dirs[dir] == 0 {
		if err := w.fsw.Add(dir); err != nil {
			return err
		}
	}
	w.dirs[dir]++
	w.files[abs] = true
	return nil
}

// Unwatch stops watching the file at path. The parent directory is
// released with its last file.
func (w *FSNotifyWatcher) Unwatch(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	switch {
	case w.closed:
		return ErrWatcherClosed
	case !w.files[abs]:
		return ErrNotWatching
	}
	delete(w.files, abs)

	dir := filepath.Dir(abs)
	if w.dirs[dir]--; w.dirs[dir] > 0 {
		return nil
	}
	delete(w.dirs, dir)
	return w.fsw.Remove(dir)
}

func (w *FSNotifyWatcher) Events() <-chan Event {
	return w.events
}

// Close stops the watcher and closes the event channel. Later calls are
// no-ops.
func (w *FSNotifyWatcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.done)
	w.mu.Unlock()

	w.wg.Wait()
	close(w.events)
	return w.fsw.Close()
}

func (w *FSNotifyWatcher) run() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.forward(ev)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.report(err)
		}
	}
}

func (w *FSNotifyWatcher) forward(ev fsnotify.Event) {
	op := convertOp(ev.Op)
	if op == 0 {
		return
	}
	path := filepath.Clean(ev.Name)

	w.mu.RLock()
	watched := w.files[path]
	w.mu.RUnlock()
	if !watched {
		return
	}

	select {
	case w.events <- Event{Path: path, Op: op, Timestamp: time.Now()}:
	default:
		w.report(ErrEventDropped)
	}
}

func (w *FSNotifyWatcher) report(err error) {
	if w.config.OnError != nil {
		w.config.OnError(err)
	}
}

// convertOp maps fsnotify operations onto Op. Chmod is ignored.
func convertOp(fsOp fsnotify.Op) Op {
	var op Op
	if fsOp.Has(fsnotify.Create) {
		op |= OpCreate
	}
	if fsOp.Has(fsnotify.Write) {
		op |= OpWrite
	}
	if fsOp.Has(fsnotify.Remove) {
		op |= OpRemove
	}
	if fsOp.Has(fsnotify.Rename) {
		op |= OpRename
	}
	return op
}

var _ Watcher = (*FSNotifyWatcher)(nil)
