// Package watcher reports external changes to open files.
//
// Files are watched through their parent directory, so editors and tools
// that replace a file by renaming a new one over it are still noticed.
// Events arrive on a buffered channel that the editor drains without
// blocking once per loop iteration.
package watcher

import (
	"errors"
	"time"
)

// Common errors returned by watcher operations.
var (
	ErrWatcherClosed   = errors.New("watcher is closed")
	ErrAlreadyWatching = errors.New("path is already being watched")
	ErrNotWatching     = errors.New("path is not being watched")
	ErrEventDropped    = errors.New("event channel full, event dropped")
)

// Op represents the type of file system operation.
type Op uint32

const (
	// OpCreate indicates a file was created.
	OpCreate Op = 1 << iota
	// OpWrite indicates a file was written to.
	OpWrite
	// OpRemove indicates a file was removed.
	OpRemove
	// OpRename indicates a file was renamed away.
	OpRename
)

// String returns a human-readable representation of the operation.
func (op Op) String() string {
	switch op {
	case OpCreate:
		return "CREATE"
	case OpWrite:
		return "WRITE"
	case OpRemove:
		return "REMOVE"
	case OpRename:
		return "RENAME"
	default:
		return "UNKNOWN"
	}
}

// Has returns true if the operation includes the given op.
func (op Op) Has(o Op) bool {
	return op&o == o
}

// Modified reports whether the file content may have changed.
func (op Op) Modified() bool {
	return op.Has(OpWrite) || op.Has(OpCreate)
}

// Gone reports whether the file no longer exists under its name.
func (op Op) Gone() bool {
	return op.Has(OpRemove) || op.Has(OpRename)
}

// Event represents a change to a watched file.
type Event struct {
	// Path is the absolute path of the file.
	Path string

	// Op is the operation that occurred.
	Op Op

	// Timestamp is when the event was received.
	Timestamp time.Time
}

// Watcher monitors files for external changes.
type Watcher interface {
	// Watch starts watching a file. The file need not exist yet.
	Watch(path string) error

	// Unwatch stops watching a file.
	Unwatch(path string) error

	// Events returns the channel of change events.
	// The channel is closed when the watcher is closed.
	Events() <-chan Event

	// Close stops the watcher and releases resources.
	Close() error
}

// Config holds watcher configuration options.
type Config struct {
	// BufferSize is the size of the event channel. Events are dropped
	// when it is full.
	BufferSize int

	// OnError receives errors from the underlying notifier and
	// ErrEventDropped. It runs on the watcher goroutine.
	OnError func(error)
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{BufferSize: 64}
}

// WatcherOption configures a watcher.
type WatcherOption func(*Config)

// WithErrorHandler sets Config.OnError.
func WithErrorHandler(fn func(error)) WatcherOption {
	return func(c *Config) {
		c.OnError = fn
	}
}

// Drain returns every event currently queued on w without blocking,
// coalesced so each path appears once with its operations combined.
func Drain(w Watcher) []Event {
	var events []Event
	for {
		select {
		case ev, ok := <-w.Events():
			if !ok {
				return Coalesce(events)
			}
			events = append(events, ev)
		default:
			return Coalesce(events)
		}
	}
}

// Coalesce merges events for the same path, keeping the order of first
// appearance and the latest timestamp.
func Coalesce(events []Event) []Event {
	if len(events) < 2 {
		return events
	}
	index := make(map[string]int, len(events))
	out := events[:0:0]
	for _, ev := range events {
		if i, ok := index[ev.Path]; ok {
			out[i].Op |= ev.Op
			out[i].Timestamp = ev.Timestamp
			continue
		}
		index[ev.Path] = len(out)
		out = append(out, ev)
	}
	return out
}
