package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func newTestWatcher(t *testing.T) *FSNotifyWatcher {
	t.Helper()
	w, err := NewFSNotifyWatcher()
	if err != nil {
		t.Fatalf("NewFSNotifyWatcher error = %v", err)
	}
	t.Cleanup(func() { w.Close() })
	return w
}

// waitFor reads events until one for path satisfying match arrives.
func waitFor(t *testing.T, w *FSNotifyWatcher, path string, match func(Op) bool) Event {
	t.Helper()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case ev := <-w.Events():
			if ev.Path == path && match(ev.Op) {
				return ev
			}
		case <-timeout:
			t.Fatalf("timed out waiting for event on %s", path)
			return Event{}
		}
	}
}

func TestFSNotifyWatcher_WatchUnwatch(t *testing.T) {
	w := newTestWatcher(t)
	path := filepath.Join(t.TempDir(), "a.txt")

	if err := w.Watch(path); err != nil {
		t.Fatalf("Watch error = %v", err)
	}
	if err := w.Watch(path); err != ErrAlreadyWatching {
		t.Errorf("Watch again error = %v, want ErrAlreadyWatching", err)
	}

	if err := w.Unwatch(path); err != nil {
		t.Fatalf("Unwatch error = %v", err)
	}
	if err := w.Unwatch(path); err != ErrNotWatching {
		t.Errorf("Unwatch again error = %v, want ErrNotWatching", err)
	}
}

func TestFSNotifyWatcher_SharedDirectory(t *testing.T) {
	w := newTestWatcher(t)
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")

	if err := w.Watch(a); err != nil {
		t.Fatal(err)
	}
	if err := w.Watch(b); err != nil {
		t.Fatal(err)
	}
	if err := w.Unwatch(a); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(b, []byte("still watched"), 0o644); err != nil {
		t.Fatal(err)
	}
	waitFor(t, w, b, Op.Modified)

	if err := w.Watch(a); err != nil {
		t.Errorf("re-Watch of released file error = %v", err)
	}
}

func TestFSNotifyWatcher_ReportsWrites(t *testing.T) {
	w := newTestWatcher(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "watched.txt")
	other := filepath.Join(dir, "other.txt")

	if err := os.WriteFile(path, []byte("one"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := w.Watch(path); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(other, []byte("ignored"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("two"), 0o644); err != nil {
		t.Fatal(err)
	}

	ev := waitFor(t, w, path, Op.Modified)
	if ev.Timestamp.IsZero() {
		t.Error("event should carry a timestamp")
	}
}

func TestFSNotifyWatcher_ReportsRemove(t *testing.T) {
	w := newTestWatcher(t)
	path := filepath.Join(t.TempDir(), "gone.txt")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := w.Watch(path); err != nil {
		t.Fatal(err)
	}

	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	waitFor(t, w, path, Op.Gone)
}

func TestFSNotifyWatcher_Close(t *testing.T) {
	w, err := NewFSNotifyWatcher()
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close error = %v", err)
	}
	if err := w.Watch("x"); err != ErrWatcherClosed {
		t.Errorf("Watch after Close error = %v, want ErrWatcherClosed", err)
	}
	if _, ok := <-w.Events(); ok {
		t.Error("events channel should be closed")
	}
}

func TestFSNotifyWatcher_ReportsDroppedEvents(t *testing.T) {
	errs := make(chan error, 16)
	w, err := NewFSNotifyWatcher(func(c *Config) {
		c.BufferSize = 0
		c.OnError = func(err error) {
			select {
			case errs <- err:
			default:
			}
		}
	})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { w.Close() })

	path := filepath.Join(t.TempDir(), "busy.txt")
	if err := w.Watch(path); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case err := <-errs:
		if err != ErrEventDropped {
			t.Errorf("error = %v, want ErrEventDropped", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for dropped event report")
	}
}

func TestWithErrorHandler(t *testing.T) {
	var got error
	config := DefaultConfig()
	WithErrorHandler(func(err error) { got = err })(&config)

	config.OnError(ErrEventDropped)
	if got != ErrEventDropped {
		t.Errorf("handler received %v", got)
	}
}
