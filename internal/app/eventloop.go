package app

import (
	"errors"
	"runtime/debug"

	"github.com/dshills/jdedit/internal/input/key"
	"github.com/dshills/jdedit/internal/renderer"
)

// Run drives the editor until the user quits or input ends. Each
// iteration refreshes the screen, then blocks for one key and handles
// it. Quitting returns nil; any other returned error is fatal.
func (e *Editor) Run() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = NewRecoveredPanicError(r, string(debug.Stack()))
			e.log.Error("recovered panic: %v", r)
		}
	}()

	for {
		if err := e.refresh(); err != nil {
			return err
		}
		k, err := e.readKey()
		if err != nil {
			return WrapError(err, "reading input")
		}
		if err := e.ProcessKey(k); err != nil {
			if errors.Is(err, ErrQuit) {
				e.log.Info("quit")
				return nil
			}
			return err
		}
	}
}

// refresh picks up resizes and file changes, then draws one frame.
func (e *Editor) refresh() error {
	if r, ok := e.term.(resizer); ok && r.Resized() {
		if err := e.updateSize(); err != nil {
			return err
		}
	}
	e.pollWatcher()

	b := e.ensureBuffer()
	err := e.render.Render(renderer.Frame{
		Buffer:  b,
		Index:   e.buffers.Index(),
		Count:   e.buffers.Len(),
		Message: e.message.Text(),
	})
	if err != nil {
		return NewComponentError("renderer", "draw", err)
	}
	if n := e.render.LastDropped(); n > 0 {
		e.log.WithComponent("renderer").Debug("frame %d dropped %d appends", e.render.FrameCount(), n)
	}
	return nil
}

func (e *Editor) readKey() (key.Key, error) {
	return e.keys.ReadKey()
}
