package app

import (
	"github.com/dshills/jdedit/internal/input/key"
	"github.com/dshills/jdedit/internal/renderer/statusline"
)

// quitState tracks Ctrl-Q confirmations. Each dirty buffer needs its own
// round of quit_times extra presses before the editor exits.
type quitState struct {
	target    string // buffer currently being confirmed
	remaining int
	confirmed map[string]bool
}

func (q *quitState) reset() {
	*q = quitState{}
}

// closeState tracks the Ctrl-W confirmation for a dirty buffer.
type closeState struct {
	pending bool
	id      string
}

// ProcessKey handles one key. It returns ErrQuit when the editor should
// exit and a non-nil error only for fatal failures.
func (e *Editor) ProcessKey(k key.Key) error {
	b := e.ensureBuffer()

	if k != key.Ctrl('q') {
		e.quit.reset()
	}
	if k != key.Ctrl('w') {
		e.closing = closeState{}
	}

	switch k {
	case key.KeyEnter:
		b.InsertNewline()

	case key.Ctrl('q'):
		return e.quitEditor()

	case key.Ctrl('s'):
		return e.save()

	case key.Ctrl('f'):
		return e.find()

	case key.Ctrl('o'):
		return e.promptOpen()

	case key.Ctrl('n'):
		i := e.buffers.Create()
		_ = e.buffers.Activate(i)
		e.SetStatus("New buffer %d/%d", i+1, e.buffers.Len())

	case key.Ctrl('w'):
		e.closeActive()

	case key.KeyCtrlArrowRight, key.Ctrl('t'):
		e.buffers.Next()
	case key.KeyCtrlArrowLeft, key.Ctrl('p'):
		e.buffers.Prev()
	case key.KeyCtrlHome, key.Ctrl('a'):
		e.buffers.First()
	case key.KeyCtrlEnd, key.Ctrl('e'):
		e.buffers.Last()

	case key.Ctrl('l'):
		b.SetGutter(!b.GutterEnabled())

	case key.KeyHome:
		b.MoveHome()
	case key.KeyEnd:
		b.MoveEnd()

	case key.KeyBackspace, key.Ctrl('h'):
		b.DeleteChar()
	case key.KeyDelete:
		b.DeleteForward()

	case key.KeyPageUp:
		b.PageUp(e.render.TextRows())
	case key.KeyPageDown:
		b.PageDown(e.render.TextRows())

	case key.KeyArrowLeft:
		b.MoveLeft()
	case key.KeyArrowRight:
		b.MoveRight()
	case key.KeyArrowUp:
		b.MoveUp()
	case key.KeyArrowDown:
		b.MoveDown()

	case key.KeyEscape, key.KeyNone:

	default:
		if insertable(k) {
			b.InsertChar(k.Byte())
		}
	}
	return nil
}

// insertable reports whether k inserts itself as a text byte. Bytes with
// the high bit set are stored as they arrive.
func insertable(k key.Key) bool {
	return k.IsPrintable() || k == key.KeyTab || (k >= 0x80 && k <= 0xff)
}

// quitEditor returns ErrQuit once every dirty buffer has been confirmed.
func (e *Editor) quitEditor() error {
	times := e.cfg.Editor.QuitTimes
	if times <= 0 {
		return ErrQuit
	}
	if e.quit.confirmed == nil {
		e.quit.confirmed = make(map[string]bool)
	}

	for _, i := range e.buffers.Dirty() {
		b := e.buffers.Buffer(i)
		id := b.ID().String()
		if e.quit.confirmed[id] {
			continue
		}
		if e.quit.target != id {
			e.quit.target = id
			e.quit.remaining = times
		}
		if e.quit.remaining > 0 {
			_ = e.buffers.Activate(i)
			e.SetStatus("WARNING!!! %s has unsaved changes. Press Ctrl-Q %d more times to quit.",
				displayFilename(b.Filename()), e.quit.remaining)
			e.quit.remaining--
			return nil
		}
		e.quit.confirmed[id] = true
	}
	return ErrQuit
}

// closeActive closes the active buffer. A dirty buffer needs a second
// Ctrl-W.
func (e *Editor) closeActive() {
	b := e.buffers.Active()
	if b == nil {
		return
	}
	id := b.ID().String()
	if b.IsDirty() && !(e.closing.pending && e.closing.id == id) {
		e.closing = closeState{pending: true, id: id}
		e.SetStatus("WARNING!!! %s has unsaved changes. Press Ctrl-W again to close.", displayFilename(b.Filename()))
		return
	}
	e.closing = closeState{}

	name := b.Filename()
	if err := e.buffers.Destroy(e.buffers.Index()); err != nil {
		e.log.Error("close: %v", err)
		return
	}
	e.unwatchFile(name)
	e.log.WithField("buffer", shortID(b.ID())).Info("closed %s", displayFilename(name))
	e.SetStatus("Closed %s", displayFilename(name))
}

func displayFilename(name string) string {
	if name == "" {
		return statusline.NoName
	}
	return name
}
