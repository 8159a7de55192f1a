package app

import (
	"errors"
)

// save writes the active buffer, asking for a filename first when it has
// none. I/O failures are reported in the message bar and leave the buffer
// dirty.
func (e *Editor) save() error {
	b := e.ensureBuffer()

	if b.Filename() == "" {
		name, err := e.Prompt("Save as: %s (ESC to cancel)", nil)
		if errors.Is(err, ErrPromptCancelled) {
			e.SetStatus("Save aborted")
			return nil
		}
		if err != nil {
			return err
		}
		b.SetFilename(name)
		b.SelectSyntax(e.syntaxes)
		e.watchFile(name)
	}

	log := e.log.WithFields(map[string]any{"buffer": shortID(b.ID()), "file": b.Filename()})
	n, err := b.Save()
	if err != nil {
		log.Error("save: %v", NewOperationError("save", b.Filename(), err))
		e.SetStatus("Can't save! I/O error: %s", err)
		return nil
	}
	e.recordSave(b)
	log.Info("saved %d bytes", n)
	e.SetStatus("%d bytes written to disk", n)
	return nil
}

// promptOpen asks for a filename and opens it in a new buffer.
func (e *Editor) promptOpen() error {
	name, err := e.Prompt("Open: %s (ESC to cancel)", nil)
	if errors.Is(err, ErrPromptCancelled) {
		e.SetStatus("Open aborted")
		return nil
	}
	if err != nil {
		return err
	}

	i, err := e.openFile(name)
	if err != nil {
		// Unlike a file named on the command line, a failed interactive
		// open leaves the session running.
		e.log.Error("%v", err)
		e.SetStatus("Can't open %s: %s", name, errors.Unwrap(err))
		return nil
	}
	b := e.buffers.Buffer(i)
	e.SetStatus("Opened %s (%d lines)", name, b.NumRows())
	return nil
}
