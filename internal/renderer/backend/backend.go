// Package backend provides terminal backend abstraction for the renderer.
//
// A Backend is a raw byte terminal: the editor reads undecoded key bytes
// from it and writes fully assembled frames to it. Escape sequences are
// produced by the renderer, not by the backend.
package backend

import (
	"bytes"
	"errors"
	"io"
)

// ErrNoSize is returned when the terminal cannot report a usable size.
var ErrNoSize = errors.New("terminal size unavailable")

// Backend is the terminal the editor runs in.
type Backend interface {
	io.Reader
	io.Writer

	// Init puts the terminal into raw mode.
	Init() error

	// Shutdown clears the screen and restores the original terminal mode.
	Shutdown()

	// Size returns the terminal size as (rows, cols).
	Size() (rows, cols int, err error)
}

// Escape sequences shared by backends and the renderer.
const (
	SeqClearScreen = "\x1b[2J"
	SeqCursorHome  = "\x1b[H"
	SeqHideCursor  = "\x1b[?25l"
	SeqShowCursor  = "\x1b[?25h"
	SeqEraseLine   = "\x1b[K"
	SeqInvert      = "\x1b[7m"
	SeqResetStyle  = "\x1b[m"
	SeqDefaultFG   = "\x1b[39m"
)

// NullBackend is an in-memory backend for testing. Input is served from
// a fixed byte slice and every write is captured.
type NullBackend struct {
	rows, cols int
	sizeErr    error
	input      *bytes.Reader
	output     bytes.Buffer
	writes     int
	active     bool
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(rows, cols int, input []byte) *NullBackend {
	return &NullBackend{
		rows:  rows,
		cols:  cols,
		input: bytes.NewReader(input),
	}
}

func (b *NullBackend) Init() error {
	b.active = true
	return nil
}

func (b *NullBackend) Shutdown() {
	if !b.active {
		return
	}
	b.active = false
	b.output.WriteString(SeqClearScreen + SeqCursorHome)
}

func (b *NullBackend) Size() (int, int, error) {
	if b.sizeErr != nil {
		return 0, 0, b.sizeErr
	}
	return b.rows, b.cols, nil
}

// SetSize changes the reported terminal size.
func (b *NullBackend) SetSize(rows, cols int) {
	b.rows, b.cols = rows, cols
}

// FailSize makes subsequent Size calls return err.
func (b *NullBackend) FailSize(err error) {
	b.sizeErr = err
}

func (b *NullBackend) Read(p []byte) (int, error) {
	return b.input.Read(p)
}

func (b *NullBackend) Write(p []byte) (int, error) {
	b.writes++
	return b.output.Write(p)
}

// Output returns everything written so far.
func (b *NullBackend) Output() []byte {
	return b.output.Bytes()
}

// Writes returns the number of Write calls made.
func (b *NullBackend) Writes() int {
	return b.writes
}

// Active reports whether the backend is between Init and Shutdown.
func (b *NullBackend) Active() bool {
	return b.active
}
