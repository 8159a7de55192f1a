package backend

import (
	"errors"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"
)

// Terminal implements Backend on the controlling tty. tcell provides raw
// mode, byte I/O and window size; x/term is the size fallback for ttys
// that cannot answer the size query themselves.
type Terminal struct {
	tty     tcell.Tty
	started atomic.Bool
	resized atomic.Bool
}

// NewTerminal opens the controlling terminal.
func NewTerminal() (*Terminal, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, errors.New("standard input is not a terminal")
	}
	tty, err := tcell.NewDevTty()
	if err != nil {
		return nil, fmt.Errorf("opening tty: %w", err)
	}
	return &Terminal{tty: tty}, nil
}

func (t *Terminal) Init() error {
	if err := t.tty.Start(); err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	t.started.Store(true)
	t.tty.NotifyResize(func() {
		t.resized.Store(true)
	})
	return nil
}

// Shutdown restores the terminal. It may be called from a signal handler
// while the editor goroutine is still reading; only the first call acts.
func (t *Terminal) Shutdown() {
	if !t.started.CompareAndSwap(true, false) {
		return
	}
	_, _ = t.tty.Write([]byte(SeqClearScreen + SeqCursorHome))
	t.tty.NotifyResize(nil)
	_ = t.tty.Drain()
	_ = t.tty.Stop()
	_ = t.tty.Close()
}

func (t *Terminal) Size() (int, int, error) {
	ws, err := t.tty.WindowSize()
	if err == nil && ws.Width > 0 && ws.Height > 0 {
		return ws.Height, ws.Width, nil
	}
	cols, rows, ferr := term.GetSize(int(os.Stdout.Fd()))
	if ferr != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrNoSize, ferr)
	}
	if cols <= 0 || rows <= 0 {
		return 0, 0, ErrNoSize
	}
	return rows, cols, nil
}

// Resized reports whether the window changed size since the last call.
func (t *Terminal) Resized() bool {
	return t.resized.Swap(false)
}

func (t *Terminal) Read(p []byte) (int, error) {
	return t.tty.Read(p)
}

func (t *Terminal) Write(p []byte) (int, error) {
	return t.tty.Write(p)
}
