package app

import (
	"errors"

	"github.com/dshills/jdedit/internal/engine/buffer"
	"github.com/dshills/jdedit/internal/input/key"
)

// search is the state of one incremental search.
type search struct {
	b         *buffer.Buffer
	lastMatch int
	dir       int
	restore   func()

	// cursor and scroll position when the search started
	cx, cy         int
	rowOff, colOff int
}

func newSearch(b *buffer.Buffer) *search {
	s := &search{b: b, lastMatch: -1, dir: 1}
	s.cx, s.cy = b.Cursor()
	s.rowOff, s.colOff = b.Offsets()
	return s
}

// reset puts the cursor and scroll position back where the search began.
func (s *search) reset() {
	s.b.SetCursor(s.cx, s.cy)
	s.b.SetOffsets(s.rowOff, s.colOff)
}

// step is the PromptFunc for incremental search. Arrow keys move to the
// next or previous match; any edit restarts from the top.
func (s *search) step(query string, k key.Key) {
	if s.restore != nil {
		s.restore()
		s.restore = nil
	}

	switch k {
	case key.KeyEnter, key.KeyEscape:
		s.lastMatch = -1
		s.dir = 1
		return
	case key.KeyArrowRight, key.KeyArrowDown:
		s.dir = 1
	case key.KeyArrowLeft, key.KeyArrowUp:
		s.dir = -1
	default:
		s.lastMatch = -1
		s.dir = 1
	}
	if s.lastMatch == -1 {
		s.dir = 1
	}

	row, cx, ok := s.b.Find([]byte(query), s.lastMatch, s.dir)
	if !ok {
		s.lastMatch = -1
		s.reset()
		return
	}
	s.lastMatch = row
	s.b.SetCursor(cx, row)
	// Past the end so the next scroll puts the match on the top line.
	_, colOff := s.b.Offsets()
	s.b.SetOffsets(s.b.NumRows(), colOff)
	s.restore = s.b.OverlayMatch(row, []byte(query))
}

// find runs an incremental search in the active buffer. Escape, or a
// query with no match, puts the cursor and scroll position back where
// they were.
func (e *Editor) find() error {
	s := newSearch(e.ensureBuffer())
	_, err := e.Prompt("Search: %s (Use ESC/Arrows/Enter)", s.step)
	if errors.Is(err, ErrPromptCancelled) {
		s.reset()
		return nil
	}
	return err
}
