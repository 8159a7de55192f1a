package buffer

import (
	"bytes"

	"github.com/dshills/jdedit/internal/renderer/highlight"
)

// Find searches row render text for query, starting with the row after
// from in direction dir (+1 or -1) and wrapping past either end. from may
// be -1 to start at row 0 going forward. It returns the row and raw
// column of the first match.
func (b *Buffer) Find(query []byte, from, dir int) (row, cx int, ok bool) {
	n := b.rows.len()
	if n == 0 || len(query) == 0 {
		return 0, 0, false
	}
	if dir >= 0 {
		dir = 1
	} else {
		dir = -1
	}

	current := from
	for i := 0; i < n; i++ {
		current += dir
		if current < 0 {
			current = n - 1
		} else if current >= n {
			current = 0
		}
		r := b.rows.list[current]
		if rx := bytes.Index(r.render, query); rx >= 0 {
			return current, b.tabs.RxToCx(r.chars, rx), true
		}
	}
	return 0, 0, false
}

// OverlayMatch recolors the first match of query on row as
// highlight.ClassMatch and returns a function restoring the row's real
// highlighting. The restore function is safe to call after the row has
// been edited or deleted.
func (b *Buffer) OverlayMatch(row int, query []byte) (restore func()) {
	r := b.rows.at(row)
	if r == nil || len(query) == 0 {
		return func() {}
	}
	rx := bytes.Index(r.render, query)
	if rx < 0 {
		return func() {}
	}

	saved := append([]highlight.Class(nil), r.hl...)
	for i := rx; i < rx+len(query); i++ {
		r.hl[i] = highlight.ClassMatch
	}
	return func() {
		if r.index < 0 || len(r.hl) != len(saved) {
			return
		}
		copy(r.hl, saved)
	}
}
