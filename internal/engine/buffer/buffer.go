package buffer

import (
	"errors"

	"github.com/google/uuid"

	"github.com/dshills/jdedit/internal/renderer/gutter"
	"github.com/dshills/jdedit/internal/renderer/highlight"
	"github.com/dshills/jdedit/internal/renderer/layout"
)

// Errors returned by buffer operations.
var (
	ErrNoFilename = errors.New("buffer has no filename")
	ErrShortWrite = errors.New("short write")
)

// Buffer is one open file.
type Buffer struct {
	id   uuid.UUID
	rows rowStore
	tabs *layout.TabExpander

	// Cursor in raw coordinates, and its visual column.
	cx, cy int
	rx     int

	rowOffset, colOffset int

	gutter bool

	dirty    int
	filename string
	syntax   *highlight.Syntax
}

// NewBuffer creates a new empty buffer.
func NewBuffer(opts ...Option) *Buffer {
	b := &Buffer{
		id:     uuid.New(),
		tabs:   layout.DefaultTabExpander(),
		gutter: true,
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// ID returns the buffer's unique identifier.
func (b *Buffer) ID() uuid.UUID { return b.id }

// NumRows returns the number of rows.
func (b *Buffer) NumRows() int { return b.rows.len() }

// Row returns the row at position i, or nil when out of range.
func (b *Buffer) Row(i int) *Row { return b.rows.at(i) }

// Dirty returns the number of mutations since the last load or save.
func (b *Buffer) Dirty() int { return b.dirty }

// IsDirty reports whether the buffer has unsaved changes.
func (b *Buffer) IsDirty() bool { return b.dirty > 0 }

// Filename returns the buffer's filename, or "" if it has none.
func (b *Buffer) Filename() string { return b.filename }

// SetFilename changes the filename. Highlighting is not reselected; call
// SelectSyntax afterwards if the file type may have changed.
func (b *Buffer) SetFilename(name string) { b.filename = name }

// Syntax returns the buffer's highlighting rules, or nil.
func (b *Buffer) Syntax() *highlight.Syntax { return b.syntax }

// FileType returns the syntax file type, or "no ft".
func (b *Buffer) FileType() string {
	if b.syntax == nil {
		return "no ft"
	}
	return b.syntax.FileType
}

// TabExpander returns the buffer's tab mapping.
func (b *Buffer) TabExpander() *layout.TabExpander { return b.tabs }

// GutterEnabled reports whether line numbers are drawn.
func (b *Buffer) GutterEnabled() bool { return b.gutter }

// SetGutter enables or disables line numbers.
func (b *Buffer) SetGutter(enabled bool) { b.gutter = enabled }

// GutterWidth returns the number of digits in NumRows, or 0 when the
// gutter is disabled.
func (b *Buffer) GutterWidth() int {
	if !b.gutter {
		return 0
	}
	return gutter.CountDigits(b.rows.len())
}

// SetSyntax sets the highlighting rules and rehighlights every row.
func (b *Buffer) SetSyntax(s *highlight.Syntax) {
	b.syntax = s
	b.rehighlight(0, b.rows.len()-1)
}

// SelectSyntax picks the syntax matching the filename from reg.
func (b *Buffer) SelectSyntax(reg *highlight.Registry) {
	b.SetSyntax(reg.Select(b.filename))
}

// Close releases every row. The buffer is empty afterwards.
func (b *Buffer) Close() {
	b.rows.clear()
	b.cx, b.cy, b.rx = 0, 0, 0
	b.rowOffset, b.colOffset = 0, 0
}

// updateRow recomputes the render form and highlighting of row at.
func (b *Buffer) updateRow(at int) {
	r := b.rows.at(at)
	if r == nil {
		return
	}
	r.render = b.tabs.Expand(r.render, r.chars)
	if cap(r.hl) >= len(r.render) {
		r.hl = r.hl[:len(r.render)]
	} else {
		r.hl = make([]highlight.Class, len(r.render))
	}
	b.rehighlight(at, at)
}

// rehighlight rescans rows starting at at. Rows up to through are always
// rescanned; past that, a row is rescanned only when the open-comment flag
// of the row above it changed. Rows are visited through a worklist so an
// unterminated comment spanning the whole file costs no stack depth.
func (b *Buffer) rehighlight(at, through int) {
	if at < 0 {
		at = 0
	}
	n := b.rows.len()
	work := []int{at}
	for len(work) > 0 {
		i := work[0]
		work = work[1:]
		if i >= n {
			continue
		}
		r := b.rows.list[i]
		if len(r.hl) != len(r.render) {
			r.hl = make([]highlight.Class, len(r.render))
		}
		open := b.syntax.Scan(r.render, r.hl, b.openBefore(i))
		changed := open != r.openComment
		r.openComment = open
		if changed || i < through {
			work = append(work, i+1)
		}
	}
}

// openBefore reports whether a multiline comment is open entering row i.
func (b *Buffer) openBefore(i int) bool {
	if i <= 0 || i > b.rows.len() {
		return false
	}
	return b.rows.list[i-1].openComment
}
