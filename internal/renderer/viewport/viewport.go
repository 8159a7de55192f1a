// Package viewport maps the cursor to scroll offsets.
//
// The editor never scrolls smoothly: after every change the offsets are
// snapped with the least movement that brings the cursor back into view.
package viewport

// Viewport is the text area of the screen, in cells.
type Viewport struct {
	Rows int
	Cols int
}

// Offsets are the buffer row and render column shown at the top-left
// corner of the viewport.
type Offsets struct {
	Row int
	Col int
}

// New creates a viewport. Negative sizes are treated as 0.
func New(rows, cols int) Viewport {
	return Viewport{Rows: max(rows, 0), Cols: max(cols, 0)}
}

// Shrink returns the viewport with cols columns removed from the left,
// for example to make room for a gutter.
func (v Viewport) Shrink(cols int) Viewport {
	return New(v.Rows, v.Cols-cols)
}

// Scroll returns offsets that keep row cy and render column rx visible.
func (v Viewport) Scroll(o Offsets, cy, rx int) Offsets {
	if v.Visible(o, cy, rx) {
		return o
	}
	return Offsets{
		Row: snap(o.Row, cy, v.Rows),
		Col: snap(o.Col, rx, v.Cols),
	}
}

// Visible reports whether row cy and render column rx are on screen.
func (v Viewport) Visible(o Offsets, cy, rx int) bool {
	return cy >= o.Row && cy < o.Row+v.Rows &&
		rx >= o.Col && rx < o.Col+v.Cols
}

// snap moves offset so pos lies in [offset, offset+span). With no room at
// all the offset follows pos.
func snap(offset, pos, span int) int {
	switch {
	case span <= 0:
		return max(pos, 0)
	case pos < offset:
		return max(pos, 0)
	case pos >= offset+span:
		return pos - span + 1
	}
	return offset
}
