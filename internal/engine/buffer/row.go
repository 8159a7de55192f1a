package buffer

import "github.com/dshills/jdedit/internal/renderer/highlight"

// Row is one line of text with its render form and highlight classes.
type Row struct {
	index       int
	chars       []byte
	render      []byte
	hl          []highlight.Class
	openComment bool
}

// Index returns the row's position in its buffer.
func (r *Row) Index() int { return r.index }

// Chars returns the raw text. The slice must not be modified.
func (r *Row) Chars() []byte { return r.chars }

// Size returns the raw length in bytes.
func (r *Row) Size() int { return len(r.chars) }

// Render returns the tab-expanded text. The slice must not be modified.
func (r *Row) Render() []byte { return r.render }

// Highlight returns one class per render byte. The slice must not be
// modified; use Buffer.OverlayMatch for temporary recoloring.
func (r *Row) Highlight() []highlight.Class { return r.hl }

// OpenComment reports whether a multiline comment is still open at the end
// of the row.
func (r *Row) OpenComment() bool { return r.openComment }

// String returns the raw text.
func (r *Row) String() string { return string(r.chars) }

// rowStore is the ordered row list. It owns the index invariant:
// list[i].index == i after every mutation.
type rowStore struct {
	list []*Row
}

func (s *rowStore) len() int { return len(s.list) }

func (s *rowStore) at(i int) *Row {
	if i < 0 || i >= len(s.list) {
		return nil
	}
	return s.list[i]
}

// insert places r at position at, shifting later rows down.
func (s *rowStore) insert(at int, r *Row) {
	s.list = append(s.list, nil)
	copy(s.list[at+1:], s.list[at:])
	s.list[at] = r
	s.reindex(at)
}

// remove deletes and returns the row at position at.
func (s *rowStore) remove(at int) *Row {
	r := s.list[at]
	copy(s.list[at:], s.list[at+1:])
	s.list[len(s.list)-1] = nil
	s.list = s.list[:len(s.list)-1]
	s.reindex(at)
	r.index = -1
	return r
}

// reindex restores the index invariant from position from onwards.
func (s *rowStore) reindex(from int) {
	for i := from; i < len(s.list); i++ {
		s.list[i].index = i
	}
}

// clear releases every row.
func (s *rowStore) clear() {
	for i := range s.list {
		s.list[i] = nil
	}
	s.list = nil
}
