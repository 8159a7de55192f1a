package buffer

// InsertRow inserts a new row containing a copy of text at position at.
// at may equal NumRows to append. Out-of-range positions are ignored.
func (b *Buffer) InsertRow(at int, text []byte) {
	if at < 0 || at > b.rows.len() {
		return
	}
	r := &Row{chars: append([]byte(nil), text...)}
	b.rows.insert(at, r)
	r.render = b.tabs.Expand(nil, r.chars)
	r.hl = nil
	// The row below now follows a different row, so it is rescanned too.
	b.rehighlight(at, at+1)
	b.dirty++
}

// DeleteRow removes the row at position at. Out-of-range positions are
// ignored.
func (b *Buffer) DeleteRow(at int) {
	if at < 0 || at >= b.rows.len() {
		return
	}
	b.rows.remove(at)
	b.rehighlight(at, at)
	b.dirty++
}

// RowInsertChar inserts c into row at column col. A column outside the
// row appends at the end.
func (b *Buffer) RowInsertChar(row, col int, c byte) {
	r := b.rows.at(row)
	if r == nil {
		return
	}
	if col < 0 || col > len(r.chars) {
		col = len(r.chars)
	}
	r.chars = append(r.chars, 0)
	copy(r.chars[col+1:], r.chars[col:])
	r.chars[col] = c
	b.updateRow(row)
	b.dirty++
}

// RowDeleteChar removes the byte at column col of row. Out-of-range
// positions are ignored.
func (b *Buffer) RowDeleteChar(row, col int) {
	r := b.rows.at(row)
	if r == nil || col < 0 || col >= len(r.chars) {
		return
	}
	r.chars = append(r.chars[:col], r.chars[col+1:]...)
	b.updateRow(row)
	b.dirty++
}

// RowAppend appends text to the end of row.
func (b *Buffer) RowAppend(row int, text []byte) {
	r := b.rows.at(row)
	if r == nil {
		return
	}
	r.chars = append(r.chars, text...)
	b.updateRow(row)
	b.dirty++
}

// RowTruncate cuts row down to its first n bytes.
func (b *Buffer) RowTruncate(row, n int) {
	r := b.rows.at(row)
	if r == nil || n < 0 || n >= len(r.chars) {
		return
	}
	r.chars = r.chars[:n]
	b.updateRow(row)
	b.dirty++
}

// SplitRow breaks row at column col: the bytes from col onwards move to a
// new row inserted directly below. col is clamped to the row.
func (b *Buffer) SplitRow(row, col int) {
	r := b.rows.at(row)
	if r == nil {
		return
	}
	col = clamp(col, 0, len(r.chars))
	b.InsertRow(row+1, r.chars[col:])
	b.RowTruncate(row, col)
}

// JoinRows appends row onto the end of the row above it and deletes row.
// Joining row 0 or an out-of-range row is ignored.
func (b *Buffer) JoinRows(row int) {
	if row <= 0 || row >= b.rows.len() {
		return
	}
	text := b.rows.at(row).chars
	b.RowAppend(row-1, text)
	b.DeleteRow(row)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
