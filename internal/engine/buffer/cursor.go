package buffer

// Cursor returns the cursor position in raw coordinates.
func (b *Buffer) Cursor() (cx, cy int) { return b.cx, b.cy }

// RX returns the visual column computed by the last UpdateRX.
func (b *Buffer) RX() int { return b.rx }

// SetCursor moves the cursor, clamping it to the text.
func (b *Buffer) SetCursor(cx, cy int) {
	b.cy = clamp(cy, 0, b.rows.len())
	b.cx = cx
	b.clampCX()
}

// UpdateRX recomputes the visual column from the raw cursor column.
func (b *Buffer) UpdateRX() int {
	b.rx = 0
	if r := b.rows.at(b.cy); r != nil {
		b.rx = b.tabs.CxToRx(r.chars, b.cx)
	}
	return b.rx
}

// Offsets returns the vertical and horizontal scroll offsets.
func (b *Buffer) Offsets() (rowOffset, colOffset int) { return b.rowOffset, b.colOffset }

// SetOffsets stores the scroll offsets.
func (b *Buffer) SetOffsets(rowOffset, colOffset int) {
	b.rowOffset = max(rowOffset, 0)
	b.colOffset = max(colOffset, 0)
}

// currentLen returns the length of the cursor row, 0 on the virtual row.
func (b *Buffer) currentLen() int {
	if r := b.rows.at(b.cy); r != nil {
		return len(r.chars)
	}
	return 0
}

func (b *Buffer) clampCX() {
	b.cx = clamp(b.cx, 0, b.currentLen())
}

// InsertChar inserts c at the cursor and advances it. On the virtual row
// past the end of the file a new row is appended first.
func (b *Buffer) InsertChar(c byte) {
	if b.cy == b.rows.len() {
		b.InsertRow(b.rows.len(), nil)
	}
	b.RowInsertChar(b.cy, b.cx, c)
	b.cx++
}

// InsertNewline splits the line at the cursor. Leading tabs of the
// original line are carried to the new line; the cursor goes to column 0
// of the new line.
func (b *Buffer) InsertNewline() {
	if b.cx == 0 {
		b.InsertRow(b.cy, nil)
		b.cy++
		b.cx = 0
		return
	}

	indent := leadingTabs(b.rows.at(b.cy).chars[:b.cx])
	b.SplitRow(b.cy, b.cx)
	b.cy++
	for i := 0; i < indent; i++ {
		b.RowInsertChar(b.cy, 0, '\t')
	}
	b.cx = 0
}

func leadingTabs(chars []byte) int {
	n := 0
	for n < len(chars) && chars[n] == '\t' {
		n++
	}
	return n
}

// DeleteChar deletes the character left of the cursor. At column 0 the
// line is joined onto the previous one.
func (b *Buffer) DeleteChar() {
	if b.cy == b.rows.len() {
		return
	}
	if b.cx == 0 && b.cy == 0 {
		return
	}

	if b.cx > 0 {
		b.RowDeleteChar(b.cy, b.cx-1)
		b.cx--
		return
	}

	b.cx = b.rows.at(b.cy - 1).Size()
	b.JoinRows(b.cy)
	b.cy--
}

// DeleteForward deletes the character under the cursor.
func (b *Buffer) DeleteForward() {
	if b.cy == b.rows.len() {
		return
	}
	if b.cy == b.rows.len()-1 && b.cx == b.currentLen() {
		return
	}
	b.MoveRight()
	b.DeleteChar()
}

// MoveLeft moves one column left, wrapping to the end of the previous line.
func (b *Buffer) MoveLeft() {
	if b.cx > 0 {
		b.cx--
	} else if b.cy > 0 {
		b.cy--
		b.cx = b.currentLen()
	}
}

// MoveRight moves one column right, wrapping to the start of the next line.
func (b *Buffer) MoveRight() {
	r := b.rows.at(b.cy)
	if r == nil {
		return
	}
	if b.cx < len(r.chars) {
		b.cx++
	} else {
		b.cy++
		b.cx = 0
	}
}

// MoveUp moves one line up.
func (b *Buffer) MoveUp() {
	if b.cy > 0 {
		b.cy--
	}
	b.clampCX()
}

// MoveDown moves one line down, at most to the virtual row.
func (b *Buffer) MoveDown() {
	if b.cy < b.rows.len() {
		b.cy++
	}
	b.clampCX()
}

// MoveHome moves to column 0.
func (b *Buffer) MoveHome() {
	b.cx = 0
}

// MoveEnd moves past the last character of the line.
func (b *Buffer) MoveEnd() {
	b.cx = b.currentLen()
}

// PageUp moves to the top of the screen, then up by one screen.
func (b *Buffer) PageUp(screenRows int) {
	b.cy = b.rowOffset
	for i := 0; i < screenRows; i++ {
		b.MoveUp()
	}
	b.clampCX()
}

// PageDown moves to the bottom of the screen, then down by one screen.
func (b *Buffer) PageDown(screenRows int) {
	b.cy = min(b.rowOffset+screenRows-1, b.rows.len())
	for i := 0; i < screenRows; i++ {
		b.MoveDown()
	}
	b.clampCX()
}
