// Package buffer provides the in-memory text model of one open file.
//
// A Buffer is an ordered list of Rows plus cursor, scroll, dirty and file
// state. Each Row keeps three parallel forms of its text:
//
//   - chars: the raw bytes as stored in the file
//   - render: chars with tabs expanded to spaces
//   - highlight: one highlight class per render byte
//
// render and highlight are derived data. They are recomputed in full
// whenever chars changes, never patched, so len(render) == len(highlight)
// always holds.
//
// Coordinates:
//
//   - cx, cy: raw column and row of the cursor (cy may equal NumRows, the
//     virtual row past the end of the file)
//   - rx: visual column of the cursor in render coordinates
//
// Row positions passed to editing operations are not errors when out of
// range; the operation is silently skipped.
//
// Basic usage:
//
//	b := buffer.NewBuffer(buffer.WithTabStop(4))
//	b.InsertRow(0, []byte("int main(void) {"))
//	b.SetCursor(3, 0)
//	b.InsertChar('x')
//	data := b.Bytes() // "intx main(void) {\n"
//
// Buffers are not safe for concurrent use; the editor drives them from a
// single goroutine.
package buffer
