package backend

import "io"

// AppendBuffer accumulates one screen frame so it can be written to the
// terminal in a single call.
//
// If Limit is set, an append that would grow the buffer past it is
// dropped and the buffer keeps its prior content; the frame is degraded
// but drawing continues.
type AppendBuffer struct {
	b       []byte
	Limit   int
	dropped int
}

// NewAppendBuffer creates an empty buffer with room for size bytes.
func NewAppendBuffer(size int) *AppendBuffer {
	if size < 0 {
		size = 0
	}
	return &AppendBuffer{b: make([]byte, 0, size)}
}

// Append adds p to the frame.
func (ab *AppendBuffer) Append(p []byte) {
	if ab.Limit > 0 && len(ab.b)+len(p) > ab.Limit {
		ab.dropped++
		return
	}
	ab.b = append(ab.b, p...)
}

// AppendString adds s to the frame.
func (ab *AppendBuffer) AppendString(s string) {
	if ab.Limit > 0 && len(ab.b)+len(s) > ab.Limit {
		ab.dropped++
		return
	}
	ab.b = append(ab.b, s...)
}

// AppendByte adds a single byte to the frame.
func (ab *AppendBuffer) AppendByte(c byte) {
	if ab.Limit > 0 && len(ab.b)+1 > ab.Limit {
		ab.dropped++
		return
	}
	ab.b = append(ab.b, c)
}

// Bytes returns the assembled frame.
func (ab *AppendBuffer) Bytes() []byte {
	return ab.b
}

// Len returns the frame length in bytes.
func (ab *AppendBuffer) Len() int {
	return len(ab.b)
}

// Dropped returns how many appends were discarded.
func (ab *AppendBuffer) Dropped() int {
	return ab.dropped
}

// Reset empties the buffer, keeping its storage.
func (ab *AppendBuffer) Reset() {
	ab.b = ab.b[:0]
	ab.dropped = 0
}

// Flush writes the whole frame to w in one call and resets the buffer.
func (ab *AppendBuffer) Flush(w io.Writer) error {
	if len(ab.b) == 0 {
		return nil
	}
	_, err := w.Write(ab.b)
	ab.Reset()
	return err
}
