package key

import (
	"bytes"
	"io"
)

// Decoder turns raw terminal bytes into logical keys.
//
// Sequences are assumed to arrive within a single read, which is how
// terminals deliver them; a lone ESC at the end of a read is the Escape
// key itself.
type Decoder struct {
	r       io.Reader
	buf     []byte
	pending []byte
}

// NewDecoder creates a decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{
		r:   r,
		buf: make([]byte, 64),
	}
}

// ReadKey blocks until one key is available.
func (d *Decoder) ReadKey() (Key, error) {
	for len(d.pending) == 0 {
		n, err := d.r.Read(d.buf)
		if n > 0 {
			d.pending = append(d.pending, d.buf[:n]...)
			break
		}
		if err != nil {
			return KeyNone, err
		}
	}

	k, n := Decode(d.pending)
	d.pending = d.pending[n:]
	return k, nil
}

// Buffered returns the number of undecoded bytes held by the decoder.
func (d *Decoder) Buffered() int {
	return len(d.pending)
}

var tildeKeys = map[byte]Key{
	'1': KeyHome,
	'3': KeyDelete,
	'4': KeyEnd,
	'5': KeyPageUp,
	'6': KeyPageDown,
	'7': KeyHome,
	'8': KeyEnd,
}

var finalKeys = map[byte]Key{
	'A': KeyArrowUp,
	'B': KeyArrowDown,
	'C': KeyArrowRight,
	'D': KeyArrowLeft,
	'H': KeyHome,
	'F': KeyEnd,
}

var ctrlFinalKeys = map[byte]Key{
	'C': KeyCtrlArrowRight,
	'D': KeyCtrlArrowLeft,
	'H': KeyCtrlHome,
	'F': KeyCtrlEnd,
}

// Decode decodes the first key in p and returns it with the number of
// bytes consumed. p must not be empty.
func Decode(p []byte) (Key, int) {
	if p[0] != 0x1b {
		return Key(p[0]), 1
	}
	if len(p) == 1 || (p[1] != '[' && p[1] != 'O') {
		return KeyEscape, 1
	}
	if len(p) < 3 {
		return KeyEscape, len(p)
	}

	if p[1] == 'O' {
		if k, ok := finalKeys[p[2]]; ok {
			return k, 3
		}
		return KeyEscape, 3
	}

	if k, ok := finalKeys[p[2]]; ok {
		return k, 3
	}

	// Parameterised CSI: collect up to the final byte in 0x40..0x7e.
	end := 2
	for end < len(p) && (p[end] < 0x40 || p[end] > 0x7e) {
		end++
	}
	if end == len(p) {
		return KeyEscape, len(p)
	}
	params, final := p[2:end], p[end]
	consumed := end + 1

	switch {
	case final == '~' && len(params) == 1:
		if k, ok := tildeKeys[params[0]]; ok {
			return k, consumed
		}
	case bytes.Equal(params, []byte("1;5")):
		if k, ok := ctrlFinalKeys[final]; ok {
			return k, consumed
		}
	}
	return KeyEscape, consumed
}
