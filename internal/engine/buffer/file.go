package buffer

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
)

// Load replaces the buffer's rows with the lines read from r. Trailing
// '\n' and '\r' bytes are stripped from each line. The buffer is clean
// afterwards.
func (b *Buffer) Load(r io.Reader) error {
	b.rows.clear()
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadBytes('\n')
		if len(line) > 0 {
			b.InsertRow(b.rows.len(), bytes.TrimRight(line, "\r\n"))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading lines: %w", err)
		}
	}
	b.cx, b.cy, b.rx = 0, 0, 0
	b.rowOffset, b.colOffset = 0, 0
	b.dirty = 0
	return nil
}

// Open loads the named file into the buffer. A file that cannot be opened
// for reading is created empty instead; failure to create it is returned.
func (b *Buffer) Open(path string) error {
	b.filename = path

	f, err := os.Open(path)
	if err != nil {
		cf, cerr := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
		if cerr != nil {
			return fmt.Errorf("opening %s: %w", path, errors.Join(err, cerr))
		}
		_ = cf.Close()
		return b.Load(bytes.NewReader(nil))
	}
	defer f.Close()

	return b.Load(f)
}

// Bytes returns the buffer contents: every row followed by '\n'.
func (b *Buffer) Bytes() []byte {
	size := 0
	for _, r := range b.rows.list {
		size += len(r.chars) + 1
	}
	out := make([]byte, 0, size)
	for _, r := range b.rows.list {
		out = append(out, r.chars...)
		out = append(out, '\n')
	}
	return out
}

// WriteTo writes the buffer contents to w.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.Bytes())
	return int64(n), err
}

// Save writes the buffer to its file, truncating it to the new length.
// On success the buffer is clean and the byte count is returned. On
// failure the buffer stays dirty.
func (b *Buffer) Save() (int, error) {
	if b.filename == "" {
		return 0, ErrNoFilename
	}
	data := b.Bytes()

	f, err := os.OpenFile(b.filename, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	if err := f.Truncate(int64(len(data))); err != nil {
		return 0, err
	}
	n, err := f.Write(data)
	if err != nil {
		return n, err
	}
	if n != len(data) {
		return n, ErrShortWrite
	}

	b.dirty = 0
	return n, nil
}
