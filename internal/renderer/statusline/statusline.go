// Package statusline provides the status bar and the message bar.
package statusline

import (
	"fmt"
	"time"
)

// MaxFilenameWidth is the number of filename bytes shown in the status bar.
const MaxFilenameWidth = 20

// DefaultMessageTimeout is how long a status message stays visible.
const DefaultMessageTimeout = 5 * time.Second

// NoName is shown for buffers without a filename.
const NoName = "[No Name]"

// Info describes the active buffer for the status bar.
type Info struct {
	Filename string
	NumRows  int
	Modified bool
	FileType string

	// Line is the 0-based cursor row.
	Line int

	// BufferIndex is the 0-based position of the buffer, of BufferCount.
	BufferIndex int
	BufferCount int
}

// Left returns the left-aligned part: filename, line count and the
// modified marker.
func (i Info) Left() string {
	name := i.Filename
	if name == "" {
		name = NoName
	}
	if len(name) > MaxFilenameWidth {
		name = name[:MaxFilenameWidth]
	}
	modified := ""
	if i.Modified {
		modified = " (modified)"
	}
	return fmt.Sprintf("%s - %d lines%s", name, i.NumRows, modified)
}

// Right returns the right-aligned part: file type, cursor line and buffer
// position.
func (i Info) Right() string {
	return fmt.Sprintf("%s | %d/%d | [buf %d/%d]",
		i.FileType, i.Line+1, i.NumRows, i.BufferIndex+1, i.BufferCount)
}

// Compose lays the status bar out in exactly width bytes. The right part
// is dropped when it does not fit next to the left part.
func Compose(dst []byte, i Info, width int) []byte {
	left, right := i.Left(), i.Right()
	if len(left) > width {
		left = left[:width]
	}
	dst = append(dst, left...)
	for n := len(left); n < width; n++ {
		if width-n == len(right) {
			return append(dst, right...)
		}
		dst = append(dst, ' ')
	}
	return dst
}

// Message is a transient status message.
type Message struct {
	text    string
	set     time.Time
	timeout time.Duration
	now     func() time.Time
}

// NewMessage creates an empty message that expires after timeout.
func NewMessage(timeout time.Duration) *Message {
	if timeout <= 0 {
		timeout = DefaultMessageTimeout
	}
	return &Message{timeout: timeout, now: time.Now}
}

// SetClock replaces the time source.
func (m *Message) SetClock(now func() time.Time) {
	m.now = now
}

// Timeout returns the display lifetime.
func (m *Message) Timeout() time.Duration {
	return m.timeout
}

// Set formats and stores a new message.
func (m *Message) Set(format string, args ...any) {
	m.text = fmt.Sprintf(format, args...)
	m.set = m.now()
}

// Clear removes the message.
func (m *Message) Clear() {
	m.text = ""
}

// Raw returns the message regardless of age.
func (m *Message) Raw() string {
	return m.text
}

// Text returns the message while it is younger than the timeout, and ""
// afterwards.
func (m *Message) Text() string {
	if m.text == "" || m.now().Sub(m.set) >= m.timeout {
		return ""
	}
	return m.text
}
