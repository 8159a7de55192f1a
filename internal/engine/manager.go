package engine

import (
	"fmt"

	"github.com/dshills/jdedit/internal/engine/buffer"
)

// Manager is the ordered collection of open buffers.
type Manager struct {
	buffers []*buffer.Buffer
	cur     int

	// opts are applied to every buffer the manager creates.
	opts []buffer.Option
}

// NewManager creates an empty manager. opts are applied to every buffer
// created by Create.
func NewManager(opts ...buffer.Option) *Manager {
	return &Manager{opts: opts}
}

// SetOptions replaces the options applied to newly created buffers.
func (m *Manager) SetOptions(opts ...buffer.Option) {
	m.opts = opts
}

// Len returns the number of buffers.
func (m *Manager) Len() int { return len(m.buffers) }

// Index returns the active index. It is meaningless when Len is 0.
func (m *Manager) Index() int { return m.cur }

// Buffers returns the buffers in order. The slice must not be modified.
func (m *Manager) Buffers() []*buffer.Buffer { return m.buffers }

// Buffer returns the buffer at i, or nil.
func (m *Manager) Buffer(i int) *buffer.Buffer {
	if i < 0 || i >= len(m.buffers) {
		return nil
	}
	return m.buffers[i]
}

// Active returns the active buffer, or nil when there are none.
func (m *Manager) Active() *buffer.Buffer {
	if len(m.buffers) == 0 {
		return nil
	}
	return m.buffers[m.cur]
}

// Create appends a new empty buffer and returns its index. The active
// buffer does not change, except that the first buffer becomes active.
func (m *Manager) Create(opts ...buffer.Option) int {
	all := make([]buffer.Option, 0, len(m.opts)+len(opts))
	all = append(all, m.opts...)
	all = append(all, opts...)
	m.buffers = append(m.buffers, buffer.NewBuffer(all...))
	if len(m.buffers) == 1 {
		m.cur = 0
	}
	return len(m.buffers) - 1
}

// Activate makes buffer i active.
func (m *Manager) Activate(i int) error {
	if len(m.buffers) == 0 {
		return ErrNoBuffers
	}
	if i < 0 || i >= len(m.buffers) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	m.cur = i
	return nil
}

// Destroy closes buffer i and removes it from the list. The active index
// is corrected to keep referring to a buffer.
func (m *Manager) Destroy(i int) error {
	n := len(m.buffers)
	if n == 0 {
		return ErrNoBuffers
	}
	if i < 0 || i >= n {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}

	m.buffers[i].Close()
	copy(m.buffers[i:], m.buffers[i+1:])
	m.buffers[n-1] = nil
	m.buffers = m.buffers[:n-1]

	if len(m.buffers) == 0 {
		m.cur = 0
		return nil
	}
	if i < m.cur || (i == m.cur && i == n-1) {
		m.cur--
	}
	return nil
}

// Next activates the following buffer, wrapping to the first.
func (m *Manager) Next() {
	if n := len(m.buffers); n > 0 {
		m.cur = (m.cur + 1) % n
	}
}

// Prev activates the preceding buffer, wrapping to the last.
func (m *Manager) Prev() {
	if n := len(m.buffers); n > 0 {
		m.cur = (m.cur - 1 + n) % n
	}
}

// First activates the first buffer.
func (m *Manager) First() {
	m.cur = 0
}

// Last activates the last buffer.
func (m *Manager) Last() {
	if n := len(m.buffers); n > 0 {
		m.cur = n - 1
	}
}

// Dirty returns the indexes of buffers with unsaved changes.
func (m *Manager) Dirty() []int {
	var out []int
	for i, b := range m.buffers {
		if b.IsDirty() {
			out = append(out, i)
		}
	}
	return out
}
