package statusline

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInfoLeft(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want string
	}{
		{"no name", Info{NumRows: 0}, "[No Name] - 0 lines"},
		{"modified", Info{Filename: "a.c", NumRows: 3, Modified: true}, "a.c - 3 lines (modified)"},
		{"long name truncated", Info{Filename: "a_very_long_file_name_indeed.txt", NumRows: 1}, "a_very_long_file_nam - 1 lines"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.info.Left())
		})
	}
}

func TestInfoRight(t *testing.T) {
	i := Info{FileType: "c", Line: 4, NumRows: 10, BufferIndex: 1, BufferCount: 3}
	assert.Equal(t, "c | 5/10 | [buf 2/3]", i.Right())
}

func TestCompose(t *testing.T) {
	i := Info{Filename: "f", NumRows: 2, FileType: "no ft", BufferCount: 1}

	out := string(Compose(nil, i, 60))
	assert.Len(t, out, 60)
	assert.True(t, strings.HasPrefix(out, "f - 2 lines"))
	assert.True(t, strings.HasSuffix(out, "no ft | 1/2 | [buf 1/1]"))

	narrow := string(Compose(nil, i, 15))
	assert.Equal(t, "f - 2 lines    ", narrow, "right part dropped when it does not fit")

	tiny := string(Compose(nil, i, 4))
	assert.Equal(t, "f - ", tiny)
}

func TestMessageExpiry(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	m := NewMessage(0)
	m.SetClock(func() time.Time { return now })
	assert.Equal(t, DefaultMessageTimeout, m.Timeout())

	assert.Empty(t, m.Text())

	m.Set("%d bytes written to disk", 42)
	assert.Equal(t, "42 bytes written to disk", m.Text())

	now = now.Add(4 * time.Second)
	assert.Equal(t, "42 bytes written to disk", m.Text())

	now = now.Add(time.Second)
	assert.Empty(t, m.Text(), "message expires after the timeout")
	assert.Equal(t, "42 bytes written to disk", m.Raw())

	m.Set("again")
	m.Clear()
	assert.Empty(t, m.Text())
}
