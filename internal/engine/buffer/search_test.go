package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/jdedit/internal/renderer/highlight"
)

func TestFindWraps(t *testing.T) {
	b := newBufferFromLines(t, "needle", "hay", "a needle")

	row, _, ok := b.Find([]byte("needle"), 2, 1)
	require.True(t, ok)
	assert.Equal(t, 0, row, "forward from row 2 wraps to row 0")

	row, cx, ok := b.Find([]byte("needle"), 0, -1)
	require.True(t, ok)
	assert.Equal(t, 2, row, "backward from row 0 wraps to row 2")
	assert.Equal(t, 2, cx)

	row, _, ok = b.Find([]byte("needle"), -1, 1)
	require.True(t, ok)
	assert.Equal(t, 0, row)
}

func TestFindMapsRenderColumnToChars(t *testing.T) {
	b := newBufferFromLines(t, "\tfoo")
	row, cx, ok := b.Find([]byte("foo"), -1, 1)
	require.True(t, ok)
	assert.Equal(t, 0, row)
	assert.Equal(t, 1, cx)
}

func TestFindNoMatch(t *testing.T) {
	b := newBufferFromLines(t, "abc")
	_, _, ok := b.Find([]byte("zzz"), -1, 1)
	assert.False(t, ok)

	_, _, ok = NewBuffer().Find([]byte("a"), -1, 1)
	assert.False(t, ok)

	_, _, ok = b.Find(nil, -1, 1)
	assert.False(t, ok)
}

func TestOverlayMatchRestores(t *testing.T) {
	b := cBuffer(t, "int x = 42;")
	before := append([]highlight.Class(nil), b.Row(0).Highlight()...)

	restore := b.OverlayMatch(0, []byte("x = 4"))
	hl := b.Row(0).Highlight()
	for i := 4; i < 9; i++ {
		assert.Equal(t, highlight.ClassMatch, hl[i])
	}
	assert.Equal(t, highlight.ClassKeyword2, hl[0])

	restore()
	assert.Equal(t, before, b.Row(0).Highlight())
}

func TestOverlayMatchNoop(t *testing.T) {
	b := newBufferFromLines(t, "abc")
	b.OverlayMatch(0, []byte("zz"))()
	b.OverlayMatch(5, []byte("a"))()

	restore := b.OverlayMatch(0, []byte("b"))
	b.DeleteRow(0)
	restore()
	assert.Zero(t, b.NumRows())
}
