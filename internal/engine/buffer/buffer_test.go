package buffer

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/dshills/jdedit/internal/renderer/highlight"
)

func newBufferFromLines(t *testing.T, lines ...string) *Buffer {
	t.Helper()
	b := NewBuffer()
	for _, l := range lines {
		b.InsertRow(b.NumRows(), []byte(l))
	}
	return b
}

func rowStrings(b *Buffer) []string {
	out := make([]string, b.NumRows())
	for i := range out {
		out[i] = b.Row(i).String()
	}
	return out
}

func requireIndexInvariant(t require.TestingT, b *Buffer) {
	for i := 0; i < b.NumRows(); i++ {
		r := b.Row(i)
		require.Equal(t, i, r.Index(), "row %d index", i)
		require.Equal(t, len(r.Render()), len(r.Highlight()), "row %d render/highlight length", i)
	}
}

func TestNewBuffer(t *testing.T) {
	b := NewBuffer()

	assert.Zero(t, b.NumRows())
	assert.Zero(t, b.Dirty())
	assert.Empty(t, b.Filename())
	assert.Nil(t, b.Syntax())
	assert.Equal(t, "no ft", b.FileType())
	assert.NotEqual(t, uuid.Nil, b.ID())
	assert.True(t, b.GutterEnabled())
	assert.Nil(t, b.Row(0))
}

func TestBufferOptions(t *testing.T) {
	c := highlight.NewRegistry().Lookup("c")
	b := NewBuffer(WithTabStop(8), WithGutter(false), WithFilename("x.c"), WithSyntax(c))

	assert.Equal(t, 8, b.TabExpander().TabWidth())
	assert.False(t, b.GutterEnabled())
	assert.Zero(t, b.GutterWidth())
	assert.Equal(t, "x.c", b.Filename())
	assert.Equal(t, "c", b.FileType())
}

func TestInsertRow(t *testing.T) {
	b := newBufferFromLines(t, "a", "c")
	b.InsertRow(1, []byte("b"))

	assert.Equal(t, []string{"a", "b", "c"}, rowStrings(b))
	assert.Equal(t, 3, b.Dirty())
	requireIndexInvariant(t, b)

	// Out of range inserts are ignored
	b.InsertRow(-1, []byte("x"))
	b.InsertRow(4, []byte("x"))
	assert.Equal(t, 3, b.NumRows())
	assert.Equal(t, 3, b.Dirty())
}

func TestInsertRowCopiesText(t *testing.T) {
	text := []byte("abc")
	b := NewBuffer()
	b.InsertRow(0, text)
	text[0] = 'X'
	assert.Equal(t, "abc", b.Row(0).String())
}

func TestDeleteRow(t *testing.T) {
	b := newBufferFromLines(t, "a", "b", "c")
	b.DeleteRow(0)

	assert.Equal(t, []string{"b", "c"}, rowStrings(b))
	requireIndexInvariant(t, b)

	dirty := b.Dirty()
	b.DeleteRow(5)
	b.DeleteRow(-1)
	assert.Equal(t, 2, b.NumRows())
	assert.Equal(t, dirty, b.Dirty())
}

func TestRowCharOps(t *testing.T) {
	b := newBufferFromLines(t, "ac")

	b.RowInsertChar(0, 1, 'b')
	assert.Equal(t, "abc", b.Row(0).String())

	b.RowInsertChar(0, 99, 'd')
	assert.Equal(t, "abcd", b.Row(0).String(), "column past end appends")

	b.RowDeleteChar(0, 0)
	assert.Equal(t, "bcd", b.Row(0).String())

	b.RowDeleteChar(0, 3)
	b.RowDeleteChar(1, 0)
	assert.Equal(t, "bcd", b.Row(0).String(), "out of range deletes ignored")

	b.RowAppend(0, []byte("\tx"))
	assert.Equal(t, "bcd\tx", b.Row(0).String())
	assert.Equal(t, "bcd x", string(b.Row(0).Render()))
}

func TestTabRender(t *testing.T) {
	b := newBufferFromLines(t, "\tab\tc")
	r := b.Row(0)
	assert.Equal(t, "    ab  c", string(r.Render()))
	assert.Len(t, r.Highlight(), len(r.Render()))
}

func TestSplitAndJoin(t *testing.T) {
	b := newBufferFromLines(t, "hello world", "next")
	b.SplitRow(0, 5)
	assert.Equal(t, []string{"hello", " world", "next"}, rowStrings(b))
	requireIndexInvariant(t, b)

	b.JoinRows(1)
	assert.Equal(t, []string{"hello world", "next"}, rowStrings(b))
	requireIndexInvariant(t, b)

	b.JoinRows(0)
	b.JoinRows(7)
	assert.Equal(t, []string{"hello world", "next"}, rowStrings(b))
}

func TestGutterWidth(t *testing.T) {
	b := NewBuffer()
	assert.Equal(t, 1, b.GutterWidth())
	for i := 0; i < 10; i++ {
		b.InsertRow(0, nil)
	}
	assert.Equal(t, 2, b.GutterWidth())
	for i := 0; i < 90; i++ {
		b.InsertRow(0, nil)
	}
	assert.Equal(t, 3, b.GutterWidth())

	b.SetGutter(false)
	assert.Zero(t, b.GutterWidth())
}

func TestClose(t *testing.T) {
	b := newBufferFromLines(t, "a", "b")
	b.SetCursor(1, 1)
	b.Close()
	assert.Zero(t, b.NumRows())
	cx, cy := b.Cursor()
	assert.Zero(t, cx)
	assert.Zero(t, cy)
}

func TestProperty_InsertThenDeleteRestoresRow(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		text := rapid.SliceOf(rapid.ByteRange(0x09, 0x7e)).Draw(rt, "text")
		col := rapid.IntRange(0, len(text)).Draw(rt, "col")
		c := rapid.ByteRange(0x09, 0x7e).Draw(rt, "c")

		b := NewBuffer()
		b.InsertRow(0, text)
		b.RowInsertChar(0, col, c)
		b.RowDeleteChar(0, col)

		require.Equal(rt, string(text), b.Row(0).String())
	})
}

func TestProperty_SplitThenJoinRestoresRow(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		text := rapid.SliceOf(rapid.SampledFrom([]byte("ab\t /*\"1"))).Draw(rt, "text")
		k := rapid.IntRange(0, len(text)).Draw(rt, "k")

		b := NewBuffer(WithSyntax(highlight.NewRegistry().Lookup("c")))
		b.InsertRow(0, text)
		b.SplitRow(0, k)
		require.Equal(rt, 2, b.NumRows())
		b.JoinRows(1)

		require.Equal(rt, 1, b.NumRows())
		require.Equal(rt, string(text), b.Row(0).String())
		requireIndexInvariant(rt, b)
	})
}

func TestProperty_IndexInvariantUnderRandomEdits(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		b := NewBuffer()
		steps := rapid.IntRange(1, 60).Draw(rt, "steps")
		for i := 0; i < steps; i++ {
			at := rapid.IntRange(-1, b.NumRows()+1).Draw(rt, "at")
			switch rapid.IntRange(0, 4).Draw(rt, "op") {
			case 0:
				b.InsertRow(at, []byte("row"))
			case 1:
				b.DeleteRow(at)
			case 2:
				b.SplitRow(at, 1)
			case 3:
				b.JoinRows(at)
			case 4:
				b.RowInsertChar(at, 0, '\t')
			}
			requireIndexInvariant(rt, b)
		}
	})
}

func TestLoadAndBytes(t *testing.T) {
	b := NewBuffer()
	require.NoError(t, b.Load(strings.NewReader("one\r\ntwo\n\nthree")))

	assert.Equal(t, []string{"one", "two", "", "three"}, rowStrings(b))
	assert.Zero(t, b.Dirty(), "load leaves the buffer clean")
	assert.Equal(t, "one\ntwo\n\nthree\n", string(b.Bytes()))

	var sb strings.Builder
	n, err := b.WriteTo(&sb)
	require.NoError(t, err)
	assert.Equal(t, int64(len(b.Bytes())), n)
}

func TestProperty_LoadSaveRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		lines := rapid.SliceOfN(rapid.StringMatching(`[a-z\t /*"0-9]{0,12}`), 1, 20).Draw(rt, "lines")
		data := []byte(strings.Join(lines, "\n") + "\n")

		b := NewBuffer()
		require.NoError(rt, b.Load(bytes.NewReader(data)))
		require.Equal(rt, string(data), string(b.Bytes()))
	})
}

func TestOpenMissingFileCreatesIt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.txt")
	b := NewBuffer()

	require.NoError(t, b.Open(path))
	assert.Equal(t, path, b.Filename())
	assert.Zero(t, b.NumRows())
	assert.Zero(t, b.Dirty())
	_, err := os.Stat(path)
	assert.NoError(t, err, "file is created on open")
}

func TestOpenFailureIsReported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "f.txt")
	b := NewBuffer()
	assert.Error(t, b.Open(path))
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.txt")
	require.NoError(t, os.WriteFile(path, []byte("a much longer original content\n"), 0o644))

	b := NewBuffer()
	require.NoError(t, b.Open(path))
	b.RowDeleteChar(0, 0)
	b.RowTruncate(0, 3)
	require.True(t, b.IsDirty())

	n, err := b.Save()
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Zero(t, b.Dirty())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, " mu\n", string(data), "file truncated to new length")
}

func TestSaveWithoutFilename(t *testing.T) {
	b := newBufferFromLines(t, "x")
	_, err := b.Save()
	assert.ErrorIs(t, err, ErrNoFilename)
	assert.True(t, b.IsDirty())
}

func TestSaveFailureKeepsDirty(t *testing.T) {
	b := newBufferFromLines(t, "x")
	b.SetFilename(filepath.Join(t.TempDir(), "missing", "f.txt"))
	_, err := b.Save()
	assert.Error(t, err)
	assert.True(t, b.IsDirty())
}
