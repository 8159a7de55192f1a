package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendBufferAppend(t *testing.T) {
	ab := NewAppendBuffer(0)
	ab.AppendString(SeqHideCursor)
	ab.Append([]byte("hello"))
	ab.AppendByte('!')

	assert.Equal(t, SeqHideCursor+"hello!", string(ab.Bytes()))
	assert.Equal(t, len(SeqHideCursor)+6, ab.Len())
	assert.Zero(t, ab.Dropped())
}

func TestAppendBufferLimitDropsWholeAppend(t *testing.T) {
	ab := NewAppendBuffer(8)
	ab.Limit = 8
	ab.AppendString("12345")
	ab.AppendString("6789") // would exceed, dropped entirely
	ab.AppendByte('6')
	ab.Append([]byte("78"))
	ab.AppendByte('9')

	assert.Equal(t, "12345678", string(ab.Bytes()))
	assert.Equal(t, 2, ab.Dropped())
}

func TestAppendBufferFlushSingleWrite(t *testing.T) {
	b := NewNullBackend(24, 80, nil)
	ab := NewAppendBuffer(64)
	for i := 0; i < 10; i++ {
		ab.AppendString("line\r\n")
	}

	require.NoError(t, ab.Flush(b))
	assert.Equal(t, 1, b.Writes())
	assert.Equal(t, 60, len(b.Output()))
	assert.Zero(t, ab.Len(), "flush resets the buffer")

	// Flushing an empty frame writes nothing
	require.NoError(t, ab.Flush(b))
	assert.Equal(t, 1, b.Writes())
}
