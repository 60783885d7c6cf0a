package pool

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(128)

	require.NotNil(t, bb)
	require.Equal(t, 0, bb.Len())
	require.Equal(t, 128, bb.Cap())
}

func TestByteBuffer_Writes(t *testing.T) {
	bb := NewByteBuffer(4)

	bb.MustWrite([]byte("ab"))
	n, err := bb.Write([]byte("cd"))
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.NoError(t, bb.WriteByte('e'))
	require.Equal(t, []byte("abcde"), bb.Bytes())

	var out bytes.Buffer
	written, err := bb.WriteTo(&out)
	require.NoError(t, err)
	require.Equal(t, int64(5), written)
	require.Equal(t, "abcde", out.String())

	capBefore := bb.Cap()
	bb.Reset()
	require.Equal(t, 0, bb.Len())
	require.Equal(t, capBefore, bb.Cap(), "Reset should preserve capacity")
}

func TestByteBuffer_Grow(t *testing.T) {
	t.Run("No-op with enough capacity", func(t *testing.T) {
		bb := NewByteBuffer(64)
		bb.Grow(64)
		require.Equal(t, 64, bb.Cap())
	})

	t.Run("Small buffer grows by default size", func(t *testing.T) {
		bb := NewByteBuffer(8)
		bb.MustWrite([]byte("12345678"))
		bb.Grow(1)
		require.Equal(t, 8+FrameBufferDefaultSize, bb.Cap())
		require.Equal(t, []byte("12345678"), bb.Bytes(), "Grow must keep contents")
	})

	t.Run("Large request wins", func(t *testing.T) {
		bb := NewByteBuffer(0)
		bb.Grow(FrameBufferDefaultSize * 3)
		require.GreaterOrEqual(t, bb.Cap(), FrameBufferDefaultSize*3)
	})

	t.Run("Large buffer grows by a quarter", func(t *testing.T) {
		size := 8 * FrameBufferDefaultSize
		bb := NewByteBuffer(size)
		bb.MustWrite(make([]byte, size))
		bb.Grow(1)
		require.Equal(t, size+size/4, bb.Cap())
	})
}

func TestByteBufferPool(t *testing.T) {
	t.Run("Reused buffers are reset", func(t *testing.T) {
		p := NewByteBufferPool(16, 0)
		bb := p.Get()
		bb.MustWrite([]byte("frame"))
		p.Put(bb)

		again := p.Get()
		require.Equal(t, 0, again.Len())
	})

	t.Run("Oversized buffers are dropped", func(t *testing.T) {
		p := NewByteBufferPool(16, 32)
		bb := p.Get()
		bb.Grow(1024)
		require.NotPanics(t, func() { p.Put(bb) })
	})

	t.Run("Nil put is ignored", func(t *testing.T) {
		p := NewByteBufferPool(16, 32)
		require.NotPanics(t, func() { p.Put(nil) })
	})

	t.Run("Default frame pool", func(t *testing.T) {
		bb := GetFrameBuffer()
		require.NotNil(t, bb)
		require.GreaterOrEqual(t, bb.Cap(), 0)
		bb.MustWrite([]byte{1, 2, 3})
		PutFrameBuffer(bb)
	})
}
