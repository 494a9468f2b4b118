package pool

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(1024)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, 1024, cap(bb.B))
}

func TestByteBuffer_Write(t *testing.T) {
	bb := NewByteBuffer(4)

	bb.MustWrite([]byte("OWO2"))
	require.NoError(t, bb.WriteByte(0x01))
	n, err := bb.Write([]byte{0xAA, 0xBB})
	require.NoError(t, err)
	require.Equal(t, 2, n)

	require.Equal(t, []byte{'O', 'W', 'O', '2', 0x01, 0xAA, 0xBB}, bb.Bytes())
	require.Equal(t, 7, bb.Len())
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(64)
	bb.MustWrite([]byte("some data"))
	originalCap := cap(bb.B)

	bb.Reset()

	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, originalCap, cap(bb.B))
}

func TestByteBuffer_Grow(t *testing.T) {
	t.Run("no-op with spare capacity", func(t *testing.T) {
		bb := NewByteBuffer(64)
		bb.Grow(32)
		require.Equal(t, 64, cap(bb.B))
	})

	t.Run("small buffers grow by the default size", func(t *testing.T) {
		bb := NewByteBuffer(8)
		bb.MustWrite([]byte("12345678"))
		bb.Grow(1)
		require.Equal(t, 8+ContainerBufferDefaultSize, cap(bb.B))
		require.Equal(t, []byte("12345678"), bb.Bytes())
	})

	t.Run("grows at least by the requested amount", func(t *testing.T) {
		bb := NewByteBuffer(0)
		bb.Grow(ContainerBufferDefaultSize * 2)
		require.GreaterOrEqual(t, cap(bb.B), ContainerBufferDefaultSize*2)
	})

	t.Run("large buffers grow by a quarter", func(t *testing.T) {
		size := ContainerBufferDefaultSize * 8
		bb := NewByteBuffer(size)
		bb.B = bb.B[:size]
		bb.Grow(1)
		require.Equal(t, size+size/4, cap(bb.B))
	})
}

func TestByteBuffer_Clone(t *testing.T) {
	bb := NewByteBuffer(16)
	bb.MustWrite([]byte("payload"))

	clone := bb.Clone()
	bb.Reset()
	bb.MustWrite([]byte("XXXXXXX"))

	require.Equal(t, []byte("payload"), clone)
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(16)
	bb.MustWrite([]byte("hello"))

	var out bytes.Buffer
	n, err := bb.WriteTo(&out)
	require.NoError(t, err)
	require.Equal(t, int64(5), n)
	require.Equal(t, "hello", out.String())
}

func TestByteBufferPool(t *testing.T) {
	t.Run("get returns empty buffer", func(t *testing.T) {
		p := NewByteBufferPool(32, 0)
		bb := p.Get()
		require.NotNil(t, bb)
		require.Equal(t, 0, bb.Len())

		bb.MustWrite([]byte("dirty"))
		p.Put(bb)

		again := p.Get()
		require.Equal(t, 0, again.Len())
	})

	t.Run("put ignores nil", func(t *testing.T) {
		p := NewByteBufferPool(32, 0)
		require.NotPanics(t, func() { p.Put(nil) })
	})

	t.Run("oversized buffers are dropped", func(t *testing.T) {
		p := NewByteBufferPool(8, 16)
		bb := NewByteBuffer(1024)
		require.NotPanics(t, func() { p.Put(bb) })
	})

	t.Run("container pool", func(t *testing.T) {
		bb := GetContainerBuffer()
		defer PutContainerBuffer(bb)
		require.Equal(t, 0, bb.Len())
	})
}
