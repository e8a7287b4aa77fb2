package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// newTestStack returns a stack of capacity cells at the end of an image
// with room for a four cell program.
func newTestStack(capacity int) (s *Stack, cells []int32) {
	cells = make([]int32, 4+capacity)
	stack := newStack(len(cells)-1, capacity)
	return &stack, cells
}

func TestStack_Push(t *testing.T) {
	assert := assert.New(t)

	s, cells := newTestStack(4)
	assert.True(s.Empty())
	assert.False(s.Full())
	assert.True(s.Valid())

	assert.True(s.Push(cells, 0x12345678))
	assert.False(s.Empty())
	assert.Equal(int32(1), s.Size)
	assert.Equal(s.Bottom, s.Top)
	assert.Equal(int32(0x12345678), cells[s.Bottom])
	assert.True(s.Valid())

	assert.True(s.Push(cells, -2))
	assert.Equal(int32(2), s.Size)
	assert.Equal(s.Bottom-1, s.Top)
	assert.Equal(int32(-2), cells[s.Bottom-1])
	assert.True(s.Valid())
}

func TestStack_Pop(t *testing.T) {
	assert := assert.New(t)

	s, cells := newTestStack(4)
	s.Push(cells, 0x12345678)
	s.Push(cells, 0x7BCDEF01)

	val, ok := s.Pop(cells)
	assert.True(ok)
	assert.Equal(int32(0x7BCDEF01), val)
	assert.Equal(int32(1), s.Size)
	assert.Equal(int32(0), cells[s.Bottom-1])
	assert.True(s.Valid())

	val, ok = s.Pop(cells)
	assert.True(ok)
	assert.Equal(int32(0x12345678), val)
	assert.Equal(int32(0), s.Size)
	assert.Equal(s.Bottom, s.Top)
	assert.Equal(int32(0), cells[s.Bottom])
	assert.True(s.Valid())
}

func TestStack_Pop_Empty(t *testing.T) {
	assert := assert.New(t)

	s, cells := newTestStack(4)
	val, ok := s.Pop(cells)
	assert.False(ok)
	assert.Equal(int32(0), val)
	assert.True(s.Valid())
}

func TestStack_Peek(t *testing.T) {
	assert := assert.New(t)

	s, cells := newTestStack(4)
	s.Push(cells, 0x12345678)
	s.Push(cells, 0x7BCDEF01)

	val, ok := s.Peek(cells)
	assert.True(ok)
	assert.Equal(int32(0x7BCDEF01), val)
	assert.Equal(int32(2), s.Size)
}

func TestStack_Peek_Empty(t *testing.T) {
	assert := assert.New(t)

	s, cells := newTestStack(4)
	val, ok := s.Peek(cells)
	assert.False(ok)
	assert.Equal(int32(0), val)
}

func TestStack_Full(t *testing.T) {
	assert := assert.New(t)

	s, cells := newTestStack(4)
	for i := range 4 {
		assert.False(s.Full())
		assert.True(s.Push(cells, int32(i)))
	}

	assert.True(s.Full())
	assert.False(s.Empty())
	assert.Equal(s.Roof, s.Top)

	assert.False(s.Push(cells, 99))
	assert.Equal(int32(4), s.Size)
	assert.Equal(int32(0), cells[s.Roof-1])
	assert.True(s.Valid())
}

func TestStack_None(t *testing.T) {
	assert := assert.New(t)

	s, cells := newTestStack(0)
	assert.False(s.Exists())
	assert.True(s.Full())
	assert.False(s.Push(cells, 1))

	_, ok := s.Frame(0)
	assert.False(ok)
	assert.True(s.Valid())

	s.Reset(cells)
	assert.True(s.Valid())
}

func TestStack_Frame(t *testing.T) {
	assert := assert.New(t)

	s, cells := newTestStack(4)

	// Empty stack has no frame.
	_, ok := s.Frame(0)
	assert.False(ok)

	s.Push(cells, 10)
	s.Push(cells, 20)

	addr, ok := s.Frame(0)
	assert.True(ok)
	assert.Equal(s.Top, addr)

	addr, ok = s.Frame(1)
	assert.True(ok)
	assert.Equal(s.Bottom, addr)

	// Below the bottom.
	_, ok = s.Frame(2)
	assert.False(ok)

	// Above the top.
	_, ok = s.Frame(-1)
	assert.False(ok)
}

func TestStack_Reset(t *testing.T) {
	assert := assert.New(t)

	s, cells := newTestStack(4)
	s.Push(cells, 0x12345678)
	s.Push(cells, 0x7BCDEF01)
	cells[s.Roof] = 77
	cells[s.Roof-1] = 66
	assert.Equal(int32(2), s.Size)

	s.Reset(cells)
	assert.True(s.Empty())
	assert.Equal(s.Bottom, s.Top)
	for _, cell := range cells[s.Roof : s.Bottom+1] {
		assert.Equal(int32(0), cell)
	}
	assert.Equal(int32(66), cells[s.Roof-1])
}

func TestStack_Capacity(t *testing.T) {
	assert := assert.New(t)

	const capacity = 16
	s, cells := newTestStack(capacity)

	for i := 0; i < capacity; i++ {
		assert.False(s.Full())
		s.Push(cells, int32(i))
		assert.True(s.Valid())
	}

	assert.True(s.Full())
	assert.Equal(int32(capacity), s.Size)

	for i := capacity - 1; i >= 0; i-- {
		val, ok := s.Pop(cells)
		assert.True(ok)
		assert.Equal(int32(i), val)
		assert.True(s.Valid())
	}
	assert.True(s.Empty())
}
