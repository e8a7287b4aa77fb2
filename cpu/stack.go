package cpu

// Stack is the bounds of a stack living at the end of a memory image.
//
// The stack grows downwards, from Bottom (the highest cell) towards Roof
// (the lowest cell it may use). Top is the cell holding the most recently
// pushed value; for an empty stack Top is Bottom.
type Stack struct {
	Bottom   int   // Highest stack cell, head of an empty stack.
	Roof     int   // Lowest stack cell.
	Top      int   // Current head.
	Size     int32 // Number of live cells.
	Capacity int   // Maximum number of live cells.
}

// newStack creates the bounds of an empty stack of capacity cells ending at bottom.
func newStack(bottom int, capacity int) Stack {
	return Stack{
		Bottom:   bottom,
		Roof:     bottom - capacity + 1,
		Top:      bottom,
		Capacity: capacity,
	}
}

// Exists returns true if the stack has any capacity at all.
func (s *Stack) Exists() bool {
	return s.Capacity > 0
}

// Empty returns true if the stack holds no values.
func (s *Stack) Empty() bool {
	return s.Size == 0
}

// Full returns true if there is no cell left for a push.
func (s *Stack) Full() bool {
	return s.Bottom-int(s.Size) < s.Roof
}

// Push writes value to a new top of the stack.
func (s *Stack) Push(cells []int32, value int32) (ok bool) {
	if s.Full() {
		return
	}

	// Top is already at the first free cell when empty.
	if s.Size != 0 {
		s.Top--
	}
	cells[s.Top] = value
	s.Size++

	return true
}

// Pop removes the top value from the stack, zeroing its cell.
func (s *Stack) Pop(cells []int32) (value int32, ok bool) {
	value, ok = s.Peek(cells)
	if !ok {
		return
	}

	cells[s.Top] = 0
	if s.Size > 1 {
		s.Top++
	}
	s.Size--

	return
}

// Peek returns the top value of the stack.
func (s *Stack) Peek(cells []int32) (value int32, ok bool) {
	if s.Empty() {
		return
	}

	return cells[s.Top], true
}

// Frame returns the cell at offset from the top of the stack, for
// frame-relative addressing. The offset must not be negative, and the cell
// must not lie below the bottom of the stack.
func (s *Stack) Frame(offset int64) (addr int, ok bool) {
	if !s.Exists() || s.Empty() || offset < 0 {
		return
	}

	target := int64(s.Top) + offset
	if target > int64(s.Bottom) {
		return
	}

	return int(target), true
}

// Reset empties the stack and zeroes all of its cells.
func (s *Stack) Reset(cells []int32) {
	if s.Roof <= s.Bottom {
		clear(cells[s.Roof : s.Bottom+1])
	}

	s.Top = s.Bottom
	s.Size = 0
}

// Valid returns true if the stack bounds are consistent.
//
// An empty stack has Top at Bottom. The first push also writes at Bottom,
// so a stack of Size values has Top at Bottom-Size+1.
func (s *Stack) Valid() bool {
	if s.Size < 0 || int(s.Size) > s.Capacity {
		return false
	}
	if s.Size == 0 {
		return s.Top == s.Bottom
	}
	return s.Top == s.Bottom-int(s.Size)+1 && s.Roof <= s.Top
}
