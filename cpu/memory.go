package cpu

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

const (
	BLOCK_SIZE = 4096 // Allocation block of a memory image, in bytes.
	CELL_SIZE  = 4    // Size of a cell, in bytes.
)

// memoryLimit is the largest image, in cells, that a signed 32-bit
// instruction pointer can address.
var memoryLimit = math.MaxInt32

// Memory is a flat image of 32-bit signed cells.
//
// The program is stored at the start of the image, and the stack occupies
// the end of it. The cells between are zero.
type Memory struct {
	Cells []int32
}

// Len returns the number of cells in the image.
func (mem *Memory) Len() int {
	if mem == nil {
		return 0
	}
	return len(mem.Cells)
}

// grow extends the image by a number of zero-filled bytes.
func (mem *Memory) grow(size int64) (err error) {
	cells := size / CELL_SIZE
	if int64(len(mem.Cells))+cells > int64(memoryLimit) {
		err = ErrMemoryLimit
		return
	}

	mem.Cells = append(mem.Cells, make([]int32, cells)...)
	return
}

// NewMemory creates a memory image holding the program, followed by room for
// a stack of stackCapacity cells.
//
// The program is read as little-endian 32-bit cells. Memory is allocated in
// BLOCK_SIZE blocks; bottom is the index of the last cell of the image,
// which is the bottom of the stack.
//
// A program whose length is not a multiple of CELL_SIZE fails with
// ErrProgramPartial.
func NewMemory(program io.Reader, stackCapacity int) (mem *Memory, bottom int, err error) {
	if stackCapacity < 0 {
		err = ErrStackCapacity
		return
	}

	br, ok := program.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(program)
	}

	image := &Memory{}
	size := BLOCK_SIZE
	err = image.grow(int64(size))
	if err != nil {
		return
	}

	var loaded int
	for {
		var number uint32
		var n int
		for n < CELL_SIZE {
			var c byte
			c, err = br.ReadByte()
			if errors.Is(err, io.EOF) {
				err = nil
				break
			}
			if err != nil {
				err = fmt.Errorf("%w: %w", ErrProgramRead, err)
				return
			}

			loaded++
			if loaded >= size {
				err = image.grow(BLOCK_SIZE)
				if err != nil {
					return
				}
				size += BLOCK_SIZE
			}
			number |= uint32(c) << (n * 8)
			n++
		}

		if n == 0 {
			break
		}
		if n != CELL_SIZE {
			err = ErrProgramPartial
			return
		}

		image.Cells[(loaded-CELL_SIZE)/CELL_SIZE] = int32(number)
	}

	total := int64(loaded) + int64(stackCapacity)*CELL_SIZE
	if total/CELL_SIZE > int64(memoryLimit) {
		err = ErrMemoryLimit
		return
	}

	blocks := total/BLOCK_SIZE - int64(size/BLOCK_SIZE)
	if total%BLOCK_SIZE != 0 {
		blocks++
	}

	if blocks > 0 {
		err = image.grow(blocks * BLOCK_SIZE)
		if err != nil {
			return
		}
	}

	mem = image
	bottom = len(image.Cells) - 1

	return
}

// NewMemoryFromCells creates a memory image from already decoded cells.
func NewMemoryFromCells(cells []int32, stackCapacity int) (mem *Memory, bottom int, err error) {
	var buf bytes.Buffer
	err = binary.Write(&buf, binary.LittleEndian, cells)
	if err != nil {
		return
	}

	return NewMemory(&buf, stackCapacity)
}
