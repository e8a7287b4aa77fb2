package cpu

import (
	"encoding/binary"
	"fmt"
	"iter"
	"strings"
)

// Opcode represents a line of assembled code with its source location and generated cells.
type Opcode struct {
	LineNo    int
	Ip        int
	Words     []string
	Cells     []int32
	LinkLabel string // Label to resolve into Cells[LinkIndex].
	LinkIndex int
}

// Program is an assembled program.
type Program struct {
	Opcodes []Opcode
}

// Debug locates a cell of a program in its source.
type Debug struct {
	*Opcode
	Index int
}

// Debug returns the opcode holding the cell at ip.
// The Opcode is nil if ip is outside of the program.
func (prog *Program) Debug(ip int) (dbg Debug) {
	for n, op := range prog.Opcodes {
		if ip >= op.Ip && ip < op.Ip+len(op.Cells) {
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
				Index:  ip - op.Ip,
			}
			break
		}
	}

	return
}

// Codes iterates over every cell of the program, with its index.
func (prog *Program) Codes() iter.Seq2[int, int32] {
	return func(yield func(ip int, cell int32) bool) {
		for _, op := range prog.Opcodes {
			for n, cell := range op.Cells {
				if !yield(op.Ip+n, cell) {
					return
				}
			}
		}
	}
}

// Cells returns the program image.
func (prog *Program) Cells() (cells []int32) {
	for _, cell := range prog.Codes() {
		cells = append(cells, cell)
	}

	return
}

// Binary returns the program image as little-endian bytes.
func (prog *Program) Binary() (bins []byte) {
	for _, cell := range prog.Codes() {
		bins = binary.LittleEndian.AppendUint32(bins, uint32(cell))
	}

	return
}

// Disassemble returns the assembly text of the instruction at ip, and its
// width in cells. Cells that do not decode are shown as a .word directive.
func Disassemble(cells []int32, ip int) (text string, width int) {
	if ip < 0 || ip >= len(cells) {
		return
	}

	op := CodeOp(cells[ip])
	width = op.Width()
	if !op.Valid() || ip+width > len(cells) {
		return fmt.Sprintf(".word %d", cells[ip]), 1
	}

	words := []string{op.String()}
	for n, kind := range op.Args() {
		arg := cells[ip+1+n]
		if reg := CodeReg(arg); kind == ARG_REG && reg.Valid() {
			words = append(words, reg.String())
		} else {
			words = append(words, fmt.Sprintf("%d", arg))
		}
	}

	text = strings.Join(words, " ")
	return
}
