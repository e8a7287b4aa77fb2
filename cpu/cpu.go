package cpu

import (
	"fmt"
	"iter"
	"log"
	"maps"
	"os"
	"strings"

	"github.com/ezrec/cpu32/io"
)

// Channel is an I/O channel interface.
type Channel io.Channel

var _cpu_defines = map[string]string{
	"BLOCK_SIZE": fmt.Sprintf("%d", BLOCK_SIZE),
	"CELL_SIZE":  fmt.Sprintf("%d", CELL_SIZE),
	"REG_A":      fmt.Sprintf("%d", REG_A),
	"REG_B":      fmt.Sprintf("%d", REG_B),
	"REG_C":      fmt.Sprintf("%d", REG_C),
	"REG_D":      fmt.Sprintf("%d", REG_D),
}

// Cpu is the simulation context of a cpu32 machine.
type Cpu struct {
	Verbose bool    // Set to enable verbose logging.
	Tape    Channel // I/O channel for in, get, out and put.

	Status   Status           // Current execution status.
	Ip       int32            // Instruction pointer, as a cell index.
	Register [REG_COUNT]int32 // Register bank.
	Stack    Stack            // Stack bounds.

	memory *Memory
}

// NewCpu creates a new CPU over a memory image, with a stack of
// stackCapacity cells whose bottom is the cell at index bottom.
//
// The tape defaults to the standard input and output.
func NewCpu(mem *Memory, bottom int, stackCapacity int) (cpu *Cpu, err error) {
	if mem == nil {
		err = ErrMemoryNil
		return
	}

	if stackCapacity < 0 {
		err = ErrStackCapacity
		return
	}

	if bottom < 0 || bottom >= mem.Len() || stackCapacity > bottom+1 {
		err = ErrStackRange
		return
	}

	cpu = &Cpu{
		Tape:   &io.Tape{Input: os.Stdin, Output: os.Stdout},
		Status: STATUS_OK,
		Stack:  newStack(bottom, stackCapacity),
		memory: mem,
	}

	return
}

// Defines for the cpu. The receiver may be nil.
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// Memory returns the memory image of the CPU.
func (cpu *Cpu) Memory() *Memory {
	return cpu.memory
}

// GetRegister returns the value of a register.
// It panics if reg is not a valid register.
func (cpu *Cpu) GetRegister(reg CodeReg) int32 {
	if !reg.Valid() {
		panic(ErrRegisterInvalid)
	}
	return cpu.Register[reg]
}

// SetRegister sets the value of a register.
// It panics if reg is not a valid register.
func (cpu *Cpu) SetRegister(reg CodeReg, value int32) {
	if !reg.Valid() {
		panic(ErrRegisterInvalid)
	}
	cpu.Register[reg] = value
}

// GetStatus returns the current execution status.
func (cpu *Cpu) GetStatus() Status {
	return cpu.Status
}

// GetStackSize returns the number of values on the stack.
func (cpu *Cpu) GetStackSize() int32 {
	return cpu.Stack.Size
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%6s: %v\n", "status", cpu.Status)
	fmt.Fprintf(&sb, "%6s: %d\n", "ip", cpu.Ip)
	for reg := range CodeReg(REG_COUNT) {
		fmt.Fprintf(&sb, "%6s: %d\n", reg.String(), cpu.Register[reg])
	}
	fmt.Fprintf(&sb, "%6s: %d/%d\n", "stack", cpu.Stack.Size, cpu.Stack.Capacity)
	if value, ok := cpu.Stack.Peek(cpu.memory.cells()); ok {
		fmt.Fprintf(&sb, "%6s: %d\n", "top", value)
	} else {
		fmt.Fprintf(&sb, "%6s: -\n", "top")
	}

	return sb.String()
}

// Reset the CPU state.
// - Clears the registers and the instruction pointer.
// - Zeroes and empties the stack.
// - Sets the status to STATUS_OK.
//
// The memory image is kept, including any cells written by the program
// outside of the stack.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Register[:])
	cpu.Ip = 0
	cpu.Status = STATUS_OK
	cpu.Stack.Reset(cpu.memory.cells())
}

// Destroy releases the memory image and clears the CPU.
// A destroyed CPU fails its next step with STATUS_INVALID_ADDRESS.
func (cpu *Cpu) Destroy() {
	if cpu.Tape != nil {
		cpu.Tape.Flush()
	}

	*cpu = Cpu{}
}

// Step executes a single instruction.
//
// It returns false, without doing anything, if the status is not STATUS_OK.
// Otherwise the instruction at Ip is decoded and executed; false is
// returned if it left the CPU in a terminal status, including a halt.
func (cpu *Cpu) Step() (ok bool) {
	if cpu.Status != STATUS_OK {
		return
	}

	cells := cpu.memory.cells()

	ip := int(cpu.Ip)
	if ip < 0 || ip >= cpu.Stack.Roof || ip >= len(cells) {
		cpu.Status = STATUS_INVALID_ADDRESS
		return
	}

	op := CodeOp(cells[ip])
	if !op.Valid() {
		cpu.Status = STATUS_ILLEGAL_INSTRUCTION
		return
	}

	// Operands may not hang off the end of the image.
	if ip+op.Width() > len(cells) {
		cpu.Status = STATUS_INVALID_ADDRESS
		return
	}

	if cpu.Verbose {
		text, _ := Disassemble(cells, ip)
		log.Printf("cpu: %04x: %v", ip, text)
	}

	status, next := cpu.execute(op, cells[ip+1:ip+op.Width()])
	if status != STATUS_OK {
		if cpu.Verbose {
			log.Printf("cpu: %04x: %v", ip, status)
		}
		if status == STATUS_HALTED {
			cpu.Ip = next
		}
		cpu.Status = status
		return
	}

	cpu.Ip = next

	return true
}

// Run executes up to steps instructions.
//
// If the K-th step fails, Run stops and returns K when the CPU halted, or
// -K for any other terminal status. If all steps succeed, steps is
// returned. If the CPU was not in STATUS_OK to begin with, nothing is
// executed and 0 is returned.
func (cpu *Cpu) Run(steps int) (executed int64) {
	if cpu.Status != STATUS_OK {
		return
	}

	for k := int64(1); k <= int64(steps); k++ {
		if !cpu.Step() {
			if cpu.Status == STATUS_HALTED {
				return k
			}
			return -k
		}
	}

	return int64(max(steps, 0))
}

// cells returns the cells of the image, or nil for a missing image.
func (mem *Memory) cells() []int32 {
	if mem == nil {
		return nil
	}
	return mem.Cells
}
