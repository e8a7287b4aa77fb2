package cpu

import (
	"log"

	"github.com/ezrec/cpu32/io"
)

// register decodes a register operand.
func register(arg int32) (reg CodeReg, ok bool) {
	reg = CodeReg(arg)
	ok = reg.Valid()
	return
}

// execute performs a decoded instruction with its operand cells.
//
// It returns the resulting status and the next instruction pointer. The
// registers, stack and tape are updated in place. A failing instruction
// leaves the registers and the stack unchanged.
func (cpu *Cpu) execute(op CodeOp, args []int32) (status Status, next int32) {
	cells := cpu.memory.Cells
	regs := &cpu.Register
	next = cpu.Ip + int32(op.Width())

	// All operations but nop, halt and loop take a register first.
	var reg CodeReg
	switch op {
	case OP_NOP, OP_HALT, OP_LOOP:
	default:
		var ok bool
		reg, ok = register(args[0])
		if !ok {
			return STATUS_ILLEGAL_OPERAND, cpu.Ip
		}
	}

	switch op {
	case OP_NOP:
		// pass
	case OP_HALT:
		return STATUS_HALTED, next
	case OP_ADD:
		regs[REG_A] += regs[reg]
	case OP_SUB:
		regs[REG_A] -= regs[reg]
	case OP_MUL:
		regs[REG_A] *= regs[reg]
	case OP_DIV:
		if regs[reg] == 0 {
			return STATUS_DIV_BY_ZERO, cpu.Ip
		}
		regs[REG_A] /= regs[reg]
	case OP_INC:
		regs[reg]++
	case OP_DEC:
		regs[reg]--
	case OP_LOOP:
		if regs[REG_C] != 0 {
			next = args[0]
		}
	case OP_MOVR:
		regs[reg] = args[1]
	case OP_LOAD:
		addr, ok := cpu.Stack.Frame(int64(regs[REG_D]) + int64(args[1]))
		if !ok {
			return STATUS_INVALID_STACK_OPERATION, cpu.Ip
		}
		regs[reg] = cells[addr]
	case OP_STORE:
		addr, ok := cpu.Stack.Frame(int64(regs[REG_D]) + int64(args[1]))
		if !ok {
			return STATUS_INVALID_STACK_OPERATION, cpu.Ip
		}
		cells[addr] = regs[reg]
	case OP_IN:
		if cpu.Tape == nil {
			return STATUS_IO_ERROR, cpu.Ip
		}
		value, result, err := cpu.Tape.ScanNumber()
		if err != nil {
			cpu.ioError(err)
			return STATUS_IO_ERROR, cpu.Ip
		}
		switch result {
		case io.SCAN_VALUE:
			regs[reg] = value
		case io.SCAN_EOF:
			regs[REG_C] = 0
			regs[reg] = -1
		default:
			return STATUS_IO_ERROR, cpu.Ip
		}
	case OP_GET:
		if cpu.Tape == nil {
			return STATUS_IO_ERROR, cpu.Ip
		}
		value, ok, err := cpu.Tape.GetByte()
		if err != nil {
			cpu.ioError(err)
			return STATUS_IO_ERROR, cpu.Ip
		}
		if ok {
			regs[reg] = int32(value)
		} else {
			regs[REG_C] = 0
			regs[reg] = -1
		}
	case OP_OUT:
		if cpu.Tape == nil {
			return STATUS_IO_ERROR, cpu.Ip
		}
		err := cpu.Tape.PrintNumber(regs[reg])
		if err != nil {
			cpu.ioError(err)
			return STATUS_IO_ERROR, cpu.Ip
		}
	case OP_PUT:
		value := regs[reg]
		if value < 0 || value > 0xff {
			return STATUS_ILLEGAL_OPERAND, cpu.Ip
		}
		if cpu.Tape == nil {
			return STATUS_IO_ERROR, cpu.Ip
		}
		err := cpu.Tape.PutByte(byte(value))
		if err != nil {
			cpu.ioError(err)
			return STATUS_IO_ERROR, cpu.Ip
		}
	case OP_SWAP:
		other, ok := register(args[1])
		if !ok {
			return STATUS_ILLEGAL_OPERAND, cpu.Ip
		}
		regs[reg], regs[other] = regs[other], regs[reg]
	case OP_PUSH:
		if !cpu.Stack.Push(cells, regs[reg]) {
			return STATUS_INVALID_STACK_OPERATION, cpu.Ip
		}
	case OP_POP:
		value, ok := cpu.Stack.Pop(cells)
		if !ok {
			return STATUS_INVALID_STACK_OPERATION, cpu.Ip
		}
		regs[reg] = value
	default:
		return STATUS_ILLEGAL_INSTRUCTION, cpu.Ip
	}

	return STATUS_OK, next
}

// ioError logs the cause of a STATUS_IO_ERROR.
func (cpu *Cpu) ioError(err error) {
	if cpu.Verbose {
		log.Printf("cpu: %04x: %v", cpu.Ip, err)
	}
}
