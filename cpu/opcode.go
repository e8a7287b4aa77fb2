package cpu

// CodeOp is an instruction opcode, the first cell of every instruction.
type CodeOp int32

//go:generate go tool stringer -linecomment -type=CodeOp
const (
	OP_NOP   = CodeOp(0)  // nop
	OP_HALT  = CodeOp(1)  // halt
	OP_ADD   = CodeOp(2)  // add
	OP_SUB   = CodeOp(3)  // sub
	OP_MUL   = CodeOp(4)  // mul
	OP_DIV   = CodeOp(5)  // div
	OP_INC   = CodeOp(6)  // inc
	OP_DEC   = CodeOp(7)  // dec
	OP_LOOP  = CodeOp(8)  // loop
	OP_MOVR  = CodeOp(9)  // movr
	OP_LOAD  = CodeOp(10) // load
	OP_STORE = CodeOp(11) // store
	OP_IN    = CodeOp(12) // in
	OP_GET   = CodeOp(13) // get
	OP_OUT   = CodeOp(14) // out
	OP_PUT   = CodeOp(15) // put
	OP_SWAP  = CodeOp(16) // swap
	OP_PUSH  = CodeOp(17) // push
	OP_POP   = CodeOp(18) // pop
)

// OP_COUNT is the number of defined opcodes.
const OP_COUNT = 19

// CodeReg is a register index operand.
type CodeReg int32

//go:generate go tool stringer -linecomment -type=CodeReg
const (
	REG_A = CodeReg(0) // A
	REG_B = CodeReg(1) // B
	REG_C = CodeReg(2) // C
	REG_D = CodeReg(3) // D
)

// REG_COUNT is the number of registers.
const REG_COUNT = 4

// CodeArg is the kind of an instruction operand.
type CodeArg int

const (
	ARG_REG = CodeArg(0) // Register index.
	ARG_NUM = CodeArg(1) // Immediate number.
)

var opArgs = [OP_COUNT][]CodeArg{
	OP_NOP:   nil,
	OP_HALT:  nil,
	OP_ADD:   {ARG_REG},
	OP_SUB:   {ARG_REG},
	OP_MUL:   {ARG_REG},
	OP_DIV:   {ARG_REG},
	OP_INC:   {ARG_REG},
	OP_DEC:   {ARG_REG},
	OP_LOOP:  {ARG_NUM},
	OP_MOVR:  {ARG_REG, ARG_NUM},
	OP_LOAD:  {ARG_REG, ARG_NUM},
	OP_STORE: {ARG_REG, ARG_NUM},
	OP_IN:    {ARG_REG},
	OP_GET:   {ARG_REG},
	OP_OUT:   {ARG_REG},
	OP_PUT:   {ARG_REG},
	OP_SWAP:  {ARG_REG, ARG_REG},
	OP_PUSH:  {ARG_REG},
	OP_POP:   {ARG_REG},
}

// Valid returns true for the 19 defined opcodes.
func (op CodeOp) Valid() bool {
	return op >= OP_NOP && op <= OP_POP
}

// Args returns the operand kinds of the opcode.
func (op CodeOp) Args() []CodeArg {
	if !op.Valid() {
		return nil
	}
	return opArgs[op]
}

// Width returns the number of cells in the instruction, opcode included.
func (op CodeOp) Width() int {
	return 1 + len(op.Args())
}

// Valid returns true if the register index names one of A, B, C or D.
func (reg CodeReg) Valid() bool {
	return reg >= REG_A && reg <= REG_D
}
