package cpu

// Status is the execution status of a CPU.
type Status int

//go:generate go tool stringer -linecomment -type=Status
const (
	STATUS_OK                      = Status(0) // OK
	STATUS_HALTED                  = Status(1) // HALTED
	STATUS_ILLEGAL_INSTRUCTION     = Status(2) // ILLEGAL_INSTRUCTION
	STATUS_ILLEGAL_OPERAND         = Status(3) // ILLEGAL_OPERAND
	STATUS_INVALID_ADDRESS         = Status(4) // INVALID_ADDRESS
	STATUS_INVALID_STACK_OPERATION = Status(5) // INVALID_STACK_OPERATION
	STATUS_DIV_BY_ZERO             = Status(6) // DIV_BY_ZERO
	STATUS_IO_ERROR                = Status(7) // IO_ERROR
)

var statusErr = map[Status]error{
	STATUS_HALTED:                  ErrHalted,
	STATUS_ILLEGAL_INSTRUCTION:     ErrIllegalInstruction,
	STATUS_ILLEGAL_OPERAND:         ErrIllegalOperand,
	STATUS_INVALID_ADDRESS:         ErrInvalidAddress,
	STATUS_INVALID_STACK_OPERATION: ErrInvalidStackOperation,
	STATUS_DIV_BY_ZERO:             ErrDivByZero,
	STATUS_IO_ERROR:                ErrIoError,
}

// Err returns the error matching a terminal status, or nil for STATUS_OK.
// STATUS_HALTED maps to ErrHalted, which callers usually treat as success.
func (st Status) Err() error {
	if st == STATUS_OK {
		return nil
	}

	err, ok := statusErr[st]
	if !ok {
		return ErrStatus(st)
	}

	return err
}

// Terminal returns true if the status stops execution.
func (st Status) Terminal() bool {
	return st != STATUS_OK
}
