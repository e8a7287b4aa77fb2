package emulator

import (
	"errors"

	"github.com/ezrec/cpu32/translate"
)

var f = translate.From

var (
	ErrNoProgram = errors.New(f("no program loaded"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Ip     int   // Instruction pointer of the failing instruction.
	LineNo int   // Source line of the failing instruction, or 0 if unknown.
	Err    error // Cause.
}

func (err *ErrRuntime) Error() string {
	if err.LineNo == 0 {
		return f("ip %d %v", err.Ip, err.Err)
	}
	return f("line %d ip %d %v", err.LineNo, err.Ip, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
