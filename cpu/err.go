package cpu

import (
	"errors"

	"github.com/ezrec/cpu32/translate"
)

var f = translate.From

var (
	// Memory and machine construction errors
	ErrProgramPartial  = errors.New(f("program size is not a multiple of 4 bytes"))
	ErrProgramRead     = errors.New(f("program read"))
	ErrMemoryLimit     = errors.New(f("memory limit exceeded"))
	ErrMemoryNil       = errors.New(f("memory missing"))
	ErrStackCapacity   = errors.New(f("stack capacity invalid"))
	ErrStackRange      = errors.New(f("stack outside of memory"))
	ErrRegisterInvalid = errors.New(f("register invalid"))

	// Terminal status errors
	ErrHalted                = errors.New(f("halted"))
	ErrIllegalInstruction    = errors.New(f("illegal instruction"))
	ErrIllegalOperand        = errors.New(f("illegal operand"))
	ErrInvalidAddress        = errors.New(f("invalid address"))
	ErrInvalidStackOperation = errors.New(f("invalid stack operation"))
	ErrDivByZero             = errors.New(f("division by zero"))
	ErrIoError               = errors.New(f("i/o error"))

	// Assembler errors
	ErrEquateSyntax       = errors.New(f(".equ syntax"))
	ErrEquateDuplicate    = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate     = errors.New(f("label duplicated"))
	ErrLabelMultiple      = errors.New(f("only one label per instruction"))
	ErrMacroSyntax        = errors.New(f(".macro syntax"))
	ErrMacroNesting       = errors.New(f(".macro in .macro prohibited"))
	ErrMacroDuplicate     = errors.New(f(".macro duplicated"))
	ErrMacroLonely        = errors.New(f(".macro without .endm"))
	ErrMacroLonelyEndm    = errors.New(f(".endm without .macro"))
	ErrOpcodeExtraArgs    = errors.New(f("excessive arguments"))
	ErrOpcodeValueMissing = errors.New(f("value missing"))
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
)

// ErrStatus is returned by Status.Err for a status with no known meaning.
type ErrStatus Status

func (es ErrStatus) Error() string {
	return f("unknown status %d", int(es))
}

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseRegister string

func (err ErrParseRegister) Error() string {
	return f("'%v' is not a register", string(err))
}

type ErrParseCharacter string

func (err ErrParseCharacter) Error() string {
	return f("'%v' is not a character", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrMacro struct {
	Macro string
	Line  int
	Err   error
}

func (err ErrMacro) Error() string {
	return f("macro %v line %v %v", err.Macro, err.Line, err.Err.Error())
}

func (err ErrMacro) Unwrap() error {
	return err.Err
}
