package cpu

import (
	"errors"

	"github.com/ezrec/ipcpu/translate"
)

var f = translate.From

var (
	// Program errors
	ErrIpEmpty      = errors.New(f("ip directive missing"))
	ErrIpMultiple   = errors.New(f("ip directive duplicated"))
	ErrIpInvalid    = errors.New(f("ip register invalid"))
	ErrProgramEmpty = errors.New(f("program empty"))

	// Instruction errors
	ErrOpcodeInvalid = errors.New(f("opcode invalid"))
	ErrRegisterA     = errors.New(f("operand a is not a register"))
	ErrRegisterB     = errors.New(f("operand b is not a register"))
	ErrRegisterC     = errors.New(f("destination is not a register"))

	// Assembler errors
	ErrEquateSyntax       = errors.New(f(".equ syntax"))
	ErrEquateDuplicate    = errors.New(f(".equ duplicated"))
	ErrIpSyntax           = errors.New(f("#ip syntax"))
	ErrOpcodeExtraArgs    = errors.New(f("excessive arguments"))
	ErrOpcodeValueMissing = errors.New(f("value missing"))
)

// ErrInstruction indicates which instruction of a program failed validation.
type ErrInstruction struct {
	Ip   int
	Code Instruction
	Err  error
}

func (err *ErrInstruction) Error() string {
	return f("%d: '%v' %v", err.Ip, err.Code, err.Err)
}

func (err *ErrInstruction) Unwrap() error {
	return err.Err
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

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
