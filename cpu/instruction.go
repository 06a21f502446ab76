package cpu

import (
	"fmt"
)

// Instruction is a single decoded instruction.
// The opcode decides whether A and B are literals or register indices.
type Instruction struct {
	Opcode Opcode // Operation.
	A      int64  // First operand.
	B      int64  // Second operand.
	C      int    // Destination register.
}

// MakeInstruction creates an instruction.
func MakeInstruction(op Opcode, a, b int64, c int) Instruction {
	return Instruction{Opcode: op, A: a, B: b, C: c}
}

// Validate checks that every register the instruction names exists.
func (code Instruction) Validate() (err error) {
	switch {
	case !code.Opcode.Valid():
		err = ErrOpcodeInvalid
	case !ValidRegister(int64(code.C)):
		err = ErrRegisterC
	case code.Opcode.RegisterA() && !ValidRegister(code.A):
		err = ErrRegisterA
	case code.Opcode.RegisterB() && !ValidRegister(code.B):
		err = ErrRegisterB
	}

	return
}

// String returns the assembly language representation of this instruction.
func (code Instruction) String() string {
	return fmt.Sprintf("%v %d %d %d", code.Opcode, code.A, code.B, code.C)
}
