package cpu

import (
	"iter"
)

// Program is a loaded instruction stream and its instruction pointer binding.
type Program struct {
	Ip           int           // Register bound to the instruction pointer.
	Instructions []Instruction // Instructions, indexed by address.
	LineNo       []int         // Source line of each instruction, if known.
}

// Len returns the number of instructions.
func (prog *Program) Len() int {
	return len(prog.Instructions)
}

// Contains returns true if addr is a valid instruction address.
func (prog *Program) Contains(addr int64) bool {
	return addr >= 0 && addr < int64(prog.Len())
}

// All iterates over the instructions and their addresses.
func (prog *Program) All() iter.Seq2[int, Instruction] {
	return func(yield func(addr int, code Instruction) bool) {
		for addr, code := range prog.Instructions {
			if !yield(addr, code) {
				return
			}
		}
	}
}

// Debug returns the source line of the instruction at addr, or 0 if
// unknown.
func (prog *Program) Debug(addr int64) (lineno int) {
	if addr >= 0 && addr < int64(len(prog.LineNo)) {
		lineno = prog.LineNo[addr]
	}

	return
}

// Validate checks the program can be executed without further checks.
func (prog *Program) Validate() (err error) {
	if prog.Len() == 0 {
		err = ErrProgramEmpty
		return
	}

	if !ValidRegister(int64(prog.Ip)) {
		err = ErrIpInvalid
		return
	}

	for addr, code := range prog.All() {
		err = code.Validate()
		if err != nil {
			err = &ErrInstruction{Ip: addr, Code: code, Err: err}
			return
		}
	}

	return
}
