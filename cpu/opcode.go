package cpu

// Opcode is one of the sixteen instruction kinds.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_ADDR = Opcode(0)  // addr
	OP_ADDI = Opcode(1)  // addi
	OP_MULR = Opcode(2)  // mulr
	OP_MULI = Opcode(3)  // muli
	OP_BANR = Opcode(4)  // banr
	OP_BANI = Opcode(5)  // bani
	OP_BORR = Opcode(6)  // borr
	OP_BORI = Opcode(7)  // bori
	OP_SETR = Opcode(8)  // setr
	OP_SETI = Opcode(9)  // seti
	OP_GTIR = Opcode(10) // gtir
	OP_GTRI = Opcode(11) // gtri
	OP_GTRR = Opcode(12) // gtrr
	OP_EQIR = Opcode(13) // eqir
	OP_EQRI = Opcode(14) // eqri
	OP_EQRR = Opcode(15) // eqrr
)

const (
	OPCODE_COUNT = 16 // Number of defined opcodes.
)

// opcodeMap maps mnemonics to opcodes.
var opcodeMap = func() map[string]Opcode {
	m := make(map[string]Opcode, OPCODE_COUNT)
	for op := range Opcode(OPCODE_COUNT) {
		m[op.String()] = op
	}
	return m
}()

// ParseOpcode returns the opcode for a mnemonic.
func ParseOpcode(name string) (op Opcode, ok bool) {
	op, ok = opcodeMap[name]
	return
}

// Valid returns true if the opcode is one of the sixteen defined kinds.
func (op Opcode) Valid() bool {
	return op >= OP_ADDR && op <= OP_EQRR
}

// RegisterA returns true if operand A is read as a register index.
func (op Opcode) RegisterA() bool {
	switch op {
	case OP_SETI, OP_GTIR, OP_EQIR:
		return false
	}
	return true
}

// RegisterB returns true if operand B is read as a register index.
func (op Opcode) RegisterB() bool {
	switch op {
	case OP_ADDR, OP_MULR, OP_BANR, OP_BORR, OP_GTIR, OP_GTRR, OP_EQIR, OP_EQRR:
		return true
	}
	return false
}

// Eval returns the value the opcode produces for its destination
// register, given operands a and b. Register operands must be valid
// indices; no checks are done here.
func (op Opcode) Eval(reg *Registers, a, b int64) (value int64) {
	switch op {
	case OP_ADDR:
		value = reg[a] + reg[b]
	case OP_ADDI:
		value = reg[a] + b
	case OP_MULR:
		value = reg[a] * reg[b]
	case OP_MULI:
		value = reg[a] * b
	case OP_BANR:
		value = reg[a] & reg[b]
	case OP_BANI:
		value = reg[a] & b
	case OP_BORR:
		value = reg[a] | reg[b]
	case OP_BORI:
		value = reg[a] | b
	case OP_SETR:
		value = reg[a]
	case OP_SETI:
		value = a
	case OP_GTIR:
		value = boolValue(a > reg[b])
	case OP_GTRI:
		value = boolValue(reg[a] > b)
	case OP_GTRR:
		value = boolValue(reg[a] > reg[b])
	case OP_EQIR:
		value = boolValue(a == reg[b])
	case OP_EQRI:
		value = boolValue(reg[a] == b)
	case OP_EQRR:
		value = boolValue(reg[a] == reg[b])
	default:
		panic("unknown opcode")
	}

	return
}

// boolValue converts a comparison result to 1 or 0.
func boolValue(cond bool) int64 {
	if cond {
		return 1
	}
	return 0
}
