package cpu

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func doParse(program []string) (prog *Program, err error) {
	asm := &Assembler{}
	return asm.Parse(strings.NewReader(strings.Join(program, "\n")))
}

func TestAssembler(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"#ip 0",
		"seti 5 0 1",
		"seti 6 0 2",
		"addi 0 1 0",
		"addr 1 2 3",
		"setr 1 0 0",
		"seti 8 0 4",
		"seti 9 0 5",
	}

	prog, err := doParse(program)
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	expected := &Program{
		Ip: 0,
		Instructions: []Instruction{
			{OP_SETI, 5, 0, 1},
			{OP_SETI, 6, 0, 2},
			{OP_ADDI, 0, 1, 0},
			{OP_ADDR, 1, 2, 3},
			{OP_SETR, 1, 0, 0},
			{OP_SETI, 8, 0, 4},
			{OP_SETI, 9, 0, 5},
		},
		LineNo: []int{2, 3, 4, 5, 6, 7, 8},
	}

	assert.Equal(expected, prog)
}

func TestAssemblerSyntax(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"; sum the numbers 1 to 10",
		"",
		"   #ip   3  ",
		".equ COUNT 10",
		"seti COUNT 0 r0 ; counter",
		"addr r1 r0 r1",
		"addi r0 -1 r0\t",
		"gtri r0 0 r2",
		"addr ip r2 ip",
		"seti $(LINENO + 1) 0 ip",
		"seti 00 0 ip",
		"seti ~0 0 r4",
		"seti $(COUNT * REGISTER_COUNT) $(-COUNT) r5",
		"seti 010 08 r4 ; leading zeros are still decimal",
		"muli 04 -007 r4",
	}

	prog, err := doParse(program)
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(3, prog.Ip)
	assert.Equal([]Instruction{
		{OP_SETI, 10, 0, 0},
		{OP_ADDR, 1, 0, 1},
		{OP_ADDI, 0, -1, 0},
		{OP_GTRI, 0, 0, 2},
		{OP_ADDR, 3, 2, 3},
		{OP_SETI, 11, 0, 3},
		{OP_SETI, 0, 0, 3},
		{OP_SETI, -1, 0, 4},
		{OP_SETI, 60, -10, 5},
		{OP_SETI, 10, 8, 4},
		{OP_MULI, 4, -7, 4},
	}, prog.Instructions)
	assert.Equal([]int{5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}, prog.LineNo)
}

func TestAssemblerPredefine(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	asm.Predefine("LIMIT", "100")
	asm.Predefine("BASE", "0x10")

	prog, err := asm.Parse(strings.NewReader("#ip 1\nseti LIMIT BASE 0\nmuli 0 $(LIMIT + BASE) 0\n"))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal([]Instruction{
		{OP_SETI, 100, 16, 0},
		{OP_MULI, 0, 116, 0},
	}, prog.Instructions)
	assert.Equal("100", asm.Equate["LIMIT"])
	assert.Equal("1", asm.Equate["ip"])

	// Predefines survive a second parse; per-program equates do not.
	prog, err = asm.Parse(strings.NewReader("#ip 2\n.equ LIMIT 5\n"))
	assert.Nil(prog)
	assert.ErrorIs(err, ErrEquateDuplicate)
}

func TestAssemblerErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name    string
		program []string
		err     error
		lineno  int
	}){
		{"ip_missing", []string{"seti 1 0 0"}, ErrIpEmpty, 0},
		{"ip_missing_empty", []string{}, ErrIpEmpty, 0},
		{"ip_multiple", []string{"#ip 0", "seti 1 0 0", "#ip 1"}, ErrIpMultiple, 3},
		{"ip_multiple_same", []string{"#ip 0", "#ip 0"}, ErrIpMultiple, 2},
		{"ip_invalid", []string{"#ip 6", "seti 1 0 0"}, ErrIpInvalid, 1},
		{"ip_negative", []string{"#ip -1", "seti 1 0 0"}, ErrIpInvalid, 1},
		{"ip_syntax", []string{"#ip"}, ErrIpSyntax, 1},
		{"ip_extra", []string{"#ip 1 2"}, ErrIpSyntax, 1},
		{"program_empty", []string{"#ip 0", "; nothing"}, ErrProgramEmpty, 0},
		{"opcode", []string{"#ip 0", "divr 1 2 3"}, ErrOpcodeInvalid, 2},
		{"opcode_case", []string{"#ip 0", "ADDR 1 2 3"}, ErrOpcodeInvalid, 2},
		{"missing", []string{"#ip 0", "addr 1 2"}, ErrOpcodeValueMissing, 2},
		{"extra", []string{"#ip 0", "addr 1 2 3 4"}, ErrOpcodeExtraArgs, 2},
		{"reg_c", []string{"#ip 0", "seti 1 0 0", "addr 1 2 6"}, ErrRegisterC, 3},
		{"reg_a", []string{"#ip 0", "addr 9 2 3"}, ErrRegisterA, 2},
		{"reg_b", []string{"#ip 0", "eqrr 1 -2 3"}, ErrRegisterB, 2},
		{"equ_syntax", []string{".equ X"}, ErrEquateSyntax, 1},
		{"equ_duplicate", []string{".equ X 1", ".equ X 2"}, ErrEquateDuplicate, 2},
		{"equ_system", []string{".equ r0 1"}, ErrEquateDuplicate, 1},
		{"num_separator", []string{"#ip 0", "seti 1_0 0 1"}, ErrParseNumber("1_0"), 2},
		{"num_hex", []string{"#ip 0", "seti 0x10 0 1"}, ErrParseNumber("0x10"), 2},
		{"num_octal", []string{"#ip 0", "seti 0o7 0 1"}, ErrParseNumber("0o7"), 2},
		{"ip_hex", []string{"#ip 0x1"}, ErrParseNumber("0x1"), 1},
	}

	for _, entry := range table {
		prog, err := doParse(entry.program)
		assert.Nil(prog, entry.name)
		assert.ErrorIs(err, entry.err, entry.name)

		var syn ErrSyntax
		if entry.lineno > 0 {
			assert.True(errors.As(err, &syn), entry.name)
			assert.Equal(entry.lineno, syn.LineNo, entry.name)
		} else {
			assert.False(errors.As(err, &syn), entry.name)
		}
	}
}

func TestAssemblerParseErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := doParse([]string{"#ip 0", "addr 1 x 3"})
	var pn ErrParseNumber
	assert.True(errors.As(err, &pn))
	assert.Equal(ErrParseNumber("x"), pn)

	_, err = doParse([]string{"#ip r9"})
	assert.True(errors.As(err, &pn))
	assert.Equal(ErrParseNumber("r9"), pn)

	_, err = doParse([]string{"#ip 0", "seti $(1 +) 0 0"})
	var pe ErrParseExpression
	assert.True(errors.As(err, &pe))
	assert.Equal(ErrParseExpression("1 +"), pe)

	_, err = doParse([]string{"#ip 0", "seti $(\"text\") 0 0"})
	assert.True(errors.As(err, &pe))

	var syn ErrSyntax
	assert.True(errors.As(err, &syn))
	assert.Equal(2, syn.LineNo)
	assert.Equal("seti $(\"text\") 0 0", syn.Line)
}

func TestAssemblerDecimal(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"#ip 03",
		".equ MASK 0xff",
		".equ EIGHT 010",
		"bani 0 MASK 1",
		"seti EIGHT 09 2",
		"borr 01 02 05",
	}

	prog, err := doParse(program)
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	// Equates keep Go literal syntax; operands are always decimal.
	assert.Equal(3, prog.Ip)
	assert.Equal([]Instruction{
		{OP_BANI, 0, 255, 1},
		{OP_SETI, 8, 9, 2},
		{OP_BORR, 1, 2, 5},
	}, prog.Instructions)
}
