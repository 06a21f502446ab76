// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO":         "0",
	"REGISTER_COUNT": fmt.Sprintf("%v", REGISTER_COUNT),
	"r0":             "0",
	"r1":             "1",
	"r2":             "2",
	"r3":             "3",
	"r4":             "4",
	"r5":             "5",
}

var parenRegexp = regexp.MustCompile(`\$\([^\$]*\)`)

// Assembler is a single pass assembler for ipcpu programs.
type Assembler struct {
	Verbose      bool          // If set, verbosely logs the assembler actions.
	Instructions []Instruction // List of generated instructions.
	LineNo       []int         // Source line of each generated instruction.

	predefine map[string]string // Predefines
	Equate    map[string]string // Map of equates.
	Ip        int               // Instruction pointer register, or -1 if not yet seen.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// valueOf returns the decimal value of a simple word.
func (asm *Assembler) valueOf(word string) (value int64, err error) {
	return asm.parseValue(word, 10)
}

// equateOf returns the value of an equate, which may use any Go integer
// literal syntax.
func (asm *Assembler) equateOf(word string) (value int64, err error) {
	return asm.parseValue(word, 0)
}

// parseValue returns the value of word in the given base, with an
// optional leading '~' inversion.
func (asm *Assembler) parseValue(word string, base int) (value int64, err error) {
	invert := false
	if len(word) > 1 && word[0] == '~' {
		invert = true
		word = word[1:]
	}

	value, err = strconv.ParseInt(word, base, 64)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	if invert {
		value = ^value
	}

	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		var value64 int64
		value64, err = asm.equateOf(str)
		if err != nil {
			// Ignore non-integer equates.
			err = nil
			continue
		}
		pred[key] = starlark.MakeInt64(value64)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}

// parseLine splits a single line into words, expanding expressions and
// equates.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do $() evaluations
	line = parenRegexp.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			if err == nil {
				err = _err
			}
			return str
		}
		return fmt.Sprintf("%d", value)
	})
	if err != nil {
		return
	}

	words = strings.Fields(line)

	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	for n, word := range words[1:] {
		equate, ok := asm.Equate[word]
		if !ok {
			continue
		}
		value, _err := asm.equateOf(equate)
		if _err == nil {
			equate = fmt.Sprintf("%d", value)
		}
		words[n+1] = equate
	}

	return
}

// Parse parses an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	asm.Instructions = asm.Instructions[:0]
	asm.LineNo = asm.LineNo[:0]
	asm.Ip = -1
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text_comment := strings.Split(text, ";")
		line = strings.TrimSpace(text_comment[0])

		var words []string
		words, err = asm.parseLine(line, lineno)
		if err == nil {
			err = asm.parseWords(words, lineno)
		}
		if err != nil {
			err = ErrSyntax{LineNo: lineno, Line: line, Err: err}
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	if asm.Ip < 0 {
		err = ErrIpEmpty
		return
	}

	prog = &Program{
		Ip:           asm.Ip,
		Instructions: slices.Clone(asm.Instructions),
		LineNo:       slices.Clone(asm.LineNo),
	}

	err = prog.Validate()
	if err != nil {
		prog = nil
		return
	}

	return
}

// parseIp evaluates an '#ip N' directive.
func (asm *Assembler) parseIp(words []string) (err error) {
	if len(words) != 2 {
		err = ErrIpSyntax
		return
	}

	if asm.Ip >= 0 {
		err = ErrIpMultiple
		return
	}

	value, err := asm.valueOf(words[1])
	if err != nil {
		return
	}

	if !ValidRegister(value) {
		err = ErrIpInvalid
		return
	}

	asm.Ip = int(value)
	asm.Equate["ip"] = fmt.Sprintf("%d", value)

	if asm.Verbose {
		log.Printf("asm: ip bound to r%d", asm.Ip)
	}

	return
}

// parseWords evaluates the words in a line of assembly text.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	// no-op
	if len(words) == 0 {
		return
	}

	if words[0] == "#ip" {
		err = asm.parseIp(words)
		return
	}

	op, ok := ParseOpcode(words[0])
	if !ok {
		err = ErrOpcodeInvalid
		return
	}

	if len(words) < 4 {
		err = ErrOpcodeValueMissing
		return
	}
	if len(words) > 4 {
		err = ErrOpcodeExtraArgs
		return
	}

	var args [3]int64
	for n, word := range words[1:] {
		args[n], err = asm.valueOf(word)
		if err != nil {
			return
		}
	}

	if !ValidRegister(args[2]) {
		err = ErrRegisterC
		return
	}

	code := MakeInstruction(op, args[0], args[1], int(args[2]))
	err = code.Validate()
	if err != nil {
		return
	}

	asm.Instructions = append(asm.Instructions, code)
	asm.LineNo = append(asm.LineNo, lineno)

	return
}
