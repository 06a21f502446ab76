// Package cpu implements the processor and program loader for the ipcpu system.
//
// The processor consists of six signed general-purpose registers (r0-r5),
// one of which is bound to the instruction pointer (IP) for the lifetime
// of a program. Each instruction is one of sixteen fixed opcodes that
// writes exactly one destination register. After every instruction the
// IP register is incremented by one, so writing to it is a jump.
// Execution stops once the IP leaves the program.
//
// The assembler reads the textual program format: a single '#ip N'
// directive followed by one 'mnemonic A B C' instruction per line, with
// support for comments, equates, and compile-time expression evaluation.
package cpu
