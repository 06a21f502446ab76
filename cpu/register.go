package cpu

import (
	"fmt"
	"strings"
)

const (
	REGISTER_COUNT = 6 // Number of general-purpose registers.
)

// Registers is the register bank, r0 through r5.
type Registers [REGISTER_COUNT]int64

// ValidRegister returns true if index names one of the registers.
func ValidRegister(index int64) bool {
	return index >= 0 && index < REGISTER_COUNT
}

// Get returns the value of register r.
func (reg *Registers) Get(r int) int64 {
	return reg[r]
}

// Set sets register r to value.
func (reg *Registers) Set(r int, value int64) {
	reg[r] = value
}

// Values returns the register snapshot, r0 first.
func (reg *Registers) Values() []int64 {
	return append([]int64(nil), reg[:]...)
}

// String returns the registers as '[r0, r1, r2, r3, r4, r5]'.
func (reg Registers) String() string {
	words := make([]string, len(reg))
	for n, val := range reg {
		words[n] = fmt.Sprintf("%d", val)
	}
	return "[" + strings.Join(words, ", ") + "]"
}
