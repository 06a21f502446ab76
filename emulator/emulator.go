// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	"iter"
	"maps"

	"github.com/ezrec/ipcpu/cpu"
	"github.com/ezrec/ipcpu/internal"
)

const (
	DEFAULT_LIMIT = 0 // Unlimited steps.
)

var _emulator_defines = map[string]string{
	"DEFAULT_LIMIT": fmt.Sprintf("%v", DEFAULT_LIMIT),
}

// Emulator state. CPU + loaded program.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program listing.

	Limit int // Maximum instructions to execute, or 0 for no limit.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(0),
		Program: &cpu.Program{},
		Limit:   DEFAULT_LIMIT,
	}

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
	)
}

// Reset the emulator state, binding the CPU to the program's
// instruction pointer register.
func (emu *Emulator) Reset() (err error) {
	err = emu.Program.Validate()
	if err != nil {
		return
	}

	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.IpRegister = emu.Program.Ip
	emu.Cpu.Reset()

	return
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Registers returns the register snapshot, r0 first.
func (emu *Emulator) Registers() []int64 {
	return emu.Cpu.Register.Values()
}

// Code returns the current instruction.
func (emu *Emulator) Code() (code cpu.Instruction, ok bool) {
	ip := emu.Cpu.Ip()
	if !emu.Program.Contains(ip) {
		return
	}

	return emu.Program.Instructions[ip], true
}

// LineNo returns the current line number for the executing instruction.
func (emu *Emulator) LineNo() int {
	return emu.Program.Debug(emu.Cpu.Ip())
}

// Done returns true once the instruction pointer has left the program.
func (emu *Emulator) Done() bool {
	return !emu.Program.Contains(emu.Cpu.Ip())
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	if emu.Done() {
		done = true
		return
	}

	if emu.Limit > 0 && emu.Cpu.Ticks >= emu.Limit {
		err = ErrStepLimit
		return
	}

	done = !emu.Cpu.Tick(emu.Program)

	return
}

// Run ticks the emulator until the program halts.
func (emu *Emulator) Run() (err error) {
	var done bool
	for done, err = emu.Tick(); !done; done, err = emu.Tick() {
		if err != nil {
			return
		}
	}

	return
}
