package cpu

import (
	"fmt"
	"iter"
	"log"
	"maps"
)

var _cpu_defines = map[string]string{
	"REGISTER_COUNT": fmt.Sprintf("%v", REGISTER_COUNT),
	"OPCODE_COUNT":   fmt.Sprintf("%v", OPCODE_COUNT),
}

// Cpu is the simulation context for the processor.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Register   Registers // Register bank.
	IpRegister int       // Register bound to the instruction pointer.

	Ticks int // Instructions executed since reset.
}

// NewCpu creates a new CPU with the instruction pointer bound to register ip.
func NewCpu(ip int) (cpu *Cpu) {
	cpu = &Cpu{
		IpRegister: ip,
	}

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text += fmt.Sprintf("% 5s: %v (r%d)\n", "ip", cpu.Ip(), cpu.IpRegister)
	for n, val := range cpu.Register {
		text += fmt.Sprintf("% 5s: %v\n", fmt.Sprintf("r%d", n), val)
	}
	text += fmt.Sprintf("% 5s: %v\n", "ticks", cpu.Ticks)

	return
}

// Reset the CPU state.
// - Clears the registers.
// - Zeros the tick counter.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset, ip bound to r%d", cpu.IpRegister)
	}

	clear(cpu.Register[:])
	cpu.Ticks = 0
}

// Ip returns the current instruction pointer.
func (cpu *Cpu) Ip() int64 {
	return cpu.Register.Get(cpu.IpRegister)
}

// Execute executes a single decoded instruction, writing its destination
// register.
func (cpu *Cpu) Execute(code Instruction) {
	if cpu.Verbose {
		log.Printf("%03d: %v", cpu.Ip(), code)
	}

	value := code.Opcode.Eval(&cpu.Register, code.A, code.B)
	cpu.Register.Set(code.C, value)
}

// Tick executes a single fetch-decode-execute cycle of prog.
// Returns false once the instruction pointer has left the program.
func (cpu *Cpu) Tick(prog *Program) (running bool) {
	ip := cpu.Ip()
	if !prog.Contains(ip) {
		return
	}

	cpu.Execute(prog.Instructions[ip])

	// Always advance, even when the instruction wrote the IP register.
	cpu.Register.Set(cpu.IpRegister, cpu.Ip()+1)
	cpu.Ticks++

	running = prog.Contains(cpu.Ip())
	return
}

// Run executes prog until the instruction pointer leaves it.
// A program that never drives the pointer out of bounds runs forever.
func (cpu *Cpu) Run(prog *Program) {
	for cpu.Tick(prog) {
	}

	if cpu.Verbose {
		log.Printf("cpu: halted at ip %d after %d ticks", cpu.Ip(), cpu.Ticks)
	}
}
