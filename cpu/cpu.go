// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

const (
	ENTRY_LABEL = uint64(1) // Label execution starts from.
)

// Cpu is the complete state of a URM: program, registers and
// instruction pointer.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Program   *Program     // Program being executed.
	Registers RegisterFile // Register bank.

	Ip     uint64 // Current instruction pointer, as a label.
	Halted bool   // Set once the machine has stopped.
	Ticks  int    // Instructions applied since reset.
}

// NewCpu creates a reset CPU for a program.
func NewCpu(prog *Program) (cpu *Cpu) {
	cpu = &Cpu{
		Program: prog,
	}

	cpu.Reset()

	return
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text = fmt.Sprintf("ip: %d\n", cpu.Ip)
	if cpu.Program != nil {
		text += cpu.Registers.Format(cpu.Program.Relevant)
	}

	return
}

// Reset the CPU state.
// - Clears the registers.
// - Zeros the tick counter.
// - Sets the instruction pointer to the entry label.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Infof("cpu: reset")
	}

	cpu.Registers.Reset()
	cpu.Ip = ENTRY_LABEL
	cpu.Halted = false
	cpu.Ticks = 0
}

// LoadState applies an initial register state description.
func (cpu *Cpu) LoadState(text string) (err error) {
	assigned, err := cpu.Registers.Load(text)

	if cpu.Verbose {
		for _, asn := range assigned {
			log.Infof("-> Register [%d] = %d", asn.Register, asn.Value)
		}
	}

	return
}

// Fetch returns the instruction the instruction pointer names.
func (cpu *Cpu) Fetch() (ins Instruction) {
	ins, _ = cpu.Program.Lookup(cpu.Ip)
	return
}

// Execute applies a single instruction.
func (cpu *Cpu) Execute(ins Instruction) {
	rf := &cpu.Registers

	switch ins.Op {
	case OP_ZERO:
		rf.Set(int(ins.Args[0]), 0)
		cpu.Ip++
	case OP_SUCCESSOR:
		rf.Increment(int(ins.Args[0]))
		cpu.Ip++
	case OP_TRANSFER:
		rf.Set(int(ins.Args[1]), rf.Get(int(ins.Args[0])))
		cpu.Ip++
	case OP_JUMP:
		if rf.Get(int(ins.Args[0])) == rf.Get(int(ins.Args[1])) {
			cpu.Ip = ins.Args[2]
		} else {
			cpu.Ip++
		}
	default:
		// OP_HALT. The assembler emits no other opcodes.
		cpu.Halted = true
		if cpu.Verbose {
			log.Infof("cpu: halt at label %d after %d instructions", ins.Label, cpu.Ticks)
		}
		return
	}

	cpu.Ticks++
}

// Tick executes a single instruction cycle.
func (cpu *Cpu) Tick() (done bool) {
	if !cpu.Halted {
		cpu.Execute(cpu.Fetch())
	}

	return cpu.Halted
}

// Run executes until the machine halts. A program that never jumps to
// an undeclared label never returns.
func (cpu *Cpu) Run() {
	for !cpu.Tick() {
	}
}

// Output returns the value of the output register.
func (cpu *Cpu) Output(reg int) uint64 {
	return cpu.Registers.Get(reg)
}
