// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator runs a URM program, optionally suspending before each
// instruction to take commands from an operator.
package emulator

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/ezrec/urm/cpu"
)

var (
	prompt = f("(s)tep, (c)ontinue, (p)rint, (q)uit> ")
	usage  = f("commands: s or empty line to step, c to continue, p to print registers, q to quit\n")
)

// Emulator state. CPU + operator console.
type Emulator struct {
	Verbose  bool // If set, enables verbose logging.
	*cpu.Cpu      // Reference to the CPU simulation.

	Step    bool      // If set, start in stepping mode on reset.
	Prompt  bool      // If set, prompt before reading each command.
	Input   io.Reader // Operator command input.
	Display io.Writer // Operator display output.

	Mode Mode // Current execution mode.
	Quit bool // Set if the operator stopped the machine.

	reader *bufio.Reader
}

// NewEmulator creates a new emulator for a program.
func NewEmulator(prog *cpu.Program) (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(prog),
		Display: io.Discard,
	}

	emu.Reset()

	return
}

// Reset the emulator state. Registers are cleared, so initial
// state must be loaded afterwards.
func (emu *Emulator) Reset() {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()

	emu.Mode = MODE_UNATTENDED
	if emu.Step {
		emu.Mode = MODE_STEPPING
	}
	emu.Quit = false
	emu.reader = nil
}

func (emu *Emulator) printf(format string, args ...any) {
	if emu.Display == nil {
		return
	}
	fmt.Fprintf(emu.Display, format, args...)
}

// relevant returns the registers the program refers to.
func (emu *Emulator) relevant() []int {
	if emu.Cpu.Program == nil {
		return nil
	}
	return emu.Cpu.Program.Relevant
}

// readCommand reads one line of operator input.
// eof is set when there is no more input.
func (emu *Emulator) readCommand() (line string, eof bool, err error) {
	if emu.Input == nil {
		eof = true
		return
	}

	if emu.reader == nil {
		emu.reader = bufio.NewReader(emu.Input)
	}

	line, err = emu.reader.ReadString('\n')
	if errors.Is(err, io.EOF) {
		err = nil
		eof = len(line) == 0
	}

	return
}

// Tick performs a single instruction cycle of the emulator.
//
// While stepping, the pending instruction is displayed and operator
// commands are read until one applies it or quits. Reaching a label with
// no instruction does not stop a stepping machine; the operator must quit.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.Cpu.Verbose = emu.Verbose

	switch emu.Mode {
	case MODE_HALTED:
		done = true
		return
	case MODE_UNATTENDED:
		if emu.Cpu.Tick() {
			emu.Mode = MODE_HALTED
			done = true
		}
		return
	}

	ins := emu.Cpu.Fetch()
	if ins.Op == cpu.OP_HALT {
		emu.printf("-> %v %d\n", f("halt: no instruction labelled"), ins.Label)
	} else {
		emu.printf("-> %v\n", ins)
	}

	for {
		if emu.Prompt {
			emu.printf("%v", prompt)
		}

		var line string
		var eof bool
		line, eof, err = emu.readCommand()
		if err != nil {
			err = &ErrConsole{Ip: emu.Cpu.Ip, Err: err}
			return
		}
		if eof {
			line = "q"
		}

		var action Action
		emu.Mode, action = Interpret(emu.Mode, line)

		switch action {
		case ACTION_PRINT:
			emu.printf("%v", emu.Cpu.Registers.Format(emu.relevant()))
		case ACTION_USAGE:
			emu.printf("%v", usage)
		case ACTION_QUIT:
			if emu.Verbose {
				log.Infof("emulator: quit at label %d after %d instructions", emu.Cpu.Ip, emu.Cpu.Ticks)
			}
			emu.Quit = true
			emu.Cpu.Halted = true
			done = true
			return
		default:
			if ins.Op == cpu.OP_HALT && emu.Mode == MODE_STEPPING {
				return
			}
			emu.Cpu.Execute(ins)
			if emu.Cpu.Halted {
				emu.Mode = MODE_HALTED
				done = true
			}
			return
		}
	}
}

// Run ticks the emulator until it halts.
func (emu *Emulator) Run() (err error) {
	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}
