package emulator

import (
	"strings"
)

// Mode is the execution mode of the emulator.
type Mode int

const (
	MODE_STEPPING   = Mode(0) // Suspend before every instruction.
	MODE_UNATTENDED = Mode(1) // Run without operator input.
	MODE_HALTED     = Mode(2) // Stopped.
)

func (mode Mode) String() string {
	switch mode {
	case MODE_STEPPING:
		return "stepping"
	case MODE_UNATTENDED:
		return "unattended"
	case MODE_HALTED:
		return "halted"
	}
	return f("mode(%d)", int(mode))
}

// Action is what the emulator does in response to an operator command.
type Action int

const (
	ACTION_APPLY    = Action(0) // Apply the pending instruction.
	ACTION_CONTINUE = Action(1) // Apply it, then stop prompting.
	ACTION_PRINT    = Action(2) // Print the relevant registers.
	ACTION_QUIT     = Action(3) // Stop the machine.
	ACTION_USAGE    = Action(4) // Unknown command, print usage.
)

var actionName = [...]string{
	ACTION_APPLY:    "apply",
	ACTION_CONTINUE: "continue",
	ACTION_PRINT:    "print",
	ACTION_QUIT:     "quit",
	ACTION_USAGE:    "usage",
}

func (action Action) String() string {
	if action >= 0 && int(action) < len(actionName) {
		return actionName[action]
	}
	return f("action(%d)", int(action))
}

// Interpret maps an operator command line to the next mode and the action to take.
//
// Commands are only read while stepping. An unattended machine keeps
// applying instructions, and a halted one stays halted.
func Interpret(mode Mode, line string) (next Mode, action Action) {
	next = mode

	switch mode {
	case MODE_UNATTENDED:
		action = ACTION_APPLY
		return
	case MODE_HALTED:
		action = ACTION_QUIT
		return
	}

	switch strings.TrimSpace(line) {
	case "", "s":
		action = ACTION_APPLY
	case "c":
		next = MODE_UNATTENDED
		action = ACTION_CONTINUE
	case "p":
		action = ACTION_PRINT
	case "q":
		next = MODE_HALTED
		action = ACTION_QUIT
	default:
		action = ACTION_USAGE
	}

	return
}
