package cpu

import (
	"regexp"
	"strconv"
	"strings"
)

// <label>. <OP>(<args>)
var lineRegexp = regexp.MustCompile(`^(\d+)\s*\.\s*([A-Za-z])\s*\(([^()]*)\)$`)

// stripComment removes a trailing ';' comment and surrounding space.
func stripComment(line string) string {
	text, _, _ := strings.Cut(line, ";")
	return strings.TrimSpace(text)
}

// parseArgs parses a comma separated operand list, stopping at the first
// operand that is not a number. trailing is set if it stopped early.
func parseArgs(text string) (args []uint64, trailing bool) {
	text = strings.TrimSpace(text)
	if len(text) == 0 {
		return
	}

	for _, word := range strings.Split(text, ",") {
		arg, err := strconv.ParseUint(strings.TrimSpace(word), 10, 64)
		if err != nil {
			trailing = true
			return
		}
		args = append(args, arg)
	}

	return
}

// ParseInstruction parses one line of program text.
func ParseInstruction(line string) (ins Instruction, err error) {
	match := lineRegexp.FindStringSubmatch(stripComment(line))
	if match == nil {
		err = ErrMalformedLine
		return
	}

	label, err := strconv.ParseUint(match[1], 10, 64)
	if err != nil {
		err = ErrMalformedLine
		return
	}
	if label == 0 {
		err = ErrLabelInvalid
		return
	}

	op := Op(match[2][0])
	if !op.Valid() {
		err = ErrOpcodeInvalid
		return
	}

	args, trailing := parseArgs(match[3])

	switch {
	case len(args) < op.Arity():
		err = ErrMissingArgument{Op: op, Arity: op.Arity()}
		return
	case trailing:
		err = ErrMalformedLine
		return
	case len(args) > op.Arity():
		err = ErrExtraArgument
		return
	}

	ins = Instruction{Label: label, Op: op, Args: args}

	for _, reg := range ins.Registers() {
		if reg < 1 || reg > REGISTER_COUNT {
			err = ErrRegisterInvalid
			ins = Instruction{}
			return
		}
	}

	return
}
