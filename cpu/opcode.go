package cpu

import (
	"fmt"
	"strconv"
	"strings"
)

// Op is a URM operation code, named by its source letter.
type Op byte

const (
	OP_ZERO      = Op('Z') // Z(r): r = 0
	OP_SUCCESSOR = Op('S') // S(r): r = r + 1
	OP_TRANSFER  = Op('T') // T(a, b): b = a
	OP_JUMP      = Op('J') // J(a, b, l): if a == b, jump to label l
	OP_HALT      = Op('H') // Lookup miss. Never assembled.
)

// opArity is the operand count for each assembled opcode.
var opArity = map[Op]int{
	OP_ZERO:      1,
	OP_SUCCESSOR: 1,
	OP_TRANSFER:  2,
	OP_JUMP:      3,
}

// Arity returns the number of operands the opcode takes.
func (op Op) Arity() int {
	return opArity[op]
}

// Valid returns true if the opcode can appear in program text.
func (op Op) Valid() (ok bool) {
	_, ok = opArity[op]
	return
}

func (op Op) String() string {
	return string(rune(op))
}

// Instruction is a single assembled line of a URM program.
type Instruction struct {
	LineNo int      // Source line index, from 0.
	Label  uint64   // Declared label, the jump target for this instruction.
	Op     Op       // Operation.
	Args   []uint64 // Operands. Registers, except for the jump target label.
}

// Halt returns the sentinel instruction for a label no instruction declares.
func Halt(label uint64) Instruction {
	return Instruction{Label: label, Op: OP_HALT}
}

// Registers returns the register operands, excluding any jump target.
func (ins Instruction) Registers() (regs []int) {
	args := ins.Args
	if ins.Op == OP_JUMP && len(args) > 2 {
		args = args[:2]
	}

	for _, arg := range args {
		regs = append(regs, int(arg))
	}

	return
}

// String returns the instruction in program text form.
func (ins Instruction) String() string {
	if ins.Op == OP_HALT {
		return fmt.Sprintf("%d. %v", ins.Label, f("halt"))
	}

	args := make([]string, len(ins.Args))
	for n, arg := range ins.Args {
		args[n] = strconv.FormatUint(arg, 10)
	}

	return fmt.Sprintf("%d. %v(%v)", ins.Label, ins.Op, strings.Join(args, ", "))
}
