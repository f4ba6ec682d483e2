package cpu

// Program is an assembled URM program.
type Program struct {
	Instructions []Instruction // Instructions in source order.
	Relevant     []int         // Registers referenced, in order of first use.

	label map[uint64]int // Label to index of its first instruction.
}

// NewProgram builds a program from instructions in source order.
func NewProgram(instructions []Instruction) (prog *Program) {
	prog = &Program{
		Instructions: instructions,
		label:        make(map[uint64]int, len(instructions)),
	}

	seen := make(map[int]bool)
	for n, ins := range instructions {
		if _, ok := prog.label[ins.Label]; !ok {
			prog.label[ins.Label] = n
		}
		for _, reg := range ins.Registers() {
			if !seen[reg] {
				seen[reg] = true
				prog.Relevant = append(prog.Relevant, reg)
			}
		}
	}

	return
}

// Lookup finds the first instruction declaring a label.
// If there is none, the halt instruction for the label is returned.
func (prog *Program) Lookup(label uint64) (ins Instruction, ok bool) {
	ins = Halt(label)

	if prog == nil {
		return
	}

	if prog.label == nil {
		for _, found := range prog.Instructions {
			if found.Label == label {
				return found, true
			}
		}
		return
	}

	n, ok := prog.label[label]
	if ok {
		ins = prog.Instructions[n]
	}

	return
}
