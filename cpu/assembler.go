// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Assembler loads URM program text into a Program.
type Assembler struct {
	Verbose bool // If set, logs each parsed instruction.
}

// traceLine describes a parsed instruction for verbose output.
func traceLine(ins Instruction) string {
	args := make([]string, len(ins.Args))
	for n, arg := range ins.Args {
		args[n] = fmt.Sprintf("%d", arg)
	}

	return fmt.Sprintf("-> %d. Operator %v. Parameters: %v;", ins.Label, ins.Op, strings.Join(args, " "))
}

// Parse parses an input stream into a Program. Every line break ends one
// instruction; text after the last line break is not part of the program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	reader := bufio.NewReader(input)

	var line string
	lineno := -1

	defer func() {
		if err != nil {
			prog = nil
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	var instructions []Instruction

	for {
		line, err = reader.ReadString('\n')
		if errors.Is(err, io.EOF) {
			err = nil
			if asm.Verbose && len(strings.TrimSpace(line)) != 0 {
				log.Infof("Ignoring unterminated line '%v'.", line)
			}
			break
		}
		if err != nil {
			return
		}
		line = strings.TrimSuffix(line, "\n")
		lineno += 1

		var ins Instruction
		ins, err = ParseInstruction(line)
		if err != nil {
			return
		}
		ins.LineNo = lineno

		if asm.Verbose {
			log.Info(traceLine(ins))
		}

		instructions = append(instructions, ins)
	}

	prog = NewProgram(instructions)

	if asm.Verbose {
		log.Infof("Read program has %d instructions.", len(prog.Instructions))
	}

	return
}
