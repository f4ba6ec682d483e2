// Package cpu implements the program loader and execution engine for an
// Unlimited Register Machine (URM).
//
// A URM program is a list of labelled instructions drawn from four opcodes:
// Zero, Successor, Transfer and Jump. The machine has 256 unsigned 64-bit
// registers, addressed 1 through 256, and an instruction pointer that holds a
// label rather than a position. Execution stops when the instruction pointer
// names a label that no instruction declares.
//
// The assembler parses program text into a Program, and tracks the registers
// the program refers to so they can be displayed while debugging.
package cpu
