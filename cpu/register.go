package cpu

import (
	"fmt"
)

const (
	REGISTER_COUNT = 256 // Number of registers.
)

// RegisterFile is the URM register bank.
//
// Registers are addressed from 1 to REGISTER_COUNT. Indexes outside of
// that range are a programming error and panic; the assembler rejects
// programs that use them.
type RegisterFile struct {
	Value [REGISTER_COUNT]uint64
}

func (rf *RegisterFile) Get(reg int) uint64 {
	return rf.Value[reg-1]
}

func (rf *RegisterFile) Set(reg int, value uint64) {
	rf.Value[reg-1] = value
}

// Increment adds one to a register, wrapping at 2^64.
func (rf *RegisterFile) Increment(reg int) {
	rf.Value[reg-1]++
}

func (rf *RegisterFile) Reset() {
	clear(rf.Value[:])
}

// Format returns the listed registers, one per line.
func (rf *RegisterFile) Format(regs []int) (text string) {
	for _, reg := range regs {
		text += fmt.Sprintf("R%d = %d\n", reg, rf.Get(reg))
	}

	return
}
