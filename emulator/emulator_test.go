package emulator

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/urm/cpu"
)

func newEmulator(t *testing.T, program []string, commands string) (emu *Emulator, display *bytes.Buffer) {
	assert := assert.New(t)

	asm := &cpu.Assembler{}
	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n") + "\n"))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	display = &bytes.Buffer{}

	emu = NewEmulator(prog)
	emu.Step = true
	emu.Input = strings.NewReader(commands)
	emu.Display = display
	emu.Reset()

	return
}

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(nil)

	assert.False(emu.Verbose)
	assert.Equal(MODE_UNATTENDED, emu.Mode)
	assert.NoError(emu.Run())
	assert.True(emu.Cpu.Halted)
	assert.False(emu.Quit)
}

func TestEmulatorUnattended(t *testing.T) {
	assert := assert.New(t)

	emu, display := newEmulator(t, []string{"1. Z(1)", "2. S(1)", "3. S(1)"}, "")
	emu.Step = false
	emu.Reset()

	assert.NoError(emu.Run())
	assert.Equal(MODE_HALTED, emu.Mode)
	assert.Equal(uint64(2), emu.Cpu.Output(1))
	assert.Empty(display.String())

	done, err := emu.Tick()
	assert.NoError(err)
	assert.True(done)
}

func TestEmulatorStep(t *testing.T) {
	assert := assert.New(t)

	emu, display := newEmulator(t, []string{"1. S(1)", "2. S(1)"}, "s\n\n")

	done, err := emu.Tick()
	assert.NoError(err)
	assert.False(done)
	assert.Equal(uint64(1), emu.Cpu.Output(1))
	assert.Equal(uint64(2), emu.Cpu.Ip)

	done, err = emu.Tick()
	assert.NoError(err)
	assert.False(done)
	assert.Equal(uint64(2), emu.Cpu.Output(1))
	assert.Equal(uint64(3), emu.Cpu.Ip)

	assert.Equal("-> 1. S(1)\n-> 2. S(1)\n", display.String())
}

func TestEmulatorPrint(t *testing.T) {
	assert := assert.New(t)

	emu, display := newEmulator(t, []string{"1. S(2)", "2. T(2, 1)"}, "p\np\nq\n")
	assert.NoError(emu.Cpu.LoadState("R1=3 R2=4"))

	done, err := emu.Tick()
	assert.NoError(err)
	assert.True(done)
	assert.True(emu.Quit)

	assert.Equal(uint64(1), emu.Cpu.Ip)
	assert.Equal(uint64(3), emu.Cpu.Output(1))
	assert.Equal(uint64(4), emu.Cpu.Output(2))
	assert.Equal(0, emu.Cpu.Ticks)

	expected := "-> 1. S(2)\n" +
		"R2 = 4\nR1 = 3\n" +
		"R2 = 4\nR1 = 3\n"
	assert.Equal(expected, display.String())
}

func TestEmulatorPrintThenStep(t *testing.T) {
	assert := assert.New(t)

	emu, display := newEmulator(t, []string{"1. S(2)", "2. T(2, 1)"}, "p\ns\n")

	done, err := emu.Tick()
	assert.NoError(err)
	assert.False(done)
	assert.Equal(uint64(1), emu.Cpu.Output(2))
	assert.Equal(uint64(2), emu.Cpu.Ip)
	assert.Equal(1, strings.Count(display.String(), "-> 1. S(2)"))
}

func TestEmulatorUsage(t *testing.T) {
	assert := assert.New(t)

	emu, display := newEmulator(t, []string{"1. S(1)"}, "help\ns\n")

	done, err := emu.Tick()
	assert.NoError(err)
	assert.False(done)
	assert.Equal(uint64(1), emu.Cpu.Output(1))
	assert.Equal("-> 1. S(1)\n"+usage, display.String())
}

func TestEmulatorContinue(t *testing.T) {
	assert := assert.New(t)

	emu, display := newEmulator(t, []string{"1. S(1)", "2. S(1)", "3. S(1)"}, "s\nc\n")

	assert.NoError(emu.Run())
	assert.Equal(MODE_HALTED, emu.Mode)
	assert.False(emu.Quit)
	assert.Equal(uint64(3), emu.Cpu.Output(1))
	assert.Equal("-> 1. S(1)\n-> 2. S(1)\n", display.String())
}

func TestEmulatorHaltWhileStepping(t *testing.T) {
	assert := assert.New(t)

	emu, display := newEmulator(t, []string{"1. S(1)"}, "s\ns\n\nq\n")

	done, err := emu.Tick()
	assert.NoError(err)
	assert.False(done)

	// The halt does not end a stepping run.
	for range 2 {
		done, err = emu.Tick()
		assert.NoError(err)
		assert.False(done)
		assert.Equal(MODE_STEPPING, emu.Mode)
		assert.False(emu.Cpu.Halted)
	}

	done, err = emu.Tick()
	assert.NoError(err)
	assert.True(done)
	assert.True(emu.Quit)
	assert.Equal(uint64(1), emu.Cpu.Output(1))

	assert.Equal(3, strings.Count(display.String(), "-> halt: no instruction labelled 2\n"))
}

func TestEmulatorHaltContinue(t *testing.T) {
	assert := assert.New(t)

	emu, _ := newEmulator(t, []string{"1. J(1, 1, 9)"}, "s\nc\n")

	assert.NoError(emu.Run())
	assert.True(emu.Cpu.Halted)
	assert.False(emu.Quit)
	assert.Equal(uint64(9), emu.Cpu.Ip)
}

func TestEmulatorEndOfInput(t *testing.T) {
	assert := assert.New(t)

	emu, _ := newEmulator(t, []string{"1. S(1)", "2. S(1)"}, "s")

	assert.NoError(emu.Run())
	assert.True(emu.Quit)
	assert.Equal(uint64(1), emu.Cpu.Output(1))
}

func TestEmulatorPrompt(t *testing.T) {
	assert := assert.New(t)

	emu, display := newEmulator(t, []string{"1. S(1)"}, "q\n")
	emu.Prompt = true

	assert.NoError(emu.Run())
	assert.Equal("-> 1. S(1)\n"+prompt, display.String())
}

type failReader struct{}

var errFail = errors.New("unplugged")

func (failReader) Read([]byte) (int, error) {
	return 0, errFail
}

func TestEmulatorConsoleError(t *testing.T) {
	assert := assert.New(t)

	emu, _ := newEmulator(t, []string{"1. S(1)"}, "")
	emu.Input = failReader{}

	err := emu.Run()
	assert.ErrorIs(err, errFail)

	var console *ErrConsole
	if assert.True(errors.As(err, &console)) {
		assert.Equal(uint64(1), console.Ip)
	}
}
