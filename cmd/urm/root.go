package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ezrec/urm/cpu"
	"github.com/ezrec/urm/emulator"
	"github.com/ezrec/urm/translate"
)

var f = translate.From

// Process exit codes.
const (
	EXIT_OK       = 0 // Success.
	EXIT_USAGE    = 1 // Usage or file error.
	EXIT_PROGRAM  = 2 // Program text does not parse.
	EXIT_ARGUMENT = 3 // Instruction is missing an argument.
	EXIT_STATE    = 4 // Initial register state does not parse.
)

var errFileUnavailable = errors.New(f("file unavailable"))

var rootCmd = &cobra.Command{
	Use:   "urm [flags] program [R<n>=<v> ...]",
	Short: "Unlimited Register Machine interpreter.",
	Long: `Run an Unlimited Register Machine program.

Each program line is one instruction, "<label>. <OP>(<args>)", where OP is
Z(r), S(r), T(a, b) or J(a, b, label). Execution starts at label 1 and stops
at the first label no instruction declares. Initial register values are
given as R<n>=<v> assignments.`,
	Args: cobra.MinimumNArgs(1),
	Run:  runRootCmd,
}

func init() {
	rootCmd.Flags().BoolP("verbose", "v", false, "trace program loading and register assignment")
	rootCmd.Flags().BoolP("raw", "r", false, "print only the output register value")
	rootCmd.Flags().BoolP("step", "s", false, "step through the program interactively")
	rootCmd.Flags().UintP("output", "o", 1, "output register")
	rootCmd.Flags().String("cpuprofile", "", "write a CPU profile into this directory")
}

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		log.Error(err)
		os.Exit(EXIT_USAGE)
	}

	return r
}

// GetUint gets an expected unsigned int flag, or exits if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		log.Error(err)
		os.Exit(EXIT_USAGE)
	}

	return r
}

// GetString gets an expected string flag, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		log.Error(err)
		os.Exit(EXIT_USAGE)
	}

	return r
}

// exitCode classifies a program load error.
func exitCode(err error) int {
	var missing cpu.ErrMissingArgument
	var state *cpu.ErrMalformedState

	switch {
	case err == nil:
		return EXIT_OK
	case errors.As(err, &missing):
		return EXIT_ARGUMENT
	case errors.As(err, &state):
		return EXIT_STATE
	case errors.Is(err, errFileUnavailable):
		return EXIT_USAGE
	default:
		return EXIT_PROGRAM
	}
}

// readProgram reads and assembles a program file.
func readProgram(filename string, verbose bool) (prog *cpu.Program, err error) {
	text, err := os.ReadFile(filename)
	if err != nil {
		err = fmt.Errorf("%w: %w", errFileUnavailable, err)
		return
	}

	asm := &cpu.Assembler{Verbose: verbose}

	return asm.Parse(bytes.NewReader(text))
}

func runRootCmd(cmd *cobra.Command, args []string) {
	verbose := GetFlag(cmd, "verbose")
	raw := GetFlag(cmd, "raw")
	step := GetFlag(cmd, "step")
	output := GetUint(cmd, "output")
	cpuprofile := GetString(cmd, "cpuprofile")

	if output < 1 || output > cpu.REGISTER_COUNT {
		log.Errorf("%v: %d", f("output register out of range"), output)
		os.Exit(EXIT_USAGE)
	}

	prog, err := readProgram(args[0], verbose)
	if err != nil {
		log.Errorf("%v: %v", args[0], err)
		os.Exit(exitCode(err))
	}

	emu := emulator.NewEmulator(prog)
	emu.Verbose = verbose
	emu.Step = step
	emu.Input = os.Stdin
	emu.Display = os.Stdout
	emu.Prompt = term.IsTerminal(int(os.Stdin.Fd()))
	emu.Reset()

	err = emu.Cpu.LoadState(strings.Join(args[1:], " "))
	if err != nil {
		log.Error(err)
		os.Exit(exitCode(err))
	}

	if len(cpuprofile) != 0 {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(cpuprofile), profile.NoShutdownHook, profile.Quiet).Stop()
	}

	err = emu.Run()
	if err != nil {
		log.Error(err)
		os.Exit(EXIT_USAGE)
	}

	value := emu.Cpu.Output(int(output))
	if raw {
		fmt.Println(value)
	} else {
		fmt.Printf("Register [%d] = %d\n", output, value)
	}
}
