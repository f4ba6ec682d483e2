package cpu

import (
	"errors"

	"github.com/ezrec/urm/translate"
)

var f = translate.From

var (
	// Assembler errors
	ErrMalformedLine   = errors.New(f("malformed line"))
	ErrExtraArgument   = errors.New(f("excessive arguments"))
	ErrOpcodeInvalid   = errors.New(f("opcode invalid"))
	ErrRegisterInvalid = errors.New(f("register invalid"))
	ErrLabelInvalid    = errors.New(f("label invalid"))

	// Register state errors
	ErrStateSyntax = errors.New(f("expected R<n>=<v>"))
)

var arityWord = []string{"no arguments", "one argument", "two arguments", "three arguments"}

// ErrMissingArgument is returned when an opcode has fewer operands than its arity.
type ErrMissingArgument struct {
	Op    Op
	Arity int
}

func (err ErrMissingArgument) Error() string {
	return f("operator '%v' requires %v", err.Op, arityWord[err.Arity])
}

func (err ErrMissingArgument) Is(target error) (ok bool) {
	_, ok = target.(ErrMissingArgument)
	return
}

// ErrSyntax locates an assembler error by its 0-based line index.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line number %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrMalformedState is returned for an initial register state token that
// is not a valid R<n>=<v> assignment.
type ErrMalformedState struct {
	Token string
	Err   error
}

func (err ErrMalformedState) Error() string {
	return f("register state '%v' %v", err.Token, err.Err)
}

func (err ErrMalformedState) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
