package emulator

import (
	"github.com/ezrec/urm/translate"
)

var f = translate.From

// ErrConsole indicates a failure reading operator commands.
type ErrConsole struct {
	Ip  uint64
	Err error
}

func (err *ErrConsole) Error() string {
	return f("console at label %d %v", err.Ip, err.Err)
}

func (err *ErrConsole) Unwrap() error {
	return err.Err
}
