package patch

import (
	"errors"

	"github.com/ezrec/greenpak/translate"
)

var f = translate.From

var (
	ErrAddr  = errors.New(f("address not in 0..255"))
	ErrValue = errors.New(f("byte value not in 0..255"))
)

// ErrScript wraps a failure of the named script.
type ErrScript struct {
	Filename string
	Err      error
}

func (err *ErrScript) Error() string {
	return f("%v: %v", err.Filename, err.Err)
}

func (err *ErrScript) Unwrap() error {
	return err.Err
}
