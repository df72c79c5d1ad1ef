package verify

import (
	"errors"

	"github.com/ezrec/greenpak/reg"
	"github.com/ezrec/greenpak/translate"
)

var f = translate.From

var (
	ErrLayout = errors.New(f("register layout does not match datasheet"))
)

// ErrLayoutMismatch records the failing readback.
type ErrLayoutMismatch struct {
	Signal   reg.Signal
	Register reg.Register
	Want     uint8
	Got      uint8
	Err      error // Set when the layout refused the access itself.
}

func (err *ErrLayoutMismatch) Error() string {
	if err.Err != nil {
		return f("layout mismatch: %v in %v: %v", err.Signal, err.Register, err.Err)
	}
	return f("layout mismatch: %v set, %v = 0x%02x, want 0x%02x",
		err.Signal, err.Register, err.Got, err.Want)
}

func (err *ErrLayoutMismatch) Is(target error) bool {
	return target == ErrLayout
}

func (err *ErrLayoutMismatch) Unwrap() error {
	return err.Err
}
