package reg

import (
	"errors"

	"github.com/ezrec/greenpak/translate"
)

var f = translate.From

var (
	ErrSignalInvalid   = errors.New(f("signal invalid"))
	ErrRegisterInvalid = errors.New(f("register invalid"))
	ErrBitValue        = errors.New(f("bit value not 0 or 1"))
	ErrImageSize       = errors.New(f("register image size"))
)

// ErrSignalUnknown is a signal name that is not in the register map.
type ErrSignalUnknown string

func (err ErrSignalUnknown) Error() string {
	return f("signal %v unknown", string(err))
}

// ErrRegisterUnknown is a register name that is not in the register map.
type ErrRegisterUnknown string

func (err ErrRegisterUnknown) Error() string {
	return f("register %v unknown", string(err))
}

// ErrTable describes a defect in the static signal table.
type ErrTable struct {
	Signal Signal
	Coord  Coord
	Err    error
}

func (err *ErrTable) Error() string {
	return f("signal %v at %v: %v", err.Signal, err.Coord, err.Err)
}

func (err *ErrTable) Unwrap() error {
	return err.Err
}

var (
	ErrTableBit       = errors.New(f("bit position beyond 7"))
	ErrTableDuplicate = errors.New(f("coordinate already claimed"))
	ErrTableRegister  = errors.New(f("byte is not a named register"))
)
