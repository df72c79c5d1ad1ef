package device

import (
	"errors"

	"github.com/ezrec/greenpak/translate"
)

var f = translate.From

var (
	ErrControlCode     = errors.New(f("control code not in 0..15"))
	ErrControlCodeSpec = errors.New(f("control code spec must be 4 of 0, 1 or X"))
	ErrSpace           = errors.New(f("memory space invalid"))
	ErrPage            = errors.New(f("page not in 0..15"))
	ErrPageReadOnly    = errors.New(f("page is read only"))
	ErrEraseByte       = errors.New(f("erase byte is not the ERSR register"))
	ErrEraseMask       = errors.New(f("erase mask overlaps page select bits"))
	ErrPageDuplicate   = errors.New(f("duplicate read only page"))
)

// ErrDeviceUnknown is an unsupported device type name.
type ErrDeviceUnknown string

func (err ErrDeviceUnknown) Error() string {
	return f("device %v unknown", string(err))
}

// ErrDescriptor ties a descriptor defect to the device type.
type ErrDescriptor struct {
	Type string
	Err  error
}

func (err *ErrDescriptor) Error() string {
	return f("device %v: %v", err.Type, err.Err)
}

func (err *ErrDescriptor) Unwrap() error {
	return err.Err
}
