package image

import (
	"errors"

	"github.com/ezrec/greenpak/translate"
)

var f = translate.From

var (
	ErrBitsHeader = errors.New(f("bits header missing"))
	ErrBitsCount  = errors.New(f("bits count wrong"))
	ErrBitsIndex  = errors.New(f("bit index out of sequence"))
	ErrBitsValue  = errors.New(f("bit value not 0 or 1"))
	ErrBitsSyntax = errors.New(f("bit line syntax"))

	ErrHexDumpStart = errors.New(f("hex dump start address negative"))

	ErrHexGap   = errors.New(f("hex image address missing"))
	ErrHexRange = errors.New(f("hex image address beyond register file"))
)

// ErrBitsLine locates an error in a bits file.
type ErrBitsLine struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrBitsLine) Error() string {
	return f("line %v '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrBitsLine) Unwrap() error {
	return err.Err
}

// ErrHexAddr locates an address defect in a hex image.
type ErrHexAddr struct {
	Addr uint32
	Err  error
}

func (err *ErrHexAddr) Error() string {
	return f("address 0x%02x %v", err.Addr, err.Err)
}

func (err *ErrHexAddr) Unwrap() error {
	return err.Err
}

// ErrHexRecord is a malformed Intel HEX record.
type ErrHexRecord struct {
	Err error
}

func (err *ErrHexRecord) Error() string {
	return f("hex record %v", err.Err)
}

func (err *ErrHexRecord) Unwrap() error {
	return err.Err
}
