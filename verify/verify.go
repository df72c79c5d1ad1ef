package verify

import (
	"github.com/ezrec/greenpak/reg"
)

// Layout is a register file representation under test.
// *reg.Registers is the production Layout.
type Layout interface {
	SetBit(sig reg.Signal, value uint8) error
	GetByte(r reg.Register) (uint8, error)
}

var _ Layout = (*reg.Registers)(nil)

// The canonical scenario: virtual input 7 is documented as the least
// significant bit of register 0x7a.
const (
	CANONICAL_SIGNAL   = reg.VIRTUAL_INPUT_7
	CANONICAL_REGISTER = reg.REG_7A
	CANONICAL_MASK     = uint8(0x01)
)

// Canonical sets the canonical signal in the fresh (all zero) layout l and
// checks the readback of its register.
func Canonical(l Layout) error {
	return expect(l, CANONICAL_SIGNAL, CANONICAL_REGISTER, CANONICAL_MASK)
}

// Sweep checks every signal in isolation, each on a fresh layout from
// newLayout, against its documented mask.
func Sweep(newLayout func() Layout) error {
	for sig := range reg.Signals() {
		r, ok := sig.Register()
		if !ok {
			return &ErrLayoutMismatch{Signal: sig, Err: reg.ErrRegisterInvalid}
		}
		if err := expect(newLayout(), sig, r, sig.Mask()); err != nil {
			return err
		}
	}
	return nil
}

func expect(l Layout, sig reg.Signal, r reg.Register, want uint8) error {
	mismatch := &ErrLayoutMismatch{Signal: sig, Register: r, Want: want}

	if err := l.SetBit(sig, 1); err != nil {
		mismatch.Err = err
		return mismatch
	}

	got, err := l.GetByte(r)
	if err != nil {
		mismatch.Err = err
		return mismatch
	}

	if got != want {
		mismatch.Got = got
		return mismatch
	}

	return nil
}
