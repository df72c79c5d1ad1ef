package reg

import (
	"iter"

	"github.com/ezrec/greenpak/internal"
)

// Registers is a snapshot of the complete register file. The zero value
// is the all zero register file. Registers is the wire image exchanged
// with the device: byte k is register address k.
type Registers [SIZE]byte

// FromBytes copies a 256 byte register image.
func FromBytes(data []byte) (r Registers, err error) {
	if len(data) != SIZE {
		err = ErrImageSize
		return
	}
	copy(r[:], data)
	return
}

// Bytes returns a copy of the register image.
func (r Registers) Bytes() []byte {
	return append([]byte(nil), r[:]...)
}

// Byte returns the byte at addr.
func (r Registers) Byte(addr Addr) uint8 {
	return r[addr]
}

// SetByte stores value at addr.
func (r *Registers) SetByte(addr Addr, value uint8) {
	r[addr] = value
}

// GetByte returns the value of a named register, bit 0 being the
// datasheet's lowest numbered bit of the byte.
func (r Registers) GetByte(reg Register) (value uint8, err error) {
	addr, ok := reg.Addr()
	if !ok {
		err = ErrRegisterInvalid
		return
	}
	return r[addr], nil
}

// SetBit sets (value 1) or clears (value 0) exactly the bit of sig.
func (r *Registers) SetBit(sig Signal, value uint8) (err error) {
	coord, ok := sig.Coord()
	if !ok {
		return ErrSignalInvalid
	}
	if value > 1 {
		return ErrBitValue
	}
	r[coord.Addr] = internal.With(r[coord.Addr], coord.Bit, value == 1)
	return nil
}

// GetBit returns the bit of sig, 0 or 1.
func (r Registers) GetBit(sig Signal) (value uint8, err error) {
	coord, ok := sig.Coord()
	if !ok {
		err = ErrSignalInvalid
		return
	}
	return internal.Bit(r[coord.Addr], coord.Bit), nil
}

// Bits yields all register bits in datasheet order, starting with bit 0
// of address 0x00.
func (r Registers) Bits() iter.Seq[bool] {
	return internal.LsbFirst(r[:])
}

// SetSignals yields every signal that is currently 1.
func (r Registers) SetSignals() iter.Seq[Signal] {
	return func(yield func(Signal) bool) {
		for sig := range Signals() {
			coord := signalTable[sig]
			if internal.Bit(r[coord.Addr], coord.Bit) == 1 {
				if !yield(sig) {
					return
				}
			}
		}
	}
}
