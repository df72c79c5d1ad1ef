package reg

import (
	"iter"
	"strings"
)

// Register is a named byte of the register file.
type Register int

//go:generate go tool stringer -linecomment -type=Register
const (
	REG_7A = Register(0) // reg_7a
	REG_C8 = Register(1) // reg_c8
	REG_CA = Register(2) // reg_ca
	REG_E3 = Register(3) // reg_e3

	REGISTER_COUNT = 4
)

var registerTable = [REGISTER_COUNT]Addr{
	REG_7A: 0x7a,
	REG_C8: 0xc8,
	REG_CA: 0xca,
	REG_E3: 0xe3,
}

// Valid returns true if the register is in the register map.
func (r Register) Valid() bool {
	return r >= 0 && r < REGISTER_COUNT
}

// Addr returns the byte address of the register.
func (r Register) Addr() (addr Addr, ok bool) {
	if !r.Valid() {
		return
	}
	return registerTable[r], true
}

// Signals yields the signals of the register, lowest bit first.
func (r Register) Signals() iter.Seq[Signal] {
	return func(yield func(Signal) bool) {
		addr, ok := r.Addr()
		if !ok {
			return
		}
		for bit := range uint8(8) {
			for sig := range Signals() {
				coord := signalTable[sig]
				if coord.Addr == addr && coord.Bit == bit {
					if !yield(sig) {
						return
					}
				}
			}
		}
	}
}

// RegisterAt returns the named register at addr, if there is one.
func RegisterAt(addr Addr) (r Register, ok bool) {
	for r = range AllRegisters() {
		if registerTable[r] == addr {
			return r, true
		}
	}
	return 0, false
}

// AllRegisters yields every named register.
func AllRegisters() iter.Seq[Register] {
	return func(yield func(Register) bool) {
		for r := range Register(REGISTER_COUNT) {
			if !yield(r) {
				return
			}
		}
	}
}

// ParseRegister looks up a register by name, ignoring case.
func ParseRegister(name string) (r Register, err error) {
	for r = range AllRegisters() {
		if strings.EqualFold(r.String(), name) {
			return
		}
	}

	return 0, ErrRegisterUnknown(name)
}
