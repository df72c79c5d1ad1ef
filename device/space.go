package device

// Space is one of the memory spaces a GreenPAK exposes on the I2C bus.
type Space int

//go:generate go tool stringer -linecomment -type=Space
const (
	REGISTER = Space(0) // register
	NVM      = Space(1) // nvm
	EEPROM   = Space(2) // eeprom
	UNUSED   = Space(3) // unused
)

// Low three address bits of each space.
var spaceBits = [...]uint8{
	REGISTER: 0b000,
	NVM:      0b010,
	EEPROM:   0b011,
	UNUSED:   0b100,
}

// Valid returns true for a known memory space.
func (s Space) Valid() bool {
	return s >= REGISTER && s <= UNUSED
}

// Paged returns true for the spaces erased and written 16 byte pages at a time.
func (s Space) Paged() bool {
	return s == NVM || s == EEPROM
}

// I2CAddr returns the 7 bit bus address of a space of the device with
// the given control code.
func I2CAddr(controlCode uint8, space Space) (addr uint8, err error) {
	if controlCode > 15 {
		err = ErrControlCode
		return
	}
	if !space.Valid() {
		err = ErrSpace
		return
	}
	return controlCode<<3 | spaceBits[space], nil
}
