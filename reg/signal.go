package reg

import (
	"iter"
	"strings"
)

// Signal is a named bit of the register file.
type Signal int

//go:generate go tool stringer -linecomment -type=Signal
const (
	VIRTUAL_INPUT_0       = Signal(0)  // virtual_input_0
	VIRTUAL_INPUT_1       = Signal(1)  // virtual_input_1
	VIRTUAL_INPUT_2       = Signal(2)  // virtual_input_2
	VIRTUAL_INPUT_3       = Signal(3)  // virtual_input_3
	VIRTUAL_INPUT_4       = Signal(4)  // virtual_input_4
	VIRTUAL_INPUT_5       = Signal(5)  // virtual_input_5
	VIRTUAL_INPUT_6       = Signal(6)  // virtual_input_6
	VIRTUAL_INPUT_7       = Signal(7)  // virtual_input_7
	SOFT_RESET            = Signal(8)  // soft_reset
	CONTROL_CODE_0        = Signal(9)  // control_code_0
	CONTROL_CODE_1        = Signal(10) // control_code_1
	CONTROL_CODE_2        = Signal(11) // control_code_2
	CONTROL_CODE_3        = Signal(12) // control_code_3
	CONTROL_CODE_SELECT_0 = Signal(13) // control_code_select_0
	CONTROL_CODE_SELECT_1 = Signal(14) // control_code_select_1
	CONTROL_CODE_SELECT_2 = Signal(15) // control_code_select_2
	CONTROL_CODE_SELECT_3 = Signal(16) // control_code_select_3
	ERASE_PAGE_0          = Signal(17) // erase_page_0
	ERASE_PAGE_1          = Signal(18) // erase_page_1
	ERASE_PAGE_2          = Signal(19) // erase_page_2
	ERASE_PAGE_3          = Signal(20) // erase_page_3
	ERASE_EEPROM          = Signal(21) // erase_eeprom
	ERASE_ENABLE          = Signal(22) // erase_enable

	SIGNAL_COUNT = 23
)

// Coordinates per the SLG46826 register map.
var signalTable = [SIGNAL_COUNT]Coord{
	// Virtual inputs, register bits 976..983, VI7 first.
	VIRTUAL_INPUT_7: {0x7a, 0},
	VIRTUAL_INPUT_6: {0x7a, 1},
	VIRTUAL_INPUT_5: {0x7a, 2},
	VIRTUAL_INPUT_4: {0x7a, 3},
	VIRTUAL_INPUT_3: {0x7a, 4},
	VIRTUAL_INPUT_2: {0x7a, 5},
	VIRTUAL_INPUT_1: {0x7a, 6},
	VIRTUAL_INPUT_0: {0x7a, 7},

	// Register bit 1601.
	SOFT_RESET: {0xc8, 1},

	// I2C control code, and pin selection of each control code bit.
	CONTROL_CODE_0:        {0xca, 0},
	CONTROL_CODE_1:        {0xca, 1},
	CONTROL_CODE_2:        {0xca, 2},
	CONTROL_CODE_3:        {0xca, 3},
	CONTROL_CODE_SELECT_0: {0xca, 4},
	CONTROL_CODE_SELECT_1: {0xca, 5},
	CONTROL_CODE_SELECT_2: {0xca, 6},
	CONTROL_CODE_SELECT_3: {0xca, 7},

	// ERSR, page erase trigger.
	ERASE_PAGE_0: {0xe3, 0},
	ERASE_PAGE_1: {0xe3, 1},
	ERASE_PAGE_2: {0xe3, 2},
	ERASE_PAGE_3: {0xe3, 3},
	ERASE_EEPROM: {0xe3, 4},
	ERASE_ENABLE: {0xe3, 7},
}

// Valid returns true if the signal is in the register map.
func (sig Signal) Valid() bool {
	return sig >= 0 && sig < SIGNAL_COUNT
}

// Coord returns the location of the signal.
// An invalid signal returns the zero Coord and false.
func (sig Signal) Coord() (coord Coord, ok bool) {
	if !sig.Valid() {
		return
	}
	return signalTable[sig], true
}

// Mask returns the bit mask of the signal within its register byte.
func (sig Signal) Mask() uint8 {
	coord, ok := sig.Coord()
	if !ok {
		return 0
	}
	return coord.Mask()
}

// Register returns the named byte holding the signal.
func (sig Signal) Register() (r Register, ok bool) {
	coord, ok := sig.Coord()
	if !ok {
		return
	}
	return RegisterAt(coord.Addr)
}

// Signals yields every signal in the register map.
func Signals() iter.Seq[Signal] {
	return func(yield func(Signal) bool) {
		for sig := range Signal(SIGNAL_COUNT) {
			if !yield(sig) {
				return
			}
		}
	}
}

// ParseSignal looks up a signal by name, ignoring case.
func ParseSignal(name string) (sig Signal, err error) {
	for sig = range Signals() {
		if strings.EqualFold(sig.String(), name) {
			return
		}
	}

	return 0, ErrSignalUnknown(name)
}
