package device

import (
	"github.com/ezrec/greenpak/reg"
)

var erasePage = [...]reg.Signal{
	reg.ERASE_PAGE_0,
	reg.ERASE_PAGE_1,
	reg.ERASE_PAGE_2,
	reg.ERASE_PAGE_3,
}

var controlCode = [...]reg.Signal{
	reg.CONTROL_CODE_0,
	reg.CONTROL_CODE_1,
	reg.CONTROL_CODE_2,
	reg.CONTROL_CODE_3,
}

var controlCodeSelect = [...]reg.Signal{
	reg.CONTROL_CODE_SELECT_0,
	reg.CONTROL_CODE_SELECT_1,
	reg.CONTROL_CODE_SELECT_2,
	reg.CONTROL_CODE_SELECT_3,
}

func boolBit(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// EraseCommand returns the REGISTER space write that erases one page
// of the NVM or EEPROM space.
func (desc *Descriptor) EraseCommand(space Space, page uint8) (addr reg.Addr, value uint8, err error) {
	if !space.Paged() {
		err = ErrSpace
		return
	}
	if page >= PAGE_COUNT {
		err = ErrPage
		return
	}
	if !desc.Writable(space, page) {
		err = ErrPageReadOnly
		return
	}

	var r reg.Registers
	addr = desc.EraseByteAddr
	r.SetByte(addr, desc.EraseByteMask)
	if err = r.SetBit(reg.ERASE_EEPROM, boolBit(space == EEPROM)); err != nil {
		return
	}
	for n, sig := range erasePage {
		if err = r.SetBit(sig, (page>>n)&1); err != nil {
			return
		}
	}

	value, err = r.GetByte(reg.REG_E3)
	return
}

// ResetCommand returns the REGISTER space write that resets the device,
// reloading the REGISTER space from NVM.
func ResetCommand() (addr reg.Addr, value uint8) {
	var r reg.Registers
	_ = r.SetBit(reg.SOFT_RESET, 1)
	addr, _ = reg.REG_C8.Addr()
	value, _ = r.GetByte(reg.REG_C8)
	return
}

// ControlCodeByte encodes a control code spec such as "01XX", most
// significant bit first. '0' and '1' fix a control code bit, 'X' takes
// the bit from the matching control code pin.
func ControlCodeByte(spec string) (value uint8, err error) {
	if len(spec) != 4 {
		err = ErrControlCodeSpec
		return
	}

	var r reg.Registers
	for n := range 4 {
		bit := 3 - n
		switch spec[n] {
		case '0':
		case '1':
			err = r.SetBit(controlCode[bit], 1)
		case 'X':
			err = r.SetBit(controlCodeSelect[bit], 1)
		default:
			err = ErrControlCodeSpec
		}
		if err != nil {
			return
		}
	}

	return r.GetByte(reg.REG_CA)
}

// ControlCodePage returns the NVM page holding the control code, with
// the control code byte replaced by value.
func (desc *Descriptor) ControlCodePage(config reg.Registers, value uint8) (page uint8, data []byte) {
	config.SetByte(desc.ControlCodeAddr, value)
	page = uint8(desc.ControlCodeAddr) / PAGE_SIZE
	start := int(page) * PAGE_SIZE
	data = config.Bytes()[start : start+PAGE_SIZE]
	return
}
