package image

import (
	"io"

	"github.com/marcinbor85/gohex"

	"github.com/ezrec/greenpak/reg"
)

// HEX_LINE_LENGTH is the number of data bytes per written record.
const HEX_LINE_LENGTH = 16

// ReadHex parses an Intel HEX image. The image must hold exactly the
// addresses 0x00..0xff.
func ReadHex(r io.Reader) (regs reg.Registers, err error) {
	mem := gohex.NewMemory()
	if err = mem.ParseIntelHex(r); err != nil {
		err = &ErrHexRecord{Err: err}
		return
	}

	var seen [reg.SIZE]bool
	for _, segment := range mem.GetDataSegments() {
		for n, value := range segment.Data {
			addr := segment.Address + uint32(n)
			if addr >= reg.SIZE {
				err = &ErrHexAddr{Addr: addr, Err: ErrHexRange}
				return
			}
			seen[addr] = true
			regs.SetByte(reg.Addr(addr), value)
		}
	}

	for addr, ok := range seen {
		if !ok {
			err = &ErrHexAddr{Addr: uint32(addr), Err: ErrHexGap}
			return
		}
	}

	return
}

// WriteHex writes regs as an Intel HEX image.
func WriteHex(w io.Writer, regs reg.Registers) (err error) {
	mem := gohex.NewMemory()
	if err = mem.AddBinary(0, regs.Bytes()); err != nil {
		return
	}
	return mem.DumpIntelHex(w, HEX_LINE_LENGTH)
}
