package reg

import (
	"fmt"

	"github.com/ezrec/greenpak/internal"
)

// SIZE is the number of bytes in the register file.
const SIZE = 256

// Addr is a register byte address. Every Addr is in range.
type Addr uint8

// Coord locates one bit in the register file.
type Coord struct {
	Addr Addr
	Bit  uint8 // 0 is the least significant bit.
}

// Index returns the datasheet's register bit number, Addr*8+Bit.
func (c Coord) Index() int {
	return int(c.Addr)*8 + int(c.Bit)
}

// Mask returns the mask of the bit within its byte.
func (c Coord) Mask() uint8 {
	return internal.Mask(c.Bit)
}

func (c Coord) String() string {
	return fmt.Sprintf("0x%02x.%d", uint8(c.Addr), c.Bit)
}
