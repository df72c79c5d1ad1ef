package image

import (
	"fmt"
	"io"
	"strings"
)

// HexDump prints data 16 bytes to a row, the first byte being at address
// start. Rows are aligned to 16 byte boundaries. start may not be negative.
func HexDump(w io.Writer, data []byte, start int) (err error) {
	if start < 0 {
		return ErrHexDumpStart
	}

	end := start + len(data)
	for row := (start / 16) * 16; row < end; row += 16 {
		items := make([]string, 0, 16)
		for col := range 16 {
			addr := row + col
			space := ""
			if col%4 == 0 {
				space = " "
			}
			if addr >= end {
				break
			}
			if addr < start {
				items = append(items, space+"  ")
			} else {
				items = append(items, fmt.Sprintf("%s%02x", space, data[addr-start]))
			}
		}
		if _, err = fmt.Fprintf(w, "%02x: %s\n", row, strings.Join(items, " ")); err != nil {
			return
		}
	}
	return
}
