package internal

import (
	"iter"
)

// Mask returns the single bit mask for bit position pos (0 = LSB).
func Mask(pos uint8) uint8 {
	return 1 << (pos & 7)
}

// Bit returns bit pos of value as 0 or 1.
func Bit(value uint8, pos uint8) uint8 {
	return (value >> (pos & 7)) & 1
}

// With returns value with bit pos forced to bit.
func With(value uint8, pos uint8, bit bool) uint8 {
	if bit {
		return value | Mask(pos)
	}
	return value &^ Mask(pos)
}

// LsbFirst yields every bit of data, least significant bit of data[0] first.
func LsbFirst(data []byte) iter.Seq[bool] {
	return func(yield func(value bool) bool) {
		for _, value := range data {
			for pos := range uint8(8) {
				if !yield(Bit(value, pos) == 1) {
					return
				}
			}
		}
	}
}

// Pack is the inverse of LsbFirst, collecting bits into bytes.
// A trailing partial byte is returned with its high bits clear.
func Pack(bits iter.Seq[bool]) (data []byte) {
	var value uint8
	var n uint8
	for bit := range bits {
		value = With(value, n, bit)
		n++
		if n == 8 {
			data = append(data, value)
			value, n = 0, 0
		}
	}
	if n != 0 {
		data = append(data, value)
	}
	return
}
