package image

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/ezrec/greenpak/internal"
	"github.com/ezrec/greenpak/reg"
)

// BIT_COUNT is the number of bit lines in a bits file.
const BIT_COUNT = reg.SIZE * 8

var bitsHeader = regexp.MustCompile(`^index\s+value\s+comment`)

// ReadBits parses a GreenPAK Designer bits file.
func ReadBits(r io.Reader) (regs reg.Registers, err error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		err = scanner.Err()
		if err == nil {
			err = ErrBitsHeader
		}
		return
	}
	if !bitsHeader.MatchString(strings.TrimSpace(scanner.Text())) {
		err = ErrBitsHeader
		return
	}

	bits := make([]bool, 0, BIT_COUNT)
	lineno := 1
	for scanner.Scan() {
		lineno++
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if len(line) == 0 {
			continue
		}

		bit, berr := parseBitLine(line, len(bits))
		if berr != nil {
			err = &ErrBitsLine{LineNo: lineno, Line: line, Err: berr}
			return
		}
		bits = append(bits, bit)
	}
	if err = scanner.Err(); err != nil {
		return
	}

	if len(bits) != BIT_COUNT {
		err = ErrBitsCount
		return
	}

	regs, err = reg.FromBytes(internal.Pack(slices.Values(bits)))
	return
}

func parseBitLine(line string, expect int) (bit bool, err error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		err = ErrBitsSyntax
		return
	}

	index, err := strconv.Atoi(fields[0])
	if err != nil {
		err = ErrBitsSyntax
		return
	}
	if index != expect || index >= BIT_COUNT {
		err = ErrBitsIndex
		return
	}

	switch fields[1] {
	case "0":
	case "1":
		bit = true
	default:
		err = ErrBitsValue
	}
	return
}

// WriteBits writes regs as a GreenPAK Designer bits file. Each bit line
// is annotated with the signal at that position, if any.
func WriteBits(w io.Writer, regs reg.Registers) (err error) {
	names := map[int]string{}
	for sig := range reg.Signals() {
		coord, _ := sig.Coord()
		names[coord.Index()] = sig.String()
	}

	bw := bufio.NewWriter(w)
	if _, err = fmt.Fprintf(bw, "index\t\tvalue\t\tcomment\n"); err != nil {
		return
	}

	n := 0
	for bit := range regs.Bits() {
		value := 0
		if bit {
			value = 1
		}
		if _, err = fmt.Fprintf(bw, "%d\t\t%d\t\t//%v\n", n, value, names[n]); err != nil {
			return
		}
		n++
	}

	return bw.Flush()
}
