package image

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/greenpak/reg"
)

func bitsText(set ...int) string {
	var buf strings.Builder
	buf.WriteString("index\t\tvalue\t\tcomment\n")
	for n := range BIT_COUNT {
		value := 0
		for _, s := range set {
			if s == n {
				value = 1
			}
		}
		fmt.Fprintf(&buf, "%d\t\t%d\t\t//\n", n, value)
	}
	return buf.String()
}

func TestReadBits(t *testing.T) {
	assert := assert.New(t)

	regs, err := ReadBits(strings.NewReader(bitsText(0, 976, 1601, BIT_COUNT-1)))
	assert.NoError(err)

	value, _ := regs.GetByte(reg.REG_7A)
	assert.Equal(uint8(0x01), value)
	value, _ = regs.GetByte(reg.REG_C8)
	assert.Equal(uint8(0x02), value)
	assert.Equal(uint8(0x01), regs.Byte(0x00))
	assert.Equal(uint8(0x80), regs.Byte(0xff))
}

func TestWriteReadBits(t *testing.T) {
	assert := assert.New(t)

	var regs reg.Registers
	for n := range reg.SIZE {
		regs.SetByte(reg.Addr(n), uint8(n*7+3))
	}

	var buf bytes.Buffer
	assert.NoError(WriteBits(&buf, regs))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Equal(BIT_COUNT+1, len(lines))
	assert.Equal("index\t\tvalue\t\tcomment", lines[0])
	assert.Equal("976\t\t1\t\t//virtual_input_7", lines[976+1])

	again, err := ReadBits(&buf)
	assert.NoError(err)
	assert.Equal(regs, again)
}

func TestReadBitsErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := ReadBits(strings.NewReader(""))
	assert.ErrorIs(err, ErrBitsHeader)

	_, err = ReadBits(strings.NewReader("0\t\t1\t\t//\n"))
	assert.ErrorIs(err, ErrBitsHeader)

	text := bitsText()
	short := text[:strings.LastIndex(strings.TrimSuffix(text, "\n"), "\n")+1]
	_, err = ReadBits(strings.NewReader(short))
	assert.ErrorIs(err, ErrBitsCount)

	_, err = ReadBits(strings.NewReader(text + "2048\t\t0\t\t//\n"))
	assert.ErrorIs(err, ErrBitsIndex)

	bad := strings.Replace(text, "\n5\t\t0", "\n5\t\t2", 1)
	_, err = ReadBits(strings.NewReader(bad))
	assert.ErrorIs(err, ErrBitsValue)
	var errLine *ErrBitsLine
	if assert.ErrorAs(err, &errLine) {
		assert.Equal(7, errLine.LineNo)
		assert.Equal("5\t\t2\t\t//", errLine.Line)
	}

	skip := strings.Replace(text, "\n5\t\t0\t\t//\n", "\n", 1)
	_, err = ReadBits(strings.NewReader(skip))
	assert.ErrorIs(err, ErrBitsIndex)

	_, err = ReadBits(strings.NewReader(strings.Replace(text, "\n5\t\t0\t\t//", "\nfive", 1)))
	assert.ErrorIs(err, ErrBitsSyntax)
}

func TestHexDump(t *testing.T) {
	assert := assert.New(t)

	data := make([]byte, 20)
	for n := range data {
		data[n] = byte(n)
	}

	var buf bytes.Buffer
	assert.NoError(HexDump(&buf, data, 0))
	assert.Equal("00:  00 01 02 03  04 05 06 07  08 09 0a 0b  0c 0d 0e 0f\n"+
		"10:  10 11 12 13\n", buf.String())

	buf.Reset()
	assert.NoError(HexDump(&buf, []byte{0xaa, 0xbb}, 2))
	assert.Equal("00: "+strings.Repeat(" ", 7)+"aa bb\n", buf.String())

	buf.Reset()
	assert.NoError(HexDump(&buf, nil, 0))
	assert.Equal("", buf.String())

	buf.Reset()
	err := HexDump(&buf, []byte{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff, 0x11}, -5)
	assert.ErrorIs(err, ErrHexDumpStart)
	assert.Equal("", buf.String())
}
