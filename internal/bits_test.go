package internal

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMask(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(uint8(0x01), Mask(0))
	assert.Equal(uint8(0x02), Mask(1))
	assert.Equal(uint8(0x80), Mask(7))
}

func TestBitWith(t *testing.T) {
	assert := assert.New(t)

	for pos := range uint8(8) {
		value := With(0, pos, true)
		assert.Equal(Mask(pos), value)
		assert.Equal(uint8(1), Bit(value, pos))
		assert.Equal(uint8(0), With(value, pos, false))
		assert.Equal(uint8(0xff), With(0xff, pos, true))
	}
}

func TestLsbFirst(t *testing.T) {
	assert := assert.New(t)

	bits := slices.Collect(LsbFirst([]byte{0x01, 0x80}))
	assert.Equal(16, len(bits))
	assert.True(bits[0])
	assert.True(bits[15])
	for n := 1; n < 15; n++ {
		assert.False(bits[n], n)
	}

	// Early stop.
	count := 0
	for range LsbFirst([]byte{0xff, 0xff}) {
		count++
		if count == 3 {
			break
		}
	}
	assert.Equal(3, count)
}

func TestPack(t *testing.T) {
	assert := assert.New(t)

	data := []byte{0x7a, 0x01, 0xc8, 0xe3}
	assert.Equal(data, Pack(LsbFirst(data)))
	assert.Equal([]byte{0x05}, Pack(slices.Values([]bool{true, false, true})))
	assert.Nil(Pack(slices.Values([]bool{})))
}
