package verify

import (
	"errors"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/greenpak/reg"
)

// msbFirst lays out bits the way a compiler that allocates bit-fields
// from the most significant bit would.
type msbFirst struct {
	data [reg.SIZE]byte
}

func (m *msbFirst) SetBit(sig reg.Signal, value uint8) error {
	coord, ok := sig.Coord()
	if !ok {
		return reg.ErrSignalInvalid
	}
	mask := uint8(0x80) >> coord.Bit
	if value == 1 {
		m.data[coord.Addr] |= mask
	} else {
		m.data[coord.Addr] &^= mask
	}
	return nil
}

func (m *msbFirst) GetByte(r reg.Register) (uint8, error) {
	addr, ok := r.Addr()
	if !ok {
		return 0, reg.ErrRegisterInvalid
	}
	return m.data[addr], nil
}

// broken refuses every access.
type broken struct{}

var errBroken = errors.New("broken")

func (broken) SetBit(reg.Signal, uint8) error      { return errBroken }
func (broken) GetByte(reg.Register) (uint8, error) { return 0, errBroken }

func reset(layout func() Layout) {
	once = sync.Once{}
	result = nil
	newLayout = layout
}

func TestCanonical(t *testing.T) {
	assert := assert.New(t)

	assert.NoError(Canonical(&reg.Registers{}))

	err := Canonical(&msbFirst{})
	assert.ErrorIs(err, ErrLayout)

	var mismatch *ErrLayoutMismatch
	if assert.ErrorAs(err, &mismatch) {
		assert.Equal(reg.VIRTUAL_INPUT_7, mismatch.Signal)
		assert.Equal(reg.REG_7A, mismatch.Register)
		assert.Equal(uint8(0x01), mismatch.Want)
		assert.Equal(uint8(0x80), mismatch.Got)
		assert.Contains(mismatch.Error(), "virtual_input_7")
		assert.Contains(mismatch.Error(), "reg_7a = 0x80")
	}
}

func TestCanonicalAccessError(t *testing.T) {
	assert := assert.New(t)

	err := Canonical(broken{})
	assert.ErrorIs(err, ErrLayout)
	assert.ErrorIs(err, errBroken)
}

func TestSweep(t *testing.T) {
	assert := assert.New(t)

	assert.NoError(Sweep(func() Layout { return &reg.Registers{} }))

	err := Sweep(func() Layout { return &msbFirst{} })
	var mismatch *ErrLayoutMismatch
	if assert.ErrorAs(err, &mismatch) {
		// virtual_input_0 sits at bit 7 and is the first signal swept.
		assert.Equal(reg.VIRTUAL_INPUT_0, mismatch.Signal)
		assert.Equal(uint8(0x80), mismatch.Want)
		assert.Equal(uint8(0x01), mismatch.Got)
	}
}

func TestStartupOnce(t *testing.T) {
	assert := assert.New(t)

	calls := 0
	reset(func() Layout {
		calls++
		return &reg.Registers{}
	})
	defer reset(func() Layout { return &reg.Registers{} })

	assert.NoError(Startup())
	assert.NoError(Startup())
	assert.Equal(1, calls)
}

func TestMust(t *testing.T) {
	assert := assert.New(t)

	code := -1
	exit = func(c int) { code = c }
	defer func() { exit = os.Exit }()
	defer reset(func() Layout { return &reg.Registers{} })

	reset(func() Layout { return &reg.Registers{} })
	Must()
	assert.Equal(-1, code)

	reset(func() Layout { return &msbFirst{} })
	Must()
	assert.Equal(ExitLayoutMismatch, code)
	assert.ErrorIs(Startup(), ErrLayout)
}

func TestMustSweep(t *testing.T) {
	assert := assert.New(t)

	code := -1
	exit = func(c int) { code = c }
	defer func() { exit = os.Exit }()

	MustSweep(func() Layout { return &reg.Registers{} })
	assert.Equal(-1, code)

	MustSweep(func() Layout { return &msbFirst{} })
	assert.Equal(ExitLayoutMismatch, code)
}
