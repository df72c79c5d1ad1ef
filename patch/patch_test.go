package patch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/greenpak/reg"
)

func TestApply(t *testing.T) {
	assert := assert.New(t)

	script := []string{
		"set('virtual_input_7', 1)",
		"set('VIRTUAL_INPUT_0', 1)",
		"poke(reg_c8, 0x02)",
		"poke(0x10, peek(reg_c8) | 0x40)",
		"if get('virtual_input_7') == 1:",
		"    poke(0x11, 0xa5)",
		"for n in range(4):",
		"    set('erase_page_%d' % n, n % 2)",
	}

	var regs reg.Registers
	err := Apply(&regs, "test.star", strings.Join(script, "\n"))
	assert.NoError(err)

	value, _ := regs.GetByte(reg.REG_7A)
	assert.Equal(uint8(0x81), value)
	assert.Equal(uint8(0x02), regs.Byte(0xc8))
	assert.Equal(uint8(0x42), regs.Byte(0x10))
	assert.Equal(uint8(0xa5), regs.Byte(0x11))
	value, _ = regs.GetByte(reg.REG_E3)
	assert.Equal(uint8(0x0a), value)
}

func TestApplyErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		script string
		expect error
	}){
		{"bit", "set('soft_reset', 2)", reg.ErrBitValue},
		{"addr", "poke(256, 0)", ErrAddr},
		{"value", "poke(0, -1)", ErrValue},
		{"peek", "peek(-1)", ErrAddr},
	}

	for _, entry := range table {
		var regs reg.Registers
		err := Apply(&regs, entry.name, entry.script)
		assert.ErrorIs(err, entry.expect, entry.name)
		assert.Equal(reg.Registers{}, regs, entry.name)

		var errScript *ErrScript
		if assert.ErrorAs(err, &errScript, entry.name) {
			assert.Equal(entry.name, errScript.Filename)
		}
	}
}

func TestApplyUnknownSignal(t *testing.T) {
	assert := assert.New(t)

	var regs reg.Registers
	err := Apply(&regs, "unknown.star", "set('virtual_input_9', 1)")
	assert.Error(err)
	assert.Contains(err.Error(), "virtual_input_9")

	var unknown reg.ErrSignalUnknown
	if assert.ErrorAs(err, &unknown) {
		assert.Equal(reg.ErrSignalUnknown("virtual_input_9"), unknown)
	}

	err = Apply(&regs, "syntax.star", "set(")
	assert.Error(err)
}

func TestPredeclared(t *testing.T) {
	assert := assert.New(t)

	p := &Patcher{Regs: &reg.Registers{}}
	pred := p.predeclared()
	for _, name := range []string{"set", "get", "poke", "peek", "reg_7a", "reg_c8", "reg_ca", "reg_e3"} {
		_, ok := pred[name]
		assert.True(ok, name)
	}
	assert.Equal("122", pred["reg_7a"].String())
}
