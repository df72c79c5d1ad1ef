package patch

import (
	"log"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/greenpak/reg"
)

// Patcher runs scripts against a register image.
type Patcher struct {
	Verbose bool           // If set, logs every write.
	Regs    *reg.Registers // Image being edited.
}

// Apply runs the script src (a string, []byte or io.Reader, or nil to
// read filename) against regs.
func Apply(regs *reg.Registers, filename string, src any) error {
	p := &Patcher{Regs: regs}
	return p.Run(filename, src)
}

// Run executes one script.
func (p *Patcher) Run(filename string, src any) (err error) {
	thread := &starlark.Thread{
		Name:  filename,
		Print: func(_ *starlark.Thread, msg string) { log.Printf("%v: %v", filename, msg) },
	}
	opts := syntax.FileOptions{TopLevelControl: true}

	_, err = starlark.ExecFileOptions(&opts, thread, filename, src, p.predeclared())
	if err != nil {
		err = &ErrScript{Filename: filename, Err: err}
	}
	return
}

func (p *Patcher) predeclared() starlark.StringDict {
	pred := starlark.StringDict{
		"set":  starlark.NewBuiltin("set", p.set),
		"get":  starlark.NewBuiltin("get", p.get),
		"poke": starlark.NewBuiltin("poke", p.poke),
		"peek": starlark.NewBuiltin("peek", p.peek),
	}
	for r := range reg.AllRegisters() {
		addr, _ := r.Addr()
		pred[r.String()] = starlark.MakeInt(int(addr))
	}
	return pred
}

func toByte(v starlark.Value, errRange error) (value uint8, err error) {
	n, err := starlark.AsInt32(v)
	if err != nil {
		return
	}
	if n < 0 || n > 0xff {
		err = errRange
		return
	}
	return uint8(n), nil
}

func (p *Patcher) set(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var name string
	var v starlark.Value
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 2, &name, &v); err != nil {
		return nil, err
	}

	sig, err := reg.ParseSignal(name)
	if err != nil {
		return nil, err
	}

	value, err := starlark.AsInt32(v)
	if err != nil {
		return nil, err
	}
	if value < 0 || value > 1 {
		return nil, reg.ErrBitValue
	}

	if p.Verbose {
		log.Printf("%v", f("%v: %v = %v", thread.Name, sig, value))
	}

	if err = p.Regs.SetBit(sig, uint8(value)); err != nil {
		return nil, err
	}
	return starlark.None, nil
}

func (p *Patcher) get(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var name string
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &name); err != nil {
		return nil, err
	}

	sig, err := reg.ParseSignal(name)
	if err != nil {
		return nil, err
	}

	value, err := p.Regs.GetBit(sig)
	if err != nil {
		return nil, err
	}
	return starlark.MakeInt(int(value)), nil
}

func (p *Patcher) poke(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var va, vv starlark.Value
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 2, &va, &vv); err != nil {
		return nil, err
	}

	addr, err := toByte(va, ErrAddr)
	if err != nil {
		return nil, err
	}
	value, err := toByte(vv, ErrValue)
	if err != nil {
		return nil, err
	}

	if p.Verbose {
		log.Printf("%v", f("%v: [0x%02x] = 0x%02x", thread.Name, addr, value))
	}

	p.Regs.SetByte(reg.Addr(addr), value)
	return starlark.None, nil
}

func (p *Patcher) peek(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var va starlark.Value
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &va); err != nil {
		return nil, err
	}

	addr, err := toByte(va, ErrAddr)
	if err != nil {
		return nil, err
	}
	return starlark.MakeInt(int(p.Regs.Byte(reg.Addr(addr)))), nil
}
