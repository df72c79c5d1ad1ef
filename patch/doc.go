// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package patch edits a register image with a starlark script.
//
// Scripts see these builtins:
//
//	set(signal, value)   set a named signal to 0 or 1
//	get(signal)          read a named signal
//	poke(addr, value)    store a byte
//	peek(addr)           load a byte
//
// and one predeclared address constant per named register, for example
// reg_7a = 0x7a. Signal names are those of reg.Signal.
package patch
