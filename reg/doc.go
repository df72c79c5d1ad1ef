// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package reg models the 256 byte REGISTER space of an SLG46826 GreenPAK.
//
// A Registers value is one snapshot of the whole register file. Byte k of
// the snapshot is register address k, and bits within a byte are numbered
// 0 (least significant) through 7 as in the datasheet. Named signals and
// named bytes are closed enumerations whose coordinates live in a static
// table; every access is explicit shift and mask arithmetic on the byte
// array, so no part of the layout is left to the compiler.
//
// The signal table is checked when the package is initialized. A table
// with an out of range bit, a shared coordinate or an undocumented byte
// panics before any snapshot can be built.
package reg
