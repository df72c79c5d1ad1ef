// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package verify checks, once per process, that the register map agrees
// with the datasheet bit numbering before any register image is trusted.
//
// The canonical check sets virtual_input_7 (bit 0 of register 0x7a) in an
// all zero register file and expects reg_7a to read back as 0x01. A
// mismatch is fatal: Must logs it and terminates the process with
// ExitLayoutMismatch.
package verify
