// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package device describes the supported GreenPAK parts and derives the
// bus addresses and command bytes a host uses to talk to them.
//
// No bus traffic happens here. Command bytes are built by setting the
// named signals of a fresh reg.Registers snapshot and reading back the
// register byte, so they follow the same layout the verifier checks.
package device
