// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package image reads and writes register images in the text formats
// used around GreenPAK tooling.
//
// The bits format is the one exported by GreenPAK Designer: a header
// line, then one line per register bit, "index value comment", bit 0 of
// address 0x00 first. The hex format is Intel HEX covering exactly the
// addresses 0x00..0xff. HexDump prints an image for humans.
package image
