package device

import (
	"io/fs"
	"slices"

	"github.com/ezrec/greenpak/image"
	"github.com/ezrec/greenpak/reg"
)

const (
	PAGE_SIZE  = 16
	PAGE_COUNT = reg.SIZE / PAGE_SIZE
)

// Descriptor is the programming model of a GreenPAK part.
type Descriptor struct {
	Type             string  // Part name, e.g. "SLG46826".
	ReadOnlyNvmPages []uint8 // NVM service pages the user may not erase.
	EraseByteAddr    reg.Addr
	EraseByteMask    uint8 // Fixed bits written with every erase.
	ControlCodeAddr  reg.Addr

	// Intel HEX image of the factory NVM configuration.
	DefaultConfigFile string
}

var devices = []Descriptor{
	{"SLG46824", []uint8{15}, 0xe3, 0b1000_0000, 0xca, "SLG46824_default.hex"},
	{"SLG46826", []uint8{15}, 0xe3, 0b1000_0000, 0xca, "SLG46826_default.hex"},
	{"SLG46827", []uint8{15}, 0xe3, 0b1000_0000, 0xca, "SLG46827_default.hex"},
	{"SLG47004", []uint8{8, 15}, 0xe3, 0b1100_0000, 0x7f, "SLG47004_default.hex"},
}

func init() {
	for _, desc := range devices {
		if err := desc.Validate(); err != nil {
			panic(err)
		}
	}
}

// Types returns the supported part names.
func Types() (types []string) {
	for _, desc := range devices {
		types = append(types, desc.Type)
	}
	return
}

// Lookup returns a copy of the descriptor of a supported part.
func Lookup(deviceType string) (desc Descriptor, err error) {
	for _, desc = range devices {
		if desc.Type == deviceType {
			desc.ReadOnlyNvmPages = slices.Clone(desc.ReadOnlyNvmPages)
			return desc, nil
		}
	}
	return Descriptor{}, ErrDeviceUnknown(deviceType)
}

// Validate checks the descriptor for internal consistency.
func (desc *Descriptor) Validate() (err error) {
	defer func() {
		if err != nil {
			err = &ErrDescriptor{Type: desc.Type, Err: err}
		}
	}()

	seen := map[uint8]bool{}
	for _, page := range desc.ReadOnlyNvmPages {
		if page >= PAGE_COUNT {
			return ErrPage
		}
		if seen[page] {
			return ErrPageDuplicate
		}
		seen[page] = true
	}

	// Page select and space select occupy the low five bits.
	if desc.EraseByteMask&0b0001_1111 != 0 {
		return ErrEraseMask
	}

	if r, ok := reg.RegisterAt(desc.EraseByteAddr); !ok || r != reg.REG_E3 {
		return ErrEraseByte
	}

	return nil
}

// Writable returns true if the user may erase and write the page.
func (desc *Descriptor) Writable(space Space, page uint8) bool {
	if !space.Paged() || page >= PAGE_COUNT {
		return false
	}
	if space == NVM && slices.Contains(desc.ReadOnlyNvmPages, page) {
		return false
	}
	return true
}

// LoadDefaultConfig reads the factory configuration image of the part
// from fsys.
func (desc *Descriptor) LoadDefaultConfig(fsys fs.FS) (config reg.Registers, err error) {
	inf, err := fsys.Open(desc.DefaultConfigFile)
	if err != nil {
		err = &ErrDescriptor{Type: desc.Type, Err: err}
		return
	}
	defer inf.Close()

	config, err = image.ReadHex(inf)
	if err != nil {
		err = &ErrDescriptor{Type: desc.Type, Err: err}
	}
	return
}
