package mem

import (
	"os"
	"strings"

	"github.com/pkg/errors"
)

// CartridgeStart and CartridgeEnd bound the two ROM banks a Cartridge
// covers (bank 0 + the currently switched-in bank).
const (
	CartridgeStart = 0x0000
	CartridgeEnd   = 0x7FFF
)

// Cartridge is a read-only Addressable device backed by a ROM image loaded
// from disk.
type Cartridge struct {
	path string
	data []byte
}

// LoadCartridge reads the ROM image at path and returns a Cartridge. Only
// the ".gbc" suffix is recognized; a path with no suffix or any other
// suffix, or a file that cannot be read, returns an error. These errors
// have no dedicated type of their own.
func LoadCartridge(path string) (*Cartridge, error) {
	i := strings.LastIndex(path, ".")
	if i < 0 {
		return nil, errors.Errorf("mem: cartridge path %q has no suffix", path)
	}

	suffix := path[i+1:]
	if suffix != "gbc" {
		return nil, errors.Errorf("mem: cartridge not found: unrecognized suffix %q", suffix)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "mem: cartridge not found: %q", path)
	}
	return &Cartridge{path: path, data: data}, nil
}

// Path returns the filesystem path the cartridge was loaded from.
func (c *Cartridge) Path() string {
	return c.path
}

// Size returns the number of bytes the cartridge image holds.
func (c *Cartridge) Size() int {
	return len(c.data)
}

func (c *Cartridge) InRange(addr uint16) bool {
	return addr >= CartridgeStart && addr <= CartridgeEnd
}

func (c *Cartridge) Read(addr uint16) (byte, error) {
	if int(addr) >= len(c.data) {
		return 0, errors.Errorf("mem: cartridge read out of range at %#04x (size %#x)", addr, len(c.data))
	}
	return c.data[addr], nil
}
