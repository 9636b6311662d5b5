// Package mem implements the CPU core's flat 64 KiB address space, the
// bus/device dispatch family used to mount external devices onto it, and
// the cartridge loader.
package mem

import "gbcore/bits"

// Size is the width of the LR35902 address bus.
const Size = 0x10000

// WRAM and its echo mirror. Writes to either range are reflected in the
// other; reads are independent (each range keeps its own copy in the flat
// array, kept in sync on write).
const (
	wramStart  = 0xC000
	wramEnd    = 0xDDFF
	echoOffset = 0x2000
	echoStart  = wramStart + echoOffset
	echoEnd    = wramEnd + echoOffset
)

// SentinelByte fills every memory cell at construction time and also
// terminates the CPU's fetch loop when encountered at the program counter.
// On real hardware it is an undefined opcode; this core repurposes it as an
// explicit "no more program" marker.
const SentinelByte byte = 0xFD

// bootSplash is the 48-byte Nintendo logo fingerprint every cartridge's
// header must reproduce for the real boot ROM to continue. It has no
// effect on CPU execution; it is seeded purely for parity with the
// original memory image.
var bootSplash = [48]byte{
	0xCE, 0xED, 0x66, 0x66, 0xCC, 0x0D, 0x00, 0x0B, 0x03, 0x73, 0x00, 0x83, 0x00, 0x0C, 0x00, 0x0D,
	0x00, 0x08, 0x11, 0x1F, 0x88, 0x89, 0x00, 0x0E, 0xDC, 0xCC, 0x6E, 0xE6, 0xDD, 0xDD, 0xD9, 0x99,
	0xBB, 0xBB, 0x67, 0x63, 0x6E, 0x0E, 0xEC, 0xCC, 0xDD, 0xDC, 0x99, 0x9F, 0xBB, 0xB9, 0x33, 0x3E,
}

const bootSplashOffset = 0x0068

// Memory is the flat, byte-addressable 64 KiB address space. It has no
// notion of devices or ranges beyond the WRAM/echo mirror; heterogeneous
// device dispatch is the Bus's job.
type Memory struct {
	data [Size]byte
}

// New returns a Memory pre-filled with SentinelByte and the boot splash
// bytes overlaid at 0x0068, matching the image a real cartridge's boot
// header would present.
func New() *Memory {
	m := &Memory{}
	for i := range m.data {
		m.data[i] = SentinelByte
	}
	copy(m.data[bootSplashOffset:], bootSplash[:])
	return m
}

// Read returns the byte at addr.
func (m *Memory) Read(addr uint16) byte {
	return m.data[addr]
}

// Write stores v at addr, propagating the write across the WRAM/echo
// mirror in either direction.
func (m *Memory) Write(addr uint16, v byte) {
	m.data[addr] = v
	switch {
	case addr >= wramStart && addr <= wramEnd:
		m.data[addr+echoOffset] = v
	case addr >= echoStart && addr <= echoEnd:
		m.data[addr-echoOffset] = v
	}
}

// Read16 returns the little-endian word at addr.
func (m *Memory) Read16(addr uint16) uint16 {
	return bits.Word(m.Read(addr+1), m.Read(addr))
}

// Write16 stores the little-endian word w starting at addr.
func (m *Memory) Write16(addr uint16, w uint16) {
	m.Write(addr, bits.Lo(w))
	m.Write(addr+1, bits.Hi(w))
}
