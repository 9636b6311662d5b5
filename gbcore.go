// Package gbcore composes the cpu and mem packages into a minimal
// Game Boy (LR35902) core: power-up, cartridge mounting, and single-step
// execution. Rendering, audio, input, and save persistence are external
// collaborators this package does not implement.
package gbcore

import (
	"gbcore/cpu"
	"gbcore/mem"

	"github.com/pkg/errors"
)

// Console wraps a CPU and the cartridge it has mounted, if any. The CPU
// owns its memory directly; Console does not keep a second reference to
// it, so there is exactly one owner of the 64 KiB address space.
type Console struct {
	CPU       *cpu.CPU
	Cartridge *mem.Cartridge
}

// New returns a Console with a freshly constructed CPU.
func New() *Console {
	return &Console{CPU: cpu.New()}
}

// PowerUp seeds the CPU's registers and I/O memory with their documented
// post-boot-ROM values.
func (g *Console) PowerUp() error {
	return g.CPU.PowerUp()
}

// LoadProgram copies program into CPU memory starting at addr, bypassing
// cartridge mounting. Useful for tests and the debugger.
func (g *Console) LoadProgram(program []byte, addr uint16) {
	g.CPU.LoadProgram(program, addr)
}

// Mount loads the cartridge at path and copies its ROM banks into CPU
// memory through a throwaway Bus, modelling "the cartridge is a readable
// device mounted on the bus" without taking memory ownership away from
// the CPU.
func (g *Console) Mount(path string) error {
	cart, err := mem.LoadCartridge(path)
	if err != nil {
		return errors.Wrap(err, "gbcore: mount cartridge")
	}

	bus := mem.NewBus()
	bus.ConnectReadable(cart)

	for addr := uint16(mem.CartridgeStart); addr <= mem.CartridgeEnd; addr++ {
		b, err := bus.Read(addr)
		if err != nil {
			break
		}
		g.CPU.Memory.Write(addr, b)
	}

	g.Cartridge = cart
	return nil
}

// Step executes a single instruction, returning false once the CPU
// reaches the end-of-program sentinel or has been stopped.
func (g *Console) Step() (bool, error) {
	return g.CPU.Tick()
}

// Run steps until execution ends or an error occurs.
func (g *Console) Run() error {
	return g.CPU.Run()
}
