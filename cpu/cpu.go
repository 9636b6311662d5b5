// Package cpu implements the LR35902 register file, its two 256-entry
// decode tables, and the fetch-decode-execute interpreter loop.
package cpu

import (
	"gbcore/mem"

	"github.com/pkg/errors"
)

// CPU is the interpreter: a register file, its privately owned memory, and
// the small amount of latch state (CB prefix, interrupt-enable, stopped)
// the instruction set requires between ticks.
type CPU struct {
	Registers Registers
	Memory    *mem.Memory

	// LastCycles is the cycle cost of the most recently executed
	// instruction: Cycles if the instruction ran unconditionally or its
	// condition held, OptionalCycles otherwise.
	LastCycles byte

	prefixed          bool
	interruptsEnabled bool
	stopped           bool

	curPC        uint16 // PC at the start of the in-progress tick
	pcOverridden bool   // set by a control transfer that wrote PC itself
	branchTaken  bool   // set by conditional control transfers
}

// New returns a CPU with a freshly constructed Memory and a zeroed
// register file. Call PowerUp to seed the post-boot-ROM register and I/O
// state documented for real hardware.
func New() *CPU {
	return &CPU{Memory: mem.New()}
}

// InterruptsEnabled reports the state of the IME latch set by DI/EI/RETI.
func (c *CPU) InterruptsEnabled() bool {
	return c.interruptsEnabled
}

// Stopped reports whether STOP has halted the fetch loop.
func (c *CPU) Stopped() bool {
	return c.stopped
}

// LoadProgram copies program into memory starting at addr.
func (c *CPU) LoadProgram(program []byte, addr uint16) {
	for i, b := range program {
		c.Memory.Write(addr+uint16(i), b)
	}
}

// powerUpSeed is the documented post-boot-ROM contents of the I/O
// register block and interrupt state, applied by PowerUp in addition to
// the register pair seeds.
var powerUpSeed = map[uint16]byte{
	0xFF05: 0x00, 0xFF06: 0x00, 0xFF07: 0x00,
	0xFF10: 0x80, 0xFF11: 0xBF, 0xFF12: 0xF3,
	0xFF14: 0xBF,
	0xFF16: 0x3F, 0xFF17: 0x00,
	0xFF19: 0xBF, 0xFF1A: 0x7F, 0xFF1B: 0xFF, 0xFF1C: 0x9F,
	0xFF1E: 0xBF,
	0xFF20: 0xFF, 0xFF21: 0x00, 0xFF22: 0x00, 0xFF23: 0xBF,
	0xFF24: 0x77, 0xFF25: 0xF3, 0xFF26: 0xF1,
	0xFF40: 0x91, 0xFF42: 0x00, 0xFF43: 0x00, 0xFF45: 0x00,
	0xFF47: 0xFC, 0xFF48: 0xFF, 0xFF49: 0xFF,
	0xFF4A: 0x00, 0xFF4B: 0x00,
	0xFFFF: 0x00,
}

// PowerUp seeds the register file and the documented I/O registers with
// their values immediately after the real boot ROM hands control to
// cartridge code.
func (c *CPU) PowerUp() error {
	c.Registers.A = 0x01
	c.Registers.Set16(BC, 0x0013)
	c.Registers.Set16(DE, 0x00D8)
	c.Registers.Set16(HL, 0x014D)
	c.Registers.SP = 0xFFFE
	c.Registers.PC = 0x0100

	for addr, v := range powerUpSeed {
		c.Memory.Write(addr, v)
	}
	return nil
}

// Tick executes one instruction: it fetches the byte at PC, returns
// (false, nil) without executing anything if that byte is the
// end-of-program sentinel or the CPU is stopped, returns an error for an
// undefined opcode, and otherwise decodes, executes, and advances PC (or
// leaves it as set by a control transfer), returning (true, nil).
func (c *CPU) Tick() (bool, error) {
	if c.stopped {
		return false, nil
	}

	b := c.Memory.Read(c.Registers.PC)
	if b == mem.SentinelByte {
		return false, nil
	}

	var inst *Instruction
	wasPrefixed := c.prefixed
	if c.prefixed {
		inst = Prefixed[b]
		c.prefixed = false
	} else {
		inst = Unprefixed[b]
	}
	if inst == nil {
		return false, errors.Errorf("cpu: unknown opcode %#02x at pc %#04x", b, c.Registers.PC)
	}

	c.curPC = c.Registers.PC
	c.pcOverridden = false
	c.branchTaken = true

	execute(c, inst.OpCode)

	if inst.OpCode.Mnemonic == CB {
		c.prefixed = true
	}

	if c.branchTaken {
		c.LastCycles = inst.Cycles
	} else {
		c.LastCycles = inst.OptionalCycles
	}

	if !c.pcOverridden {
		advance := uint16(inst.Length)
		if wasPrefixed {
			// Prefixed lengths count the CB byte, which the previous
			// tick already stepped over.
			advance--
		}
		c.Registers.PC = c.curPC + advance
	}

	return true, nil
}

// Run ticks until the sentinel is reached, the CPU stops, or an error
// occurs.
func (c *CPU) Run() error {
	for {
		cont, err := c.Tick()
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
}

// d8 reads the immediate byte following the current instruction's opcode.
func (c *CPU) d8() byte {
	return c.Memory.Read(c.curPC + 1)
}

// r8 reads the immediate byte following the opcode as a signed offset.
func (c *CPU) r8() int8 {
	return int8(c.Memory.Read(c.curPC + 1))
}

// a8 reads the immediate byte following the opcode and resolves it to a
// high-RAM address.
func (c *CPU) a8() uint16 {
	return 0xFF00 + uint16(c.Memory.Read(c.curPC+1))
}

// d16 reads the immediate word following the opcode.
func (c *CPU) d16() uint16 {
	return c.Memory.Read16(c.curPC + 1)
}

// a16 reads the immediate word following the opcode as an absolute
// address.
func (c *CPU) a16() uint16 {
	return c.Memory.Read16(c.curPC + 1)
}

// get8 resolves an 8-bit operand, handling the memory-indirect and
// immediate addressing modes before falling back to a plain register.
func (c *CPU) get8(t Target) byte {
	switch t {
	case HL:
		return c.Memory.Read(c.Registers.Get16(HL))
	case HLP:
		addr := c.Registers.Get16(HL)
		v := c.Memory.Read(addr)
		c.Registers.Set16(HL, addr+1)
		return v
	case HLM:
		addr := c.Registers.Get16(HL)
		v := c.Memory.Read(addr)
		c.Registers.Set16(HL, addr-1)
		return v
	case BC:
		return c.Memory.Read(c.Registers.Get16(BC))
	case DE:
		return c.Memory.Read(c.Registers.Get16(DE))
	case D8:
		return c.d8()
	case A8:
		return c.Memory.Read(c.a8())
	case A16:
		return c.Memory.Read(c.a16())
	default:
		return c.Registers.Get8(t)
	}
}

// set8 resolves an 8-bit destination operand the same way get8 resolves a
// source.
func (c *CPU) set8(t Target, v byte) {
	switch t {
	case HL:
		c.Memory.Write(c.Registers.Get16(HL), v)
	case HLP:
		addr := c.Registers.Get16(HL)
		c.Memory.Write(addr, v)
		c.Registers.Set16(HL, addr+1)
	case HLM:
		addr := c.Registers.Get16(HL)
		c.Memory.Write(addr, v)
		c.Registers.Set16(HL, addr-1)
	case BC:
		c.Memory.Write(c.Registers.Get16(BC), v)
	case DE:
		c.Memory.Write(c.Registers.Get16(DE), v)
	case A8:
		c.Memory.Write(c.a8(), v)
	case A16:
		c.Memory.Write(c.a16(), v)
	default:
		c.Registers.Set8(t, v)
	}
}

// push decrements SP by 2 and writes v little-endian at the new SP, so SP
// ends up pointing at the low byte of v.
func (c *CPU) push(v uint16) {
	c.Registers.SP -= 2
	c.Memory.Write16(c.Registers.SP, v)
}

// pop reads the little-endian word at SP and increments SP by 2.
func (c *CPU) pop() uint16 {
	v := c.Memory.Read16(c.Registers.SP)
	c.Registers.SP += 2
	return v
}

// branch evaluates a control transfer's condition, recording whether it
// was taken for Tick's cycle accounting, and returns whether the transfer
// should happen.
func (c *CPU) branch(op OpCode) bool {
	if !op.Conditional {
		c.branchTaken = true
		return true
	}
	taken := c.Registers.GetFlag(op.Condition)
	c.branchTaken = taken
	return taken
}
