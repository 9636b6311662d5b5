package cpu

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// parseHexProgram turns a whitespace-separated hex byte string, e.g.
// "3E 64 FD", into a byte slice. It's a test-only convenience; production
// callers hand LoadProgram a real []byte.
func parseHexProgram(t *testing.T, s string) []byte {
	t.Helper()
	fields := strings.Fields(s)
	program := make([]byte, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseUint(f, 16, 8)
		assert.NoError(t, err)
		program[i] = byte(v)
	}
	return program
}

func newCPU(t *testing.T, program string, addr uint16) *CPU {
	t.Helper()
	c := New()
	c.LoadProgram(parseHexProgram(t, program), addr)
	c.Registers.PC = addr
	return c
}

func TestImmediateLoad(t *testing.T) {
	c := newCPU(t, "3E 64 FD", 0x100) // LD A,0x64
	cont, err := c.Tick()
	assert.NoError(t, err)
	assert.True(t, cont)
	assert.Equal(t, byte(0x64), c.Registers.A)
	assert.Equal(t, uint16(0x102), c.Registers.PC)
}

func TestSentinelStopsExecution(t *testing.T) {
	c := newCPU(t, "FD", 0x100)
	cont, err := c.Tick()
	assert.NoError(t, err)
	assert.False(t, cont)
}

func TestUnknownOpcodeErrors(t *testing.T) {
	c := newCPU(t, "D3", 0x100)
	_, err := c.Tick()
	assert.Error(t, err)
}

func TestAddSetsHalfCarryWithoutCarry(t *testing.T) {
	c := newCPU(t, "80 FD", 0x100) // ADD A,B
	c.Registers.A = 0x0F
	c.Registers.B = 0x01
	_, err := c.Tick()
	assert.NoError(t, err)
	assert.Equal(t, byte(0x10), c.Registers.A)
	assert.True(t, c.Registers.GetFlag(HalfCarryFlag))
	assert.False(t, c.Registers.GetFlag(CarryFlag))
	assert.False(t, c.Registers.GetFlag(ZeroFlag))
	assert.False(t, c.Registers.GetFlag(SubFlag))
}

func TestAddOverflowSetsCarryAndZero(t *testing.T) {
	c := newCPU(t, "80 FD", 0x100)
	c.Registers.A = 0xFF
	c.Registers.B = 0x01
	_, err := c.Tick()
	assert.NoError(t, err)
	assert.Equal(t, byte(0x00), c.Registers.A)
	assert.True(t, c.Registers.GetFlag(ZeroFlag))
	assert.True(t, c.Registers.GetFlag(CarryFlag))
}

func TestIncDoesNotAffectCarry(t *testing.T) {
	c := newCPU(t, "04 FD", 0x100) // INC B
	c.Registers.B = 0xFF
	c.Registers.SetFlag(CarryFlag, true)
	_, err := c.Tick()
	assert.NoError(t, err)
	assert.Equal(t, byte(0x00), c.Registers.B)
	assert.True(t, c.Registers.GetFlag(ZeroFlag))
	assert.True(t, c.Registers.GetFlag(HalfCarryFlag))
	assert.True(t, c.Registers.GetFlag(CarryFlag)) // unaffected, stays set
}

func TestDecSetsSub(t *testing.T) {
	c := newCPU(t, "05 FD", 0x100) // DEC B
	c.Registers.B = 0x01
	_, err := c.Tick()
	assert.NoError(t, err)
	assert.Equal(t, byte(0x00), c.Registers.B)
	assert.True(t, c.Registers.GetFlag(ZeroFlag))
	assert.True(t, c.Registers.GetFlag(SubFlag))
}

func TestConditionalJumpTaken(t *testing.T) {
	c := newCPU(t, "20 05 FD", 0x100) // JR NZ,+5
	c.Registers.SetFlag(ZeroFlag, false)
	_, err := c.Tick()
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x107), c.Registers.PC) // 0x100 + 2 + 5
	assert.Equal(t, byte(12), c.LastCycles)
}

func TestConditionalJumpNotTaken(t *testing.T) {
	c := newCPU(t, "20 05 FD", 0x100)
	c.Registers.SetFlag(ZeroFlag, true)
	_, err := c.Tick()
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x102), c.Registers.PC)
	assert.Equal(t, byte(8), c.LastCycles)
}

func TestPushStackDiscipline(t *testing.T) {
	c := newCPU(t, "C5 FD", 0x100) // PUSH BC
	c.Registers.SP = 0xFFFE
	c.Registers.Set16(BC, 0x8811)
	_, err := c.Tick()
	assert.NoError(t, err)
	assert.Equal(t, uint16(0xFFFC), c.Registers.SP)
	assert.Equal(t, byte(0x11), c.Memory.Read(0xFFFC))
	assert.Equal(t, byte(0x88), c.Memory.Read(0xFFFD))
}

func TestCallPushesReturnAddressAndJumps(t *testing.T) {
	c := newCPU(t, "CD 00 02 FD", 0x100) // CALL 0x0200
	c.Registers.SP = 0xFFFE
	_, err := c.Tick()
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x0200), c.Registers.PC)
	assert.Equal(t, uint16(0xFFFC), c.Registers.SP)
	assert.Equal(t, uint16(0x0103), c.Memory.Read16(0xFFFC))
}

func TestRetReturnsToCaller(t *testing.T) {
	c := New()
	c.Registers.SP = 0xFFFC
	c.Memory.Write16(0xFFFC, 0x0150)
	c.LoadProgram(parseHexProgram(t, "C9 FD"), 0x0200)
	c.Registers.PC = 0x0200
	_, err := c.Tick()
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x0150), c.Registers.PC)
	assert.Equal(t, uint16(0xFFFE), c.Registers.SP)
}

func TestBitTestsWithoutMutatingOperand(t *testing.T) {
	c := newCPU(t, "CB 7F FD", 0x100) // BIT 7,A
	c.Registers.A = 0x00
	_, err := c.Tick() // consume CB, latch prefixed
	assert.NoError(t, err)
	_, err = c.Tick() // decode 0x7F from Prefixed
	assert.NoError(t, err)
	assert.True(t, c.Registers.GetFlag(ZeroFlag))
	assert.True(t, c.Registers.GetFlag(HalfCarryFlag))
	assert.False(t, c.Registers.GetFlag(SubFlag))
	assert.Equal(t, byte(0x00), c.Registers.A)
}

func TestSwapNibbles(t *testing.T) {
	c := newCPU(t, "CB 37 FD", 0x100) // SWAP A
	c.Registers.A = 0xA5
	_, err := c.Tick()
	assert.NoError(t, err)
	_, err = c.Tick()
	assert.NoError(t, err)
	assert.Equal(t, byte(0x5A), c.Registers.A)
	assert.False(t, c.Registers.GetFlag(CarryFlag))
}

func TestAddHLPreservesZero(t *testing.T) {
	c := newCPU(t, "09 FD", 0x100) // ADD HL,BC
	c.Registers.Set16(HL, 0x0FFF)
	c.Registers.Set16(BC, 0x0001)
	c.Registers.SetFlag(ZeroFlag, true)
	_, err := c.Tick()
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x1000), c.Registers.Get16(HL))
	assert.True(t, c.Registers.GetFlag(HalfCarryFlag))
	assert.False(t, c.Registers.GetFlag(CarryFlag))
	assert.True(t, c.Registers.GetFlag(ZeroFlag)) // left untouched
}

func TestDaaAfterDecimalAdd(t *testing.T) {
	c := newCPU(t, "80 27 FD", 0x100) // ADD A,B ; DAA
	c.Registers.A = 0x45
	c.Registers.B = 0x38 // 45 + 38 = 83 in BCD
	_, err := c.Tick()
	assert.NoError(t, err)
	_, err = c.Tick()
	assert.NoError(t, err)
	assert.Equal(t, byte(0x83), c.Registers.A)
	assert.False(t, c.Registers.GetFlag(CarryFlag))
}

func TestPowerUpSeedsDocumentedState(t *testing.T) {
	c := New()
	assert.NoError(t, c.PowerUp())
	assert.Equal(t, uint16(0x0013), c.Registers.Get16(BC))
	assert.Equal(t, uint16(0x00D8), c.Registers.Get16(DE))
	assert.Equal(t, uint16(0x014D), c.Registers.Get16(HL))
	assert.Equal(t, uint16(0xFFFE), c.Registers.SP)
	assert.Equal(t, uint16(0x0100), c.Registers.PC)
	assert.Equal(t, byte(0x91), c.Memory.Read(0xFF40))
}

func TestStopHaltsFutureTicks(t *testing.T) {
	c := newCPU(t, "10 00 3E 01 FD", 0x100) // STOP ; LD A,1
	_, err := c.Tick()
	assert.NoError(t, err)
	assert.True(t, c.Stopped())
	cont, err := c.Tick()
	assert.NoError(t, err)
	assert.False(t, cont)
	assert.Equal(t, byte(0x00), c.Registers.A)
}
