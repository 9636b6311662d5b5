package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetSet16RoundTrip(t *testing.T) {
	var r Registers
	r.Set16(HL, 0x8811)
	assert.Equal(t, uint16(0x8811), r.Get16(HL))
	assert.Equal(t, byte(0x88), r.H)
	assert.Equal(t, byte(0x11), r.L)
}

func TestSet8FMasksLowNibble(t *testing.T) {
	var r Registers
	r.Set8(F, 0xFF)
	assert.Equal(t, byte(0xF0), r.F)
}

func TestSet16AFMasksLowNibble(t *testing.T) {
	var r Registers
	r.Set16(AF, 0x01FF)
	assert.Equal(t, byte(0xF0), r.F)
}

func TestFlagRoundTrip(t *testing.T) {
	var r Registers
	r.SetFlag(ZeroFlag, true)
	assert.True(t, r.GetFlag(ZeroFlag))
	assert.False(t, r.GetFlag(NotZero))
	r.SetFlag(ZeroFlag, false)
	assert.False(t, r.GetFlag(ZeroFlag))
	assert.True(t, r.GetFlag(NotZero))
}

func TestSetFlagRejectsNegatedVariant(t *testing.T) {
	var r Registers
	assert.Panics(t, func() { r.SetFlag(NotZero, true) })
}

func TestBitRoundTrip(t *testing.T) {
	var r Registers
	r.SetBit(A, 3, true)
	assert.True(t, r.Bit(A, 3))
	assert.Equal(t, byte(0b0000_1000), r.A)
	r.SetBit(A, 3, false)
	assert.False(t, r.Bit(A, 3))
}
