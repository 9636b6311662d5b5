package bits

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBit(t *testing.T) {
	assert.True(t, Bit(0b1000_0001, 0))
	assert.True(t, Bit(0b1000_0001, 7))
	assert.False(t, Bit(0b1000_0001, 3))
}

func TestSetBit(t *testing.T) {
	assert.Equal(t, byte(0b0000_0001), SetBit(0, 0, true))
	assert.Equal(t, byte(0b1000_0000), SetBit(0, 7, true))
	assert.Equal(t, byte(0), SetBit(0b0000_0001, 0, false))
}

func TestHiLo(t *testing.T) {
	assert.Equal(t, byte(0x12), Hi(0x1234))
	assert.Equal(t, byte(0x34), Lo(0x1234))
}

func TestWord(t *testing.T) {
	assert.Equal(t, uint16(0x1234), Word(0x12, 0x34))
}

func TestFormatHex(t *testing.T) {
	assert.Equal(t, "0x0A", FormatHex(0x0A))
	assert.Equal(t, "0x00FF", FormatWordHex(0x00FF))
}

func TestFormatBinary(t *testing.T) {
	assert.Equal(t, "0b00000001", FormatBinary(1))
	assert.Equal(t, "0b0000000000000001", FormatWordBinary(1))
}
