package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFillsSentinel(t *testing.T) {
	m := New()
	assert.Equal(t, SentinelByte, m.Read(0x0000))
	assert.Equal(t, SentinelByte, m.Read(0xFFFF))
}

func TestNewSeedsBootSplash(t *testing.T) {
	m := New()
	assert.Equal(t, bootSplash[0], m.Read(bootSplashOffset))
	assert.Equal(t, bootSplash[len(bootSplash)-1], m.Read(bootSplashOffset+uint16(len(bootSplash))-1))
}

func TestEchoMirrorsWramWrite(t *testing.T) {
	m := New()
	m.Write(0xC040, 0x7A)
	assert.Equal(t, byte(0x7A), m.Read(0xE040))
}

func TestEchoMirrorsEchoWrite(t *testing.T) {
	m := New()
	m.Write(0xE050, 0x10)
	assert.Equal(t, byte(0x10), m.Read(0xC050))
}

func TestEchoMirrorFullRange(t *testing.T) {
	m := New()
	for addr := uint16(wramStart); addr <= wramEnd; addr++ {
		m.Write(addr, byte(addr))
		assert.Equal(t, m.Read(addr), m.Read(addr+echoOffset))
	}
}

func TestReadWrite16LittleEndian(t *testing.T) {
	m := New()
	m.Write16(0xC100, 0xBEEF)
	assert.Equal(t, byte(0xEF), m.Read(0xC100))
	assert.Equal(t, byte(0xBE), m.Read(0xC101))
	assert.Equal(t, uint16(0xBEEF), m.Read16(0xC100))
}
