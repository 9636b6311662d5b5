package gbcore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPowerUpThenStep(t *testing.T) {
	g := New()
	assert.NoError(t, g.PowerUp())
	g.LoadProgram([]byte{0x3E, 0x42, 0xFD}, g.CPU.Registers.PC)

	cont, err := g.Step()
	assert.NoError(t, err)
	assert.True(t, cont)
	assert.Equal(t, byte(0x42), g.CPU.Registers.A)

	cont, err = g.Step()
	assert.NoError(t, err)
	assert.False(t, cont)
}

func TestMountCopiesCartridgeIntoMemory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.gbc")
	rom := []byte{0x00, 0xC3, 0x50, 0x01}
	assert.NoError(t, os.WriteFile(path, rom, 0o644))

	g := New()
	assert.NoError(t, g.Mount(path))

	for addr, b := range rom {
		assert.Equal(t, b, g.CPU.Memory.Read(uint16(addr)))
	}
	assert.Equal(t, path, g.Cartridge.Path())
}

func TestMountRejectsUnknownSuffix(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.bin")
	assert.NoError(t, os.WriteFile(path, []byte{0x00}, 0o644))

	g := New()
	assert.Error(t, g.Mount(path))
}
