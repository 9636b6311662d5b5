package mem

import "github.com/pkg/errors"

// Addressable is a device that owns a contiguous range of the 16-bit
// address space.
type Addressable interface {
	InRange(addr uint16) bool
}

// Readable is an Addressable device that can be read.
type Readable interface {
	Addressable
	Read(addr uint16) (byte, error)
}

// Writable is an Addressable device that can be written.
type Writable interface {
	Addressable
	Write(addr uint16, v byte) error
}

// Bus is the central object that connects independent devices (cartridge,
// RAM windows, I/O registers) together. It holds no memory of its own; it
// dispatches each read or write to the first connected device whose range
// contains the address, in connection order. The bus never holds a
// reference back to a device's owner, so there is no reference cycle to
// break and no locking is required for the single-threaded execution model
// this core assumes.
type Bus struct {
	readers []Readable
	writers []Writable
}

// NewBus returns an empty Bus.
func NewBus() *Bus {
	return &Bus{}
}

// ConnectReadable registers r to serve reads within its range.
func (b *Bus) ConnectReadable(r Readable) {
	b.readers = append(b.readers, r)
}

// ConnectWritable registers w to serve writes within its range.
func (b *Bus) ConnectWritable(w Writable) {
	b.writers = append(b.writers, w)
}

// Read dispatches addr to the first connected Readable whose range
// contains it, or returns an error naming the address if none does. The
// error has no dedicated type of its own.
func (b *Bus) Read(addr uint16) (byte, error) {
	for _, r := range b.readers {
		if r.InRange(addr) {
			return r.Read(addr)
		}
	}
	return 0, errors.Errorf("mem: no readable device covers address %#04x", addr)
}

// Write dispatches the write to addr to the first connected Writable whose
// range contains it, or returns an error naming the address if none does.
// The error has no dedicated type of its own.
func (b *Bus) Write(addr uint16, v byte) error {
	for _, w := range b.writers {
		if w.InRange(addr) {
			return w.Write(addr, v)
		}
	}
	return errors.Errorf("mem: no writable device covers address %#04x", addr)
}

// Window is a Readable/Writable device backed by a plain byte slice,
// covering [start, start+len(data)). It exists to exercise the bus's
// range-dispatch and first-match-wins ordering independently of the
// cartridge device.
type Window struct {
	start uint16
	data  []byte
}

// NewWindow returns a Window covering [start, start+len(data)).
func NewWindow(start uint16, data []byte) *Window {
	return &Window{start: start, data: data}
}

func (w *Window) InRange(addr uint16) bool {
	return addr >= w.start && int(addr)-int(w.start) < len(w.data)
}

func (w *Window) Read(addr uint16) (byte, error) {
	return w.data[addr-w.start], nil
}

func (w *Window) Write(addr uint16, v byte) error {
	w.data[addr-w.start] = v
	return nil
}
