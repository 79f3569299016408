// Package io provides memory images and I/O port devices for the 8080 emulator.
package io

// Port is an I/O port device, serviced by the IN and OUT instructions.
type Port interface {
	// In returns the value read from a port.
	In(port byte) byte
	// Out writes a value to a port.
	Out(port byte, value byte)
}

// Latch is a bank of 256 port latches. IN reads back the last OUT value.
type Latch [256]byte

var _ Port = (*Latch)(nil)

func (lc *Latch) In(port byte) byte {
	return lc[port]
}

func (lc *Latch) Out(port byte, value byte) {
	lc[port] = value
}
