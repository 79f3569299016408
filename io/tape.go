package io

import (
	"fmt"
	"io"
	"iter"
	"maps"
)

// Tape provides sequential byte I/O on a single port.
// IN reads the next byte from Input, and OUT writes a byte to Output.
// Other ports are latches.
type Tape struct {
	Latch

	Port   byte
	Input  io.Reader
	Output io.Writer

	eof bool
	err error
}

var _ Port = (*Tape)(nil)

// Defines returns an iter of assembler defines for the tape.
func (tc *Tape) Defines() iter.Seq2[string, string] {
	return maps.All(map[string]string{
		"TAPE_PORT": fmt.Sprintf("%#x", tc.Port),
		"TAPE_EOF":  "0x0",
	})
}

// Eof returns true once the input stream has been exhausted.
func (tc *Tape) Eof() bool {
	return tc.eof
}

// Err returns the first error from writing Output, if any.
func (tc *Tape) Err() error {
	return tc.err
}

// In reads the next input byte. An exhausted or missing input reads as zero.
func (tc *Tape) In(port byte) byte {
	if port != tc.Port {
		return tc.Latch.In(port)
	}

	if tc.Input == nil || tc.eof {
		return 0
	}

	var one [1]byte
	_, err := io.ReadFull(tc.Input, one[:])
	if err != nil {
		tc.eof = true
		return 0
	}

	return one[0]
}

// Out writes a byte to the output stream.
func (tc *Tape) Out(port byte, value byte) {
	if port != tc.Port {
		tc.Latch.Out(port, value)
		return
	}

	if tc.Output == nil || tc.err != nil {
		return
	}

	_, tc.err = tc.Output.Write([]byte{value})
}
