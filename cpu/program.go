package cpu

import (
	"iter"
)

// Opcode represents a line of assembled code with its source location and generated bytes.
type Opcode struct {
	LineNo    int
	Addr      int
	Words     []string
	Bytes     []byte
	LinkLabel string // Label to link into the trailing 16-bit operand.
}

// Program is an assembled program.
type Program struct {
	Opcodes []Opcode
}

type Debug struct {
	*Opcode
	Index int
}

// Debug finds the opcode that generated the byte at addr.
func (prog *Program) Debug(addr uint16) (dbg Debug) {
	for n, op := range prog.Opcodes {
		if int(addr) >= op.Addr && int(addr) < op.Addr+len(op.Bytes) {
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
				Index:  int(addr) - op.Addr,
			}
			break
		}
	}

	return
}

// Size returns the length of the flat image, from address 0 to the last generated byte.
func (prog *Program) Size() (size int) {
	for _, op := range prog.Opcodes {
		size = max(size, op.Addr+len(op.Bytes))
	}
	return
}

// Binary returns the flat memory image of the program. Gaps are zero filled.
func (prog *Program) Binary() (bin []byte) {
	bin = make([]byte, prog.Size())
	for addr, data := range prog.Bytes() {
		bin[addr] = data
	}

	return
}

// Bytes iterates over every generated byte, with its address.
func (prog *Program) Bytes() iter.Seq2[uint16, byte] {
	return func(yield func(addr uint16, data byte) bool) {
		for _, op := range prog.Opcodes {
			for n, data := range op.Bytes {
				if !yield(uint16(op.Addr+n), data) {
					return
				}
			}
		}
	}
}
