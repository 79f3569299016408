package cpu

import (
	"iter"
)

// Disassemble decodes the instruction at the start of data, which is located at addr.
// Operand bytes past the end of data read as zero.
func Disassemble(addr uint16, data []byte) (text string, length int) {
	code := decode(func(at uint16) byte {
		offset := int(at - addr)
		if offset >= len(data) {
			return 0
		}
		return data[offset]
	}, addr)

	text = code.String()
	length = code.Shape.Bytes()

	return
}

// Listing returns an iterator over the instructions in data, located at addr.
func Listing(addr uint16, data []byte) iter.Seq2[uint16, string] {
	return func(yield func(uint16, string) bool) {
		for offset := 0; offset < len(data); {
			text, length := Disassemble(addr+uint16(offset), data[offset:])
			if !yield(addr+uint16(offset), text) {
				return
			}
			offset += length
		}
	}
}
