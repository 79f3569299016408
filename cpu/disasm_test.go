package cpu

import (
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisassemble(t *testing.T) {
	assert := assert.New(t)

	text, length := Disassemble(0, []byte{0x3e, 0x42})
	assert.Equal("MVI A,0x42", text)
	assert.Equal(2, length)

	text, length = Disassemble(0x100, []byte{0xcd, 0x00, 0x02, 0xff})
	assert.Equal("CALL 0x0200", text)
	assert.Equal(3, length)

	// Missing operand bytes read as zero.
	text, length = Disassemble(0, []byte{0x21, 0x34})
	assert.Equal("LXI H,0x0034", text)
	assert.Equal(3, length)

	text, length = Disassemble(0, []byte{0xdd})
	assert.Equal("-", text)
	assert.Equal(1, length)
}

func TestDisassembleShape(t *testing.T) {
	assert := assert.New(t)

	for n := range 256 {
		_, length := Disassemble(0, []byte{byte(n)})
		assert.Equal(Lookup(byte(n)).Shape.Bytes(), length, "0x%02x", n)
	}
}

func TestListing(t *testing.T) {
	assert := assert.New(t)

	data := []byte{
		// LXI SP,0x1000
		0x31, 0x00, 0x10,
		// MVI A,0x01
		0x3e, 0x01,
		// ADD A
		0x87,
		// JMP 0x0103
		0xc3, 0x03, 0x01,
	}

	listing := maps.Collect(Listing(0x100, data))
	assert.Equal(map[uint16]string{
		0x100: "LXI SP,0x1000",
		0x103: "MVI A,0x01",
		0x105: "ADD A",
		0x106: "JMP 0x0103",
	}, listing)

	// Stops early when asked.
	var addrs []uint16
	for addr := range Listing(0x100, data) {
		addrs = append(addrs, addr)
		if len(addrs) == 2 {
			break
		}
	}
	assert.Equal([]uint16{0x100, 0x103}, addrs)

	assert.Empty(maps.Collect(Listing(0, nil)))
}
