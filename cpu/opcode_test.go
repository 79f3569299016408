package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpcodeTable(t *testing.T) {
	assert := assert.New(t)

	undefined := 0
	seen := map[string]byte{}
	for n := range 256 {
		defn := Lookup(byte(n))
		assert.Equal(byte(n), defn.Opcode)

		if defn.Op == OP_UNDEFINED {
			undefined++
			continue
		}

		// Every defined opcode has distinct assembly text.
		text := defn.String()
		prior, ok := seen[text]
		assert.False(ok, "0x%02x and 0x%02x are both %v", prior, n, text)
		seen[text] = byte(n)

		switch defn.Op {
		case OP_LXI, OP_SHLD, OP_LHLD, OP_STA, OP_LDA, OP_JMP, OP_JCOND, OP_CALL, OP_CCOND:
			assert.Equal(SHAPE_IMM16, defn.Shape, text)
		case OP_MVI, OP_ADI, OP_ACI, OP_SUI, OP_SBI, OP_ANI, OP_XRI, OP_ORI, OP_CPI, OP_IN, OP_OUT:
			assert.Equal(SHAPE_IMM8, defn.Shape, text)
		default:
			assert.Equal(SHAPE_IMPLIED, defn.Shape, text)
		}
	}

	assert.Equal(12, undefined)
}

func TestOpcodeFlags(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		opcode byte
		flags  FlagSet
	}{
		{0x00, 0},
		{0x03, 0},
		{0x04, FLAGS_ZSP},
		{0x07, FLAG_CARRY},
		{0x09, FLAG_CARRY},
		{0x37, FLAG_CARRY},
		{0x80, FLAGS_ALL},
		{0xa0, FLAGS_ALL},
		{0xb8, FLAGS_ALL},
		{0xf1, FLAGS_ALL},
		{0xf5, 0},
		{0xfe, FLAGS_ALL},
	}

	for _, entry := range table {
		assert.Equal(entry.flags, Lookup(entry.opcode).Flags, "0x%02x", entry.opcode)
	}
}

func TestOpcodeString(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		data []byte
		text string
	}{
		{[]byte{0x00}, "NOP"},
		{[]byte{0x01, 0x34, 0x12}, "LXI B,0x1234"},
		{[]byte{0x06, 0x10}, "MVI B,0x10"},
		{[]byte{0x41}, "MOV B,C"},
		{[]byte{0x76}, "HLT"},
		{[]byte{0x7e}, "MOV A,M"},
		{[]byte{0x86}, "ADD M"},
		{[]byte{0xc2, 0x10, 0x20}, "JNZ 0x2010"},
		{[]byte{0xc3, 0x10, 0x20}, "JMP 0x2010"},
		{[]byte{0xc5}, "PUSH B"},
		{[]byte{0xcf}, "RST 1"},
		{[]byte{0xd3, 0x02}, "OUT 0x02"},
		{[]byte{0xe8}, "RPE"},
		{[]byte{0xf1}, "POP PSW"},
		{[]byte{0xfc, 0x00, 0x01}, "CM 0x0100"},
		{[]byte{0xfe, 0x7f}, "CPI 0x7f"},
		{[]byte{0x08}, "-"},
	}

	for _, entry := range table {
		mem := &[MEMORY_SIZE]byte{}
		copy(mem[0x100:], entry.data)
		code := Decode(mem, 0x100)
		assert.Equal(entry.text, code.String())
		assert.Equal(entry.data, code.Bytes(), entry.text)
		assert.Equal(uint16(0x100), code.Addr)
	}
}
