package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack_Push(t *testing.T) {
	assert := assert.New(t)

	st := NewState()
	st.SP = 0x2000

	st.Push(0x1234)
	assert.Equal(uint16(0x1ffe), st.SP)
	assert.Equal(byte(0x12), st.Memory[0x1fff])
	assert.Equal(byte(0x34), st.Memory[0x1ffe])
}

func TestStack_Pop(t *testing.T) {
	assert := assert.New(t)

	st := NewState()
	st.SP = 0x2000
	st.Push(0x1234)
	st.Push(0xabcd)

	assert.Equal(uint16(0xabcd), st.Pop())
	assert.Equal(uint16(0x1ffe), st.SP)

	assert.Equal(uint16(0x1234), st.Pop())
	assert.Equal(uint16(0x2000), st.SP)
}

func TestStack_Peek(t *testing.T) {
	assert := assert.New(t)

	st := NewState()
	st.SP = 0x2000
	st.Push(0x1234)
	st.Push(0xabcd)

	assert.Equal(uint16(0xabcd), st.Peek())
	assert.Equal(uint16(0x1ffc), st.SP)

	st.Poke(0x5678)
	assert.Equal(uint16(0x5678), st.Pop())
	assert.Equal(uint16(0x1234), st.Peek())
}

func TestStack_Wrap(t *testing.T) {
	assert := assert.New(t)

	// An empty stack at 0x0000 pushes into the top of memory.
	st := NewState()
	st.Push(0xbeef)
	assert.Equal(uint16(0xfffe), st.SP)
	assert.Equal(byte(0xbe), st.Memory[0xffff])
	assert.Equal(byte(0xef), st.Memory[0xfffe])

	assert.Equal(uint16(0xbeef), st.Pop())
	assert.Equal(uint16(0x0000), st.SP)
}

func TestStack_RoundTrip(t *testing.T) {
	assert := assert.New(t)

	st := NewState()
	for _, sp := range []uint16{0x0000, 0x0001, 0x8000, 0xffff} {
		for _, value := range []uint16{0x0000, 0x00ff, 0xff00, 0x1234, 0xffff} {
			st.SP = sp
			st.Push(value)
			assert.Equal(value, st.Pop())
			assert.Equal(sp, st.SP)
		}
	}
}
