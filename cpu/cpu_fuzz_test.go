package cpu

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzCpu(f *testing.F) {
	for rv := range 0xf {
		f.Add(uint8(rv*0x11), uint16(0x1234), uint16(0x2000), uint8(0x5a), uint8(rv))
		f.Add(uint8(0xff-rv), uint16(0xffff), uint16(0x0000), uint8(0xa5), uint8(0xff-rv))
	}

	f.Fuzz(func(t *testing.T, opcode uint8, operand uint16, sp uint16, a uint8, psw uint8) {
		assert := assert.New(t)

		cpu := NewCpu()
		st := cpu.State

		st.PC = 0x4000
		st.Memory[0x4000] = opcode
		st.Memory[0x4001] = byte(operand)
		st.Memory[0x4002] = byte(operand >> 8)
		st.SP = sp
		st.A = a
		st.SetBC(0x1122)
		st.SetDE(0x3344)
		st.SetHL(0x5566)
		st.Flags.SetPSW(psw)

		before := st.Snapshot()
		code := cpu.FetchCode()

		err := cpu.Execute(code)

		code_str := fmt.Sprintf("0x%02x (%v)\npsw:%02x\ncpu:%v", opcode, code, psw, cpu.String())

		if !code.Op.Implemented() {
			assert.True(errors.Is(err, ErrUnimplemented(opcode)), code_str)
			assert.Equal(*before, *st, code_str)
			assert.Equal(0, cpu.Ticks, code_str)
			return
		}

		assert.NoError(err, code_str)
		assert.Equal(1, cpu.Ticks, code_str)

		// Flags not declared by the opcode are left untouched.
		changed := before.Flags.Set() ^ st.Flags.Set()
		assert.Equal(FlagSet(0), changed&^code.Flags, code_str)

		next_pc := before.PC + uint16(code.Shape.Bytes())
		switch code.Op {
		case OP_JMP, OP_CALL:
			assert.Equal(operand, st.PC, code_str)
		case OP_JCOND, OP_CCOND:
			if before.Flags.Test(code.Cond) {
				assert.Equal(operand, st.PC, code_str)
			} else {
				assert.Equal(next_pc, st.PC, code_str)
				assert.Equal(before.SP, st.SP, code_str)
			}
		case OP_RET:
			assert.Equal(before.Word(before.SP), st.PC, code_str)
			assert.Equal(before.SP+2, st.SP, code_str)
		case OP_RCOND:
			if before.Flags.Test(code.Cond) {
				assert.Equal(before.Word(before.SP), st.PC, code_str)
			} else {
				assert.Equal(next_pc, st.PC, code_str)
			}
		case OP_PCHL:
			assert.Equal(before.HL(), st.PC, code_str)
		default:
			assert.Equal(next_pc, st.PC, code_str)
		}

		// Only the stack operations move the stack pointer.
		switch code.Op {
		case OP_PUSH:
			assert.Equal(before.SP-2, st.SP, code_str)
		case OP_POP:
			assert.Equal(before.SP+2, st.SP, code_str)
		case OP_CALL:
			assert.Equal(before.SP-2, st.SP, code_str)
			assert.Equal(next_pc, st.Word(st.SP), code_str)
		case OP_LXI, OP_INX, OP_DCX:
			if code.Pair != PAIR_SP {
				assert.Equal(before.SP, st.SP, code_str)
			}
		case OP_RET, OP_RCOND, OP_CCOND, OP_SPHL:
			// checked above, or conditional
		default:
			assert.Equal(before.SP, st.SP, code_str)
		}
	})
}
