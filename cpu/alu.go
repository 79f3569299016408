package cpu

import (
	"math/bits"
)

// Arithmetic is done on a widened accumulator so that carry and borrow
// show up above bit 7 before truncation.

// add adds value, plus the carry flag when withCarry is set, into the accumulator.
func (st *State) add(value byte, withCarry bool, affected FlagSet) {
	result := uint16(st.A) + uint16(value)
	if withCarry && st.Flags.Carry {
		result++
	}
	st.Flags.Update(result, affected)
	st.A = byte(result)
}

// sub subtracts value, plus the carry flag when withBorrow is set, from the
// accumulator and returns the difference. The accumulator is not modified.
func (st *State) sub(value byte, withBorrow bool, affected FlagSet) byte {
	result := uint16(st.A) - uint16(value)
	if withBorrow && st.Flags.Carry {
		result--
	}
	st.Flags.Update(result, affected)
	return byte(result)
}

// logic stores a logical result in the accumulator. Carry is always cleared.
func (st *State) logic(result byte, affected FlagSet) {
	st.Flags.Update(uint16(result), affected)
	st.A = result
}

// inr returns value+1. Carry is not affected.
func (st *State) inr(value byte, affected FlagSet) byte {
	result := uint16(value) + 1
	st.Flags.Update(result, affected&^FLAG_CARRY)
	return byte(result)
}

// dcr returns value-1. Carry is not affected.
func (st *State) dcr(value byte, affected FlagSet) byte {
	result := uint16(value) - 1
	st.Flags.Update(result, affected&^FLAG_CARRY)
	return byte(result)
}

// rotate performs RLC, RRC, RAL or RAR on the accumulator.
func (st *State) rotate(op Op) {
	a := st.A
	switch op {
	case OP_RLC:
		st.A = bits.RotateLeft8(a, 1)
		st.Flags.Carry = (a & 0x80) != 0
	case OP_RRC:
		st.A = bits.RotateLeft8(a, -1)
		st.Flags.Carry = (a & 0x01) != 0
	case OP_RAL:
		st.A = a << 1
		if st.Flags.Carry {
			st.A |= 0x01
		}
		st.Flags.Carry = (a & 0x80) != 0
	case OP_RAR:
		st.A = a >> 1
		if st.Flags.Carry {
			st.A |= 0x80
		}
		st.Flags.Carry = (a & 0x01) != 0
	default:
		panic("not a rotate")
	}
}

// dad adds value into HL. Only carry is affected.
func (st *State) dad(value uint16) {
	sum := uint32(st.HL()) + uint32(value)
	st.Flags.Carry = sum > 0xffff
	st.SetHL(uint16(sum))
}
