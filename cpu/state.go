package cpu

import (
	"fmt"
)

const (
	MEMORY_SIZE = 0x10000 // Addressable memory, in bytes.
)

// State is the 8080 machine state: registers, flags, and memory.
type State struct {
	A, B, C, D, E, H, L byte

	SP uint16 // Stack pointer.
	PC uint16 // Program counter.

	Flags     Flags
	Interrupt bool // Interrupt enable.

	Memory [MEMORY_SIZE]byte
}

// NewState returns a zeroed machine state.
func NewState() *State {
	return &State{}
}

// Reset zeros the registers, flags and memory.
func (st *State) Reset() {
	*st = State{}
}

// Snapshot creates a copy of the state.
func (st *State) Snapshot() *State {
	n := *st
	return &n
}

// BC returns the BC register pair.
func (st *State) BC() uint16 {
	return uint16(st.B)<<8 | uint16(st.C)
}

// DE returns the DE register pair.
func (st *State) DE() uint16 {
	return uint16(st.D)<<8 | uint16(st.E)
}

// HL returns the HL register pair.
func (st *State) HL() uint16 {
	return uint16(st.H)<<8 | uint16(st.L)
}

func (st *State) SetBC(value uint16) {
	st.B, st.C = byte(value>>8), byte(value)
}

func (st *State) SetDE(value uint16) {
	st.D, st.E = byte(value>>8), byte(value)
}

func (st *State) SetHL(value uint16) {
	st.H, st.L = byte(value>>8), byte(value)
}

// Reg reads a register. REG_M reads the memory cell addressed by HL.
func (st *State) Reg(reg Reg) byte {
	switch reg {
	case REG_B:
		return st.B
	case REG_C:
		return st.C
	case REG_D:
		return st.D
	case REG_E:
		return st.E
	case REG_H:
		return st.H
	case REG_L:
		return st.L
	case REG_M:
		return st.Memory[st.HL()]
	case REG_A:
		return st.A
	}
	panic("unknown register")
}

// SetReg writes a register. REG_M writes the memory cell addressed by HL.
func (st *State) SetReg(reg Reg, value byte) {
	switch reg {
	case REG_B:
		st.B = value
	case REG_C:
		st.C = value
	case REG_D:
		st.D = value
	case REG_E:
		st.E = value
	case REG_H:
		st.H = value
	case REG_L:
		st.L = value
	case REG_M:
		st.Memory[st.HL()] = value
	case REG_A:
		st.A = value
	default:
		panic("unknown register")
	}
}

// Pair reads a register pair. PAIR_PSW is the accumulator over the status byte.
func (st *State) Pair(pair Pair) uint16 {
	switch pair {
	case PAIR_B:
		return st.BC()
	case PAIR_D:
		return st.DE()
	case PAIR_H:
		return st.HL()
	case PAIR_SP:
		return st.SP
	case PAIR_PSW:
		return uint16(st.A)<<8 | uint16(st.Flags.PSW())
	}
	panic("unknown register pair")
}

// SetPair writes a register pair.
func (st *State) SetPair(pair Pair, value uint16) {
	switch pair {
	case PAIR_B:
		st.SetBC(value)
	case PAIR_D:
		st.SetDE(value)
	case PAIR_H:
		st.SetHL(value)
	case PAIR_SP:
		st.SP = value
	case PAIR_PSW:
		st.A = byte(value >> 8)
		st.Flags.SetPSW(byte(value))
	default:
		panic("unknown register pair")
	}
}

// Word reads a little-endian 16-bit value.
func (st *State) Word(addr uint16) uint16 {
	return uint16(st.Memory[addr+1])<<8 | uint16(st.Memory[addr])
}

// SetWord writes a little-endian 16-bit value.
func (st *State) SetWord(addr uint16, value uint16) {
	st.Memory[addr] = byte(value)
	st.Memory[addr+1] = byte(value >> 8)
}

// String returns the register state as a string.
func (st *State) String() (text string) {
	regs := []string{
		"pc", "sp",
		"a", "bc", "de", "hl",
		"flags", "ie",
	}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "pc":
			strval = fmt.Sprintf("%04X", st.PC)
		case "sp":
			strval = fmt.Sprintf("%04X (%04X)", st.SP, st.Peek())
		case "a":
			strval = fmt.Sprintf("%02X", st.A)
		case "bc":
			strval = fmt.Sprintf("%04X", st.BC())
		case "de":
			strval = fmt.Sprintf("%04X", st.DE())
		case "hl":
			strval = fmt.Sprintf("%04X (%02X)", st.HL(), st.Reg(REG_M))
		case "flags":
			strval = st.Flags.String()
		case "ie":
			strval = fmt.Sprintf("%v", st.Interrupt)
		}
		text += fmt.Sprintf("% 5s: %v\n", reg, strval)
	}

	return
}
