package cpu

import (
	"log"

	"github.com/ezrec/i8080/io"
)

// Port is an I/O port interface, serviced by the IN and OUT instructions.
type Port io.Port

// Cpu is the simulation context for the 8080.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	State *State // Machine state, owned by this Cpu.
	Port  Port   // Optional I/O port device. If nil, IN and OUT are no-ops.

	Ticks int // Executed instruction counter.
}

// NewCpu creates a new CPU with zeroed state.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{
		State: NewState(),
	}

	return
}

// Reset the CPU state.
// - Clears the registers, flags and memory.
// - Zeros the instruction counter.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.State.Reset()
	cpu.Ticks = 0
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() string {
	return cpu.State.String()
}

// FetchCode decodes the instruction at the program counter.
func (cpu *Cpu) FetchCode() Code {
	return Decode(&cpu.State.Memory, cpu.State.PC)
}

// Tick executes a single instruction.
func (cpu *Cpu) Tick() (err error) {
	return cpu.Execute(cpu.FetchCode())
}

// operand returns the 8-bit source of a register or immediate ALU form.
func (cpu *Cpu) operand(code Code) byte {
	if code.Shape == SHAPE_IMM8 {
		return byte(code.Immediate)
	}
	return cpu.State.Reg(code.Src)
}

// Execute executes a single decoded instruction.
// Unimplemented instructions return ErrUnimplemented, and leave the state untouched.
func (cpu *Cpu) Execute(code Code) (err error) {
	if !code.Op.Implemented() {
		err = ErrUnimplemented(code.Opcode)
		return
	}

	if cpu.Verbose {
		log.Printf("%04x: %v", code.Addr, code)
	}

	st := cpu.State
	imm := code.Immediate

	next_pc := code.Addr + uint16(code.Shape.Bytes())

	switch code.Op {
	case OP_NOP:
		// pass
	case OP_LXI:
		st.SetPair(code.Pair, imm)
	case OP_STAX:
		st.Memory[st.Pair(code.Pair)] = st.A
	case OP_LDAX:
		st.A = st.Memory[st.Pair(code.Pair)]
	case OP_INX:
		st.SetPair(code.Pair, st.Pair(code.Pair)+1)
	case OP_DCX:
		st.SetPair(code.Pair, st.Pair(code.Pair)-1)
	case OP_DAD:
		st.dad(st.Pair(code.Pair))
	case OP_INR:
		st.SetReg(code.Dst, st.inr(st.Reg(code.Dst), code.Flags))
	case OP_DCR:
		st.SetReg(code.Dst, st.dcr(st.Reg(code.Dst), code.Flags))
	case OP_MVI:
		st.SetReg(code.Dst, byte(imm))
	case OP_MOV:
		st.SetReg(code.Dst, st.Reg(code.Src))
	case OP_RLC, OP_RRC, OP_RAL, OP_RAR:
		st.rotate(code.Op)
	case OP_SHLD:
		st.SetWord(imm, st.HL())
	case OP_LHLD:
		st.SetHL(st.Word(imm))
	case OP_STA:
		st.Memory[imm] = st.A
	case OP_LDA:
		st.A = st.Memory[imm]
	case OP_CMA:
		st.A = ^st.A
	case OP_STC:
		st.Flags.Carry = true
	case OP_CMC:
		st.Flags.Carry = !st.Flags.Carry
	case OP_ADD, OP_ADI:
		st.add(cpu.operand(code), false, code.Flags)
	case OP_ADC, OP_ACI:
		st.add(cpu.operand(code), true, code.Flags)
	case OP_SUB, OP_SUI:
		st.A = st.sub(cpu.operand(code), false, code.Flags)
	case OP_SBB, OP_SBI:
		st.A = st.sub(cpu.operand(code), true, code.Flags)
	case OP_ANA, OP_ANI:
		st.logic(st.A&cpu.operand(code), code.Flags)
	case OP_XRA, OP_XRI:
		st.logic(st.A^cpu.operand(code), code.Flags)
	case OP_ORA, OP_ORI:
		st.logic(st.A|cpu.operand(code), code.Flags)
	case OP_CMP, OP_CPI:
		st.sub(cpu.operand(code), false, code.Flags)
	case OP_PUSH:
		st.Push(st.Pair(code.Pair))
	case OP_POP:
		st.SetPair(code.Pair, st.Pop())
	case OP_JMP:
		next_pc = imm
	case OP_JCOND:
		if st.Flags.Test(code.Cond) {
			next_pc = imm
		}
	case OP_CALL:
		st.Push(next_pc)
		next_pc = imm
	case OP_CCOND:
		if st.Flags.Test(code.Cond) {
			st.Push(next_pc)
			next_pc = imm
		}
	case OP_RET:
		next_pc = st.Pop()
	case OP_RCOND:
		if st.Flags.Test(code.Cond) {
			next_pc = st.Pop()
		}
	case OP_PCHL:
		next_pc = st.HL()
	case OP_SPHL:
		st.SP = st.HL()
	case OP_XTHL:
		hl := st.HL()
		st.SetHL(st.Peek())
		st.Poke(hl)
	case OP_XCHG:
		hl := st.HL()
		st.SetHL(st.DE())
		st.SetDE(hl)
	case OP_EI:
		st.Interrupt = true
	case OP_DI:
		st.Interrupt = false
	case OP_OUT:
		if cpu.Port != nil {
			cpu.Port.Out(byte(imm), st.A)
		}
	case OP_IN:
		if cpu.Port != nil {
			st.A = cpu.Port.In(byte(imm))
		}
	default:
		panic("unhandled operation " + code.Op.String())
	}

	st.PC = next_pc
	cpu.Ticks += 1

	return
}
