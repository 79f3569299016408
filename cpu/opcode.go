package cpu

import (
	"fmt"
	"strings"
)

// Op is an 8080 operation.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_UNDEFINED = Op(iota) // -
	OP_NOP                  // NOP
	OP_LXI                  // LXI
	OP_STAX                 // STAX
	OP_INX                  // INX
	OP_INR                  // INR
	OP_DCR                  // DCR
	OP_MVI                  // MVI
	OP_RLC                  // RLC
	OP_DAD                  // DAD
	OP_LDAX                 // LDAX
	OP_DCX                  // DCX
	OP_RRC                  // RRC
	OP_RAL                  // RAL
	OP_RAR                  // RAR
	OP_SHLD                 // SHLD
	OP_DAA                  // DAA
	OP_LHLD                 // LHLD
	OP_CMA                  // CMA
	OP_STA                  // STA
	OP_STC                  // STC
	OP_LDA                  // LDA
	OP_CMC                  // CMC
	OP_MOV                  // MOV
	OP_HLT                  // HLT
	OP_ADD                  // ADD
	OP_ADC                  // ADC
	OP_SUB                  // SUB
	OP_SBB                  // SBB
	OP_ANA                  // ANA
	OP_XRA                  // XRA
	OP_ORA                  // ORA
	OP_CMP                  // CMP
	OP_RCOND                // R
	OP_POP                  // POP
	OP_JCOND                // J
	OP_JMP                  // JMP
	OP_CCOND                // C
	OP_PUSH                 // PUSH
	OP_ADI                  // ADI
	OP_RST                  // RST
	OP_RET                  // RET
	OP_CALL                 // CALL
	OP_ACI                  // ACI
	OP_OUT                  // OUT
	OP_SUI                  // SUI
	OP_IN                   // IN
	OP_SBI                  // SBI
	OP_XTHL                 // XTHL
	OP_ANI                  // ANI
	OP_PCHL                 // PCHL
	OP_XCHG                 // XCHG
	OP_XRI                  // XRI
	OP_DI                   // DI
	OP_ORI                  // ORI
	OP_SPHL                 // SPHL
	OP_EI                   // EI
	OP_CPI                  // CPI
)

// Implemented returns false for the operations the engine refuses to execute.
func (op Op) Implemented() bool {
	switch op {
	case OP_UNDEFINED, OP_DAA, OP_HLT, OP_RST:
		return false
	}
	return true
}

// Conditional returns true for the flag-tested jump, call and return forms.
func (op Op) Conditional() bool {
	return op == OP_JCOND || op == OP_CCOND || op == OP_RCOND
}

// Reg is a register operand, in 8080 encoding order.
type Reg int

//go:generate go tool stringer -linecomment -type=Reg
const (
	REG_B = Reg(0) // B
	REG_C = Reg(1) // C
	REG_D = Reg(2) // D
	REG_E = Reg(3) // E
	REG_H = Reg(4) // H
	REG_L = Reg(5) // L
	REG_M = Reg(6) // M
	REG_A = Reg(7) // A
)

// Pair is a register pair operand.
type Pair int

//go:generate go tool stringer -linecomment -type=Pair
const (
	PAIR_B   = Pair(0) // B
	PAIR_D   = Pair(1) // D
	PAIR_H   = Pair(2) // H
	PAIR_SP  = Pair(3) // SP
	PAIR_PSW = Pair(4) // PSW
)

// Cond is a branch condition, in 8080 encoding order.
type Cond int

//go:generate go tool stringer -linecomment -type=Cond
const (
	COND_NZ = Cond(0) // NZ
	COND_Z  = Cond(1) // Z
	COND_NC = Cond(2) // NC
	COND_C  = Cond(3) // C
	COND_PO = Cond(4) // PO
	COND_PE = Cond(5) // PE
	COND_P  = Cond(6) // P
	COND_M  = Cond(7) // M
)

// Shape is the operand layout that follows an opcode byte.
type Shape int

//go:generate go tool stringer -linecomment -type=Shape
const (
	SHAPE_IMPLIED = Shape(0) // implied
	SHAPE_IMM8    = Shape(1) // imm8
	SHAPE_IMM16   = Shape(2) // imm16
)

// Bytes returns the instruction length, opcode included.
func (shape Shape) Bytes() int {
	return int(shape) + 1
}

// Definition describes a single opcode: its operation, operand shape,
// register operands and the flags it updates.
type Definition struct {
	Opcode byte
	Op     Op
	Cond   Cond  // Tested flag, for conditional forms.
	Shape  Shape // Operand layout.
	Dst    Reg   // MOV, INR, DCR, MVI target.
	Src    Reg   // MOV and register ALU source.
	Pair   Pair  // Register pair operand.
	Vector byte  // RST vector number.
	Flags  FlagSet
}

// Lookup returns the definition of an opcode.
func Lookup(opcode byte) (defn Definition) {
	defn = definitions[opcode]
	defn.Opcode = opcode
	return
}

// Mnemonic returns the assembler mnemonic, with the condition folded in
// for conditional forms (JNZ, CPE, RM, ...).
func (defn Definition) Mnemonic() string {
	if defn.Op.Conditional() {
		return defn.Op.String() + defn.Cond.String()
	}
	return defn.Op.String()
}

// Operands returns the register operands, as written in assembly.
func (defn Definition) Operands() (operands []string) {
	switch defn.Op {
	case OP_MOV:
		operands = []string{defn.Dst.String(), defn.Src.String()}
	case OP_INR, OP_DCR, OP_MVI:
		operands = []string{defn.Dst.String()}
	case OP_ADD, OP_ADC, OP_SUB, OP_SBB, OP_ANA, OP_XRA, OP_ORA, OP_CMP:
		operands = []string{defn.Src.String()}
	case OP_LXI, OP_STAX, OP_LDAX, OP_INX, OP_DCX, OP_DAD, OP_PUSH, OP_POP:
		operands = []string{defn.Pair.String()}
	case OP_RST:
		operands = []string{fmt.Sprintf("%d", defn.Vector)}
	}
	return
}

// String returns the definition as assembly text, without the immediate.
func (defn Definition) String() string {
	operands := defn.Operands()
	if len(operands) == 0 {
		return defn.Mnemonic()
	}
	return defn.Mnemonic() + " " + strings.Join(operands, ",")
}

// Code is a decoded instruction: its definition, location and immediate operand.
type Code struct {
	Definition
	Addr      uint16 // Address of the opcode byte.
	Immediate uint16 // imm8 or little-endian imm16 operand.
}

// Decode decodes the instruction at addr. Operand bytes wrap at the top of memory.
func Decode(mem *[MEMORY_SIZE]byte, addr uint16) Code {
	return decode(func(at uint16) byte { return mem[at] }, addr)
}

// decode decodes the instruction at addr, using byteAt to read memory.
func decode(byteAt func(addr uint16) byte, addr uint16) (code Code) {
	code.Definition = Lookup(byteAt(addr))
	code.Addr = addr

	switch code.Shape {
	case SHAPE_IMM8:
		code.Immediate = uint16(byteAt(addr + 1))
	case SHAPE_IMM16:
		code.Immediate = uint16(byteAt(addr+2))<<8 | uint16(byteAt(addr+1))
	}

	return
}

// Bytes returns the encoded instruction.
func (code Code) Bytes() (data []byte) {
	data = []byte{code.Opcode}
	switch code.Shape {
	case SHAPE_IMM8:
		data = append(data, byte(code.Immediate))
	case SHAPE_IMM16:
		data = append(data, byte(code.Immediate), byte(code.Immediate>>8))
	}
	return
}

// String returns the assembly language representation of this instruction.
func (code Code) String() string {
	text := code.Definition.String()

	var imm string
	switch code.Shape {
	case SHAPE_IMM8:
		imm = fmt.Sprintf("0x%02x", code.Immediate)
	case SHAPE_IMM16:
		imm = fmt.Sprintf("0x%04x", code.Immediate)
	default:
		return text
	}

	if len(code.Operands()) == 0 {
		return text + " " + imm
	}
	return text + "," + imm
}
