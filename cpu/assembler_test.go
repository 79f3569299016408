package cpu

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssembler(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	prog, err := asm.Parse(strings.NewReader(""))
	assert.NoError(err)
	assert.Equal(0, len(prog.Opcodes))

	assert.Equal("0", asm.Equate["LINENO"])
	assert.Equal("0x10000", asm.Equate["MEMORY_SIZE"])
}

func opEqual(t *testing.T, expected, opcodes []Opcode) {
	assert := assert.New(t)

	assert.Equal(len(expected), len(opcodes))
	if len(expected) == len(opcodes) {
		for n := range len(expected) {
			assert.Equal(expected[n], opcodes[n])
		}
	}
}

func TestAssemblerProgram(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	program := []string{
		".org 0x100",
		"START:",
		"  LXI SP,0x2000 ; stack",
		"  MVI A,'A'",
		"  CALL PRINT",
		"  JMP START",
		"PRINT: OUT 1",
		"  RET",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
		return
	}

	expected := []Opcode{
		{LineNo: 3, Addr: 0x100, Words: []string{"LXI", "SP", "0x2000"}, Bytes: []byte{0x31, 0x00, 0x20}},
		{LineNo: 4, Addr: 0x103, Words: []string{"MVI", "A", "65"}, Bytes: []byte{0x3e, 0x41}},
		{LineNo: 5, Addr: 0x105, Words: []string{"CALL", "PRINT"}, Bytes: []byte{0xcd, 0x0b, 0x01}, LinkLabel: "PRINT"},
		{LineNo: 6, Addr: 0x108, Words: []string{"JMP", "START"}, Bytes: []byte{0xc3, 0x00, 0x01}, LinkLabel: "START"},
		{LineNo: 7, Addr: 0x10b, Words: []string{"OUT", "1"}, Bytes: []byte{0xd3, 0x01}},
		{LineNo: 8, Addr: 0x10d, Words: []string{"RET"}, Bytes: []byte{0xc9}},
	}

	opEqual(t, expected, prog.Opcodes)

	assert.Equal(0x100, asm.Label["START"])
	assert.Equal(0x10b, asm.Label["PRINT"])
	assert.Equal(0x10e, prog.Size())
}

func TestAssemblerOperands(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		text string
		data []byte
	}){
		{"mov m,a", []byte{0x77}},
		{"Mov B, C", []byte{0x41}},
		{"mvi a,-1", []byte{0x3e, 0xff}},
		{"MVI A,0xff", []byte{0x3e, 0xff}},
		{"MVI A,~0", []byte{0x3e, 0xff}},
		{"MVI A,'\\n'", []byte{0x3e, 0x0a}},
		{"LXI H,-2", []byte{0x21, 0xfe, 0xff}},
		{"LXI D,0b1010", []byte{0x11, 0x0a, 0x00}},
		{"ADI 0o17", []byte{0xc6, 0x0f}},
		{"push psw", []byte{0xf5}},
		{"RST 7", []byte{0xff}},
		{"HLT", []byte{0x76}},
		{"JNZ 0x1234", []byte{0xc2, 0x34, 0x12}},
		{"CPI ' '", []byte{0xfe, 0x20}},
		{".db 1,2,'x'", []byte{0x01, 0x02, 0x78}},
		{".db -128", []byte{0x80}},
		{".dw 0x1234", []byte{0x34, 0x12}},
	}

	for _, entry := range table {
		asm := &Assembler{}
		prog, err := asm.Parse(strings.NewReader(entry.text))
		assert.NoError(err, entry.text)
		if err != nil {
			continue
		}
		assert.Equal(entry.data, prog.Binary(), entry.text)
	}
}

func TestAssemblerData(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	program := []string{
		"TABLE: .dw ONE TWO",
		"ONE: NOP",
		"TWO: .db 0x10 0x20",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	expected := []Opcode{
		{LineNo: 1, Addr: 0, Words: []string{".dw", "ONE", "TWO"}, Bytes: []byte{0x04, 0x00}, LinkLabel: "ONE"},
		{LineNo: 1, Addr: 2, Words: []string{".dw", "ONE", "TWO"}, Bytes: []byte{0x05, 0x00}, LinkLabel: "TWO"},
		{LineNo: 2, Addr: 4, Words: []string{"NOP"}, Bytes: []byte{0x00}},
		{LineNo: 3, Addr: 5, Words: []string{".db", "0x10", "0x20"}, Bytes: []byte{0x10, 0x20}},
	}

	opEqual(t, expected, prog.Opcodes)
}

func TestAssemblerEqu(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	program := []string{
		".equ PORT 0x10",
		".equ COUNT $(2 * 8)",
		"MVI B,COUNT",
		"OUT PORT",
		"MVI C,$(LINENO * 2)",
		"TABLE: .db 1,2,3",
		"LXI H,$(TABLE + 2)",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(errors.Unwrap(err))
	}

	assert.Equal([]byte{
		0x06, 0x10,
		0xd3, 0x10,
		0x0e, 0x0a,
		0x01, 0x02, 0x03,
		0x21, 0x08, 0x00,
	}, prog.Binary())
}

func TestAssemblerPredefine(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	asm.Predefine("STACK_TOP", "0x8000")

	prog, err := asm.Parse(strings.NewReader("LXI SP,STACK_TOP"))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal([]byte{0x31, 0x00, 0x80}, prog.Binary())
}

func TestAssemblerMacro(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	program := []string{
		".macro LOADX reg val",
		"MVI reg,val",
		"INR reg",
		".endm",
		"LOADX B 0x10",
		".equ THREE 3",
		"LOADX c THREE",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal([]byte{0x06, 0x10, 0x04, 0x0e, 0x03, 0x0c}, prog.Binary())

	// Expanded opcodes point at the macro body lines.
	assert.Equal(2, prog.Opcodes[0].LineNo)
	assert.Equal(3, prog.Opcodes[1].LineNo)
}

func TestAssemblerMacroLabel(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	program := []string{
		".macro SPIN",
		"@loop: DCR A",
		"JNZ @loop",
		".endm",
		"SPIN",
		"SPIN",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal([]byte{
		0x3d, 0xc2, 0x00, 0x00,
		0x3d, 0xc2, 0x04, 0x00,
	}, prog.Binary())
}

func TestAssemblerRoundTrip(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	for n := range 256 {
		defn := Lookup(byte(n))
		if defn.Op == OP_UNDEFINED {
			continue
		}

		data := []byte{byte(n), 0xa5, 0x5a}[:defn.Shape.Bytes()]
		text, length := Disassemble(0, data)
		assert.Equal(len(data), length, text)

		prog, err := asm.Parse(strings.NewReader(text))
		assert.NoError(err, text)
		if err != nil {
			continue
		}
		assert.Equal(data, prog.Binary(), text)
	}
}

func TestAssemblerErrSyntax(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	// Various syntax errors
	table := [](struct {
		prog string
		line int
	}){
		{"DUP:\nDUP:\n", 2},
		{"MVI A,nothing", 1},
		{"MVI A,$(\"aaa\")", 1},
		{"MVI A,$(more(\"aaa\"))", 1},
		{"MVI A,$(0x10000000000000000)", 1},
		{"MVI A,0x100", 1},
		{"MVI A,-129", 1},
		{"LXI H,0x10000", 1},
		{"MVI A", 1},
		{"MVI Q,1", 1},
		{"MOV A", 1},
		{"MOV A,B,C", 1},
		{"NOP 1", 1},
		{"FOO", 1},
		{"JMP 1 2", 1},
		{"JMP NOWHERE", 1},
		{"NOP\nNOP\nJMP NOWHERE\n", 3},
		{".org", 1},
		{".org 0x10000", 1},
		{".org 0xffff\nLXI H,0", 2},
		{".db", 1},
		{".db 0x100", 1},
		{".dw", 1},
		{".dw 0x10000", 1},
		{".equ", 1},
		{".equ A", 1},
		{".equ A 1\n.equ A 2\n", 2},
		{".macro A B C\n.endm\nA 1\n", 3},
		{".macro LD R V\nMVI R,V\n.endm\nLD B 1\nLD Q 1\n", 5},
		{".macro A B\n.macro C\n.endm\n.endm", 2},
		{".macro A B\n.endm\n.macro A\n.endm\n", 3},
		{".macro A B\n.endm\n.endm\n", 3},
		{".macro A\nNOP\n", 2},
		{".macro\n", 1},
	}

	for _, entry := range table {
		_, err := asm.Parse(strings.NewReader(entry.prog))
		var se *ErrSyntax
		assert.NotNil(err, entry.prog)
		if err != nil {
			assert.True(errors.As(err, &se), entry.prog)
			assert.Equal(entry.line, se.LineNo, entry.prog)
		}
	}
}

func TestAssemblerErrKind(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	table := [](struct {
		prog string
		err  error
	}){
		{"MVI A", ErrOpcodeValueMissing},
		{"NOP 1", ErrOpcodeExtraArgs},
		{"FOO", ErrInstructionInvalid},
		{".org 0xffff\nLXI H,0", ErrImageOverflow},
		{".endm", ErrMacroLonelyEndm},
		{"JMP NOWHERE", ErrLabelMissing("NOWHERE")},
	}

	for _, entry := range table {
		_, err := asm.Parse(strings.NewReader(entry.prog))
		assert.ErrorIs(err, entry.err, entry.prog)
	}
}
