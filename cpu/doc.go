// Package cpu implements the Intel 8080 instruction engine and its assembler.
//
// The machine state is the seven 8-bit registers (A, B, C, D, E, H, L), the
// 16-bit stack pointer and program counter, the S/Z/P/C condition flags, the
// interrupt enable latch, and 64KiB of byte-addressed memory.
//
// Every opcode is described by an entry in a 256-entry definition table,
// which drives the decoder, the disassembler, and the assembler.
//
// The assembler supports macros, labels, equates, and compile-time
// expression evaluation.
package cpu
