// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/i8080/cpu"
	"github.com/ezrec/i8080/internal"
	"github.com/ezrec/i8080/io"
)

const (
	STACK_TOP = 0xf000 // Suggested initial stack pointer.
	TAPE_PORT = 0x01   // Default port of an attached tape.
)

var _emulator_defines = map[string]string{
	"MEMORY_SIZE": fmt.Sprintf("%#x", cpu.MEMORY_SIZE),
	"STACK_TOP":   fmt.Sprintf("%#x", STACK_TOP),
}

// Emulator state. CPU + memory image + optional tape.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program listing.

	Rom  io.Rom   // Image loaded when there is no program.
	Tape *io.Tape // If set, attached to the CPU ports.

	End int // Length of the populated memory image.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Program: &cpu.Program{},
	}

	return
}

// NewTape attaches a tape on TAPE_PORT.
func (emu *Emulator) NewTape() *io.Tape {
	emu.Tape = &io.Tape{Port: TAPE_PORT}
	return emu.Tape
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	seqs := []iter.Seq2[string, string]{maps.All(_emulator_defines)}
	if emu.Tape != nil {
		seqs = append(seqs, emu.Tape.Defines())
	}
	return internal.IterSeq2Concat(seqs...)
}

// Reset clears the machine, and loads the program (or the ROM, if there is no program)
// into memory from address 0.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()

	emu.Cpu.Port = nil
	if emu.Tape != nil {
		emu.Cpu.Port = emu.Tape
	}

	rom := emu.Rom
	if emu.Program != nil && len(emu.Program.Opcodes) > 0 {
		rom = io.Rom{Data: emu.Program.Binary()}
	}

	if len(rom.Data) > cpu.MEMORY_SIZE {
		err = io.ErrRomTooLarge
		return
	}

	emu.End = rom.CopyTo(emu.Cpu.State.Memory[:])

	if emu.Verbose {
		log.Printf("emulator: %d byte image", emu.End)
	}

	return
}

// Pc returns the current program counter.
func (emu *Emulator) Pc() int {
	return int(emu.Cpu.State.PC)
}

// LineNo returns the current line number for the executing opcode.
func (emu *Emulator) LineNo() int {
	if emu.Program == nil {
		return 0
	}

	dbg := emu.Program.Debug(emu.Cpu.State.PC)
	if dbg.Opcode == nil {
		return 0
	}

	return dbg.LineNo
}

// Tick executes a single instruction. Done is set, without executing, once the
// program counter is past the end of the image.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	if emu.Pc() >= emu.End {
		done = true
		return
	}

	addr := emu.Cpu.State.PC
	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{Addr: addr, LineNo: lineno, Err: err}
		}
	}()

	err = emu.Cpu.Tick()

	return
}

// Run ticks until done, an error, or limit instructions have executed.
// A limit of zero or less runs without limit.
func (emu *Emulator) Run(limit int) (ticks int, err error) {
	for limit <= 0 || ticks < limit {
		var done bool
		done, err = emu.Tick()
		if err != nil || done {
			return
		}
		ticks++
	}

	// An image that finishes on the last allowed tick is complete.
	if emu.Pc() >= emu.End {
		return
	}

	err = ErrTickLimit
	return
}
