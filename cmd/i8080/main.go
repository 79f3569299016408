// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ezrec/i8080/cpu"
	"github.com/ezrec/i8080/emulator"
)

func main() {
	var compile string
	var rom string
	var output string
	var disasm bool
	var limit int
	var tape bool
	var verbose bool

	flag.StringVar(&compile, "c", "", ".asm file to assemble")
	flag.StringVar(&rom, "r", "", "memory image to load")
	flag.StringVar(&output, "o", "", "write the memory image, do not execute")
	flag.BoolVar(&disasm, "d", false, "Disassemble the memory image, do not execute")
	flag.IntVar(&limit, "n", 0, "Instruction limit (0 for none)")
	flag.BoolVar(&tape, "t", false, "Attach stdin and stdout as a tape on port TAPE_PORT")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(compile) == 0 && len(rom) == 0 {
		log.Fatalf("%v: one of -c or -r is required", os.Args[0])
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	if tape {
		tc := emu.NewTape()
		tc.Input = os.Stdin
		tc.Output = os.Stdout
	}

	if len(rom) != 0 {
		err := emu.Rom.LoadFile(os.DirFS(filepath.Dir(rom)), filepath.Base(rom))
		if err != nil {
			log.Fatalf("%v", err)
		}
	}

	// Assemble a new image, which replaces any loaded image.
	if len(compile) != 0 {
		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()

		asm := &cpu.Assembler{Verbose: verbose}
		for key, value := range emu.Defines() {
			asm.Predefine(key, value)
		}
		emu.Program, err = asm.Parse(inf)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
	}

	err := emu.Reset()
	if err != nil {
		log.Fatalf("%v", err)
	}

	image := emu.Cpu.State.Memory[:emu.End]

	if len(output) != 0 {
		err = os.WriteFile(output, image, 0o644)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		return
	}

	if disasm {
		for addr, text := range cpu.Listing(0, image) {
			fmt.Printf("%04x: %v\n", addr, text)
		}
		return
	}

	ticks, err := emu.Run(limit)
	if verbose {
		log.Printf("%v instructions\n%v", ticks, emu.Cpu.String())
	}
	if err != nil {
		log.Fatal(err)
	}
	if emu.Tape != nil && emu.Tape.Err() != nil {
		log.Fatalf("tape: %v", emu.Tape.Err())
	}
}
