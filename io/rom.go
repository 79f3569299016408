package io

import (
	"io"
	"io/fs"
)

const ROM_SIZE_MAX = 0x10000 // Largest image that fits in memory.

// Rom is a flat memory image, copied byte for byte from address 0.
type Rom struct {
	Data []byte
}

// Load reads an image from a stream.
func (rom *Rom) Load(r io.Reader) (err error) {
	data, err := io.ReadAll(io.LimitReader(r, ROM_SIZE_MAX+1))
	if err != nil {
		return
	}

	if len(data) > ROM_SIZE_MAX {
		err = ErrRomTooLarge
		return
	}

	rom.Data = data
	return
}

// LoadFile reads an image from a file system.
func (rom *Rom) LoadFile(fsys fs.FS, name string) (err error) {
	defer func() {
		if err != nil {
			err = &ErrRomLoad{Name: name, Err: err}
		}
	}()

	file, err := fsys.Open(name)
	if err != nil {
		return
	}
	defer file.Close()

	err = rom.Load(file)
	return
}

// CopyTo copies the image into the start of mem, returning the number of bytes copied.
func (rom *Rom) CopyTo(mem []byte) int {
	return copy(mem, rom.Data)
}
