package io

import (
	"errors"

	"github.com/ezrec/i8080/translate"
)

var f = translate.From

var (
	// Image errors
	ErrRomTooLarge = errors.New(f("image exceeds memory"))
)

// ErrRomLoad is returned when an image file can not be loaded.
type ErrRomLoad struct {
	Name string
	Err  error
}

func (err *ErrRomLoad) Error() string {
	return f("image %v: %v", err.Name, err.Err)
}

func (err *ErrRomLoad) Unwrap() error {
	return err.Err
}
