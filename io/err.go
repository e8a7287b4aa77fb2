package io

import (
	"errors"

	"github.com/ezrec/cpu32/translate"
)

var f = translate.From

var (
	// Tape errors
	ErrTapeNoInput  = errors.New(f("tape has no input"))
	ErrTapeNoOutput = errors.New(f("tape has no output"))
)
