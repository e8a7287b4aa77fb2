package io

import (
	"bufio"
	"errors"
	"io"
	"strconv"
)

// Tape provides sequential I/O over an io.Reader for input and an
// io.Writer for output.
type Tape struct {
	Input  io.Reader
	Output io.Writer

	reader    *bufio.Reader
	readFrom  io.Reader
	writer    *bufio.Writer
	writeTo   io.Writer
	scanToken []byte
}

var _ Channel = (*Tape)(nil)

// input returns a buffered reader over the current Input.
func (tc *Tape) input() (r *bufio.Reader, err error) {
	if tc.Input == nil {
		err = ErrTapeNoInput
		return
	}

	if tc.reader == nil || tc.readFrom != tc.Input {
		tc.reader = bufio.NewReader(tc.Input)
		tc.readFrom = tc.Input
	}

	r = tc.reader
	return
}

// output returns a buffered writer over the current Output.
func (tc *Tape) output() (w *bufio.Writer, err error) {
	if tc.Output == nil {
		err = ErrTapeNoOutput
		return
	}

	if tc.writer == nil || tc.writeTo != tc.Output {
		if tc.writer != nil {
			tc.writer.Flush()
		}
		tc.writer = bufio.NewWriter(tc.Output)
		tc.writeTo = tc.Output
	}

	w = tc.writer
	return
}

// Rewind drops buffered input and flushes pending output.
func (tc *Tape) Rewind() {
	tc.Flush()
	tc.reader = nil
	tc.readFrom = nil
}

// Flush writes any buffered output.
func (tc *Tape) Flush() (err error) {
	if tc.writer == nil {
		return
	}

	err = tc.writer.Flush()
	return
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// ScanNumber skips leading whitespace, then reads an optional sign and a run
// of decimal digits. The first byte after the digits is left unread.
//
// End of input before any non-space byte is SCAN_EOF. A token that does not
// start with a digit (after the sign), or that does not fit in 32 bits, is
// SCAN_MALFORMED. err is only set for failures of the underlying reader.
func (tc *Tape) ScanNumber() (value int32, result ScanResult, err error) {
	result = SCAN_MALFORMED

	// Prompts must be visible before we block on input.
	tc.Flush()

	r, err := tc.input()
	if err != nil {
		return
	}

	var c byte
	for {
		c, err = r.ReadByte()
		if errors.Is(err, io.EOF) {
			err = nil
			result = SCAN_EOF
			return
		}
		if err != nil {
			return
		}
		if !isSpace(c) {
			break
		}
	}

	token := tc.scanToken[:0]
	if c == '+' || c == '-' {
		token = append(token, c)
		c, err = r.ReadByte()
		if errors.Is(err, io.EOF) {
			err = nil
			return
		}
		if err != nil {
			return
		}
	}

	if !isDigit(c) {
		r.UnreadByte()
		return
	}

	for isDigit(c) {
		token = append(token, c)
		c, err = r.ReadByte()
		if errors.Is(err, io.EOF) {
			err = nil
			break
		}
		if err != nil {
			return
		}
		if !isDigit(c) {
			r.UnreadByte()
		}
	}
	tc.scanToken = token

	v64, perr := strconv.ParseInt(string(token), 10, 32)
	if perr != nil {
		return
	}

	value = int32(v64)
	result = SCAN_VALUE
	return
}

// GetByte reads a single raw byte from the input.
func (tc *Tape) GetByte() (value byte, ok bool, err error) {
	tc.Flush()

	r, err := tc.input()
	if err != nil {
		return
	}

	value, err = r.ReadByte()
	if errors.Is(err, io.EOF) {
		err = nil
		return
	}
	if err != nil {
		return
	}

	ok = true
	return
}

// PrintNumber writes the signed decimal digits of value.
func (tc *Tape) PrintNumber(value int32) (err error) {
	w, err := tc.output()
	if err != nil {
		return
	}

	var digits [12]byte
	_, err = w.Write(strconv.AppendInt(digits[:0], int64(value), 10))
	return
}

// PutByte writes value as a single raw byte.
func (tc *Tape) PutByte(value byte) (err error) {
	w, err := tc.output()
	if err != nil {
		return
	}

	err = w.WriteByte(value)
	return
}
