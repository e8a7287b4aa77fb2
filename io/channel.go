// Package io provides the tape used by the cpu32 I/O instructions.
//
// A tape pairs a byte input stream with a byte output stream. Input can be
// scanned as whitespace separated signed decimal numbers (the 'in'
// instruction) or consumed one raw byte at a time ('get'). Output accepts
// decimal numbers ('out') and raw bytes ('put'). Output is buffered until
// Flush, or until the next read from the input.
package io

// Channel defines the interface the CPU uses for its I/O instructions.
type Channel interface {
	// Rewind drops any buffered input and flushes pending output.
	Rewind()
	// ScanNumber reads one signed decimal number.
	ScanNumber() (value int32, result ScanResult, err error)
	// GetByte reads one raw byte. ok is false at end of input.
	GetByte() (value byte, ok bool, err error)
	// PrintNumber writes the decimal digits of value.
	PrintNumber(value int32) error
	// PutByte writes a single raw byte.
	PutByte(value byte) error
	// Flush writes any buffered output.
	Flush() error
}

// ScanResult is the outcome of scanning a number from a channel.
type ScanResult int

const (
	SCAN_VALUE     = ScanResult(0) // A number was read.
	SCAN_EOF       = ScanResult(1) // Input ended before a number started.
	SCAN_MALFORMED = ScanResult(2) // The next token is not a number.
)

func (sr ScanResult) String() string {
	switch sr {
	case SCAN_VALUE:
		return "value"
	case SCAN_EOF:
		return "eof"
	case SCAN_MALFORMED:
		return "malformed"
	}
	return f("scan(%d)", int(sr))
}
