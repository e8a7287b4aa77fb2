// Package cpu implements the cpu32 virtual machine and its assembler.
//
// The machine is a fetch-decode-execute interpreter over a flat image of
// 32-bit signed cells. The program occupies the low cells of the image, and
// a bounded stack occupies the high cells, growing downwards towards the
// program. The CPU has four 32-bit registers (A, B, C, D), a signed
// instruction pointer, and a status that leaves STATUS_OK on halt or on the
// first failing instruction and stays there until Reset.
//
// The assembler provides a small assembly language for the cpu32
// instruction set, supporting macros, labels, equates, and compile-time
// expression evaluation.
package cpu
