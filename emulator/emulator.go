// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"bytes"
	"fmt"
	goio "io"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/cpu32/cpu"
	"github.com/ezrec/cpu32/internal"
	"github.com/ezrec/cpu32/io"
)

const (
	STACK_CAPACITY = 1024 // Default stack capacity, in cells.
	RUN_CHUNK      = 5000 // Default number of steps per Cpu.Run call.
)

// Emulator state. CPU + program listing + tape.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program listing.

	StackCapacity int // Stack capacity, in cells, for the next load.
	Chunk         int // Steps per Cpu.Run call in Run.

	Tape io.Tape // Tape IO channel.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Program:       &cpu.Program{},
		StackCapacity: STACK_CAPACITY,
		Chunk:         RUN_CHUNK,
	}

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	defines := map[string]string{
		"STACK_CAPACITY": fmt.Sprintf("%d", emu.StackCapacity),
	}

	return internal.IterSeq2Concat(maps.All(defines),
		emu.Cpu.Defines(),
	)
}

// Assemble parses assembly source, with the emulator defines predefined.
func (emu *Emulator) Assemble(source goio.Reader) (prog *cpu.Program, err error) {
	asm := &cpu.Assembler{Verbose: emu.Verbose}
	for key, value := range emu.Defines() {
		asm.Predefine(key, value)
	}

	prog, err = asm.Parse(source)

	return
}

// Load a program binary, replacing any previous machine.
func (emu *Emulator) Load(program goio.Reader) (err error) {
	mem, bottom, err := cpu.NewMemory(program, emu.StackCapacity)
	if err != nil {
		return
	}

	machine, err := cpu.NewCpu(mem, bottom, emu.StackCapacity)
	if err != nil {
		return
	}

	emu.Close()

	machine.Verbose = emu.Verbose
	machine.Tape = &emu.Tape
	emu.Cpu = machine
	emu.Program = &cpu.Program{}

	if emu.Verbose {
		log.Printf("emulator: loaded %d cells, stack %d..%d",
			mem.Len(), machine.Stack.Roof, machine.Stack.Bottom)
	}

	return
}

// LoadProgram loads an assembled program, keeping its listing for LineNo.
func (emu *Emulator) LoadProgram(prog *cpu.Program) (err error) {
	err = emu.Load(bytes.NewReader(prog.Binary()))
	if err != nil {
		return
	}

	emu.Program = prog

	return
}

// Close flushes the tape and releases the machine.
func (emu *Emulator) Close() (err error) {
	if emu.Cpu == nil {
		return
	}

	err = emu.Tape.Flush()
	emu.Cpu.Destroy()
	emu.Cpu = nil

	return
}

// Reset the machine to its freshly loaded state, and rewind the tape.
func (emu *Emulator) Reset() (err error) {
	if emu.Cpu == nil {
		err = ErrNoProgram
		return
	}

	err = emu.Tape.Flush()
	emu.Tape.Rewind()
	emu.Cpu.Reset()

	return
}

// Ip returns current instruction pointer.
func (emu *Emulator) Ip() int {
	return int(emu.Cpu.Ip)
}

// LineNo returns the current line number for the executing opcode.
func (emu *Emulator) LineNo() int {
	dbg := emu.Program.Debug(emu.Ip())
	if dbg.Opcode == nil {
		return 0
	}

	return dbg.LineNo
}

// err returns the runtime error for the current status.
func (emu *Emulator) err() (err error) {
	switch emu.Cpu.Status {
	case cpu.STATUS_OK, cpu.STATUS_HALTED:
		return
	}

	err = &ErrRuntime{
		Ip:     emu.Ip(),
		LineNo: emu.LineNo(),
		Err:    emu.Cpu.Status.Err(),
	}

	return
}

// Tick performs a single step of the emulator.
// done is set once the machine has stopped; err is set if it stopped on
// anything other than a halt.
func (emu *Emulator) Tick() (done bool, err error) {
	if emu.Cpu == nil {
		err = ErrNoProgram
		return
	}

	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	if emu.Cpu.Step() {
		return
	}

	done = true
	err = emu.err()

	return
}

// Run executes the machine in chunks until it stops, then flushes the tape.
func (emu *Emulator) Run() (err error) {
	if emu.Cpu == nil {
		err = ErrNoProgram
		return
	}

	emu.Cpu.Verbose = emu.Verbose

	chunk := emu.Chunk
	if chunk <= 0 {
		chunk = RUN_CHUNK
	}

	for emu.Cpu.Status == cpu.STATUS_OK {
		executed := emu.Cpu.Run(chunk)
		if emu.Verbose {
			log.Printf("emulator: run %d", executed)
		}
	}

	err = emu.Tape.Flush()
	if err != nil {
		return
	}

	err = emu.err()

	return
}

// traceState writes the registers, stack size and status.
func (emu *Emulator) traceState(w goio.Writer) (err error) {
	reg := &emu.Cpu.Register
	_, err = fmt.Fprintf(w, "A: %d, B: %d, C: %d, D: %d\nstack size: %d\n%v\n",
		reg[cpu.REG_A], reg[cpu.REG_B], reg[cpu.REG_C], reg[cpu.REG_D],
		emu.Cpu.GetStackSize(),
		StatusLine(emu.Cpu.Status))

	return
}

// Trace single-steps the machine until it stops, writing its state to w
// before every step and once more at the end.
func (emu *Emulator) Trace(w goio.Writer) (err error) {
	if emu.Cpu == nil {
		err = ErrNoProgram
		return
	}

	for {
		// Keep program output in order with the trace.
		err = emu.Tape.Flush()
		if err != nil {
			return
		}

		err = emu.traceState(w)
		if err != nil {
			return
		}

		var done bool
		done, err = emu.Tick()
		if done {
			break
		}
	}

	flushErr := emu.Tape.Flush()
	if flushErr != nil && err == nil {
		err = flushErr
	}

	stateErr := emu.traceState(w)
	if stateErr != nil && err == nil {
		err = stateErr
	}

	return
}

// StatusLine returns the status report line for a status.
func StatusLine(status cpu.Status) string {
	return f("cpu status: %v", status)
}
