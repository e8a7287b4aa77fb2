// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"

	"github.com/ezrec/cpu32/config"
	"github.com/ezrec/cpu32/cpu"
	"github.com/ezrec/cpu32/emulator"
	"github.com/ezrec/cpu32/translate"
)

var f = translate.From

var (
	ErrUsage         = errors.New(f("Usage: cpu32 [flags] (run|trace) [stack_capacity] FILE"))
	ErrStackCapacity = errors.New(f("Your desired stack size is out of range."))
)

// invocation is the parsed positional arguments.
type invocation struct {
	mode     string
	capacity int // Negative if not given.
	file     string
}

// parseArgs parses `[run|trace] [stack_capacity] FILE`. FILE is omitted
// when the program comes from an assembly source.
func parseArgs(args []string, mode string, haveSource bool) (inv invocation, err error) {
	inv.mode = mode
	inv.capacity = -1

	if len(args) > 0 && (args[0] == config.MODE_RUN || args[0] == config.MODE_TRACE) {
		inv.mode = args[0]
		args = args[1:]
	}

	if !haveSource {
		if len(args) == 0 {
			err = ErrUsage
			return
		}
		inv.file = args[len(args)-1]
		args = args[:len(args)-1]
	}

	switch len(args) {
	case 0:
	case 1:
		var value uint64
		value, err = strconv.ParseUint(args[0], 10, 64)
		if err != nil || value > math.MaxInt32 {
			err = errors.Join(ErrStackCapacity, err)
			return
		}
		inv.capacity = int(value)
	default:
		err = ErrUsage
	}

	return
}

// loadConfig reads an explicit configuration file, or looks for one from
// the working directory.
func loadConfig(path string) (*config.Config, error) {
	if len(path) != 0 {
		return config.Load(path)
	}

	return config.FindAndLoad(".")
}

// run is main with its environment passed in; it returns the exit code.
func run(name string, args []string, stdin io.Reader, stdout io.Writer) (code int) {
	var configFile string
	var compile string
	var output string
	var verbose bool

	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.StringVar(&configFile, "config", "", "cpu32.toml file to use")
	flags.StringVar(&compile, "c", "", ".s file to assemble")
	flags.StringVar(&output, "o", "", "Save the assembled binary, do not execute")
	flags.BoolVar(&verbose, "v", false, "Verbose mode")

	err := flags.Parse(args)
	if err != nil {
		return 1
	}

	cfg, err := loadConfig(configFile)
	if err != nil {
		log.Printf("%v: %v", name, err)
		return 1
	}
	if verbose {
		cfg.Verbose = true
	}

	inv, err := parseArgs(flags.Args(), cfg.Mode, len(compile) != 0)
	if err != nil {
		fmt.Fprintln(stdout, err)
		return 1
	}
	if inv.capacity >= 0 {
		cfg.StackCapacity = inv.capacity
	}

	emu := emulator.NewEmulator()
	cfg.Apply(emu)
	emu.Tape.Input = stdin
	emu.Tape.Output = stdout
	defer emu.Close()

	if len(compile) != 0 {
		inf, err := os.Open(compile)
		if err != nil {
			log.Printf("%v: %v", compile, err)
			return 1
		}
		defer inf.Close()

		prog, err := emu.Assemble(inf)
		if err != nil {
			log.Printf("%v: %v", compile, err)
			return 1
		}

		if len(output) != 0 {
			err = os.WriteFile(output, prog.Binary(), 0644)
			if err != nil {
				log.Printf("%v: %v", output, err)
				return 1
			}
			return 0
		}

		err = emu.LoadProgram(prog)
		if err != nil {
			log.Printf("%v: %v", compile, err)
			return 1
		}
	} else {
		inf, err := os.Open(inv.file)
		if err != nil {
			fmt.Fprintln(stdout, f("Could not open file: %s", inv.file))
			return 1
		}
		defer inf.Close()

		err = emu.Load(inf)
		if err != nil {
			log.Printf("%v: %v", inv.file, err)
			return 1
		}
	}

	switch inv.mode {
	case config.MODE_TRACE:
		err = emu.Trace(stdout)
	default:
		err = emu.Run()
		fmt.Fprintln(stdout, emulator.StatusLine(emu.Cpu.Status))
	}

	if err != nil && cfg.Verbose {
		log.Printf("%v: %v", name, err)
	}

	if emu.Cpu.Status != cpu.STATUS_HALTED {
		return 1
	}

	return 0
}

func main() {
	os.Exit(run(os.Args[0], os.Args[1:], os.Stdin, os.Stdout))
}
