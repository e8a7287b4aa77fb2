// Package config handles cpu32.toml command line defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/ezrec/cpu32/emulator"
	"github.com/ezrec/cpu32/translate"
)

var f = translate.From

// FILE_NAME is the configuration file looked up by FindAndLoad.
const FILE_NAME = "cpu32.toml"

const (
	MODE_RUN   = "run"
	MODE_TRACE = "trace"
)

var (
	ErrStackCapacity = errors.New(f("stack_capacity must not be negative"))
	ErrChunk         = errors.New(f("chunk must be positive"))
	ErrMode          = errors.New(f("mode must be run or trace"))
)

// ErrUnknownKey reports a key of the file that no setting uses.
type ErrUnknownKey string

func (err ErrUnknownKey) Error() string {
	return f("unknown key %v", string(err))
}

// Config holds the command line defaults.
type Config struct {
	StackCapacity int    `toml:"stack_capacity"`
	Chunk         int    `toml:"chunk"`
	Verbose       bool   `toml:"verbose"`
	Mode          string `toml:"mode"`

	// Path is the file the configuration was loaded from (set at load time).
	Path string `toml:"-"`
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		StackCapacity: emulator.STACK_CAPACITY,
		Chunk:         emulator.RUN_CHUNK,
		Mode:          MODE_RUN,
	}
}

// Parse decodes TOML text over the defaults.
func Parse(data []byte) (*Config, error) {
	c := Default()

	meta, err := toml.Decode(string(data), c)
	if err != nil {
		return nil, err
	}

	var errs []error
	for _, key := range meta.Undecoded() {
		errs = append(errs, ErrUnknownKey(key.String()))
	}
	errs = append(errs, c.Validate())

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate checks the settings.
func (c *Config) Validate() error {
	var errs []error

	if c.StackCapacity < 0 {
		errs = append(errs, ErrStackCapacity)
	}
	if c.Chunk <= 0 {
		errs = append(errs, ErrChunk)
	}
	switch c.Mode {
	case MODE_RUN, MODE_TRACE:
	default:
		errs = append(errs, ErrMode)
	}

	return errors.Join(errs...)
}

// Load reads a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	c.Path = path

	return c, nil
}

// FindAndLoad walks up from startDir to find a cpu32.toml file and loads it.
// The defaults are returned if no file is found.
func FindAndLoad(startDir string) (*Config, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		path := filepath.Join(dir, FILE_NAME)
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return Default(), nil
		}
		dir = parent
	}
}

// Apply copies the settings into an emulator.
func (c *Config) Apply(emu *emulator.Emulator) {
	emu.StackCapacity = c.StackCapacity
	emu.Chunk = c.Chunk
	emu.Verbose = c.Verbose
}
