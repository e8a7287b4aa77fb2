package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/cpu32/emulator"
)

func TestDefault(t *testing.T) {
	assert := assert.New(t)

	c := Default()
	assert.Equal(1024, c.StackCapacity)
	assert.Equal(5000, c.Chunk)
	assert.False(c.Verbose)
	assert.Equal(MODE_RUN, c.Mode)
	assert.NoError(c.Validate())
}

func TestParse(t *testing.T) {
	assert := assert.New(t)

	c, err := Parse([]byte(`
stack_capacity = 64
chunk = 100
verbose = true
mode = "trace"
`))
	assert.NoError(err)
	assert.Equal(64, c.StackCapacity)
	assert.Equal(100, c.Chunk)
	assert.True(c.Verbose)
	assert.Equal(MODE_TRACE, c.Mode)

	// Missing keys keep their defaults.
	c, err = Parse([]byte(`verbose = true`))
	assert.NoError(err)
	assert.Equal(1024, c.StackCapacity)
	assert.Equal(5000, c.Chunk)

	c, err = Parse(nil)
	assert.NoError(err)
	assert.Equal(Default(), c)
}

func TestParse_Errors(t *testing.T) {
	assert := assert.New(t)

	_, err := Parse([]byte(`stack_capacity = -1`))
	assert.ErrorIs(err, ErrStackCapacity)

	_, err = Parse([]byte(`chunk = 0`))
	assert.ErrorIs(err, ErrChunk)

	_, err = Parse([]byte(`mode = "walk"`))
	assert.ErrorIs(err, ErrMode)

	_, err = Parse([]byte("chunk = 0\nmode = \"walk\"\n"))
	assert.ErrorIs(err, ErrChunk)
	assert.ErrorIs(err, ErrMode)

	_, err = Parse([]byte(`stack = 1`))
	assert.ErrorIs(err, ErrUnknownKey("stack"))

	_, err = Parse([]byte(`chunk = "many"`))
	assert.Error(err)

	_, err = Parse([]byte(`chunk = `))
	assert.Error(err)
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	path := filepath.Join(dir, FILE_NAME)
	if err := os.WriteFile(path, []byte("stack_capacity = 16\n"), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	assert.NoError(err)
	assert.Equal(16, c.StackCapacity)
	assert.Equal(path, c.Path)

	_, err = Load(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(err, os.ErrNotExist)

	if err := os.WriteFile(path, []byte("chunk = -5\n"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err = Load(path)
	assert.ErrorIs(err, ErrChunk)
}

func TestFindAndLoad(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	sub := filepath.Join(dir, "a", "b")
	if err := os.MkdirAll(sub, 0755); err != nil {
		t.Fatal(err)
	}

	// Nothing to find below the temporary directory.
	c, err := FindAndLoad(sub)
	assert.NoError(err)
	if c.Path == "" {
		assert.Equal(Default(), c)
	}

	path := filepath.Join(dir, FILE_NAME)
	if err := os.WriteFile(path, []byte("mode = \"trace\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	c, err = FindAndLoad(sub)
	assert.NoError(err)
	assert.Equal(MODE_TRACE, c.Mode)
	assert.Equal(path, c.Path)
}

func TestApply(t *testing.T) {
	assert := assert.New(t)

	c := &Config{StackCapacity: 8, Chunk: 3, Verbose: true, Mode: MODE_RUN}
	emu := emulator.NewEmulator()
	c.Apply(emu)

	assert.Equal(8, emu.StackCapacity)
	assert.Equal(3, emu.Chunk)
	assert.True(emu.Verbose)
}
