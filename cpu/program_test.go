package cpu

import (
	"encoding/binary"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testProgram() *Program {
	return &Program{
		Opcodes: []Opcode{
			{LineNo: 1, Ip: 0, Words: []string{"movr", "a", "5"}, Cells: []int32{9, 0, 5}},
			{LineNo: 2, Ip: 3, Words: []string{"add", "a"}, Cells: []int32{2, 0}},
			{LineNo: 4, Ip: 5, Words: []string{"halt"}, Cells: []int32{1}},
		},
	}
}

func TestProgram_Debug(t *testing.T) {
	assert := assert.New(t)

	prog := testProgram()

	dbg := prog.Debug(0)
	assert.NotNil(dbg.Opcode)
	assert.Equal(1, dbg.LineNo)
	assert.Equal(0, dbg.Index)

	dbg = prog.Debug(2)
	assert.NotNil(dbg.Opcode)
	assert.Equal(1, dbg.LineNo)
	assert.Equal(2, dbg.Index)

	dbg = prog.Debug(4)
	assert.NotNil(dbg.Opcode)
	assert.Equal(2, dbg.LineNo)
	assert.Equal(1, dbg.Index)

	dbg = prog.Debug(5)
	assert.NotNil(dbg.Opcode)
	assert.Equal(4, dbg.LineNo)
	assert.Equal(0, dbg.Index)
}

func TestProgram_Debug_NotFound(t *testing.T) {
	assert := assert.New(t)

	prog := testProgram()

	for _, ip := range []int{-1, 6, 1000} {
		dbg := prog.Debug(ip)
		assert.Nil(dbg.Opcode)
		assert.Equal(0, dbg.Index)
	}
}

func TestProgram_Codes(t *testing.T) {
	assert := assert.New(t)

	prog := testProgram()

	ips := []int{}
	cells := []int32{}
	for ip, cell := range prog.Codes() {
		ips = append(ips, ip)
		cells = append(cells, cell)
	}

	assert.Equal([]int{0, 1, 2, 3, 4, 5}, ips)
	assert.Equal([]int32{9, 0, 5, 2, 0, 1}, cells)
	assert.Equal(cells, prog.Cells())
}

func TestProgram_Codes_EarlyReturn(t *testing.T) {
	assert := assert.New(t)

	count := 0
	for range testProgram().Codes() {
		count++
		if count == 2 {
			break
		}
	}

	assert.Equal(2, count)
}

func TestProgram_Codes_Empty(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{}

	count := 0
	for range prog.Codes() {
		count++
	}

	assert.Equal(0, count)
	assert.Nil(prog.Cells())
	assert.Nil(prog.Binary())
}

func TestProgram_Binary(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Opcodes: []Opcode{
			{LineNo: 1, Ip: 0, Words: []string{".word", "-2", "0x01020304"}, Cells: []int32{-2, 0x01020304}},
		},
	}

	bins := prog.Binary()
	assert.Equal([]byte{0xfe, 0xff, 0xff, 0xff, 0x04, 0x03, 0x02, 0x01}, bins)
	assert.Equal(uint32(0xfffffffe), binary.LittleEndian.Uint32(bins))
}

func TestProgram_Binary_Load(t *testing.T) {
	assert := assert.New(t)

	prog := testProgram()

	mem, bottom, err := NewMemory(strings.NewReader(string(prog.Binary())), 16)
	assert.NoError(err)
	assert.Equal(prog.Cells(), mem.Cells[:6])

	cpu, err := NewCpu(mem, bottom, 16)
	assert.NoError(err)
	assert.Equal(int64(3), cpu.Run(10))
	assert.Equal(int32(10), cpu.GetRegister(REG_A))
}

func TestDisassemble(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		cells []int32
		ip    int
		text  string
		width int
	}){
		{[]int32{9, 0, 5}, 0, "movr A 5", 3},
		{[]int32{0, 1}, 1, "halt", 1},
		{[]int32{8, -4}, 0, "loop -4", 2},
		{[]int32{16, 1, 3}, 0, "swap B D", 3},
		{[]int32{16, 1, 7}, 0, "swap B 7", 3},
		{[]int32{10, 2, -1}, 0, "load C -1", 3},
		{[]int32{99}, 0, ".word 99", 1},
		{[]int32{-1}, 0, ".word -1", 1},
		{[]int32{9, 0}, 0, ".word 9", 1},
		{[]int32{1}, 1, "", 0},
		{[]int32{1}, -1, "", 0},
	}

	for _, entry := range table {
		text, width := Disassemble(entry.cells, entry.ip)
		assert.Equal(entry.text, text, "%v", entry.cells)
		assert.Equal(entry.width, width, "%v", entry.cells)
	}
}

func TestProgram_Integration_ParseAndDebug(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	program := strings.Join([]string{
		"movr a 0x100",
		"; comment",
		"movr b 0x200",
		"add b",
	}, "\n")

	prog, err := asm.Parse(strings.NewReader(program))
	assert.NoError(err)

	dbg := prog.Debug(0)
	assert.NotNil(dbg.Opcode)
	assert.Equal(1, dbg.LineNo)

	dbg = prog.Debug(3)
	assert.NotNil(dbg.Opcode)
	assert.Equal(3, dbg.LineNo)

	dbg = prog.Debug(7)
	assert.NotNil(dbg.Opcode)
	assert.Equal(4, dbg.LineNo)
	assert.Equal(1, dbg.Index)
}
