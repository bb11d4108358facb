package disasm

import (
	"bytes"
	"strings"
	"testing"

	"github.com/retroenv/chip8go/internal/memory"
	"github.com/retroenv/chip8go/internal/opcode"
	"github.com/retroenv/chip8go/internal/rom"
	"github.com/retroenv/retrogolib/assert"
)

func TestMnemonic(t *testing.T) {
	tests := []struct {
		word     uint16
		expected string
	}{
		{0x00E0, "CLS"},
		{0x00EE, "RET"},
		{0x0123, "SYS 0x123"},
		{0x1ABC, "JP 0xABC"},
		{0x2FFF, "CALL 0xFFF"},
		{0x30AF, "SE V0, 0xAF"},
		{0x4B12, "SNE VB, 0x12"},
		{0x5AB0, "SE VA, VB"},
		{0x6AFF, "LD VA, 0xFF"},
		{0x7A09, "ADD VA, 0x09"},
		{0x8AB0, "LD VA, VB"},
		{0x8AB1, "OR VA, VB"},
		{0x8AB2, "AND VA, VB"},
		{0x8AB3, "XOR VA, VB"},
		{0x8AB4, "ADD VA, VB"},
		{0x8AB5, "SUB VA, VB"},
		{0x8A06, "SHR VA"},
		{0x8AB7, "SUBN VA, VB"},
		{0x8A0E, "SHL VA"},
		{0x9AB0, "SNE VA, VB"},
		{0xA2EA, "LD I, 0x2EA"},
		{0xB021, "JP V0, 0x021"},
		{0xCA77, "RND VA, 0x77"},
		{0xD125, "DRW V1, V2, 0x5"},
		{0xE09E, "SKP V0"},
		{0xE0A1, "SKNP V0"},
		{0xF507, "LD V5, DT"},
		{0xF50A, "LD V5, K"},
		{0xF515, "LD DT, V5"},
		{0xF518, "LD ST, V5"},
		{0xF51E, "ADD I, V5"},
		{0xF529, "LD F, V5"},
		{0xF533, "LD B, V5"},
		{0xF755, "LD [I], V7"},
		{0xF765, "LD V7, [I]"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			ins, err := opcode.Decode(tt.word)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, Mnemonic(ins))
		})
	}
}

func TestUnknown(t *testing.T) {
	assert.Equal(t, "UNKNOWN 0xE0FF", Unknown(0xE0FF))
}

func newTestMemory(t *testing.T, program []byte) (*memory.Memory, int) {
	t.Helper()

	r, err := rom.Load(bytes.NewReader(program), "test.ch8")
	assert.NoError(t, err)
	return memory.NewFromROM(r), r.Size()
}

func TestDisassemble(t *testing.T) {
	program := []byte{
		0x00, 0xE0, // CLS
		0xA2, 0xEA, // LD I, 0x2EA
		0xD1, 0x25, // DRW V1, V2, 0x5
		0x12, 0x00, // JP 0x200
	}
	mem, size := newTestMemory(t, program)

	var buf bytes.Buffer
	assert.NoError(t, New(mem, size).Disassemble(&buf))

	expected := "0x200: (0x00E0) CLS\n" +
		"0x202: (0xA2EA) LD I, 0x2EA\n" +
		"0x204: (0xD125) DRW V1, V2, 0x5\n" +
		"0x206: (0x1200) JP 0x200\n"
	assert.Equal(t, expected, buf.String())
}

func TestDisassembleUnknownWords(t *testing.T) {
	program := []byte{
		0x60, 0x42, // LD V0, 0x42
		0xE0, 0xFF, // data that does not decode
		0x00, 0xEE, // RET
	}
	mem, size := newTestMemory(t, program)

	var buf bytes.Buffer
	assert.NoError(t, New(mem, size).Disassemble(&buf))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 3)
	assert.Equal(t, "0x202: (0xE0FF) UNKNOWN 0xE0FF", lines[1])
	assert.Equal(t, "0x204: (0x00EE) RET", lines[2])
}

func TestDisassembleEmptyProgram(t *testing.T) {
	mem, size := newTestMemory(t, nil)

	var buf bytes.Buffer
	assert.NoError(t, New(mem, size).Disassemble(&buf))
	assert.Equal(t, "", buf.String())
}

func TestDisassembleOddLength(t *testing.T) {
	// a trailing single byte is rendered as a word padded with the zero
	// byte that follows it in memory
	program := []byte{
		0x00, 0xE0,
		0x12,
	}
	mem, size := newTestMemory(t, program)

	var buf bytes.Buffer
	assert.NoError(t, New(mem, size).Disassemble(&buf))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, "0x202: (0x1200) JP 0x200", lines[1])
}
