// Package memory implements the flat 4KB address space of the CHIP-8.
package memory

import (
	"github.com/retroenv/chip8go/internal/rom"
)

const (
	// Size is the total memory size of the CHIP-8, 4 kilobytes.
	Size = 0x1000

	// AddressMask masks addresses to the 12 bits the CHIP-8 can address.
	AddressMask = 0xFFF

	// ProgramStart is the address at which programs are loaded and
	// execution begins.
	ProgramStart = 0x200

	// FontStart is the address of the builtin font glyph table.
	FontStart = 0x000

	// GlyphSize is the size of one font glyph sprite in bytes.
	GlyphSize = 5
)

// fontSprites contains the 5-byte sprites for the hexadecimal digits 0-F.
var fontSprites = [...]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// Memory is the emulated RAM of the CHIP-8.
type Memory struct {
	data [Size]byte
}

// New returns a new all-zero memory.
func New() *Memory {
	return &Memory{}
}

// NewFromROM returns a new memory with the font glyph table at FontStart
// and the ROM bytes copied to the program region at ProgramStart.
// Bytes beyond the ROM length remain zero.
func NewFromROM(r *rom.ROM) *Memory {
	m := &Memory{}
	copy(m.data[FontStart:], fontSprites[:])
	copy(m.data[ProgramStart:], r.Bytes())
	return m
}

// LoadByte loads the byte at the given address. Only the lowest 12 bits of
// the address are used, out of range addresses alias into the 4KB space.
func (m *Memory) LoadByte(addr uint16) byte {
	return m.data[addr&AddressMask]
}

// StoreByte stores a byte at the given address. Only the lowest 12 bits of
// the address are used, out of range addresses alias into the 4KB space.
func (m *Memory) StoreByte(addr uint16, value byte) {
	m.data[addr&AddressMask] = value
}
