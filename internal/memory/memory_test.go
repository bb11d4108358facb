package memory

import (
	"bytes"
	"testing"

	"github.com/retroenv/chip8go/internal/rom"
	"github.com/retroenv/retrogolib/assert"
)

func TestStoreAndLoadByte(t *testing.T) {
	mem := New()

	mem.StoreByte(0x200, 0xAB)
	assert.Equal(t, 0xAB, mem.LoadByte(0x200))
	assert.Equal(t, 0x00, mem.LoadByte(0x201))
}

func TestAddressMasking(t *testing.T) {
	mem := New()

	// addresses beyond the 12 bit space alias into it
	mem.StoreByte(0x1200, 0xCD)
	assert.Equal(t, 0xCD, mem.LoadByte(0x200))
	assert.Equal(t, 0xCD, mem.LoadByte(0xF200))

	mem.StoreByte(0xFFF, 0x11)
	assert.Equal(t, 0x11, mem.LoadByte(0x1FFF))
}

func TestFontSprites(t *testing.T) {
	r, err := rom.Load(bytes.NewReader([]byte{0x00, 0xE0}), "test.ch8")
	assert.NoError(t, err)
	mem := NewFromROM(r)

	// glyph 0 starts at the font base address
	zero := []byte{0xF0, 0x90, 0x90, 0x90, 0xF0}
	for i, want := range zero {
		assert.Equal(t, want, mem.LoadByte(FontStart+uint16(i)))
	}

	// glyph F is the last glyph of the table
	f := []byte{0xF0, 0x80, 0xF0, 0x80, 0x80}
	start := uint16(0xF * GlyphSize)
	for i, want := range f {
		assert.Equal(t, want, mem.LoadByte(start+uint16(i)))
	}
}

func TestROMPlacement(t *testing.T) {
	data := []byte{0x12, 0x34, 0x56}
	r, err := rom.Load(bytes.NewReader(data), "test.ch8")
	assert.NoError(t, err)
	mem := NewFromROM(r)

	assert.Equal(t, 0x12, mem.LoadByte(ProgramStart))
	assert.Equal(t, 0x34, mem.LoadByte(ProgramStart+1))
	assert.Equal(t, 0x56, mem.LoadByte(ProgramStart+2))
	assert.Equal(t, 0x00, mem.LoadByte(ProgramStart+3))
}

func TestNewIsZeroed(t *testing.T) {
	mem := New()

	for addr := uint16(0); addr < Size; addr++ {
		if mem.LoadByte(addr) != 0 {
			t.Fatalf("address 0x%03X is not zero", addr)
		}
	}
}
