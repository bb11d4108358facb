// Package opcode implements the shared CHIP-8 instruction decoder.
//
// The decoder maps a 16-bit instruction word to exactly one of the 35
// documented operations and extracts its operand fields. Both the CPU
// execution engine and the disassembler dispatch over the resulting
// Instruction value, which guarantees that execution and disassembly stay
// synchronized by construction.
package opcode

import (
	"fmt"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Kind identifies one of the semantic operations of the CHIP-8
// instruction set.
type Kind uint8

// The semantic operations of the CHIP-8 instruction set.
const (
	Cls     Kind = iota // 00E0: clear display
	Ret                 // 00EE: return from subroutine
	Sys                 // 0NNN: call machine routine, ignored
	Jp                  // 1NNN: jump
	Call                // 2NNN: call subroutine
	SeByte              // 3XKK: skip if Vx == KK
	SneByte             // 4XKK: skip if Vx != KK
	SeReg               // 5XY0: skip if Vx == Vy
	LdByte              // 6XKK: Vx = KK
	AddByte             // 7XKK: Vx += KK, no carry flag
	LdReg               // 8XY0: Vx = Vy
	Or                  // 8XY1: Vx |= Vy
	And                 // 8XY2: Vx &= Vy
	Xor                 // 8XY3: Vx ^= Vy
	AddReg              // 8XY4: Vx += Vy, VF = carry
	Sub                 // 8XY5: Vx -= Vy, VF = not borrow
	Shr                 // 8XY6: Vx >>= 1, VF = shifted out bit
	Subn                // 8XY7: Vx = Vy - Vx, VF = not borrow
	Shl                 // 8XYE: Vx <<= 1, VF = shifted out bit
	SneReg              // 9XY0: skip if Vx != Vy
	LdI                 // ANNN: I = NNN
	JpV0                // BNNN: jump to NNN + V0
	Rnd                 // CXKK: Vx = random byte & KK
	Drw                 // DXYN: draw N byte sprite at (Vx, Vy)
	Skp                 // EX9E: skip if key Vx pressed
	Sknp                // EXA1: skip if key Vx not pressed
	LdVxDt              // FX07: Vx = DT
	LdVxKey             // FX0A: wait for key press, Vx = key
	LdDtVx              // FX15: DT = Vx
	LdStVx              // FX18: ST = Vx
	AddI                // FX1E: I += Vx
	LdFVx               // FX29: I = font glyph address of digit Vx
	LdBcdVx             // FX33: memory[I..I+2] = BCD of Vx
	LdIVx               // FX55: memory[I..I+X] = V0..Vx
	LdVxI               // FX65: V0..Vx = memory[I..I+X]
)

// Instruction is a decoded CHIP-8 instruction with its operand fields.
// Fields that an operation does not use are still extracted but carry no
// meaning for it.
type Instruction struct {
	Kind Kind
	Word uint16 // raw instruction word

	X   byte   // register index, nibble 2
	Y   byte   // register index, nibble 3
	N   byte   // low nibble
	KK  byte   // low byte immediate
	NNN uint16 // 12-bit address

	ins *chip8.Instruction
}

// Name returns the mnemonic name of the instruction.
func (i Instruction) Name() string {
	if i.ins == nil {
		return ""
	}
	return i.ins.Name
}

// IsSkip returns whether the instruction conditionally skips the next
// instruction.
func (i Instruction) IsSkip() bool {
	return i.ins != nil && chip8.SkipInstructions.Contains(i.ins.Name)
}

// ReadsMemory returns whether the instruction reads from memory.
func (i Instruction) ReadsMemory() bool {
	return i.ins != nil && chip8.MemoryReadInstructions.Contains(i.ins.Name)
}

// WritesMemory returns whether the instruction writes to memory.
func (i Instruction) WritesMemory() bool {
	return i.ins != nil && chip8.MemoryWriteInstructions.Contains(i.ins.Name)
}

// UnknownOpcodeError is returned for instruction words that do not match
// any documented CHIP-8 instruction.
type UnknownOpcodeError struct {
	Word uint16
}

func (e UnknownOpcodeError) Error() string {
	return fmt.Sprintf("unknown opcode 0x%04X", e.Word)
}

// entry describes one decode table entry. An instruction word matches the
// entry if word & mask == value.
type entry struct {
	mask  uint16
	value uint16
	kind  Kind
	ins   *chip8.Instruction
}

// decodeTable is indexed by the top nibble of the instruction word.
// Families that sub-dispatch on the low nibble or low byte list one entry
// per sub-operation, most specific mask first.
var decodeTable = [16][]entry{
	0x0: {
		{0xFFFF, 0x00E0, Cls, chip8.Cls},
		{0xFFFF, 0x00EE, Ret, chip8.Ret},
		// SYS has no instruction metadata, the operation is ignored by
		// the CPU and only rendered by the disassembler
		{0xF000, 0x0000, Sys, nil},
	},
	0x1: {{0xF000, 0x1000, Jp, chip8.Jp}},
	0x2: {{0xF000, 0x2000, Call, chip8.Call}},
	0x3: {{0xF000, 0x3000, SeByte, chip8.Se}},
	0x4: {{0xF000, 0x4000, SneByte, chip8.Sne}},
	0x5: {{0xF00F, 0x5000, SeReg, chip8.Se}},
	0x6: {{0xF000, 0x6000, LdByte, chip8.Ld}},
	0x7: {{0xF000, 0x7000, AddByte, chip8.Add}},
	0x8: {
		{0xF00F, 0x8000, LdReg, chip8.Ld},
		{0xF00F, 0x8001, Or, chip8.Or},
		{0xF00F, 0x8002, And, chip8.And},
		{0xF00F, 0x8003, Xor, chip8.Xor},
		{0xF00F, 0x8004, AddReg, chip8.Add},
		{0xF00F, 0x8005, Sub, chip8.Sub},
		{0xF00F, 0x8006, Shr, chip8.Shr},
		{0xF00F, 0x8007, Subn, chip8.Subn},
		{0xF00F, 0x800E, Shl, chip8.Shl},
	},
	0x9: {{0xF00F, 0x9000, SneReg, chip8.Sne}},
	0xA: {{0xF000, 0xA000, LdI, chip8.Ld}},
	0xB: {{0xF000, 0xB000, JpV0, chip8.Jp}},
	0xC: {{0xF000, 0xC000, Rnd, chip8.Rnd}},
	0xD: {{0xF000, 0xD000, Drw, chip8.Drw}},
	0xE: {
		{0xF0FF, 0xE09E, Skp, chip8.Skp},
		{0xF0FF, 0xE0A1, Sknp, chip8.Sknp},
	},
	0xF: {
		{0xF0FF, 0xF007, LdVxDt, chip8.Ld},
		{0xF0FF, 0xF00A, LdVxKey, chip8.Ld},
		{0xF0FF, 0xF015, LdDtVx, chip8.Ld},
		{0xF0FF, 0xF018, LdStVx, chip8.Ld},
		{0xF0FF, 0xF01E, AddI, chip8.Add},
		{0xF0FF, 0xF029, LdFVx, chip8.Ld},
		{0xF0FF, 0xF033, LdBcdVx, chip8.Ld},
		{0xF0FF, 0xF055, LdIVx, chip8.Ld},
		{0xF0FF, 0xF065, LdVxI, chip8.Ld},
	},
}

// Decode decodes a 16-bit instruction word into its semantic operation and
// operand fields. Words that do not match any documented instruction
// return an UnknownOpcodeError.
func Decode(word uint16) (Instruction, error) {
	firstNibble := word >> 12
	for _, e := range decodeTable[firstNibble] {
		if word&e.mask != e.value {
			continue
		}

		return Instruction{
			Kind: e.kind,
			Word: word,
			X:    byte(word >> 8 & 0xF),
			Y:    byte(word >> 4 & 0xF),
			N:    byte(word & 0xF),
			KK:   byte(word & 0xFF),
			NNN:  word & 0xFFF,
			ins:  e.ins,
		}, nil
	}

	return Instruction{Word: word}, UnknownOpcodeError{Word: word}
}
