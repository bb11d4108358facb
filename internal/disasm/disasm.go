// Package disasm implements the CHIP-8 disassembler. It shares the decode
// table of the opcode package with the CPU execution engine, so the
// rendered mnemonics are a faithful textual trace of what the CPU would
// execute.
package disasm

import (
	"fmt"
	"io"

	"github.com/retroenv/chip8go/internal/memory"
	"github.com/retroenv/chip8go/internal/opcode"
)

// Disassembler renders the program region of a memory instance as one
// mnemonic line per instruction.
type Disassembler struct {
	mem    *memory.Memory
	cursor uint16 // address of the next instruction to render
	end    uint16 // first address past the loaded program
}

// New returns a new disassembler for the given memory and program length
// in bytes. The cursor starts at the program start address.
func New(mem *memory.Memory, programLength int) *Disassembler {
	return &Disassembler{
		mem:    mem,
		cursor: memory.ProgramStart,
		end:    memory.ProgramStart + uint16(programLength),
	}
}

// Disassemble renders all instructions of the program region to the given
// writer, one line per instruction in the format
// "0x<address>: (0x<word>) <mnemonic>". Words that do not decode are
// rendered as UNKNOWN instead of faulting, the disassembler has to cope
// with data embedded in the code stream.
func (d *Disassembler) Disassemble(w io.Writer) error {
	for d.cursor < d.end {
		addr, word := d.next()

		text := Unknown(word)
		if ins, err := opcode.Decode(word); err == nil {
			text = Mnemonic(ins)
		}

		if _, err := fmt.Fprintf(w, "0x%X: (0x%04X) %s\n", addr, word, text); err != nil {
			return fmt.Errorf("writing disassembly at 0x%03X: %w", addr, err)
		}
	}
	return nil
}

// next fetches the big-endian instruction word at the cursor and advances
// the cursor by 2. It returns the instruction address and the word.
func (d *Disassembler) next() (uint16, uint16) {
	hi := uint16(d.mem.LoadByte(d.cursor)) << 8
	low := uint16(d.mem.LoadByte(d.cursor + 1))
	addr := d.cursor
	d.cursor += 2
	return addr, hi | low
}
