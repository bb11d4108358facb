package disasm

import (
	"fmt"

	"github.com/retroenv/chip8go/internal/opcode"
)

// Mnemonic renders a decoded instruction as its assembly mnemonic with
// operands. The operand grouping matches what the CPU execution engine
// consumes: register indices as VX, immediates as 0x%02X and addresses as
// 0x%03X.
func Mnemonic(ins opcode.Instruction) string {
	switch ins.Kind {
	case opcode.Cls:
		return "CLS"
	case opcode.Ret:
		return "RET"
	case opcode.Sys:
		return fmt.Sprintf("SYS 0x%03X", ins.NNN)
	case opcode.Jp:
		return fmt.Sprintf("JP 0x%03X", ins.NNN)
	case opcode.Call:
		return fmt.Sprintf("CALL 0x%03X", ins.NNN)
	case opcode.SeByte:
		return fmt.Sprintf("SE V%X, 0x%02X", ins.X, ins.KK)
	case opcode.SneByte:
		return fmt.Sprintf("SNE V%X, 0x%02X", ins.X, ins.KK)
	case opcode.SeReg:
		return fmt.Sprintf("SE V%X, V%X", ins.X, ins.Y)
	case opcode.LdByte:
		return fmt.Sprintf("LD V%X, 0x%02X", ins.X, ins.KK)
	case opcode.AddByte:
		return fmt.Sprintf("ADD V%X, 0x%02X", ins.X, ins.KK)
	case opcode.LdReg:
		return fmt.Sprintf("LD V%X, V%X", ins.X, ins.Y)
	case opcode.Or:
		return fmt.Sprintf("OR V%X, V%X", ins.X, ins.Y)
	case opcode.And:
		return fmt.Sprintf("AND V%X, V%X", ins.X, ins.Y)
	case opcode.Xor:
		return fmt.Sprintf("XOR V%X, V%X", ins.X, ins.Y)
	case opcode.AddReg:
		return fmt.Sprintf("ADD V%X, V%X", ins.X, ins.Y)
	case opcode.Sub:
		return fmt.Sprintf("SUB V%X, V%X", ins.X, ins.Y)
	case opcode.Shr:
		return fmt.Sprintf("SHR V%X", ins.X)
	case opcode.Subn:
		return fmt.Sprintf("SUBN V%X, V%X", ins.X, ins.Y)
	case opcode.Shl:
		return fmt.Sprintf("SHL V%X", ins.X)
	case opcode.SneReg:
		return fmt.Sprintf("SNE V%X, V%X", ins.X, ins.Y)
	case opcode.LdI:
		return fmt.Sprintf("LD I, 0x%03X", ins.NNN)
	case opcode.JpV0:
		return fmt.Sprintf("JP V0, 0x%03X", ins.NNN)
	case opcode.Rnd:
		return fmt.Sprintf("RND V%X, 0x%02X", ins.X, ins.KK)
	case opcode.Drw:
		return fmt.Sprintf("DRW V%X, V%X, 0x%X", ins.X, ins.Y, ins.N)
	case opcode.Skp:
		return fmt.Sprintf("SKP V%X", ins.X)
	case opcode.Sknp:
		return fmt.Sprintf("SKNP V%X", ins.X)
	case opcode.LdVxDt:
		return fmt.Sprintf("LD V%X, DT", ins.X)
	case opcode.LdVxKey:
		return fmt.Sprintf("LD V%X, K", ins.X)
	case opcode.LdDtVx:
		return fmt.Sprintf("LD DT, V%X", ins.X)
	case opcode.LdStVx:
		return fmt.Sprintf("LD ST, V%X", ins.X)
	case opcode.AddI:
		return fmt.Sprintf("ADD I, V%X", ins.X)
	case opcode.LdFVx:
		return fmt.Sprintf("LD F, V%X", ins.X)
	case opcode.LdBcdVx:
		return fmt.Sprintf("LD B, V%X", ins.X)
	case opcode.LdIVx:
		return fmt.Sprintf("LD [I], V%X", ins.X)
	case opcode.LdVxI:
		return fmt.Sprintf("LD V%X, [I]", ins.X)
	default:
		return Unknown(ins.Word)
	}
}

// Unknown renders an instruction word that does not decode to any
// documented instruction.
func Unknown(word uint16) string {
	return fmt.Sprintf("UNKNOWN 0x%04X", word)
}
