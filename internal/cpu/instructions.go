package cpu

import (
	"fmt"

	"github.com/retroenv/chip8go/internal/memory"
	"github.com/retroenv/chip8go/internal/opcode"
)

// execute dispatches a decoded instruction to its implementation.
// Opcode semantics follow the CHIP-8 technical reference at
// http://devernay.free.fr/hacks/chip8/C8TECH10.HTM
func (c *CPU) execute(ins opcode.Instruction) (Status, error) {
	switch ins.Kind {
	case opcode.Cls:
		c.display.Clear()
	case opcode.Ret:
		return StatusRunning, c.ret()
	case opcode.Sys:
		// jump to a machine code routine, commonly ignored
	case opcode.Jp:
		c.pc = ins.NNN
	case opcode.Call:
		return StatusRunning, c.call(ins.NNN)
	case opcode.SeByte:
		c.skipIf(c.v[ins.X] == ins.KK)
	case opcode.SneByte:
		c.skipIf(c.v[ins.X] != ins.KK)
	case opcode.SeReg:
		c.skipIf(c.v[ins.X] == c.v[ins.Y])
	case opcode.LdByte:
		c.v[ins.X] = ins.KK
	case opcode.AddByte:
		c.v[ins.X] += ins.KK // wraps, no carry flag
	case opcode.LdReg:
		c.v[ins.X] = c.v[ins.Y]
	case opcode.Or:
		c.v[ins.X] |= c.v[ins.Y]
	case opcode.And:
		c.v[ins.X] &= c.v[ins.Y]
	case opcode.Xor:
		c.v[ins.X] ^= c.v[ins.Y]
	case opcode.AddReg:
		c.addReg(ins.X, ins.Y)
	case opcode.Sub:
		c.sub(ins.X, ins.Y)
	case opcode.Shr:
		c.shr(ins.X)
	case opcode.Subn:
		c.subn(ins.X, ins.Y)
	case opcode.Shl:
		c.shl(ins.X)
	case opcode.SneReg:
		c.skipIf(c.v[ins.X] != c.v[ins.Y])
	case opcode.LdI:
		c.i = ins.NNN
	case opcode.JpV0:
		c.pc = ins.NNN + uint16(c.v[0])
	case opcode.Rnd:
		c.v[ins.X] = byte(c.rng.Intn(256)) & ins.KK
	case opcode.Drw:
		c.draw(ins.X, ins.Y, ins.N)
	case opcode.Skp:
		c.skipIf(c.input.KeyStates()[c.v[ins.X]&0xF])
	case opcode.Sknp:
		c.skipIf(!c.input.KeyStates()[c.v[ins.X]&0xF])
	case opcode.LdVxDt:
		c.v[ins.X] = c.dt
	case opcode.LdVxKey:
		return c.waitKey(ins.X), nil
	case opcode.LdDtVx:
		c.dt = c.v[ins.X]
	case opcode.LdStVx:
		c.st = c.v[ins.X]
	case opcode.AddI:
		c.i += uint16(c.v[ins.X])
	case opcode.LdFVx:
		c.i = uint16(c.v[ins.X]) * memory.GlyphSize
	case opcode.LdBcdVx:
		c.storeBCD(ins.X)
	case opcode.LdIVx:
		c.storeRegisters(ins.X)
	case opcode.LdVxI:
		c.loadRegisters(ins.X)
	default:
		return StatusRunning, opcode.UnknownOpcodeError{Word: ins.Word}
	}

	return StatusRunning, nil
}

// skipIf advances PC past the next instruction if the condition holds.
func (c *CPU) skipIf(condition bool) {
	if condition {
		c.pc += 2
	}
}

// call pushes the current PC, which already points at the instruction
// following the CALL, and jumps to the subroutine address.
func (c *CPU) call(addr uint16) error {
	if err := c.stack.push(c.pc); err != nil {
		return fmt.Errorf("calling subroutine at 0x%03X: %w", addr, err)
	}
	c.pc = addr
	return nil
}

// ret restores PC from the most recent CALL.
func (c *CPU) ret() error {
	addr, err := c.stack.pop()
	if err != nil {
		return fmt.Errorf("returning from subroutine: %w", err)
	}
	c.pc = addr
	return nil
}

// addReg sets Vx = Vx + Vy with VF = carry. The result is truncated to
// 8 bits, VF is set if the 9-bit sum exceeds 0xFF.
func (c *CPU) addReg(x, y byte) {
	sum := uint16(c.v[x]) + uint16(c.v[y])
	c.v[0xF] = 0
	if sum > 0xFF {
		c.v[0xF] = 1
	}
	c.v[x] = byte(sum)
}

// sub sets Vx = Vx - Vy with VF = not borrow: VF is 1 if Vx > Vy.
// The result wraps on underflow.
func (c *CPU) sub(x, y byte) {
	vx, vy := c.v[x], c.v[y]
	c.v[0xF] = 0
	if vx > vy {
		c.v[0xF] = 1
	}
	c.v[x] = vx - vy
}

// subn sets Vx = Vy - Vx with VF = not borrow: VF is 1 if Vy > Vx.
// The result wraps on underflow.
func (c *CPU) subn(x, y byte) {
	vx, vy := c.v[x], c.v[y]
	c.v[0xF] = 0
	if vy > vx {
		c.v[0xF] = 1
	}
	c.v[x] = vy - vx
}

// shr shifts Vx right by one, capturing the shifted out least significant
// bit in VF before mutating the register.
func (c *CPU) shr(x byte) {
	val := c.v[x]
	c.v[0xF] = val & 0x1
	c.v[x] = val >> 1
}

// shl shifts Vx left by one, capturing the shifted out most significant
// bit in VF before mutating the register.
func (c *CPU) shl(x byte) {
	val := c.v[x]
	c.v[0xF] = val >> 7
	c.v[x] = val << 1
}

// waitKey starts or completes a key wait. If a key is already pressed the
// lowest index is stored immediately, otherwise the CPU suspends until a
// later Step observes a pressed key.
func (c *CPU) waitKey(x byte) Status {
	c.awaitingKey = true
	c.waitReg = x
	if c.pollKey() {
		return StatusRunning
	}
	return StatusAwaitingKey
}

// draw reads an n byte sprite from memory at I and forwards it to the
// display, storing the collision report in VF.
func (c *CPU) draw(x, y, n byte) {
	sprite := make([]byte, n)
	for idx := range sprite {
		sprite[idx] = c.mem.LoadByte(c.i + uint16(idx))
	}

	c.v[0xF] = 0
	if c.display.Draw(c.v[x], c.v[y], sprite) {
		c.v[0xF] = 1
	}
}

// storeBCD writes the three decimal digits of Vx to memory at I, I+1 and
// I+2 (hundreds, tens, ones), zero padded for values under 100.
// I itself is not modified.
func (c *CPU) storeBCD(x byte) {
	val := c.v[x]
	c.mem.StoreByte(c.i, val/100%10)
	c.mem.StoreByte(c.i+1, val/10%10)
	c.mem.StoreByte(c.i+2, val%10)
}

// storeRegisters copies V0 through Vx inclusive to memory starting at I,
// in ascending register order. I itself is not modified.
func (c *CPU) storeRegisters(x byte) {
	for reg := uint16(0); reg <= uint16(x); reg++ {
		c.mem.StoreByte(c.i+reg, c.v[reg])
	}
}

// loadRegisters copies memory starting at I into V0 through Vx inclusive,
// in ascending register order. I itself is not modified.
func (c *CPU) loadRegisters(x byte) {
	for reg := uint16(0); reg <= uint16(x); reg++ {
		c.v[reg] = c.mem.LoadByte(c.i + reg)
	}
}
