// Package cpu implements the CHIP-8 execution engine.
package cpu

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/retroenv/chip8go/internal/memory"
	"github.com/retroenv/chip8go/internal/opcode"
)

// Input is the input device capability the CPU consumes. It reports a
// snapshot of the pressed state of the 16 CHIP-8 keys.
type Input interface {
	KeyStates() [16]bool
}

// Display is the rendering capability the CPU consumes. Draw reports
// whether any pixel was erased by the sprite, for the VF collision flag.
type Display interface {
	Clear()
	Draw(x, y byte, sprite []byte) bool
}

// Status describes the execution state after a Step call.
type Status uint8

const (
	// StatusRunning indicates that the instruction completed and the next
	// Step will fetch a new instruction.
	StatusRunning Status = iota

	// StatusAwaitingKey indicates that the CPU is blocked on a key wait
	// instruction. Subsequent Step calls poll the input device until a key
	// is pressed, without fetching instructions or ticking timers.
	StatusAwaitingKey
)

// CPU is the emulated CPU of the CHIP-8. It owns the register file,
// program counter, call stack and timers and consumes a memory instance
// and the input and display capabilities.
type CPU struct {
	mem *memory.Memory

	pc    uint16    // program counter
	v     [16]byte  // general purpose registers V0-VF
	i     uint16    // address register I
	stack callStack // subroutine return addresses
	dt    byte      // delay timer, counts down to 0
	st    byte      // sound timer, counts down to 0

	rng     *rand.Rand
	input   Input
	display Display

	awaitingKey bool
	waitReg     byte // register receiving the key for a pending key wait
}

// New returns a new CPU executing from the program start address.
// A nil rng selects a time seeded source; tests pass a fixed seed to make
// the RND instruction deterministic.
func New(mem *memory.Memory, input Input, display Display, rng *rand.Rand) *CPU {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &CPU{
		mem:     mem,
		pc:      memory.ProgramStart,
		rng:     rng,
		input:   input,
		display: display,
	}
}

// Step executes one instruction: it fetches the big-endian word at PC,
// advances PC by 2, dispatches the decoded instruction and decrements the
// timers. Faults caused by the ROM (unknown opcode, call stack overflow or
// underflow) are returned as errors; the CPU state is left as it was when
// the fault occurred so the caller can dump it for diagnostics.
func (c *CPU) Step() (Status, error) {
	if c.awaitingKey {
		if !c.pollKey() {
			return StatusAwaitingKey, nil
		}
		c.tickTimers()
		return StatusRunning, nil
	}

	addr := c.pc
	word := c.fetch()
	ins, err := opcode.Decode(word)
	if err != nil {
		return StatusRunning, fmt.Errorf("decoding instruction at 0x%03X: %w", addr, err)
	}

	status, err := c.execute(ins)
	if err != nil {
		return StatusRunning, fmt.Errorf("executing instruction at 0x%03X: %w", addr, err)
	}
	if status == StatusAwaitingKey {
		return status, nil
	}

	c.tickTimers()
	return StatusRunning, nil
}

// fetch reads the big-endian instruction word at PC and advances PC by 2.
func (c *CPU) fetch() uint16 {
	hi := uint16(c.mem.LoadByte(c.pc)) << 8
	low := uint16(c.mem.LoadByte(c.pc + 1))
	c.pc += 2
	return hi | low
}

// tickTimers decrements the delay and sound timers if they are nonzero.
// Timers count down once per executed instruction, wall clock pacing is up
// to the driver loop.
func (c *CPU) tickTimers() {
	if c.dt > 0 {
		c.dt--
	}
	if c.st > 0 {
		c.st--
	}
}

// pollKey checks the input device for a pressed key to complete a pending
// key wait. The lowest pressed key index wins.
func (c *CPU) pollKey() bool {
	states := c.input.KeyStates()
	for key, pressed := range states {
		if pressed {
			c.v[c.waitReg] = byte(key)
			c.awaitingKey = false
			return true
		}
	}
	return false
}

// String implements fmt.Stringer and renders the full CPU state for fault
// diagnostics.
func (c *CPU) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "CHIP-8 CPU @ 0x%04X\n", c.pc)
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			reg := row*4 + col
			if col > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "V%X: %02X", reg, c.v[reg])
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\nSTACK:\n")
	for idx := 0; idx < c.stack.depth; idx++ {
		fmt.Fprintf(&sb, ">> %d: 0x%04X\n", idx, c.stack.slots[idx])
	}

	fmt.Fprintf(&sb, "\nI: %04X", c.i)
	fmt.Fprintf(&sb, "\nST: %02X", c.st)
	fmt.Fprintf(&sb, "\nDT: %02X", c.dt)
	return sb.String()
}
