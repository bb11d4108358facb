// Package emulator implements the driver loop that steps the CPU.
package emulator

import (
	"context"
	"fmt"

	"github.com/retroenv/chip8go/internal/cpu"
	"github.com/retroenv/retrogolib/log"
)

// Frontend is the event source of the emulator. Poll services pending
// window and input events and reports whether emulation should continue.
type Frontend interface {
	Poll() bool
}

// Emulator drives a CPU until the frontend quits, the context is
// cancelled or the CPU faults.
type Emulator struct {
	logger *log.Logger
	cpu    *cpu.CPU
}

// New returns a new emulator driving the given CPU.
func New(logger *log.Logger, c *cpu.CPU) *Emulator {
	return &Emulator{
		logger: logger,
		cpu:    c,
	}
}

// Run executes the emulation loop. A CPU awaiting a key press does not
// stall the loop, events keep being serviced until a key arrives. On a
// CPU fault the full CPU state is logged before the error is returned.
func (e *Emulator) Run(ctx context.Context, frontend Frontend) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if !frontend.Poll() {
			return nil
		}

		if _, err := e.cpu.Step(); err != nil {
			e.logger.Error("Emulation fault", log.Err(err))
			e.logger.Error("CPU state dump", log.Stringer("cpu", e.cpu))
			return fmt.Errorf("emulating: %w", err)
		}
	}
}
