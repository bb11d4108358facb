package emulator

import (
	"bytes"
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/retroenv/chip8go/internal/cpu"
	"github.com/retroenv/chip8go/internal/memory"
	"github.com/retroenv/chip8go/internal/rom"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

type fakeFrontend struct {
	polls    int
	maxPolls int
	keys     [16]bool
	cleared  bool
}

func (f *fakeFrontend) Poll() bool {
	f.polls++
	return f.polls <= f.maxPolls
}

func (f *fakeFrontend) KeyStates() [16]bool {
	return f.keys
}

func (f *fakeFrontend) Clear() {
	f.cleared = true
}

func (f *fakeFrontend) Draw(_, _ byte, _ []byte) bool {
	return false
}

func testLogger() *log.Logger {
	cfg := log.DefaultConfig()
	cfg.Level = log.ErrorLevel
	return log.NewWithConfig(cfg)
}

func newTestEmulator(t *testing.T, program []byte, frontend *fakeFrontend) *Emulator {
	t.Helper()

	r, err := rom.Load(bytes.NewReader(program), "test.ch8")
	assert.NoError(t, err)
	c := cpu.New(memory.NewFromROM(r), frontend, frontend, rand.New(rand.NewSource(1)))
	return New(testLogger(), c)
}

func TestRunStopsOnFrontendQuit(t *testing.T) {
	program := []byte{
		0x60, 0x42, // LD V0, 0x42
		0x12, 0x00, // JP 0x200
	}
	frontend := &fakeFrontend{maxPolls: 5}
	emu := newTestEmulator(t, program, frontend)

	err := emu.Run(context.Background(), frontend)
	assert.NoError(t, err)
	assert.Equal(t, 6, frontend.polls)
}

func TestRunStopsOnContextCancel(t *testing.T) {
	program := []byte{
		0x12, 0x00, // JP 0x200
	}
	frontend := &fakeFrontend{maxPolls: 1 << 30}
	emu := newTestEmulator(t, program, frontend)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := emu.Run(ctx, frontend)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestRunReturnsCPUFault(t *testing.T) {
	program := []byte{
		0x00, 0xEE, // RET with empty call stack
	}
	frontend := &fakeFrontend{maxPolls: 1 << 30}
	emu := newTestEmulator(t, program, frontend)

	err := emu.Run(context.Background(), frontend)
	assert.ErrorContains(t, err, "emulating")
	assert.ErrorContains(t, err, "return with empty call stack")
}

func TestRunServicesEventsDuringKeyWait(t *testing.T) {
	program := []byte{
		0xF0, 0x0A, // LD V0, K
		0x12, 0x00, // JP 0x200
	}
	frontend := &fakeFrontend{maxPolls: 10}
	emu := newTestEmulator(t, program, frontend)

	// the loop keeps polling while the CPU waits for a key
	err := emu.Run(context.Background(), frontend)
	assert.NoError(t, err)
	assert.Equal(t, 11, frontend.polls)
}
