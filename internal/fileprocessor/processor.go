// Package fileprocessor handles file loading and processing operations
package fileprocessor

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/retroenv/chip8go/internal/cpu"
	"github.com/retroenv/chip8go/internal/disasm"
	"github.com/retroenv/chip8go/internal/emulator"
	"github.com/retroenv/chip8go/internal/memory"
	"github.com/retroenv/chip8go/internal/options"
	"github.com/retroenv/chip8go/internal/rom"
	"github.com/retroenv/chip8go/internal/sdl"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// ProcessFile handles the complete ROM processing workflow: load the ROM,
// print its summary and either disassemble it or run it.
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program) error {
	r, err := loadROM(opts)
	if err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}

	if !opts.Quiet {
		logger.Info("ROM loaded", log.Stringer("rom", r))
	}

	if opts.Run {
		return runROM(ctx, logger, opts, r)
	}
	return disassembleROM(opts, r)
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Info("chip8go", log.String("version", buildinfo.Version(version, commit, date)))
}

func loadROM(opts options.Program) (*rom.ROM, error) {
	file, err := os.Open(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", opts.Input, err)
	}
	defer func() { _ = file.Close() }()

	r, err := rom.Load(file, opts.Input)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", opts.Input, err)
	}
	return r, nil
}

// disassembleROM writes the disassembly of the ROM to the configured
// output, stdout if no output file is given.
func disassembleROM(opts options.Program, r *rom.ROM) error {
	writer, err := createWriter(opts)
	if err != nil {
		return fmt.Errorf("creating writer: %w", err)
	}
	defer func() {
		if closer, ok := writer.(io.Closer); ok && writer != os.Stdout {
			_ = closer.Close()
		}
	}()

	mem := memory.NewFromROM(r)
	dis := disasm.New(mem, r.Size())
	if err := dis.Disassemble(writer); err != nil {
		return fmt.Errorf("disassembling: %w", err)
	}
	return nil
}

// runROM executes the ROM in an SDL window until the window is closed,
// the context is cancelled or the CPU faults.
func runROM(ctx context.Context, logger *log.Logger, opts options.Program, r *rom.ROM) error {
	window, err := sdl.New("chip8go | " + r.Filename())
	if err != nil {
		return fmt.Errorf("creating emulator window: %w", err)
	}
	defer window.Close()

	var rng *rand.Rand
	if opts.Seed != 0 {
		rng = rand.New(rand.NewSource(opts.Seed))
	}

	mem := memory.NewFromROM(r)
	c := cpu.New(mem, window, window, rng)

	emu := emulator.New(logger, c)
	if err := emu.Run(ctx, window); err != nil {
		return fmt.Errorf("running ROM: %w", err)
	}
	return nil
}

func createWriter(opts options.Program) (io.Writer, error) {
	if opts.Output == "" {
		return os.Stdout, nil
	}

	file, err := os.Create(opts.Output)
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", opts.Output, err)
	}
	return file, nil
}
