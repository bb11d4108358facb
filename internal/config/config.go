// Package config handles the emulator application setup.
package config

import (
	"github.com/retroenv/chip8go/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates the application logger from the program options.
// Debug wins over quiet and enables debug level output, quiet restricts
// output to errors.
func CreateLogger(opts options.Program) *log.Logger {
	cfg := log.DefaultConfig()

	switch {
	case opts.Debug:
		cfg.Level = log.DebugLevel
	case opts.Quiet:
		cfg.Level = log.ErrorLevel
	}

	return log.NewWithConfig(cfg)
}
