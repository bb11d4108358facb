// Package options contains the program options.
package options

// Program options of the emulator and disassembler.
type Program struct {
	Input  string // ROM file to load
	Output string // disassembly output file, stdout if empty

	Run   bool  // run the ROM instead of disassembling it
	Seed  int64 // seed for the RND instruction, 0 selects a time based seed
	Debug bool  // enable debug logging
	Quiet bool  // perform operations quietly
}
