// Package rom handles loading of CHIP-8 ROM files.
package rom

import (
	"fmt"
	"io"
)

// MaxSize is the maximum number of ROM bytes that fit into the CHIP-8
// program region (0x200-0xFFF minus the unusable tail, 3232 bytes).
const MaxSize = 0xCA0

// ROM represents a loaded CHIP-8 ROM image.
type ROM struct {
	filename string
	data     []byte
}

// Load reads a ROM from the given reader. At most MaxSize bytes are read,
// any excess is truncated. The filename is only used for identification
// and can be empty.
func Load(reader io.Reader, filename string) (*ROM, error) {
	buf := make([]byte, MaxSize)
	length, err := io.ReadFull(reader, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, fmt.Errorf("reading ROM data: %w", err)
	}

	return &ROM{
		filename: filename,
		data:     buf[:length],
	}, nil
}

// Filename returns the file name the ROM was loaded from.
func (r *ROM) Filename() string {
	return r.filename
}

// Bytes returns the loaded ROM bytes.
func (r *ROM) Bytes() []byte {
	return r.data
}

// Size returns the number of loaded ROM bytes.
func (r *ROM) Size() int {
	return len(r.data)
}

// String implements fmt.Stringer and returns a one line ROM summary.
func (r *ROM) String() string {
	return fmt.Sprintf("CHIP-8 ROM (%s): %d bytes", r.filename, len(r.data))
}
