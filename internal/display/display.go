// Package display implements the 64x32 monochrome framebuffer of the
// CHIP-8. Sprites are XORed onto the existing pixels and wrap around the
// screen edges. The framebuffer is deterministic and backend independent;
// frontends render its pixels.
package display

const (
	// Width is the screen width in pixels.
	Width = 64

	// Height is the screen height in pixels.
	Height = 32
)

// Screen is a CHIP-8 framebuffer.
type Screen struct {
	pixels [Width][Height]byte
}

// NewScreen returns a new cleared screen.
func NewScreen() *Screen {
	return &Screen{}
}

// Clear resets all pixels.
func (s *Screen) Clear() {
	s.pixels = [Width][Height]byte{}
}

// Draw XORs a sprite onto the screen at the given origin, one byte per
// row, most significant bit leftmost. Pixels beyond the screen edges wrap
// to the opposite side. It reports whether any pixel was erased.
func (s *Screen) Draw(x, y byte, sprite []byte) bool {
	collision := false

	for row, line := range sprite {
		for bit := 0; bit < 8; bit++ {
			px := (int(x) + bit) % Width
			py := (int(y) + row) % Height
			pixel := line >> (7 - bit) & 0x1

			if pixel == 1 && s.pixels[px][py] == 1 {
				collision = true
			}
			s.pixels[px][py] ^= pixel
		}
	}

	return collision
}

// Pixel returns the state of the pixel at the given coordinates.
func (s *Screen) Pixel(x, y int) bool {
	return s.pixels[x%Width][y%Height] == 1
}

// Pixels returns a copy of the framebuffer contents.
func (s *Screen) Pixels() [Width][Height]byte {
	return s.pixels
}
