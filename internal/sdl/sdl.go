// Package sdl implements the SDL2 frontend: a window rendering the
// CHIP-8 framebuffer and a keyboard mapped to the 16 key keypad.
package sdl

import (
	"fmt"

	"github.com/retroenv/chip8go/internal/display"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	pixelSize = 20

	screenColor = 0x1A237E
	spriteColor = 0x9FA8DA
)

// Window is the SDL frontend. It implements the Display and Input
// capabilities of the CPU and the Frontend interface of the emulator.
type Window struct {
	screen  *display.Screen
	window  *sdl.Window
	surface *sdl.Surface

	keys [16]bool
}

// New initializes SDL and opens the emulator window.
func New(title string) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("initializing SDL: %w", err)
	}

	window, err := sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		display.Width*pixelSize, display.Height*pixelSize, sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	surface, err := window.GetSurface()
	if err != nil {
		return nil, fmt.Errorf("getting window surface: %w", err)
	}
	_ = surface.FillRect(nil, screenColor)
	_ = window.UpdateSurface()

	return &Window{
		screen:  display.NewScreen(),
		window:  window,
		surface: surface,
	}, nil
}

// Close destroys the window and shuts down SDL.
func (w *Window) Close() {
	_ = w.window.Destroy()
	sdl.Quit()
}

// Clear implements the Display capability.
func (w *Window) Clear() {
	w.screen.Clear()
	_ = w.surface.FillRect(nil, screenColor)
	_ = w.window.UpdateSurface()
}

// Draw implements the Display capability. The sprite is XORed into the
// framebuffer and the window surface is redrawn.
func (w *Window) Draw(x, y byte, sprite []byte) bool {
	collision := w.screen.Draw(x, y, sprite)
	w.render()
	return collision
}

// KeyStates implements the Input capability and returns the pressed state
// snapshot maintained by Poll.
func (w *Window) KeyStates() [16]bool {
	return w.keys
}

// Poll services pending SDL events and reports whether emulation should
// continue. It returns false when the window is closed or Escape is
// pressed.
func (w *Window) Poll() bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			return false

		case *sdl.KeyboardEvent:
			if e.Keysym.Scancode == sdl.SCANCODE_ESCAPE {
				return false
			}
			key := keymap(e.Keysym.Scancode)
			if key < 0 {
				continue
			}
			w.keys[key] = e.GetType() == sdl.KEYDOWN
		}
	}
	return true
}

func (w *Window) render() {
	_ = w.surface.FillRect(nil, screenColor)
	pixels := w.screen.Pixels()
	for x := int32(0); x < display.Width; x++ {
		for y := int32(0); y < display.Height; y++ {
			if pixels[x][y] != 1 {
				continue
			}
			rect := sdl.Rect{X: x * pixelSize, Y: y * pixelSize, W: pixelSize, H: pixelSize}
			_ = w.surface.FillRect(&rect, spriteColor)
		}
	}
	_ = w.window.UpdateSurface()
}

// keymap maps QWERTY scancodes to the CHIP-8 keypad:
//
//	+--------+--------+--------+--------+
//	| 1 -> 1 | 2 -> 2 | 3 -> 3 | 4 -> C |
//	| Q -> 4 | W -> 5 | E -> 6 | R -> D |
//	| A -> 7 | S -> 8 | D -> 9 | F -> E |
//	| Z -> A | X -> 0 | C -> B | V -> F |
//	+--------+--------+--------+--------+
func keymap(code sdl.Scancode) int {
	switch code {
	case sdl.SCANCODE_1:
		return 0x1
	case sdl.SCANCODE_2:
		return 0x2
	case sdl.SCANCODE_3:
		return 0x3
	case sdl.SCANCODE_4:
		return 0xC
	case sdl.SCANCODE_Q:
		return 0x4
	case sdl.SCANCODE_W:
		return 0x5
	case sdl.SCANCODE_E:
		return 0x6
	case sdl.SCANCODE_R:
		return 0xD
	case sdl.SCANCODE_A:
		return 0x7
	case sdl.SCANCODE_S:
		return 0x8
	case sdl.SCANCODE_D:
		return 0x9
	case sdl.SCANCODE_F:
		return 0xE
	case sdl.SCANCODE_Z:
		return 0xA
	case sdl.SCANCODE_X:
		return 0x0
	case sdl.SCANCODE_C:
		return 0xB
	case sdl.SCANCODE_V:
		return 0xF
	default:
		return -1
	}
}
