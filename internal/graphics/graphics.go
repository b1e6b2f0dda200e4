package graphics

import (
	"time"

	"github.com/tinyrange/learnedgl/internal/window"
)

// Color is a linear RGBA color with components in [0, 1].
type Color [4]float32

var (
	// ColorTeal is the clear color the tutorial windows start with.
	ColorTeal  = Color{0.2, 0.3, 0.3, 1.0}
	ColorBlack = Color{0, 0, 0, 1}
)

// Info describes the GL implementation behind the current context.
type Info struct {
	Vendor   string
	Renderer string
	Version  string
	GLSL     string
}

type Frame interface {
	WindowSize() (width, height int)
	CursorPos() (x, y float32)

	KeyPressed(key window.Key) bool
	ButtonPressed(button window.Button) bool

	// Index is the 0-based number of this frame.
	Index() int
	// DeltaTime is the time since the previous frame started; zero on the
	// first frame.
	DeltaTime() time.Duration
}

type Window interface {
	// Return the platform-specific window implementation.
	PlatformWindow() window.Window

	Info() Info

	SetClear(enabled bool)
	// SetClearColor may be called from any goroutine.
	SetClearColor(c Color)
	ClearColor() Color
	// SetMaxFPS caps the frame rate; 0 removes the cap.
	SetMaxFPS(fps int)

	// Call step for each frame until the window is asked to close or step
	// returns an error.
	Loop(step func(f Frame) error) error
}
