package window

import (
	"runtime"

	"github.com/tinyrange/learnedgl/internal/gl"
)

// Window is the platform window the render loop drives. Every method must be
// called from the thread that created the window.
type Window interface {
	GL() (gl.OpenGL, error)
	Close()

	// Poll processes pending events and reports whether the loop should keep
	// running, i.e. whether the close flag is still clear.
	Poll() bool
	Swap()

	BackingSize() (width, height int)
	Cursor() (x, y float32)
	KeyPressed(key Key) bool
	ButtonPressed(button Button) bool

	ShouldClose() bool
	SetShouldClose(value bool)
	SetTitle(title string)

	// SetFramebufferSizeCallback registers fn to run whenever the drawable
	// surface changes size. A nil fn removes the callback.
	SetFramebufferSizeCallback(fn func(width, height int))
	SetCursorPosCallback(fn func(x, y float64))
	SetScrollCallback(fn func(xoff, yoff float64))
}

// Options control window and context creation.
type Options struct {
	Title  string
	Width  int
	Height int

	GLMajor     int
	GLMinor     int
	CoreProfile bool
	// ForwardCompatible requests a forward-compatible context. macOS only hands
	// out core contexts with it set, so New forces it there.
	ForwardCompatible bool

	Resizable     bool
	VSync         bool
	CaptureCursor bool
}

func (o Options) forwardCompatible() bool {
	return o.ForwardCompatible || (o.CoreProfile && runtime.GOOS == "darwin")
}
