// Package glutil holds the window helpers every example program shares: the
// default window size, the framebuffer resize handler and the per-frame input
// poll.
package glutil

import "github.com/tinyrange/learnedgl/internal/window"

// Default window size in logical pixels.
const (
	ScreenWidth  = 800
	ScreenHeight = 600
)

// Viewporter is the part of the rendering context the resize handler needs.
// gl.OpenGL satisfies it.
type Viewporter interface {
	Viewport(x, y, width, height int32)
}

// InputWindow is the part of a window the input poller needs.
// window.Window satisfies it.
type InputWindow interface {
	KeyPressed(key window.Key) bool
	SetShouldClose(value bool)
}

// FramebufferSizeCallback makes the viewport span the whole drawable area of
// width x height pixels. The rendering context must be current.
func FramebufferSizeCallback(v Viewporter, width, height int) {
	v.Viewport(0, 0, int32(max(width, 0)), int32(max(height, 0)))
}

// ResizeHandler returns FramebufferSizeCallback bound to v, in the shape
// window.Window.SetFramebufferSizeCallback expects.
func ResizeHandler(v Viewporter) func(width, height int) {
	return func(width, height int) {
		FramebufferSizeCallback(v, width, height)
	}
}

// ProcessInput asks the window to close when Escape is held. It is called once
// per frame and never clears a close request.
func ProcessInput(w InputWindow) {
	if w.KeyPressed(window.KeyEscape) {
		w.SetShouldClose(true)
	}
}
