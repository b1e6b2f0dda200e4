// Package windowtest provides a scripted window.Window for driving the render
// loop in tests.
package windowtest

import (
	"github.com/tinyrange/learnedgl/internal/gl"
	"github.com/tinyrange/learnedgl/internal/window"
)

// DefaultMaxPolls bounds how many times Poll may be called before the fake
// closes itself, so a broken loop fails a test instead of hanging it.
const DefaultMaxPolls = 1000

// Window is an in-memory window.Window. Key state, size and cursor are set by
// the test; callbacks registered by the code under test are fired by Resize,
// MoveCursor and Scroll.
type Window struct {
	OpenGL gl.OpenGL
	GLErr  error

	// OnPoll runs at the start of every Poll with the 1-based poll count.
	OnPoll   func(w *Window, poll int)
	MaxPolls int

	width, height int
	cursorX       float32
	cursorY       float32
	keys          map[window.Key]bool
	buttons       map[window.Button]bool
	shouldClose   bool
	title         string

	polls  int
	swaps  int
	closed bool

	// closeSets counts SetShouldClose calls, including repeated ones.
	closeSets int

	onResize func(width, height int)
	onCursor func(x, y float64)
	onScroll func(xoff, yoff float64)
}

var _ window.Window = (*Window)(nil)

// New returns a width x height fake backed by the given GL.
func New(width, height int, opengl gl.OpenGL) *Window {
	return &Window{
		OpenGL:   opengl,
		MaxPolls: DefaultMaxPolls,
		width:    width,
		height:   height,
		keys:     make(map[window.Key]bool),
		buttons:  make(map[window.Button]bool),
	}
}

func (w *Window) GL() (gl.OpenGL, error) {
	if w.GLErr != nil {
		return nil, w.GLErr
	}
	return w.OpenGL, nil
}

func (w *Window) Close() { w.closed = true }

func (w *Window) Poll() bool {
	w.polls++
	if w.OnPoll != nil {
		w.OnPoll(w, w.polls)
	}
	if w.MaxPolls > 0 && w.polls >= w.MaxPolls {
		w.shouldClose = true
	}
	return !w.shouldClose
}

func (w *Window) Swap() { w.swaps++ }

func (w *Window) BackingSize() (int, int) { return w.width, w.height }

func (w *Window) Cursor() (float32, float32) { return w.cursorX, w.cursorY }

func (w *Window) KeyPressed(key window.Key) bool { return w.keys[key] }

func (w *Window) ButtonPressed(button window.Button) bool { return w.buttons[button] }

func (w *Window) ShouldClose() bool { return w.shouldClose }

func (w *Window) SetShouldClose(value bool) {
	w.closeSets++
	w.shouldClose = value
}

func (w *Window) SetTitle(title string) { w.title = title }

func (w *Window) SetFramebufferSizeCallback(fn func(width, height int)) { w.onResize = fn }

func (w *Window) SetCursorPosCallback(fn func(x, y float64)) { w.onCursor = fn }

func (w *Window) SetScrollCallback(fn func(xoff, yoff float64)) { w.onScroll = fn }

// SetKey sets whether key reads as pressed.
func (w *Window) SetKey(key window.Key, pressed bool) { w.keys[key] = pressed }

// SetButton sets whether button reads as pressed.
func (w *Window) SetButton(button window.Button, pressed bool) { w.buttons[button] = pressed }

// Resize changes the backing size and fires the framebuffer size callback.
func (w *Window) Resize(width, height int) {
	w.width, w.height = width, height
	if w.onResize != nil {
		w.onResize(width, height)
	}
}

// MoveCursor moves the cursor and fires the cursor position callback.
func (w *Window) MoveCursor(x, y float32) {
	w.cursorX, w.cursorY = x, y
	if w.onCursor != nil {
		w.onCursor(float64(x), float64(y))
	}
}

// Scroll fires the scroll callback.
func (w *Window) Scroll(xoff, yoff float64) {
	if w.onScroll != nil {
		w.onScroll(xoff, yoff)
	}
}

func (w *Window) Title() string { return w.title }
func (w *Window) Polls() int { return w.polls }
func (w *Window) Swaps() int { return w.swaps }
func (w *Window) Closed() bool { return w.closed }
func (w *Window) CloseRequests() int { return w.closeSets }
func (w *Window) HasResizeCallback() bool { return w.onResize != nil }
func (w *Window) HasScrollCallback() bool { return w.onScroll != nil }
func (w *Window) HasCursorCallback() bool { return w.onCursor != nil }
