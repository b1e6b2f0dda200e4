package window

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/tinyrange/learnedgl/internal/gl"
)

var log = logrus.WithField("component", "window")

type glfwWindow struct {
	win *glfw.Window
}

// New initializes GLFW, creates a window with a current OpenGL context and
// returns it. The caller must have locked the OS thread.
func New(opts Options) (Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, errors.Wrap(err, "initialize GLFW")
	}

	glfw.WindowHint(glfw.ContextVersionMajor, opts.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, opts.GLMinor)
	if opts.CoreProfile {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	}
	if opts.forwardCompatible() {
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	}
	glfw.WindowHint(glfw.Resizable, boolHint(opts.Resizable))

	win, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, errors.Wrap(err, "create GLFW window")
	}
	win.MakeContextCurrent()

	if opts.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	if opts.CaptureCursor {
		win.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	}

	fbw, fbh := win.GetFramebufferSize()
	log.WithFields(logrus.Fields{
		"title":       opts.Title,
		"size":        [2]int{opts.Width, opts.Height},
		"framebuffer": [2]int{fbw, fbh},
		"gl":          [2]int{opts.GLMajor, opts.GLMinor},
		"core":        opts.CoreProfile,
	}).Debug("window created")

	return &glfwWindow{win: win}, nil
}

func boolHint(v bool) int {
	if v {
		return glfw.True
	}
	return glfw.False
}

func (w *glfwWindow) GL() (gl.OpenGL, error) {
	return gl.Load()
}

func (w *glfwWindow) Close() {
	if w.win == nil {
		return
	}
	w.win.Destroy()
	w.win = nil
	glfw.Terminate()
}

func (w *glfwWindow) Poll() bool {
	glfw.PollEvents()
	return !w.win.ShouldClose()
}

func (w *glfwWindow) Swap() {
	w.win.SwapBuffers()
}

// BackingSize returns the framebuffer size in pixels, which differs from the
// window size on high-DPI displays.
func (w *glfwWindow) BackingSize() (int, int) {
	return w.win.GetFramebufferSize()
}

func (w *glfwWindow) Cursor() (float32, float32) {
	x, y := w.win.GetCursorPos()
	return float32(x), float32(y)
}

func (w *glfwWindow) KeyPressed(key Key) bool {
	k, ok := glfwKeys[key]
	if !ok {
		return false
	}
	return w.win.GetKey(k) == glfw.Press
}

func (w *glfwWindow) ButtonPressed(button Button) bool {
	b, ok := glfwButtons[button]
	if !ok {
		return false
	}
	return w.win.GetMouseButton(b) == glfw.Press
}

func (w *glfwWindow) ShouldClose() bool {
	return w.win.ShouldClose()
}

func (w *glfwWindow) SetShouldClose(value bool) {
	w.win.SetShouldClose(value)
}

func (w *glfwWindow) SetTitle(title string) {
	w.win.SetTitle(title)
}

func (w *glfwWindow) SetFramebufferSizeCallback(fn func(width, height int)) {
	if fn == nil {
		w.win.SetFramebufferSizeCallback(nil)
		return
	}
	w.win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		fn(width, height)
	})
}

func (w *glfwWindow) SetCursorPosCallback(fn func(x, y float64)) {
	if fn == nil {
		w.win.SetCursorPosCallback(nil)
		return
	}
	w.win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		fn(x, y)
	})
}

func (w *glfwWindow) SetScrollCallback(fn func(xoff, yoff float64)) {
	if fn == nil {
		w.win.SetScrollCallback(nil)
		return
	}
	w.win.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		fn(xoff, yoff)
	})
}
