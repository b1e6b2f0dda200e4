package graphics

import (
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	glpkg "github.com/tinyrange/learnedgl/internal/gl"
	"github.com/tinyrange/learnedgl/internal/glutil"
	"github.com/tinyrange/learnedgl/internal/window"
)

var log = logrus.WithField("component", "graphics")

// DefaultMaxFPS caps the loop when the swap does not block on vsync.
const DefaultMaxFPS = 120

type glWindow struct {
	platform window.Window
	gl       glpkg.OpenGL

	clearEnabled bool
	minFrame     time.Duration

	mu         sync.Mutex
	clearColor Color
}

type glFrame struct {
	w     *glWindow
	index int
	delta time.Duration
}

// New creates a platform window from opts and wraps it.
func New(opts window.Options) (Window, error) {
	platform, err := window.New(opts)
	if err != nil {
		return nil, err
	}
	w, err := NewWithPlatform(platform)
	if err != nil {
		platform.Close()
		return nil, err
	}
	if opts.VSync {
		w.SetMaxFPS(0)
	}
	return w, nil
}

// NewWithPlatform loads GL for an existing platform window, installs the
// framebuffer resize handler and sets the initial viewport.
func NewWithPlatform(platform window.Window) (Window, error) {
	gl, err := platform.GL()
	if err != nil {
		return nil, errors.Wrap(err, "load OpenGL")
	}

	platform.SetFramebufferSizeCallback(glutil.ResizeHandler(gl))
	bw, bh := platform.BackingSize()
	glutil.FramebufferSizeCallback(gl, bw, bh)

	return &glWindow{
		platform:     platform,
		gl:           gl,
		clearEnabled: true,
		clearColor:   ColorTeal,
		minFrame:     time.Second / DefaultMaxFPS,
	}, nil
}

func (w *glWindow) PlatformWindow() window.Window {
	return w.platform
}

func (w *glWindow) Info() Info {
	return Info{
		Vendor:   w.gl.GetString(glpkg.Vendor),
		Renderer: w.gl.GetString(glpkg.Renderer),
		Version:  w.gl.GetString(glpkg.Version),
		GLSL:     w.gl.GetString(glpkg.ShadingLanguageVersion),
	}
}

func (w *glWindow) SetClear(enabled bool) {
	w.clearEnabled = enabled
}

func (w *glWindow) SetClearColor(c Color) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.clearColor = c
}

func (w *glWindow) ClearColor() Color {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.clearColor
}

// SetMaxFPS caps the frame rate; 0 removes the cap.
func (w *glWindow) SetMaxFPS(fps int) {
	if fps <= 0 {
		w.minFrame = 0
		return
	}
	w.minFrame = time.Second / time.Duration(fps)
}

func (w *glWindow) Loop(step func(f Frame) error) error {
	defer w.platform.Close()

	var last time.Time
	for index := 0; !w.platform.ShouldClose(); index++ {
		start := time.Now()
		frame := glFrame{w: w, index: index}
		if !last.IsZero() {
			frame.delta = start.Sub(last)
		}
		last = start

		glutil.ProcessInput(w.platform)
		w.prepareFrame()

		if err := step(frame); err != nil {
			return errors.Wrapf(err, "frame %d", index)
		}

		w.platform.Swap()
		if !w.platform.Poll() {
			log.WithField("frames", index+1).Debug("close requested")
			break
		}

		if elapsed := time.Since(start); elapsed < w.minFrame {
			time.Sleep(w.minFrame - elapsed)
		}
	}
	return nil
}

func (w *glWindow) prepareFrame() {
	if !w.clearEnabled {
		return
	}
	c := w.ClearColor()
	w.gl.ClearColor(c[0], c[1], c[2], c[3])
	w.gl.Clear(glpkg.ColorBufferBit)
}

func (f glFrame) WindowSize() (int, int) {
	return f.w.platform.BackingSize()
}

func (f glFrame) CursorPos() (float32, float32) {
	return f.w.platform.Cursor()
}

func (f glFrame) KeyPressed(key window.Key) bool {
	return f.w.platform.KeyPressed(key)
}

func (f glFrame) ButtonPressed(button window.Button) bool {
	return f.w.platform.ButtonPressed(button)
}

func (f glFrame) Index() int {
	return f.index
}

func (f glFrame) DeltaTime() time.Duration {
	return f.delta
}
