//go:build darwin

package gl

import (
	"github.com/ebitengine/purego"
	"github.com/pkg/errors"
)

const openGLFramework = "/System/Library/Frameworks/OpenGL.framework/OpenGL"

type openGL struct {
	clearColor func(float32, float32, float32, float32)
	clear      func(uint32)
	viewport   func(int32, int32, int32, int32)
	enable     func(uint32)
	disable    func(uint32)
	getString  func(uint32) *byte
}

func (gl *openGL) ClearColor(r, g, b, a float32) { gl.clearColor(r, g, b, a) }
func (gl *openGL) Clear(mask uint32) { gl.clear(mask) }
func (gl *openGL) Enable(cap uint32) { gl.enable(cap) }
func (gl *openGL) Disable(cap uint32) { gl.disable(cap) }

func (gl *openGL) Viewport(x, y, width, height int32) {
	gl.viewport(x, y, width, height)
}

func (gl *openGL) GetString(name uint32) string {
	return gostring(gl.getString(name))
}

// Load opens the system OpenGL framework. The same symbols serve both the legacy
// and the 3.2+ core profile contexts that GLFW creates on macOS.
func Load() (OpenGL, error) {
	handle, err := purego.Dlopen(openGLFramework, purego.RTLD_LAZY|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, errors.Wrap(err, "open OpenGL framework")
	}
	register := func(dst interface{}, name string) {
		purego.RegisterLibFunc(dst, handle, name)
	}

	gl := &openGL{}
	register(&gl.clearColor, "glClearColor")
	register(&gl.clear, "glClear")
	register(&gl.viewport, "glViewport")
	register(&gl.enable, "glEnable")
	register(&gl.disable, "glDisable")
	register(&gl.getString, "glGetString")

	return gl, nil
}
