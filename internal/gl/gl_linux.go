//go:build linux

package gl

import (
	"github.com/ebitengine/purego"
	"github.com/pkg/errors"
)

const libGL = "libGL.so.1"

// The Linux loader binds the OpenGL 1.x entry points exported directly by libGL.
// Everything this module needs predates 1.2, so no glXGetProcAddress lookup is required.
type openGL struct {
	clearColor func(float32, float32, float32, float32)
	clear      func(uint32)
	viewport   func(int32, int32, int32, int32)
	enable     func(uint32)
	disable    func(uint32)
	getString  func(uint32) *byte
}

func (gl *openGL) ClearColor(r, g, b, a float32) {
	gl.clearColor(r, g, b, a)
}

func (gl *openGL) Clear(mask uint32) {
	gl.clear(mask)
}

func (gl *openGL) Viewport(x, y, width, height int32) {
	gl.viewport(x, y, width, height)
}

func (gl *openGL) Enable(cap uint32) {
	gl.enable(cap)
}

func (gl *openGL) Disable(cap uint32) {
	gl.disable(cap)
}

func (gl *openGL) GetString(name uint32) string {
	return gostring(gl.getString(name))
}

// Load opens libGL and binds the entry points of the OpenGL interface.
func Load() (OpenGL, error) {
	handle, err := purego.Dlopen(libGL, purego.RTLD_LAZY|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", libGL)
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
