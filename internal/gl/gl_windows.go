//go:build windows

package gl

import (
	"math"
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

type openGL struct {
	clearColor *windows.LazyProc
	clear      *windows.LazyProc
	viewport   *windows.LazyProc
	enable     *windows.LazyProc
	disable    *windows.LazyProc
	getString  *windows.LazyProc
}

func (gl *openGL) ClearColor(r, g, b, a float32) {
	gl.clearColor.Call(f32(r), f32(g), f32(b), f32(a))
}

func (gl *openGL) Clear(mask uint32) {
	gl.clear.Call(uintptr(mask))
}

func (gl *openGL) Viewport(x, y, width, height int32) {
	gl.viewport.Call(uintptr(x), uintptr(y), uintptr(width), uintptr(height))
}

func (gl *openGL) Enable(cap uint32) {
	gl.enable.Call(uintptr(cap))
}

func (gl *openGL) Disable(cap uint32) {
	gl.disable.Call(uintptr(cap))
}

func (gl *openGL) GetString(name uint32) string {
	ptr, _, _ := gl.getString.Call(uintptr(name))
	return gostring((*byte)(unsafe.Pointer(ptr)))
}

// Load resolves the OpenGL 1.1 entry points exported by opengl32.dll.
func Load() (OpenGL, error) {
	opengl32 := windows.NewLazySystemDLL("opengl32.dll")
	if err := opengl32.Load(); err != nil {
		return nil, errors.Wrap(err, "load opengl32.dll")
	}
	gl := &openGL{
		clearColor: opengl32.NewProc("glClearColor"),
		clear:      opengl32.NewProc("glClear"),
		viewport:   opengl32.NewProc("glViewport"),
		enable:     opengl32.NewProc("glEnable"),
		disable:    opengl32.NewProc("glDisable"),
		getString:  opengl32.NewProc("glGetString"),
	}
	return gl, nil
}

// f32 passes a float32 argument in an integer register. The windows/amd64
// calling convention mirrors float arguments into the integer slots, so the
// bit pattern arrives intact.
func f32(v float32) uintptr {
	return uintptr(math.Float32bits(v))
}
