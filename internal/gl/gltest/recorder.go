// Package gltest provides an in-memory gl.OpenGL that records the state the
// render loop changes, so GL-facing code can be tested without a context.
package gltest

import (
	"sync"

	"github.com/tinyrange/learnedgl/internal/gl"
)

// Viewport is a recorded glViewport call.
type Viewport struct {
	X, Y, Width, Height int32
}

// Recorder implements gl.OpenGL by tracking state instead of drawing.
type Recorder struct {
	mu sync.Mutex

	viewport   Viewport
	viewports  []Viewport
	clearColor [4]float32
	clears     []uint32
	enabled    map[uint32]bool
	strings    map[uint32]string
}

var _ gl.OpenGL = (*Recorder)(nil)

// NewRecorder returns a Recorder whose GetString answers from strs.
func NewRecorder(strs map[uint32]string) *Recorder {
	return &Recorder{
		enabled: make(map[uint32]bool),
		strings: strs,
	}
}

func (r *Recorder) ClearColor(red, green, blue, alpha float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clearColor = [4]float32{red, green, blue, alpha}
}

func (r *Recorder) Clear(mask uint32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clears = append(r.clears, mask)
}

func (r *Recorder) Viewport(x, y, width, height int32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.viewport = Viewport{x, y, width, height}
	r.viewports = append(r.viewports, r.viewport)
}

func (r *Recorder) Enable(cap uint32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.enabled[cap] = true
}

func (r *Recorder) Disable(cap uint32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.enabled, cap)
}

func (r *Recorder) GetString(name uint32) string {
	return r.strings[name]
}

// CurrentViewport returns the viewport set by the most recent Viewport call.
func (r *Recorder) CurrentViewport() Viewport {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.viewport
}

// Viewports returns every Viewport call in order.
func (r *Recorder) Viewports() []Viewport {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Viewport(nil), r.viewports...)
}

func (r *Recorder) CurrentClearColor() [4]float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.clearColor
}

// Clears returns the masks passed to Clear, one per call.
func (r *Recorder) Clears() []uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]uint32(nil), r.clears...)
}

func (r *Recorder) IsEnabled(cap uint32) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.enabled[cap]
}
