// Package camera implements the free-look fly camera used by the later
// tutorial chapters: WASD moves, the mouse turns and the scroll wheel zooms.
package camera

import (
	"time"

	"cogentcore.org/core/math32"

	"github.com/tinyrange/learnedgl/internal/window"
)

const (
	// Speed is the movement speed in world units per second.
	Speed = 2.5
	// Sensitivity scales cursor movement in pixels to degrees of rotation.
	Sensitivity = 0.1

	MaxPitch = 89.0
	MinFov   = 1.0
	MaxFov   = 45.0
)

// KeyReader reports whether a key is held. graphics.Frame and window.Window
// both satisfy it.
type KeyReader interface {
	KeyPressed(key window.Key) bool
}

type Camera struct {
	Position math32.Vector3
	Front    math32.Vector3
	Up       math32.Vector3

	// Yaw and Pitch are in degrees. Yaw -90 looks down -Z.
	Yaw   float32
	Pitch float32
	// Fov is the vertical field of view in degrees.
	Fov float32

	lastX, lastY float32
	firstMouse   bool
}

// New returns a camera three units back from the origin, looking at it, with
// the cursor assumed to start at the centre of a width x height window.
func New(width, height int) *Camera {
	return &Camera{
		Position:   math32.Vec3(0, 0, 3),
		Front:      math32.Vec3(0, 0, -1),
		Up:         math32.Vec3(0, 1, 0),
		Yaw:        -90,
		Pitch:      0,
		Fov:        MaxFov,
		lastX:      float32(width) / 2,
		lastY:      float32(height) / 2,
		firstMouse: true,
	}
}

// Right is the normalised vector pointing to the camera's right.
func (c *Camera) Right() math32.Vector3 {
	return c.Front.Cross(c.Up).Normal()
}

// Translate moves the camera for every held movement key over dt.
func (c *Camera) Translate(keys KeyReader, dt time.Duration) {
	step := Speed * float32(dt.Seconds())
	front := c.Front.Normal()
	right := c.Right()

	if keys.KeyPressed(window.KeyW) {
		c.Position = c.Position.Add(front.MulScalar(step))
	}
	if keys.KeyPressed(window.KeyS) {
		c.Position = c.Position.Sub(front.MulScalar(step))
	}
	if keys.KeyPressed(window.KeyA) {
		c.Position = c.Position.Sub(right.MulScalar(step))
	}
	if keys.KeyPressed(window.KeyD) {
		c.Position = c.Position.Add(right.MulScalar(step))
	}
}

// Rotate turns the camera towards the cursor at (x, y). The first call only
// records the position so the view does not jump when the cursor enters.
func (c *Camera) Rotate(x, y float32) {
	if c.firstMouse {
		c.lastX, c.lastY = x, y
		c.firstMouse = false
	}

	xoff := (x - c.lastX) * Sensitivity
	// window y grows downwards
	yoff := (c.lastY - y) * Sensitivity
	c.lastX, c.lastY = x, y

	c.Yaw += xoff
	c.Pitch = min(max(c.Pitch+yoff, -MaxPitch), MaxPitch)
	c.updateFront()
}

// Zoom narrows the field of view by yoff degrees, within [MinFov, MaxFov].
func (c *Camera) Zoom(yoff float32) {
	c.Fov = min(max(c.Fov-yoff, MinFov), MaxFov)
}

func (c *Camera) updateFront() {
	yaw := math32.DegToRad(c.Yaw)
	pitch := math32.DegToRad(c.Pitch)
	c.Front = math32.Vec3(
		math32.Cos(yaw)*math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw)*math32.Cos(pitch),
	).Normal()
}
