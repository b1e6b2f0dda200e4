package window

import "github.com/go-gl/glfw/v3.3/glfw"

// Key represents a keyboard key. Only the keys the program reacts to are named;
// the set grows as input handling does.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyW
	KeyA
	KeyS
	KeyD
	KeySpace
	KeyLeftShift
)

func (k Key) String() string {
	switch k {
	case KeyEscape:
		return "Escape"
	case KeyW:
		return "W"
	case KeyA:
		return "A"
	case KeyS:
		return "S"
	case KeyD:
		return "D"
	case KeySpace:
		return "Space"
	case KeyLeftShift:
		return "LeftShift"
	default:
		return "Unknown"
	}
}

var glfwKeys = map[Key]glfw.Key{
	KeyEscape:    glfw.KeyEscape,
	KeyW:         glfw.KeyW,
	KeyA:         glfw.KeyA,
	KeyS:         glfw.KeyS,
	KeyD:         glfw.KeyD,
	KeySpace:     glfw.KeySpace,
	KeyLeftShift: glfw.KeyLeftShift,
}

// Button represents a mouse button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

var glfwButtons = map[Button]glfw.MouseButton{
	ButtonLeft:   glfw.MouseButtonLeft,
	ButtonRight:  glfw.MouseButtonRight,
	ButtonMiddle: glfw.MouseButtonMiddle,
}
