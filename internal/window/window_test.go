package window

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyString(t *testing.T) {
	assert.Equal(t, "Escape", KeyEscape.String())
	assert.Equal(t, "LeftShift", KeyLeftShift.String())
	assert.Equal(t, "Unknown", Key(999).String())
}

func TestNamedKeysMapToGLFW(t *testing.T) {
	for k := KeyEscape; k <= KeyLeftShift; k++ {
		_, ok := glfwKeys[k]
		assert.True(t, ok, "key %s has no GLFW mapping", k)
	}
	_, ok := glfwKeys[KeyUnknown]
	assert.False(t, ok)
}

func TestForwardCompatible(t *testing.T) {
	assert.True(t, Options{ForwardCompatible: true}.forwardCompatible())
	assert.False(t, Options{}.forwardCompatible())

	core := Options{CoreProfile: true}
	assert.Equal(t, runtime.GOOS == "darwin", core.forwardCompatible())
}
