package opengl

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"

	quad "github.com/go-theft-auto/movingquad"
)

func TestGLFWKeyToKey(t *testing.T) {
	tests := []struct {
		in   glfw.Key
		want quad.Key
	}{
		{glfw.KeyEscape, quad.KeyEscape},
		{glfw.KeyLeft, quad.KeyLeft},
		{glfw.KeyRight, quad.KeyRight},
		{glfw.KeyUp, quad.KeyUp},
		{glfw.KeyDown, quad.KeyDown},
		{glfw.KeySpace, quad.KeyNone},
		{glfw.KeyW, quad.KeyNone},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, glfwKeyToKey(tt.in), "glfw key %d", tt.in)
	}
}

func TestPolledKeysCoverEveryProgramKey(t *testing.T) {
	seen := map[quad.Key]bool{}
	for _, k := range polledKeys {
		mapped := glfwKeyToKey(k)
		assert.NotEqual(t, quad.KeyNone, mapped)
		seen[mapped] = true
	}
	for k := quad.KeyNone + 1; k < quad.KeyCount; k++ {
		assert.True(t, seen[k], "key %s is never polled", quad.KeyName(k))
	}
}
