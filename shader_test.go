package movingquad_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	quad "github.com/go-theft-auto/movingquad"
)

func TestShaderSources(t *testing.T) {
	assert.True(t, strings.HasPrefix(quad.VertexShaderSource, "#version 330 core\n"))
	assert.Contains(t, quad.VertexShaderSource, "layout (location = 0) in vec3 aPos;")
	assert.True(t, strings.HasPrefix(quad.FragmentShaderSource, "#version 330 core\n"))

	c := quad.QuadColor
	want := fmt.Sprintf("vec4(%.1ff, %.1ff, %.1ff, %.1ff)", c[0], c[1], c[2], c[3])
	assert.Contains(t, quad.FragmentShaderSource, want)
}

func TestShaderErrorMessage(t *testing.T) {
	err := &quad.ShaderError{Stage: quad.StageFragment, Log: "0:3(5): error: syntax error\n"}
	assert.Equal(t, "fragment shader compilation failed: 0:3(5): error: syntax error", err.Error())

	err = &quad.ShaderError{Stage: quad.StageLink, Log: ""}
	assert.Equal(t, "shader program linking failed: no diagnostic log", err.Error())
}

func TestShaderErrorThroughJoin(t *testing.T) {
	joined := errors.Join(
		&quad.ShaderError{Stage: quad.StageVertex, Log: "bad"},
		&quad.ShaderError{Stage: quad.StageLink, Log: "worse"},
	)

	var se *quad.ShaderError
	require.ErrorAs(t, joined, &se)
	assert.Equal(t, quad.StageVertex, se.Stage)
	assert.Contains(t, joined.Error(), "worse")
}
