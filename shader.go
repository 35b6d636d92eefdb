package movingquad

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// QuadColor is the constant color written by the fragment shader.
var QuadColor = mgl32.Vec4{1.0, 0.5, 0.2, 1.0}

// ClearColor is the frame background.
var ClearColor = mgl32.Vec4{1.0, 0.0, 0.0, 1.0}

// PositionAttrib is the vertex attribute slot holding the position.
const PositionAttrib = 0

// VertexShaderSource passes the position attribute through unchanged.
const VertexShaderSource = `#version 330 core
layout (location = 0) in vec3 aPos;
void main()
{
    gl_Position = vec4(aPos.x, aPos.y, aPos.z, 1.0);
}
`

// FragmentShaderSource emits QuadColor for every fragment.
const FragmentShaderSource = `#version 330 core
out vec4 FragColor;
void main()
{
    FragColor = vec4(1.0f, 0.5f, 0.2f, 1.0f);
}
`

// ShaderStage names the step of a program build that failed.
type ShaderStage string

const (
	StageVertex   ShaderStage = "vertex"
	StageFragment ShaderStage = "fragment"
	StageLink     ShaderStage = "link"
)

// ShaderError carries the driver's diagnostic log for a failed stage.
type ShaderError struct {
	Stage ShaderStage
	Log   string
}

func (e *ShaderError) Error() string {
	log := strings.TrimSpace(e.Log)
	if log == "" {
		log = "no diagnostic log"
	}
	if e.Stage == StageLink {
		return fmt.Sprintf("shader program linking failed: %s", log)
	}
	return fmt.Sprintf("%s shader compilation failed: %s", e.Stage, log)
}
