package opengl

import (
	"errors"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"

	quad "github.com/go-theft-auto/movingquad"
)

// Program is a linked shader program.
type Program struct {
	handle uint32
}

// NewProgram compiles the vertex and fragment sources and links them.
//
// A failed stage does not stop the build: the returned Program is never nil
// and wraps whatever object the driver produced, while err joins one
// *quad.ShaderError per failed stage. Callers decide whether that is fatal.
func NewProgram(vertexSource, fragmentSource string) (*Program, error) {
	return buildProgram(glCompiler{}, vertexSource, fragmentSource)
}

// Handle returns the OpenGL program name.
func (p *Program) Handle() uint32 {
	return p.handle
}

// Use makes the program current.
func (p *Program) Use() {
	gl.UseProgram(p.handle)
}

// Delete releases the program. It is safe to call more than once.
func (p *Program) Delete() {
	if p.handle != 0 {
		deleteProgram(p.handle)
		p.handle = 0
	}
}

// shaderCompiler is the set of driver calls a program build needs.
type shaderCompiler interface {
	compile(stage quad.ShaderStage, source string) (shader uint32, infoLog string, ok bool)
	link(vertex, fragment uint32) (program uint32, infoLog string, ok bool)
	deleteShader(shader uint32)
}

func buildProgram(c shaderCompiler, vertexSource, fragmentSource string) (*Program, error) {
	var errs []error

	vertex, log, ok := c.compile(quad.StageVertex, vertexSource)
	if !ok {
		errs = append(errs, &quad.ShaderError{Stage: quad.StageVertex, Log: log})
	}

	fragment, log, ok := c.compile(quad.StageFragment, fragmentSource)
	if !ok {
		errs = append(errs, &quad.ShaderError{Stage: quad.StageFragment, Log: log})
	}

	program, log, ok := c.link(vertex, fragment)
	if !ok {
		errs = append(errs, &quad.ShaderError{Stage: quad.StageLink, Log: log})
	}

	// Linked into the program now.
	c.deleteShader(vertex)
	c.deleteShader(fragment)

	return &Program{handle: program}, errors.Join(errs...)
}

type glCompiler struct{}

func (glCompiler) compile(stage quad.ShaderStage, source string) (uint32, string, bool) {
	kind := uint32(gl.VERTEX_SHADER)
	if stage == quad.StageFragment {
		kind = gl.FRAGMENT_SHADER
	}

	shader := gl.CreateShader(kind)
	csource, free := gl.Strs(nulTerminated(source))
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		if logLength == 0 {
			return shader, "", false
		}
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
		return shader, trimInfoLog(log), false
	}
	return shader, "", true
}

func (glCompiler) link(vertex, fragment uint32) (uint32, string, bool) {
	program := gl.CreateProgram()
	gl.AttachShader(program, vertex)
	gl.AttachShader(program, fragment)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		if logLength == 0 {
			return program, "", false
		}
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		return program, trimInfoLog(log), false
	}
	return program, "", true
}

func (glCompiler) deleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

// trimInfoLog converts a driver log buffer to a string, dropping the
// terminator and anything after it.
func trimInfoLog(buf []byte) string {
	if i := strings.IndexByte(string(buf), 0); i >= 0 {
		buf = buf[:i]
	}
	return strings.TrimRight(string(buf), "\r\n ")
}

// nulTerminated appends the terminator gl.Strs expects.
func nulTerminated(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}
