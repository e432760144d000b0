//go:build !tinygo && cgo

package glplay

import (
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/soypat/shaderplay"
)

// compiler implements [shaderplay.Compiler] with the current GL context.
type compiler struct{}

var _ shaderplay.Compiler = compiler{}

func (compiler) CompileShader(stage shaderplay.Stage, source string) (uint32, bool, string) {
	var xtype uint32
	switch stage {
	case shaderplay.StageVertex:
		xtype = gl.VERTEX_SHADER
	case shaderplay.StageFragment:
		xtype = gl.FRAGMENT_SHADER
	default:
		return 0, false, "unsupported shader stage " + stage.String()
	}
	shader := gl.CreateShader(xtype)
	csources, free := gl.Strs(shaderplay.NullTerminated(source))
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		return shader, false, infoLog(logLength, func(buf *uint8) {
			gl.GetShaderInfoLog(shader, logLength, nil, buf)
		})
	}
	return shader, true, ""
}

func (compiler) LinkProgram(vertex, fragment uint32) (uint32, bool, string) {
	program := gl.CreateProgram()
	gl.AttachShader(program, vertex)
	gl.AttachShader(program, fragment)
	gl.LinkProgram(program)
	gl.DetachShader(program, vertex)
	gl.DetachShader(program, fragment)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		return program, false, infoLog(logLength, func(buf *uint8) {
			gl.GetProgramInfoLog(program, logLength, nil, buf)
		})
	}
	return program, true, ""
}

func (compiler) DeleteShader(shader uint32)   { gl.DeleteShader(shader) }
func (compiler) DeleteProgram(program uint32) { gl.DeleteProgram(program) }

func infoLog(length int32, get func(buf *uint8)) string {
	if length <= 0 {
		return ""
	}
	buf := strings.Repeat("\x00", int(length+1))
	get(gl.Str(buf))
	return strings.TrimRight(buf, "\x00")
}

// program is a linked GL program implementing [shaderplay.UniformProgram].
type program struct {
	id uint32
}

var _ shaderplay.UniformProgram = program{}

func (p program) ID() uint32 { return p.id }

func (p program) Bind() { gl.UseProgram(p.id) }

func (p program) UniformLocation(name string) (int32, bool) {
	loc := gl.GetUniformLocation(p.id, gl.Str(shaderplay.NullTerminated(name)))
	return loc, loc >= 0
}

func (p program) SetUniform1f(loc int32, v float32)    { gl.Uniform1f(loc, v) }
func (p program) SetUniform2f(loc int32, x, y float32) { gl.Uniform2f(loc, x, y) }
func (p program) SetUniform1i(loc int32, v int32)      { gl.Uniform1i(loc, v) }
