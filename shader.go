package shaderplay

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Stage is a programmable pipeline stage.
type Stage uint8

const (
	StageVertex Stage = iota
	StageFragment
)

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	}
	return fmt.Sprintf("Stage(%d)", uint8(s))
}

// ShaderSource holds the source code of a vertex/fragment program.
type ShaderSource struct {
	Vertex   string
	Fragment string
}

// Compiler is the graphics API collaborator that turns GLSL into programs.
type Compiler interface {
	// CompileShader compiles source for stage. ok reports the compile status
	// and infoLog holds the driver's human readable diagnostics.
	CompileShader(stage Stage, source string) (shader uint32, ok bool, infoLog string)
	// LinkProgram links a vertex and a fragment shader.
	LinkProgram(vertex, fragment uint32) (program uint32, ok bool, infoLog string)
	DeleteShader(shader uint32)
	DeleteProgram(program uint32)
}

// CompileError is returned when a shader stage fails to compile.
type CompileError struct {
	Stage       Stage
	Log         string
	Diagnostics []Diagnostic
}

func (e *CompileError) Error() string {
	log := strings.TrimSpace(e.Log)
	if log == "" {
		log = "no diagnostic log"
	}
	return fmt.Sprintf("%s shader compile failed:\n%s", e.Stage, log)
}

// ShiftLines subtracts offset from every diagnostic line number so that they
// refer to the user's source instead of the prepared source. Lines that fall
// in the generated header become zero.
func (e *CompileError) ShiftLines(offset int) {
	if offset == 0 {
		return
	}
	for i := range e.Diagnostics {
		d := &e.Diagnostics[i]
		if d.Line == 0 {
			continue
		}
		d.Line -= offset
		if d.Line < 0 {
			d.Line = 0
		}
	}
}

// LinkError is returned when compiled shaders fail to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	log := strings.TrimSpace(e.Log)
	if log == "" {
		log = "no diagnostic log"
	}
	return "shader program link failed:\n" + log
}

// BuildProgram compiles both stages of src and links them. Linking is not
// attempted if a stage fails to compile. The returned error is either a
// [*CompileError] or a [*LinkError].
func BuildProgram(c Compiler, src ShaderSource) (uint32, error) {
	if c == nil {
		return 0, errors.New("nil shader compiler")
	}
	vs, err := compileStage(c, StageVertex, src.Vertex)
	if err != nil {
		return 0, err
	}
	defer c.DeleteShader(vs)
	fs, err := compileStage(c, StageFragment, src.Fragment)
	if err != nil {
		return 0, err
	}
	defer c.DeleteShader(fs)
	prog, ok, log := c.LinkProgram(vs, fs)
	if !ok {
		if prog != 0 {
			c.DeleteProgram(prog)
		}
		return 0, &LinkError{Log: log}
	}
	return prog, nil
}

func compileStage(c Compiler, stage Stage, source string) (uint32, error) {
	if strings.TrimSpace(source) == "" {
		return 0, &CompileError{Stage: stage, Log: "empty " + stage.String() + " shader source"}
	}
	id, ok, log := c.CompileShader(stage, source)
	if !ok {
		if id != 0 {
			c.DeleteShader(id)
		}
		return 0, &CompileError{Stage: stage, Log: log, Diagnostics: ParseDiagnostics(log)}
	}
	return id, nil
}

// ReadShaderFile reads the whole shader file at path.
func ReadShaderFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading shader source: %w", err)
	}
	return string(b), nil
}

// NullTerminated returns s with a trailing NUL byte as required by the GL
// string conversion helpers. s is returned unchanged if it already has one.
func NullTerminated(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}
