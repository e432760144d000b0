package shaderplay

import (
	"errors"
)

// Reloader rebuilds a playground program from its fragment shader file.
// A failed reload leaves the current program in place.
type Reloader struct {
	Compiler Compiler
	// Path is the fragment shader file.
	Path string
	// Vertex is the vertex shader source, usually [QuadVertexShader].
	Vertex string
	// Names are the uniforms declared when wrapping mainImage sources.
	Names UniformNames

	program uint32
	builds  int
}

// Program returns the current program or 0 if none was built yet.
func (r *Reloader) Program() uint32 { return r.program }

// Builds returns the number of successful builds.
func (r *Reloader) Builds() int { return r.builds }

// Reload reads and builds the fragment shader. On success the previous program
// is deleted and the new one returned. On failure the previous program is
// returned together with the error, compile errors have their line numbers
// mapped to the file.
func (r *Reloader) Reload() (uint32, error) {
	if r.Path == "" {
		return r.program, errors.New("reloader has no shader path")
	}
	src, err := ReadShaderFile(r.Path)
	if err != nil {
		return r.program, err
	}
	return r.Build(src)
}

// Build builds fragment source src, see [Reloader.Reload].
func (r *Reloader) Build(src string) (uint32, error) {
	vertex := r.Vertex
	if vertex == "" {
		vertex = QuadVertexShader
	}
	frag := PrepareFragment(src, r.Names)
	prog, err := BuildProgram(r.Compiler, ShaderSource{Vertex: vertex, Fragment: frag.Source})
	if err != nil {
		var cerr *CompileError
		if errors.As(err, &cerr) && cerr.Stage == StageFragment {
			cerr.ShiftLines(frag.LineOffset)
		}
		return r.program, err
	}
	if r.program != 0 {
		r.Compiler.DeleteProgram(r.program)
	}
	r.program = prog
	r.builds++
	return prog, nil
}
