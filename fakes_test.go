package shaderplay

import (
	"fmt"
	"strings"
)

// fakeCompiler emulates a GL driver. Sources containing the word SYNTAX fail
// to compile with a Mesa style log pointing at the offending line.
type fakeCompiler struct {
	next     uint32
	linkFail string

	compiled        []Stage
	linked          int
	deletedShaders  []uint32
	deletedPrograms []uint32
}

func (c *fakeCompiler) CompileShader(stage Stage, source string) (uint32, bool, string) {
	c.next++
	c.compiled = append(c.compiled, stage)
	for i, line := range strings.Split(source, "\n") {
		if strings.Contains(line, "SYNTAX") {
			return c.next, false, fmt.Sprintf("0:%d(1): error: syntax error, unexpected IDENTIFIER\n", i+1)
		}
	}
	return c.next, true, ""
}

func (c *fakeCompiler) LinkProgram(vertex, fragment uint32) (uint32, bool, string) {
	c.next++
	c.linked++
	if c.linkFail != "" {
		return c.next, false, c.linkFail
	}
	return c.next, true, ""
}

func (c *fakeCompiler) DeleteShader(shader uint32) {
	c.deletedShaders = append(c.deletedShaders, shader)
}

func (c *fakeCompiler) DeleteProgram(program uint32) {
	c.deletedPrograms = append(c.deletedPrograms, program)
}

// fakeProgram records uniform uploads by location.
type fakeProgram struct {
	id       uint32
	declared map[string]int32
	lookups  int
	f1       map[int32]float32
	f2       map[int32][2]float32
	i1       map[int32]int32
}

func newFakeProgram(id uint32, uniforms ...string) *fakeProgram {
	p := &fakeProgram{
		id:       id,
		declared: make(map[string]int32),
		f1:       make(map[int32]float32),
		f2:       make(map[int32][2]float32),
		i1:       make(map[int32]int32),
	}
	for i, name := range uniforms {
		p.declared[name] = int32(i)
	}
	return p
}

func (p *fakeProgram) ID() uint32 { return p.id }

func (p *fakeProgram) UniformLocation(name string) (int32, bool) {
	p.lookups++
	loc, ok := p.declared[name]
	if !ok {
		return -1, false
	}
	return loc, true
}

func (p *fakeProgram) SetUniform1f(loc int32, v float32)    { p.f1[loc] = v }
func (p *fakeProgram) SetUniform2f(loc int32, x, y float32) { p.f2[loc] = [2]float32{x, y} }
func (p *fakeProgram) SetUniform1i(loc int32, v int32)      { p.i1[loc] = v }

// manualClock is a TimeSource advanced by hand.
type manualClock struct{ now uint64 }

func (m *manualClock) source() uint64    { return m.now }
func (m *manualClock) advance(ms uint64) { m.now += ms }
func (m *manualClock) rewind(ms uint64)  { m.now -= ms }
