package shaderplay

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepareFragmentVersion(t *testing.T) {
	p := PrepareFragment(okFragment, DefaultUniformNames())
	assert.Equal(t, okFragment, p.Source, "complete sources are untouched")
	assert.Zero(t, p.LineOffset)
	assert.False(t, p.Wrapped)

	body := "out vec4 c;\nvoid main() { c = vec4(1.0); }\n"
	p = PrepareFragment(body, DefaultUniformNames())
	assert.True(t, strings.HasPrefix(p.Source, DefaultVersion+"\n"))
	assert.Equal(t, 1, p.LineOffset)
	assert.True(t, strings.HasSuffix(p.Source, body))
}

func TestPrepareFragmentMainImage(t *testing.T) {
	const toy = `void mainImage(out vec4 fragColor, in vec2 fragCoord) {
	vec2 uv = fragCoord / uResolution;
	fragColor = vec4(uv, 0.5 + 0.5*sin(uTime), 1.0);
}`
	names := DefaultUniformNames()
	p := PrepareFragment(toy, names)
	assert.True(t, p.Wrapped)
	assert.Contains(t, p.Source, "uniform float uTime;\n")
	assert.Contains(t, p.Source, "uniform vec2 uResolution;\n")
	assert.Contains(t, p.Source, "uniform int uFrame;\n")
	assert.Contains(t, p.Source, "mainImage(color, gl_FragCoord.xy);")
	// Version line plus one declaration per uniform.
	assert.Equal(t, 6, p.LineOffset)
	lines := strings.Split(p.Source, "\n")
	assert.Equal(t, "\tvec2 uv = fragCoord / uResolution;", lines[1+p.LineOffset])

	names.Mouse = ""
	names.Frame = ""
	p = PrepareFragment("#version 410 core\n"+toy, names)
	assert.True(t, strings.HasPrefix(p.Source, "#version 410 core\n"))
	assert.NotContains(t, p.Source, "uMouse")
	assert.Equal(t, 3, p.LineOffset)
}

func TestPrepareFragmentMainImageWithMain(t *testing.T) {
	src := "void mainImage(out vec4 c, in vec2 p) { c = vec4(0.0); }\nout vec4 o;\nvoid main() { mainImage(o, gl_FragCoord.xy); }\n"
	p := PrepareFragment(src, DefaultUniformNames())
	assert.False(t, p.Wrapped)
	assert.Equal(t, 1, strings.Count(p.Source, "void main()"))
}

func TestPrepareFragmentCommentsBeforeVersion(t *testing.T) {
	var tests = []string{
		"// plasma by me\n#version 330 core\nout vec4 c;\nvoid main() { c = vec4(1.0); }\n",
		"\n\n  #version 410 core\nout vec4 c;\nvoid main() { c = vec4(1.0); }\n",
		"/* MIT License\n * Copyright\n */\n#version 330 core\nout vec4 c;\nvoid main() { c = vec4(1.0); }\n",
		"/* short */ // and a line comment\n# version 330 core\nout vec4 c;\nvoid main() { c = vec4(1.0); }",
	}
	for _, src := range tests {
		p := PrepareFragment(src, DefaultUniformNames())
		assert.Equal(t, src, p.Source)
		assert.Zero(t, p.LineOffset)
	}

	// Code before any directive means there is none, so one is inserted.
	src := "// no version\nout vec4 c;\nvoid main() { c = vec4(1.0); }\n"
	p := PrepareFragment(src, DefaultUniformNames())
	assert.Equal(t, DefaultVersion+"\n"+src, p.Source)
	assert.Equal(t, 1, p.LineOffset)
}

func TestPrepareFragmentMainImageAfterComment(t *testing.T) {
	names := DefaultUniformNames()
	names.TimeDelta, names.Frame, names.Mouse = "", "", ""
	src := "// toy\n#version 330 core\nvoid mainImage(out vec4 fragColor, in vec2 fragCoord) {\n\tfragColor = vec4(uTime);\n}\n"
	p := PrepareFragment(src, names)
	require.True(t, p.Wrapped)
	assert.Equal(t, 1, strings.Count(p.Source, "#version"))
	assert.True(t, strings.HasPrefix(p.Source, "// toy\n#version 330 core\nuniform float uTime;\nuniform vec2 uResolution;\n"))
	assert.Equal(t, 2, p.LineOffset)
	lines := strings.Split(p.Source, "\n")
	// User line 4 lands at prepared line 4+LineOffset.
	assert.Equal(t, "\tfragColor = vec4(uTime);", lines[4+p.LineOffset-1])
}

func TestPrepareFragmentKeepsUserUniforms(t *testing.T) {
	src := "uniform float uTime;\nuniform highp vec2 uMouse, uResolution;\nvoid mainImage(out vec4 fragColor, in vec2 fragCoord) {\n\tfragColor = vec4(uTime);\n}\n"
	p := PrepareFragment(src, DefaultUniformNames())
	require.True(t, p.Wrapped)
	assert.Equal(t, 1, strings.Count(p.Source, "uTime;"))
	assert.NotContains(t, p.Source, "uniform vec2 uResolution;")
	assert.NotContains(t, p.Source, "uniform vec2 uMouse;")
	assert.Contains(t, p.Source, "uniform float uTimeDelta;\n")
	assert.Contains(t, p.Source, "uniform int uFrame;\n")
	// Version line plus the two declarations the source lacked.
	assert.Equal(t, 3, p.LineOffset)
}
