package shaderplay

import (
	"regexp"
	"strings"
)

// DefaultVersion is the GLSL version directive inserted into sources lacking one.
const DefaultVersion = "#version 330 core"

// QuadVertexShader draws [QuadVertices] unchanged and passes texture
// coordinates in [0,1] to the fragment stage.
const QuadVertexShader = DefaultVersion + `
layout (location = 0) in vec3 aPos;
out vec2 vTexCoord;
void main() {
	vTexCoord = aPos.xy * 0.5 + 0.5;
	gl_Position = vec4(aPos, 1.0);
}
`

var (
	versionDirective = regexp.MustCompile(`^#\s*version\b`)
	mainImageDecl    = regexp.MustCompile(`\bvoid\s+mainImage\s*\(`)
	mainDecl         = regexp.MustCompile(`\bvoid\s+main\s*\(\s*(void)?\s*\)`)
)

// Prepared is fragment source ready for compilation.
type Prepared struct {
	Source string
	// LineOffset is the number of lines inserted before the user's code
	// following the #version directive. Subtract it from driver line numbers.
	LineOffset int
	// Wrapped is set when a mainImage entry point was wrapped with a main.
	Wrapped bool
}

// PrepareFragment makes src compilable as a playground fragment shader. A
// #version directive is inserted when missing. Sources defining
// mainImage(out vec4, in vec2) and no main are wrapped: the enabled uniforms in
// names not already declared by src are declared after the #version directive
// and a main calling mainImage with gl_FragCoord is appended.
func PrepareFragment(src string, names UniformNames) Prepared {
	// head holds everything up to and including the #version line.
	var head, body string
	offset := 0
	if end := versionEnd(src); end >= 0 {
		head, body = src[:end], src[end:]
		if !strings.HasSuffix(head, "\n") {
			head += "\n"
		}
	} else {
		head, body = DefaultVersion+"\n", src
		offset = 1
	}
	wrap := mainImageDecl.MatchString(body) && !mainDecl.MatchString(body)
	if !wrap && offset == 0 {
		return Prepared{Source: src}
	}
	var b strings.Builder
	b.WriteString(head)
	if wrap {
		header := mainImageHeader(names, body)
		b.WriteString(header)
		offset += strings.Count(header, "\n")
	}
	b.WriteString(body)
	if wrap {
		if !strings.HasSuffix(body, "\n") {
			b.WriteByte('\n')
		}
		b.WriteString(mainImageFooter)
	}
	return Prepared{Source: b.String(), LineOffset: offset, Wrapped: wrap}
}

// versionEnd returns the byte offset just past the line holding the #version
// directive or -1 if there is none. Only blank lines and comments may precede
// the directive.
func versionEnd(src string) int {
	inBlock := false
	pos := 0
	for pos < len(src) {
		line, _, _ := strings.Cut(src[pos:], "\n")
		next := pos + len(line) + 1
		if next > len(src) {
			next = len(src)
		}
		rest := line
		for {
			rest = strings.TrimSpace(rest)
			if inBlock {
				i := strings.Index(rest, "*/")
				if i < 0 {
					rest = ""
					break
				}
				rest = rest[i+2:]
				inBlock = false
				continue
			}
			if strings.HasPrefix(rest, "/*") {
				rest = rest[2:]
				inBlock = true
				continue
			}
			if strings.HasPrefix(rest, "//") {
				rest = ""
			}
			break
		}
		switch {
		case rest == "":
			pos = next
		case versionDirective.MatchString(rest):
			return next
		default:
			return -1
		}
	}
	return -1
}

const mainImageFooter = `out vec4 shaderplayFragColor;
void main() {
	vec4 color = vec4(0.0, 0.0, 0.0, 1.0);
	mainImage(color, gl_FragCoord.xy);
	shaderplayFragColor = color;
}
`

// mainImageHeader declares the enabled uniforms that body does not declare itself.
func mainImageHeader(names UniformNames, body string) string {
	var b strings.Builder
	decl := func(typ, name string) {
		if name == "" || declaresUniform(body, name) {
			return
		}
		b.WriteString("uniform " + typ + " " + name + ";\n")
	}
	decl("float", names.Time)
	decl("vec2", names.Resolution)
	decl("float", names.TimeDelta)
	decl("int", names.Frame)
	decl("vec2", names.Mouse)
	return b.String()
}

func declaresUniform(src, name string) bool {
	re := regexp.MustCompile(`\buniform\b[^;]*\b` + regexp.QuoteMeta(name) + `\b`)
	return re.MatchString(src)
}
