//go:build !tinygo && cgo

package glplay

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/soypat/glgl/v4.1-core/glgl"
	"github.com/soypat/shaderplay"
)

// quad is the static quad mesh uploaded to the GPU.
type quad struct {
	vao, vbo, ebo uint32
	count         int32
}

func uploadQuad() (q quad, err error) {
	vertices := shaderplay.QuadVertices
	indices := shaderplay.QuadIndices
	gl.GenVertexArrays(1, &q.vao)
	gl.GenBuffers(1, &q.vbo)
	gl.GenBuffers(1, &q.ebo)
	gl.BindVertexArray(q.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, q.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*int(unsafe.Sizeof(vertices[0])), gl.Ptr(&vertices[0]), gl.STATIC_DRAW)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, q.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*int(unsafe.Sizeof(indices[0])), gl.Ptr(&indices[0]), gl.STATIC_DRAW)

	// Position attribute, location 0 in QuadVertexShader.
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*int32(unsafe.Sizeof(vertices[0])), gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	q.count = int32(len(indices))
	if err = glgl.Err(); err != nil {
		q.delete()
		return quad{}, fmt.Errorf("uploading quad: %w", err)
	}
	return q, nil
}

func (q quad) draw() {
	gl.BindVertexArray(q.vao)
	gl.DrawElements(gl.TRIANGLES, q.count, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

func (q *quad) delete() {
	gl.DeleteVertexArrays(1, &q.vao)
	gl.DeleteBuffers(1, &q.vbo)
	gl.DeleteBuffers(1, &q.ebo)
	*q = quad{}
}
