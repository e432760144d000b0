package shaderplay

// QuadVertices are the positions of a quad covering the whole viewport.
var QuadVertices = [4 * 3]float32{
	1, 1, 0, // top right
	1, -1, 0, // bottom right
	-1, -1, 0, // bottom left
	-1, 1, 0, // top left
}

// QuadIndices index [QuadVertices] as two triangles.
var QuadIndices = [6]uint32{
	0, 1, 3,
	1, 2, 3,
}
