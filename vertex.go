package dusk

import "github.com/go-gl/mathgl/mgl32"

// Vertex is a position + 4-component texcoord + byte color vertex. Light quads
// use TexCoord and Color as a per-light parameter carrier rather than for
// texture lookup.
type Vertex struct {
	Pos      mgl32.Vec3
	TexCoord mgl32.Vec4
	Color    ColorRGBA
}

// QuadIndices appends two triangles per quad for n quads laid out as
// top-left, bottom-left, bottom-right, top-right.
func QuadIndices(dst []uint16, n int) []uint16 {
	for i := 0; i < n; i++ {
		base := uint16(i * 4)
		dst = append(dst, base, base+1, base+2, base, base+2, base+3)
	}
	return dst
}
