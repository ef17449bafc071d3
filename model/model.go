// Package model implements the static geometry arena spec.md §3 calls
// "Model": a flat vertex table plus a flat triangular-face table,
// addressed by index rather than pointer (spec.md §9's "owning-by-index
// for model geometry" design note).
//
// Per spec.md §1, the model parser itself is explicitly out of the
// core's scope — the ray-caster (render.Frame) only ever consumes the
// Model type defined here. This package's OBJ reader (obj.go) exists
// only so the repository has a way to produce a Model at all; it is
// deliberately small.
package model

import "portgl.dev/raster"

// Vertex is one entry of the vertex arena: a homogeneous position, a
// 2-D texture coordinate, and a 3-D normal (spec.md §3).
type Vertex struct {
	Pos      raster.Vec4
	TexCoord raster.Vec2
	Normal   raster.Vec3
}

// Face is a triangular face: three indices into a Model's vertex
// arena.
type Face struct {
	V [3]int
}

// Model is an immutable-after-load arena of up to N vertices and M
// triangular faces (spec.md §3's capacity language; Go slices here
// stand in for the reference's fixed-capacity static arrays, since
// spec.md §9 treats compile-time vs. runtime-sized buffers as an
// implementer's choice).
type Model struct {
	Verts []Vertex
	Faces []Face
}

// Triangle returns the three vertices that face f indexes.
func (m *Model) Triangle(f Face) (a, b, c Vertex) {
	return m.Verts[f.V[0]], m.Verts[f.V[1]], m.Verts[f.V[2]]
}
