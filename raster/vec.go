// Package raster implements the ray-cast rasteriser and Blinn-Phong
// shader (spec.md §4.4, component C4): for each output pixel it casts
// a ray against the model, interpolates vertex attributes at the hit,
// and shades the result.
//
// The vector/matrix/quaternion types in this file and in mat4.go and
// quat.go are fixed-size value types with no heap allocation, grounded
// on original_source/src/types/{vector,matrix,quat}.rs but re-derived
// rather than ported (spec.md §9's three Open Questions; see
// DESIGN.md). They exist only because spec.md's math-primitives
// Non-goal ("math primitives... explicitly OUT of scope; they appear
// only as interfaces the core consumes") still requires something
// concrete for the in-scope rasteriser (C4, 35% of the design) to
// compute with.
package raster

import "math"

// Vec2 is a 2-D vector, used for texture coordinates.
type Vec2 struct{ X, Y float64 }

// Vec3 is a 3-D vector, used for positions, normals and colours.
type Vec3 struct{ X, Y, Z float64 }

func (a Vec3) Add(b Vec3) Vec3 { return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a Vec3) Sub(b Vec3) Vec3 { return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (a Vec3) Scale(s float64) Vec3 {
	return Vec3{a.X * s, a.Y * s, a.Z * s}
}
func (a Vec3) Mul(b Vec3) Vec3 { return Vec3{a.X * b.X, a.Y * b.Y, a.Z * b.Z} }
func (a Vec3) Neg() Vec3       { return Vec3{-a.X, -a.Y, -a.Z} }

func (a Vec3) Dot(b Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

func (a Vec3) Len() float64 {
	return math.Sqrt(a.Dot(a))
}

// Normalize returns a unit vector in the direction of a. The zero
// vector normalizes to itself (no hit geometry should ever produce
// one; callers that might should check Len() first).
func (a Vec3) Normalize() Vec3 {
	l := a.Len()
	if l == 0 {
		return a
	}
	return a.Scale(1 / l)
}

// Vec4 is a homogeneous 4-vector, used for transformed vertex
// positions.
type Vec4 struct{ X, Y, Z, W float64 }

func Vec4Of(v Vec3, w float64) Vec4 { return Vec4{v.X, v.Y, v.Z, w} }

// Vec3 drops the homogeneous component.
func (a Vec4) Vec3() Vec3 { return Vec3{a.X, a.Y, a.Z} }

// PerspectiveDivide divides the vector by its homogeneous component,
// returning a 3-vector in normalized device coordinates. When W is 0
// it does not divide and returns the first three components
// unchanged.
func (a Vec4) PerspectiveDivide() Vec3 {
	if a.W == 0 {
		return a.Vec3()
	}
	return Vec3{a.X / a.W, a.Y / a.W, a.Z / a.W}
}
