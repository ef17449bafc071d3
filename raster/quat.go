package raster

import "math"

// Quat is a unit quaternion, used to build model-transform rotation
// matrices. Grounded on original_source/src/types/quat.rs's
// Quaternion, with fields renamed to the conventional w/x/y/z (the
// source's a/i/j/k).
type Quat struct{ W, X, Y, Z float64 }

// QuatFromAxisAngle returns the quaternion rotating by angleRad
// radians around axis (which need not be normalized).
func QuatFromAxisAngle(axis Vec3, angleRad float64) Quat {
	axis = axis.Normalize()
	s := math.Sin(angleRad / 2)
	return Quat{
		W: math.Cos(angleRad / 2),
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
	}
}

func (q Quat) len() float64 {
	return math.Sqrt(q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z)
}

// Normalize returns q scaled to unit length.
func (q Quat) Normalize() Quat {
	l := q.len()
	if l == 0 {
		return q
	}
	return Quat{q.W / l, q.X / l, q.Y / l, q.Z / l}
}

// Mat4 converts q to a rotation matrix, re-derived from the standard
// quaternion-to-matrix formula rather than ported from
// original_source/src/types/matrix.rs, whose quaternion conversion has
// a transcription bug in v_22 (q.i*q.i*q.j*q.j where a sum was
// intended) and stray v_03/v_13 = 1.0 entries — spec.md §9's third
// Open Question, resolved by re-derivation as instructed.
func (q Quat) Mat4() Mat4 {
	q = q.Normalize()
	w, x, y, z := q.W, q.X, q.Y, q.Z
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z

	return Mat4{
		{1 - 2*(yy+zz), 2 * (xy - wz), 2 * (xz + wy), 0},
		{2 * (xy + wz), 1 - 2*(xx+zz), 2 * (yz - wx), 0},
		{2 * (xz - wy), 2 * (yz + wx), 1 - 2*(xx+yy), 0},
		{0, 0, 0, 1},
	}
}
