package raster

import "math"

// Mat4 is a row-major 4x4 matrix: m[row][col]. Grounded on
// original_source/src/types/matrix.rs's Mat4<T>, but stored as a plain
// array instead of sixteen named fields (v_00..v_33) since Go has no
// const-generic template sizing to motivate the flat naming scheme.
type Mat4 [4][4]float64

// Identity4 is the 4x4 identity matrix.
var Identity4 = Mat4{
	{1, 0, 0, 0},
	{0, 1, 0, 0},
	{0, 0, 1, 0},
	{0, 0, 0, 1},
}

// Mul returns a*b (a applied after b, i.e. (a.Mul(b)).MulVec4(v) ==
// a.MulVec4(b.MulVec4(v))).
func (a Mat4) Mul(b Mat4) Mat4 {
	var r Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += a[i][k] * b[k][j]
			}
			r[i][j] = sum
		}
	}
	return r
}

// MulVec4 transforms v by the matrix.
func (a Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		X: a[0][0]*v.X + a[0][1]*v.Y + a[0][2]*v.Z + a[0][3]*v.W,
		Y: a[1][0]*v.X + a[1][1]*v.Y + a[1][2]*v.Z + a[1][3]*v.W,
		Z: a[2][0]*v.X + a[2][1]*v.Y + a[2][2]*v.Z + a[2][3]*v.W,
		W: a[3][0]*v.X + a[3][1]*v.Y + a[3][2]*v.Z + a[3][3]*v.W,
	}
}

// Translate returns a matrix that translates by v.
func Translate(v Vec3) Mat4 {
	m := Identity4
	m[0][3], m[1][3], m[2][3] = v.X, v.Y, v.Z
	return m
}

// LookAt builds a right-handed view matrix from eye position, target
// point and up vector, per DESIGN.md's resolution of spec.md §9's
// view-matrix Open Question: the view-space z axis ("forward" in the
// basis below) points from the target toward the eye, i.e. toward the
// camera, so positions in front of the camera have negative view-space
// z. Grounded on original_source/src/graphics/camera.rs::view.
func LookAt(eye, target, up Vec3) Mat4 {
	forward := eye.Sub(target).Normalize()
	right := up.Cross(forward).Normalize()
	newUp := forward.Cross(right)

	basis := Mat4{
		{right.X, right.Y, right.Z, 0},
		{newUp.X, newUp.Y, newUp.Z, 0},
		{forward.X, forward.Y, forward.Z, 0},
		{0, 0, 0, 1},
	}
	return basis.Mul(Translate(eye.Neg()))
}

// Perspective builds a perspective projection matrix from the vertical
// field of view (degrees), aspect ratio (width/height), and near/far
// clip distances.
//
// Row 3 is (0,0,1,0), so the post-projection W equals the view-space
// z, which is negative for points in front of a camera built with
// [LookAt] (the depth sign is flipped relative to a (0,0,-1,0) row)
// — DESIGN.md's resolution of spec.md §9's "projection matrix row 3"
// Open Question, matching the variant in
// original_source/src/graphics/camera.rs::projection (not the
// alternate (0,0,-1,0) row mentioned as a draft in spec.md §9).
func Perspective(fovYDeg, aspect, near, far float64) (Mat4, error) {
	if near == far {
		return Mat4{}, errConfigf("near (%v) must not equal far", near)
	}
	if fovYDeg <= 0 || fovYDeg >= 180 {
		return Mat4{}, errConfigf("fov_y must be in (0,180) degrees, got %v", fovYDeg)
	}
	if aspect == 0 {
		return Mat4{}, errConfigf("aspect ratio must be non-zero")
	}
	f := 1 / math.Tan(fovYDeg*math.Pi/180/2)
	a1 := -(near - far) / (near - far)
	a2 := (2 * far * near) / (near - far)
	return Mat4{
		{f / aspect, 0, 0, 0},
		{0, f, 0, 0},
		{0, 0, a1, a2},
		{0, 0, 1, 0},
	}, nil
}
