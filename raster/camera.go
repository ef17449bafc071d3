package raster

// Camera holds a viewpoint's position, orientation, clip distances,
// field of view, precomputed projection and view matrices, and the
// texture its model is painted with (spec.md §3's Camera type).
type Camera struct {
	Pos, Dir, Up     Vec3
	Near, Far        float64
	FovYDeg          float64
	Proj, View       Mat4
	Texture          *Texture
	right, upOrtho   Vec3
}

// New builds a Camera looking from pos in direction dir (need not be
// normalized) with world-up up, clipping at [near,far], with vertical
// field of view fovYDeg degrees and the given aspect ratio (w/h). It
// returns an error for any of the degenerate configurations
// [Perspective] rejects (spec.md §7's configuration-error class).
func New(pos, dir, up Vec3, near, far, fovYDeg, aspect float64, tex *Texture) (*Camera, error) {
	dir = dir.Normalize()
	if dir.Len() == 0 {
		return nil, errConfigf("camera direction must be non-zero")
	}
	proj, err := Perspective(fovYDeg, aspect, near, far)
	if err != nil {
		return nil, err
	}
	target := pos.Add(dir)
	view := LookAt(pos, target, up)

	right := up.Cross(dir).Normalize()
	if right.Len() == 0 {
		return nil, errConfigf("camera up vector must not be parallel to its direction")
	}
	upOrtho := dir.Cross(right)

	return &Camera{
		Pos: pos, Dir: dir, Up: up,
		Near: near, Far: far, FovYDeg: fovYDeg,
		Proj: proj, View: view,
		Texture: tex,
		right:   right, upOrtho: upOrtho,
	}, nil
}

// Ray returns the world-space ray cast for pixel (x,y) of a w x h
// raster, sampled at the pixel's centre.
//
// Per spec.md §4.4 steps 1-2, NDC coordinates are formed from the
// pixel position and a ray is cast with origin (x_ndc,y_ndc,-1) and
// direction (0,0,1) in a camera-local space. This implementation
// realizes that camera-local space concretely as an orthonormal
// (right, upOrtho, Dir) frame anchored one unit in front of the
// camera along Dir — i.e. Dir plays the role of "into the scene",
// the opposite sign convention from the OpenGL-style view matrix
// built by [LookAt] (whose z axis points back toward the eye; see
// DESIGN.md's view-matrix Open Question resolution). The two
// conventions coexist deliberately: View is for anything consuming a
// traditional view-space transform, while ray generation uses this
// simpler, self-consistent frame.
func (c *Camera) Ray(x, y, w, h int) (origin, dir Vec3) {
	xNdc := ((float64(x)+0.5)/float64(w) - 0.5) * 2
	yNdc := ((float64(y)+0.5)/float64(h) - 0.5) * 2
	origin = c.Pos.
		Add(c.Dir).
		Add(c.right.Scale(xNdc)).
		Add(c.upOrtho.Scale(yNdc))
	return origin, c.Dir
}
