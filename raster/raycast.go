package raster

// epsilon is the minimum hit distance accepted by [Intersect], guarding
// against a ray re-hitting the triangle it was just cast from (spec.md
// §4.4 step 3: "If the ray hits and t > ε, record the hit point").
const epsilon = 1e-7

// Intersect runs the Möller–Trumbore ray/triangle test against triangle
// (a,b,c) in whatever space both the ray and the triangle are already
// expressed in (world space, in the renderer's case). It reports the
// hit distance t and barycentric weights (wa,wb,wc) for a,b,c
// respectively, grounded on original_source/src/graphics/moller.rs.
//
// A parallel or degenerate triangle (zero-area, or ray parallel to its
// plane) is reported as a miss rather than an error — spec.md §7's
// "Degenerate/parallel ray-triangle cases... are arithmetic edge
// cases, not faults."
func Intersect(origin, dir, a, b, c Vec3) (t float64, wa, wb, wc float64, hit bool) {
	edge1 := b.Sub(a)
	edge2 := c.Sub(a)
	pvec := dir.Cross(edge2)
	det := edge1.Dot(pvec)
	if det > -epsilon && det < epsilon {
		return 0, 0, 0, 0, false
	}
	invDet := 1 / det

	tvec := origin.Sub(a)
	u := tvec.Dot(pvec) * invDet
	if u < 0 || u > 1 {
		return 0, 0, 0, 0, false
	}

	qvec := tvec.Cross(edge1)
	v := dir.Dot(qvec) * invDet
	if v < 0 || u+v > 1 {
		return 0, 0, 0, 0, false
	}

	tHit := edge2.Dot(qvec) * invDet
	if tHit <= epsilon {
		return 0, 0, 0, 0, false
	}

	// u,v are Möller–Trumbore's edge1/edge2 barycentric weights, i.e.
	// the weights of b and c; wa is what's left over.
	return tHit, 1 - u - v, u, v, true
}

// BarycentricAreas recomputes (wa,wb,wc) for a point P already known to
// lie in the plane of triangle (a,b,c), from sub-triangle areas —
// spec.md §4.4 step 4's stated method, used where a caller has a hit
// point but not [Intersect]'s u/v (e.g. a point arriving from a
// different pipeline stage).
func BarycentricAreas(p, a, b, c Vec3) (wa, wb, wc float64) {
	total := triangleArea(a, b, c)
	if total == 0 {
		return 0, 0, 0
	}
	wa = triangleArea(p, b, c) / total
	wb = triangleArea(p, a, c) / total
	wc = triangleArea(p, a, b) / total
	return wa, wb, wc
}

func triangleArea(a, b, c Vec3) float64 {
	return b.Sub(a).Cross(c.Sub(a)).Len() * 0.5
}

// lerpVec3 returns wa*a + wb*b + wc*c.
func lerpVec3(wa, wb, wc float64, a, b, c Vec3) Vec3 {
	return a.Scale(wa).Add(b.Scale(wb)).Add(c.Scale(wc))
}

// lerpVec2 returns wa*a + wb*b + wc*c.
func lerpVec2(wa, wb, wc float64, a, b, c Vec2) Vec2 {
	return Vec2{
		X: a.X*wa + b.X*wb + c.X*wc,
		Y: a.Y*wa + b.Y*wb + c.Y*wc,
	}
}
