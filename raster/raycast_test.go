package raster

import "testing"

// TestMollerTrumboreCanonical is property 6 and its worked example:
// for A=(0,0,0), B=(1,0,0), C=(0,1,0), a ray from (0.25,0.25,-1) in
// direction (0,0,1) hits (0.25,0.25,0) with barycentric (0.5,0.25,0.25).
func TestMollerTrumboreCanonical(t *testing.T) {
	a := Vec3{0, 0, 0}
	b := Vec3{1, 0, 0}
	c := Vec3{0, 1, 0}
	origin := Vec3{0.25, 0.25, -1}
	dir := Vec3{0, 0, 1}

	tHit, wa, wb, wc, hit := Intersect(origin, dir, a, b, c)
	if !hit {
		t.Fatal("expected a hit")
	}
	if !almostEqual(tHit, 1) {
		t.Errorf("t = %v, want 1", tHit)
	}
	point := origin.Add(dir.Scale(tHit))
	wantPoint := Vec3{0.25, 0.25, 0}
	if !vecAlmostEqual(point, wantPoint) {
		t.Errorf("hit point = %v, want %v", point, wantPoint)
	}
	if !almostEqual(wa, 0.5) || !almostEqual(wb, 0.25) || !almostEqual(wc, 0.25) {
		t.Errorf("barycentric = (%v,%v,%v), want (0.5,0.25,0.25)", wa, wb, wc)
	}
}

func TestMollerTrumboreMiss(t *testing.T) {
	a := Vec3{0, 0, 0}
	b := Vec3{1, 0, 0}
	c := Vec3{0, 1, 0}
	// Ray aimed well outside the triangle's footprint.
	origin := Vec3{5, 5, -1}
	dir := Vec3{0, 0, 1}
	if _, _, _, _, hit := Intersect(origin, dir, a, b, c); hit {
		t.Error("expected a miss")
	}
}

func TestMollerTrumboreParallelIsMiss(t *testing.T) {
	a := Vec3{0, 0, 0}
	b := Vec3{1, 0, 0}
	c := Vec3{0, 1, 0}
	origin := Vec3{0.25, 0.25, -1}
	dir := Vec3{1, 0, 0} // parallel to the triangle's plane
	if _, _, _, _, hit := Intersect(origin, dir, a, b, c); hit {
		t.Error("a ray parallel to the triangle's plane must report a miss, not a division error")
	}
}

func TestMollerTrumboreDegenerateTriangleIsMiss(t *testing.T) {
	a := Vec3{0, 0, 0}
	b := Vec3{0, 0, 0}
	c := Vec3{0, 0, 0}
	origin := Vec3{0, 0, -1}
	dir := Vec3{0, 0, 1}
	if _, _, _, _, hit := Intersect(origin, dir, a, b, c); hit {
		t.Error("a zero-area triangle must report a miss")
	}
}

func TestBarycentricAreasMatchesIntersect(t *testing.T) {
	a := Vec3{0, 0, 0}
	b := Vec3{1, 0, 0}
	c := Vec3{0, 1, 0}
	p := Vec3{0.25, 0.25, 0}
	wa, wb, wc := BarycentricAreas(p, a, b, c)
	if !almostEqual(wa, 0.5) || !almostEqual(wb, 0.25) || !almostEqual(wc, 0.25) {
		t.Errorf("barycentric = (%v,%v,%v), want (0.5,0.25,0.25)", wa, wb, wc)
	}
}

func almostEqual(a, b float64) bool {
	const eps = 1e-9
	d := a - b
	return d > -eps && d < eps
}

func vecAlmostEqual(a, b Vec3) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y) && almostEqual(a.Z, b.Z)
}
