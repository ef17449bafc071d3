package raster

import "testing"

func TestNewCameraRejectsDegenerateConfig(t *testing.T) {
	tex := NewTexture(1, 1)
	if _, err := New(Vec3{}, Vec3{0, 0, 1}, Vec3{0, 1, 0}, 1, 1, 60, 1, tex); err == nil {
		t.Error("expected an error when near == far")
	}
	if _, err := New(Vec3{}, Vec3{0, 0, 1}, Vec3{0, 1, 0}, 0.1, 100, 0, 1, tex); err == nil {
		t.Error("expected an error for an out-of-range field of view")
	}
	if _, err := New(Vec3{}, Vec3{0, 0, 1}, Vec3{0, 0, 1}, 0.1, 100, 60, 1, tex); err == nil {
		t.Error("expected an error when up is parallel to the view direction")
	}
}

// TestCameraRayPixelCenters checks that the NDC mapping used by Ray
// samples pixel centres, per DESIGN.md's resolution of the x/W vs.
// (x+0.5)/W ambiguity in spec.md §4.4 step 1 (scenario S5's UV values
// only work out under the pixel-centre convention).
func TestCameraRayPixelCenters(t *testing.T) {
	tex := NewTexture(1, 1)
	cam, err := New(Vec3{0, 0, -2}, Vec3{0, 0, 1}, Vec3{0, 1, 0}, 0.1, 100, 90, 1, tex)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	origin, dir := cam.Ray(0, 0, 2, 2)
	wantOrigin := Vec3{-0.5, -0.5, -1}
	if !vecAlmostEqual(origin, wantOrigin) {
		t.Errorf("ray origin = %v, want %v", origin, wantOrigin)
	}
	if !vecAlmostEqual(dir, Vec3{0, 0, 1}) {
		t.Errorf("ray direction = %v, want (0,0,1)", dir)
	}
}
