package render

import (
	"testing"

	"portgl.dev/model"
	"portgl.dev/raster"
)

// quadModel returns an axis-aligned unit quad at z=0 spanning NDC
// [-1,1]^2, with UV coordinates running linearly 0..1 across it —
// scenario S5's "axis-aligned unit quad facing the camera".
func quadModel() *model.Model {
	v := func(x, y, u, vv float64) model.Vertex {
		return model.Vertex{
			Pos:      raster.Vec4Of(raster.Vec3{X: x, Y: y, Z: 0}, 1),
			TexCoord: raster.Vec2{X: u, Y: vv},
			Normal:   raster.Vec3{X: 0, Y: 0, Z: -1},
		}
	}
	m := &model.Model{
		Verts: []model.Vertex{
			v(-1, -1, 0, 0), // 0 bottom-left
			v(1, -1, 1, 0),  // 1 bottom-right
			v(1, 1, 1, 1),   // 2 top-right
			v(-1, 1, 0, 1),  // 3 top-left
		},
		Faces: []model.Face{
			{V: [3]int{0, 1, 2}},
			{V: [3]int{0, 2, 3}},
		},
	}
	return m
}

func testCamera(t *testing.T, tex *raster.Texture) *raster.Camera {
	t.Helper()
	cam, err := raster.New(raster.Vec3{X: 0, Y: 0, Z: -2}, raster.Vec3{X: 0, Y: 0, Z: 1}, raster.Vec3{X: 0, Y: 1, Z: 0}, 0.1, 100, 90, 1, tex)
	if err != nil {
		t.Fatalf("raster.New: %v", err)
	}
	return cam
}

// TestFrameSamplesQuadrantUVs is scenario S5: a 2x2 raster against the
// unit quad must sample the texture at (0.25,0.25), (0.75,0.25),
// (0.25,0.75), (0.75,0.75) for pixels (0,0),(1,0),(0,1),(1,1)
// respectively. Each quadrant of the backing texture is a distinct
// solid colour, and each output pixel is compared with raster.Shade
// applied at the expected hit point to the texel at the expected UV.
func TestFrameSamplesQuadrantUVs(t *testing.T) {
	tex := raster.NewTexture(2, 2)
	tex.Set(0, 0, raster.Pixel{R: 10})
	tex.Set(1, 0, raster.Pixel{R: 20})
	tex.Set(0, 1, raster.Pixel{R: 30})
	tex.Set(1, 1, raster.Pixel{R: 40})

	cam := testCamera(t, tex)
	m := quadModel()
	out := Frame(cam, m, raster.Identity4, 2, 2)

	// Each pixel's ray must land exactly on the quadrant scenario S5
	// names; the expected colour is an independent Sample call at that
	// UV, shaded at the matching point of the quad (x = 2u-1, y = 2v-1,
	// z = 0) with the quad's normal.
	type corner struct {
		x, y           int
		wantU, wantV   float64
	}
	for _, c := range []corner{
		{0, 0, 0.25, 0.25},
		{1, 0, 0.75, 0.25},
		{0, 1, 0.25, 0.75},
		{1, 1, 0.75, 0.75},
	} {
		hitPoint := raster.Vec3{X: 2*c.wantU - 1, Y: 2*c.wantV - 1, Z: 0}
		want := raster.Shade(hitPoint, raster.Vec3{X: 0, Y: 0, Z: -1}, tex.Sample(c.wantU, c.wantV), cam.Pos)
		got := out.Pix[c.y*2+c.x]
		if got != want {
			t.Errorf("pixel (%d,%d) = %+v, want %+v (texel at UV (%.2f,%.2f), shaded)", c.x, c.y, got, want, c.wantU, c.wantV)
		}
	}
}

// TestFrameDeterministic is property 7: two renders of the same model
// and camera are byte-identical.
func TestFrameDeterministic(t *testing.T) {
	tex := raster.GenCheckerboard(16, 16, 4)
	cam := testCamera(t, tex)
	m := quadModel()

	out1 := Frame(cam, m, raster.Identity4, 8, 8)
	out2 := Frame(cam, m, raster.Identity4, 8, 8)

	if len(out1.Pix) != len(out2.Pix) {
		t.Fatalf("framebuffer size differs: %d vs %d", len(out1.Pix), len(out2.Pix))
	}
	for i := range out1.Pix {
		if out1.Pix[i] != out2.Pix[i] {
			t.Fatalf("pixel %d differs between identical renders: %v vs %v", i, out1.Pix[i], out2.Pix[i])
		}
	}
}

// TestFrameMissIsBlack checks spec.md §4.4's miss policy: a ray that
// hits no face renders (0,0,0).
func TestFrameMissIsBlack(t *testing.T) {
	tex := raster.NewTexture(1, 1)
	cam := testCamera(t, tex)
	empty := &model.Model{}
	out := Frame(cam, empty, raster.Identity4, 4, 4)
	for i, p := range out.Pix {
		if p != (raster.Pixel{}) {
			t.Errorf("pixel %d = %v, want black for a model with no faces", i, p)
		}
	}
}
