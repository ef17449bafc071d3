package main

import (
	"portgl.dev/model"
	"portgl.dev/raster"
)

// identityTransform places the demo scene's geometry directly in world
// space (render.Frame's model-to-world matrix, spec.md §4.4 step 3).
var identityTransform = raster.Identity4

// buildScene returns the camera and model rendered every frame.
//
// Component C6 (spec.md §1) is explicitly out of the core's scope, and
// no baked asset ships with this repository yet: cmd/texbake exists to
// bake a PNG into a texture at build time and go:embed it here, but
// until a concrete texture asset is checked in, the demo scene below is
// procedural -- a single textured quad lit by raster.Shade's fixed
// point light, enough to exercise every stage of render.Frame on real
// hardware without a model file on the SD card or in flash.
func buildScene() (*raster.Camera, *model.Model, error) {
	tex := raster.GenCheckerboard(64, 64, 8)

	m := &model.Model{
		Verts: []model.Vertex{
			{Pos: raster.Vec4{X: -1, Y: -1, Z: 0, W: 1}, TexCoord: raster.Vec2{X: 0, Y: 0}, Normal: raster.Vec3{X: 0, Y: 0, Z: -1}},
			{Pos: raster.Vec4{X: 1, Y: -1, Z: 0, W: 1}, TexCoord: raster.Vec2{X: 1, Y: 0}, Normal: raster.Vec3{X: 0, Y: 0, Z: -1}},
			{Pos: raster.Vec4{X: 1, Y: 1, Z: 0, W: 1}, TexCoord: raster.Vec2{X: 1, Y: 1}, Normal: raster.Vec3{X: 0, Y: 0, Z: -1}},
			{Pos: raster.Vec4{X: -1, Y: 1, Z: 0, W: 1}, TexCoord: raster.Vec2{X: 0, Y: 1}, Normal: raster.Vec3{X: 0, Y: 0, Z: -1}},
		},
		Faces: []model.Face{
			{V: [3]int{0, 1, 2}},
			{V: [3]int{0, 2, 3}},
		},
	}

	aspect := float64(dviProfile.HActive) / float64(dviProfile.VActive)
	cam, err := raster.New(
		raster.Vec3{X: 0, Y: 0, Z: -3},
		raster.Vec3{X: 0, Y: 0, Z: 1},
		raster.Vec3{X: 0, Y: 1, Z: 0},
		0.1, 100, 60, aspect, tex,
	)
	if err != nil {
		return nil, nil, err
	}
	return cam, m, nil
}
