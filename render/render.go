// Package render implements the ray-cast rasteriser pass (spec.md
// §4.4, component C4) that glues a [model.Model] and a
// [raster.Camera] together into a finished frame: for each pixel it
// casts [raster.Camera.Ray], tests every face with [raster.Intersect],
// shades the winning hit with [raster.Shade], and writes the result
// into a [raster.Texture] used as the frame's pixel source.
//
// This package exists only because [raster] cannot import [model]
// without a cycle (model already imports raster for its vector
// types); the split mirrors how spec.md §1 separates the in-scope
// rasteriser core from the out-of-scope model loader, wiring the two
// together at the one point that must know about both.
package render

import (
	"portgl.dev/model"
	"portgl.dev/raster"
)

// Transform is the model-to-world matrix applied to every vertex
// before intersection testing, spec.md §4.4 step 3's "transformed
// triangle". Pass [raster.Identity4] for a model already authored in
// world space.
type Transform = raster.Mat4

// Frame renders m (placed in the world by transform) as seen by cam
// into a newly allocated w x h framebuffer, row-major, matching
// spec.md §4.4's pixel order.
//
// Per spec.md §4.4's miss/multiple-hit policy: a pixel whose ray hits
// no face renders as (0,0,0); a pixel whose ray hits more than one
// face takes the colour of the last face tested, with no depth sort.
func Frame(cam *raster.Camera, m *model.Model, transform Transform, outW, outH int) *raster.Texture {
	out := raster.NewTexture(outW, outH)
	for y := 0; y < outH; y++ {
		for x := 0; x < outW; x++ {
			out.Set(x, y, shadePixel(cam, m, transform, x, y, outW, outH))
		}
	}
	return out
}

func shadePixel(cam *raster.Camera, m *model.Model, transform Transform, x, y, w, h int) raster.Pixel {
	origin, dir := cam.Ray(x, y, w, h)

	var hit bool
	var best raster.Pixel
	for _, f := range m.Faces {
		va, vb, vc := m.Triangle(f)
		a := transform.MulVec4(va.Pos).Vec3()
		b := transform.MulVec4(vb.Pos).Vec3()
		c := transform.MulVec4(vc.Pos).Vec3()

		_, wa, wb, wc, ok := raster.Intersect(origin, dir, a, b, c)
		if !ok {
			continue
		}
		hit = true

		point := a.Scale(wa).Add(b.Scale(wb)).Add(c.Scale(wc))
		normal := va.Normal.Scale(wa).Add(vb.Normal.Scale(wb)).Add(vc.Normal.Scale(wc))
		uv := raster.Vec2{
			X: va.TexCoord.X*wa + vb.TexCoord.X*wb + vc.TexCoord.X*wc,
			Y: va.TexCoord.Y*wa + vb.TexCoord.Y*wb + vc.TexCoord.Y*wc,
		}
		diffuse := cam.Texture.Sample(uv.X, uv.Y)
		best = raster.Shade(point, normal, diffuse, cam.Pos)
	}
	if !hit {
		return raster.Pixel{}
	}
	return best
}
