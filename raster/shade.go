package raster

import "math"

// LightPos and LightColor are the renderer's single fixed point light,
// spec.md §4.4 step 5: "fixed light_pos = (1.5, 0, −1.5), light_col =
// (1,1,1)".
var (
	LightPos   = Vec3{X: 1.5, Y: 0, Z: -1.5}
	LightColor = Vec3{X: 1, Y: 1, Z: 1}

	// SpecularColor tints the specular highlight, grounded on
	// original_source/src/graphics/shader.rs's specular_colour
	// constant.
	SpecularColor = Vec3{X: 0.1, Y: 0.1, Z: 0.1}
)

const (
	ambientFactor  = 0.1
	diffuseFactor  = 0.65
	specularFactor = 0.25
	shininess      = 32
)

// Shade computes the Blinn–Phong colour of a surface point, given its
// world position and normal, the diffuse colour sampled from the
// model's texture at that point, and the eye (camera) position used to
// derive the view direction. Grounded on
// original_source/src/graphics/shader.rs, spec.md §4.4 step 5.
func Shade(point, normal Vec3, diffuse Pixel, eye Vec3) Pixel {
	n := normal.Normalize()
	l := point.Sub(LightPos).Normalize()
	lambert := math.Max(0, l.Dot(n))

	// spec.md writes the view direction as normalize(-P), which only
	// matches eye-point for a camera fixed at the origin; generalized
	// here to an arbitrary eye position.
	viewDir := eye.Sub(point).Normalize()
	h := l.Add(viewDir).Normalize()
	specAngle := math.Max(0, h.Dot(n))
	spec := math.Pow(specAngle, shininess) * specularFactor

	diffuseF := diffuse.toFloat()
	ambient := Vec3{ambientFactor, ambientFactor, ambientFactor}
	color := ambient.
		Add(diffuseF.Mul(LightColor).Scale(lambert * diffuseFactor)).
		Add(SpecularColor.Scale(spec))

	return colorFromFloat(color)
}
