package raster

// Pixel is a 24-bit colour triple, spec.md §3's "Pixel (24-bit colour
// triple)": three unsigned 8-bit channels, no alpha.
type Pixel struct {
	R, G, B byte
}

// Texture is a W x H grid of 24-bit colours, row-major, sampled by
// nearest-neighbour (spec.md §3). Storage shape is grounded on
// rgb16.Image (same row-major []pixel/Stride/Rect-free layout,
// generalized from 16-bit RGB565 to 24-bit RGB storage since spec.md
// §3 specifies a Pixel as three full 8-bit channels).
type Texture struct {
	W, H int
	Pix  []Pixel
}

// NewTexture allocates a W x H texture, initialised to black.
func NewTexture(w, h int) *Texture {
	return &Texture{W: w, H: h, Pix: make([]Pixel, w*h)}
}

// Set stores the colour at grid position (x,y).
func (t *Texture) Set(x, y int, p Pixel) {
	t.Pix[y*t.W+x] = p
}

// Sample returns the nearest-neighbour texel for texture coordinates
// (u,v) in [0,1)^2: tex[floor(v*H)*W + floor(u*W)] (spec.md §3).
// Coordinates outside [0,1) are wrapped, matching the periodic tiling
// a texture-mapped surface normally wants and avoiding an out-of-range
// index.
func (t *Texture) Sample(u, v float64) Pixel {
	x := wrapIndex(int(u*float64(t.W)), t.W)
	y := wrapIndex(int(v*float64(t.H)), t.H)
	return t.Pix[y*t.W+x]
}

func wrapIndex(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// GenCheckerboard returns a w x h texture tiled with cell x cell black
// and white squares, spec.md §8 scenario S6's
// "Texture::gen_checkerboard", grounded on
// original_source/src/graphics/texture.rs::gen_checkerboard.
func GenCheckerboard(w, h, cell int) *Texture {
	t := NewTexture(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			white := (x/cell)%2 == 1 && (y/cell)%2 == 1
			if white {
				t.Set(x, y, Pixel{255, 255, 255})
			} else {
				t.Set(x, y, Pixel{0, 0, 0})
			}
		}
	}
	return t
}

func (p Pixel) toFloat() Vec3 {
	return Vec3{float64(p.R) / 255, float64(p.G) / 255, float64(p.B) / 255}
}

func colorFromFloat(v Vec3) Pixel {
	return Pixel{
		R: clampByte(v.X),
		G: clampByte(v.Y),
		B: clampByte(v.Z),
	}
}

func clampByte(v float64) byte {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return byte(v*255 + 0.5)
}
