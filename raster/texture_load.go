package raster

import (
	"encoding/binary"
	"fmt"
	"io"
)

// textureMagic identifies the on-disk format cmd/texbake writes: see
// its writeTexture for the exact byte layout this mirrors.
var textureMagic = [4]byte{'P', 'T', 'E', 'X'}

// LoadTexture decodes a texture baked by cmd/texbake -- the
// go:embed-able counterpart to [GenCheckerboard]'s procedural texture,
// for a firmware image that ships a real baked asset instead of a
// built-in demo pattern.
func LoadTexture(r io.Reader) (*Texture, error) {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, fmt.Errorf("raster: read texture header: %w", err)
	}
	if magic != textureMagic {
		return nil, fmt.Errorf("raster: not a texbake texture (bad magic %q)", magic)
	}
	var dims [4]byte
	if _, err := io.ReadFull(r, dims[:]); err != nil {
		return nil, fmt.Errorf("raster: read texture dimensions: %w", err)
	}
	w := int(binary.BigEndian.Uint16(dims[0:2]))
	h := int(binary.BigEndian.Uint16(dims[2:4]))
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("raster: invalid texture dimensions %dx%d", w, h)
	}

	tex := NewTexture(w, h)
	row := make([]byte, w*3)
	for y := 0; y < h; y++ {
		if _, err := io.ReadFull(r, row); err != nil {
			return nil, fmt.Errorf("raster: read texture row %d: %w", y, err)
		}
		for x := 0; x < w; x++ {
			tex.Set(x, y, Pixel{R: row[x*3], G: row[x*3+1], B: row[x*3+2]})
		}
	}
	return tex, nil
}
