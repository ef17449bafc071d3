// Command texbake bakes a PNG into the fixed-size static texture
// format (spec.md §3's Texture, component C6) that a firmware image
// embeds with go:embed, the same "bake an asset at build time on a
// development host" role the teacher's cmd/vectorfont and
// font/poppins/ttf.go play for fonts -- here for the one raster.Texture
// a scene needs.
//
// Usage: texbake in.png out.tex width height
package main

import (
	"encoding/binary"
	"fmt"
	"image"
	_ "image/png"
	"os"

	"golang.org/x/image/draw"
)

func main() {
	if len(os.Args) != 5 {
		fmt.Fprintf(os.Stderr, "usage: texbake in.png out.tex width height\n")
		os.Exit(2)
	}
	if err := run(os.Args[1], os.Args[2], os.Args[3], os.Args[4]); err != nil {
		fmt.Fprintf(os.Stderr, "texbake: %v\n", err)
		os.Exit(1)
	}
}

func run(inPath, outPath, widthArg, heightArg string) error {
	w, err := parseDim(widthArg)
	if err != nil {
		return err
	}
	h, err := parseDim(heightArg)
	if err != nil {
		return err
	}

	in, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer in.Close()
	src, _, err := image.Decode(in)
	if err != nil {
		return fmt.Errorf("decode %s: %w", inPath, err)
	}

	// BiLinear is golang.org/x/image/draw's smooth area-weighted
	// scaler, the closest fit in the pack to spec.md's "resample to
	// the static texture's fixed resolution" requirement -- the
	// package has no filter literally named "box", and NearestNeighbor
	// would alias badly when downscaling a source photo.
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()
	return writeTexture(out, dst, w, h)
}

func parseDim(s string) (int, error) {
	var n int
	if _, err := fmt.Sscanf(s, "%d", &n); err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid dimension %q", s)
	}
	return n, nil
}

// writeTexture emits the on-disk texture format a firmware image
// go:embeds: a 4-byte magic, big-endian uint16 width and height, then
// w*h tightly packed RGB888 triples in row-major order -- the same
// storage shape as raster.Texture.Pix, with the alpha channel of each
// RGBA pixel dropped.
func writeTexture(out *os.File, img *image.RGBA, w, h int) error {
	if _, err := out.Write([]byte("PTEX")); err != nil {
		return err
	}
	var dims [4]byte
	binary.BigEndian.PutUint16(dims[0:2], uint16(w))
	binary.BigEndian.PutUint16(dims[2:4], uint16(h))
	if _, err := out.Write(dims[:]); err != nil {
		return err
	}
	row := make([]byte, w*3)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			row[x*3+0] = byte(r >> 8)
			row[x*3+1] = byte(g >> 8)
			row[x*3+2] = byte(b >> 8)
		}
		if _, err := out.Write(row); err != nil {
			return err
		}
	}
	return nil
}
