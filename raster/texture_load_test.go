package raster

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func encodeTestTexture(w, h int, fill Pixel) []byte {
	var buf bytes.Buffer
	buf.Write(textureMagic[:])
	var dims [4]byte
	binary.BigEndian.PutUint16(dims[0:2], uint16(w))
	binary.BigEndian.PutUint16(dims[2:4], uint16(h))
	buf.Write(dims[:])
	for i := 0; i < w*h; i++ {
		buf.WriteByte(fill.R)
		buf.WriteByte(fill.G)
		buf.WriteByte(fill.B)
	}
	return buf.Bytes()
}

func TestLoadTextureRoundTrip(t *testing.T) {
	want := Pixel{R: 10, G: 20, B: 30}
	data := encodeTestTexture(3, 2, want)
	tex, err := LoadTexture(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("LoadTexture: %v", err)
	}
	if tex.W != 3 || tex.H != 2 {
		t.Fatalf("dims = %dx%d, want 3x2", tex.W, tex.H)
	}
	if got := tex.Pix[0]; got != want {
		t.Errorf("pixel (0,0) = %+v, want %+v", got, want)
	}
	if got := tex.Pix[len(tex.Pix)-1]; got != want {
		t.Errorf("last pixel = %+v, want %+v", got, want)
	}
}

func TestLoadTextureRejectsBadMagic(t *testing.T) {
	data := append([]byte("NOPE"), make([]byte, 4)...)
	if _, err := LoadTexture(bytes.NewReader(data)); err == nil {
		t.Error("expected an error for a bad magic")
	}
}

func TestLoadTextureRejectsTruncatedRows(t *testing.T) {
	data := encodeTestTexture(4, 4, Pixel{R: 1, G: 2, B: 3})
	data = data[:len(data)-5]
	if _, err := LoadTexture(bytes.NewReader(data)); err == nil {
		t.Error("expected an error for a truncated texture body")
	}
}
