package model

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"portgl.dev/raster"
)

// Limits bounds the static capacity a parsed Model may occupy, per
// spec.md §3's "up to N vertices... up to M... faces" and §7's
// "model-parse error (malformed OBJ, overflow of static capacities) —
// abort at startup."
type Limits struct {
	MaxVerts int
	MaxFaces int
}

// DefaultLimits keeps a parsed model well under the embedded
// framebuffer budget spec.md §9 calls out ("keep W*H small (< 30000)
// for the embedded profile") — a scene doesn't need to approach that
// bound to stay interesting to ray-cast.
var DefaultLimits = Limits{MaxVerts: 4096, MaxFaces: 4096}

// ParseOBJ reads a single-object, triangulated Wavefront OBJ stream
// (v/vt/vn/f records only — materials, groups, and smoothing groups
// are ignored) into a Model, enforcing limits.
//
// This is a minimal reader in the teacher's small fixed-grammar parser
// style (e.g. bip39.go's mnemonic word-list scanning): one token type
// per line, no generalized OBJ feature support.
func ParseOBJ(r io.Reader, limits Limits) (*Model, error) {
	var positions []raster.Vec3
	var texCoords []raster.Vec2
	var normals []raster.Vec3
	m := &Model{}

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		switch fields[0] {
		case "v":
			v, err := parseFloats(fields[1:], 3, line)
			if err != nil {
				return nil, err
			}
			positions = append(positions, raster.Vec3{X: v[0], Y: v[1], Z: v[2]})
		case "vt":
			v, err := parseFloats(fields[1:], 2, line)
			if err != nil {
				return nil, err
			}
			texCoords = append(texCoords, raster.Vec2{X: v[0], Y: v[1]})
		case "vn":
			v, err := parseFloats(fields[1:], 3, line)
			if err != nil {
				return nil, err
			}
			normals = append(normals, raster.Vec3{X: v[0], Y: v[1], Z: v[2]})
		case "f":
			if len(fields) != 4 {
				return nil, fmt.Errorf("model: parse error at line %d: only triangulated faces are supported, got %d vertex refs", line, len(fields)-1)
			}
			var face Face
			for i, tok := range fields[1:4] {
				pi, ti, ni, err := parseFaceVertex(tok, line)
				if err != nil {
					return nil, err
				}
				if pi < 0 || pi >= len(positions) {
					return nil, fmt.Errorf("model: parse error at line %d: vertex index %d out of range", line, pi+1)
				}
				vert := Vertex{Pos: raster.Vec4Of(positions[pi], 1)}
				if ti >= 0 {
					if ti >= len(texCoords) {
						return nil, fmt.Errorf("model: parse error at line %d: texture index %d out of range", line, ti+1)
					}
					vert.TexCoord = texCoords[ti]
				}
				if ni >= 0 {
					if ni >= len(normals) {
						return nil, fmt.Errorf("model: parse error at line %d: normal index %d out of range", line, ni+1)
					}
					vert.Normal = normals[ni]
				}
				if len(m.Verts) >= limits.MaxVerts {
					return nil, fmt.Errorf("model: parse error: exceeded max vertex capacity %d", limits.MaxVerts)
				}
				face.V[i] = len(m.Verts)
				m.Verts = append(m.Verts, vert)
			}
			if len(m.Faces) >= limits.MaxFaces {
				return nil, fmt.Errorf("model: parse error: exceeded max face capacity %d", limits.MaxFaces)
			}
			m.Faces = append(m.Faces, face)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("model: %w", err)
	}
	return m, nil
}

func parseFloats(fields []string, n, line int) ([]float64, error) {
	if len(fields) < n {
		return nil, fmt.Errorf("model: parse error at line %d: expected %d numbers, got %d", line, n, len(fields))
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, fmt.Errorf("model: parse error at line %d: %w", line, err)
		}
		out[i] = v
	}
	return out, nil
}

// parseFaceVertex parses one "v", "v/t", "v//n" or "v/t/n" face
// reference, returning zero-based indices (texIdx/normIdx are -1 if
// absent).
func parseFaceVertex(tok string, line int) (posIdx, texIdx, normIdx int, err error) {
	parts := strings.Split(tok, "/")
	posIdx, err = parseIndex(parts[0], line)
	if err != nil {
		return 0, 0, 0, err
	}
	texIdx, normIdx = -1, -1
	if len(parts) > 1 && parts[1] != "" {
		texIdx, err = parseIndex(parts[1], line)
		if err != nil {
			return 0, 0, 0, err
		}
	}
	if len(parts) > 2 && parts[2] != "" {
		normIdx, err = parseIndex(parts[2], line)
		if err != nil {
			return 0, 0, 0, err
		}
	}
	return posIdx, texIdx, normIdx, nil
}

func parseIndex(s string, line int) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("model: parse error at line %d: bad index %q: %w", line, s, err)
	}
	// OBJ indices are 1-based.
	return v - 1, nil
}
