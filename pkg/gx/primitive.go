package gx

import (
	"fmt"
	"strings"
)

// PrimitiveType is a GX draw command opcode with the vertex format bits cleared.
type PrimitiveType uint8

const (
	PrimitiveNone          PrimitiveType = 0x00
	PrimitiveQuads         PrimitiveType = 0x80
	PrimitiveTriangles     PrimitiveType = 0x90
	PrimitiveTriangleStrip PrimitiveType = 0x98
	PrimitiveTriangleFan   PrimitiveType = 0xA0
	PrimitiveLines         PrimitiveType = 0xA8
	PrimitiveLineStrip     PrimitiveType = 0xB0
	PrimitivePoints        PrimitiveType = 0xB8
)

// opcodeMask strips the vertex attribute format index (low 3 bits) from a draw opcode.
const opcodeMask = 0xF8

// String returns a human-readable primitive type name.
func (p PrimitiveType) String() string {
	switch p {
	case PrimitiveNone:
		return "None"
	case PrimitiveQuads:
		return "Quads"
	case PrimitiveTriangles:
		return "Triangles"
	case PrimitiveTriangleStrip:
		return "TriangleStrip"
	case PrimitiveTriangleFan:
		return "TriangleFan"
	case PrimitiveLines:
		return "Lines"
	case PrimitiveLineStrip:
		return "LineStrip"
	case PrimitivePoints:
		return "Points"
	default:
		return fmt.Sprintf("Unknown(0x%02X)", uint8(p))
	}
}

// Supported reports whether p can be converted to a triangle list.
func (p PrimitiveType) Supported() bool {
	switch p {
	case PrimitiveQuads, PrimitiveTriangles, PrimitiveTriangleStrip, PrimitiveTriangleFan:
		return true
	}
	return false
}

// PrimitiveTypeFromOpcode decodes a GX draw opcode. Line and point
// primitives are rejected.
func PrimitiveTypeFromOpcode(op byte) (PrimitiveType, error) {
	p := PrimitiveType(op & opcodeMask)
	if !p.Supported() {
		return PrimitiveNone, fmt.Errorf("%w: opcode 0x%02X (%s)", ErrUnsupportedPrimitive, op, p)
	}
	return p, nil
}

// ParsePrimitiveType looks up a supported primitive type by name.
func ParsePrimitiveType(name string) (PrimitiveType, error) {
	for _, p := range []PrimitiveType{PrimitiveQuads, PrimitiveTriangles, PrimitiveTriangleStrip, PrimitiveTriangleFan} {
		if strings.EqualFold(p.String(), name) {
			return p, nil
		}
	}
	return PrimitiveNone, fmt.Errorf("%w: %q", ErrUnsupportedPrimitive, name)
}

// Primitive is a run of vertices drawn with a single topology.
type Primitive struct {
	Type     PrimitiveType
	Vertices []IndirectVertex
}

// Triangulate replaces the primitive's vertices with an equivalent triangle
// list and returns the number of triangles produced. Triangles with two equal
// vertices are dropped. Triangle and quad lists pass through whole
// triangles only; trailing vertices that do not complete one are cut.
func (p *Primitive) Triangulate() int {
	switch p.Type {
	case PrimitiveTriangleStrip:
		p.Vertices = triangulateStrip(p.Vertices)
	case PrimitiveTriangleFan:
		p.Vertices = triangulateFan(p.Vertices)
	default:
		n := len(p.Vertices) / 3
		if len(p.Vertices) != n*3 {
			p.Vertices = p.Vertices[:n*3]
		}
		return n
	}
	p.Type = PrimitiveTriangles
	return len(p.Vertices) / 3
}

// triangulateStrip alternates winding on odd vertices so every triangle
// keeps the strip's facing.
func triangulateStrip(verts []IndirectVertex) []IndirectVertex {
	if len(verts) < 3 {
		return nil
	}

	tris := make([]IndirectVertex, 0, (len(verts)-2)*3)
	for i := 2; i < len(verts); i++ {
		v0 := verts[i-2]
		v1, v2 := verts[i-1], verts[i]
		if i%2 != 0 {
			v1, v2 = v2, v1
		}
		if degenerate(v0, v1, v2) {
			continue
		}
		tris = append(tris, v0, v1, v2)
	}
	return tris
}

// triangulateFan pivots every triangle on the first vertex, which is emitted last.
func triangulateFan(verts []IndirectVertex) []IndirectVertex {
	if len(verts) < 3 {
		return nil
	}

	pivot := verts[0]
	tris := make([]IndirectVertex, 0, (len(verts)-2)*3)
	for i := 1; i < len(verts)-1; i++ {
		v0, v1 := verts[i], verts[i+1]
		if degenerate(v0, v1, pivot) {
			continue
		}
		tris = append(tris, v0, v1, pivot)
	}
	return tris
}

func degenerate(a, b, c IndirectVertex) bool {
	return a == b || a == c || b == c
}
