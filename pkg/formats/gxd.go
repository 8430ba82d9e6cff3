// GXD (GX geometry description) is a YAML format holding an attribute table
// and shapes with their raw per-attribute index streams.
package formats

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/gxgeom/pkg/geometry"
	"github.com/Faultbox/gxgeom/pkg/gx"
)

// GXD format errors.
var (
	ErrInvalidDescription = errors.New("invalid geometry description")
)

// GXD is the raw YAML document.
type GXD struct {
	Attributes GXDAttributes `yaml:"attributes"`
	Shapes     []GXDShape    `yaml:"shapes"`
}

// GXDAttributes holds the attribute pools. Colors and TexCoords are indexed
// by channel.
type GXDAttributes struct {
	Positions [][]float32   `yaml:"positions"`
	Normals   [][]float32   `yaml:"normals"`
	Colors    [][][]float32 `yaml:"colors"`
	TexCoords [][][]float32 `yaml:"texcoords"`
}

// GXDShape describes one shape. Each vertex lists one pool index per entry
// of Attributes, in the same order.
type GXDShape struct {
	Name       string         `yaml:"name"`
	Attributes []string       `yaml:"attributes"`
	Primitives []GXDPrimitive `yaml:"primitives"`
}

// GXDPrimitive is a primitive given either by type name or by GX opcode.
type GXDPrimitive struct {
	Type     string     `yaml:"type"`
	Opcode   *uint8     `yaml:"opcode"`
	Vertices [][]uint16 `yaml:"vertices"`
}

// ParseGXD parses a geometry description from YAML data.
// Shape names are stored in Shape.UserData.
func ParseGXD(data []byte) (*geometry.Geometry, error) {
	var doc GXD
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDescription, err)
	}
	return doc.Geometry()
}

// ParseGXDFile parses a geometry description from disk.
func ParseGXDFile(path string) (*geometry.Geometry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading GXD file: %w", err)
	}
	return ParseGXD(data)
}

// Geometry converts the document into an unbuilt geometry.
func (d *GXD) Geometry() (*geometry.Geometry, error) {
	table, err := d.Attributes.table()
	if err != nil {
		return nil, err
	}

	g := &geometry.Geometry{
		Attributes: table,
		Shapes:     make([]geometry.Shape, len(d.Shapes)),
	}
	for i := range d.Shapes {
		shape, err := d.Shapes[i].shape()
		if err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
		g.Shapes[i] = *shape
	}
	return g, nil
}

func (a *GXDAttributes) table() (*gx.AttributeTable, error) {
	t := &gx.AttributeTable{}
	var err error

	// Positions default to w=1 when only xyz is given.
	if t.Positions, err = vec4s(a.Positions, 3, mgl32.Vec4{0, 0, 0, 1}); err != nil {
		return nil, fmt.Errorf("positions: %w", err)
	}
	if t.Normals, err = vec3s(a.Normals, 3); err != nil {
		return nil, fmt.Errorf("normals: %w", err)
	}

	if len(a.Colors) > gx.ColorChannels {
		return nil, fmt.Errorf("%w: %d color channels", gx.ErrOutOfRangeChannel, len(a.Colors))
	}
	for ch, pool := range a.Colors {
		if t.Colors[ch], err = vec4s(pool, 3, mgl32.Vec4{0, 0, 0, 1}); err != nil {
			return nil, fmt.Errorf("colors[%d]: %w", ch, err)
		}
	}

	if len(a.TexCoords) > gx.TexCoordChannels {
		return nil, fmt.Errorf("%w: %d texcoord channels", gx.ErrOutOfRangeChannel, len(a.TexCoords))
	}
	for ch, pool := range a.TexCoords {
		if t.TexCoords[ch], err = vec3s(pool, 2); err != nil {
			return nil, fmt.Errorf("texcoords[%d]: %w", ch, err)
		}
	}

	return t, nil
}

func (s *GXDShape) shape() (*geometry.Shape, error) {
	attrs := make([]gx.Attribute, 0, len(s.Attributes))
	for _, name := range s.Attributes {
		attr, err := gx.ParseAttribute(name)
		if err != nil {
			return nil, err
		}
		if attr == gx.AttributeNull {
			break
		}
		attrs = append(attrs, attr)
	}

	shape := &geometry.Shape{
		Attributes: attrs,
		Primitives: make([]gx.Primitive, len(s.Primitives)),
	}
	if s.Name != "" {
		shape.UserData = s.Name
	}

	for i := range s.Primitives {
		prim, err := s.Primitives[i].primitive(attrs)
		if err != nil {
			return nil, fmt.Errorf("primitive %d: %w", i, err)
		}
		shape.Primitives[i] = *prim
	}
	return shape, nil
}

func (p *GXDPrimitive) primitive(attrs []gx.Attribute) (*gx.Primitive, error) {
	var typ gx.PrimitiveType
	var err error
	switch {
	case p.Type != "":
		typ, err = gx.ParsePrimitiveType(p.Type)
	case p.Opcode != nil:
		typ, err = gx.PrimitiveTypeFromOpcode(*p.Opcode)
	default:
		err = fmt.Errorf("%w: primitive has no type", ErrInvalidDescription)
	}
	if err != nil {
		return nil, err
	}

	prim := &gx.Primitive{
		Type:     typ,
		Vertices: make([]gx.IndirectVertex, len(p.Vertices)),
	}
	for i, indices := range p.Vertices {
		if len(indices) != len(attrs) {
			return nil, fmt.Errorf("%w: vertex %d has %d indices for %d attributes",
				ErrInvalidDescription, i, len(indices), len(attrs))
		}
		v := gx.NewIndirectVertex()
		for j, attr := range attrs {
			v.SetIndex(attr, indices[j])
		}
		prim.Vertices[i] = v
	}
	return prim, nil
}

// vec4s converts component lists of length minLen..4, filling missing
// components from def.
func vec4s(in [][]float32, minLen int, def mgl32.Vec4) ([]mgl32.Vec4, error) {
	out := make([]mgl32.Vec4, len(in))
	for i, c := range in {
		if len(c) < minLen || len(c) > 4 {
			return nil, fmt.Errorf("%w: entry %d has %d components", ErrInvalidDescription, i, len(c))
		}
		out[i] = def
		copy(out[i][:], c)
	}
	return out, nil
}

// vec3s converts component lists of length minLen..3, zero filling the rest.
func vec3s(in [][]float32, minLen int) ([]mgl32.Vec3, error) {
	out := make([]mgl32.Vec3, len(in))
	for i, c := range in {
		if len(c) < minLen || len(c) > 3 {
			return nil, fmt.Errorf("%w: entry %d has %d components", ErrInvalidDescription, i, len(c))
		}
		copy(out[i][:], c)
	}
	return out, nil
}
