package geometry

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/gxgeom/pkg/gx"
)

// Modernize triangulates every primitive and builds the shared vertex and
// index buffers. Shape, primitive and vertex order fully determine the
// output. Identical indirect vertices share one FlatVertex across shapes.
//
// Primitives are triangulated in place. On error the output buffers and
// shape ranges are cleared.
func (g *Geometry) Modernize(opts BuildOptions) error {
	log := opts.logger()

	table := g.Attributes
	if table == nil {
		table = &gx.AttributeTable{}
	}

	g.reset()
	reg := newVertexRegistry(len(table.Positions))
	maxIndex := opts.IndexFormat.MaxIndex()

	for si := range g.Shapes {
		shape := &g.Shapes[si]
		active := opts.activeAttributes(shape.Attributes)

		shape.FirstVertexOffset = uint32(len(g.Indices))

		for pi := range shape.Primitives {
			prim := &shape.Primitives[pi]
			if !prim.Type.Supported() {
				g.reset()
				return &ConversionError{Shape: si, Primitive: pi, Vertex: -1,
					Err: fmt.Errorf("%w: %s", gx.ErrUnsupportedPrimitive, prim.Type)}
			}

			passthrough := prim.Type == gx.PrimitiveTriangles || prim.Type == gx.PrimitiveQuads
			before := len(prim.Vertices)
			g.stats.Triangles += prim.Triangulate()
			g.stats.Primitives++
			if passthrough {
				if dropped := before - len(prim.Vertices); dropped > 0 {
					log.Warn("incomplete triangle dropped",
						zap.Int("shape", si),
						zap.Int("primitive", pi),
						zap.Int("vertices", dropped))
				}
			}

			for vi, v := range prim.Vertices {
				if idx, ok := reg.lookup(v); ok {
					g.Indices = append(g.Indices, idx)
					continue
				}

				fv, err := Resolve(table, active, v)
				if err != nil {
					g.reset()
					return &ConversionError{Shape: si, Primitive: pi, Vertex: vi, Err: err}
				}

				if uint64(len(g.Vertices)) > uint64(maxIndex) {
					g.reset()
					return &ConversionError{Shape: si, Primitive: pi, Vertex: vi,
						Err: fmt.Errorf("%w: %d vertices exceed %s", ErrIndexOverflow, len(g.Vertices)+1, opts.IndexFormat)}
				}
				idx := uint32(len(g.Vertices))
				g.Vertices = append(g.Vertices, fv)
				reg.insert(v, idx)
				g.Indices = append(g.Indices, idx)
			}
		}

		shape.VertexCount = uint32(len(g.Indices)) - shape.FirstVertexOffset
		if opts.ComputeCenters {
			shape.CenterOfMass = g.centerOfMass(shape)
		}

		log.Debug("shape built",
			zap.Int("shape", si),
			zap.Uint32("offset", shape.FirstVertexOffset),
			zap.Uint32("count", shape.VertexCount),
			zap.Int("primitives", len(shape.Primitives)))
	}

	g.stats.Shapes = len(g.Shapes)
	g.stats.Indices = len(g.Indices)
	g.stats.UniqueVertices = reg.len()
	g.stats.ReusedVertices = reg.reused

	log.Info("geometry modernized",
		zap.Int("shapes", g.stats.Shapes),
		zap.Int("triangles", g.stats.Triangles),
		zap.Int("indices", g.stats.Indices),
		zap.Int("vertices", g.stats.UniqueVertices),
		zap.Int("reused", g.stats.ReusedVertices))

	return nil
}

// Stats returns counters from the last successful Modernize.
func (g *Geometry) Stats() BuildStats {
	return g.stats
}

// ShapeIndices returns the slice of the index buffer owned by shape i, or
// nil when i is not a shape or its range lies outside the index buffer.
func (g *Geometry) ShapeIndices(i int) []uint32 {
	if i < 0 || i >= len(g.Shapes) {
		return nil
	}
	s := &g.Shapes[i]
	end := uint64(s.FirstVertexOffset) + uint64(s.VertexCount)
	if end > uint64(len(g.Indices)) {
		return nil
	}
	return g.Indices[s.FirstVertexOffset:end]
}

// activeAttributes returns the attributes to resolve for a shape.
func (o BuildOptions) activeAttributes(attrs []gx.Attribute) []gx.Attribute {
	if !o.DropMatrixIndex {
		return attrs
	}
	out := make([]gx.Attribute, 0, len(attrs))
	for _, a := range attrs {
		if a != gx.AttributePositionMatrixIndex {
			out = append(out, a)
		}
	}
	return out
}

// centerOfMass averages the xyz position of every index in the shape's range.
func (g *Geometry) centerOfMass(s *Shape) mgl32.Vec3 {
	if s.VertexCount == 0 {
		return mgl32.Vec3{}
	}

	var sum mgl32.Vec3
	for _, idx := range g.Indices[s.FirstVertexOffset : s.FirstVertexOffset+s.VertexCount] {
		sum = sum.Add(g.Vertices[idx].Position.Vec3())
	}
	return sum.Mul(1 / float32(s.VertexCount))
}

func (g *Geometry) reset() {
	g.Vertices = nil
	g.Indices = nil
	g.stats = BuildStats{}
	for i := range g.Shapes {
		g.Shapes[i].FirstVertexOffset = 0
		g.Shapes[i].VertexCount = 0
		g.Shapes[i].CenterOfMass = mgl32.Vec3{}
	}
}
