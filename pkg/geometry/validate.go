package geometry

import "fmt"

// Validate checks the modernized buffers: every index names an existing
// vertex, and shape ranges tile the index buffer in order with whole
// triangles.
func (g *Geometry) Validate() error {
	for i, idx := range g.Indices {
		if int(idx) >= len(g.Vertices) {
			return fmt.Errorf("%w: index %d at %d, %d vertices", ErrInvalidIndex, idx, i, len(g.Vertices))
		}
	}

	var next uint32
	for i := range g.Shapes {
		s := &g.Shapes[i]
		if s.FirstVertexOffset != next {
			return fmt.Errorf("%w: shape %d starts at %d, expected %d", ErrInvalidRange, i, s.FirstVertexOffset, next)
		}
		if s.VertexCount%3 != 0 {
			return fmt.Errorf("%w: shape %d has %d indices, not a triangle list", ErrInvalidRange, i, s.VertexCount)
		}
		next += s.VertexCount
	}
	if int(next) != len(g.Indices) {
		return fmt.Errorf("%w: shapes cover %d of %d indices", ErrInvalidRange, next, len(g.Indices))
	}
	return nil
}

// Indices16 returns the index buffer narrowed to 16 bits.
func (g *Geometry) Indices16() ([]uint16, error) {
	out := make([]uint16, len(g.Indices))
	for i, idx := range g.Indices {
		if idx > 0xFFFF {
			return nil, fmt.Errorf("%w: index %d at %d", ErrIndexOverflow, idx, i)
		}
		out[i] = uint16(idx)
	}
	return out, nil
}
