package geometry

import "github.com/Faultbox/gxgeom/pkg/gx"

// vertexRegistry maps each distinct indirect vertex to the output index it
// was first emitted at. Lookups compare the whole index tuple.
type vertexRegistry struct {
	seen   map[gx.IndirectVertex]uint32
	reused int
}

func newVertexRegistry(hint int) *vertexRegistry {
	return &vertexRegistry{seen: make(map[gx.IndirectVertex]uint32, hint)}
}

func (r *vertexRegistry) lookup(v gx.IndirectVertex) (uint32, bool) {
	idx, ok := r.seen[v]
	if ok {
		r.reused++
	}
	return idx, ok
}

func (r *vertexRegistry) insert(v gx.IndirectVertex, idx uint32) {
	r.seen[v] = idx
}

func (r *vertexRegistry) len() int {
	return len(r.seen)
}
