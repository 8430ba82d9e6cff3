package gx

// UnsetIndex marks an attribute slot that was never assigned.
const UnsetIndex uint16 = 0xFFFF

// IndirectVertex is a vertex expressed as one pool index per attribute.
// It is comparable: two vertices are equal only if every slot matches,
// including slots for attributes the owning shape does not use.
type IndirectVertex [AttributeCount]uint16

// NewIndirectVertex returns a vertex with every slot unset.
func NewIndirectVertex() IndirectVertex {
	var v IndirectVertex
	for i := range v {
		v[i] = UnsetIndex
	}
	return v
}

// Index returns the pool index stored for attr, or UnsetIndex for
// attributes outside the recognized range.
func (v IndirectVertex) Index(attr Attribute) uint16 {
	if !attr.Valid() {
		return UnsetIndex
	}
	return v[attr]
}

// SetIndex stores the pool index for attr. Unrecognized attributes are ignored.
func (v *IndirectVertex) SetIndex(attr Attribute, index uint16) {
	if !attr.Valid() {
		return
	}
	v[attr] = index
}

// IsSet reports whether attr holds an index other than UnsetIndex.
func (v IndirectVertex) IsSet(attr Attribute) bool {
	return v.Index(attr) != UnsetIndex
}
