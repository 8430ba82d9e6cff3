package geometry

import (
	"fmt"

	"github.com/Faultbox/gxgeom/pkg/gx"
)

// Resolve reads the pool entries an indirect vertex points at for each
// active attribute. Slots of inactive attributes are never read.
//
// When both Position and PositionMatrixIndex are active, the raw matrix
// index is stored in Position.W.
func Resolve(table *gx.AttributeTable, active []gx.Attribute, v gx.IndirectVertex) (FlatVertex, error) {
	var out FlatVertex
	var hasPosition, hasMatrix bool

	for _, attr := range active {
		idx := v.Index(attr)

		switch {
		case attr == gx.AttributePositionMatrixIndex:
			hasMatrix = true
		case attr == gx.AttributePosition:
			pos, err := table.Position(idx)
			if err != nil {
				return FlatVertex{}, err
			}
			out.Position = pos
			hasPosition = true
		case attr == gx.AttributeNormal:
			n, err := table.Normal(idx)
			if err != nil {
				return FlatVertex{}, err
			}
			out.Normal = n
		case attr.IsColor():
			ch := attr.Channel()
			c, err := table.Color(ch, idx)
			if err != nil {
				return FlatVertex{}, err
			}
			out.Colors[ch] = c
		case attr.IsTexCoord():
			ch := attr.Channel()
			tc, err := table.TexCoord(ch, idx)
			if err != nil {
				return FlatVertex{}, err
			}
			out.TexCoords[ch] = tc
		case attr == gx.AttributeNull:
		default:
			return FlatVertex{}, fmt.Errorf("%w: %s", gx.ErrUnknownAttribute, attr)
		}
	}

	if hasPosition && hasMatrix {
		out.Position[3] = float32(v.Index(gx.AttributePositionMatrixIndex))
	}
	return out, nil
}
