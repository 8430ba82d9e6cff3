package gx

import (
	"fmt"
	"strings"
)

// Channel counts fixed by the GX vertex pipeline.
const (
	ColorChannels    = 2
	TexCoordChannels = 8
)

// Attribute identifies a per-vertex data channel.
type Attribute uint8

const (
	AttributePositionMatrixIndex Attribute = iota
	AttributePosition
	AttributeNormal
	AttributeColor0
	AttributeColor1
	AttributeTexCoord0
	AttributeTexCoord1
	AttributeTexCoord2
	AttributeTexCoord3
	AttributeTexCoord4
	AttributeTexCoord5
	AttributeTexCoord6
	AttributeTexCoord7

	// AttributeCount is the number of recognized attributes.
	AttributeCount
)

// AttributeNull terminates attribute lists in the source format.
const AttributeNull Attribute = 0xFF

var attributeNames = [AttributeCount]string{
	"PositionMatrixIndex",
	"Position",
	"Normal",
	"Color0",
	"Color1",
	"TexCoord0",
	"TexCoord1",
	"TexCoord2",
	"TexCoord3",
	"TexCoord4",
	"TexCoord5",
	"TexCoord6",
	"TexCoord7",
}

// String returns the attribute name.
func (a Attribute) String() string {
	if a == AttributeNull {
		return "Null"
	}
	if a.Valid() {
		return attributeNames[a]
	}
	return fmt.Sprintf("Unknown(%d)", uint8(a))
}

// Valid reports whether a is one of the recognized attributes.
func (a Attribute) Valid() bool {
	return a < AttributeCount
}

// IsColor reports whether a is a color channel.
func (a Attribute) IsColor() bool {
	return a >= AttributeColor0 && a <= AttributeColor1
}

// IsTexCoord reports whether a is a texture coordinate channel.
func (a Attribute) IsTexCoord() bool {
	return a >= AttributeTexCoord0 && a <= AttributeTexCoord7
}

// Channel returns the channel number of a color or texcoord attribute, 0 otherwise.
func (a Attribute) Channel() int {
	switch {
	case a.IsColor():
		return int(a - AttributeColor0)
	case a.IsTexCoord():
		return int(a - AttributeTexCoord0)
	default:
		return 0
	}
}

// ColorAttribute returns the attribute for color channel ch.
func ColorAttribute(ch int) (Attribute, error) {
	if ch < 0 || ch >= ColorChannels {
		return AttributeNull, fmt.Errorf("%w: color channel %d", ErrOutOfRangeChannel, ch)
	}
	return AttributeColor0 + Attribute(ch), nil
}

// TexCoordAttribute returns the attribute for texcoord channel ch.
func TexCoordAttribute(ch int) (Attribute, error) {
	if ch < 0 || ch >= TexCoordChannels {
		return AttributeNull, fmt.Errorf("%w: texcoord channel %d", ErrOutOfRangeChannel, ch)
	}
	return AttributeTexCoord0 + Attribute(ch), nil
}

// ParseAttribute looks up an attribute by name, case-insensitively.
func ParseAttribute(name string) (Attribute, error) {
	for i, n := range attributeNames {
		if strings.EqualFold(n, name) {
			return Attribute(i), nil
		}
	}
	if strings.EqualFold(name, "null") {
		return AttributeNull, nil
	}
	return AttributeNull, fmt.Errorf("%w: %q", ErrUnknownAttribute, name)
}
