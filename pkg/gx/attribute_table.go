package gx

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// AttributeTable holds the value pools that indirect vertices index into.
// It is filled by a loader and treated as read-only during conversion.
type AttributeTable struct {
	Positions []mgl32.Vec4 // W is free for the position matrix index
	Normals   []mgl32.Vec3
	Colors    [ColorChannels][]mgl32.Vec4
	TexCoords [TexCoordChannels][]mgl32.Vec3
}

// HasPositions reports whether the position pool is populated.
func (t *AttributeTable) HasPositions() bool { return len(t.Positions) != 0 }

// HasNormals reports whether the normal pool is populated.
func (t *AttributeTable) HasNormals() bool { return len(t.Normals) != 0 }

// HasColors reports whether color channel ch exists and is populated.
func (t *AttributeTable) HasColors(ch int) bool {
	return ch >= 0 && ch < ColorChannels && len(t.Colors[ch]) != 0
}

// HasTexCoords reports whether texcoord channel ch exists and is populated.
func (t *AttributeTable) HasTexCoords(ch int) bool {
	return ch >= 0 && ch < TexCoordChannels && len(t.TexCoords[ch]) != 0
}

// ColorPool returns the pool for color channel ch.
func (t *AttributeTable) ColorPool(ch int) ([]mgl32.Vec4, error) {
	if ch < 0 || ch >= ColorChannels {
		return nil, fmt.Errorf("%w: color channel %d", ErrOutOfRangeChannel, ch)
	}
	return t.Colors[ch], nil
}

// TexCoordPool returns the pool for texcoord channel ch.
func (t *AttributeTable) TexCoordPool(ch int) ([]mgl32.Vec3, error) {
	if ch < 0 || ch >= TexCoordChannels {
		return nil, fmt.Errorf("%w: texcoord channel %d", ErrOutOfRangeChannel, ch)
	}
	return t.TexCoords[ch], nil
}

// Position returns position i.
func (t *AttributeTable) Position(i uint16) (mgl32.Vec4, error) {
	if int(i) >= len(t.Positions) {
		return mgl32.Vec4{}, outOfRange(AttributePosition, i, len(t.Positions))
	}
	return t.Positions[i], nil
}

// Normal returns normal i.
func (t *AttributeTable) Normal(i uint16) (mgl32.Vec3, error) {
	if int(i) >= len(t.Normals) {
		return mgl32.Vec3{}, outOfRange(AttributeNormal, i, len(t.Normals))
	}
	return t.Normals[i], nil
}

// Color returns entry i of color channel ch.
func (t *AttributeTable) Color(ch int, i uint16) (mgl32.Vec4, error) {
	pool, err := t.ColorPool(ch)
	if err != nil {
		return mgl32.Vec4{}, err
	}
	if int(i) >= len(pool) {
		return mgl32.Vec4{}, outOfRange(AttributeColor0+Attribute(ch), i, len(pool))
	}
	return pool[i], nil
}

// TexCoord returns entry i of texcoord channel ch.
func (t *AttributeTable) TexCoord(ch int, i uint16) (mgl32.Vec3, error) {
	pool, err := t.TexCoordPool(ch)
	if err != nil {
		return mgl32.Vec3{}, err
	}
	if int(i) >= len(pool) {
		return mgl32.Vec3{}, outOfRange(AttributeTexCoord0+Attribute(ch), i, len(pool))
	}
	return pool[i], nil
}

// PoolLen returns the number of entries available for attr.
// The position matrix index has no pool and reports 0.
func (t *AttributeTable) PoolLen(attr Attribute) int {
	switch {
	case attr == AttributePosition:
		return len(t.Positions)
	case attr == AttributeNormal:
		return len(t.Normals)
	case attr.IsColor():
		return len(t.Colors[attr.Channel()])
	case attr.IsTexCoord():
		return len(t.TexCoords[attr.Channel()])
	default:
		return 0
	}
}

func outOfRange(attr Attribute, i uint16, n int) error {
	return fmt.Errorf("%w: %s index %d, pool size %d", ErrOutOfRangeIndex, attr, i, n)
}
