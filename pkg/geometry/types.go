// Package geometry flattens GX shapes into a single deduplicated triangle-list
// vertex/index buffer pair with per-shape index ranges.
package geometry

import (
	"errors"
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/gxgeom/pkg/gx"
)

// Geometry errors.
var (
	ErrIndexOverflow = errors.New("vertex index does not fit index format")
	ErrInvalidIndex  = errors.New("index references missing vertex")
	ErrInvalidRange  = errors.New("invalid shape index range")
)

// FlatVertex is a fully resolved vertex. Fields of attributes the shape
// does not use stay zero.
type FlatVertex struct {
	Position  mgl32.Vec4 // W carries the position matrix index when enabled
	Normal    mgl32.Vec3
	Colors    [gx.ColorChannels]mgl32.Vec4
	TexCoords [gx.TexCoordChannels]mgl32.Vec3
}

// FlatVertexStride is the size in bytes of one FlatVertex in a vertex buffer.
const FlatVertexStride = int(unsafe.Sizeof(FlatVertex{}))

// Shape is a set of primitives sharing the same enabled attributes.
type Shape struct {
	// Attributes lists the attributes enabled for every primitive in the shape.
	Attributes []gx.Attribute
	Primitives []gx.Primitive

	// Outputs of Modernize.
	FirstVertexOffset uint32
	VertexCount       uint32
	CenterOfMass      mgl32.Vec3

	// UserData is left untouched by conversion.
	UserData any
}

// VertexOffsetAndCount returns the shape's range in the geometry index buffer.
func (s *Shape) VertexOffsetAndCount() (offset, count uint32) {
	return s.FirstVertexOffset, s.VertexCount
}

// Geometry holds every shape of a model and, after Modernize, the shared
// vertex and index buffers.
type Geometry struct {
	Attributes *gx.AttributeTable
	Shapes     []Shape

	Vertices []FlatVertex
	Indices  []uint32

	stats BuildStats
}

// BuildStats summarizes a Modernize run.
type BuildStats struct {
	Shapes         int
	Primitives     int
	Triangles      int
	Indices        int
	UniqueVertices int
	ReusedVertices int
}

// IndexFormat selects the integer width of the output index buffer.
type IndexFormat uint8

const (
	IndexUint32 IndexFormat = iota
	IndexUint16
)

// String returns the format name used in configuration files.
func (f IndexFormat) String() string {
	switch f {
	case IndexUint32:
		return "uint32"
	case IndexUint16:
		return "uint16"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(f))
	}
}

// MaxIndex returns the largest index representable in f.
func (f IndexFormat) MaxIndex() uint32 {
	if f == IndexUint16 {
		return 0xFFFF
	}
	return 0xFFFFFFFF
}

// ParseIndexFormat parses "uint16"/"16" or "uint32"/"32".
func ParseIndexFormat(s string) (IndexFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "uint32", "32", "":
		return IndexUint32, nil
	case "uint16", "16":
		return IndexUint16, nil
	default:
		return IndexUint32, fmt.Errorf("unknown index format %q", s)
	}
}

// BuildOptions contains options for Modernize.
type BuildOptions struct {
	// IndexFormat fails the build once a vertex index exceeds its range.
	IndexFormat IndexFormat
	// DropMatrixIndex leaves Position.W as stored in the pool even when the
	// shape enables the position matrix index.
	DropMatrixIndex bool
	// ComputeCenters fills Shape.CenterOfMass.
	ComputeCenters bool
	// Logger receives build progress. Nil disables logging.
	Logger *zap.Logger
}

// DefaultBuildOptions returns 32-bit indices with centers enabled.
func DefaultBuildOptions() BuildOptions {
	return BuildOptions{
		IndexFormat:    IndexUint32,
		ComputeCenters: true,
	}
}

func (o BuildOptions) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// ConversionError reports the vertex that stopped a build.
type ConversionError struct {
	Shape     int
	Primitive int
	Vertex    int
	Err       error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("shape %d primitive %d vertex %d: %v", e.Shape, e.Primitive, e.Vertex, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}
