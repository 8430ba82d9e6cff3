package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		geom    Geometry
		wantErr error
	}{
		{
			name: "valid",
			geom: Geometry{
				Vertices: make([]FlatVertex, 3),
				Indices:  []uint32{0, 1, 2, 2, 1, 0},
				Shapes:   []Shape{{FirstVertexOffset: 0, VertexCount: 3}, {FirstVertexOffset: 3, VertexCount: 3}},
			},
		},
		{
			name: "index past vertex buffer",
			geom: Geometry{
				Vertices: make([]FlatVertex, 2),
				Indices:  []uint32{0, 1, 2},
				Shapes:   []Shape{{VertexCount: 3}},
			},
			wantErr: ErrInvalidIndex,
		},
		{
			name: "gap between shapes",
			geom: Geometry{
				Vertices: make([]FlatVertex, 3),
				Indices:  []uint32{0, 1, 2, 0, 1, 2, 0, 1, 2},
				Shapes:   []Shape{{FirstVertexOffset: 0, VertexCount: 3}, {FirstVertexOffset: 6, VertexCount: 3}},
			},
			wantErr: ErrInvalidRange,
		},
		{
			name: "uncovered tail",
			geom: Geometry{
				Vertices: make([]FlatVertex, 3),
				Indices:  []uint32{0, 1, 2, 0, 1, 2},
				Shapes:   []Shape{{FirstVertexOffset: 0, VertexCount: 3}},
			},
			wantErr: ErrInvalidRange,
		},
		{
			name: "partial triangle",
			geom: Geometry{
				Vertices: make([]FlatVertex, 3),
				Indices:  []uint32{0, 1},
				Shapes:   []Shape{{FirstVertexOffset: 0, VertexCount: 2}},
			},
			wantErr: ErrInvalidRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.geom.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestIndices16(t *testing.T) {
	g := Geometry{Indices: []uint32{0, 1, 0xFFFF}}

	out, err := g.Indices16()
	require.NoError(t, err)
	assert.Equal(t, []uint16{0, 1, 0xFFFF}, out)
}

func TestIndexFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    IndexFormat
		wantErr bool
	}{
		{"uint16", IndexUint16, false},
		{"16", IndexUint16, false},
		{"UINT32", IndexUint32, false},
		{"", IndexUint32, false},
		{"uint8", IndexUint32, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseIndexFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Equal(t, "uint16", IndexUint16.String())
	assert.Equal(t, uint32(0xFFFF), IndexUint16.MaxIndex())
}

func TestFlatVertexStride(t *testing.T) {
	// 4 + 3 + 2*4 + 8*3 float32s.
	assert.Equal(t, 39*4, FlatVertexStride)
}
