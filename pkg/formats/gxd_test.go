package formats

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/gxgeom/pkg/geometry"
	"github.com/Faultbox/gxgeom/pkg/gx"
)

const cubeFaceGXD = `
attributes:
  positions:
    - [0, 0, 0]
    - [1, 0, 0]
    - [1, 1, 0]
    - [0, 1, 0, 2]
  normals:
    - [0, 0, 1]
  colors:
    - [[1, 0, 0], [0, 1, 0, 0.5]]
  texcoords:
    - [[0, 0], [1, 0], [1, 1], [0, 1]]

shapes:
  - name: front
    attributes: [Position, Normal, Color0, TexCoord0, Null]
    primitives:
      - type: TriangleStrip
        vertices:
          - [0, 0, 0, 0]
          - [1, 0, 0, 1]
          - [3, 0, 1, 3]
          - [2, 0, 1, 2]
  - attributes: [Position]
    primitives:
      - opcode: 0xA0
        vertices: [[0], [1], [2], [3]]
`

func TestParseGXD(t *testing.T) {
	g, err := ParseGXD([]byte(cubeFaceGXD))
	if err != nil {
		t.Fatalf("ParseGXD failed: %v", err)
	}

	table := g.Attributes
	if len(table.Positions) != 4 {
		t.Fatalf("expected 4 positions, got %d", len(table.Positions))
	}
	if table.Positions[0] != (mgl32.Vec4{0, 0, 0, 1}) {
		t.Errorf("expected default w=1, got %v", table.Positions[0])
	}
	if table.Positions[3][3] != 2 {
		t.Errorf("expected explicit w=2, got %v", table.Positions[3][3])
	}
	if table.Colors[0][0] != (mgl32.Vec4{1, 0, 0, 1}) {
		t.Errorf("expected default alpha 1, got %v", table.Colors[0][0])
	}
	if !table.HasTexCoords(0) || table.HasTexCoords(1) {
		t.Error("expected only texcoord channel 0")
	}

	if len(g.Shapes) != 2 {
		t.Fatalf("expected 2 shapes, got %d", len(g.Shapes))
	}

	front := g.Shapes[0]
	if front.UserData != "front" {
		t.Errorf("expected user data 'front', got %v", front.UserData)
	}
	wantAttrs := []gx.Attribute{gx.AttributePosition, gx.AttributeNormal, gx.AttributeColor0, gx.AttributeTexCoord0}
	if len(front.Attributes) != len(wantAttrs) {
		t.Fatalf("expected %d attributes, got %v", len(wantAttrs), front.Attributes)
	}
	for i, a := range wantAttrs {
		if front.Attributes[i] != a {
			t.Errorf("attribute %d: got %s, want %s", i, front.Attributes[i], a)
		}
	}

	v := front.Primitives[0].Vertices[2]
	if v.Index(gx.AttributePosition) != 3 || v.Index(gx.AttributeColor0) != 1 || v.Index(gx.AttributeTexCoord0) != 3 {
		t.Errorf("unexpected vertex indices %v", v)
	}
	if v.IsSet(gx.AttributeTexCoord1) {
		t.Error("expected unused slot to stay unset")
	}

	if got := g.Shapes[1].Primitives[0].Type; got != gx.PrimitiveTriangleFan {
		t.Errorf("expected fan from opcode, got %s", got)
	}
	if g.Shapes[1].UserData != nil {
		t.Errorf("expected nil user data, got %v", g.Shapes[1].UserData)
	}
}

func TestParseGXD_Modernize(t *testing.T) {
	g, err := ParseGXD([]byte(cubeFaceGXD))
	if err != nil {
		t.Fatalf("ParseGXD failed: %v", err)
	}

	if err := g.Modernize(geometry.DefaultBuildOptions()); err != nil {
		t.Fatalf("Modernize failed: %v", err)
	}
	if err := g.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}

	// Strip: 2 triangles. Fan of 4: 2 triangles.
	if got := g.Stats().Triangles; got != 4 {
		t.Errorf("expected 4 triangles, got %d", got)
	}
	if g.Shapes[1].FirstVertexOffset != 6 || g.Shapes[1].VertexCount != 6 {
		t.Errorf("unexpected second shape range %d+%d", g.Shapes[1].FirstVertexOffset, g.Shapes[1].VertexCount)
	}
}

func TestParseGXD_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{
			name:    "invalid yaml",
			data:    "shapes: [",
			wantErr: ErrInvalidDescription,
		},
		{
			name:    "short position",
			data:    "attributes:\n  positions: [[1, 2]]\n",
			wantErr: ErrInvalidDescription,
		},
		{
			name:    "too many color channels",
			data:    "attributes:\n  colors: [[], [], []]\n",
			wantErr: gx.ErrOutOfRangeChannel,
		},
		{
			name:    "too many texcoord channels",
			data:    "attributes:\n  texcoords: [[], [], [], [], [], [], [], [], []]\n",
			wantErr: gx.ErrOutOfRangeChannel,
		},
		{
			name:    "unknown attribute",
			data:    "shapes:\n  - attributes: [Tangent]\n",
			wantErr: gx.ErrUnknownAttribute,
		},
		{
			name:    "line primitive",
			data:    "shapes:\n  - attributes: [Position]\n    primitives:\n      - opcode: 0xA8\n",
			wantErr: gx.ErrUnsupportedPrimitive,
		},
		{
			name:    "missing type",
			data:    "shapes:\n  - attributes: [Position]\n    primitives:\n      - vertices: [[0]]\n",
			wantErr: ErrInvalidDescription,
		},
		{
			name:    "index count mismatch",
			data:    "shapes:\n  - attributes: [Position, Normal]\n    primitives:\n      - type: Triangles\n        vertices: [[0]]\n",
			wantErr: ErrInvalidDescription,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseGXD([]byte(tt.data))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestParseGXDFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "face.gxd.yaml")
	if err := os.WriteFile(path, []byte(cubeFaceGXD), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	g, err := ParseGXDFile(path)
	if err != nil {
		t.Fatalf("ParseGXDFile failed: %v", err)
	}
	if len(g.Shapes) != 2 {
		t.Errorf("expected 2 shapes, got %d", len(g.Shapes))
	}

	if _, err := ParseGXDFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
