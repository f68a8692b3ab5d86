package pinwheel

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestVertexPremultiplies(t *testing.T) {
	v := vertex(Vec2{X: 3, Y: 4}, Color{R: 1, G: 0.5, B: 0, A: 0.5})
	if v.DstX != 3 || v.DstY != 4 {
		t.Errorf("dst = (%v, %v), want (3, 4)", v.DstX, v.DstY)
	}
	if v.SrcX != 0.5 || v.SrcY != 0.5 {
		t.Errorf("src = (%v, %v), want white pixel center", v.SrcX, v.SrcY)
	}
	if v.ColorR != 0.5 || v.ColorG != 0.25 || v.ColorB != 0 || v.ColorA != 0.5 {
		t.Errorf("color = (%v, %v, %v, %v), want (0.5, 0.25, 0, 0.5)", v.ColorR, v.ColorG, v.ColorB, v.ColorA)
	}
}

func TestAppendFillFan(t *testing.T) {
	square := []Vec2{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	verts := []ebiten.Vertex{{}, {}} // pre-existing vertices shift the base index
	verts, inds := appendFill(verts, nil, square, ColorWhite)
	if len(verts) != 6 {
		t.Fatalf("vertices = %d, want 6", len(verts))
	}
	diff(t, []uint16{2, 3, 4, 2, 4, 5}, inds)
	if got := fillVertexCount(square); got != 4 {
		t.Errorf("fillVertexCount = %d, want 4", got)
	}
}

func TestAppendFillDegenerate(t *testing.T) {
	verts, inds := appendFill(nil, nil, []Vec2{{0, 0}, {1, 1}}, ColorWhite)
	if len(verts) != 0 || len(inds) != 0 {
		t.Errorf("got %d verts %d inds, want none", len(verts), len(inds))
	}
	if got := fillVertexCount([]Vec2{{0, 0}}); got != 0 {
		t.Errorf("fillVertexCount = %d, want 0", got)
	}
}

func TestAppendStrokeQuad(t *testing.T) {
	verts, inds := appendStroke(nil, nil, []Vec2{{0, 0}, {10, 0}}, false, 2, ColorWhite)
	if len(verts) != 4 {
		t.Fatalf("vertices = %d, want 4", len(verts))
	}
	want := [][2]float32{{0, 1}, {0, -1}, {10, 1}, {10, -1}}
	for i, w := range want {
		if verts[i].DstX != w[0] || verts[i].DstY != w[1] {
			t.Errorf("vertex %d = (%v, %v), want %v", i, verts[i].DstX, verts[i].DstY, w)
		}
	}
	diff(t, []uint16{0, 1, 2, 1, 3, 2}, inds)
}

func TestAppendStrokeClosed(t *testing.T) {
	tri := []Vec2{{0, 0}, {10, 0}, {5, 8}}
	verts, inds := appendStroke(nil, nil, tri, true, 1, ColorWhite)
	if len(verts) != 12 || len(inds) != 18 {
		t.Errorf("got %d verts %d inds, want 12 and 18", len(verts), len(inds))
	}
	if got := strokeVertexCount(tri, true); got != 12 {
		t.Errorf("strokeVertexCount closed = %d, want 12", got)
	}
	if got := strokeVertexCount(tri, false); got != 8 {
		t.Errorf("strokeVertexCount open = %d, want 8", got)
	}
}

func TestAppendStrokeSkipsZeroLength(t *testing.T) {
	pts := []Vec2{{0, 0}, {0, 0}, {5, 0}}
	verts, _ := appendStroke(nil, nil, pts, false, 1, ColorWhite)
	if len(verts) != 4 {
		t.Errorf("vertices = %d, want 4", len(verts))
	}
	verts, _ = appendStroke(nil, nil, pts, false, 0, ColorWhite)
	if len(verts) != 0 {
		t.Errorf("zero width produced %d vertices", len(verts))
	}
}

func TestPerpendicular(t *testing.T) {
	nx, ny := perpendicular(Vec2{}, Vec2{X: 10})
	if nx != 0 || ny != 1 {
		t.Errorf("perpendicular = (%v, %v), want (0, 1)", nx, ny)
	}
	nx, ny = perpendicular(Vec2{X: 1, Y: 1}, Vec2{X: 1, Y: 1})
	if nx != 0 || ny != -1 {
		t.Errorf("degenerate perpendicular = (%v, %v), want (0, -1)", nx, ny)
	}
}

func TestComputeMeshAABB(t *testing.T) {
	verts := []ebiten.Vertex{
		{DstX: 5, DstY: 10},
		{DstX: -2, DstY: 3},
		{DstX: 8, DstY: -1},
	}
	diff(t, Rect{X: -2, Y: -1, Width: 10, Height: 11}, computeMeshAABB(verts))
	if got := computeMeshAABB(nil); got != (Rect{}) {
		t.Errorf("empty AABB = %v", got)
	}
}
