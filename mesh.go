package pinwheel

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// maxBatchVertices keeps indices addressable as uint16.
const maxBatchVertices = math.MaxUint16

// vertex builds an untextured vertex sampling the center of the white pixel
// with a premultiplied color.
func vertex(p Vec2, c Color) ebiten.Vertex {
	a := float32(clamp01(c.A))
	return ebiten.Vertex{
		DstX:   float32(p.X),
		DstY:   float32(p.Y),
		SrcX:   0.5,
		SrcY:   0.5,
		ColorR: float32(clamp01(c.R)) * a,
		ColorG: float32(clamp01(c.G)) * a,
		ColorB: float32(clamp01(c.B)) * a,
		ColorA: a,
	}
}

// appendFill appends a fan triangulation of the convex polygon pts.
// N points, 3*(N-2) indices. Polygons with fewer than 3 points are skipped.
func appendFill(verts []ebiten.Vertex, inds []uint16, pts []Vec2, c Color) ([]ebiten.Vertex, []uint16) {
	n := len(pts)
	if n < 3 {
		return verts, inds
	}
	base := uint16(len(verts))
	for _, p := range pts {
		verts = append(verts, vertex(p, c))
	}
	// Fan triangulation: vertex 0 is the hub.
	for i := 0; i < n-2; i++ {
		inds = append(inds, base, base+uint16(i+1), base+uint16(i+2))
	}
	return verts, inds
}

// appendStroke appends one quad per edge of pts, width pixels wide and
// centered on the edge. A closed polyline also strokes its last edge.
func appendStroke(verts []ebiten.Vertex, inds []uint16, pts []Vec2, closed bool, width float64, c Color) ([]ebiten.Vertex, []uint16) {
	n := len(pts)
	if n < 2 || width <= 0 {
		return verts, inds
	}
	edges := n - 1
	if closed {
		edges = n
	}
	halfW := width / 2
	for i := 0; i < edges; i++ {
		a, b := pts[i], pts[(i+1)%n]
		if samePoint(a, b) {
			continue
		}
		nx, ny := perpendicular(a, b)
		ox, oy := nx*halfW, ny*halfW
		v := uint16(len(verts))
		verts = append(verts,
			vertex(Vec2{X: a.X + ox, Y: a.Y + oy}, c),
			vertex(Vec2{X: a.X - ox, Y: a.Y - oy}, c),
			vertex(Vec2{X: b.X + ox, Y: b.Y + oy}, c),
			vertex(Vec2{X: b.X - ox, Y: b.Y - oy}, c),
		)
		inds = append(inds, v, v+1, v+2, v+1, v+3, v+2)
	}
	return verts, inds
}

// fillVertexCount returns how many vertices appendFill adds for pts.
func fillVertexCount(pts []Vec2) int {
	if len(pts) < 3 {
		return 0
	}
	return len(pts)
}

// strokeVertexCount returns an upper bound on the vertices appendStroke adds.
func strokeVertexCount(pts []Vec2, closed bool) int {
	if len(pts) < 2 {
		return 0
	}
	if closed {
		return len(pts) * 4
	}
	return (len(pts) - 1) * 4
}

// perpendicular returns the unit left-perpendicular of the segment from a to b.
func perpendicular(a, b Vec2) (float64, float64) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	ln := math.Sqrt(dx*dx + dy*dy)
	if ln < 1e-10 {
		return 0, -1
	}
	return -dy / ln, dx / ln
}

// computeMeshAABB scans DstX/DstY of the given vertices and returns
// the axis-aligned bounding box.
func computeMeshAABB(verts []ebiten.Vertex) Rect {
	if len(verts) == 0 {
		return Rect{}
	}
	minX := float64(verts[0].DstX)
	minY := float64(verts[0].DstY)
	maxX := minX
	maxY := minY
	for i := 1; i < len(verts); i++ {
		x := float64(verts[i].DstX)
		y := float64(verts[i].DstY)
		minX = math.Min(minX, x)
		maxX = math.Max(maxX, x)
		minY = math.Min(minY, y)
		maxY = math.Max(maxY, y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
