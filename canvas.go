package pinwheel

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// DefaultStrokeWidth is the outline width used when a Canvas has none set.
const DefaultStrokeWidth = 2.0

// Canvas turns paths and segments into triangles and submits them to an
// ebiten image. Vertex and index buffers grow to a high-water mark and are
// reused across frames. A Canvas is not safe for concurrent use.
type Canvas struct {
	// Tolerance is the maximum arc flattening error in pixels.
	Tolerance float64
	// AntiAlias enables ebiten's anti-aliased triangle rasterization.
	AntiAlias bool

	verts []ebiten.Vertex
	inds  []uint16

	stats debugStats
}

// NewCanvas creates a canvas with default tolerance and anti-aliasing on.
func NewCanvas() *Canvas {
	return &Canvas{Tolerance: DefaultTolerance, AntiAlias: true}
}

// reserve flushes pending triangles when need more vertices would overflow
// the uint16 index range.
func (c *Canvas) reserve(dst *ebiten.Image, need int) {
	if len(c.verts)+need > maxBatchVertices {
		c.Flush(dst)
	}
}

// FillPath queues the interior of every closed contour of p.
func (c *Canvas) FillPath(dst *ebiten.Image, p Path, col Color) {
	for _, poly := range p.Flatten(c.Tolerance) {
		if !poly.Closed {
			continue
		}
		c.reserve(dst, fillVertexCount(poly.Points))
		c.verts, c.inds = appendFill(c.verts, c.inds, poly.Points, col)
	}
}

// StrokePath queues the outline of p.
func (c *Canvas) StrokePath(dst *ebiten.Image, p Path, width float64, col Color) {
	if width <= 0 {
		width = DefaultStrokeWidth
	}
	for _, poly := range p.Flatten(c.Tolerance) {
		c.reserve(dst, strokeVertexCount(poly.Points, poly.Closed))
		c.verts, c.inds = appendStroke(c.verts, c.inds, poly.Points, poly.Closed, width, col)
	}
}

// DrawSegments queues each segment as a line width pixels wide.
func (c *Canvas) DrawSegments(dst *ebiten.Image, segs []Segment, width float64, col Color) {
	if width <= 0 {
		width = DefaultStrokeWidth
	}
	for _, s := range segs {
		pts := []Vec2{s.From, s.To}
		c.reserve(dst, strokeVertexCount(pts, false))
		c.verts, c.inds = appendStroke(c.verts, c.inds, pts, false, width, col)
	}
	c.stats.slots += len(segs)
}

// DrawBlades queues every blade's fill and outline with the blade's own
// alpha values applied to its color.
func (c *Canvas) DrawBlades(dst *ebiten.Image, blades []Blade, strokeWidth float64) {
	for i := range blades {
		b := &blades[i]
		c.FillPath(dst, b.Path, b.Color.WithAlpha(b.FillAlpha))
		c.StrokePath(dst, b.Path, strokeWidth, b.Color.WithAlpha(b.StrokeAlpha))
	}
	c.stats.slots += len(blades)
}

// Flush submits all queued triangles to dst in one DrawTriangles call.
func (c *Canvas) Flush(dst *ebiten.Image) {
	if len(c.inds) > 0 && dst != nil {
		var triOp ebiten.DrawTrianglesOptions
		triOp.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
		triOp.AntiAlias = c.AntiAlias
		dst.DrawTriangles(c.verts, c.inds, ensureWhitePixel(), &triOp)
		c.stats.drawCalls++
		c.stats.bounds = computeMeshAABB(c.verts)
	}
	c.stats.vertices += len(c.verts)
	c.stats.indices += len(c.inds)
	c.verts = c.verts[:0]
	c.inds = c.inds[:0]
}

// Pending returns the number of queued vertices and indices.
func (c *Canvas) Pending() (vertices, indices int) {
	return len(c.verts), len(c.inds)
}

// takeStats returns and resets the counters accumulated since the last call.
func (c *Canvas) takeStats() debugStats {
	s := c.stats
	c.stats = debugStats{}
	return s
}

// --- White pixel singleton (drawing is single-threaded) ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image used as
// the source for untextured triangles.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}
