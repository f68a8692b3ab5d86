package pinwheel

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot queues a capture of the frame being built. At the end of Draw
// the frame is written to ScreenshotDir as a PNG named after the label, the
// frame number and the scalar of every counted shape, for example
// "five-blades_f00120_n4.500-5.000.png". Names are deterministic so runs of
// the same script can be compared file by file.
func (g *Game) Screenshot(label string) {
	g.screenshotQueue = append(g.screenshotQueue, label)
}

// shapeValues returns the scalar of every counted shape in column order.
func (g *Game) shapeValues() []Scalar {
	var values []Scalar
	for _, s := range g.shapes {
		if c, ok := s.(Counted); ok {
			values = append(values, c.Animator().Value())
		}
	}
	return values
}

// screenshotName builds the file name of one capture.
func screenshotName(label string, frame uint64, values []Scalar) string {
	var b strings.Builder
	b.WriteString(sanitizeLabel(label))
	fmt.Fprintf(&b, "_f%05d", frame)
	for i, v := range values {
		if i == 0 {
			b.WriteString("_n")
		} else {
			b.WriteByte('-')
		}
		fmt.Fprintf(&b, "%.3f", v.Value())
	}
	b.WriteString(".png")
	return b.String()
}

// flushScreenshots writes every queued capture of screen. Called at the end
// of Game.Draw.
func (g *Game) flushScreenshots(screen *ebiten.Image) {
	if len(g.screenshotQueue) == 0 {
		return
	}
	labels := g.screenshotQueue
	g.screenshotQueue = g.screenshotQueue[:0]

	if err := os.MkdirAll(g.ScreenshotDir, 0o755); err != nil {
		logger.Error("screenshot: mkdir", "dir", g.ScreenshotDir, "err", err)
		return
	}
	img := readFrame(screen)
	values := g.shapeValues()
	for _, label := range labels {
		path := filepath.Join(g.ScreenshotDir, screenshotName(label, g.frame, values))
		if err := writePNG(path, img); err != nil {
			logger.Error("screenshot", "path", path, "err", err)
			continue
		}
		logger.Debug("screenshot", "path", path)
	}
}

// readFrame copies the rendered screen into a straight-alpha image.
func readFrame(screen *ebiten.Image) *image.NRGBA {
	r := screen.Bounds()
	pix := make([]byte, 4*r.Dx()*r.Dy())
	screen.ReadPixels(pix)
	return unpremultiply(pix, r.Dx(), r.Dy())
}

// unpremultiply converts premultiplied RGBA bytes, as ebiten stores them, to
// an NRGBA image.
func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	n := min(len(pixels), len(img.Pix))
	for i := 0; i+4 <= n; i += 4 {
		a := pixels[i+3]
		for j := range 3 {
			img.Pix[i+j] = unpremultiplyChannel(pixels[i+j], a)
		}
		img.Pix[i+3] = a
	}
	return img
}

func unpremultiplyChannel(c, a uint8) uint8 {
	if a == 0 || a == 255 {
		return c
	}
	return uint8(min(int(c)*255/int(a), 255))
}

// writePNG encodes img to a new file at path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel keeps ASCII letters, digits, '-' and '.' and replaces every
// other rune with '_'. Blank labels become "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			return r
		default:
			return '_'
		}
	}, label)
}
