package pinwheel

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures Run. Zero values select sensible defaults.
type RunConfig struct {
	Title      string
	Width      int   // window width in pixels (default 640)
	Height     int   // window height in pixels (default 480)
	ShowFPS    bool  // draw an FPS/TPS overlay in the top-left corner
	Debug      bool  // log per-frame geometry stats at debug level
	ClearColor Color // zero selects a dark slate background
}

func (cfg RunConfig) withDefaults() RunConfig {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	if cfg.ClearColor == (Color{}) {
		cfg.ClearColor = Color{R: 0.098, G: 0.098, B: 0.137, A: 1}
	}
	return cfg
}

// Game hosts radial shapes side by side and implements ebiten.Game. Each
// shape gets an equal-width column of the screen.
type Game struct {
	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	config  RunConfig
	shapes  []Shape
	canvas  *Canvas
	fps     *fpsOverlay
	script  *ScriptRunner
	update  func() error
	debug   bool
	frame   uint64
	screenW int
	screenH int

	screenshotQueue []string
}

// NewGame creates a game hosting shapes.
func NewGame(cfg RunConfig, shapes ...Shape) *Game {
	cfg = cfg.withDefaults()
	g := &Game{
		ScreenshotDir: "screenshots",
		config:        cfg,
		shapes:        shapes,
		canvas:        NewCanvas(),
		screenW:       cfg.Width,
		screenH:       cfg.Height,
	}
	if cfg.ShowFPS {
		g.fps = newFPSOverlay()
	}
	g.SetDebugMode(cfg.Debug)
	return g
}

// Shapes returns the hosted shapes. The returned slice MUST NOT be mutated.
func (g *Game) Shapes() []Shape {
	return g.shapes
}

// SetUpdateFunc sets a callback run once per tick before shapes update.
func (g *Game) SetUpdateFunc(fn func() error) {
	g.update = fn
}

// SetDebugMode enables or disables per-frame stats logging. Enabling it
// installs a debug-level stderr logger unless SetLogger was called.
func (g *Game) SetDebugMode(enabled bool) {
	g.debug = enabled
	if enabled {
		useDebugLogger()
	}
}

// ShapeBounds returns the screen column assigned to shape i.
func (g *Game) ShapeBounds(i int) Rect {
	if len(g.shapes) == 0 {
		return Rect{}
	}
	w := float64(g.screenW) / float64(len(g.shapes))
	return Rect{X: float64(i) * w, Y: 0, Width: w, Height: float64(g.screenH)}
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	return g.advance(float32(1.0 / float64(ebiten.TPS())))
}

// advance runs one tick of dt seconds.
func (g *Game) advance(dt float32) error {
	if g.script != nil {
		if err := g.script.step(g); err != nil {
			return err
		}
	}
	if g.update != nil {
		if err := g.update(); err != nil {
			return err
		}
	}
	for _, s := range g.shapes {
		if err := s.Update(dt); err != nil {
			return err
		}
	}
	if g.fps != nil {
		g.fps.update(float64(dt))
	}
	return nil
}

// Draw implements ebiten.Game. Every shape is rebuilt from its current
// scalar and all triangles are submitted in as few calls as possible.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.config.ClearColor.toRGBA())

	start := time.Now()
	for i, s := range g.shapes {
		if err := s.Draw(g.canvas, screen, g.ShapeBounds(i)); err != nil {
			logger.Error("draw shape", "index", i, "err", err)
		}
	}
	g.canvas.Flush(screen)

	stats := g.canvas.takeStats()
	stats.buildTime = time.Since(start)
	if g.debug {
		debugLog(g.frame, stats)
	}

	if g.fps != nil {
		g.fps.draw(screen)
	}
	g.flushScreenshots(screen)
	g.frame++
}

// Layout implements ebiten.Game. The logical screen follows the window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.screenW = outsideWidth
	g.screenH = outsideHeight
	return outsideWidth, outsideHeight
}

// Run opens a window hosting shapes and blocks until it is closed.
func Run(cfg RunConfig, shapes ...Shape) error {
	return RunGame(NewGame(cfg, shapes...))
}

// RunGame opens a window for an already configured game.
func RunGame(g *Game) error {
	cfg := g.config
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}
