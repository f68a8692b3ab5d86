package pinwheel

import (
	"log/slog"
	"os"
	"time"
)

// debugStats holds per-frame geometry and draw-call metrics.
// Only logged when the Game is in debug mode.
type debugStats struct {
	slots     int
	vertices  int
	indices   int
	drawCalls int
	bounds    Rect
	buildTime time.Duration
}

var (
	logger    = slog.Default()
	loggerSet bool
)

// SetLogger replaces the logger used for debug output. A nil logger restores
// slog.Default.
func SetLogger(l *slog.Logger) {
	loggerSet = l != nil
	if l == nil {
		l = slog.Default()
	}
	logger = l
}

// useDebugLogger switches to a debug-level text logger on stderr unless the
// caller installed its own with SetLogger. The default slog logger drops
// debug records.
func useDebugLogger() {
	if loggerSet {
		return
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// debugLog writes one frame's stats at debug level.
func debugLog(frame uint64, stats debugStats) {
	logger.Debug("frame",
		"frame", frame,
		"slots", stats.slots,
		"vertices", stats.vertices,
		"indices", stats.indices,
		"draw_calls", stats.drawCalls,
		"bounds_w", stats.bounds.Width,
		"bounds_h", stats.bounds.Height,
		"build", stats.buildTime,
	)
}
