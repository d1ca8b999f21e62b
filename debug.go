package tilescroll

import (
	"io"
	"log"
	"os"
)

// newLogger returns the default game logger, writing to stderr.
func newLogger() *log.Logger {
	return log.New(os.Stderr, "[tilescroll] ", 0)
}

// SetLogger replaces the logger used for load, screenshot and debug messages.
// A nil logger discards everything.
func (g *Game) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	g.logger = l
}

// SetDebugMode enables per-frame render stats on the logger.
func (g *Game) SetDebugMode(enabled bool) {
	g.debug = enabled
}

// debugLog prints render stats. Only active in debug mode.
func (g *Game) debugLog(stats RenderStats) {
	if !g.debug {
		return
	}
	g.logger.Printf("render: %v | tiles: %d | grid lines: %d | scale: %.3f | camera: (%.1f, %.1f)",
		stats.Elapsed, stats.Tiles, stats.Lines, g.camera.Scale, g.camera.X, g.camera.Y)
}
