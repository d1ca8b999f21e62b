package tilescroll

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	// CameraSpeed is the keyboard pan speed in pixels per second at scale 1.
	CameraSpeed = 256.0
	// MinScale is the lower bound for Camera.Scale.
	MinScale = 0.1
)

// glideAnim eases a GlideTo from its start center to its target. The tween
// runs over progress 0..1 so positions stay in float64.
type glideAnim struct {
	tween        *gween.Tween
	fromX, fromY float64
	toX, toY     float64
}

// Camera maps world coordinates (tile units) to screen pixels.
//
// X and Y are the pan offset in pixels at the current scale: the world point
// (X/TileSize, Y/TileSize) is drawn at the top-left corner of the viewport.
type Camera struct {
	X, Y float64
	// Width and Height are the viewport size in pixels.
	Width, Height float64
	// Scale is the zoom factor, never below MinScale.
	Scale float64
	// TileSize is the effective tile size: base tile size times Scale.
	TileSize float64

	baseTileSize float64
	glide        *glideAnim
}

// NewCamera creates a camera at the origin with scale 1. The base tile size is
// taken from m.
func NewCamera(m *TileMap, width, height float64) *Camera {
	c := &Camera{
		Width:        width,
		Height:       height,
		Scale:        1.0,
		baseTileSize: float64(m.TileSize),
	}
	c.TileSize = c.baseTileSize * c.Scale
	return c
}

// Move pans by dir * CameraSpeed * delta * Scale. dirX and dirY are -1, 0 or
// 1; diagonals are not normalized. A non-zero direction cancels a glide.
func (c *Camera) Move(delta float64, dirX, dirY int) {
	if dirX == 0 && dirY == 0 {
		return
	}
	c.glide = nil
	c.X += float64(dirX) * CameraSpeed * delta * c.Scale
	c.Y += float64(dirY) * CameraSpeed * delta * c.Scale
}

// MoveRaw adds pixel deltas to the pan position and cancels a glide.
func (c *Camera) MoveRaw(dx, dy float64) {
	c.glide = nil
	c.X += dx
	c.Y += dy
}

// Zoom multiplies Scale by factor, clamped to MinScale, keeping the world
// point at the viewport center fixed on screen.
func (c *Camera) Zoom(factor float64) {
	cx, cy := c.Center()
	c.Scale = math.Max(c.Scale*factor, MinScale)
	c.TileSize = c.baseTileSize * c.Scale
	c.CenterAt(cx, cy)
}

// CenterAt pans so the world point (wx, wy) sits at the viewport center.
func (c *Camera) CenterAt(wx, wy float64) {
	c.X = wx*c.TileSize - c.Width/2
	c.Y = wy*c.TileSize - c.Height/2
}

// Center returns the world point at the viewport center.
func (c *Camera) Center() (wx, wy float64) {
	return c.ScreenToWorld(c.Width/2, c.Height/2)
}

// ScreenToWorld converts viewport pixel coordinates to fractional world
// coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	return (sx + c.X) / c.TileSize, (sy + c.Y) / c.TileSize
}

// WorldToScreen converts world coordinates to viewport pixel coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	return wx*c.TileSize - c.X, wy*c.TileSize - c.Y
}

// ScreenToTile returns the tile under the given viewport pixel.
func (c *Camera) ScreenToTile(sx, sy float64) TileCoord {
	wx, wy := c.ScreenToWorld(sx, sy)
	return TileCoord{Col: int(math.Floor(wx)), Row: int(math.Floor(wy))}
}

// VisibleBounds returns the visible area in world units.
func (c *Camera) VisibleBounds() Rect {
	x0, y0 := c.ScreenToWorld(0, 0)
	x1, y1 := c.ScreenToWorld(c.Width, c.Height)
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// VisibleRange returns the first and last tile (inclusive) whose area overlaps
// the viewport.
func (c *Camera) VisibleRange() (first, last TileCoord) {
	b := c.VisibleBounds()
	first = TileCoord{
		Col: int(math.Floor(b.X)),
		Row: int(math.Floor(b.Y)),
	}
	last = TileCoord{
		Col: int(math.Ceil(b.X+b.Width)) - 1,
		Row: int(math.Ceil(b.Y+b.Height)) - 1,
	}
	return first, last
}

// GlideTo animates the viewport center to the world point (wx, wy) over
// duration seconds. The animation advances with the game's frame delta.
func (c *Camera) GlideTo(wx, wy float64, duration float32, easeFn ease.TweenFunc) {
	if duration <= 0 {
		c.glide = nil
		c.CenterAt(wx, wy)
		return
	}
	cx, cy := c.Center()
	c.glide = &glideAnim{
		tween: gween.New(0, 1, duration, easeFn),
		fromX: cx,
		fromY: cy,
		toX:   wx,
		toY:   wy,
	}
}

// Gliding reports whether a GlideTo animation is in progress.
func (c *Camera) Gliding() bool {
	return c.glide != nil
}

// update advances a running glide by dt seconds.
func (c *Camera) update(dt float64) {
	g := c.glide
	if g == nil {
		return
	}
	p, done := g.tween.Update(float32(dt))
	if done {
		c.glide = nil
		c.CenterAt(g.toX, g.toY)
		return
	}
	t := float64(p)
	c.CenterAt(g.fromX+(g.toX-g.fromX)*t, g.fromY+(g.toY-g.fromY)*t)
}
