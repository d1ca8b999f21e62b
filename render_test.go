package tilescroll

import (
	"testing"
)

type fillCall struct {
	x, y, w, h float64
	c          Color
}

type lineCall struct {
	x0, y0, x1, y1 float64
}

// recordingSurface captures draw calls instead of touching the GPU.
type recordingSurface struct {
	clears int
	clear  Color
	fills  []fillCall
	lines  []lineCall
}

func (s *recordingSurface) Clear(c Color) {
	s.clears++
	s.clear = c
	s.fills = s.fills[:0]
	s.lines = s.lines[:0]
}

func (s *recordingSurface) FillRect(x, y, w, h float64, c Color) {
	s.fills = append(s.fills, fillCall{x, y, w, h, c})
}

func (s *recordingSurface) StrokeLine(x0, y0, x1, y1, width float64, c Color) {
	s.lines = append(s.lines, lineCall{x0, y0, x1, y1})
}

func TestRenderEmptyMap(t *testing.T) {
	m := NewTileMap(DefaultLayers, 32)
	cam := NewCamera(m, 512, 512)
	dst := &recordingSurface{}

	stats := Render(dst, cam, m, DefaultRenderOptions())

	if dst.clears != 1 || dst.clear != ColorWhite {
		t.Errorf("clear = %d x %v, want 1 x white", dst.clears, dst.clear)
	}
	if len(dst.fills) != 0 || stats.Tiles != 0 {
		t.Errorf("fills = %d, want 0 on an empty map", len(dst.fills))
	}
	// 17 vertical and 17 horizontal boundaries, edges included.
	if stats.Lines != 34 || len(dst.lines) != 34 {
		t.Errorf("lines = %d (stats %d), want 34", len(dst.lines), stats.Lines)
	}
}

func TestRenderTileColors(t *testing.T) {
	m := NewTileMap(DefaultLayers, 32)
	m.SetTile(0, 1, 2, KindGreen)
	m.SetTile(0, 3, 0, KindRed)
	m.SetTile(0, 4, 4, 7) // unknown kinds are not drawn
	cam := NewCamera(m, 512, 512)
	dst := &recordingSurface{}

	opts := DefaultRenderOptions()
	opts.ShowGrid = false
	stats := Render(dst, cam, m, opts)

	if stats.Lines != 0 || len(dst.lines) != 0 {
		t.Errorf("grid drawn with ShowGrid off: %d lines", len(dst.lines))
	}
	if len(dst.fills) != 2 {
		t.Fatalf("fills = %d, want 2", len(dst.fills))
	}
	// Row-major traversal: (3,0) comes before (1,2).
	want := []fillCall{
		{96, 0, 32, 32, ColorRed},
		{32, 64, 32, 32, ColorGreen},
	}
	for i, w := range want {
		if dst.fills[i] != w {
			t.Errorf("fill %d = %+v, want %+v", i, dst.fills[i], w)
		}
	}
}

func TestRenderLayersBackToFront(t *testing.T) {
	m := NewTileMap(DefaultLayers, 32)
	m.SetTile(1, 0, 0, KindRed)
	m.SetTile(0, 0, 0, KindGreen)
	cam := NewCamera(m, 512, 512)
	dst := &recordingSurface{}

	Render(dst, cam, m, DefaultRenderOptions())

	if len(dst.fills) != 2 {
		t.Fatalf("fills = %d, want 2", len(dst.fills))
	}
	if dst.fills[0].c != ColorGreen || dst.fills[1].c != ColorRed {
		t.Errorf("layer order = %v then %v, want green then red", dst.fills[0].c, dst.fills[1].c)
	}
}

func TestRenderCullsOffscreenTiles(t *testing.T) {
	m := NewTileMap(DefaultLayers, 32)
	m.SetTile(0, 100, 100, KindGreen)
	m.SetTile(0, -1, 0, KindGreen)
	cam := NewCamera(m, 512, 512)
	dst := &recordingSurface{}

	stats := Render(dst, cam, m, DefaultRenderOptions())
	if stats.Tiles != 0 {
		t.Errorf("Tiles = %d, want 0 for offscreen tiles", stats.Tiles)
	}

	cam.CenterAt(100.5, 100.5)
	stats = Render(dst, cam, m, DefaultRenderOptions())
	if stats.Tiles != 1 {
		t.Errorf("Tiles = %d after centering, want 1", stats.Tiles)
	}
}

func TestRenderNoSeamsWhenZoomed(t *testing.T) {
	m := NewTileMap(DefaultLayers, 32)
	m.SetTile(0, 0, 0, KindGreen)
	m.SetTile(0, 1, 0, KindGreen)
	cam := NewCamera(m, 512, 512)
	cam.X, cam.Y = 0, 0
	cam.Scale = 1.3
	cam.TileSize = 32 * 1.3

	dst := &recordingSurface{}
	opts := DefaultRenderOptions()
	opts.ShowGrid = false
	Render(dst, cam, m, opts)

	if len(dst.fills) != 2 {
		t.Fatalf("fills = %d, want 2", len(dst.fills))
	}
	a, b := dst.fills[0], dst.fills[1]
	if a.x+a.w != b.x {
		t.Errorf("tile edges %v and %v leave a seam", a.x+a.w, b.x)
	}
}

func TestRenderGridPanned(t *testing.T) {
	m := NewTileMap(DefaultLayers, 32)
	cam := NewCamera(m, 512, 512)
	cam.X, cam.Y = 16, 16
	dst := &recordingSurface{}

	stats := Render(dst, cam, m, DefaultRenderOptions())
	// Boundaries at 16, 48, ..., 496 on each axis.
	if stats.Lines != 32 {
		t.Errorf("lines = %d, want 32", stats.Lines)
	}
	for _, l := range dst.lines {
		if l.x0 == l.x1 && (l.y0 != 0 || l.y1 != 512) {
			t.Errorf("vertical line %+v does not span the viewport", l)
		}
	}
}

func TestRenderCustomColors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Background = ColorBlack
	cfg.TileColors = []Color{{0, 0, 1, 1}, {1, 1, 0, 1}}
	opts := cfg.RenderOptions()

	m := NewTileMap(DefaultLayers, 32)
	m.SetTile(0, 0, 0, KindGreen)
	m.SetTile(0, 1, 0, KindRed)
	dst := &recordingSurface{}
	Render(dst, NewCamera(m, 512, 512), m, opts)

	if dst.clear != ColorBlack {
		t.Errorf("clear = %v, want black", dst.clear)
	}
	if dst.fills[0].c != (Color{0, 0, 1, 1}) || dst.fills[1].c != (Color{1, 1, 0, 1}) {
		t.Errorf("fills = %+v", dst.fills)
	}
}

func TestRendererMarginAvoidsRebuild(t *testing.T) {
	m := NewTileMap(DefaultLayers, 32)
	m.SetTile(0, 3, 3, KindGreen)
	cam := NewCamera(m, 512, 512)
	r := NewRenderer()
	dst := &recordingSurface{}

	stats := r.Render(dst, cam, m, DefaultRenderOptions())
	if stats.Rebuilds != m.Layers() {
		t.Fatalf("first frame Rebuilds = %d, want %d", stats.Rebuilds, m.Layers())
	}

	// Visible cols 0..15 are buffered as -2..17. Panning two tiles stays
	// inside the window.
	cam.MoveRaw(64, 0)
	stats = r.Render(dst, cam, m, DefaultRenderOptions())
	if stats.Rebuilds != 0 {
		t.Errorf("Rebuilds = %d within the margin, want 0", stats.Rebuilds)
	}
	if stats.Tiles != 1 || dst.fills[0].x != 32 {
		t.Errorf("fills = %+v, want the tile at x=32", dst.fills)
	}

	// One more tile crosses the buffered window.
	cam.MoveRaw(32, 0)
	stats = r.Render(dst, cam, m, DefaultRenderOptions())
	if stats.Rebuilds != m.Layers() {
		t.Errorf("Rebuilds = %d after leaving the window, want %d", stats.Rebuilds, m.Layers())
	}
	if stats.Tiles != 1 || dst.fills[0].x != 0 {
		t.Errorf("fills = %+v, want the tile at x=0", dst.fills)
	}
}

func TestRendererRebuildsOnMapChange(t *testing.T) {
	m := NewTileMap(DefaultLayers, 32)
	cam := NewCamera(m, 512, 512)
	r := NewRenderer()
	dst := &recordingSurface{}
	r.Render(dst, cam, m, DefaultRenderOptions())

	m.SetTile(0, 5, 5, KindRed)
	stats := r.Render(dst, cam, m, DefaultRenderOptions())
	if stats.Rebuilds == 0 || stats.Tiles != 1 {
		t.Errorf("after SetTile: Rebuilds = %d, Tiles = %d, want >0 and 1", stats.Rebuilds, stats.Tiles)
	}

	m.SetTile(0, 5, 5, KindRed)
	stats = r.Render(dst, cam, m, DefaultRenderOptions())
	if stats.Rebuilds != 0 {
		t.Errorf("Rebuilds = %d after a no-op SetTile, want 0", stats.Rebuilds)
	}

	cam.Zoom(0.5)
	stats = r.Render(dst, cam, m, DefaultRenderOptions())
	if stats.Rebuilds != m.Layers() {
		t.Errorf("Rebuilds = %d after zooming out, want %d", stats.Rebuilds, m.Layers())
	}

	r.Invalidate()
	stats = r.Render(dst, cam, m, DefaultRenderOptions())
	if stats.Rebuilds != m.Layers() {
		t.Errorf("Rebuilds = %d after Invalidate, want %d", stats.Rebuilds, m.Layers())
	}
}

func TestRendererSkipsBufferedOffscreenTiles(t *testing.T) {
	m := NewTileMap(DefaultLayers, 32)
	m.SetTile(0, 16, 0, KindGreen) // inside the margin, right of the viewport
	m.SetTile(0, -2, 4, KindRed)   // inside the margin, left of the viewport
	m.SetTile(0, 15, 15, KindGreen)
	cam := NewCamera(m, 512, 512)
	r := NewRenderer()
	dst := &recordingSurface{}

	stats := r.Render(dst, cam, m, DefaultRenderOptions())
	if len(r.layers[0].tiles) != 3 {
		t.Errorf("buffered = %d, want 3", len(r.layers[0].tiles))
	}
	if stats.Tiles != 1 || len(dst.fills) != 1 {
		t.Fatalf("Tiles = %d, want only the visible tile", stats.Tiles)
	}
	if dst.fills[0].x != 480 || dst.fills[0].y != 480 {
		t.Errorf("fill = %+v, want tile (15,15)", dst.fills[0])
	}
}
