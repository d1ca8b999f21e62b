package tilescroll

import (
	"math"
	"time"
)

// RenderOptions controls the look of a rendered frame.
type RenderOptions struct {
	Background Color
	ShowGrid   bool
	GridColor  Color
	GridWidth  float64
	// KindColors maps tile kinds to fill colors. Only kinds 1 and 2 are
	// drawn; index 0 is unused.
	KindColors [KindCount]Color
}

// DefaultRenderOptions returns a white background, a light gray grid and
// green/red tiles.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Background: ColorWhite,
		ShowGrid:   true,
		GridColor:  ColorGrid,
		GridWidth:  1,
		KindColors: [KindCount]Color{ColorWhite, ColorGreen, ColorRed},
	}
}

// DefaultMarginTiles is the number of extra tiles kept buffered beyond each
// viewport edge so small pans do not rebuild the tile buffer.
const DefaultMarginTiles = 2

// RenderStats counts the primitives submitted for one frame.
type RenderStats struct {
	Tiles int
	Lines int
	// Rebuilds is the number of layer buffers refilled this frame.
	Rebuilds int
	Elapsed  time.Duration
}

// bufferedTile is one non-empty, drawable tile captured by a layer buffer.
type bufferedTile struct {
	coord TileCoord
	kind  int
}

// layerBuffer holds the drawable tiles of one layer inside a window of
// bufCols x bufRows tiles starting at (bufStartCol, bufStartRow).
type layerBuffer struct {
	bufStartCol int
	bufStartRow int
	bufCols     int
	bufRows     int
	gen         uint64
	valid       bool
	tiles       []bufferedTile
}

// covers reports whether the window contains the tile range [first, last].
func (b *layerBuffer) covers(first, last TileCoord) bool {
	return b.valid &&
		first.Col >= b.bufStartCol && last.Col < b.bufStartCol+b.bufCols &&
		first.Row >= b.bufStartRow && last.Row < b.bufStartRow+b.bufRows
}

// Renderer draws a TileMap through a Camera. It buffers the drawable tiles
// around the viewport per layer and refills a buffer only when the visible
// range leaves its window or the map changed.
type Renderer struct {
	// MarginTiles is the number of extra tiles beyond the viewport edge to
	// keep buffered.
	MarginTiles int

	layers []layerBuffer
}

// NewRenderer creates a renderer with DefaultMarginTiles.
func NewRenderer() *Renderer {
	return &Renderer{MarginTiles: DefaultMarginTiles}
}

// Invalidate forces every layer buffer to be rebuilt on the next frame.
func (r *Renderer) Invalidate() {
	for i := range r.layers {
		r.layers[i].valid = false
	}
}

// Render clears dst and draws every layer of m back to front as seen through
// cam, followed by the optional grid overlay.
func (r *Renderer) Render(dst Surface, cam *Camera, m *TileMap, opts RenderOptions) RenderStats {
	var stats RenderStats
	dst.Clear(opts.Background)

	if len(r.layers) != m.Layers() {
		r.layers = make([]layerBuffer, m.Layers())
	}

	first, last := cam.VisibleRange()
	view := cam.VisibleBounds()
	for layer := range r.layers {
		buf := &r.layers[layer]
		if buf.gen != m.Generation() || !buf.covers(first, last) {
			r.rebuild(buf, m, layer, first, last)
			stats.Rebuilds++
		}
		stats.Tiles += drawLayer(dst, cam, view, buf, &opts)
	}
	if opts.ShowGrid {
		stats.Lines = drawGrid(dst, cam, first, last, &opts)
	}
	return stats
}

// Render draws one frame with a fresh Renderer. Use a Renderer directly to
// keep tile buffers between frames.
func Render(dst Surface, cam *Camera, m *TileMap, opts RenderOptions) RenderStats {
	return NewRenderer().Render(dst, cam, m, opts)
}

// rebuild refills buf with the drawable tiles of layer inside the visible
// range grown by MarginTiles on every side, in row-major order.
func (r *Renderer) rebuild(buf *layerBuffer, m *TileMap, layer int, first, last TileCoord) {
	margin := r.MarginTiles
	if margin < 0 {
		margin = 0
	}
	buf.bufStartCol = first.Col - margin
	buf.bufStartRow = first.Row - margin
	buf.bufCols = last.Col - first.Col + 1 + 2*margin
	buf.bufRows = last.Row - first.Row + 1 + 2*margin
	buf.gen = m.Generation()
	buf.valid = true
	buf.tiles = buf.tiles[:0]

	for br := 0; br < buf.bufRows; br++ {
		row := buf.bufStartRow + br
		for bc := 0; bc < buf.bufCols; bc++ {
			col := buf.bufStartCol + bc
			kind := m.Tile(layer, col, row)
			if kind < KindGreen || kind >= KindCount {
				continue
			}
			buf.tiles = append(buf.tiles, bufferedTile{coord: TileCoord{col, row}, kind: kind})
		}
	}
}

// drawLayer fills the buffered tiles that overlap the visible world area.
// Tile edges are rounded independently so neighbouring tiles never leave a
// seam.
func drawLayer(dst Surface, cam *Camera, view Rect, buf *layerBuffer, opts *RenderOptions) int {
	drawn := 0
	for _, t := range buf.tiles {
		col, row := float64(t.coord.Col), float64(t.coord.Row)
		if !view.Overlaps(Rect{X: col, Y: row, Width: 1, Height: 1}) {
			continue
		}
		x0, y0 := cam.WorldToScreen(col, row)
		x1, y1 := cam.WorldToScreen(col+1, row+1)
		x0, y0 = math.Round(x0), math.Round(y0)
		x1, y1 = math.Round(x1), math.Round(y1)
		dst.FillRect(x0, y0, x1-x0, y1-y0, opts.KindColors[t.kind])
		drawn++
	}
	return drawn
}

// drawGrid strokes a line at every tile boundary that falls inside the
// viewport, spanning its full width or height.
func drawGrid(dst Surface, cam *Camera, first, last TileCoord, opts *RenderOptions) int {
	width := opts.GridWidth
	if width <= 0 {
		width = 1
	}
	lines := 0
	for col := first.Col; col <= last.Col+1; col++ {
		x, _ := cam.WorldToScreen(float64(col), 0)
		x = math.Round(x)
		if x < 0 || x > cam.Width {
			continue
		}
		dst.StrokeLine(x, 0, x, cam.Height, width, opts.GridColor)
		lines++
	}
	for row := first.Row; row <= last.Row+1; row++ {
		_, y := cam.WorldToScreen(0, float64(row))
		y = math.Round(y)
		if y < 0 || y > cam.Height {
			continue
		}
		dst.StrokeLine(0, y, cam.Width, y, width, opts.GridColor)
		lines++
	}
	return lines
}
