package tilescroll

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Surface is an immediate-mode 2D drawing target.
type Surface interface {
	// Clear fills the whole surface with c.
	Clear(c Color)
	// FillRect fills the axis-aligned rectangle at (x, y) of size w x h.
	FillRect(x, y, w, h float64, c Color)
	// StrokeLine draws a line segment of the given width.
	StrokeLine(x0, y0, x1, y1, width float64, c Color)
}

// ebitenSurface draws onto an ebiten image through the vector package.
type ebitenSurface struct {
	dst *ebiten.Image
}

// NewEbitenSurface wraps dst as a Surface.
func NewEbitenSurface(dst *ebiten.Image) Surface {
	return &ebitenSurface{dst: dst}
}

func (s *ebitenSurface) Clear(c Color) {
	s.dst.Fill(c.ToRGBA())
}

func (s *ebitenSurface) FillRect(x, y, w, h float64, c Color) {
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), c.ToRGBA(), false)
}

// StrokeLine offsets by half a pixel so 1px lines on integer coordinates land
// on a single pixel column or row.
func (s *ebitenSurface) StrokeLine(x0, y0, x1, y1, width float64, c Color) {
	vector.StrokeLine(s.dst,
		float32(x0)+0.5, float32(y0)+0.5, float32(x1)+0.5, float32(y1)+0.5,
		float32(width), c.ToRGBA(), false)
}
