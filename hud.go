package tilescroll

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"log"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/nfnt/resize"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	hudFontSize  = 13
	hudPadding   = 6
	legendMax    = 96
	fpsRefresh   = 500 * time.Millisecond
	debugLineGap = 16 // ebitenutil debug font line height
)

var hudBackdrop = color.RGBA{0, 0, 0, 128}

// hudFont wraps a text/v2 face with its cached line height.
type hudFont struct {
	face *text.GoTextFace
	lh   float64
}

func loadHUDFont(ttf []byte, size float64) (*hudFont, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		return nil, fmt.Errorf("parse hud font: %w", err)
	}
	face := &text.GoTextFace{Source: source, Size: size}
	m := face.Metrics()
	return &hudFont{face: face, lh: m.HAscent + m.HDescent + m.HLineGap}, nil
}

// hud draws the position line, frame rate, zoom, the center prompt and the
// tile-sheet legend on top of the map.
type hud struct {
	font *hudFont // nil falls back to the ebitenutil debug font

	legendSrc image.Image
	legend    *ebiten.Image

	fpsLine   string
	refreshed time.Time
}

func newHUD(logger *log.Logger) *hud {
	f, err := loadHUDFont(goregular.TTF, hudFontSize)
	if err != nil {
		logger.Printf("hud: %v, using debug font", err)
	}
	return &hud{font: f}
}

// setAtlas builds the legend thumbnail from the loaded tile sheet.
func (h *hud) setAtlas(img image.Image) {
	if img == nil {
		return
	}
	h.legendSrc = resize.Thumbnail(legendMax, legendMax, img, resize.Lanczos3)
	h.legend = nil
}

func (h *hud) lineHeight() float64 {
	if h.font == nil {
		return debugLineGap
	}
	return h.font.lh
}

// lines returns the HUD text for the current frame.
func (h *hud) lines(g *Game) []string {
	if h.fpsLine == "" || time.Since(h.refreshed) >= fpsRefresh {
		h.fpsLine = fmt.Sprintf("FPS: %.1f  TPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
		h.refreshed = time.Now()
	}
	tile, block := g.CursorTile()
	out := []string{
		fmt.Sprintf("Chunk x: %d, z: %d --- Block x: %d, z: %d", tile.Col, tile.Row, block.Col, block.Row),
		fmt.Sprintf("%s  Zoom: %.2fx", h.fpsLine, g.camera.Scale),
	}
	if p := g.prompt.line(); p != "" {
		out = append(out, p)
	} else {
		out = append(out, "C: center  G: grid  +/-: zoom  F12: screenshot")
	}
	return out
}

func (h *hud) draw(screen *ebiten.Image, g *Game) {
	lines := h.lines(g)
	lh := h.lineHeight()
	barH := float32(lh*float64(len(lines)) + 2*hudPadding)
	vector.DrawFilledRect(screen, 0, 0, float32(g.cfg.Width), barH, hudBackdrop, false)
	h.drawText(screen, strings.Join(lines, "\n"), hudPadding, hudPadding)
	h.drawLegend(screen)
}

func (h *hud) drawLoading(screen *ebiten.Image) {
	b := screen.Bounds()
	h.drawText(screen, "Loading...", hudPadding, float64(b.Dy())/2)
}

func (h *hud) drawText(screen *ebiten.Image, s string, x, y float64) {
	if h.font == nil {
		ebitenutil.DebugPrintAt(screen, s, int(x), int(y))
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(color.White)
	op.LineSpacing = h.font.lh
	text.Draw(screen, s, h.font.face, op)
}

// drawLegend shows the tile-sheet thumbnail in the bottom-right corner.
func (h *hud) drawLegend(screen *ebiten.Image) {
	if h.legendSrc == nil {
		return
	}
	if h.legend == nil {
		h.legend = ebiten.NewImageFromImage(h.legendSrc)
	}
	sb := screen.Bounds()
	lb := h.legend.Bounds()
	x := float64(sb.Dx() - lb.Dx() - hudPadding)
	y := float64(sb.Dy() - lb.Dy() - hudPadding)
	vector.DrawFilledRect(screen,
		float32(x-2), float32(y-2), float32(lb.Dx()+4), float32(lb.Dy()+4),
		hudBackdrop, false)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	screen.DrawImage(h.legend, op)
}
