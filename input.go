package tilescroll

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Drag defaults.
const (
	// DefaultDragThreshold is the displacement in pixels, on either axis,
	// after which a press turns into a scroll instead of a click.
	DefaultDragThreshold = 10.0
	// DefaultZoomStep is the factor applied per wheel notch or +/- key.
	DefaultZoomStep = 1.25
)

// dragState is the press/move/release state machine for the primary pointer.
// lastX/lastY stay at the press point until the threshold is crossed, so the
// first scroll applies the whole displacement.
type dragState struct {
	active    bool
	scrolling bool
	startX    float64
	startY    float64
	lastX     float64
	lastY     float64
}

// press starts tracking a gesture at (x, y).
func (d *dragState) press(x, y float64) {
	*d = dragState{active: true, startX: x, startY: y, lastX: x, lastY: y}
}

// move returns the scroll delta for a pointer move to (x, y). ok is false
// while the gesture is still below threshold or no gesture is active.
func (d *dragState) move(x, y, threshold float64) (dx, dy float64, ok bool) {
	if !d.active {
		return 0, 0, false
	}
	if !d.scrolling && (math.Abs(x-d.startX) > threshold || math.Abs(y-d.startY) > threshold) {
		d.scrolling = true
	}
	if !d.scrolling {
		return 0, 0, false
	}
	dx, dy = d.lastX-x, d.lastY-y
	d.lastX, d.lastY = x, y
	return dx, dy, true
}

// release ends the gesture and reports whether it was a click.
func (d *dragState) release() (click bool) {
	click = d.active && !d.scrolling
	*d = dragState{}
	return click
}

// PointerDown handles a primary button press at viewport pixel (x, y).
func (g *Game) PointerDown(x, y float64) {
	g.cursorX, g.cursorY = x, y
	g.drag.press(x, y)
}

// PointerMove handles pointer motion. While a press is held past the drag
// threshold the camera scrolls with the pointer.
func (g *Game) PointerMove(x, y float64) {
	g.cursorX, g.cursorY = x, y
	if dx, dy, ok := g.drag.move(x, y, g.cfg.DragThreshold); ok {
		g.camera.MoveRaw(dx, dy)
	}
}

// PointerUp handles a primary button release. A release that never crossed
// the drag threshold clicks the tile under the pointer.
func (g *Game) PointerUp(x, y float64) {
	g.cursorX, g.cursorY = x, y
	if g.drag.release() {
		g.ClickTile(x, y)
	}
}

// pointerSample is one frame of hardware pointer state.
type pointerSample struct {
	x, y     float64
	pressed  bool // primary button went down this frame
	released bool // primary button went up this frame
	wheel    float64
}

// pollPointer reads mouse and wheel state from ebiten and applies it.
func (g *Game) pollPointer() {
	mx, my := ebiten.CursorPosition()
	_, wy := ebiten.Wheel()
	g.applyPointer(pointerSample{
		x:        float64(mx),
		y:        float64(my),
		pressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		released: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		wheel:    wy,
	})
}

// applyPointer feeds a hardware sample into the pointer handlers. Motion is
// reported only when the hardware cursor itself moved, so a resting mouse does
// not disturb an injected gesture. Presses outside the viewport are ignored.
func (g *Game) applyPointer(s pointerSample) {
	moved := s.x != g.hwX || s.y != g.hwY
	g.hwX, g.hwY = s.x, s.y

	viewport := Rect{Width: float64(g.cfg.Width), Height: float64(g.cfg.Height)}
	if s.pressed && viewport.Contains(s.x, s.y) {
		g.PointerDown(s.x, s.y)
	}
	if moved {
		g.PointerMove(s.x, s.y)
	}
	if s.released && g.drag.active {
		g.PointerUp(s.x, s.y)
	}

	if s.wheel > 0 {
		g.ZoomBy(g.cfg.ZoomStep)
	} else if s.wheel < 0 {
		g.ZoomBy(1 / g.cfg.ZoomStep)
	}
}

// pollShortcuts handles edge-triggered keys. While the center prompt is open
// all typing goes to the prompt.
func (g *Game) pollShortcuts() {
	if g.prompt.active {
		g.prompt.typed(ebiten.AppendInputChars(g.runeBuf[:0]))
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeyBackspace):
			g.prompt.backspace()
		case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
			g.prompt.close()
		case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter):
			if col, row, ok := g.prompt.submit(); ok {
				g.CenterAt(col, row)
			}
		}
		return
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual), inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd):
		g.ZoomBy(g.cfg.ZoomStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus), inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract):
		g.ZoomBy(1 / g.cfg.ZoomStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyG):
		g.ToggleGrid()
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.prompt.open()
	case inpututil.IsKeyJustPressed(ebiten.KeyF12):
		g.Screenshot("manual")
	}
}
