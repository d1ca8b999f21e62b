package tilescroll

import "github.com/hajimehoshi/ebiten/v2"

type syntheticKind uint8

const (
	syntheticPress syntheticKind = iota
	syntheticMove
	syntheticRelease
	syntheticKey
	syntheticZoom
)

// syntheticEvent represents a single injected input event. Pointer events use
// viewport pixel coordinates, identical to real mouse input.
type syntheticEvent struct {
	kind   syntheticKind
	x, y   float64
	key    ebiten.Key
	frames int
	factor float64
}

// InjectPress queues a primary pointer press at the given viewport
// coordinates. The event is consumed on the next frame.
func (g *Game) InjectPress(x, y float64) {
	g.injectQueue = append(g.injectQueue, syntheticEvent{kind: syntheticPress, x: x, y: y})
}

// InjectMove queues a pointer move with the button held down. Use this
// between InjectPress and InjectRelease to simulate a drag.
func (g *Game) InjectMove(x, y float64) {
	g.injectQueue = append(g.injectQueue, syntheticEvent{kind: syntheticMove, x: x, y: y})
}

// InjectRelease queues a pointer release at the given viewport coordinates.
func (g *Game) InjectRelease(x, y float64) {
	g.injectQueue = append(g.injectQueue, syntheticEvent{kind: syntheticRelease, x: x, y: y})
}

// InjectClick queues a press followed by a release at the same coordinates.
// Consumes two frames.
func (g *Game) InjectClick(x, y float64) {
	g.InjectPress(x, y)
	g.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, then a final move and
// release at (toX, toY). Minimum frames is 2.
func (g *Game) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	g.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		g.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	g.InjectRelease(toX, toY)
}

// InjectKey queues holding key for the given number of frames.
func (g *Game) InjectKey(key ebiten.Key, frames int) {
	if frames < 1 {
		frames = 1
	}
	g.injectQueue = append(g.injectQueue, syntheticEvent{kind: syntheticKey, key: key, frames: frames})
}

// InjectZoom queues a zoom by factor.
func (g *Game) InjectZoom(factor float64) {
	g.injectQueue = append(g.injectQueue, syntheticEvent{kind: syntheticZoom, factor: factor})
}

// processInjectedInput pops one event from the inject queue and feeds it to
// the matching handler.
func (g *Game) processInjectedInput() {
	if len(g.injectQueue) == 0 {
		return
	}
	evt := g.injectQueue[0]
	copy(g.injectQueue, g.injectQueue[1:])
	g.injectQueue = g.injectQueue[:len(g.injectQueue)-1]

	switch evt.kind {
	case syntheticPress:
		g.PointerDown(evt.x, evt.y)
	case syntheticMove:
		g.PointerMove(evt.x, evt.y)
	case syntheticRelease:
		// A release always lands where the pointer last was.
		g.PointerMove(evt.x, evt.y)
		g.PointerUp(evt.x, evt.y)
	case syntheticKey:
		g.heldKeys[evt.key] += evt.frames
	case syntheticZoom:
		g.ZoomBy(evt.factor)
	}
}

// applyHeldKeys presses every injected key that still has frames left and
// releases keys whose hold ran out on the previous frame.
func (g *Game) applyHeldKeys() {
	for key, n := range g.heldKeys {
		if n <= 0 {
			g.keyboard.Release(key)
			delete(g.heldKeys, key)
			continue
		}
		g.keyboard.Press(key)
		g.heldKeys[key] = n - 1
	}
}
