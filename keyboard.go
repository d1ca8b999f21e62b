package tilescroll

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Direction keys polled every frame for keyboard panning.
const (
	KeyLeft  = ebiten.KeyArrowLeft
	KeyRight = ebiten.KeyArrowRight
	KeyUp    = ebiten.KeyArrowUp
	KeyDown  = ebiten.KeyArrowDown
)

// Keyboard tracks the held state of a registered set of keys.
type Keyboard struct {
	keys map[ebiten.Key]bool
}

// NewKeyboard returns a keyboard with no registered keys.
func NewKeyboard() *Keyboard {
	return &Keyboard{keys: make(map[ebiten.Key]bool)}
}

// Listen registers keys for tracking. Registered keys start released.
func (k *Keyboard) Listen(keys ...ebiten.Key) {
	for _, key := range keys {
		if _, ok := k.keys[key]; !ok {
			k.keys[key] = false
		}
	}
}

// Listening reports whether key is registered.
func (k *Keyboard) Listening(key ebiten.Key) bool {
	_, ok := k.keys[key]
	return ok
}

// Press marks key as held. Unregistered keys are ignored.
func (k *Keyboard) Press(key ebiten.Key) {
	if _, ok := k.keys[key]; ok {
		k.keys[key] = true
	}
}

// Release marks key as released. Unregistered keys are ignored.
func (k *Keyboard) Release(key ebiten.Key) {
	if _, ok := k.keys[key]; ok {
		k.keys[key] = false
	}
}

// IsDown reports whether key is held. It panics if key was never registered
// with Listen.
func (k *Keyboard) IsDown(key ebiten.Key) bool {
	down, ok := k.keys[key]
	if !ok {
		panic(fmt.Sprintf("tilescroll: key %v is not being listened to", key))
	}
	return down
}

// Direction combines the four arrow keys into a pan direction. Opposite keys
// held together cancel out.
func (k *Keyboard) Direction() (dx, dy int) {
	if k.IsDown(KeyLeft) {
		dx--
	}
	if k.IsDown(KeyRight) {
		dx++
	}
	if k.IsDown(KeyUp) {
		dy--
	}
	if k.IsDown(KeyDown) {
		dy++
	}
	return dx, dy
}

// Poll refreshes every registered key from the ebiten input state.
func (k *Keyboard) Poll() {
	for key := range k.keys {
		k.keys[key] = ebiten.IsKeyPressed(key)
	}
}
