package ecs

import (
	"github.com/phanxgames/tilescroll"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// TileEventType is the Donburi event type for tile changes.
var TileEventType = events.NewEventType[tilescroll.TileEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Tile changes
// are published to TileEventType and can be consumed with events.Subscribe
// and ProcessEvents.
func NewDonburiSink(world donburi.World) tilescroll.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event tilescroll.TileEvent) {
	TileEventType.Publish(s.world, event)
}

// Tally counts tile kinds per layer as events arrive. Register it with
// Subscribe and read it after ProcessEvents.
type Tally struct {
	counts map[int]map[int]int
}

// NewTally returns an empty tally.
func NewTally() *Tally {
	return &Tally{counts: make(map[int]map[int]int)}
}

// Subscribe attaches the tally to TileEventType in world.
func (t *Tally) Subscribe(world donburi.World) {
	TileEventType.Subscribe(world, t.handle)
}

func (t *Tally) handle(_ donburi.World, e tilescroll.TileEvent) {
	layer := t.counts[e.Layer]
	if layer == nil {
		layer = make(map[int]int)
		t.counts[e.Layer] = layer
	}
	if e.Old != tilescroll.KindEmpty {
		layer[e.Old]--
	}
	if e.New != tilescroll.KindEmpty {
		layer[e.New]++
	}
}

// Count returns how many tiles of kind are stored on layer.
func (t *Tally) Count(layer, kind int) int {
	return t.counts[layer][kind]
}
