package tilescroll

import (
	"fmt"
	"sort"
)

// Tile kinds. KindEmpty is never stored; absence of an entry means empty.
const (
	KindEmpty = 0
	KindGreen = 1
	KindRed   = 2

	// KindCount is the length of the click cycle 0 -> 1 -> 2 -> 0.
	KindCount = 3
)

// DefaultLayers is the number of layers the demo map is created with.
const DefaultLayers = 2

// TileCoord identifies a tile by integer column and row. It is comparable and
// used directly as a map key.
type TileCoord struct {
	Col, Row int
}

// TileEvent describes a change of a stored tile value.
type TileEvent struct {
	Layer int
	Coord TileCoord
	Old   int
	New   int
}

// EventSink receives tile change events. See the ecs package for a Donburi
// backed implementation.
type EventSink interface {
	EmitEvent(event TileEvent)
}

// TileMap is an infinite sparse grid split into a fixed number of layers.
// Any integer coordinate is valid; unset coordinates read as KindEmpty.
type TileMap struct {
	// TileSize is the base tile edge length in pixels at scale 1.
	TileSize int

	layers []map[TileCoord]int
	sink   EventSink
	gen    uint64
}

// NewTileMap creates a map with the given number of empty layers.
func NewTileMap(layers, tileSize int) *TileMap {
	if layers < 1 {
		panic(fmt.Sprintf("tilescroll: NewTileMap with %d layers", layers))
	}
	m := &TileMap{
		TileSize: tileSize,
		layers:   make([]map[TileCoord]int, layers),
	}
	for i := range m.layers {
		m.layers[i] = make(map[TileCoord]int)
	}
	return m
}

// SetEventSink routes tile changes to sink. Pass nil to disable.
func (m *TileMap) SetEventSink(sink EventSink) {
	m.sink = sink
}

// Layers returns the number of layers.
func (m *TileMap) Layers() int {
	return len(m.layers)
}

// layer returns the storage for index i. An index outside the layer range is
// a programming error.
func (m *TileMap) layer(i int) map[TileCoord]int {
	if i < 0 || i >= len(m.layers) {
		panic(fmt.Sprintf("tilescroll: layer %d out of range [0, %d)", i, len(m.layers)))
	}
	return m.layers[i]
}

// Tile returns the kind stored at (col, row), or KindEmpty.
func (m *TileMap) Tile(layer, col, row int) int {
	return m.layer(layer)[TileCoord{col, row}]
}

// SetTile stores value at (col, row). Storing KindEmpty removes the entry.
func (m *TileMap) SetTile(layer, col, row, value int) {
	l := m.layer(layer)
	key := TileCoord{col, row}
	old := l[key]
	if value == KindEmpty {
		delete(l, key)
	} else {
		l[key] = value
	}
	if old == value {
		return
	}
	m.gen++
	if m.sink != nil {
		m.sink.EmitEvent(TileEvent{Layer: layer, Coord: key, Old: old, New: value})
	}
}

// Generation returns a counter that increases with every change of a stored
// value.
func (m *TileMap) Generation() uint64 {
	return m.gen
}

// Len returns the number of stored (non-empty) tiles on a layer.
func (m *TileMap) Len(layer int) int {
	return len(m.layer(layer))
}

// Selection returns every coordinate on layer that stores value, sorted by
// row and then column. It is always empty for KindEmpty.
func (m *TileMap) Selection(layer, value int) []TileCoord {
	l := m.layer(layer)
	var out []TileCoord
	if value == KindEmpty {
		return out
	}
	for k, v := range l {
		if v == value {
			out = append(out, k)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}
