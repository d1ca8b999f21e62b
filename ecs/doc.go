// Package ecs provides ECS adapters for tilescroll's tile change events.
//
// The primary adapter is [NewDonburiSink], which publishes every tile change
// into a [Donburi] world as a typed event. Subscribe to [TileEventType] in
// your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	game.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
