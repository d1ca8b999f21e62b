// Package tilescroll is a scrollable, zoomable 2D tile-map viewer for
// [Ebitengine].
//
// A [TileMap] stores sparse integer tiles per layer, keyed by [TileCoord].
// A [Camera] maps world coordinates (tile units) to viewport pixels and pans,
// zooms and centers the view. [Game] ties them together with a [Keyboard],
// pointer drag tracking and an asset [Loader], and implements [ebiten.Game].
//
// # Quick start
//
//	game, err := tilescroll.NewGame(tilescroll.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := tilescroll.Run(game); err != nil {
//		log.Fatal(err)
//	}
//
// The game starts in [StateLoading] and decodes the tile sheet named by
// [Config.Tileset]. If loading fails, Update returns the error and
// [ebiten.RunGame] stops. Once loaded, every frame reads the arrow keys and
// the pointer, advances the camera by the frame delta (capped at
// [MaxFrameDelta]) and draws the visible tiles and grid.
//
// # Controls
//
//   - Arrow keys pan. Opposite keys cancel.
//   - Dragging further than [Config.DragThreshold] pixels pans with the pointer.
//   - Clicking a tile cycles it through empty, green and red.
//   - The mouse wheel and +/- zoom around the viewport center.
//   - C opens a prompt that centers the view on a typed "x,z" tile.
//   - G toggles the grid, F12 saves a screenshot.
//
// # Rendering
//
// [Render] draws through the [Surface] interface. [NewEbitenSurface] adapts
// an ebiten image; tests use a recording implementation.
//
// # Automation
//
// Synthetic input can be queued with [Game.InjectClick], [Game.InjectDrag],
// [Game.InjectKey] and [Game.InjectZoom], or scripted as JSON through
// [LoadTestScript] and [Game.SetTestRunner]. Scripts can capture screenshots
// with [Game.Screenshot].
//
// # ECS integration
//
// Tile changes are reported to an [EventSink]. The ecs subpackage publishes
// them into a [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package tilescroll
