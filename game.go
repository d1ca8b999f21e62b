package tilescroll

import (
	"context"
	"image"
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

// GameState is the lifecycle phase of a Game.
type GameState uint8

const (
	// StateLoading waits for queued assets. No input is processed.
	StateLoading GameState = iota
	// StateRunning updates and draws every frame. Terminal.
	StateRunning
)

// TilesetKey is the loader key of the tile-sheet image.
const TilesetKey = "tiles"

// MaxFrameDelta caps the per-frame delta so a stalled frame does not fling
// the camera.
const MaxFrameDelta = 250 * time.Millisecond

// blockSubdivisions is the number of HUD blocks along one tile edge.
const blockSubdivisions = 16

// frameClock measures seconds between ticks, clamped to max.
type frameClock struct {
	now  func() time.Time
	prev time.Time
	max  time.Duration
}

func (c *frameClock) reset() {
	c.prev = c.now()
}

func (c *frameClock) tick() float64 {
	t := c.now()
	d := t.Sub(c.prev)
	c.prev = t
	if d > c.max {
		d = c.max
	}
	if d < 0 {
		d = 0
	}
	return d.Seconds()
}

// Game is the tile-map viewer. It owns the map, the camera, the keyboard and
// the asset loader, and implements ebiten.Game.
type Game struct {
	cfg   *Config
	state GameState

	tiles    *TileMap
	camera   *Camera
	keyboard *Keyboard
	loader   *Loader
	loadDone <-chan error
	clock    frameClock

	drag             dragState
	cursorX, cursorY float64
	hwX, hwY         float64
	prompt           centerPrompt
	runeBuf          []rune

	opts      RenderOptions
	renderer  *Renderer
	atlas     image.Image
	hud       *hud
	lastStats RenderStats

	injectQueue     []syntheticEvent
	heldKeys        map[ebiten.Key]int
	testRunner      *TestRunner
	screenshotQueue []string

	onUpdate []func(dt float64)

	debug  bool
	logger *log.Logger
	quit   bool
}

// NewGame creates a game that loads its tile sheet from the local filesystem.
// A nil cfg means DefaultConfig.
func NewGame(cfg *Config) (*Game, error) {
	return NewGameWithLoader(cfg, NewLoader())
}

// NewGameWithLoader creates a game that loads assets through loader. The
// tile sheet named by cfg.Tileset is queued on it.
func NewGameWithLoader(cfg *Config, loader *Loader) (*Game, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &Game{
		cfg:      cfg,
		state:    StateLoading,
		tiles:    NewTileMap(cfg.Layers, cfg.TileSize),
		keyboard: NewKeyboard(),
		loader:   loader,
		clock:    frameClock{now: time.Now, max: MaxFrameDelta},
		opts:     cfg.RenderOptions(),
		renderer: NewRenderer(),
		heldKeys: make(map[ebiten.Key]int),
		debug:    cfg.Debug,
		logger:   newLogger(),
	}
	g.camera = NewCamera(g.tiles, float64(cfg.Width), float64(cfg.Height))
	g.hud = newHUD(g.logger)
	if cfg.Tileset != "" {
		loader.LoadImage(TilesetKey, cfg.Tileset)
	}
	return g, nil
}

// init runs once, when loading finished successfully.
func (g *Game) init() {
	g.atlas = g.loader.Image(TilesetKey)
	g.hud.setAtlas(g.atlas)
	g.keyboard.Listen(KeyLeft, KeyRight, KeyUp, KeyDown)
	if len(g.cfg.StartCenter) == 2 {
		g.camera.CenterAt(float64(g.cfg.StartCenter[0])+0.5, float64(g.cfg.StartCenter[1])+0.5)
	}
	g.clock.reset()
	g.state = StateRunning
	g.logger.Printf("assets loaded, running")
}

// Update implements ebiten.Game. While loading it polls the asset load and
// returns its error, which stops ebiten.RunGame.
func (g *Game) Update() error {
	if g.state == StateLoading {
		return g.pollLoad()
	}
	if g.quit {
		return ebiten.Termination
	}
	g.step(true)
	return nil
}

func (g *Game) pollLoad() error {
	if g.loadDone == nil {
		g.loadDone = g.loader.Start(context.Background())
	}
	select {
	case err := <-g.loadDone:
		if err != nil {
			g.logger.Printf("startup aborted: %v", err)
			return err
		}
		g.init()
	default:
	}
	return nil
}

// step runs one running frame. poll is false in tests so that no ebiten
// input state is read.
func (g *Game) step(poll bool) {
	delta := g.clock.tick()

	if g.testRunner != nil {
		g.testRunner.step(g)
	}
	g.processInjectedInput()
	if poll {
		g.keyboard.Poll()
		g.pollShortcuts()
		g.pollPointer()
	}
	g.applyHeldKeys()
	g.update(delta)
	for _, fn := range g.onUpdate {
		fn(delta)
	}
}

// update advances the simulation by delta seconds.
func (g *Game) update(delta float64) {
	dx, dy := g.keyboard.Direction()
	g.camera.Move(delta, dx, dy)
	g.camera.update(delta)
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.state == StateLoading {
		screen.Fill(g.opts.Background.ToRGBA())
		g.hud.drawLoading(screen)
		return
	}
	start := time.Now()
	stats := g.renderer.Render(NewEbitenSurface(screen), g.camera, g.tiles, g.opts)
	stats.Elapsed = time.Since(start)
	g.lastStats = stats
	g.debugLog(stats)

	g.hud.draw(screen, g)
	g.flushScreenshots(screen)
}

// Layout implements ebiten.Game. The logical surface has a fixed size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// ClickTile advances the layer 0 tile under viewport pixel (sx, sy) through
// the cycle empty, green, red, empty.
func (g *Game) ClickTile(sx, sy float64) {
	c := g.camera.ScreenToTile(sx, sy)
	v := g.tiles.Tile(0, c.Col, c.Row)
	g.tiles.SetTile(0, c.Col, c.Row, (v+1)%KindCount)
}

// CenterAt brings the middle of tile (col, row) to the viewport center,
// gliding there when the config asks for it.
func (g *Game) CenterAt(col, row int) {
	wx, wy := float64(col)+0.5, float64(row)+0.5
	g.camera.GlideTo(wx, wy, float32(g.cfg.GlideSeconds), ease.OutQuad)
}

// ZoomBy multiplies the camera scale by factor around the viewport center.
func (g *Game) ZoomBy(factor float64) {
	g.camera.Zoom(factor)
}

// ToggleGrid shows or hides the grid overlay.
func (g *Game) ToggleGrid() {
	g.opts.ShowGrid = !g.opts.ShowGrid
}

// GridVisible reports whether the grid overlay is drawn.
func (g *Game) GridVisible() bool { return g.opts.ShowGrid }

// OnUpdate registers fn to run at the end of every running frame with the
// frame delta in seconds.
func (g *Game) OnUpdate(fn func(dt float64)) {
	g.onUpdate = append(g.onUpdate, fn)
}

// Quit makes the next Update return ebiten.Termination.
func (g *Game) Quit() { g.quit = true }

// SetEventSink routes tile changes to sink.
func (g *Game) SetEventSink(sink EventSink) { g.tiles.SetEventSink(sink) }

// Config returns the settings the game was created with.
func (g *Game) Config() *Config { return g.cfg }

// State returns the lifecycle phase.
func (g *Game) State() GameState { return g.state }

// TileMap returns the map edited by clicks.
func (g *Game) TileMap() *TileMap { return g.tiles }

// Camera returns the viewport camera. It exists from NewGame on, so zoom and
// centering applied while loading carry into the running state.
func (g *Game) Camera() *Camera { return g.camera }

// Keyboard returns the directional key tracker. The arrow keys are registered
// once loading finished.
func (g *Game) Keyboard() *Keyboard { return g.keyboard }

// Atlas returns the loaded tile sheet, or nil before loading finished.
func (g *Game) Atlas() image.Image { return g.atlas }

// Stats returns the render stats of the last drawn frame.
func (g *Game) Stats() RenderStats { return g.lastStats }

// Cursor returns the last known pointer position in viewport pixels.
func (g *Game) Cursor() (x, y float64) { return g.cursorX, g.cursorY }

// CursorTile returns the tile under the pointer and the block within the
// tile grid subdivided blockSubdivisions times.
func (g *Game) CursorTile() (tile, block TileCoord) {
	wx, wy := g.camera.ScreenToWorld(g.cursorX, g.cursorY)
	tile = g.camera.ScreenToTile(g.cursorX, g.cursorY)
	block = TileCoord{
		Col: int(math.Floor(wx * blockSubdivisions)),
		Row: int(math.Floor(wy * blockSubdivisions)),
	}
	return tile, block
}

// Run opens a window sized to the config and runs g until the window closes,
// a script quits, or loading fails.
func Run(g *Game) error {
	ebiten.SetWindowSize(g.cfg.Width, g.cfg.Height)
	ebiten.SetWindowTitle(g.cfg.Title)
	return ebiten.RunGame(g)
}
