package main

import (
	"log"
	"os"

	"github.com/alecthomas/kong"
	"github.com/mitchellh/go-homedir"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/phanxgames/tilescroll"
	"github.com/phanxgames/tilescroll/ecs"
)

const desc = `Scrollable, zoomable tile map. Arrow keys or drag to pan, click a tile to cycle its color.`

var cli struct {
	Config        string  `short:"c" help:"YAML config file"`
	Tileset       string  `short:"t" help:"tile sheet image (overrides config)"`
	NoGrid        bool    `help:"hide the grid overlay"`
	Debug         bool    `short:"d" help:"log per-frame render stats"`
	Script        string  `short:"s" help:"JSON test script to run"`
	ScreenshotDir string  `help:"directory for screenshots (overrides config)"`
	Center        string  `help:"tile to center on start, as x,z"`
	Glide         float64 `default:"-1" help:"seconds to glide when centering, 0 to jump (overrides config)"`
}

func main() {
	kong.Parse(
		&cli,
		kong.Name("tilescroll"),
		kong.Description(desc),
	)

	cfg := tilescroll.DefaultConfig()
	if cli.Config != "" {
		var err error
		if cfg, err = tilescroll.LoadConfig(cli.Config); err != nil {
			log.Fatal(err)
		}
	}
	if cli.Tileset != "" {
		cfg.Tileset = cli.Tileset
	}
	if cli.NoGrid {
		cfg.ShowGrid = false
	}
	if cli.Debug {
		cfg.Debug = true
	}
	if cli.ScreenshotDir != "" {
		cfg.ScreenshotDir = cli.ScreenshotDir
	}
	if cli.Glide >= 0 {
		cfg.GlideSeconds = cli.Glide
	}
	if cli.Center != "" {
		col, row, err := tilescroll.ParseCenter(cli.Center)
		if err != nil {
			log.Fatal(err)
		}
		cfg.StartCenter = []int{col, row}
	}

	game, err := tilescroll.NewGame(cfg)
	if err != nil {
		log.Fatal(err)
	}

	if cli.Script != "" {
		path, err := homedir.Expand(cli.Script)
		if err != nil {
			log.Fatal(err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			log.Fatal(err)
		}
		runner, err := tilescroll.LoadTestScript(data)
		if err != nil {
			log.Fatal(err)
		}
		game.SetTestRunner(runner)
	}

	world := donburi.NewWorld()
	game.SetEventSink(ecs.NewDonburiSink(world))
	game.OnUpdate(func(float64) { events.ProcessAllEvents(world) })
	if cfg.Debug {
		tally := ecs.NewTally()
		tally.Subscribe(world)
		ecs.TileEventType.Subscribe(world, func(_ donburi.World, e tilescroll.TileEvent) {
			log.Printf("tile %d,%d layer %d: %d -> %d (green %d, red %d)",
				e.Coord.Col, e.Coord.Row, e.Layer, e.Old, e.New,
				tally.Count(e.Layer, tilescroll.KindGreen), tally.Count(e.Layer, tilescroll.KindRed))
		})
	}

	if err := tilescroll.Run(game); err != nil {
		log.Fatal(err)
	}
}
