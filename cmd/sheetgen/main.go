package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fogleman/gg"
	"github.com/mitchellh/go-homedir"

	"github.com/phanxgames/tilescroll"
)

const desc = `Renders the tile sheet: one swatch per tile kind (empty, green, red), left to right.`

var cli struct {
	Output   string `short:"o" default:"assets/tiles.png" help:"output PNG"`
	Config   string `short:"c" help:"YAML config file supplying tile size and colors"`
	TileSize int    `default:"0" help:"swatch edge in pixels (0 uses the config tile size)"`
	Outline  int    `default:"1" help:"outline width in pixels"`
}

func main() {
	kong.Parse(
		&cli,
		kong.Name("sheetgen"),
		kong.Description(desc),
	)

	cfg := tilescroll.DefaultConfig()
	if cli.Config != "" {
		var err error
		if cfg, err = tilescroll.LoadConfig(cli.Config); err != nil {
			panic(err)
		}
	}
	size := cli.TileSize
	if size <= 0 {
		size = cfg.TileSize
	}

	dc := drawSheet(cfg.RenderOptions(), size, float64(cli.Outline))

	out, err := homedir.Expand(cli.Output)
	if err != nil {
		panic(err)
	}
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		panic(err)
	}
	if err := dc.SavePNG(out); err != nil {
		panic(err)
	}
	fmt.Printf("wrote %s (%dx%d)\n", out, dc.Width(), dc.Height())
}

// drawSheet paints KindCount swatches of size pixels in a row, each with a
// grid-colored outline.
func drawSheet(opts tilescroll.RenderOptions, size int, outline float64) *gg.Context {
	dc := gg.NewContext(size*tilescroll.KindCount, size)
	for kind := 0; kind < tilescroll.KindCount; kind++ {
		x := float64(kind * size)
		dc.SetColor(opts.KindColors[kind].ToRGBA())
		dc.DrawRectangle(x, 0, float64(size), float64(size))
		dc.Fill()
		if outline > 0 {
			half := outline / 2
			dc.SetColor(opts.GridColor.ToRGBA())
			dc.SetLineWidth(outline)
			dc.DrawRectangle(x+half, half, float64(size)-outline, float64(size)-outline)
			dc.Stroke()
		}
	}
	return dc
}
