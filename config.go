package tilescroll

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v2"
)

// Config includes settings for a Game.
type Config struct {
	Title string `yaml:"title"`

	// in pixels
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	TileSize int `yaml:"tileSize"`

	Layers int `yaml:"layers"`

	DragThreshold float64 `yaml:"dragThreshold"`
	ZoomStep      float64 `yaml:"zoomStep"`

	ShowGrid   bool    `yaml:"showGrid"`
	Background Color   `yaml:"background"`
	GridColor  Color   `yaml:"gridColor"`
	TileColors []Color `yaml:"tileColors"`

	// Tileset is the image queued before the first running frame.
	Tileset string `yaml:"tileset"`

	// GlideSeconds animates Game.CenterAt when positive.
	GlideSeconds float64 `yaml:"glideSeconds"`

	ScreenshotDir string `yaml:"screenshotDir"`
	Debug         bool   `yaml:"debug"`

	// StartCenter is the tile centered on the first running frame, as
	// [col, row]. Empty leaves the camera at the origin.
	StartCenter []int `yaml:"startCenter"`
}

// DefaultConfig returns a config with default settings.
func DefaultConfig() *Config {
	return &Config{
		Title:         "tilescroll",
		Width:         512,
		Height:        512,
		TileSize:      32,
		Layers:        DefaultLayers,
		DragThreshold: DefaultDragThreshold,
		ZoomStep:      DefaultZoomStep,
		ShowGrid:      true,
		Background:    ColorWhite,
		GridColor:     ColorGrid,
		TileColors:    []Color{ColorGreen, ColorRed},
		Tileset:       "assets/tiles.png",
		ScreenshotDir: DefaultScreenshotDir,
	}
}

// LoadConfig reads a YAML file over DefaultConfig. Keys missing from the file
// keep their defaults. The path may start with ~.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	data, err := os.ReadFile(expanded)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings the game cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("invalid viewport %dx%d", c.Width, c.Height)
	case c.TileSize <= 0:
		return fmt.Errorf("invalid tile size %d", c.TileSize)
	case c.Layers < 1:
		return fmt.Errorf("invalid layer count %d", c.Layers)
	case c.DragThreshold < 0:
		return fmt.Errorf("invalid drag threshold %v", c.DragThreshold)
	case c.ZoomStep <= 1:
		return fmt.Errorf("invalid zoom step %v: must be greater than 1", c.ZoomStep)
	case len(c.TileColors) != KindCount-1:
		return fmt.Errorf("want %d tile colors, got %d", KindCount-1, len(c.TileColors))
	case c.GlideSeconds < 0:
		return fmt.Errorf("invalid glide duration %v", c.GlideSeconds)
	case len(c.StartCenter) != 0 && len(c.StartCenter) != 2:
		return errors.New("startCenter wants [col, row]")
	}
	return nil
}

// RenderOptions builds the renderer settings described by c.
func (c *Config) RenderOptions() RenderOptions {
	opts := DefaultRenderOptions()
	opts.Background = c.Background
	opts.ShowGrid = c.ShowGrid
	opts.GridColor = c.GridColor
	for i, col := range c.TileColors {
		if i+1 < KindCount {
			opts.KindColors[i+1] = col
		}
	}
	return opts
}
