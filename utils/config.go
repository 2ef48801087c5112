package utils

import (
	"encoding/json"
	"image/color"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

const (
	MinRate = 1
	MaxRate = 60
)

// Config holds the configuration for the game
type Config struct {
	Width                int    `json:"width"`
	Height               int    `json:"height"`
	MinSize              int    `json:"min_size"`
	GenerationsPerSecond int    `json:"generations_per_second"`
	StartRunning         bool   `json:"start_running"`
	CellColor            string `json:"cell_color"`
	SaveDir              string `json:"save_dir"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:                50,
		Height:               50,
		MinSize:              5,
		GenerationsPerSecond: 10,
		StartRunning:         true,
		CellColor:            "yellow",
		SaveDir:              ".",
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate checks that the configured grid and rate are usable
func (c Config) Validate() error {
	if c.MinSize < 1 {
		return errors.Errorf("[Validate] min_size must be at least 1, got %d", c.MinSize)
	}
	if c.Width < c.MinSize || c.Height < c.MinSize {
		return errors.Errorf("[Validate] grid %dx%d is smaller than min_size %d", c.Width, c.Height, c.MinSize)
	}
	if c.GenerationsPerSecond < MinRate || c.GenerationsPerSecond > MaxRate {
		return errors.Errorf("[Validate] generations_per_second must be in %d..%d, got %d",
			MinRate, MaxRate, c.GenerationsPerSecond)
	}
	if _, err := ParseCellColor(c.CellColor); err != nil {
		return errors.Wrap(err, "[Validate] invalid cell_color")
	}
	return nil
}

// ParseCellColor accepts a W3C color name or a #rrggbb value
func ParseCellColor(name string) (color.RGBA, error) {
	c := tcell.GetColor(name)
	if c == tcell.ColorDefault {
		return color.RGBA{}, errors.Errorf("[ParseCellColor] unknown color %q", name)
	}
	r, g, b := c.RGB()
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 0xff}, nil
}
