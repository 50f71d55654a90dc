// Package config loads the service configuration from a YAML file.
// A missing file yields the defaults, so the server runs out of the box.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// WorldConfig fixes the board and points at the analyzer's module report.
type WorldConfig struct {
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	ModulesFile string `yaml:"modules_file"`
}

// GenerationConfig overrides individual layout tuning values. Zero or
// omitted fields keep the pipeline defaults; there is no way to set a
// knob to zero itself through this file.
type GenerationConfig struct {
	MinRoomSize    int     `yaml:"min_room_size"`
	MaxRoomSize    int     `yaml:"max_room_size"`
	SplitRatioMin  float64 `yaml:"split_ratio_min"`
	SplitRatioMax  float64 `yaml:"split_ratio_max"`
	MaxDepth       int     `yaml:"max_depth"`
	RoomMargin     int     `yaml:"room_margin"`
	CorridorWidth  int     `yaml:"corridor_width"`
	ExtraEdgeRatio float64 `yaml:"extra_edge_ratio"`
}

// Config is the full service configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	World      WorldConfig      `yaml:"world"`
	Generation GenerationConfig `yaml:"generation"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Server: ServerConfig{Addr: ":8080"},
		World: WorldConfig{
			Width:       96,
			Height:      96,
			ModulesFile: "modules.json",
		},
	}
}

// Load reads the configuration at path. A missing file is not an error;
// the defaults are returned instead.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.World.Width <= 0 || cfg.World.Height <= 0 {
		return cfg, fmt.Errorf("config %s: world dimensions must be positive, got %dx%d",
			path, cfg.World.Width, cfg.World.Height)
	}
	return cfg, nil
}
