package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when a configuration value is out of range.
var ErrInvalidConfig = errors.New("invalid config")

// Defaults.
const (
	DefaultServerAddr     = ":8080"
	DefaultCanvasWidth    = 1000
	DefaultCanvasHeight   = 1000
	DefaultCanvasStations = 12
	DefaultCanvasRandom   = false
	DefaultCanvasSeed     = 0
	DefaultRenderSamples  = 64
	DefaultSweepVerify    = false

	maxCanvasSize     = 5000
	maxCanvasStations = 2000
	minRenderSamples  = 2
)

// Config is the application configuration.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Canvas CanvasConfig `mapstructure:"canvas"`
	Render RenderConfig `mapstructure:"render"`
	Sweep  SweepConfig  `mapstructure:"sweep"`
}

// ServerConfig holds the HTTP page settings.
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// CanvasConfig holds the default generated site layout.
type CanvasConfig struct {
	Width    int   `mapstructure:"width"`
	Height   int   `mapstructure:"height"`
	Stations int   `mapstructure:"stations"`
	Random   bool  `mapstructure:"random"`
	Seed     int64 `mapstructure:"seed"`
}

// RenderConfig holds chart settings.
type RenderConfig struct {
	// Samples is the number of points drawn per arc.
	Samples int `mapstructure:"samples"`
}

// SweepConfig holds sweep settings.
type SweepConfig struct {
	// Verify checks the beach line invariants after the sweep.
	Verify bool `mapstructure:"verify"`
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("%w: server.addr is empty", ErrInvalidConfig)
	}
	if c.Canvas.Width <= 0 || c.Canvas.Width > maxCanvasSize {
		return fmt.Errorf("%w: canvas.width %d not in (0, %d]", ErrInvalidConfig, c.Canvas.Width, maxCanvasSize)
	}
	if c.Canvas.Height <= 0 || c.Canvas.Height > maxCanvasSize {
		return fmt.Errorf("%w: canvas.height %d not in (0, %d]", ErrInvalidConfig, c.Canvas.Height, maxCanvasSize)
	}
	if c.Canvas.Stations <= 0 || c.Canvas.Stations > maxCanvasStations {
		return fmt.Errorf("%w: canvas.stations %d not in (0, %d]", ErrInvalidConfig, c.Canvas.Stations, maxCanvasStations)
	}
	if c.Render.Samples < minRenderSamples {
		return fmt.Errorf("%w: render.samples %d below %d", ErrInvalidConfig, c.Render.Samples, minRenderSamples)
	}
	return nil
}
