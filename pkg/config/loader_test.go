package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "voronoi.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, DefaultServerAddr, cfg.Server.Addr)
	assert.Equal(t, DefaultCanvasWidth, cfg.Canvas.Width)
	assert.Equal(t, DefaultCanvasHeight, cfg.Canvas.Height)
	assert.Equal(t, DefaultCanvasStations, cfg.Canvas.Stations)
	assert.False(t, cfg.Canvas.Random)
	assert.Equal(t, DefaultRenderSamples, cfg.Render.Samples)
	assert.False(t, cfg.Sweep.Verify)
}

func TestLoad_File(t *testing.T) {
	t.Parallel()

	cfg, err := Load(writeConfig(t, `
server:
  addr: "127.0.0.1:9000"
canvas:
  width: 400
  height: 300
  stations: 50
  random: true
  seed: 42
render:
  samples: 16
sweep:
  verify: true
`))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, CanvasConfig{Width: 400, Height: 300, Stations: 50, Random: true, Seed: 42}, cfg.Canvas)
	assert.Equal(t, 16, cfg.Render.Samples)
	assert.True(t, cfg.Sweep.Verify)
}

func TestLoad_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "zero width", body: "canvas:\n  width: 0\n"},
		{name: "huge height", body: "canvas:\n  height: 100000\n"},
		{name: "no stations", body: "canvas:\n  stations: 0\n"},
		{name: "too few samples", body: "render:\n  samples: 1\n"},
		{name: "empty addr", body: "server:\n  addr: \"\"\n"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Load(writeConfig(t, tt.body))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("VORONOI_CANVAS_STATIONS", "7")
	t.Setenv("VORONOI_SWEEP_VERIFY", "true")

	cfg, err := Load(writeConfig(t, "canvas:\n  stations: 30\n"))
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Canvas.Stations)
	assert.True(t, cfg.Sweep.Verify)
}
