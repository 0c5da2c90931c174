package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const (
	configName = ".voronoi"
	configType = "yaml"
	envPrefix  = "VORONOI"
)

// Load reads the configuration from file, environment and defaults.
// An explicit path must exist; otherwise .voronoi.yaml is looked up in the
// working directory and $HOME, and a missing file means defaults.
func Load(path string) (*Config, error) {
	v := viper.New()

	applyDefaults(v)

	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", DefaultServerAddr)

	v.SetDefault("canvas.width", DefaultCanvasWidth)
	v.SetDefault("canvas.height", DefaultCanvasHeight)
	v.SetDefault("canvas.stations", DefaultCanvasStations)
	v.SetDefault("canvas.random", DefaultCanvasRandom)
	v.SetDefault("canvas.seed", DefaultCanvasSeed)

	v.SetDefault("render.samples", DefaultRenderSamples)

	v.SetDefault("sweep.verify", DefaultSweepVerify)
}
