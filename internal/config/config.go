package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Config holds defaults read from ARCGEOM_* environment variables.
// Command-line flags take precedence over these.
type Config struct {
	LogLevel  string `envconfig:"LOG_LEVEL" default:"warn"`
	Cols      int    `envconfig:"COLS" default:"60"`
	Rows      int    `envconfig:"ROWS" default:"30"`
	OutputDir string `envconfig:"OUTPUT_DIR" default:"."`
	MaskScale int    `envconfig:"MASK_SCALE" default:"4"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("arcgeom", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
