// Package config handles gxtool configuration loading and management.
package config

import (
	"go.uber.org/zap"

	"github.com/Faultbox/gxgeom/pkg/geometry"
)

// Config holds all tool settings.
type Config struct {
	Build   BuildConfig   `yaml:"build" toml:"build"`
	Logging LoggingConfig `yaml:"logging" toml:"logging"`
}

// BuildConfig holds geometry conversion settings.
type BuildConfig struct {
	IndexFormat       string `yaml:"index_format" toml:"index_format"`               // "uint16" or "uint32"
	EncodeMatrixIndex bool   `yaml:"encode_matrix_index" toml:"encode_matrix_index"` // Store position matrix index in Position.W
	ComputeCenters    bool   `yaml:"compute_centers" toml:"compute_centers"`
	Validate          bool   `yaml:"validate" toml:"validate"` // Check output buffers after building
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" toml:"level"`
	LogFile string `yaml:"log_file" toml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Build: BuildConfig{
			IndexFormat:       "uint32",
			EncodeMatrixIndex: true,
			ComputeCenters:    true,
			Validate:          true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// BuildOptions converts the build section into geometry build options.
func (c *Config) BuildOptions(log *zap.Logger) (geometry.BuildOptions, error) {
	format, err := geometry.ParseIndexFormat(c.Build.IndexFormat)
	if err != nil {
		return geometry.BuildOptions{}, err
	}
	return geometry.BuildOptions{
		IndexFormat:     format,
		DropMatrixIndex: !c.Build.EncodeMatrixIndex,
		ComputeCenters:  c.Build.ComputeCenters,
		Logger:          log,
	}, nil
}
