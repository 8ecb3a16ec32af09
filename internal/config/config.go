package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/beamlab/internal/beam"
)

const (
	DefaultLength  = 10.0
	DefaultLoad    = 100.0
	DefaultSamples = beam.DefaultSamples
)

type Config struct {
	Length  float64     `yaml:"length"`
	Samples int         `yaml:"samples"`
	Seed    int64       `yaml:"seed"`
	Point   PointConfig `yaml:"point"`
	UDL     UDLConfig   `yaml:"udl"`
}

type PointConfig struct {
	Magnitude float64 `yaml:"magnitude"`
	Position  float64 `yaml:"position"`
}

type UDLConfig struct {
	Intensity float64 `yaml:"intensity"`
	Start     float64 `yaml:"start"`
	End       float64 `yaml:"end"`
}

// DefaultConfig mirrors the classic classroom case: a 10 m span with a
// 100 kN load at midspan and no distributed load.
func DefaultConfig() *Config {
	return &Config{
		Length:  DefaultLength,
		Samples: DefaultSamples,
		Point: PointConfig{
			Magnitude: DefaultLoad,
			Position:  DefaultLength / 2,
		},
		UDL: UDLConfig{
			End: DefaultLength,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Build constructs the beam the config describes. Zero-magnitude loads
// are simply not attached; geometry errors from the core pass through.
func (c *Config) Build() (*beam.Beam, error) {
	b, err := beam.New(c.Length)
	if err != nil {
		return nil, err
	}
	if c.Point.Magnitude != 0 {
		if err := b.AddPointLoad(c.Point.Magnitude, c.Point.Position); err != nil {
			return nil, err
		}
	}
	if c.UDL.Intensity != 0 {
		if err := b.AddUDL(c.UDL.Intensity, c.UDL.Start, c.UDL.End); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// SampleCount falls back to the default resolution when the config
// leaves samples unset.
func (c *Config) SampleCount() int {
	if c.Samples < 2 {
		return DefaultSamples
	}
	return c.Samples
}
