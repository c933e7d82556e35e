package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/logimap/internal/logistic"
)

const (
	DefaultRMin     = 2.6
	DefaultRMax     = 4.0
	DefaultNumR     = 1401
	DefaultNIter    = 250
	DefaultNDiscard = 100
	DefaultX0       = 0.5
	DefaultSeriesN  = 60
)

type Config struct {
	Sweep  SweepSection  `yaml:"sweep"`
	Series SeriesSection `yaml:"series"`
}

// SweepSection configures one bifurcation sweep.
type SweepSection struct {
	RMin     float64 `yaml:"r_min"`
	RMax     float64 `yaml:"r_max"`
	NumR     int     `yaml:"num_r"`
	NIter    int     `yaml:"n_iter"`
	NDiscard int     `yaml:"n_discard"`
	X0       float64 `yaml:"x0"`
	Workers  int     `yaml:"workers"`
}

// SeriesSection configures the time-series panels.
type SeriesSection struct {
	RValues []float64 `yaml:"r_values"`
	NIter   int       `yaml:"n_iter"`
	X0      float64   `yaml:"x0"`
}

func DefaultConfig() *Config {
	return &Config{
		Sweep: SweepSection{
			RMin:     DefaultRMin,
			RMax:     DefaultRMax,
			NumR:     DefaultNumR,
			NIter:    DefaultNIter,
			NDiscard: DefaultNDiscard,
			X0:       DefaultX0,
		},
		Series: SeriesSection{
			RValues: []float64{2.0, 3.2, 3.45, 3.6},
			NIter:   DefaultSeriesN,
			X0:      DefaultX0,
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

// SweepConfig converts the sweep section to the kernel's configuration.
func (s SweepSection) SweepConfig() logistic.SweepConfig {
	return logistic.SweepConfig{
		RMin:     s.RMin,
		RMax:     s.RMax,
		NumR:     s.NumR,
		NIter:    s.NIter,
		NDiscard: s.NDiscard,
		X0:       s.X0,
	}
}
