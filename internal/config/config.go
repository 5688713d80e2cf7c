package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultTau0             = 0.1   // fm/c
	DefaultTauf             = 20.0  // fm/c
	DefaultT0               = 0.5   // GeV
	DefaultDtauFraction     = 20.0  // dtau = tau0 / DefaultDtauFraction
	DefaultTemperatureModel = "ideal_hydro"
)

// Config is a run's YAML-backed configuration: catalog file paths, the
// integration window, the temperature trajectory, and which particles to
// record.
type Config struct {
	ParticleDatasheet string  `yaml:"particle_datasheet"`
	DecaysDatasheet   string  `yaml:"decays_datasheet"`
	Tau0              float64 `yaml:"tau0"`
	Tauf              float64 `yaml:"tauf"`
	Dtau              float64 `yaml:"dtau"`
	T0                float64 `yaml:"t0"`

	Temperature TemperatureConfig `yaml:"temperature"`

	Track []int64 `yaml:"track"`

	OutputDir string `yaml:"output_dir"`
}

// TemperatureConfig selects and parameterizes a temperature trajectory
// model (see internal/temperature).
type TemperatureConfig struct {
	Model    string  `yaml:"model"` // "constant", "ideal_hydro", "power_law"
	Exponent float64 `yaml:"exponent"`
}

// DefaultConfig returns the configuration used when no file is supplied,
// matching the parameters of the original driver's main loop.
func DefaultConfig() *Config {
	return &Config{
		Tau0:        DefaultTau0,
		Tauf:        DefaultTauf,
		Dtau:        DefaultTau0 / DefaultDtauFraction,
		T0:          DefaultT0,
		Temperature: TemperatureConfig{Model: DefaultTemperatureModel},
		OutputDir:   ".reactionnet",
	}
}

// Load reads and parses a YAML config file, starting from DefaultConfig
// so unset fields keep their defaults.
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

// Save writes cfg to path as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
