package dataset

import (
	"errors"
	"fmt"
	"os"

	"github.com/andesnlp/garbler/corrupt"
	"gopkg.in/yaml.v3"
)

// ErrBadConfig reports an invalid dataset configuration.
var ErrBadConfig = errors.New("dataset: invalid config")

// Level is one corruption band of the dataset mix.
type Level struct {
	// Name of the intensity preset (light, medium, heavy, extreme,
	// catastrophic) or "custom" when Intensity is set explicitly.
	Name string `yaml:"name"`
	// Intensity overrides the preset when non-zero.
	Intensity float64 `yaml:"intensity,omitempty"`
	// Weight is the relative share of examples drawn at this level.
	Weight float64 `yaml:"weight"`
}

// intensity resolves the level's τ.
func (l Level) intensity() (float64, error) {
	if l.Intensity != 0 {
		if l.Intensity < 0 || l.Intensity > 1 {
			return 0, fmt.Errorf("%w: level %q intensity %v outside [0,1]", ErrBadConfig, l.Name, l.Intensity)
		}
		return l.Intensity, nil
	}
	tau, ok := corrupt.PresetIntensity(l.Name)
	if !ok {
		return 0, fmt.Errorf("%w: unknown intensity preset %q", ErrBadConfig, l.Name)
	}
	return tau, nil
}

// Config describes one dataset build session.
type Config struct {
	// Count is the number of examples to generate.
	Count int `yaml:"count"`
	// Seed is the session seed; every example derives its own stream
	// from it. Zero selects a stable default.
	Seed int64 `yaml:"seed"`
	// MaxConcurrency bounds the number of examples corrupted at once.
	MaxConcurrency int `yaml:"max_concurrency"`
	// Levels is the corruption mix. Empty selects the default
	// five-level spread.
	Levels []Level `yaml:"levels"`
	// ProfilePath optionally points at a YAML tolerance-profile table
	// replacing the built-in one.
	ProfilePath string `yaml:"profiles,omitempty"`
	// AcceptThreshold and MaxRetries feed the per-example retry loop.
	AcceptThreshold float64 `yaml:"accept_threshold"`
	MaxRetries      int     `yaml:"max_retries"`
}

// DefaultConfig returns a balanced five-level session of 1000 examples.
func DefaultConfig() *Config {
	return &Config{
		Count:          1000,
		MaxConcurrency: 8,
		Levels: []Level{
			{Name: "light", Weight: 1},
			{Name: "medium", Weight: 1},
			{Name: "heavy", Weight: 1},
			{Name: "extreme", Weight: 1},
			{Name: "catastrophic", Weight: 1},
		},
		AcceptThreshold: 0.6,
		MaxRetries:      3,
	}
}

// LoadConfig reads a YAML session configuration, filling unset fields
// with the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes a YAML session configuration.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("dataset: parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Count <= 0 {
		return fmt.Errorf("%w: count %d", ErrBadConfig, c.Count)
	}
	if c.MaxConcurrency <= 0 {
		c.MaxConcurrency = 8
	}
	if len(c.Levels) == 0 {
		return fmt.Errorf("%w: no corruption levels", ErrBadConfig)
	}
	total := 0.0
	for _, l := range c.Levels {
		if l.Weight < 0 {
			return fmt.Errorf("%w: level %q has negative weight", ErrBadConfig, l.Name)
		}
		if _, err := l.intensity(); err != nil {
			return err
		}
		total += l.Weight
	}
	if total == 0 {
		return fmt.Errorf("%w: all level weights are zero", ErrBadConfig)
	}
	if c.AcceptThreshold < 0 || c.AcceptThreshold > 1 {
		return fmt.Errorf("%w: accept_threshold %v outside [0,1]", ErrBadConfig, c.AcceptThreshold)
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("%w: max_retries %d", ErrBadConfig, c.MaxRetries)
	}
	return nil
}
