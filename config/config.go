// Package config loads the YAML configuration of the fsksim driver.
//
// Missing keys keep the values of Default(); Validate checks the result.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/charmbracelet/log"
	"github.com/katalvlaran/fsklab/fsk"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig reports a value outside its domain after loading.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config is the root of the YAML document.
type Config struct {
	Params     ParamsConfig     `yaml:"params"`
	Simulation SimulationConfig `yaml:"simulation"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// ParamsConfig mirrors fsk.ModulationParams.
type ParamsConfig struct {
	Order           int     `yaml:"order"`
	MarkFreq        float64 `yaml:"mark_freq"`
	SpaceFreq       float64 `yaml:"space_freq"`
	BaseFreq        float64 `yaml:"base_freq"`
	FreqSpacing     float64 `yaml:"freq_spacing"`
	BaudRate        float64 `yaml:"baud_rate"`
	Amplitude       float64 `yaml:"amplitude"`
	NoiseLevel      float64 `yaml:"noise_level"`
	ContinuousPhase bool    `yaml:"continuous_phase"`
}

// SimulationConfig drives the tick loop.
type SimulationConfig struct {
	Retention float64 `yaml:"retention"` // seconds kept in the window
	TickRate  float64 `yaml:"tick_rate"` // ticks per second
	Duration  float64 `yaml:"duration"`  // simulated seconds per session
	MaxDelta  float64 `yaml:"max_delta"` // clamp for wall-clock ticks
	Seed      *int64  `yaml:"seed"`      // nil seeds from the clock
	Sessions  int     `yaml:"sessions"`
}

// LoggingConfig selects the charmbracelet/log level.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	p := fsk.DefaultParams()

	return &Config{
		Params: ParamsConfig{
			Order:           p.Order,
			MarkFreq:        p.MarkFreq,
			SpaceFreq:       p.SpaceFreq,
			BaseFreq:        p.BaseFreq,
			FreqSpacing:     p.FreqSpacing,
			BaudRate:        p.BaudRate,
			Amplitude:       p.Amplitude,
			NoiseLevel:      p.NoiseLevel,
			ContinuousPhase: p.ContinuousPhase,
		},
		Simulation: SimulationConfig{
			Retention: fsk.DefaultRetention,
			TickRate:  60,
			Duration:  10,
			MaxDelta:  fsk.DefaultMaxDelta,
			Sessions:  1,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads and parses filename.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes data over Default() and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every section. Modulation params are checked by fsk.Compile.
func (c *Config) Validate() error {
	if err := c.ModulationParams().Validate(); err != nil {
		return fmt.Errorf("failed to validate params: %w", err)
	}

	s := c.Simulation
	positive := []struct {
		name string
		v    float64
	}{
		{"simulation.retention", s.Retention},
		{"simulation.tick_rate", s.TickRate},
		{"simulation.duration", s.Duration},
		{"simulation.max_delta", s.MaxDelta},
	}
	for _, f := range positive {
		if !(f.v > 0) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%s must be > 0, got %v: %w", f.name, f.v, ErrInvalidConfig)
		}
	}
	if s.Sessions < 1 {
		return fmt.Errorf("simulation.sessions must be >= 1, got %d: %w", s.Sessions, ErrInvalidConfig)
	}
	if _, err := log.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level %q: %w", c.Logging.Level, ErrInvalidConfig)
	}

	return nil
}

// ModulationParams converts the params section.
func (c *Config) ModulationParams() fsk.ModulationParams {
	p := c.Params

	return fsk.ModulationParams{
		Order:           p.Order,
		MarkFreq:        p.MarkFreq,
		SpaceFreq:       p.SpaceFreq,
		BaseFreq:        p.BaseFreq,
		FreqSpacing:     p.FreqSpacing,
		BaudRate:        p.BaudRate,
		Amplitude:       p.Amplitude,
		NoiseLevel:      p.NoiseLevel,
		ContinuousPhase: p.ContinuousPhase,
	}
}

// SimulatorOptions returns the fsk options implied by the simulation section.
func (c *Config) SimulatorOptions() []fsk.Option {
	opts := []fsk.Option{
		fsk.WithRetention(c.Simulation.Retention),
		fsk.WithParams(c.ModulationParams()),
	}
	if c.Simulation.Seed != nil {
		opts = append(opts, fsk.WithSeed(*c.Simulation.Seed))
	}

	return opts
}
