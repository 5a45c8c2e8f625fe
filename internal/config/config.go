// Package config loads todoflow settings from a YAML file.
//
// The file only configures the program; task state is never written back.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/WillyV3/todoflow/internal/duration"
	"gopkg.in/yaml.v3"
)

const (
	configFileName = ".todoflow.yaml"

	// EnvPath overrides the config location.
	EnvPath = "TODOFLOW_CONFIG"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

type SliderConfig struct {
	MaxSeconds  int `yaml:"max_seconds"`
	StepSeconds int `yaml:"step_seconds"`
}

type LogConfig struct {
	File  string `yaml:"file,omitempty"`
	Level string `yaml:"level"`
}

// SeedChild is a sub-task created at start-up. Duration accepts seconds or a
// Go duration string.
type SeedChild struct {
	Code     string `yaml:"code"`
	Duration string `yaml:"duration"`
}

// SeedGroup is a task group created at start-up.
type SeedGroup struct {
	Name     string      `yaml:"name"`
	Children []SeedChild `yaml:"children,omitempty"`
}

type Config struct {
	Picker string       `yaml:"picker"`
	Slider SliderConfig `yaml:"slider"`
	Log    LogConfig    `yaml:"log"`
	Seed   []SeedGroup  `yaml:"seed,omitempty"`
}

func Default() *Config {
	return &Config{
		Picker: duration.PickerWheel,
		Slider: SliderConfig{
			MaxSeconds:  duration.DefaultSliderMax,
			StepSeconds: 60,
		},
		Log: LogConfig{Level: "info"},
	}
}

// DefaultPath returns $TODOFLOW_CONFIG or ~/.todoflow.yaml.
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvPath); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, configFileName), nil
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func (c *Config) Validate() error {
	if _, err := duration.NewPicker(c.Picker, c.SliderOptions()); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.Slider.MaxSeconds <= 0 {
		return fmt.Errorf("%w: slider.max_seconds must be positive", ErrInvalid)
	}
	if c.Slider.StepSeconds <= 0 || c.Slider.StepSeconds > c.Slider.MaxSeconds {
		return fmt.Errorf("%w: slider.step_seconds must be in 1..%d", ErrInvalid, c.Slider.MaxSeconds)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	for gi, g := range c.Seed {
		for ci, child := range g.Children {
			if _, err := seedSeconds(child.Duration); err != nil {
				return fmt.Errorf("%w: seed[%d].children[%d]: %v", ErrInvalid, gi, ci, err)
			}
		}
	}
	return nil
}

func (c *Config) SliderOptions() duration.SliderOptions {
	return duration.SliderOptions{
		MaxSeconds:  c.Slider.MaxSeconds,
		StepSeconds: c.Slider.StepSeconds,
	}
}

// SlogLevel maps the configured level name onto slog.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: unknown log level %q", ErrInvalid, l.Level)
	}
}
