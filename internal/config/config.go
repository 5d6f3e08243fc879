package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultSize    = "large"
	DefaultFPS     = 60
	DefaultTheme   = "cyberpunk"
	DefaultBackend = "raylib"
	DefaultAudio   = "none"
	DefaultTicks   = 120
	MaxFPS         = 240
)

var (
	// ErrUnknownTier indicates a size name outside small|medium|large.
	ErrUnknownTier = errors.New("config: unknown size tier")

	// ErrInvalidConfig indicates a config value outside its valid range.
	ErrInvalidConfig = errors.New("config: invalid value")
)

type Config struct {
	Size       string  `yaml:"size"`
	Voice      bool    `yaml:"voice"`
	Audio      string  `yaml:"audio"`
	AudioLevel float64 `yaml:"audio_level"`
	FPS        int     `yaml:"fps"`
	Theme      string  `yaml:"theme"`
	Backend    string  `yaml:"backend"`
	Backdrop   bool    `yaml:"backdrop"`
	Scale      float64 `yaml:"scale"`
	Ticks      int     `yaml:"ticks"`
	Output     string  `yaml:"output"`
}

func DefaultConfig() *Config {
	return &Config{
		Size:     DefaultSize,
		Audio:    DefaultAudio,
		FPS:      DefaultFPS,
		Theme:    DefaultTheme,
		Backend:  DefaultBackend,
		Backdrop: true,
		Scale:    1,
		Ticks:    DefaultTicks,
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
	if err := cfg.Validate(); err != nil {
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

// Validate reports the first field that would make a host misbehave.
func (c *Config) Validate() error {
	if _, err := ParseTier(c.Size); err != nil {
		return err
	}
	if c.FPS <= 0 || c.FPS > MaxFPS {
		return fmt.Errorf("%w: fps must be in (0, %d], got %d", ErrInvalidConfig, MaxFPS, c.FPS)
	}
	switch c.Audio {
	case "none", "synthetic", "mic":
	default:
		return fmt.Errorf("%w: audio must be none|synthetic|mic, got %q", ErrInvalidConfig, c.Audio)
	}
	switch c.Backend {
	case "raylib", "ebiten":
	default:
		return fmt.Errorf("%w: backend must be raylib|ebiten, got %q", ErrInvalidConfig, c.Backend)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("%w: scale must be positive, got %f", ErrInvalidConfig, c.Scale)
	}
	if c.Ticks < 0 {
		return fmt.Errorf("%w: ticks must not be negative, got %d", ErrInvalidConfig, c.Ticks)
	}
	return nil
}

// RenderConfig resolves the configured size name into its tier table entry.
func (c *Config) RenderConfig() (RenderConfig, error) {
	t, err := ParseTier(c.Size)
	if err != nil {
		return RenderConfig{}, err
	}
	return Lookup(t)
}
