package config

import (
	"fmt"
	"sort"
)

type Tier string

const (
	Small  Tier = "small"
	Medium Tier = "medium"
	Large  Tier = "large"
)

// RenderConfig holds the per-tier drawing dimensions in surface pixels.
type RenderConfig struct {
	CanvasSize    int     `yaml:"canvas_size"`
	BaseRadius    float64 `yaml:"base_radius"`
	ParticleCount int     `yaml:"particle_count"`
}

// Center is the surface midpoint on both axes.
func (r RenderConfig) Center() float64 { return float64(r.CanvasSize) / 2 }

var Tiers = map[Tier]RenderConfig{
	Small:  {CanvasSize: 200, BaseRadius: 70, ParticleCount: 30},
	Medium: {CanvasSize: 400, BaseRadius: 100, ParticleCount: 40},
	Large:  {CanvasSize: 500, BaseRadius: 120, ParticleCount: 50},
}

func ParseTier(name string) (Tier, error) {
	t := Tier(name)
	if _, ok := Tiers[t]; !ok {
		return "", fmt.Errorf("%w: %q (available: %v)", ErrUnknownTier, name, ListTiers())
	}
	return t, nil
}

func Lookup(t Tier) (RenderConfig, error) {
	cfg, ok := Tiers[t]
	if !ok {
		return RenderConfig{}, fmt.Errorf("%w: %q", ErrUnknownTier, t)
	}
	return cfg, nil
}

// ListTiers returns tier names ordered by canvas size.
func ListTiers() []string {
	names := make([]string, 0, len(Tiers))
	for name := range Tiers {
		names = append(names, string(name))
	}
	sort.Slice(names, func(i, j int) bool {
		return Tiers[Tier(names[i])].CanvasSize < Tiers[Tier(names[j])].CanvasSize
	})
	return names
}
