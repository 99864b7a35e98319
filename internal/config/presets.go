package config

import (
	"sort"

	"github.com/san-kum/dancecube/internal/scene"
)

// Presets tweak the defaults. Each entry edits a fresh DefaultConfig.
var Presets = map[string]func(c *Config){
	"default": func(c *Config) {},
	"palette": func(c *Config) {
		c.Particles.Mode = string(scene.ModeAlternate)
	},
	"dense": func(c *Config) {
		c.Particles.Count = 100000
		c.Particles.Size = 0.02
	},
	"calm": func(c *Config) {
		c.Animation.AngularRate = 0.2
		c.Animation.Cube.Duration = 4
		c.Animation.CameraZ.Duration = 3
	},
	"sparse": func(c *Config) {
		c.Particles.Count = 10000
		c.Particles.Interpolation = 2
		c.Particles.Spread = [3]float32{6, 2, 6}
	},
}

// GetPreset returns a new config for the named preset, or nil.
func GetPreset(name string) *Config {
	apply, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
