package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/dancecube/internal/scene"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Particles.Count != 32000 {
		t.Errorf("expected 32000 particles, got %d", cfg.Particles.Count)
	}
	if cfg.Particles.RightColor != "#fbbc58" || cfg.Particles.LeftColor != "#095d6a" {
		t.Errorf("unexpected colors %s %s", cfg.Particles.RightColor, cfg.Particles.LeftColor)
	}
	if cfg.Particles.Interpolation != 11 {
		t.Errorf("expected interpolation 11, got %f", cfg.Particles.Interpolation)
	}
	if math.Abs(float64(cfg.Animation.AngularRate)-math.Pi/2) > 1e-6 {
		t.Errorf("expected angular rate pi/2, got %f", cfg.Animation.AngularRate)
	}
	if cfg.Camera.Position != [3]float32{53, 50, 100} {
		t.Errorf("unexpected camera position %v", cfg.Camera.Position)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
		want   error
	}{
		{"zero count", func(c *Config) { c.Particles.Count = 0 }, scene.ErrInvalidCount},
		{"negative count", func(c *Config) { c.Particles.Count = -1 }, scene.ErrInvalidCount},
		{"bad color", func(c *Config) { c.Particles.RightColor = "yellowish" }, scene.ErrInvalidColor},
		{"bad mode", func(c *Config) { c.Particles.Mode = "spiral" }, scene.ErrUnknownMode},
		{"bad light", func(c *Config) { c.Lights.PointColor = "#xyz" }, scene.ErrInvalidColor},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.modify(cfg)
		if err := cfg.Validate(); !errors.Is(err, tt.want) {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, err)
		}
	}

	others := []func(c *Config){
		func(c *Config) { c.Particles.Offsets = c.Particles.Offsets[:1] },
		func(c *Config) { c.Camera.Fov = 0 },
		func(c *Config) { c.Camera.Far = c.Camera.Near },
		func(c *Config) { c.Window.Height = 0 },
	}
	for i, modify := range others {
		cfg := DefaultConfig()
		modify(cfg)
		if cfg.Validate() == nil {
			t.Errorf("case %d: expected validation error", i)
		}
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	cfg := DefaultConfig()
	cfg.Seed = 99
	cfg.Particles.Count = 5000
	cfg.Particles.Mode = "alternate"
	cfg.Camera.Position = [3]float32{1, 2, 3}

	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Seed != 99 || loaded.Particles.Count != 5000 || loaded.Particles.Mode != "alternate" {
		t.Errorf("round trip lost values: %+v", loaded.Particles)
	}
	if loaded.Camera.Position != [3]float32{1, 2, 3} {
		t.Errorf("expected camera position to survive, got %v", loaded.Camera.Position)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("particles:\n  count: 2000\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Particles.Count != 2000 {
		t.Errorf("expected count 2000, got %d", cfg.Particles.Count)
	}
	if cfg.Particles.RightColor != "#fbbc58" {
		t.Errorf("expected default right color, got %s", cfg.Particles.RightColor)
	}
}

func TestLoad_RejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("particles:\n  count: -3\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, scene.ErrInvalidCount) {
		t.Errorf("expected ErrInvalidCount, got %v", err)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("palette")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Particles.Mode != string(scene.ModeAlternate) {
		t.Errorf("expected alternate mode, got %s", cfg.Particles.Mode)
	}
	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if DefaultConfig().Particles.Mode != string(scene.ModeGradient) {
		t.Error("preset must not leak into defaults")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) != len(Presets) {
		t.Errorf("expected %d presets, got %d", len(Presets), len(presets))
	}
	for _, name := range presets {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}

func TestSceneOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 7
	cfg.Particles.Count = 100
	opts := cfg.SceneOptions()

	if opts.Seed != 7 || opts.Particles.Count != 100 {
		t.Errorf("options did not pick up config: %+v", opts.Particles)
	}
	if opts.Offsets[1][1] != 1.25 {
		t.Errorf("expected upper offset 1.25, got %f", opts.Offsets[1][1])
	}
	if opts.Light.Intensity != 0.5 || opts.Ambient.Color.Hex() != "#ffffff" {
		t.Errorf("unexpected lights %+v %+v", opts.Light, opts.Ambient)
	}

	s := cfg.AnimSettings()
	if s.CameraTarget[2].To != 10 || s.CameraTarget[2].Duration != 1.5 {
		t.Errorf("unexpected camera z target %+v", s.CameraTarget[2])
	}
	if s.LevelSpacing != 2.5 || s.CubeSpacing != 1.2 {
		t.Errorf("unexpected spacing %f %f", s.CubeSpacing, s.LevelSpacing)
	}
}
