package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/dancecube/internal/config"
	"github.com/san-kum/dancecube/internal/export"
)

func execute(t *testing.T, args ...string) error {
	t.Helper()
	root := newRootCmd()
	root.SetArgs(append(args, "--log", ""))
	root.SetOut(&strings.Builder{})
	root.SetErr(&strings.Builder{})
	return root.Execute()
}

func TestConfigInitAppliesPresetAndFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cube.yaml")
	if err := execute(t, "config", "init", path, "--preset", "dense", "--count", "20000", "--mode", "alternate"); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Particles.Count != 20000 {
		t.Errorf("flag should override preset count, got %d", cfg.Particles.Count)
	}
	if cfg.Particles.Size != 0.02 {
		t.Errorf("preset point size lost, got %g", cfg.Particles.Size)
	}
	if cfg.Particles.Mode != "alternate" {
		t.Errorf("expected alternate mode, got %q", cfg.Particles.Mode)
	}
}

func TestConfigFileOverridesPreset(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.yaml")
	cfg := config.DefaultConfig()
	cfg.Particles.Count = 12345
	if err := config.Save(src, cfg); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "out.yaml")
	if err := execute(t, "config", "init", out, "--preset", "sparse", "--config", src); err != nil {
		t.Fatal(err)
	}
	got, err := config.Load(out)
	if err != nil {
		t.Fatal(err)
	}
	if got.Particles.Count != 12345 {
		t.Errorf("expected count from config file, got %d", got.Particles.Count)
	}
}

func TestInvalidInput(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.yaml")
	tests := []struct {
		name string
		args []string
	}{
		{"unknown preset", []string{"config", "init", out, "--preset", "nope"}},
		{"bad color", []string{"config", "init", out, "--right-color", "#zzzzzz"}},
		{"bad count", []string{"config", "init", out, "--count", "0"}},
		{"bad mode", []string{"config", "init", out, "--mode", "rainbow"}},
		{"missing config", []string{"config", "init", out, "--config", "/nonexistent/cube.yaml"}},
		{"bad frames", []string{"inspect", "--frames", "0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := execute(t, tt.args...); err == nil {
				t.Error("expected error")
			}
		})
	}
	if _, err := os.Stat(out); err == nil {
		t.Error("no config should have been written")
	}
}

func TestInspectWritesTraceAndPath(t *testing.T) {
	dir := t.TempDir()
	tracePath := filepath.Join(dir, "trace.json")
	svgPath := filepath.Join(dir, "path.svg")
	if err := execute(t, "inspect", "--frames", "90", "--count", "10000", "--seed", "7",
		"--trace", tracePath, "--path", svgPath); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(tracePath)
	if err != nil {
		t.Fatal(err)
	}
	var tr export.Trace
	if err := json.Unmarshal(data, &tr); err != nil {
		t.Fatal(err)
	}
	if tr.Seed != 7 || tr.Particles != 10000 || len(tr.Frames) != 90 {
		t.Errorf("unexpected trace header: seed %d, particles %d, frames %d", tr.Seed, tr.Particles, len(tr.Frames))
	}
	if tr.Frames[0].Time != 0 || tr.Frames[89].Camera[2] >= tr.Frames[0].Camera[2] {
		t.Errorf("camera should move toward its target: %v -> %v", tr.Frames[0].Camera, tr.Frames[89].Camera)
	}

	svg, err := os.ReadFile(svgPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(svg), "<path") {
		t.Error("camera path svg has no path")
	}
}

func TestSnapshot(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.svg")
	if err := execute(t, "snapshot", "--at", "1", "--count", "10000", "--cols", "40", "--rows", "16", "--out", out); err != nil {
		t.Fatal(err)
	}
	svg, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Count(string(svg), "<circle") == 0 {
		t.Error("snapshot has no dots")
	}

	if err := execute(t, "snapshot", "--at", "-1"); err == nil {
		t.Error("expected error for negative time")
	}
}
