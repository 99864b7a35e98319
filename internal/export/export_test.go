package export

import (
	"bytes"
	"encoding/json"
	"image/gif"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/dancecube/internal/scene"
	"github.com/san-kum/dancecube/internal/viz"
)

func TestCanvasToSVG(t *testing.T) {
	c := viz.NewCanvas(2, 1)
	c.SetColor(0, 0, "#ff0000")
	c.Set(3, 3)

	svg := CanvasToSVG(c, 4, "#000000")
	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Fatalf("malformed svg: %q", svg)
	}
	if strings.Count(svg, "<circle") != 2 {
		t.Errorf("expected 2 dots, got %d", strings.Count(svg, "<circle"))
	}
	if !strings.Contains(svg, `fill="#ff0000"`) || !strings.Contains(svg, `fill="`+defaultDotColor+`"`) {
		t.Error("expected tinted and default dots")
	}
	if CanvasToSVG(nil, 1, "#000") != "" {
		t.Error("expected empty output for nil canvas")
	}
}

func TestPathToSVG(t *testing.T) {
	if PathToSVG([]Point{{0, 0}}, 100, 100, "#fff") != "" {
		t.Error("expected empty output for a single point")
	}
	svg := PathToSVG([]Point{{0, 0}, {1, 1}, {2, 0}}, 100, 50, "#00ff00")
	if strings.Count(svg, " L") != 2 {
		t.Errorf("expected 2 line segments in %q", svg)
	}
	if !strings.Contains(svg, `stroke="#00ff00"`) {
		t.Error("missing stroke color")
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.svg")
	if err := WriteFile(path, ""); err == nil {
		t.Error("expected error for empty document")
	}
	if err := WriteFile(path, "<svg/>"); err != nil {
		t.Fatal(err)
	}
	if data, _ := os.ReadFile(path); string(data) != "<svg/>" {
		t.Errorf("unexpected file contents %q", data)
	}
}

func TestTrace(t *testing.T) {
	opts := scene.DefaultOptions()
	opts.Particles.Count = 50
	ctx, err := scene.NewContext(opts)
	if err != nil {
		t.Fatal(err)
	}
	defer ctx.Close()
	ctx.Grid.Levels[1].Rotation[1] = -1

	f := Sample(ctx, 0.5, 3)
	if f.Camera != [3]float32{53, 50, 100} || f.LevelRotY[1] != -1 || f.Active != 3 {
		t.Errorf("unexpected sample %+v", f)
	}
	if f.Spread <= 0 {
		t.Errorf("scattered lattice should have positive spread, got %f", f.Spread)
	}

	tr := &Trace{Seed: 1, Particles: 50, Frames: []Frame{f}}
	var buf bytes.Buffer
	if err := tr.WriteJSON(&buf); err != nil {
		t.Fatal(err)
	}
	var back Trace
	if err := json.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatal(err)
	}
	if len(back.Frames) != 1 || back.Frames[0].Time != 0.5 {
		t.Errorf("unexpected decoded trace %+v", back)
	}

	path := filepath.Join(t.TempDir(), "trace.json")
	if err := tr.SaveJSON(path); err != nil {
		t.Fatal(err)
	}
}

func TestRecorder(t *testing.T) {
	rec := NewRecorder()
	path := filepath.Join(t.TempDir(), "rec.gif")
	if err := rec.Save(path); err == nil {
		t.Error("expected error with no frames")
	}

	c := viz.NewCanvas(4, 2)
	c.SetColor(1, 1, "#ff0000")
	c.Set(6, 7)
	rec.Capture(c)
	c.Clear()
	rec.Capture(c)
	if rec.Len() != 2 {
		t.Fatalf("expected 2 frames, got %d", rec.Len())
	}
	if len(rec.index) != 2 {
		t.Errorf("expected 2 cached colors, got %d", len(rec.index))
	}

	if err := rec.Save(path); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	g, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Image) != 2 || g.Image[0].Bounds().Dx() != 8*DotPixels {
		t.Errorf("unexpected gif: %d frames, width %d", len(g.Image), g.Image[0].Bounds().Dx())
	}
}
