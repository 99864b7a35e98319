package viz

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/san-kum/dancecube/internal/scene"
)

func TestCanvasSetAndClear(t *testing.T) {
	c := NewCanvas(4, 2)
	c.SetColor(1, 5, "#ff0000")
	if !c.Dot(1, 5) {
		t.Fatal("expected dot to be set")
	}
	if c.Colors[1][0] != "#ff0000" {
		t.Errorf("expected cell tint, got %q", c.Colors[1][0])
	}
	c.Set(-1, 0)
	c.Set(100, 100)

	c.Clear()
	if c.Dot(1, 5) || c.Colors[1][0] != "" {
		t.Error("expected cleared canvas")
	}
	if got := strings.Count(c.String(), "\n"); got != 2 {
		t.Errorf("expected 2 rows, got %d", got)
	}
}

func TestCanvasDrawLine(t *testing.T) {
	c := NewCanvas(10, 3)
	c.DrawLine(0, 0, 19, 0, "#00ff00")
	for x := 0; x < 20; x++ {
		if !c.Dot(x, 0) {
			t.Errorf("missing dot at %d", x)
		}
	}
	if c.Dot(0, 1) {
		t.Error("unexpected dot below the line")
	}
}

func TestCanvasResize(t *testing.T) {
	c := NewCanvas(2, 2)
	c.Resize(0, 5)
	w, h := c.SubSize()
	if w != 2 || h != 20 {
		t.Errorf("expected 2x20 dots, got %dx%d", w, h)
	}
}

func TestCanvasStyled(t *testing.T) {
	c := NewCanvas(3, 1)
	c.SetColor(0, 0, "#ff0000")
	out := c.Styled()
	if !strings.Contains(out, string(rune(blank+1))) {
		t.Errorf("styled output lost the dot: %q", out)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Error("expected trailing newline")
	}
}

func TestProjector(t *testing.T) {
	cam := scene.DefaultCamera()
	cam.Position = mgl32.Vec3{0, 0, 10}
	cam.Aspect = 1
	p := NewProjector(&cam, 100, 100)

	x, y, _, ok := p.Project(mgl32.Vec3{})
	if !ok || x != 50 || y != 50 {
		t.Errorf("origin should land in the center, got %d,%d ok=%v", x, y, ok)
	}
	x, y, _, ok = p.Project(mgl32.Vec3{1, 1, 0})
	if !ok || x <= 50 || y >= 50 {
		t.Errorf("up-right point should land up-right, got %d,%d", x, y)
	}
	if _, _, _, ok = p.Project(mgl32.Vec3{0, 0, 20}); ok {
		t.Error("point behind the camera should not project")
	}
	if _, _, _, ok = p.Project(mgl32.Vec3{0, 0, -500}); ok {
		t.Error("point beyond the far plane should not project")
	}
}

func TestRendererDrawsScene(t *testing.T) {
	opts := scene.DefaultOptions()
	opts.Particles.Count = 500
	ctx, err := scene.NewContext(opts)
	if err != nil {
		t.Fatal(err)
	}
	defer ctx.Close()
	ctx.Camera.Position = mgl32.Vec3{0, 0, 30}
	ctx.Grid.Each(func(c *scene.Cube) { c.Position = mgl32.Vec3{float32(c.Col) * 1.2, float32(c.Level) * 2.5, float32(c.Row) * 1.2} })

	canvas := NewCanvas(60, 20)
	r := NewRenderer(canvas)
	r.Render(ctx.Scene, ctx.Camera)

	dots, tinted := 0, 0
	for i := range canvas.Grid {
		for j, cell := range canvas.Grid[i] {
			if cell != blank {
				dots++
			}
			if canvas.Colors[i][j] != "" {
				tinted++
			}
		}
	}
	if dots == 0 || tinted == 0 {
		t.Errorf("expected a drawn scene, got %d cells and %d tinted", dots, tinted)
	}
}
