package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/dancecube/internal/anim"
	"github.com/san-kum/dancecube/internal/export"
	"github.com/san-kum/dancecube/internal/scene"
	"github.com/san-kum/dancecube/internal/viz"
)

func runInspect(cmd *cobra.Command, args []string) error {
	if frames <= 0 {
		return fmt.Errorf("frames must be positive, got %d", frames)
	}
	cfg, ctx, _, log, err := setup(cmd)
	if err != nil {
		return err
	}
	defer ctx.Close()

	renders := 0
	counter := anim.RendererFunc(func(*scene.Scene, *scene.Camera) { renders++ })
	d := anim.NewDriver(ctx, counter, cfg.AnimSettings(), log)
	d.SetClock(anim.NewStepClock(cfg.Window.FPS))

	trace := &export.Trace{
		Seed:       cfg.Seed,
		Particles:  cfg.Particles.Count,
		Mode:       cfg.Particles.Mode,
		RightColor: cfg.Particles.RightColor,
		LeftColor:  cfg.Particles.LeftColor,
		Frames:     make([]export.Frame, 0, frames),
	}
	camZ := make([]float64, 0, frames)
	spread := make([]float64, 0, frames)
	path := make([]export.Point, 0, frames)

	for i := 0; i < frames; i++ {
		d.Tick()
		f := export.Sample(ctx, d.Elapsed(), d.Tweens().Active())
		trace.Frames = append(trace.Frames, f)
		camZ = append(camZ, float64(f.Camera[2]))
		spread = append(spread, float64(f.Spread))
		path = append(path, export.Point{X: float64(f.Camera[2]), Y: float64(f.Camera[1])})
	}

	last := trace.Frames[len(trace.Frames)-1]
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "seed\t%d\n", cfg.Seed)
	fmt.Fprintf(w, "particles\t%d x %d (%s %s→%s)\n", len(ctx.Scene.Points()), cfg.Particles.Count,
		cfg.Particles.Mode, cfg.Particles.RightColor, cfg.Particles.LeftColor)
	fmt.Fprintf(w, "cubes\t%d (mesh refs %d)\n", countCubes(ctx.Grid), ctx.Mesh.Refs())
	fmt.Fprintf(w, "frames\t%d (%d renders, %.2fs)\n", d.Frames(), renders, d.Elapsed())
	fmt.Fprintf(w, "camera\t%.2f %.2f %.2f\n", last.Camera[0], last.Camera[1], last.Camera[2])
	fmt.Fprintf(w, "level rotation y\t%.2f %.2f %.2f\n", last.LevelRotY[0], last.LevelRotY[1], last.LevelRotY[2])
	fmt.Fprintf(w, "lattice spread\t%.2f\n", last.Spread)
	fmt.Fprintf(w, "active tweens\t%d\n", last.Active)
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Println()

	fmt.Println(asciigraph.Plot(camZ,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("camera z"),
	))
	fmt.Println()
	fmt.Println(asciigraph.Plot(spread,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("lattice spread"),
	))

	if tracePath != "" {
		if err := trace.SaveJSON(tracePath); err != nil {
			return fmt.Errorf("failed to write trace: %w", err)
		}
		fmt.Printf("\ntrace written to %s\n", tracePath)
	}
	if pathSVG != "" {
		if err := export.WriteFile(pathSVG, export.PathToSVG(path, 800, 600, "#00ffff")); err != nil {
			return fmt.Errorf("failed to write camera path: %w", err)
		}
		fmt.Printf("camera path written to %s\n", pathSVG)
	}
	return nil
}

func countCubes(g *scene.Grid) int {
	n := 0
	g.Each(func(*scene.Cube) { n++ })
	return n
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	if snapshotAt < 0 {
		return fmt.Errorf("snapshot time must not be negative, got %g", snapshotAt)
	}
	cfg, ctx, _, log, err := setup(cmd)
	if err != nil {
		return err
	}
	defer ctx.Close()

	canvas := viz.NewCanvas(cols, rows)
	w, h := canvas.SubSize()
	ctx.Resize(w, h, 1)

	d := anim.NewDriver(ctx, nil, cfg.AnimSettings(), log)
	d.SetClock(anim.NewStepClock(cfg.Window.FPS))
	for d.Frames() == 0 || d.Elapsed() < snapshotAt {
		d.Tick()
	}

	r := viz.NewRenderer(canvas)
	r.ParticleStride = 4
	r.Render(ctx.Scene, ctx.Camera)

	if err := export.WriteFile(snapshotOut, export.CanvasToSVG(canvas, 4, "#0a0a0a")); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if printCanvas {
		fmt.Print(canvas.String())
	}
	fmt.Printf("frame at %.2fs written to %s\n", d.Elapsed(), snapshotOut)
	return nil
}
