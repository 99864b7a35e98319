package anim

import (
	"context"
	"math"
	"time"

	"github.com/go-logr/logr"

	"github.com/san-kum/dancecube/internal/scene"
	"github.com/san-kum/dancecube/internal/tween"
)

// Renderer draws one frame of the scene.
type Renderer interface {
	Render(s *scene.Scene, cam *scene.Camera)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(s *scene.Scene, cam *scene.Camera)

func (f RendererFunc) Render(s *scene.Scene, cam *scene.Camera) { f(s, cam) }

// Timing is the duration and start delay of a tween, in seconds.
type Timing struct {
	Duration float32
	Delay    float32
}

// Settings controls what the driver asks of the scene each frame.
type Settings struct {
	// AngularRate is radians per second applied to the level groups, the
	// root and every cube.
	AngularRate  float32
	CubeSpacing  float32
	LevelSpacing float32
	CubeTiming   Timing
	CameraTarget [3]tween.Spec
}

func DefaultSettings() Settings {
	return Settings{
		AngularRate:  math.Pi * 0.5,
		CubeSpacing:  1.2,
		LevelSpacing: 2.5,
		CubeTiming:   Timing{Duration: 2, Delay: 0.5},
		CameraTarget: [3]tween.Spec{
			{To: 5, Duration: 1, Delay: 0.5},
			{To: 5, Duration: 0.5, Delay: 0.5},
			{To: 10, Duration: 1.5, Delay: 0.5},
		},
	}
}

// Driver advances the scene once per display frame.
type Driver struct {
	Settings Settings

	ctx      *scene.Context
	tweens   *tween.Engine
	renderer Renderer
	clock    Clock
	log      logr.Logger

	last    float64
	elapsed float64
	frames  int
}

func NewDriver(ctx *scene.Context, r Renderer, s Settings, log logr.Logger) *Driver {
	return &Driver{
		Settings: s,
		ctx:      ctx,
		tweens:   tween.New(),
		renderer: r,
		clock:    NewWallClock(),
		log:      log.WithName("anim"),
	}
}

// SetClock replaces the time source used by Tick.
func (d *Driver) SetClock(c Clock) { d.clock = c }

// SetRenderer swaps the renderer used for subsequent frames.
func (d *Driver) SetRenderer(r Renderer) { d.renderer = r }

// Tick runs one frame at the clock's current time.
func (d *Driver) Tick() {
	d.Frame(d.clock.Elapsed())
}

// Frame runs one frame at the given elapsed time in seconds.
func (d *Driver) Frame(elapsed float64) {
	dt := elapsed - d.last
	if dt < 0 {
		dt = 0
	}
	d.last = elapsed
	d.elapsed = elapsed

	s := d.Settings
	angle := float32(elapsed) * s.AngularRate
	grid := d.ctx.Grid

	grid.Levels[0].Rotation[1] = angle
	grid.Levels[1].Rotation[1] = -angle
	grid.Levels[2].Rotation[1] = angle

	cam := d.ctx.Camera
	for axis, spec := range s.CameraTarget {
		d.tweens.To(&cam.Position[axis], spec)
	}

	grid.Each(func(c *scene.Cube) {
		c.Rotation[0] = angle
		d.tweens.To(&c.Position[0], d.cubeSpec(float32(c.Col)*s.CubeSpacing))
		d.tweens.To(&c.Position[1], d.cubeSpec(float32(c.Level)*s.LevelSpacing))
		d.tweens.To(&c.Position[2], d.cubeSpec(float32(c.Row)*s.CubeSpacing))
	})

	grid.Root.Rotation[2] = -angle

	d.tweens.Advance(float32(dt))

	if d.renderer != nil {
		d.renderer.Render(d.ctx.Scene, cam)
	}
	d.frames++
	if d.frames == 1 {
		d.log.V(1).Info("first frame", "elapsed", elapsed, "tracks", d.tweens.Len())
	}
}

func (d *Driver) cubeSpec(to float32) tween.Spec {
	return tween.Spec{To: to, Duration: d.Settings.CubeTiming.Duration, Delay: d.Settings.CubeTiming.Delay}
}

// Run calls Tick for every value received on ticks until ctx is done or the
// channel is closed.
func (d *Driver) Run(ctx context.Context, ticks <-chan time.Time) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-ticks:
			if !ok {
				return nil
			}
			d.Tick()
		}
	}
}

// Frames returns the number of frames rendered so far.
func (d *Driver) Frames() int { return d.frames }

// Elapsed returns the time of the last frame.
func (d *Driver) Elapsed() float64 { return d.elapsed }

// Tweens exposes the engine for inspection.
func (d *Driver) Tweens() *tween.Engine { return d.tweens }
