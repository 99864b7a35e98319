package scene

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-logr/logr"
)

// MaxPixelRatio caps the device pixel ratio used for the drawing buffer.
const MaxPixelRatio = 2

// Viewport is the drawing surface size.
type Viewport struct {
	Width, Height int
	PixelRatio    float64
}

// Options configures NewContext.
type Options struct {
	Seed      int64
	Scatter   float32
	CubeSize  float32
	Particles ParticleParams
	Offsets   [2]mgl32.Vec3
	PointSize float32
	Camera    Camera
	Ambient   AmbientLight
	Light     PointLight
	Width     int
	Height    int
	Logger    logr.Logger
}

func DefaultOptions() Options {
	return Options{
		Seed:      1,
		Scatter:   DefaultScatter,
		CubeSize:  1,
		Particles: DefaultParticleParams(),
		Offsets:   DefaultOffsets,
		PointSize: DefaultPointSize,
		Camera:    DefaultCamera(),
		Ambient:   DefaultAmbient(),
		Light:     DefaultPointLight(),
		Width:     1280,
		Height:    720,
		Logger:    logr.Discard(),
	}
}

// Context owns everything one running scene needs: the graph, camera,
// viewport, shared mesh and particle system.
type Context struct {
	Scene     *Scene
	Camera    *Camera
	Viewport  Viewport
	Mesh      *Mesh
	Grid      *Grid
	Particles *ParticleSystem

	log    logr.Logger
	closed bool
}

// NewContext builds the lattice and the first particle cloud.
func NewContext(opts Options) (*Context, error) {
	rng := rand.New(rand.NewSource(opts.Seed))
	log := opts.Logger
	if log.GetSink() == nil {
		log = logr.Discard()
	}

	s := New()
	s.Ambient = opts.Ambient
	s.Light = opts.Light

	size := opts.CubeSize
	if size <= 0 {
		size = 1
	}
	mesh := NewBoxMesh(size)
	grid := BuildGrid(rng, mesh, opts.Scatter)
	s.Add(grid.Root)

	cam := opts.Camera
	ctx := &Context{
		Scene:  s,
		Camera: &cam,
		Mesh:   mesh,
		Grid:   grid,
		log:    log.WithName("scene"),
	}

	ps := NewParticleSystem(s, rng, log)
	ps.Offsets = opts.Offsets
	if opts.PointSize > 0 {
		ps.Size = opts.PointSize
	}
	if err := ps.Regenerate(opts.Particles); err != nil {
		grid.Release()
		return nil, fmt.Errorf("failed to generate particles: %w", err)
	}
	ctx.Particles = ps

	ctx.Resize(opts.Width, opts.Height, 1)
	ctx.log.Info("scene ready", "cubes", 27, "particles", opts.Particles.Count, "seed", opts.Seed)
	return ctx, nil
}

// Resize updates the viewport and camera aspect. Empty sizes are ignored.
func (c *Context) Resize(width, height int, pixelRatio float64) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Viewport.Width = width
	c.Viewport.Height = height
	c.Viewport.PixelRatio = math.Min(pixelRatio, MaxPixelRatio)
	c.Camera.Aspect = float32(width) / float32(height)
}

// Close releases the cube mesh references and the particle buffers.
func (c *Context) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.Grid.Release()
	c.Particles.Dispose()
	c.log.V(1).Info("scene closed", "meshRefs", c.Mesh.Refs())
}
