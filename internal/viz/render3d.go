package viz

import (
	"sort"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/san-kum/dancecube/internal/scene"
)

// Projector maps world points to canvas dots for one camera pose.
type Projector struct {
	viewProj mgl32.Mat4
	w, h     int
}

// NewProjector captures the camera's current transform for a w x h dot area.
func NewProjector(cam *scene.Camera, w, h int) Projector {
	return Projector{viewProj: cam.Projection().Mul4(cam.View()), w: w, h: h}
}

// Project returns dot coordinates and the clip-space depth of p. ok is false
// for points behind the camera or outside the depth range.
func (p Projector) Project(world mgl32.Vec3) (x, y int, depth float32, ok bool) {
	clip := p.viewProj.Mul4x1(world.Vec4(1))
	if clip[3] <= 0 {
		return 0, 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / clip[3])
	if ndc[2] < -1 || ndc[2] > 1 {
		return 0, 0, 0, false
	}
	x = int((ndc[0] + 1) / 2 * float32(p.w))
	y = int((1 - ndc[1]) / 2 * float32(p.h))
	return x, y, ndc[2], true
}

// Renderer draws the scene as a braille wireframe with particle dots.
type Renderer struct {
	Canvas *Canvas
	// ParticleStride draws every Nth particle. Zero or one draws all.
	ParticleStride int
	// Shaded tints cube edges with the lit face color.
	Shaded bool
}

func NewRenderer(c *Canvas) *Renderer {
	return &Renderer{Canvas: c, ParticleStride: 8, Shaded: true}
}

type edge struct {
	x0, y0, x1, y1 int
	depth          float32
	color          string
}

// Render implements anim.Renderer.
func (r *Renderer) Render(s *scene.Scene, cam *scene.Camera) {
	c := r.Canvas
	c.Clear()
	w, h := c.SubSize()
	proj := NewProjector(cam, w, h)

	r.drawParticles(s, proj)

	edges := make([]edge, 0, 27*24)
	s.Walk(func(cube *scene.Cube, world mgl32.Mat4) {
		if cube.Mesh == nil {
			return
		}
		for i, tri := range cube.Mesh.Triangles {
			var v [3]mgl32.Vec3
			for k := range tri.V {
				v[k] = world.Mul4x1(tri.V[k].Vec4(1)).Vec3()
			}
			color := cube.FaceColors[i]
			if r.Shaded {
				n := world.Mul4x1(tri.Normal.Vec4(0)).Vec3()
				color = s.Shade(color, v[0], n)
			}
			hex := color.Hex()

			// Skip the shared diagonal: it is v0-v2 on even triangles and v0-v1
			// on odd ones.
			pairs := [2][2]int{{0, 1}, {1, 2}}
			if i%2 == 1 {
				pairs = [2][2]int{{1, 2}, {2, 0}}
			}
			for _, pr := range pairs {
				x0, y0, d0, ok0 := proj.Project(v[pr[0]])
				x1, y1, d1, ok1 := proj.Project(v[pr[1]])
				if !ok0 || !ok1 {
					continue
				}
				edges = append(edges, edge{x0, y0, x1, y1, (d0 + d1) / 2, hex})
			}
		}
	})

	// Painter's order: far edges first so near colors win.
	sort.Slice(edges, func(i, j int) bool { return edges[i].depth > edges[j].depth })
	for _, e := range edges {
		c.DrawLine(e.x0, e.y0, e.x1, e.y1, e.color)
	}
}

func (r *Renderer) drawParticles(s *scene.Scene, proj Projector) {
	stride := r.ParticleStride
	if stride < 1 {
		stride = 1
	}
	for _, pts := range s.Points() {
		cloud := pts.Cloud
		if cloud == nil || cloud.Disposed() {
			continue
		}
		for i := 0; i < cloud.Len(); i += stride {
			x, y, _, ok := proj.Project(cloud.Position(i).Add(pts.Offset))
			if !ok {
				continue
			}
			r.Canvas.SetColor(x, y, cloud.Color(i).Hex())
		}
	}
}
