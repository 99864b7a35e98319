package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/dancecube/internal/scene"
)

// Renderer draws the scene into the open raylib window. Overlay runs after the
// 3-D pass, inside the same frame.
type Renderer struct {
	Overlay func()
}

// Render implements anim.Renderer.
func (r *Renderer) Render(s *scene.Scene, cam *scene.Camera) {
	rl.BeginDrawing()
	rl.ClearBackground(toColor(s.Background))

	rl.BeginMode3D(camera3D(cam))
	s.Walk(func(c *scene.Cube, world mgl32.Mat4) {
		if c.Mesh == nil {
			return
		}
		for i, tri := range c.Mesh.Triangles {
			var v [3]mgl32.Vec3
			for k := range tri.V {
				v[k] = world.Mul4x1(tri.V[k].Vec4(1)).Vec3()
			}
			n := world.Mul4x1(tri.Normal.Vec4(0)).Vec3()
			col := toColor(s.Shade(c.FaceColors[i], v[0], n))
			rl.DrawTriangle3D(vec(v[0]), vec(v[1]), vec(v[2]), col)
		}
	})
	for _, pts := range s.Points() {
		drawPoints(pts)
	}
	rl.EndMode3D()

	if r.Overlay != nil {
		r.Overlay()
	}
	rl.EndDrawing()
}

func drawPoints(pts *scene.Points) {
	cloud := pts.Cloud
	if cloud == nil || cloud.Disposed() {
		return
	}
	for i := 0; i < cloud.Len(); i++ {
		rl.DrawPoint3D(vec(cloud.Position(i).Add(pts.Offset)), toColor(cloud.Color(i)))
	}
}

func camera3D(cam *scene.Camera) rl.Camera3D {
	return rl.NewCamera3D(vec(cam.Position), vec(cam.Target()), vec(cam.Up()), cam.Fov, rl.CameraPerspective)
}

func vec(v mgl32.Vec3) rl.Vector3 {
	return rl.NewVector3(v[0], v[1], v[2])
}

func toColor(c colorful.Color) rl.Color {
	r, g, b := c.Clamped().RGB255()
	return rl.NewColor(r, g, b, 255)
}
