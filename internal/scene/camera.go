package scene

import "github.com/go-gl/mathgl/mgl32"

// Camera is a perspective camera oriented by Euler angles. With zero rotation
// it looks down -Z with +Y up.
type Camera struct {
	Position mgl32.Vec3
	Rotation mgl32.Vec3
	Fov      float32 // vertical, degrees
	Near     float32
	Far      float32
	Aspect   float32
}

func DefaultCamera() Camera {
	return Camera{
		Position: mgl32.Vec3{53, 50, 100},
		Fov:      75,
		Near:     0.1,
		Far:      100,
		Aspect:   16.0 / 9.0,
	}
}

// View returns the world-to-camera transform.
func (c *Camera) View() mgl32.Mat4 {
	return trs(c.Position, c.Rotation).Inv()
}

func (c *Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.Fov), c.Aspect, c.Near, c.Far)
}

// Forward is the world-space viewing direction.
func (c *Camera) Forward() mgl32.Vec3 {
	return Euler(c.Rotation).Mul4x1(mgl32.Vec4{0, 0, -1, 0}).Vec3()
}

// Up is the world-space up direction.
func (c *Camera) Up() mgl32.Vec3 {
	return Euler(c.Rotation).Mul4x1(mgl32.Vec4{0, 1, 0, 0}).Vec3()
}

// Target is a point one unit ahead of the camera.
func (c *Camera) Target() mgl32.Vec3 {
	return c.Position.Add(c.Forward())
}
