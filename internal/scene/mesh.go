package scene

import "github.com/go-gl/mathgl/mgl32"

// Triangle is one face triangle of a mesh in local space.
type Triangle struct {
	V      [3]mgl32.Vec3
	Normal mgl32.Vec3
}

// Mesh is the unit box shared by every cube. Triangles follow the usual box
// geometry order: +x, -x, +y, -y, +z, -z, two triangles per side, counter
// clockwise when seen from outside.
type Mesh struct {
	Triangles [12]Triangle
	refs      int
}

var boxSides = [6]struct{ n, u, v mgl32.Vec3 }{
	{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}},
	{mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}},
	{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}},
	{mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}},
	{mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},
	{mgl32.Vec3{0, 0, -1}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 1, 0}},
}

// NewBoxMesh builds a box with the given edge length centered on the origin.
func NewBoxMesh(size float32) *Mesh {
	m := &Mesh{}
	h := size / 2
	for i, s := range boxSides {
		c := s.n.Mul(h)
		u, v := s.u.Mul(h), s.v.Mul(h)
		p0 := c.Sub(u).Sub(v)
		p1 := c.Add(u).Sub(v)
		p2 := c.Add(u).Add(v)
		p3 := c.Sub(u).Add(v)
		m.Triangles[i*2] = Triangle{V: [3]mgl32.Vec3{p0, p1, p2}, Normal: s.n}
		m.Triangles[i*2+1] = Triangle{V: [3]mgl32.Vec3{p0, p2, p3}, Normal: s.n}
	}
	return m
}

// Retain records one more holder of the mesh.
func (m *Mesh) Retain() { m.refs++ }

// Release drops one holder. It reports true when the last holder is gone.
func (m *Mesh) Release() bool {
	if m.refs > 0 {
		m.refs--
	}
	return m.refs == 0
}

// Refs returns the number of current holders.
func (m *Mesh) Refs() int { return m.refs }
