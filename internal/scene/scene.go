package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"
)

// Cube is one member of the lattice. Level, Row and Col are in {-1, 0, 1}.
type Cube struct {
	Level, Row, Col int
	Position        mgl32.Vec3
	Rotation        mgl32.Vec3
	Mesh            *Mesh
	FaceColors      [12]colorful.Color

	parent *Group
}

// Parent returns the group holding the cube, or nil when detached.
func (c *Cube) Parent() *Group { return c.parent }

// World returns the cube's local-to-world transform.
func (c *Cube) World() mgl32.Mat4 {
	local := trs(c.Position, c.Rotation)
	if c.parent == nil {
		return local
	}
	return c.parent.World().Mul4(local)
}

// Group is a transform node holding cubes and child groups.
type Group struct {
	Name     string
	Position mgl32.Vec3
	Rotation mgl32.Vec3
	Cubes    []*Cube
	Children []*Group

	parent *Group
}

func NewGroup(name string) *Group {
	return &Group{Name: name}
}

// Add attaches a cube, detaching it from any previous group.
func (g *Group) Add(c *Cube) {
	if c.parent != nil {
		c.parent.remove(c)
	}
	c.parent = g
	g.Cubes = append(g.Cubes, c)
}

func (g *Group) remove(c *Cube) {
	for i, x := range g.Cubes {
		if x == c {
			g.Cubes = append(g.Cubes[:i], g.Cubes[i+1:]...)
			return
		}
	}
}

// AddGroup attaches a child group.
func (g *Group) AddGroup(child *Group) {
	child.parent = g
	g.Children = append(g.Children, child)
}

// World returns the group's local-to-world transform.
func (g *Group) World() mgl32.Mat4 {
	local := trs(g.Position, g.Rotation)
	if g.parent == nil {
		return local
	}
	return g.parent.World().Mul4(local)
}

// Walk visits every cube below g together with its world transform.
func (g *Group) Walk(fn func(c *Cube, world mgl32.Mat4)) {
	g.walk(mgl32.Ident4(), fn)
}

func (g *Group) walk(parent mgl32.Mat4, fn func(*Cube, mgl32.Mat4)) {
	w := parent.Mul4(trs(g.Position, g.Rotation))
	for _, c := range g.Cubes {
		fn(c, w.Mul4(trs(c.Position, c.Rotation)))
	}
	for _, ch := range g.Children {
		ch.walk(w, fn)
	}
}

// Points is one placed instance of a particle cloud.
type Points struct {
	Cloud  *Cloud
	Offset mgl32.Vec3
	Size   float32
}

// Scene is the root container handed to renderers.
type Scene struct {
	Background colorful.Color
	Ambient    AmbientLight
	Light      PointLight

	groups []*Group
	points []*Points
}

func New() *Scene {
	return &Scene{
		Background: colorful.Color{},
		Ambient:    DefaultAmbient(),
		Light:      DefaultPointLight(),
	}
}

func (s *Scene) Add(g *Group) { s.groups = append(s.groups, g) }

func (s *Scene) Groups() []*Group { return s.groups }

func (s *Scene) AddPoints(p *Points) { s.points = append(s.points, p) }

// Points returns the point instances currently in the scene.
func (s *Scene) Points() []*Points { return s.points }

func (s *Scene) RemovePoints(p *Points) {
	for i, x := range s.points {
		if x == p {
			s.points = append(s.points[:i], s.points[i+1:]...)
			return
		}
	}
}

// Walk visits every cube in the scene with its world transform.
func (s *Scene) Walk(fn func(c *Cube, world mgl32.Mat4)) {
	for _, g := range s.groups {
		g.Walk(fn)
	}
}

// Euler returns the rotation matrix for XYZ-ordered Euler angles.
func Euler(r mgl32.Vec3) mgl32.Mat4 {
	return mgl32.HomogRotate3DX(r[0]).Mul4(mgl32.HomogRotate3DY(r[1])).Mul4(mgl32.HomogRotate3DZ(r[2]))
}

func trs(pos, rot mgl32.Vec3) mgl32.Mat4 {
	return mgl32.Translate3D(pos[0], pos[1], pos[2]).Mul4(Euler(rot))
}
