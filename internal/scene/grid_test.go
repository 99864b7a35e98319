package scene

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	. "github.com/onsi/gomega"
)

func TestBuildGrid(t *testing.T) {
	g := NewWithT(t)
	mesh := NewBoxMesh(1)
	grid := BuildGrid(rand.New(rand.NewSource(7)), mesh, DefaultScatter)

	g.Expect(grid.Root.Children).To(HaveLen(3))
	seen := make(map[*Cube]bool)
	for li, lv := range grid.Levels {
		g.Expect(lv.Cubes).To(HaveLen(9))
		g.Expect(grid.Root.Children[li]).To(BeIdenticalTo(lv))
		for _, c := range lv.Cubes {
			g.Expect(c.Level).To(Equal(li - 1))
			g.Expect(c.Parent()).To(BeIdenticalTo(lv))
			g.Expect(grid.Cube(c.Level, c.Row, c.Col)).To(BeIdenticalTo(c))
			g.Expect(seen[c]).To(BeFalse(), "duplicate cube")
			seen[c] = true
		}
	}
	g.Expect(seen).To(HaveLen(27))

	for l := -1; l <= 1; l++ {
		for r := -1; r <= 1; r++ {
			for c := -1; c <= 1; c++ {
				cube := grid.Cube(l, r, c)
				g.Expect(cube).NotTo(BeNil())
				g.Expect(cube.Mesh).To(BeIdenticalTo(mesh))
				g.Expect(seen[cube]).To(BeTrue())
			}
		}
	}
	g.Expect(grid.Cube(2, 0, 0)).To(BeNil())
	g.Expect(mesh.Refs()).To(Equal(27))
}

func TestBuildGrid_Scatter(t *testing.T) {
	g := NewWithT(t)
	grid := BuildGrid(rand.New(rand.NewSource(3)), NewBoxMesh(1), 20)

	grid.Each(func(c *Cube) {
		for axis, idx := range [3]int{c.Col, c.Level, c.Row} {
			v := c.Position[axis]
			switch idx {
			case 0:
				g.Expect(v).To(BeZero())
			case 1:
				g.Expect(v).To(BeNumerically(">=", 0))
				g.Expect(v).To(BeNumerically("<", 20))
			case -1:
				g.Expect(v).To(BeNumerically("<=", 0))
				g.Expect(v).To(BeNumerically(">", -20))
			}
		}
	})

	center := grid.Cube(0, 0, 0)
	g.Expect(center.Position).To(Equal(mgl32.Vec3{}))
}

func TestGridRelease(t *testing.T) {
	mesh := NewBoxMesh(1)
	grid := BuildGrid(rand.New(rand.NewSource(1)), mesh, 1)
	grid.Release()
	if mesh.Refs() != 0 {
		t.Errorf("expected 0 mesh refs, got %d", mesh.Refs())
	}
}

func TestColorize(t *testing.T) {
	g := NewWithT(t)

	tests := []struct {
		face  Face
		tris  [2]int
		color string
	}{
		{FaceRight, [2]int{0, 1}, "#ff0000"},
		{FaceLeft, [2]int{2, 3}, "#ffa500"},
		{FaceUp, [2]int{4, 5}, "#ffc0cb"},
		{FaceDown, [2]int{6, 7}, "#0000ff"},
		{FaceFront, [2]int{8, 9}, "#008000"},
		{FaceBack, [2]int{10, 11}, "#ffff00"},
	}

	c := &Cube{}
	Colorize(c)
	first := c.FaceColors
	Colorize(c)
	g.Expect(c.FaceColors).To(Equal(first))

	for _, tt := range tests {
		g.Expect(FaceTriangles(tt.face)).To(Equal(tt.tris), tt.face.String())
		for _, i := range tt.tris {
			g.Expect(c.FaceColors[i].Hex()).To(Equal(tt.color), tt.face.String())
		}
	}
}

func TestBoxMeshWinding(t *testing.T) {
	m := NewBoxMesh(1)
	for i, tri := range m.Triangles {
		n := tri.V[1].Sub(tri.V[0]).Cross(tri.V[2].Sub(tri.V[0])).Normalize()
		if !n.ApproxEqual(tri.Normal) {
			t.Errorf("triangle %d: winding normal %v, want %v", i, n, tri.Normal)
		}
		for _, v := range tri.V {
			if v.Dot(tri.Normal) != 0.5 {
				t.Errorf("triangle %d: vertex %v not on face plane", i, v)
			}
		}
	}
	if m.Triangles[0].Normal != (mgl32.Vec3{1, 0, 0}) {
		t.Error("first side should face +x")
	}
	if m.Triangles[8].Normal != (mgl32.Vec3{0, 0, 1}) {
		t.Error("front side should face +z")
	}
}
