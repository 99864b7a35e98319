package scene

import "math/rand"

// DefaultScatter bounds the random initial offset of each cube.
const DefaultScatter = 20

// Grid is the 3x3x3 lattice. Levels[i] holds the nine cubes of level i-1, and
// Cells is indexed [level+1][row+1][col+1].
type Grid struct {
	Root   *Group
	Levels [3]*Group
	Cells  [3][3][3]*Cube
}

// BuildGrid creates 27 colored cubes sharing mesh. Each cube starts at a
// random spot along its own lattice direction, scaled by scatter.
func BuildGrid(rng *rand.Rand, mesh *Mesh, scatter float32) *Grid {
	g := &Grid{Root: NewGroup("dancingCube")}
	names := [3]string{"level1", "level2", "level3"}
	for i := range g.Levels {
		g.Levels[i] = NewGroup(names[i])
	}

	for level := -1; level <= 1; level++ {
		for row := -1; row <= 1; row++ {
			for col := -1; col <= 1; col++ {
				c := &Cube{Level: level, Row: row, Col: col, Mesh: mesh}
				c.Position[1] = float32(level) * rng.Float32() * scatter
				c.Position[2] = float32(row) * rng.Float32() * scatter
				c.Position[0] = float32(col) * rng.Float32() * scatter
				Colorize(c)
				mesh.Retain()

				g.Levels[level+1].Add(c)
				g.Cells[level+1][row+1][col+1] = c
			}
		}
	}

	for _, lv := range g.Levels {
		g.Root.AddGroup(lv)
	}
	return g
}

// Cube returns the cube at signed lattice indices, or nil when out of range.
func (g *Grid) Cube(level, row, col int) *Cube {
	if level < -1 || level > 1 || row < -1 || row > 1 || col < -1 || col > 1 {
		return nil
	}
	return g.Cells[level+1][row+1][col+1]
}

// Level returns the group for a signed level index.
func (g *Grid) Level(level int) *Group {
	if level < -1 || level > 1 {
		return nil
	}
	return g.Levels[level+1]
}

// Each visits all cubes in level, row, column order.
func (g *Grid) Each(fn func(c *Cube)) {
	for l := range g.Cells {
		for r := range g.Cells[l] {
			for _, c := range g.Cells[l][r] {
				fn(c)
			}
		}
	}
}

// Release drops the mesh references held by the cubes.
func (g *Grid) Release() {
	g.Each(func(c *Cube) {
		if c.Mesh != nil {
			c.Mesh.Release()
			c.Mesh = nil
		}
	})
}
