package scene

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Face names one side of a cube.
type Face int

const (
	FaceRight Face = iota
	FaceLeft
	FaceUp
	FaceDown
	FaceFront
	FaceBack
)

var faceNames = [...]string{"right", "left", "up", "down", "front", "back"}

func (f Face) String() string {
	if f < 0 || int(f) >= len(faceNames) {
		return "unknown"
	}
	return faceNames[f]
}

// Faces lists every face in table order.
var Faces = [6]Face{FaceRight, FaceLeft, FaceUp, FaceDown, FaceFront, FaceBack}

var faceTable = [6]struct {
	tris  [2]int
	named color.RGBA
}{
	FaceRight: {[2]int{0, 1}, colornames.Red},
	FaceLeft:  {[2]int{2, 3}, colornames.Orange},
	FaceUp:    {[2]int{4, 5}, colornames.Pink},
	FaceDown:  {[2]int{6, 7}, colornames.Blue},
	FaceFront: {[2]int{8, 9}, colornames.Green},
	FaceBack:  {[2]int{10, 11}, colornames.Yellow},
}

// FaceTriangles returns the two mesh triangle indices that make up a face.
func FaceTriangles(f Face) [2]int { return faceTable[f].tris }

// FaceColor returns the fixed color painted on a face.
func FaceColor(f Face) colorful.Color {
	c, _ := colorful.MakeColor(faceTable[f].named)
	return c
}

// Colorize paints every face pair of the cube with its named color.
// Calling it again leaves the cube unchanged.
func Colorize(c *Cube) {
	for _, f := range Faces {
		col := FaceColor(f)
		for _, t := range faceTable[f].tris {
			c.FaceColors[t] = col
		}
	}
}
