package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"
)

type AmbientLight struct {
	Color     colorful.Color
	Intensity float32
}

type PointLight struct {
	Color     colorful.Color
	Intensity float32
	Position  mgl32.Vec3
}

var white = colorful.Color{R: 1, G: 1, B: 1}

func DefaultAmbient() AmbientLight {
	return AmbientLight{Color: white, Intensity: 0.5}
}

func DefaultPointLight() PointLight {
	return PointLight{Color: white, Intensity: 0.5, Position: mgl32.Vec3{2, 3, 4}}
}

// Shade applies ambient and diffuse point lighting to a base color at a world
// position with a world normal. The result is clamped to [0,1].
func (s *Scene) Shade(base colorful.Color, pos, normal mgl32.Vec3) colorful.Color {
	a := float64(s.Ambient.Intensity)
	out := colorful.Color{
		R: base.R * s.Ambient.Color.R * a,
		G: base.G * s.Ambient.Color.G * a,
		B: base.B * s.Ambient.Color.B * a,
	}

	toLight := s.Light.Position.Sub(pos)
	if toLight.Len() > 0 && normal.Len() > 0 {
		lambert := normal.Normalize().Dot(toLight.Normalize())
		if lambert > 0 {
			d := float64(lambert * s.Light.Intensity)
			out.R += base.R * s.Light.Color.R * d
			out.G += base.G * s.Light.Color.G * d
			out.B += base.B * s.Light.Color.B * d
		}
	}
	return out.Clamped()
}
