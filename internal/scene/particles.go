package scene

import (
	"fmt"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"
)

// Mode selects how particle colors are chosen.
type Mode string

const (
	// ModeGradient picks a random point on the segment between the two colors.
	ModeGradient Mode = "gradient"
	// ModeAlternate gives even particles the right color and odd ones the left.
	ModeAlternate Mode = "alternate"
)

const (
	DefaultParticleCount = 32000
	DefaultRightColor    = "#fbbc58"
	DefaultLeftColor     = "#095d6a"
	DefaultInterpolation = 11
	DefaultPointSize     = 0.03
)

// DefaultSpread is the box the particles are scattered in.
var DefaultSpread = mgl32.Vec3{3.6, 1, 3.6}

// ParticleParams drives GenerateCloud.
type ParticleParams struct {
	Count         int
	Mode          Mode
	RightColor    string
	LeftColor     string
	Interpolation float32
	Spread        mgl32.Vec3
}

func DefaultParticleParams() ParticleParams {
	return ParticleParams{
		Count:         DefaultParticleCount,
		Mode:          ModeGradient,
		RightColor:    DefaultRightColor,
		LeftColor:     DefaultLeftColor,
		Interpolation: DefaultInterpolation,
		Spread:        DefaultSpread,
	}
}

// Validate checks the parameters and returns the parsed endpoint colors.
func (p ParticleParams) Validate() (right, left colorful.Color, err error) {
	if p.Count <= 0 {
		return right, left, fmt.Errorf("count %d: %w", p.Count, ErrInvalidCount)
	}
	if p.Interpolation < 0 {
		return right, left, fmt.Errorf("interpolation %g: %w", p.Interpolation, ErrInvalidInterpolation)
	}
	switch p.Mode {
	case ModeGradient, ModeAlternate, "":
	default:
		return right, left, fmt.Errorf("%q: %w", p.Mode, ErrUnknownMode)
	}
	if right, err = ParseColor(p.RightColor); err != nil {
		return right, left, err
	}
	if left, err = ParseColor(p.LeftColor); err != nil {
		return right, left, err
	}
	return right, left, nil
}

// ParseColor reads a #rgb or #rrggbb string.
func ParseColor(s string) (colorful.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%q: %w", s, ErrInvalidColor)
	}
	return c, nil
}

// Cloud holds flat xyz position and rgb color buffers, three floats per
// particle.
type Cloud struct {
	Positions []float32
	Colors    []float32

	disposed bool
}

// Len returns the number of particles.
func (c *Cloud) Len() int { return len(c.Positions) / 3 }

func (c *Cloud) Position(i int) mgl32.Vec3 {
	return mgl32.Vec3{c.Positions[i*3], c.Positions[i*3+1], c.Positions[i*3+2]}
}

func (c *Cloud) Color(i int) colorful.Color {
	return colorful.Color{R: float64(c.Colors[i*3]), G: float64(c.Colors[i*3+1]), B: float64(c.Colors[i*3+2])}
}

// Dispose drops the buffers. The cloud must not be drawn afterwards.
func (c *Cloud) Dispose() {
	c.Positions = nil
	c.Colors = nil
	c.disposed = true
}

func (c *Cloud) Disposed() bool { return c.disposed }

// GenerateCloud fills a new cloud of p.Count particles.
func GenerateCloud(rng *rand.Rand, p ParticleParams) (*Cloud, error) {
	right, left, err := p.Validate()
	if err != nil {
		return nil, err
	}

	n := p.Count * 3
	cloud := &Cloud{
		Positions: make([]float32, n),
		Colors:    make([]float32, n),
	}

	for i := 0; i < p.Count; i++ {
		j := i * 3
		cloud.Positions[j] = (rng.Float32() - 0.5) * p.Spread[0]
		cloud.Positions[j+1] = (rng.Float32() - 0.5) * p.Spread[1]
		cloud.Positions[j+2] = (rng.Float32() - 0.5) * p.Spread[2]

		var col colorful.Color
		if p.Mode == ModeAlternate {
			col = right
			if i%2 == 1 {
				col = left
			}
		} else {
			col = right.BlendRgb(left, mixFraction(rng, p.Interpolation)).Clamped()
		}
		cloud.Colors[j] = float32(col.R)
		cloud.Colors[j+1] = float32(col.G)
		cloud.Colors[j+2] = float32(col.B)
	}
	return cloud, nil
}

// mixFraction draws r*div/div. A zero divisor keeps the right color.
func mixFraction(rng *rand.Rand, div float32) float64 {
	r := rng.Float64()
	if div == 0 {
		return 0
	}
	d := float64(div)
	return (r * d) / d
}
