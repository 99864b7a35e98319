package panel

import (
	"math"

	"github.com/san-kum/dancecube/internal/scene"
)

// Folder names used by BindScene.
const (
	FolderParticles = "particles"
	FolderLevel1    = "lvl1"
	FolderLevel2    = "lvl2"
	FolderLevel3    = "lvl3"
	FolderCamera    = "camera"
)

var (
	countRange    = Range{Min: 10000, Max: 100000, Step: 100}
	interpRange   = Range{Min: 0, Max: 10, Step: 0.05}
	levelPosRange = Range{Min: 0, Max: 2, Step: 1}
	turnRange     = Range{Min: 0, Max: 2 * math.Pi, Step: math.Pi / 4}
	cameraRange   = Range{Min: -100, Max: 100, Step: 1}
	rollRange     = Range{Min: 0, Max: 1, Step: 0.01}
)

// SceneBinding keeps the editable copy of the particle parameters.
type SceneBinding struct {
	Particles scene.ParticleParams

	ctx *scene.Context
}

// BindScene adds the particle, level and camera folders for ctx to p.
// Particle edits regenerate both clouds once committed.
func BindScene(p *Panel, ctx *scene.Context) *SceneBinding {
	b := &SceneBinding{Particles: ctx.Particles.Params(), ctx: ctx}

	p.Int(FolderParticles, "count", &b.Particles.Count, countRange).OnFinishChange(b.regenerate)
	p.ColorString(FolderParticles, "rightColor", &b.Particles.RightColor).OnFinishChange(b.regenerate)
	p.ColorString(FolderParticles, "leftColor", &b.Particles.LeftColor).OnFinishChange(b.regenerate)
	p.Float32(FolderParticles, "interpolation", &b.Particles.Interpolation, interpRange).OnFinishChange(b.regenerate)

	lvl1 := ctx.Grid.Levels[0]
	p.Float32(FolderLevel1, "x", &lvl1.Position[0], levelPosRange)
	p.Float32(FolderLevel1, "y", &lvl1.Position[1], levelPosRange)
	p.Float32(FolderLevel1, "z", &lvl1.Position[2], levelPosRange)
	p.Float32(FolderLevel1, "rotationY", &lvl1.Rotation[1], turnRange)
	p.Float32(FolderLevel2, "rotationY", &ctx.Grid.Levels[1].Rotation[1], turnRange)
	p.Float32(FolderLevel3, "rotationY", &ctx.Grid.Levels[2].Rotation[1], turnRange)

	cam := ctx.Camera
	p.Float32(FolderCamera, "x", &cam.Position[0], cameraRange)
	p.Float32(FolderCamera, "y", &cam.Position[1], cameraRange)
	p.Float32(FolderCamera, "z", &cam.Position[2], cameraRange)
	p.Float32(FolderCamera, "rotationZ", &cam.Rotation[2], rollRange)

	return b
}

func (b *SceneBinding) regenerate() error {
	if err := b.ctx.Particles.Regenerate(b.Particles); err != nil {
		b.Particles = b.ctx.Particles.Params()
		return err
	}
	return nil
}
