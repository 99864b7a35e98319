package scene

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-logr/logr"
)

// DefaultOffsets place the two mirrored cloud instances below and above the
// lattice.
var DefaultOffsets = [2]mgl32.Vec3{{0, -1.25, 0}, {0, 1.25, 0}}

// ParticleSystem owns the current cloud and its two scene instances.
type ParticleSystem struct {
	Offsets [2]mgl32.Vec3
	Size    float32

	scene     *Scene
	rng       *rand.Rand
	log       logr.Logger
	params    ParticleParams
	cloud     *Cloud
	instances [2]*Points
	gen       int
}

func NewParticleSystem(s *Scene, rng *rand.Rand, log logr.Logger) *ParticleSystem {
	return &ParticleSystem{
		Offsets: DefaultOffsets,
		Size:    DefaultPointSize,
		scene:   s,
		rng:     rng,
		log:     log.WithName("particles"),
	}
}

// Regenerate builds a cloud from p and swaps it in. The new cloud is built
// before anything is released, so a failure leaves the current cloud in place.
func (ps *ParticleSystem) Regenerate(p ParticleParams) error {
	cloud, err := GenerateCloud(ps.rng, p)
	if err != nil {
		ps.log.Error(err, "regenerate rejected", "count", p.Count)
		return err
	}

	ps.release()
	ps.cloud = cloud
	ps.params = p
	for i, off := range ps.Offsets {
		inst := &Points{Cloud: cloud, Offset: off, Size: ps.Size}
		ps.instances[i] = inst
		ps.scene.AddPoints(inst)
	}
	ps.gen++
	ps.log.V(1).Info("regenerated", "count", p.Count, "mode", string(p.Mode), "generation", ps.gen)
	return nil
}

func (ps *ParticleSystem) release() {
	if ps.cloud != nil {
		ps.cloud.Dispose()
	}
	for i, inst := range ps.instances {
		if inst != nil {
			ps.scene.RemovePoints(inst)
			ps.instances[i] = nil
		}
	}
}

// Dispose removes the instances from the scene and frees the cloud.
func (ps *ParticleSystem) Dispose() {
	ps.release()
	ps.cloud = nil
}

func (ps *ParticleSystem) Params() ParticleParams { return ps.params }

func (ps *ParticleSystem) Cloud() *Cloud { return ps.cloud }

func (ps *ParticleSystem) Instances() [2]*Points { return ps.instances }

// Generation counts successful regenerations.
func (ps *ParticleSystem) Generation() int { return ps.gen }
