package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/dancecube/internal/scene"
)

// Frame is one sampled animation frame.
type Frame struct {
	Time      float64    `json:"time"`
	Camera    [3]float32 `json:"camera"`
	LevelRotY [3]float32 `json:"level_rot_y"`
	RootRotZ  float32    `json:"root_rot_z"`
	Spread    float32    `json:"spread"`
	Active    int        `json:"active_tweens"`
}

// Trace is the record of a headless run.
type Trace struct {
	Seed       int64   `json:"seed"`
	Particles  int     `json:"particles"`
	Mode       string  `json:"mode"`
	RightColor string  `json:"right_color"`
	LeftColor  string  `json:"left_color"`
	Frames     []Frame `json:"frames"`
}

// Sample captures the current state of ctx at time t.
func Sample(ctx *scene.Context, t float64, active int) Frame {
	f := Frame{
		Time:     t,
		Camera:   ctx.Camera.Position,
		RootRotZ: ctx.Grid.Root.Rotation[2],
		Active:   active,
	}
	for i, lv := range ctx.Grid.Levels {
		f.LevelRotY[i] = lv.Rotation[1]
	}
	f.Spread = LatticeSpread(ctx.Grid)
	return f
}

// LatticeSpread is the largest distance of any cube from the lattice center.
func LatticeSpread(g *scene.Grid) float32 {
	var spread float32
	g.Each(func(c *scene.Cube) {
		if d := c.Position.Len(); d > spread {
			spread = d
		}
	})
	return spread
}

// WriteJSON encodes the trace as indented JSON.
func (t *Trace) WriteJSON(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(t)
}

// SaveJSON writes the trace to path.
func (t *Trace) SaveJSON(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return t.WriteJSON(file)
}
