package export

import (
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/gif"
	"os"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/dancecube/internal/viz"
)

// DotPixels is the edge length in pixels of one canvas dot in recorded frames.
const DotPixels = 2

// Recorder collects canvas frames for an animated GIF.
type Recorder struct {
	// Delay between frames in hundredths of a second.
	Delay  int
	frames []*image.Paletted
	index  map[string]uint8
}

func NewRecorder() *Recorder {
	return &Recorder{Delay: 2, index: make(map[string]uint8)}
}

// Capture rasterizes the current canvas contents as a new frame.
func (r *Recorder) Capture(c *viz.Canvas) {
	w, h := c.SubSize()
	img := image.NewPaletted(image.Rect(0, 0, w*DotPixels, h*DotPixels), palette.Plan9)
	bg := uint8(color.Palette(palette.Plan9).Index(color.Black))
	for i := range img.Pix {
		img.Pix[i] = bg
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !c.Dot(x, y) {
				continue
			}
			idx := r.colorIndex(c.Colors[y/4][x/2])
			for py := 0; py < DotPixels; py++ {
				for px := 0; px < DotPixels; px++ {
					img.SetColorIndex(x*DotPixels+px, y*DotPixels+py, idx)
				}
			}
		}
	}
	r.frames = append(r.frames, img)
}

func (r *Recorder) colorIndex(hex string) uint8 {
	if idx, ok := r.index[hex]; ok {
		return idx
	}
	var c color.Color = color.White
	if parsed, err := colorful.Hex(hex); err == nil {
		c = parsed
	}
	idx := uint8(color.Palette(palette.Plan9).Index(c))
	r.index[hex] = idx
	return idx
}

// Len returns the number of captured frames.
func (r *Recorder) Len() int { return len(r.frames) }

// Save encodes the captured frames as a looping GIF.
func (r *Recorder) Save(path string) error {
	if len(r.frames) == 0 {
		return fmt.Errorf("no frames recorded for %s", path)
	}
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range r.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, r.Delay)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gif.EncodeAll(f, &anim)
}
