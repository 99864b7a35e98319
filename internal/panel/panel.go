// Package panel is a small live tweak panel. Controls are grouped in folders
// and bound to getters and setters, so they can edit fields of any type.
package panel

import (
	"fmt"
	"math"

	"github.com/go-logr/logr"

	"github.com/san-kum/dancecube/internal/scene"
)

// Kind tells number controls from color controls.
type Kind int

const (
	KindNumber Kind = iota
	KindColor
)

// Range bounds a number control. Step 0 disables snapping.
type Range struct {
	Min, Max, Step float64
}

// Control is one editable parameter.
type Control struct {
	Folder string
	Name   string
	Kind   Kind
	Range  Range

	get      func() float64
	set      func(float64)
	getColor func() string
	setColor func(string)
	onChange func()
	onFinish func() error
	log      logr.Logger
}

// OnChange registers a callback run after every accepted edit.
func (c *Control) OnChange(fn func()) *Control {
	c.onChange = fn
	return c
}

// OnFinishChange registers a callback run once an edit is committed.
func (c *Control) OnFinishChange(fn func() error) *Control {
	c.onFinish = fn
	return c
}

// Value returns the current number.
func (c *Control) Value() float64 {
	if c.get == nil {
		return 0
	}
	return c.get()
}

// Color returns the current color string.
func (c *Control) Color() string {
	if c.getColor == nil {
		return ""
	}
	return c.getColor()
}

// Set clamps v to the range, snaps it to the step grid and commits it.
func (c *Control) Set(v float64) error {
	if c.Kind != KindNumber {
		return fmt.Errorf("%s/%s is not a number control", c.Folder, c.Name)
	}
	c.set(c.Range.constrain(v))
	return c.commit()
}

// Nudge moves a number control by n steps.
func (c *Control) Nudge(n int) error {
	step := c.Range.Step
	if step == 0 {
		step = (c.Range.Max - c.Range.Min) / 100
	}
	return c.Set(c.Value() + float64(n)*step)
}

// SetColor validates and commits a hex color.
func (c *Control) SetColor(hex string) error {
	if c.Kind != KindColor {
		return fmt.Errorf("%s/%s is not a color control", c.Folder, c.Name)
	}
	if _, err := scene.ParseColor(hex); err != nil {
		return err
	}
	c.setColor(hex)
	return c.commit()
}

// String formats the value for display.
func (c *Control) String() string {
	if c.Kind == KindColor {
		return c.Color()
	}
	v := c.Value()
	if c.Range.Step >= 1 && v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}

func (c *Control) commit() error {
	if c.onChange != nil {
		c.onChange()
	}
	if c.onFinish == nil {
		return nil
	}
	if err := c.onFinish(); err != nil {
		c.log.Error(err, "finish change failed", "folder", c.Folder, "control", c.Name)
		return err
	}
	return nil
}

func (r Range) constrain(v float64) float64 {
	if r.Step > 0 {
		v = r.Min + math.Round((v-r.Min)/r.Step)*r.Step
	}
	if v < r.Min {
		v = r.Min
	}
	if v > r.Max {
		v = r.Max
	}
	return v
}

// Folder is a named group of controls.
type Folder struct {
	Name     string
	Controls []*Control
}

// Panel holds folders and a cursor over their controls.
type Panel struct {
	Title  string
	Hidden bool

	folders  []*Folder
	controls []*Control
	cursor   int
	log      logr.Logger
}

func New(title string, log logr.Logger) *Panel {
	return &Panel{Title: title, log: log.WithName("panel")}
}

// Folder returns the folder with the given name, creating it on first use.
func (p *Panel) Folder(name string) *Folder {
	for _, f := range p.folders {
		if f.Name == name {
			return f
		}
	}
	f := &Folder{Name: name}
	p.folders = append(p.folders, f)
	return f
}

// Number adds a number control.
func (p *Panel) Number(folder, name string, get func() float64, set func(float64), r Range) *Control {
	c := &Control{Folder: folder, Name: name, Kind: KindNumber, Range: r, get: get, set: set, log: p.log}
	p.add(c)
	return c
}

// Float32 adds a number control bound to a float32 field.
func (p *Panel) Float32(folder, name string, v *float32, r Range) *Control {
	return p.Number(folder, name,
		func() float64 { return float64(*v) },
		func(x float64) { *v = float32(x) },
		r)
}

// Int adds a number control bound to an int field.
func (p *Panel) Int(folder, name string, v *int, r Range) *Control {
	return p.Number(folder, name,
		func() float64 { return float64(*v) },
		func(x float64) { *v = int(math.Round(x)) },
		r)
}

// ColorString adds a color control bound to a hex string field.
func (p *Panel) ColorString(folder, name string, v *string) *Control {
	c := &Control{
		Folder:   folder,
		Name:     name,
		Kind:     KindColor,
		getColor: func() string { return *v },
		setColor: func(s string) { *v = s },
		log:      p.log,
	}
	p.add(c)
	return c
}

func (p *Panel) add(c *Control) {
	f := p.Folder(c.Folder)
	f.Controls = append(f.Controls, c)
	p.controls = p.controls[:0]
	for _, f := range p.folders {
		p.controls = append(p.controls, f.Controls...)
	}
}

// Folders returns folders in creation order.
func (p *Panel) Folders() []*Folder { return p.folders }

// Controls returns every control in display order.
func (p *Panel) Controls() []*Control { return p.controls }

// Lookup finds a control by folder and name.
func (p *Panel) Lookup(folder, name string) *Control {
	for _, c := range p.controls {
		if c.Folder == folder && c.Name == name {
			return c
		}
	}
	return nil
}

// Selected returns the control under the cursor, or nil for an empty panel.
func (p *Panel) Selected() *Control {
	if len(p.controls) == 0 {
		return nil
	}
	return p.controls[p.cursor]
}

// Cursor returns the index of the selected control.
func (p *Panel) Cursor() int { return p.cursor }

func (p *Panel) Next() {
	if len(p.controls) == 0 {
		return
	}
	p.cursor = (p.cursor + 1) % len(p.controls)
}

func (p *Panel) Prev() {
	if len(p.controls) == 0 {
		return
	}
	p.cursor--
	if p.cursor < 0 {
		p.cursor = len(p.controls) - 1
	}
}

// Toggle shows or hides the panel.
func (p *Panel) Toggle() { p.Hidden = !p.Hidden }
