// Package tween animates float32 fields toward targets over time.
//
// Requests are keyed by the address of the animated field. Asking for the same
// target again while a track is running is a no-op, so callers may re-issue
// their requests every frame.
package tween

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Spec describes one tween request.
type Spec struct {
	To       float32
	Duration float32 // seconds
	Delay    float32 // seconds before the value starts moving
}

type track struct {
	spec     Spec
	tween    *gween.Tween
	wait     float32
	done     bool
	expected float32
}

// Engine owns all running tracks. It is not safe for concurrent use.
type Engine struct {
	Easing ease.TweenFunc

	tracks map[*float32]*track
	order  []*float32
}

func New() *Engine {
	return &Engine{
		Easing: ease.OutQuad,
		tracks: make(map[*float32]*track),
	}
}

// To asks for *target to move to spec.To. It reports whether a new track was
// started.
func (e *Engine) To(target *float32, spec Spec) bool {
	if t, ok := e.tracks[target]; ok {
		if t.spec == spec {
			if !t.done {
				return false
			}
			// Finished and nobody moved the value since.
			if *target == t.expected {
				return false
			}
		}
	} else {
		e.order = append(e.order, target)
	}

	e.tracks[target] = &track{spec: spec, wait: spec.Delay}
	return true
}

// Advance moves every track forward by dt seconds.
func (e *Engine) Advance(dt float32) {
	for _, target := range e.order {
		t := e.tracks[target]
		if t.done {
			continue
		}
		step := dt
		if t.wait > 0 {
			if step < t.wait {
				t.wait -= step
				continue
			}
			step -= t.wait
			t.wait = 0
		}
		if t.tween == nil {
			if t.spec.Duration <= 0 {
				*target = t.spec.To
				t.finish(t.spec.To)
				continue
			}
			t.tween = gween.New(*target, t.spec.To, t.spec.Duration, e.Easing)
		}
		v, finished := t.tween.Update(step)
		*target = v
		if finished {
			t.finish(v)
		}
	}
}

func (t *track) finish(v float32) {
	t.done = true
	t.expected = v
}

// Active returns the number of tracks still moving or waiting.
func (e *Engine) Active() int {
	n := 0
	for _, t := range e.tracks {
		if !t.done {
			n++
		}
	}
	return n
}

// Len returns the number of known tracks.
func (e *Engine) Len() int { return len(e.tracks) }

// Reset drops every track.
func (e *Engine) Reset() {
	e.tracks = make(map[*float32]*track)
	e.order = e.order[:0]
}
