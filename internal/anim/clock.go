package anim

import "time"

// Clock reports monotonic seconds since the animation started.
type Clock interface {
	Elapsed() float64
}

// WallClock starts counting on its first reading.
type WallClock struct {
	start time.Time
}

func NewWallClock() *WallClock { return &WallClock{} }

func (c *WallClock) Elapsed() float64 {
	if c.start.IsZero() {
		c.start = time.Now()
	}
	return time.Since(c.start).Seconds()
}

// StepClock advances by a fixed step on every reading. Headless runs use it
// to replay frames at a nominal rate.
type StepClock struct {
	Step float64
	t    float64
	read bool
}

func NewStepClock(fps int) *StepClock {
	if fps <= 0 {
		fps = 60
	}
	return &StepClock{Step: 1 / float64(fps)}
}

func (c *StepClock) Elapsed() float64 {
	if c.read {
		c.t += c.Step
	}
	c.read = true
	return c.t
}
