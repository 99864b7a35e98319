package tween_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/tanema/gween/ease"

	"github.com/san-kum/dancecube/internal/tween"
)

func advance(e *tween.Engine, seconds float32, steps int) {
	dt := seconds / float32(steps)
	for i := 0; i < steps; i++ {
		e.Advance(dt)
	}
}

var _ = Describe("Engine", func() {
	var (
		e *tween.Engine
		x float32
	)

	BeforeEach(func() {
		e = tween.New()
		x = 53
	})

	It("holds the value during the delay", func() {
		Expect(e.To(&x, tween.Spec{To: 5, Duration: 1, Delay: 0.5})).To(BeTrue())
		advance(e, 0.4, 4)
		Expect(x).To(Equal(float32(53)))
		Expect(e.Active()).To(Equal(1))
	})

	It("reaches the target after delay plus duration", func() {
		e.To(&x, tween.Spec{To: 5, Duration: 1, Delay: 0.5})
		advance(e, 1.6, 16)
		Expect(x).To(Equal(float32(5)))
		Expect(e.Active()).To(BeZero())
	})

	It("moves monotonically toward the target", func() {
		e.To(&x, tween.Spec{To: 5, Duration: 1})
		prev := x
		for i := 0; i < 20; i++ {
			e.Advance(0.05)
			Expect(x).To(BeNumerically("<=", prev))
			prev = x
		}
	})

	It("does not restart when the same request is repeated", func() {
		spec := tween.Spec{To: 5, Duration: 1, Delay: 0.5}
		e.To(&x, spec)
		advance(e, 1.0, 10)
		mid := x
		Expect(mid).To(BeNumerically("<", 53))

		Expect(e.To(&x, spec)).To(BeFalse())
		e.Advance(0.1)
		Expect(x).To(BeNumerically("<", mid))
		Expect(e.Len()).To(Equal(1))
	})

	It("stays settled when re-requested after finishing", func() {
		spec := tween.Spec{To: 5, Duration: 0.5}
		e.To(&x, spec)
		advance(e, 1, 10)
		Expect(e.To(&x, spec)).To(BeFalse())
		Expect(e.Active()).To(BeZero())
	})

	It("restarts from the current value when the field was edited after settling", func() {
		spec := tween.Spec{To: 5, Duration: 0.5, Delay: 0.5}
		e.To(&x, spec)
		advance(e, 1.5, 15)
		Expect(x).To(Equal(float32(5)))

		x = 40
		Expect(e.To(&x, spec)).To(BeTrue())
		e.Advance(0.25)
		Expect(x).To(Equal(float32(40)))
		advance(e, 1, 10)
		Expect(x).To(Equal(float32(5)))
	})

	It("retargets from the current value", func() {
		e.To(&x, tween.Spec{To: 5, Duration: 1})
		advance(e, 0.5, 5)
		mid := x

		Expect(e.To(&x, tween.Spec{To: 100, Duration: 1})).To(BeTrue())
		e.Advance(0.01)
		Expect(x).To(BeNumerically(">=", mid))
		advance(e, 1, 10)
		Expect(x).To(Equal(float32(100)))
	})

	It("jumps immediately for zero duration", func() {
		e.To(&x, tween.Spec{To: 7})
		e.Advance(0.016)
		Expect(x).To(Equal(float32(7)))
	})

	It("tracks independent fields separately", func() {
		var y float32
		e.Easing = ease.Linear
		e.To(&x, tween.Spec{To: 0, Duration: 0.5})
		e.To(&y, tween.Spec{To: 10, Duration: 2})
		advance(e, 1, 10)
		Expect(x).To(Equal(float32(0)))
		Expect(y).To(BeNumerically("~", 5, 1e-4))
		Expect(e.Active()).To(Equal(1))
	})

	It("forgets every track on reset", func() {
		e.To(&x, tween.Spec{To: 0, Duration: 1})
		e.Reset()
		Expect(e.Len()).To(BeZero())
		e.Advance(1)
		Expect(x).To(Equal(float32(53)))
	})
})
