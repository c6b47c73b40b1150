package anim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestImportance(t *testing.T) {
	t.Run("direct set after animate always wins", func(t *testing.T) {
		h := newHarness()
		v := NewVar(0)

		handle := Ease(v, 100, time.Second, Linear, LerpNumber[int])
		v.Set(42)

		h.step(0)
		assert.Equal(t, 42, v.Get())
		assert.True(t, handle.IsStopped()) // persistent rejection self-stops
	})

	t.Run("newer animation outranks an older one", func(t *testing.T) {
		h := newHarness()
		v := NewVar(0)

		old := Animate(func(a *Animation) {
			if !v.Set(1) {
				a.Stop()
			}
		})
		newer := Animate(func(a *Animation) { v.Set(2) })
		defer old.Release()
		defer newer.Release()

		h.step(0)
		assert.Equal(t, 2, v.Get())

		// The older animation's next write is rejected and it self-stops.
		h.step(16 * time.Millisecond)
		assert.Equal(t, 2, v.Get())
		assert.True(t, old.IsStopped())
		assert.False(t, newer.IsStopped())
	})

	t.Run("animation started after a direct set outranks it", func(t *testing.T) {
		h := newHarness()
		v := NewVar(0)

		v.Set(42)
		handle := Ease(v, 100, time.Second, Linear, LerpNumber[int])
		defer handle.Release()

		h.step(0)
		assert.Equal(t, 42, v.Get()) // transition starts at the set value

		h.step(time.Second)
		assert.Equal(t, 100, v.Get())
	})

	t.Run("second write within the same tick still applies", func(t *testing.T) {
		h := newHarness()
		v := NewVar(0)

		handle := Animate(func(a *Animation) {
			assert.True(t, v.Set(1))
			assert.True(t, v.Set(2)) // equal rank, accepted
			a.Stop()
		})
		defer handle.Release()

		h.step(0)
		assert.Equal(t, 2, v.Get())
	})

	t.Run("nested animation shares its parent's rank", func(t *testing.T) {
		h := newHarness()
		v := NewVar(0)

		var inner AnimationHandle
		outer := Animate(func(a *Animation) {
			v.Set(1)
			if inner == (AnimationHandle{}) {
				inner = Animate(func(ia *Animation) {
					// same rank as the parent: accepted over its writes
					assert.True(t, v.Set(10))
					ia.Stop()
				})
			}
			a.Stop()
		})
		defer outer.Release()
		defer inner.Release()

		h.step(0)
		h.step(0)
		assert.Equal(t, 10, v.Get())
	})
}
