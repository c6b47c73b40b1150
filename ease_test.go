package anim

import (
	"testing"
	"time"

	"github.com/fogleman/ease"
	"github.com/stretchr/testify/assert"
)

func TestEase(t *testing.T) {
	t.Run("eased progress follows the curve", func(t *testing.T) {
		h := newHarness()
		v := NewVar(0.0)

		handle := Ease(v, 100.0, time.Second, ease.InQuad, LerpNumber[float64])
		defer handle.Release()

		h.step(0)
		h.step(500 * time.Millisecond)
		assert.InDelta(t, 25.0, v.Get(), 1e-9) // InQuad(0.5) == 0.25
	})

	t.Run("keyed ease passes through its keyframes", func(t *testing.T) {
		h := newHarness()
		v := NewVar(0.0)

		handle := EaseKeyed(v, time.Second, Linear, LerpNumber[float64],
			Key[float64]{Step: 0, Value: 0},
			Key[float64]{Step: 0.5, Value: 100},
			Key[float64]{Step: 1, Value: 20},
		)
		defer handle.Release()

		h.step(0)
		h.step(250 * time.Millisecond)
		assert.InDelta(t, 50.0, v.Get(), 1e-9)

		h.step(250 * time.Millisecond)
		assert.InDelta(t, 100.0, v.Get(), 1e-9)

		h.step(500 * time.Millisecond)
		assert.Equal(t, 20.0, v.Get())
		assert.True(t, handle.IsStopped())
	})
}

func TestStep(t *testing.T) {
	t.Run("applies the value once after the delay", func(t *testing.T) {
		h := newHarness()
		v := NewVar(0)

		handle := Step(v, 9, 50*time.Millisecond)
		defer handle.Release()

		h.step(0)
		assert.Equal(t, 0, v.Get())

		h.step(30 * time.Millisecond)
		assert.Equal(t, 0, v.Get()) // still sleeping

		h.step(36 * time.Millisecond)
		assert.Equal(t, 9, v.Get())
		assert.True(t, handle.IsStopped())
	})
}

func TestSteps(t *testing.T) {
	t.Run("applies keyframe values without interpolating", func(t *testing.T) {
		h := newHarness()
		v := NewVar("start")

		handle := Steps(v, time.Second, Linear,
			Key[string]{Step: 0, Value: "a"},
			Key[string]{Step: 0.5, Value: "b"},
			Key[string]{Step: 1, Value: "c"},
		)
		defer handle.Release()

		h.step(0)
		assert.Equal(t, "a", v.Get())

		h.step(250 * time.Millisecond)
		assert.Equal(t, "a", v.Get())

		h.step(350 * time.Millisecond)
		assert.Equal(t, "b", v.Get())

		h.step(400 * time.Millisecond)
		assert.Equal(t, "c", v.Get())
		assert.True(t, handle.IsStopped())
	})
}
