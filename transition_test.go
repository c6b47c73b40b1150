package anim

import (
	"testing"

	"github.com/fogleman/ease"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
)

func TestTransition(t *testing.T) {
	t.Run("samples the lerp", func(t *testing.T) {
		tr := NewTransition(0.0, 10.0, LerpNumber[float64])

		assert.Equal(t, 0.0, tr.Sample(0))
		assert.Equal(t, 5.0, tr.Sample(0.5))
		assert.Equal(t, 10.0, tr.Sample(1))
	})

	t.Run("integer lerp goes through float arithmetic", func(t *testing.T) {
		tr := NewTransition(0, 100, LerpNumber[int])
		assert.Equal(t, 25, tr.Sample(0.25))

		down := NewTransition(uint8(200), uint8(100), LerpNumber[uint8])
		assert.Equal(t, uint8(150), down.Sample(0.5))
	})

	t.Run("color lerp blends in HCL", func(t *testing.T) {
		red := colorful.Color{R: 1}
		blue := colorful.Color{B: 1}
		tr := NewTransition(red, blue, LerpColor)

		at0 := tr.Sample(0)
		assert.InDelta(t, red.R, at0.R, 1e-6)
		assert.InDelta(t, red.B, at0.B, 1e-6)

		at1 := tr.Sample(1)
		assert.InDelta(t, blue.B, at1.B, 1e-6)
	})

	t.Run("custom lerpable type", func(t *testing.T) {
		tr := NewTransition(vec{0, 0}, vec{10, 20}, LerpOf[vec])
		assert.Equal(t, vec{5, 10}, tr.Sample(0.5))
	})

	t.Run("composes with easing curves", func(t *testing.T) {
		tr := NewTransition(0.0, 100.0, LerpNumber[float64])
		assert.InDelta(t, 25.0, tr.Sample(ease.InQuad(0.5)), 1e-9)
	})
}

type vec struct {
	X, Y float64
}

func (v vec) Lerp(to vec, step float64) vec {
	return vec{
		X: v.X + (to.X-v.X)*step,
		Y: v.Y + (to.Y-v.Y)*step,
	}
}

func TestTransitionKeyed(t *testing.T) {
	keys := func() []Key[float64] {
		return []Key[float64]{
			{Step: 0, Value: 0},
			{Step: 0.5, Value: 10},
			{Step: 1, Value: 20},
		}
	}

	t.Run("clamps before the first key and after the last", func(t *testing.T) {
		tr := NewTransitionKeyed(LerpNumber[float64], keys()...)

		assert.Equal(t, 0.0, tr.Sample(-1))
		assert.Equal(t, 20.0, tr.Sample(2))
	})

	t.Run("interpolates between the bracketing keys", func(t *testing.T) {
		tr := NewTransitionKeyed(LerpNumber[float64], keys()...)

		assert.Equal(t, 5.0, tr.Sample(0.25))
		assert.Equal(t, 10.0, tr.Sample(0.5))
		assert.Equal(t, 15.0, tr.Sample(0.75))
	})

	t.Run("out-of-order keys clamp to the previous step", func(t *testing.T) {
		tr := NewTransitionKeyed(LerpNumber[float64],
			Key[float64]{Step: 0, Value: 0},
			Key[float64]{Step: 0.6, Value: 10},
			Key[float64]{Step: 0.3, Value: 20}, // corrected to 0.6
		)

		assert.Equal(t, 20.0, tr.Sample(0.7))
		assert.Equal(t, 20.0, tr.Sample(0.6))
	})

	t.Run("sampling is pure", func(t *testing.T) {
		tr := NewTransitionKeyed(LerpNumber[float64], keys()...)

		for _, step := range []float64{-0.5, 0, 0.1, 0.25, 0.5, 0.77, 1, 1.5} {
			assert.Equal(t, tr.Sample(step), tr.Sample(step))
		}
	})

	t.Run("empty transition samples the zero value", func(t *testing.T) {
		tr := NewTransitionKeyed[float64](LerpNumber[float64])
		assert.Equal(t, 0.0, tr.Sample(0.5))
	})

	t.Run("discrete sampling holds the last passed key", func(t *testing.T) {
		tr := NewTransitionKeyed(LerpNumber[float64], keys()...)

		assert.Equal(t, 0.0, tr.SampleDiscrete(0.25))
		assert.Equal(t, 10.0, tr.SampleDiscrete(0.5))
		assert.Equal(t, 10.0, tr.SampleDiscrete(0.9))
		assert.Equal(t, 20.0, tr.SampleDiscrete(1))
	})
}
