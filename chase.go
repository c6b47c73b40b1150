package anim

import "time"

// ChaseAnimation keeps a transition following a target value that may change
// mid-flight. Retargeting replaces the running animation with one starting
// at the variable's current value, so the motion never jumps.
type ChaseAnimation[T Number] struct {
	v      *Var[T]
	target T
	dur    time.Duration
	easing Easing

	bounded  bool
	min, max T

	handle AnimationHandle
}

// Chase eases v toward target and keeps following it through Reset and Add.
func Chase[T Number](v *Var[T], target T, d time.Duration, easing Easing) *ChaseAnimation[T] {
	c := &ChaseAnimation[T]{v: v, target: target, dur: d, easing: easing}
	c.handle = c.start()
	return c
}

// ChaseBounded is Chase constrained to [min, max]. When a retarget would
// drive the unclamped linear trajectory out of bounds, the animation snaps to
// the bound and stops the moment the trajectory crosses it, so the value
// never overshoots.
func ChaseBounded[T Number](v *Var[T], target T, d time.Duration, easing Easing, min, max T) *ChaseAnimation[T] {
	c := &ChaseAnimation[T]{v: v, target: target, dur: d, easing: easing, bounded: true, min: min, max: max}
	c.handle = c.start()
	return c
}

// Target returns the current chase target.
func (c *ChaseAnimation[T]) Target() T { return c.target }

// Handle returns the handle of the in-flight animation.
func (c *ChaseAnimation[T]) Handle() AnimationHandle { return c.handle }

// Reset retargets the chase. The in-flight animation is torn down and a new
// one starts from the variable's current value with a fresh clock. If the
// previous animation already stopped this resynchronizes the start to the
// variable, not to the stale cached target.
func (c *ChaseAnimation[T]) Reset(target T) {
	c.handle.Stop()
	c.target = target
	c.handle = c.start()
}

// Add retargets the chase by an increment.
func (c *ChaseAnimation[T]) Add(delta T) {
	c.Reset(c.target + delta)
}

// Stop tears down the in-flight animation.
func (c *ChaseAnimation[T]) Stop() {
	c.handle.Stop()
}

func (c *ChaseAnimation[T]) start() AnimationHandle {
	if c.v == nil || c.v.IsReadOnly() {
		return DummyHandle()
	}

	tr := NewTransition(c.v.Get(), c.target, LerpNumber[T])

	if !c.bounded {
		return Animate(func(a *Animation) {
			f := a.ElapsedStop(c.dur)
			if !c.v.Set(tr.Sample(c.easing(f))) {
				a.Stop()
			}
		})
	}

	// Predicted once per retarget: does the unclamped linear trajectory end
	// outside the bounds, and past which one?
	escapesHigh := c.target > c.max
	escapesLow := c.target < c.min

	return Animate(func(a *Animation) {
		f := a.ElapsedStop(c.dur)

		if escapesHigh || escapesLow {
			lin := tr.Sample(f)
			if escapesHigh && lin >= c.max {
				c.v.Set(c.max)
				a.Stop()
				return
			}
			if escapesLow && lin <= c.min {
				c.v.Set(c.min)
				a.Stop()
				return
			}
		}

		value := tr.Sample(c.easing(f))
		if value > c.max {
			value = c.max
		} else if value < c.min {
			value = c.min
		}
		if !c.v.Set(value) {
			a.Stop()
		}
	})
}
