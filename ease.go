package anim

import "time"

// Ease animates v from its current value to `to` over duration d, easing the
// interpolation with the given curve. Animating a nil or read-only variable
// is a no-op returning a dummy handle.
//
// The animation self-stops if a write is rejected, which happens when the
// variable was since modified by a source with a newer rank (a direct set or
// a newer animation).
func Ease[T any](v *Var[T], to T, d time.Duration, easing Easing, lerp Lerp[T]) AnimationHandle {
	if v == nil || v.IsReadOnly() {
		return DummyHandle()
	}

	tr := NewTransition(v.Get(), to, lerp)
	return Animate(func(a *Animation) {
		f := a.ElapsedStop(d)
		if !v.Set(tr.Sample(easing(f))) {
			a.Stop()
		}
	})
}

// EaseKeyed animates v through the given keyframes over duration d.
func EaseKeyed[T any](v *Var[T], d time.Duration, easing Easing, lerp Lerp[T], keys ...Key[T]) AnimationHandle {
	if v == nil || v.IsReadOnly() {
		return DummyHandle()
	}

	tr := NewTransitionKeyed(lerp, keys...)
	return Animate(func(a *Animation) {
		f := a.ElapsedStop(d)
		if !v.Set(tr.Sample(easing(f))) {
			a.Stop()
		}
	})
}

// Step sets v to `to` once, after the delay.
func Step[T any](v *Var[T], to T, delay time.Duration) AnimationHandle {
	if v == nil || v.IsReadOnly() {
		return DummyHandle()
	}

	return Animate(func(a *Animation) {
		if a.Elapsed(delay) < 1 {
			a.Sleep(delay - a.Now().Sub(a.StartTime()))
			return
		}
		v.Set(to)
		a.Stop()
	})
}

// Steps applies each keyframe's value at its point of the run without
// interpolating between them.
func Steps[T any](v *Var[T], d time.Duration, easing Easing, keys ...Key[T]) AnimationHandle {
	if v == nil || v.IsReadOnly() {
		return DummyHandle()
	}

	tr := NewTransitionKeyed[T](nil, keys...)
	return Animate(func(a *Animation) {
		f := a.ElapsedStop(d)
		if !v.Set(tr.SampleDiscrete(easing(f))) {
			a.Stop()
		}
	})
}
