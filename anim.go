// Package anim is a cooperative, frame-synchronized animation scheduler for
// observable variables. Animations are per-tick callbacks registered with
// Animate and driven by the host's update loop through UpdateAnimations;
// write conflicts between animations and direct sets are resolved by a
// monotonic importance rank stamped on every write.
//
// All scheduling is single-threaded: the engine is bound to the goroutine
// that uses it, callbacks run one at a time inside a tick, and the only
// suspension is sleeping until a future tick.
package anim

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/tdaron/anim/internal"
)

// Easing maps normalized progress to an interpolation step, both in [0, 1].
// The curves in github.com/fogleman/ease satisfy this signature.
type Easing func(t float64) float64

// Linear is the identity easing.
func Linear(t float64) float64 { return t }

// Deadline is the earliest instant at which a sleeping animation should be
// re-evaluated.
type Deadline = internal.Deadline

// Timer is the wake capability the host update loop passes to
// UpdateAnimations.
type Timer = internal.Timer

// LoopTimer is a ready-made Timer for hosts and tests.
type LoopTimer = internal.LoopTimer

func NewLoopTimer(now func() time.Time) *LoopTimer {
	return internal.NewLoopTimer(now)
}

func DeadlineAt(t time.Time) Deadline {
	return internal.DeadlineAt(t)
}

// Animation is the context handed to a running animation callback.
type Animation struct {
	a *internal.Animation
}

// Elapsed returns the normalized progress in [0, 1] of a run of duration d.
// With animations disabled and no ForceEnable it returns 1 immediately.
func (a *Animation) Elapsed(d time.Duration) float64 { return a.a.Elapsed(d) }

// ElapsedStop is Elapsed, stopping the animation once progress reaches 1.
func (a *Animation) ElapsedStop(d time.Duration) float64 { return a.a.ElapsedStop(d) }

// ElapsedRestart is Elapsed, restarting once progress reaches 1.
func (a *Animation) ElapsedRestart(d time.Duration) float64 { return a.a.ElapsedRestart(d) }

// ElapsedRestartStop restarts until the restart counter reaches maxRestarts,
// then stops.
func (a *Animation) ElapsedRestartStop(d time.Duration, maxRestarts int) float64 {
	return a.a.ElapsedRestartStop(d, maxRestarts)
}

// ElapsedDur is the raw time since start or the last restart, unscaled.
func (a *Animation) ElapsedDur() time.Duration { return a.a.ElapsedDur() }

// Sleep defers the next invocation until at least d from now without
// stopping the animation.
func (a *Animation) Sleep(d time.Duration) { a.a.Sleep(d) }

// Stop requests termination, honored by the scheduler after the current
// callback returns.
func (a *Animation) Stop() { a.a.Stop() }

// Restart rewinds the animation clock and bumps RestartCount.
func (a *Animation) Restart() { a.a.Restart() }

func (a *Animation) RestartCount() int    { return a.a.RestartCount() }
func (a *Animation) Now() time.Time       { return a.a.Now() }
func (a *Animation) StartTime() time.Time { return a.a.StartTime() }

// ForceEnable keeps this animation animating under the reduce-motion toggle.
func (a *Animation) ForceEnable() { a.a.ForceEnable() }

func (a *Animation) AnimationsEnabled() bool { return a.a.AnimationsEnabled() }
func (a *Animation) TimeScale() float64      { return a.a.TimeScale() }

// AnimationHandle owns a running animation. The animation keeps running
// while at least one strong handle exists; Perm detaches it from its
// handles and Stop force-terminates it.
type AnimationHandle struct {
	h *internal.Handle
}

// DummyHandle returns an inert, already-stopped handle. Animating a
// read-only or dead variable yields one.
func DummyHandle() AnimationHandle {
	return AnimationHandle{internal.Dummy()}
}

// Clone returns a new strong handle to the same animation.
func (h AnimationHandle) Clone() AnimationHandle { return AnimationHandle{h.h.Clone()} }

// Release drops this strong reference; releasing the last one stops the
// animation on its next scheduled tick. Idempotent.
func (h AnimationHandle) Release() { h.h.Release() }

// Perm lets the animation outlive every strong handle.
func (h AnimationHandle) Perm() { h.h.Perm() }

// Stop force-terminates the animation regardless of other handles.
func (h AnimationHandle) Stop() { h.h.Stop() }

func (h AnimationHandle) IsStopped() bool { return h.h.IsStopped() }

func (h AnimationHandle) Downgrade() WeakAnimationHandle {
	return WeakAnimationHandle{h.h.Downgrade()}
}

// WeakAnimationHandle is a non-owning observer of an animation's liveness.
type WeakAnimationHandle struct {
	w *internal.WeakHandle
}

// Upgrade returns a new strong handle if the animation is still live. The
// caller owns it and must Release it.
func (w WeakAnimationHandle) Upgrade() (AnimationHandle, bool) {
	h, ok := w.w.Upgrade()
	if !ok {
		return AnimationHandle{}, false
	}
	return AnimationHandle{h}, true
}

func (w WeakAnimationHandle) Alive() bool { return w.w.Alive() }

// Animate registers a per-tick animation callback and returns its owning
// handle. Animations registered within the same update pass share one start
// timestamp and stay synchronized.
func Animate(fn func(*Animation)) AnimationHandle {
	wrap := &Animation{}
	h := internal.GetEngine().Animate(func(a *internal.Animation) {
		wrap.a = a
		fn(wrap)
	})
	return AnimationHandle{h}
}

// UpdateAnimations runs one scheduler tick. The host calls it once per frame
// with its timer capability; with no animation running it is a no-op.
func UpdateAnimations(t Timer) {
	internal.GetEngine().Update(t)
}

// AnimationsEnabled is the process-wide motion toggle, an ordinary
// observable. Write false to honor a reduce-motion preference: running
// animations skip straight to their final state.
func AnimationsEnabled() *Var[bool] {
	return &Var[bool]{internal.GetEngine().Enabled}
}

// FrameDuration is the scheduler's frame period observable.
func FrameDuration() *Var[time.Duration] {
	return &Var[time.Duration]{internal.GetEngine().FrameDuration}
}

// TimeScale is the process-wide animation speed factor observable.
func TimeScale() *Var[float64] {
	return &Var[float64]{internal.GetEngine().TimeScale}
}

// SetLogger installs a structured logger on the engine. The default discards
// everything.
func SetLogger(log zerolog.Logger) {
	internal.GetEngine().SetLogger(log)
}

// SetClock replaces the engine's monotonic time source, normally supplied by
// the host. Tests install a manual clock.
func SetClock(now func() time.Time) {
	internal.GetEngine().SetClock(now)
}
