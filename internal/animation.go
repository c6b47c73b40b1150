package internal

import "time"

// Animation is the per-run context handed to an animation callback on every
// tick. One context is allocated per registration and refreshed in place by
// the engine before each invocation.
type Animation struct {
	start        time.Time
	now          time.Time
	restartCount int

	stopRequested bool
	sleepUntil    *Deadline

	enabled      bool
	forceEnabled bool
	timeScale    float64
}

// Now is the tick timestamp. All animations running in the same tick observe
// the same value, which keeps co-started animations bit-for-bit synchronized.
func (a *Animation) Now() time.Time { return a.now }

// StartTime is when the animation started or last restarted.
func (a *Animation) StartTime() time.Time { return a.start }

// RestartCount is the number of times Restart ran.
func (a *Animation) RestartCount() int { return a.restartCount }

// Stop requests termination. The request is one-way and honored by the engine
// after the current callback returns.
func (a *Animation) Stop() { a.stopRequested = true }

func (a *Animation) StopRequested() bool { return a.stopRequested }

// Restart rewinds the animation clock to the current tick and bumps the
// restart counter. Looping animations are built from this.
func (a *Animation) Restart() {
	a.start = a.now
	a.restartCount++
}

// ElapsedDur is the raw time since start or the last restart, unscaled.
func (a *Animation) ElapsedDur() time.Duration {
	return a.now.Sub(a.start)
}

// Sleep defers the next invocation until at least d from the tick timestamp.
// The animation is not stopped.
func (a *Animation) Sleep(d time.Duration) {
	dl := DeadlineAt(a.now.Add(d))
	a.sleepUntil = &dl
}

func (a *Animation) SleepDeadline() (Deadline, bool) {
	if a.sleepUntil == nil {
		return Deadline{}, false
	}
	return *a.sleepUntil, true
}

// ForceEnable overrides the process-wide animations-enabled toggle for this
// animation only. Controllers use it to keep must-run animations (for example
// a chase that must land on its target) going under reduced motion.
//
// Nested animations started from this animation's callback do not inherit the
// override.
func (a *Animation) ForceEnable() { a.forceEnabled = true }

// AnimationsEnabled reports whether this animation animates, honoring both
// the process toggle and ForceEnable.
func (a *Animation) AnimationsEnabled() bool {
	return a.enabled || a.forceEnabled
}

// TimeScale is the engine time-scale snapshot for this tick.
func (a *Animation) TimeScale() float64 { return a.timeScale }

// Elapsed returns the normalized progress in [0, 1] of a run of duration d.
// With animations disabled (and no ForceEnable) it returns 1 immediately so
// the target lands in its final state; this is where the system reduce-motion
// preference is honored.
func (a *Animation) Elapsed(d time.Duration) float64 {
	if !a.enabled && !a.forceEnabled {
		return 1
	}
	if d <= 0 {
		return 1
	}
	f := a.now.Sub(a.start).Seconds() * a.timeScale / d.Seconds()
	if f <= 0 {
		return 0
	}
	if f >= 1 {
		return 1
	}
	return f
}

// ElapsedStop is Elapsed, stopping the animation once progress reaches 1.
func (a *Animation) ElapsedStop(d time.Duration) float64 {
	f := a.Elapsed(d)
	if f >= 1 {
		a.Stop()
	}
	return f
}

// ElapsedRestart is Elapsed, restarting once progress reaches 1. Oscillating
// and looping animations are one-shot runs chained with this.
func (a *Animation) ElapsedRestart(d time.Duration) float64 {
	f := a.Elapsed(d)
	if f >= 1 {
		a.Restart()
	}
	return f
}

// ElapsedRestartStop restarts at the end of each run until RestartCount
// reaches maxRestarts, then stops. maxRestarts restarts make maxRestarts+1
// runs in total.
func (a *Animation) ElapsedRestartStop(d time.Duration, maxRestarts int) float64 {
	f := a.Elapsed(d)
	if f >= 1 {
		if a.restartCount < maxRestarts {
			a.Restart()
		} else {
			a.Stop()
		}
	}
	return f
}

// prepare refreshes the transient per-tick state before the callback runs.
// ForceEnable is sticky across ticks; the sleep request is not.
func (a *Animation) prepare(now time.Time, enabled bool, timeScale float64) {
	a.now = now
	a.enabled = enabled
	a.timeScale = timeScale
	a.sleepUntil = nil
}
