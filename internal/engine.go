package internal

import (
	"time"

	"github.com/rs/zerolog"
)

// DefaultFrameDuration is roughly one display frame at 60Hz.
const DefaultFrameDuration = 16666 * time.Microsecond

// Controller observes the start and stop of every animation registered
// within its scope.
type Controller interface {
	OnStart(a *Animation)
	OnStop(a *Animation)
}

// entry is one registered animation held by the engine.
type entry struct {
	weak       *WeakHandle
	anim       *Animation
	fn         func(*Animation)
	modify     ModifyInfo
	controller Controller
}

// Engine is the animation scheduler. One engine exists per logical thread
// (per goroutine, see GetEngine); all of its state is mutated only from
// registration calls and Update on that thread.
type Engine struct {
	log zerolog.Logger
	now func() time.Time

	pending  []*entry
	nextWake *Deadline

	importance    uint32
	currentModify ModifyInfo
	passNow       *time.Time
	controller    Controller

	// Process-wide animation configuration, exposed as ordinary observables
	// so host code changes motion behavior with plain variable writes.
	Enabled       *Var // bool
	FrameDuration *Var // time.Duration
	TimeScale     *Var // float64
}

func NewEngine() *Engine {
	e := &Engine{
		log: zerolog.Nop(),
		now: time.Now,
	}
	e.currentModify = ModifyInfo{Importance: e.nextImportance()}
	e.Enabled = e.NewVar(true)
	e.FrameDuration = e.NewVar(DefaultFrameDuration)
	e.TimeScale = e.NewVar(1.0)
	return e
}

func (e *Engine) SetLogger(log zerolog.Logger) {
	e.log = log
}

// SetClock replaces the engine's time source. Tests install a manual clock.
func (e *Engine) SetClock(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	e.now = now
}

func (e *Engine) Now() time.Time {
	return e.now()
}

// CurrentModify is the stamp applied to variable writes right now: the
// running animation's stamp inside a callback, the pre-reserved direct stamp
// otherwise.
func (e *Engine) CurrentModify() ModifyInfo {
	return e.currentModify
}

// WithController runs fn with c observing every animation registered inside.
func (e *Engine) WithController(c Controller, fn func()) {
	prev := e.controller
	e.controller = c
	defer func() { e.controller = prev }()

	fn()
}

// nextImportance advances the importance counter, skipping the never-written
// sentinel on wraparound.
func (e *Engine) nextImportance() uint32 {
	e.importance++
	if e.importance == ImportanceNever {
		e.importance = 1
	}
	return e.importance
}

// passTime returns the shared timestamp of the current update pass, stamping
// it on first use. Every animation registered within one pass starts at the
// same instant.
func (e *Engine) passTime() time.Time {
	if e.passNow == nil {
		t := e.now()
		e.passNow = &t
	}
	return *e.passNow
}

// Animate registers a per-tick callback and returns its owning handle. The
// engine keeps only a weak link, so the animation dies once every strong
// handle is released, unless Perm was called.
func (e *Engine) Animate(fn func(*Animation)) *Handle {
	now := e.passTime()

	// Nested registrations inherit the parent's rank so an animation starting
	// another animation cannot out-rank itself. Top-level registrations take
	// a fresh rank and pre-reserve the next one for direct writes, so a plain
	// set issued right after Animate always wins over the new animation.
	var imp uint32
	if e.currentModify.IsAnimation() {
		imp = e.currentModify.Importance
	} else {
		imp = e.nextImportance()
		e.currentModify = ModifyInfo{Importance: e.nextImportance()}
	}

	h := newHandle()
	weak := h.Downgrade()

	anim := &Animation{
		start:     now,
		now:       now,
		enabled:   e.Enabled.Get().(bool),
		timeScale: e.TimeScale.Get().(float64),
	}

	ctrl := e.controller
	if ctrl != nil {
		// The start hook runs outside the controller's own scope so a
		// controller starting helper animations does not observe itself.
		e.controller = nil
		ctrl.OnStart(anim)
		e.controller = ctrl
	}

	e.pending = append(e.pending, &entry{
		weak:       weak,
		anim:       anim,
		fn:         fn,
		modify:     ModifyInfo{Handle: weak, Importance: imp},
		controller: ctrl,
	})

	// Arm the wake immediately so the animation is serviced on the very next
	// tick, not one tick late.
	wake := DeadlineAt(now)
	if e.nextWake == nil || wake.Before(*e.nextWake) {
		e.nextWake = &wake
	}

	e.log.Debug().Uint32("importance", imp).Int("pending", len(e.pending)).Msg("animation registered")

	return h
}

// Update runs one scheduler tick. The host calls it once per frame with its
// timer capability. With no armed wake it returns immediately, so idle
// applications pay no per-frame cost.
func (e *Engine) Update(t Timer) {
	if e.nextWake == nil {
		return
	}
	if !t.Elapsed(*e.nextWake) {
		t.Register(*e.nextWake)
		return
	}

	now := e.now()
	e.passNow = &now
	defer func() { e.passNow = nil }()

	enabled := e.Enabled.Get().(bool)
	scale := e.TimeScale.Get().(float64)
	frame := e.FrameDuration.Get().(time.Duration)
	next := DeadlineAt(now.Add(frame))

	entries := e.pending
	e.pending = nil
	e.nextWake = nil

	retained := entries[:0]
	var min *Deadline

	for _, en := range entries {
		dl, keep := e.tick(en, now, next, enabled, scale)
		if !keep {
			continue
		}
		retained = append(retained, en)
		if min == nil || dl.Before(*min) {
			d := dl
			min = &d
		}
	}

	// Animations registered during the sweep (animations starting
	// animations) are merged in with a wake of "now" so they are serviced
	// the same pass if possible.
	if len(e.pending) > 0 {
		retained = append(retained, e.pending...)
		nowDl := DeadlineAt(now)
		if min == nil || nowDl.Before(*min) {
			min = &nowDl
		}
	}

	e.pending = retained
	if min != nil {
		e.nextWake = min
		t.Register(*min)
		e.log.Trace().Time("wake", min.Time).Int("pending", len(e.pending)).Msg("animations rearmed")
	}
}

// tick services one entry within a sweep. It returns the entry's next wake
// deadline and whether the entry is retained.
func (e *Engine) tick(en *entry, now time.Time, next Deadline, enabled bool, scale float64) (Deadline, bool) {
	h, ok := en.weak.Upgrade()
	if !ok {
		// Every owning handle is gone; the callback never runs again, but
		// the controller still observes the stop.
		e.stopHook(en)
		return Deadline{}, false
	}
	defer h.Release()

	a := en.anim
	if a.stopRequested {
		e.stopHook(en)
		return Deadline{}, false
	}

	if sl, sleeping := a.SleepDeadline(); sleeping {
		if sl.After(next) {
			// Long sleep: keep sleeping without waking every frame.
			return sl, true
		}
		if sl.Time.After(now) {
			// Due mid-frame: snap to the frame boundary instead of firing
			// between frames, keeping the animation phase aligned.
			return next, true
		}
	}

	a.prepare(now, enabled, scale)

	prevModify := e.currentModify
	prevCtrl := e.controller
	e.currentModify = en.modify
	e.controller = en.controller
	func() {
		defer func() {
			e.currentModify = prevModify
			e.controller = prevCtrl
		}()
		en.fn(a)
	}()

	if a.stopRequested {
		e.stopHook(en)
		return Deadline{}, false
	}
	if sl, sleeping := a.SleepDeadline(); sleeping {
		return sl, true
	}

	// Retain for at least one more frame; a stop or sleep requested from
	// outside during this tick is honored starting next tick.
	return next, true
}

// stopHook retires an entry: the handle record is force-stopped so remaining
// strong handles report IsStopped, and the controller observes the stop.
func (e *Engine) stopHook(en *entry) {
	en.weak.markStopped()
	e.log.Debug().Msg("animation stopped")

	if en.controller == nil {
		return
	}
	prev := e.controller
	e.controller = nil
	en.controller.OnStop(en.anim)
	e.controller = prev
}

// NextWake returns the armed wake deadline, if any.
func (e *Engine) NextWake() (Deadline, bool) {
	if e.nextWake == nil {
		return Deadline{}, false
	}
	return *e.nextWake, true
}

// PendingCount returns the number of registered animations awaiting service.
func (e *Engine) PendingCount() int {
	return len(e.pending)
}
