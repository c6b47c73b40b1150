package internal

// handleRecord is the liveness state shared between every strong and weak
// handle of one animation, and the engine-held closure.
//
// States: live (default), permanent (Perm), stopped (Stop or last strong
// handle released). Stopped is terminal.
type handleRecord struct {
	strong    int
	permanent bool
	stopped   bool
}

// Handle is a strong, owning reference to a running animation. The animation
// keeps running while at least one strong handle exists, or forever after
// Perm, until it self-stops or Stop is called.
type Handle struct {
	rec      *handleRecord
	released bool
}

func newHandle() *Handle {
	return &Handle{rec: &handleRecord{strong: 1}}
}

// Dummy returns an inert handle in the stopped state. It is what you get when
// animating a target that cannot be animated (read-only or dead variable).
func Dummy() *Handle {
	return &Handle{rec: &handleRecord{stopped: true}, released: true}
}

// Clone returns a new strong handle to the same animation.
func (h *Handle) Clone() *Handle {
	h.rec.strong++
	return &Handle{rec: h.rec}
}

// Release drops this strong reference. Releasing the last strong handle of a
// non-permanent animation stops it. Release is idempotent per handle value.
func (h *Handle) Release() {
	if h.released {
		return
	}
	h.released = true
	h.rec.strong--
	if h.rec.strong <= 0 && !h.rec.permanent {
		h.rec.stopped = true
	}
}

// Perm detaches the animation's lifetime from its handles. After Perm the
// animation runs until it self-stops or Stop is called, even with every
// strong handle released.
func (h *Handle) Perm() {
	if !h.rec.stopped {
		h.rec.permanent = true
	}
}

// Stop force-terminates the animation regardless of other strong handles or
// Perm. Idempotent.
func (h *Handle) Stop() {
	h.rec.stopped = true
}

func (h *Handle) IsStopped() bool {
	return h.rec.stopped
}

func (h *Handle) Downgrade() *WeakHandle {
	return &WeakHandle{rec: h.rec}
}

// WeakHandle is a non-owning observer of an animation's liveness.
type WeakHandle struct {
	rec *handleRecord
}

// Upgrade returns a new strong handle if the animation is still live. The
// caller owns the returned handle and must Release it.
func (w *WeakHandle) Upgrade() (*Handle, bool) {
	if !w.Alive() {
		return nil, false
	}
	w.rec.strong++
	return &Handle{rec: w.rec}, true
}

func (w *WeakHandle) Alive() bool {
	if w == nil || w.rec == nil || w.rec.stopped {
		return false
	}
	return w.rec.strong > 0 || w.rec.permanent
}

// markStopped is the engine-side force drop, used when an entry is retired
// from the pending list. After it, upgrades fail and IsStopped reports true
// on every remaining strong handle.
func (w *WeakHandle) markStopped() {
	if w != nil && w.rec != nil {
		w.rec.stopped = true
	}
}

// same reports whether two weak handles observe the same live animation.
func (w *WeakHandle) same(o *WeakHandle) bool {
	return w != nil && o != nil && w.Alive() && w.rec == o.rec
}
