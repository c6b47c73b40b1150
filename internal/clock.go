package internal

import "time"

// Deadline is the earliest instant at which a sleeping animation must be
// re-evaluated.
type Deadline struct {
	Time time.Time
}

func DeadlineAt(t time.Time) Deadline {
	return Deadline{Time: t}
}

func (d Deadline) After(o Deadline) bool {
	return d.Time.After(o.Time)
}

func (d Deadline) Before(o Deadline) bool {
	return d.Time.Before(o.Time)
}

// Min returns the earlier of the two deadlines.
func (d Deadline) Min(o Deadline) Deadline {
	if o.Time.Before(d.Time) {
		return o
	}
	return d
}

// Timer is the wake capability the host update loop hands to Engine.Update.
type Timer interface {
	// Elapsed reports whether the deadline is due.
	Elapsed(d Deadline) bool

	// Register asks the host to schedule a future update at the deadline.
	Register(d Deadline)
}

// LoopTimer is a ready-made Timer that tracks the nearest registered deadline
// against a clock. Hosts poll Next between frames to decide when to call
// Update again; tests drive it with a manual clock.
type LoopTimer struct {
	now  func() time.Time
	next *Deadline
}

func NewLoopTimer(now func() time.Time) *LoopTimer {
	if now == nil {
		now = time.Now
	}
	return &LoopTimer{now: now}
}

func (t *LoopTimer) Elapsed(d Deadline) bool {
	return !t.now().Before(d.Time)
}

func (t *LoopTimer) Register(d Deadline) {
	if t.next == nil || d.Before(*t.next) {
		next := d
		t.next = &next
	}
}

// Next returns the nearest registered deadline and clears it.
func (t *LoopTimer) Next() (Deadline, bool) {
	if t.next == nil {
		return Deadline{}, false
	}
	d := *t.next
	t.next = nil
	return d, true
}
