package internal

// Var is the untyped observable-variable core. The typed facade in the root
// package wraps it.
//
// Every write flows through the engine's current ModifyInfo and is accepted
// only if its importance is >= the importance of the last accepted write.
// Rejected writes are silently dropped; nothing in the write path errors.
type Var struct {
	engine *Engine

	value any
	last  ModifyInfo

	readOnly bool

	subs    map[int]func(any)
	nextSub int
}

func (e *Engine) NewVar(initial any) *Var {
	return &Var{
		engine: e,
		value:  initial,
		last:   ModifyInfo{Importance: ImportanceNever},
	}
}

func (v *Var) Get() any {
	return v.value
}

// Set writes a new value through the importance discipline and reports
// whether the write was accepted.
func (v *Var) Set(value any) bool {
	return v.Modify(func(any) any { return value })
}

// Modify rewrites the value in place through the importance discipline.
func (v *Var) Modify(fn func(any) any) bool {
	if v.readOnly {
		return false
	}

	info := v.engine.CurrentModify()
	if !info.CanModify(v.last) {
		return false
	}

	v.value = fn(v.value)
	v.last = info

	for _, sub := range v.subs {
		sub(v.value)
	}

	return true
}

// OnChange subscribes to accepted writes. The returned function removes the
// subscription.
func (v *Var) OnChange(fn func(any)) func() {
	if v.subs == nil {
		v.subs = make(map[int]func(any))
	}
	id := v.nextSub
	v.nextSub++
	v.subs[id] = fn

	return func() { delete(v.subs, id) }
}

// SetReadOnly permanently rejects all further writes. Animating a read-only
// variable yields an inert dummy handle.
func (v *Var) SetReadOnly() {
	v.readOnly = true
}

func (v *Var) IsReadOnly() bool {
	return v.readOnly
}

// LastModify returns the stamp of the last accepted write.
func (v *Var) LastModify() ModifyInfo {
	return v.last
}

func (v *Var) Engine() *Engine {
	return v.engine
}
