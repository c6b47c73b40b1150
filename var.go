package anim

import (
	"weak"

	"github.com/tdaron/anim/internal"
)

func as[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}

	return v.(T)
}

// Var is an observable variable that animations and direct sets mutate
// through the engine's importance discipline.
type Var[T any] struct {
	v *internal.Var
}

func NewVar[T any](initial T) *Var[T] {
	return &Var[T]{internal.GetEngine().NewVar(initial)}
}

func (v *Var[T]) Get() T {
	return as[T](v.v.Get())
}

// Set writes a new value and reports whether the write was accepted. Inside
// an animation callback the write carries the animation's rank; everywhere
// else it carries a rank above every running animation, so a direct set
// always overrides them.
func (v *Var[T]) Set(value T) bool {
	return v.v.Set(value)
}

// Modify rewrites the value in place under the same acceptance rule as Set.
func (v *Var[T]) Modify(fn func(T) T) bool {
	return v.v.Modify(func(old any) any {
		return fn(as[T](old))
	})
}

// OnChange subscribes to accepted writes. The returned function removes the
// subscription.
func (v *Var[T]) OnChange(fn func(T)) func() {
	return v.v.OnChange(func(value any) {
		fn(as[T](value))
	})
}

// SetReadOnly permanently rejects all further writes. Animating a read-only
// variable is a no-op returning a dummy handle.
func (v *Var[T]) SetReadOnly() { v.v.SetReadOnly() }

func (v *Var[T]) IsReadOnly() bool { return v.v.IsReadOnly() }

// Downgrade returns a non-owning reference to the variable.
func (v *Var[T]) Downgrade() WeakVar[T] {
	return WeakVar[T]{weak.Make(v.v)}
}

// WeakVar is a non-owning reference to a Var; Upgrade fails once the
// variable is garbage.
type WeakVar[T any] struct {
	p weak.Pointer[internal.Var]
}

func (w WeakVar[T]) Upgrade() (*Var[T], bool) {
	v := w.p.Value()
	if v == nil {
		return nil, false
	}
	return &Var[T]{v}, true
}
