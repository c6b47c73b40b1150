package anim

import "github.com/tdaron/anim/internal"

// Controller observes the start and stop of every animation registered
// within a WithController scope. The start hook runs outside the scope, so a
// controller starting helper animations of its own does not observe itself.
type Controller interface {
	OnStart(a *Animation)
	OnStop(a *Animation)
}

// WithController runs fn with c observing every Animate call inside it.
// Animation callbacks registered within the scope also run inside it, so
// animations they start are observed too.
func WithController(c Controller, fn func()) {
	internal.GetEngine().WithController(controllerAdapter{c}, fn)
}

type controllerAdapter struct {
	c Controller
}

func (ad controllerAdapter) OnStart(a *internal.Animation) { ad.c.OnStart(&Animation{a}) }
func (ad controllerAdapter) OnStop(a *internal.Animation)  { ad.c.OnStop(&Animation{a}) }

// ForceAnimations is a Controller that force-enables every animation in its
// scope, overriding the reduce-motion toggle. Animations a forced animation
// starts are not force-enabled in turn; they re-read the toggle themselves.
var ForceAnimations Controller = forceAnimations{}

type forceAnimations struct{}

func (forceAnimations) OnStart(a *Animation) { a.ForceEnable() }
func (forceAnimations) OnStop(*Animation)    {}
