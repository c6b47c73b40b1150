//go:build !wasm

package internal

import (
	"sync"

	"github.com/petermattis/goid"
)

var engines sync.Map

// GetEngine returns the engine bound to the current goroutine, creating it on
// first use. Binding per goroutine realizes the single-logical-thread
// contract: an engine is never shared across OS threads.
func GetEngine() *Engine {
	gid := goid.Get()

	if e, ok := engines.Load(gid); ok {
		return e.(*Engine)
	}

	e := NewEngine()
	engines.Store(gid, e)
	return e
}
