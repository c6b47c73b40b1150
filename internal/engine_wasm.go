//go:build wasm

package internal

import "sync"

var once sync.Once
var globalEngine *Engine

// GetEngine returns the process-wide engine. Wasm schedules everything on one
// thread, so the per-goroutine binding collapses to a single instance.
func GetEngine() *Engine {
	once.Do(func() {
		globalEngine = NewEngine()
	})

	return globalEngine
}
