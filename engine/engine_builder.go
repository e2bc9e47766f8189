package engine

import (
	"time"

	"github.com/Carmen-Shannon/atlas-go/engine/surface"
	"github.com/Carmen-Shannon/atlas-go/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithTickRate sets the resolution tick rate in passes per second.
// Surfaces are prepared at this rate. Values <= 0 will be treated as the
// default (60Hz).
//
// Parameters:
//   - fps: target passes per second (default 60)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTickRate(fps float64) EngineBuilderOption {
	return func(e *engine) {
		if fps <= 0 {
			fps = 60.0
		}
		e.engineTickRate = time.Second / time.Duration(fps)
	}
}

// WithWindow sets a custom configured window for the engine to use rather than allowing the engine
// to create and manage one internally.
//
// Parameters:
//   - w: a pre-configured Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithManager sets a custom configured surface manager, e.g. one with a
// specific worker count for the resolution fan-out.
//
// Parameters:
//   - m: a pre-configured Manager instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithManager(m surface.Manager) EngineBuilderOption {
	return func(e *engine) {
		e.manager = m
	}
}

// WithSurface registers a surface at the given z-index key during engine
// construction. Creates a default manager if none has been set yet, so it
// composes with or without WithManager (apply WithManager first to keep a
// custom manager).
//
// Parameters:
//   - key: the z-index key (lower prepares first)
//   - s: the Surface to register
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithSurface(key int, s surface.Surface) EngineBuilderOption {
	return func(e *engine) {
		if e.manager == nil {
			e.manager = surface.NewManager()
		}
		e.manager.AddSurface(key, s)
	}
}
