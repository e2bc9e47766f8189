package surface

import (
	"github.com/Carmen-Shannon/atlas-go/engine/viewport"
)

// SurfaceBuilderOption is a functional option for configuring a surface.
// Use the With* functions to create options.
type SurfaceBuilderOption func(*surfaceImpl)

// WithActive sets whether the surface starts out participating in frame
// preparation.
//
// Parameters:
//   - active: the initial active flag
//
// Returns:
//   - SurfaceBuilderOption: option function to apply
func WithActive(active bool) SurfaceBuilderOption {
	return func(s *surfaceImpl) {
		s.active = active
	}
}

// WithViewport sets the surface's initial viewport value instead of idle.
//
// Parameters:
//   - v: the initial viewport value
//
// Returns:
//   - SurfaceBuilderOption: option function to apply
func WithViewport(v viewport.Viewport) SurfaceBuilderOption {
	return func(s *surfaceImpl) {
		s.value = v
	}
}
