// package surface ties the viewport pieces together for a single map view: a
// Surface owns the current Viewport value, the Resolver that interprets it,
// and the camera-state engine that consumes the result. Surfaces can be
// hot-swapped via the Active flag to switch between different map views.
package surface

import (
	"sync"

	"github.com/Carmen-Shannon/atlas-go/engine/camerastate"
	"github.com/Carmen-Shannon/atlas-go/engine/viewport"
)

// Surface is one map view unit. Thread-safe for concurrent access.
type Surface interface {
	// Name returns the surface's identifier.
	Name() string

	// SetName sets the surface's identifier.
	SetName(name string)

	// Active returns whether this surface participates in frame preparation.
	Active() bool

	// SetActive sets whether this surface participates in frame preparation.
	SetActive(active bool)

	// Viewport returns the surface's current viewport value.
	//
	// Returns:
	//   - viewport.Viewport: the declarative viewport value
	Viewport() viewport.Viewport

	// SetViewport replaces the surface's viewport value. The change takes
	// effect on the next PrepareFrame.
	//
	// Parameters:
	//   - v: the new viewport value
	SetViewport(v viewport.Viewport)

	// Resolver returns the surface's resolver.
	Resolver() viewport.Resolver

	// Engine returns the surface's camera-state engine.
	Engine() camerastate.Engine

	// PrepareFrame resolves the current viewport value against the host
	// view's ambient inputs and applies the result to the camera-state
	// engine. Called once per frame by the Manager.
	//
	// Returns:
	//   - error: error if the engine rejects the resolved state
	PrepareFrame() error
}

type surfaceImpl struct {
	mu *sync.RWMutex

	name   string
	active bool

	value    viewport.Viewport
	resolver viewport.Resolver
	engine   camerastate.Engine
}

var _ Surface = &surfaceImpl{}

// NewSurface creates a Surface with the given resolver and camera-state
// engine. Both are required and NewSurface panics if either is nil. The
// initial viewport value is idle; surfaces start inactive unless WithActive
// is supplied.
//
// Parameters:
//   - name: the surface's identifier
//   - resolver: the resolver interpreting viewport values (must not be nil)
//   - engine: the camera-state engine consuming resolved states (must not be nil)
//   - options: functional options to further configure the surface
//
// Returns:
//   - Surface: the newly created surface
func NewSurface(name string, resolver viewport.Resolver, engine camerastate.Engine, options ...SurfaceBuilderOption) Surface {
	if resolver == nil {
		panic("surface: NewSurface requires a non-nil Resolver")
	}
	if engine == nil {
		panic("surface: NewSurface requires a non-nil Engine")
	}

	s := &surfaceImpl{
		mu:       &sync.RWMutex{},
		name:     name,
		value:    viewport.Idle(),
		resolver: resolver,
		engine:   engine,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *surfaceImpl) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *surfaceImpl) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *surfaceImpl) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *surfaceImpl) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

func (s *surfaceImpl) Viewport() viewport.Viewport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

func (s *surfaceImpl) SetViewport(v viewport.Viewport) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = v
}

func (s *surfaceImpl) Resolver() viewport.Resolver {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.resolver
}

func (s *surfaceImpl) Engine() camerastate.Engine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine
}

func (s *surfaceImpl) PrepareFrame() error {
	s.mu.RLock()
	value := s.value
	resolver := s.resolver
	engine := s.engine
	s.mu.RUnlock()

	// Resolution runs outside the lock: it queries the host view, which may
	// itself synchronize with the windowing thread.
	return engine.Apply(resolver.Resolve(value))
}
