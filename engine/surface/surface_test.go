package surface

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/atlas-go/common"
	"github.com/Carmen-Shannon/atlas-go/engine/camerastate"
	"github.com/Carmen-Shannon/atlas-go/engine/viewport"
)

// recordingEngine is a camerastate.Engine capturing every applied state.
type recordingEngine struct {
	mu      sync.Mutex
	applied []viewport.ResolvedState
	err     error
}

func (r *recordingEngine) Apply(state viewport.ResolvedState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.applied = append(r.applied, state)
	return r.err
}

func (r *recordingEngine) Attached() bool { return false }

func (r *recordingEngine) Current() camerastate.CameraSnapshot {
	return camerastate.CameraSnapshot{}
}

func (r *recordingEngine) SetPuckPosition(common.Coordinate) {}

func (r *recordingEngine) states() []viewport.ResolvedState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]viewport.ResolvedState(nil), r.applied...)
}

func newTestResolver() viewport.Resolver {
	return viewport.NewResolver(viewport.WithHostView(viewport.StaticHostView{
		Insets: common.EdgeInsets{Top: 20, Bottom: 34},
	}))
}

func TestNewSurfaceDefaults(t *testing.T) {
	s := NewSurface("main", newTestResolver(), &recordingEngine{})

	assert.Equal(t, "main", s.Name())
	assert.False(t, s.Active())
	assert.True(t, s.Viewport().IsIdle())
}

func TestNewSurfaceRequiresCollaborators(t *testing.T) {
	assert.Panics(t, func() { NewSurface("main", nil, &recordingEngine{}) })
	assert.Panics(t, func() { NewSurface("main", newTestResolver(), nil) })
}

func TestSurfaceOptions(t *testing.T) {
	s := NewSurface("main", newTestResolver(), &recordingEngine{},
		WithActive(true),
		WithViewport(viewport.StyleDefault()),
	)
	assert.True(t, s.Active())
	assert.True(t, s.Viewport().IsStyleDefault())
}

func TestPrepareFrameAppliesResolvedState(t *testing.T) {
	eng := &recordingEngine{}
	s := NewSurface("main", newTestResolver(), eng,
		WithViewport(viewport.FollowPuck(16).WithEdgeInset(common.EdgeBottom, 120, false)),
	)

	require.NoError(t, s.PrepareFrame())

	states := eng.states()
	require.Len(t, states, 1)
	params, ok := states[0].(viewport.FollowPuckParameters)
	require.True(t, ok)
	assert.Equal(t, 16.0, params.Zoom)
	assert.Equal(t, common.EdgeInsets{Top: 20, Bottom: 154}, params.Padding)
}

func TestPrepareFrameIdleAppliesNil(t *testing.T) {
	eng := &recordingEngine{}
	s := NewSurface("main", newTestResolver(), eng)

	require.NoError(t, s.PrepareFrame())

	states := eng.states()
	require.Len(t, states, 1)
	assert.Nil(t, states[0], "idle resolves to nil, detaching the engine")
}

func TestPrepareFramePicksUpViewportChanges(t *testing.T) {
	eng := &recordingEngine{}
	s := NewSurface("main", newTestResolver(), eng)

	require.NoError(t, s.PrepareFrame())
	s.SetViewport(viewport.StyleDefault())
	require.NoError(t, s.PrepareFrame())

	states := eng.states()
	require.Len(t, states, 2)
	assert.Nil(t, states[0])
	_, ok := states[1].(viewport.StyleDefaultRequest)
	assert.True(t, ok)
}

func TestManagerRegistry(t *testing.T) {
	m := NewManager()
	s := NewSurface("main", newTestResolver(), &recordingEngine{})

	m.AddSurface(0, s)
	assert.Equal(t, s, m.Surface(0))
	assert.Nil(t, m.Surface(1))
	assert.Len(t, m.Surfaces(), 1)

	m.RemoveSurface(0)
	assert.Nil(t, m.Surface(0))
	assert.Empty(t, m.Surfaces())
}

func TestManagerSurfacesReturnsCopy(t *testing.T) {
	m := NewManager()
	m.AddSurface(0, NewSurface("main", newTestResolver(), &recordingEngine{}))

	cp := m.Surfaces()
	delete(cp, 0)
	assert.NotNil(t, m.Surface(0), "mutating the copy leaves the registry intact")
}

func TestManagerPrepareFramePreparesActiveSurfacesOnce(t *testing.T) {
	m := NewManager(WithWorkers(2))

	engines := make([]*recordingEngine, 3)
	for i := range engines {
		engines[i] = &recordingEngine{}
		m.AddSurface(i, NewSurface("surface", newTestResolver(), engines[i],
			WithActive(true),
			WithViewport(viewport.StyleDefault()),
		))
	}

	m.PrepareFrame()

	for i, eng := range engines {
		assert.Len(t, eng.states(), 1, "surface %d prepared exactly once", i)
	}
}

func TestManagerPrepareFrameSkipsInactiveSurfaces(t *testing.T) {
	m := NewManager(WithWorkers(1))

	active := &recordingEngine{}
	inactive := &recordingEngine{}
	m.AddSurface(0, NewSurface("active", newTestResolver(), active, WithActive(true)))
	m.AddSurface(1, NewSurface("inactive", newTestResolver(), inactive))

	m.PrepareFrame()

	assert.Len(t, active.states(), 1)
	assert.Empty(t, inactive.states())
}

func TestManagerPrepareFrameEmptyRegistry(t *testing.T) {
	m := NewManager()
	assert.NotPanics(t, func() { m.PrepareFrame() })
}
