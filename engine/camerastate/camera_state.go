// package camerastate provides a reference camera-state engine: the consumer
// side of the viewport contract. It installs the mode-specific parameter
// bundles produced by a viewport.Resolver and maintains the live camera
// snapshot a renderer would project from.
package camerastate

import (
	"fmt"
	"math"
	"sync"

	"github.com/Carmen-Shannon/atlas-go/common"
	"github.com/Carmen-Shannon/atlas-go/engine/viewport"
)

// maxFitZoom caps the zoom chosen when framing degenerate (point-sized)
// geometry in an overview.
const maxFitZoom = 22.0

// CameraSnapshot is the live camera state the engine maintains. Unlike the
// viewport value model, every field here is concrete: the engine always has
// an actual camera.
type CameraSnapshot struct {
	// Center is the world-space coordinate at the viewport center.
	Center common.Coordinate

	// Zoom is the current zoom level.
	Zoom float64

	// Bearing is the map rotation in degrees clockwise from north.
	Bearing float64

	// Pitch is the camera tilt in degrees from the nadir.
	Pitch float64

	// Padding is the viewport padding in directional form.
	Padding common.EdgeInsets

	// Anchor is the screen-space pivot recorded from the last applied camera
	// parameters, or nil when the last change was center-driven.
	Anchor *common.Point
}

// HeadingProvider supplies the live heading for follow-puck states whose
// bearing tracks the heading source.
type HeadingProvider interface {
	// Heading returns the current heading in degrees clockwise from north.
	//
	// Returns:
	//   - float64: the current heading
	Heading() float64
}

// DefaultCameraSource is implemented by style handles that can report the
// style's built-in default camera. When a StyleDefaultRequest carries such a
// handle, the engine pulls the default camera from it.
type DefaultCameraSource interface {
	// DefaultCamera returns the style's built-in default camera.
	//
	// Returns:
	//   - CameraSnapshot: the default camera state
	DefaultCamera() CameraSnapshot
}

// Engine is the camera-state engine contract. Apply installs resolved
// viewport states; everything else reads or feeds the live state.
// Thread-safe for concurrent access.
type Engine interface {
	// Apply installs a resolved viewport state. A nil state detaches the
	// engine, leaving the camera under direct user control.
	//
	// Parameters:
	//   - state: the resolved state to install (nil to detach)
	//
	// Returns:
	//   - error: error if the state type is not recognized
	Apply(state viewport.ResolvedState) error

	// Attached reports whether a viewport-driven state is installed.
	//
	// Returns:
	//   - bool: false after a nil Apply or before the first Apply
	Attached() bool

	// Current returns the live camera snapshot.
	//
	// Returns:
	//   - CameraSnapshot: the current camera state
	Current() CameraSnapshot

	// SetPuckPosition feeds the engine the puck's newest position. The camera
	// recenters only while a follow-puck state is installed; when its bearing
	// tracks the heading source, the bearing is refreshed from the attached
	// HeadingProvider at the same time.
	//
	// Parameters:
	//   - position: the puck's world-space position
	SetPuckPosition(position common.Coordinate)
}

type engineImpl struct {
	mu *sync.Mutex

	current  CameraSnapshot
	attached bool

	// follow holds the installed follow-puck parameters while that state is
	// active, nil otherwise.
	follow *viewport.FollowPuckParameters

	headingProvider HeadingProvider
	defaultCamera   CameraSnapshot
}

var _ Engine = &engineImpl{}

// NewEngine creates a camera-state engine in the detached state.
//
// Parameters:
//   - options: functional options to configure the engine
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engineImpl{
		mu: &sync.Mutex{},
	}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *engineImpl) Apply(state viewport.ResolvedState) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if state == nil {
		e.attached = false
		e.follow = nil
		return nil
	}

	switch st := state.(type) {
	case viewport.CameraParameters:
		e.applyCamera(st)
	case viewport.StyleDefaultRequest:
		e.applyStyleDefault(st)
	case viewport.OverviewParameters:
		e.applyOverview(st)
	case viewport.FollowPuckParameters:
		e.applyFollowPuck(st)
	default:
		return fmt.Errorf("camerastate: unsupported resolved state %T", state)
	}

	e.attached = true
	return nil
}

// applyCamera installs explicit camera parameters. Unspecified dimensions
// keep their current values. Center takes precedence over anchor when both
// are present; the anchor is still recorded as the screen pivot.
// Caller must hold the mutex.
func (e *engineImpl) applyCamera(st viewport.CameraParameters) {
	e.follow = nil

	if st.Center != nil {
		e.current.Center = *st.Center
	}
	e.current.Anchor = st.Anchor
	if st.Zoom != nil {
		e.current.Zoom = *st.Zoom
	}
	if st.Bearing != nil {
		e.current.Bearing = *st.Bearing
	}
	if st.Pitch != nil {
		e.current.Pitch = *st.Pitch
	}
	e.current.Padding = st.Padding
}

// applyStyleDefault installs the style's default camera, preferring the
// request's style handle when it can report one. Caller must hold the mutex.
func (e *engineImpl) applyStyleDefault(st viewport.StyleDefaultRequest) {
	e.follow = nil

	snapshot := e.defaultCamera
	if src, ok := st.Style.(DefaultCameraSource); ok {
		snapshot = src.DefaultCamera()
	}
	snapshot.Padding = st.Padding
	e.current = snapshot
}

// applyOverview frames the geometry's bounds at the minimum zoom that fits
// them, clamped by the optional max zoom. Caller must hold the mutex.
func (e *engineImpl) applyOverview(st viewport.OverviewParameters) {
	e.follow = nil

	bounds := common.BoundsOf(st.Geometry)
	e.current.Center = common.Coordinate{
		Latitude:  (bounds.Southwest.Latitude + bounds.Northeast.Latitude) / 2,
		Longitude: (bounds.Southwest.Longitude + bounds.Northeast.Longitude) / 2,
	}

	zoom := fitZoom(bounds)
	if st.MaxZoom != nil && zoom > *st.MaxZoom {
		zoom = *st.MaxZoom
	}
	e.current.Zoom = zoom
	e.current.Bearing = st.Bearing
	e.current.Pitch = st.Pitch
	e.current.Padding = st.Padding
	e.current.Anchor = nil
}

// applyFollowPuck installs the follow state. The camera recenters as puck
// positions arrive via SetPuckPosition. Caller must hold the mutex.
func (e *engineImpl) applyFollowPuck(st viewport.FollowPuckParameters) {
	e.follow = &st

	e.current.Zoom = st.Zoom
	e.current.Pitch = st.Pitch
	e.current.Padding = st.Padding
	e.current.Anchor = nil

	if heading, ok := st.Bearing.Constant(); ok {
		e.current.Bearing = heading
	} else if e.headingProvider != nil {
		e.current.Bearing = e.headingProvider.Heading()
	}
}

func (e *engineImpl) Attached() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.attached
}

func (e *engineImpl) Current() CameraSnapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.current
}

func (e *engineImpl) SetPuckPosition(position common.Coordinate) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.follow == nil {
		return
	}
	e.current.Center = position
	if e.follow.Bearing.TracksHeading() && e.headingProvider != nil {
		e.current.Bearing = e.headingProvider.Heading()
	}
}

// fitZoom returns the minimum zoom level at which the bounds' larger angular
// span fits the viewport, on the usual halving-per-level scale where the full
// 360° world fits at zoom 0. Point-sized bounds frame at maxFitZoom.
//
// Parameters:
//   - bounds: the geographic bounds to fit
//
// Returns:
//   - float64: the fitting zoom level, in [0, maxFitZoom]
func fitZoom(bounds common.CoordinateBounds) float64 {
	latSpan := bounds.Northeast.Latitude - bounds.Southwest.Latitude
	lonSpan := bounds.Northeast.Longitude - bounds.Southwest.Longitude
	span := math.Max(latSpan, lonSpan)
	if span <= 0 {
		return maxFitZoom
	}
	zoom := math.Log2(360 / span)
	return math.Min(math.Max(zoom, 0), maxFitZoom)
}
