package viewport

import (
	"sync"
	"time"

	"github.com/Carmen-Shannon/atlas-go/common"
)

// HostView supplies the ambient layout inputs a resolution pass needs. The
// engine/window package provides a glfw-backed implementation; tests use
// in-memory fakes.
type HostView interface {
	// SafeAreaInsets returns the inset reserved by the host for system
	// chrome, in directional form.
	//
	// Returns:
	//   - common.EdgeInsets: the current safe-area insets
	SafeAreaInsets() common.EdgeInsets

	// LayoutDirection returns the host's resolved layout direction.
	//
	// Returns:
	//   - common.LayoutDirection: the current layout direction
	LayoutDirection() common.LayoutDirection
}

// StyleSource is an opaque reference to the active style's camera-query
// surface. The resolver carries it through to StyleDefaultRequest without
// interpreting it; only the consuming camera-state engine gives it meaning.
type StyleSource any

// ResolvedState is the mode-specific parameter bundle produced by a
// resolution pass, ready for a camera-state engine. Exactly one concrete type
// exists per non-idle mode; a nil ResolvedState means "install nothing, leave
// the camera under direct user control".
type ResolvedState interface {
	resolvedState()
}

// CameraParameters is the resolved state for a camera-mode viewport: the
// payload carried verbatim, with the padding field holding the resolved
// padding.
type CameraParameters struct {
	// Center is the optional world-space target.
	Center *common.Coordinate
	// Anchor is the optional screen-space pivot.
	Anchor *common.Point
	// Zoom is the optional zoom level.
	Zoom *float64
	// Bearing is the optional bearing in degrees.
	Bearing *float64
	// Pitch is the optional pitch in degrees.
	Pitch *float64
	// Padding is the resolved viewport padding.
	Padding common.EdgeInsets
}

// StyleDefaultRequest is the resolved state for a style-default viewport. It
// signals the engine to pull the default camera from the active style.
type StyleDefaultRequest struct {
	// Padding is the resolved viewport padding.
	Padding common.EdgeInsets
	// Style is the opaque style handle the engine queries for the default
	// camera.
	Style StyleSource
}

// OverviewParameters is the resolved state for an overview viewport. It
// carries two independent insets: GeometryPadding frames the geometry itself,
// Padding offsets the whole viewport.
type OverviewParameters struct {
	// Geometry is the opaque geometry to frame.
	Geometry common.Geometry
	// GeometryPadding is the direction-resolved inset around the geometry.
	GeometryPadding common.EdgeInsets
	// Bearing is the bearing in degrees.
	Bearing float64
	// Pitch is the pitch in degrees.
	Pitch float64
	// Padding is the resolved viewport padding.
	Padding common.EdgeInsets
	// MaxZoom optionally caps the fitting zoom.
	MaxZoom *float64
	// Offset optionally shifts the framed geometry from the padded center.
	Offset *common.Point
	// AnimationDuration is always zero: resolution is synchronous and any
	// animation timing is layered on top by the caller.
	AnimationDuration time.Duration
}

// FollowPuckParameters is the resolved state for a follow-puck viewport.
type FollowPuckParameters struct {
	// Padding is the resolved viewport padding.
	Padding common.EdgeInsets
	// Zoom is the zoom level held while following.
	Zoom float64
	// Bearing is the bearing source, unchanged from the viewport value.
	Bearing Bearing
	// Pitch is the pitch in degrees.
	Pitch float64
}

func (CameraParameters) resolvedState()     {}
func (StyleDefaultRequest) resolvedState()  {}
func (OverviewParameters) resolvedState()   {}
func (FollowPuckParameters) resolvedState() {}

// Resolver turns Viewport values into ResolvedStates using the ambient
// inputs of its host view. Thread-safe for concurrent use.
type Resolver interface {
	// Resolve maps the viewport value to its resolved state. Idle viewports
	// resolve to nil without querying the host view at all.
	//
	// Parameters:
	//   - v: the viewport value to resolve
	//
	// Returns:
	//   - ResolvedState: the mode-specific parameter bundle, or nil for idle
	Resolve(v Viewport) ResolvedState

	// HostView returns the attached host view.
	//
	// Returns:
	//   - HostView: the host view supplying ambient inputs
	HostView() HostView

	// Style returns the opaque style handle carried into style-default
	// resolutions. May be nil.
	//
	// Returns:
	//   - StyleSource: the style handle or nil
	Style() StyleSource

	// SetStyle replaces the style handle. Typically called when the map's
	// active style changes.
	//
	// Parameters:
	//   - style: the new style handle (may be nil)
	SetStyle(style StyleSource)
}

type resolverImpl struct {
	mu *sync.RWMutex

	hostView HostView
	style    StyleSource
}

var _ Resolver = &resolverImpl{}

// NewResolver creates a Resolver. A host view is required; attach one with
// WithHostView or the constructor panics.
//
// Parameters:
//   - options: functional options to configure the resolver
//
// Returns:
//   - Resolver: the newly created resolver
func NewResolver(options ...ResolverBuilderOption) Resolver {
	r := &resolverImpl{
		mu: &sync.RWMutex{},
	}
	for _, option := range options {
		option(r)
	}
	if r.hostView == nil {
		panic("viewport: NewResolver requires a non-nil HostView")
	}
	return r
}

func (r *resolverImpl) Resolve(v Viewport) ResolvedState {
	// Idle short-circuits before the host view is touched: there is no
	// padding consumer, so the ambient inputs must not be read.
	if v.IsIdle() {
		return nil
	}

	r.mu.RLock()
	hostView := r.hostView
	style := r.style
	r.mu.RUnlock()

	return ResolveState(v, hostView.LayoutDirection(), hostView.SafeAreaInsets(), style)
}

func (r *resolverImpl) HostView() HostView {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.hostView
}

func (r *resolverImpl) Style() StyleSource {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.style
}

func (r *resolverImpl) SetStyle(style StyleSource) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.style = style
}

// ResolveState is the pure resolution function: it maps a viewport value plus
// explicit ambient inputs to the mode-specific resolved state. Every valid
// viewport maps to exactly one state; resolution cannot fail.
//
// Parameters:
//   - v: the viewport value to resolve
//   - dir: the host layout direction
//   - safeArea: the ambient safe-area insets in directional form
//   - style: the opaque style handle for style-default resolutions (may be nil)
//
// Returns:
//   - ResolvedState: the mode-specific parameter bundle, or nil for idle
func ResolveState(v Viewport, dir common.LayoutDirection, safeArea common.EdgeInsets, style StyleSource) ResolvedState {
	switch v.Mode() {
	case ModeStyleDefault:
		return StyleDefaultRequest{
			Padding: ResolvePadding(v.InsetOptions(), dir, safeArea),
			Style:   style,
		}
	case ModeCamera:
		payload, _ := v.Camera()
		return CameraParameters{
			Center:  payload.Center,
			Anchor:  payload.Anchor,
			Zoom:    payload.Zoom,
			Bearing: payload.Bearing,
			Pitch:   payload.Pitch,
			Padding: ResolvePadding(v.InsetOptions(), dir, safeArea),
		}
	case ModeOverview:
		payload, _ := v.Overview()
		return OverviewParameters{
			Geometry:        payload.Geometry,
			GeometryPadding: payload.GeometryPadding.Resolved(dir),
			Bearing:         payload.Bearing,
			Pitch:           payload.Pitch,
			Padding:         ResolvePadding(v.InsetOptions(), dir, safeArea),
			MaxZoom:         payload.MaxZoom,
			Offset:          payload.Offset,
		}
	case ModeFollowPuck:
		payload, _ := v.FollowPuck()
		return FollowPuckParameters{
			Padding: ResolvePadding(v.InsetOptions(), dir, safeArea),
			Zoom:    payload.Zoom,
			Bearing: payload.Bearing,
			Pitch:   payload.Pitch,
		}
	default:
		return nil
	}
}
