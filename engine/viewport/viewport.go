// package viewport provides the declarative camera viewport value model for a
// map surface. A Viewport describes how the camera should be positioned: it
// is a plain, equatable value, independent of the live camera state owned by
// a camera-state engine. Values are built by the factory functions (Idle,
// StyleDefault, Camera, Overview, FollowPuck), optionally transformed by the
// inset operations, and consumed by a Resolver.
package viewport

import (
	"github.com/Carmen-Shannon/atlas-go/common"
)

//go:generate go tool stringer -type=Mode -output=mode_string.go

// Mode identifies which viewport variant is active. Exactly one mode is
// active per Viewport value.
type Mode int

const (
	// ModeIdle installs no camera-driving state; the camera stays under
	// direct user control.
	ModeIdle Mode = iota

	// ModeStyleDefault asks the engine to pull the default camera from the
	// active style.
	ModeStyleDefault

	// ModeCamera positions the camera at an explicit set of parameters.
	ModeCamera

	// ModeOverview frames a geometry at the minimum zoom that fits it.
	ModeOverview

	// ModeFollowPuck keeps the camera locked onto the moving location puck.
	ModeFollowPuck
)

// InsetOptions carries the inset configuration attached to every Viewport
// regardless of its mode.
type InsetOptions struct {
	// Insets are the user-specified abstract insets, added on top of the
	// surviving safe-area contribution during padding resolution.
	Insets common.Insets

	// IgnoredSafeAreaEdges is the set of abstract edges whose ambient
	// safe-area contribution is excluded from the resolved padding.
	IgnoredSafeAreaEdges common.Edge
}

// Viewport is an immutable, equatable description of desired camera behavior.
// The zero value is the idle viewport.
type Viewport struct {
	mode Mode

	camera     CameraOptions
	overview   OverviewOptions
	followPuck FollowPuckOptions

	insetOptions InsetOptions
}

// Idle returns the viewport that installs no camera-driving state.
//
// Returns:
//   - Viewport: the idle viewport value
func Idle() Viewport {
	return Viewport{mode: ModeIdle}
}

// StyleDefault returns the viewport that defers to the renderer's built-in
// default camera for the active style.
//
// Returns:
//   - Viewport: the style-default viewport value
func StyleDefault() Viewport {
	return Viewport{mode: ModeStyleDefault}
}

// Camera returns a viewport positioning the camera at explicit parameters.
// Every dimension is optional: an absent field means "leave this camera
// dimension unspecified", never "set to zero". Center and anchor are
// semantically mutually exclusive (anchor is a screen-space pivot, center a
// world-space target); the value model accepts both and defers precedence to
// the consuming engine.
//
// Parameters:
//   - options: functional options setting individual camera dimensions
//
// Returns:
//   - Viewport: the camera viewport value
func Camera(options ...CameraOption) Viewport {
	v := Viewport{mode: ModeCamera}
	for _, option := range options {
		option(&v.camera)
	}
	return v
}

// Overview returns a viewport framing a geometry at the minimum zoom that
// fits it. Bearing and pitch default to 0, geometry padding to zero insets;
// max zoom and offset default to unspecified.
//
// Parameters:
//   - geometry: the geometry to frame (converted once, then carried opaquely)
//   - options: functional options for bearing, pitch, padding, max zoom, offset
//
// Returns:
//   - Viewport: the overview viewport value
func Overview(geometry common.GeometryConvertible, options ...OverviewOption) Viewport {
	v := Viewport{mode: ModeOverview}
	v.overview.Geometry = geometry.Geometry()
	for _, option := range options {
		option(&v.overview)
	}
	return v
}

// FollowPuck returns a viewport that follows the moving location puck at the
// given zoom. Bearing defaults to a constant 0 heading and pitch to 0.
//
// Parameters:
//   - zoom: the zoom level to hold while following
//   - options: functional options for bearing and pitch
//
// Returns:
//   - Viewport: the follow-puck viewport value
func FollowPuck(zoom float64, options ...FollowPuckOption) Viewport {
	v := Viewport{mode: ModeFollowPuck}
	v.followPuck.Zoom = zoom
	v.followPuck.Bearing = ConstantBearing(0)
	for _, option := range options {
		option(&v.followPuck)
	}
	return v
}

// WithInsets returns a copy of the viewport whose entire inset configuration
// is replaced by the given insets and ignored-edge set. Any previously merged
// per-edge configuration is discarded.
//
// Parameters:
//   - insets: the abstract insets to install
//   - ignoring: abstract edges whose safe-area contribution should be ignored
//
// Returns:
//   - Viewport: the transformed viewport value
func (v Viewport) WithInsets(insets common.Insets, ignoring ...common.Edge) Viewport {
	var ignored common.Edge
	for _, e := range ignoring {
		ignored |= e
	}
	v.insetOptions = InsetOptions{
		Insets:               insets,
		IgnoredSafeAreaEdges: ignored,
	}
	return v
}

// WithEdgeInset returns a copy of the viewport with the given edges' inset
// fields set to length, merged into the existing configuration. The edges are
// added to or removed from the ignored-safe-area set depending on
// ignoreSafeArea; other edges are untouched, so repeated calls with different
// edge sets compose.
//
// Parameters:
//   - edges: the abstract edges to set (combine with |)
//   - length: the inset value for each edge
//   - ignoreSafeArea: whether the edges' safe-area contribution is ignored
//
// Returns:
//   - Viewport: the transformed viewport value
func (v Viewport) WithEdgeInset(edges common.Edge, length float64, ignoreSafeArea bool) Viewport {
	v.insetOptions.Insets.Set(edges, length)
	if ignoreSafeArea {
		v.insetOptions.IgnoredSafeAreaEdges |= edges
	} else {
		v.insetOptions.IgnoredSafeAreaEdges &^= edges
	}
	return v
}

// Mode returns the active viewport mode.
func (v Viewport) Mode() Mode {
	return v.mode
}

// IsIdle reports whether the viewport is the idle viewport.
func (v Viewport) IsIdle() bool {
	return v.mode == ModeIdle
}

// IsStyleDefault reports whether the viewport defers to the style's default
// camera.
func (v Viewport) IsStyleDefault() bool {
	return v.mode == ModeStyleDefault
}

// Camera returns the camera payload when the camera mode is active.
//
// Returns:
//   - CameraOptions: the configured camera payload
//   - bool: true only when the active mode is ModeCamera
func (v Viewport) Camera() (CameraOptions, bool) {
	if v.mode != ModeCamera {
		return CameraOptions{}, false
	}
	return v.camera, true
}

// Overview returns the overview payload when the overview mode is active.
//
// Returns:
//   - OverviewOptions: the configured overview payload
//   - bool: true only when the active mode is ModeOverview
func (v Viewport) Overview() (OverviewOptions, bool) {
	if v.mode != ModeOverview {
		return OverviewOptions{}, false
	}
	return v.overview, true
}

// FollowPuck returns the follow-puck payload when the follow-puck mode is
// active.
//
// Returns:
//   - FollowPuckOptions: the configured follow-puck payload
//   - bool: true only when the active mode is ModeFollowPuck
func (v Viewport) FollowPuck() (FollowPuckOptions, bool) {
	if v.mode != ModeFollowPuck {
		return FollowPuckOptions{}, false
	}
	return v.followPuck, true
}

// InsetOptions returns the viewport's inset configuration.
func (v Viewport) InsetOptions() InsetOptions {
	return v.insetOptions
}

// Equal reports whether two viewport values are structurally equal: same
// mode, same payload (optional fields compared by value, not identity), and
// same inset configuration.
//
// Parameters:
//   - other: the viewport to compare against
//
// Returns:
//   - bool: true if the values are structurally equal
func (v Viewport) Equal(other Viewport) bool {
	if v.mode != other.mode || v.insetOptions != other.insetOptions {
		return false
	}
	switch v.mode {
	case ModeCamera:
		return v.camera.Equal(other.camera)
	case ModeOverview:
		return v.overview.Equal(other.overview)
	case ModeFollowPuck:
		return v.followPuck == other.followPuck
	default:
		// Idle and style-default carry no payload.
		return true
	}
}
