package viewport

import (
	"github.com/Carmen-Shannon/atlas-go/common"
)

// CameraOption is a functional option for the Camera factory.
// Use the With* functions to create options.
type CameraOption func(*CameraOptions)

// WithCenter sets the world-space coordinate to place at the viewport center.
//
// Parameters:
//   - center: the target coordinate
//
// Returns:
//   - CameraOption: option function to apply
func WithCenter(center common.Coordinate) CameraOption {
	return func(o *CameraOptions) {
		o.Center = &center
	}
}

// WithAnchor sets the screen-space pivot for the camera change. Semantically
// mutually exclusive with WithCenter; the value model does not enforce this.
//
// Parameters:
//   - anchor: the screen-space pivot point
//
// Returns:
//   - CameraOption: option function to apply
func WithAnchor(anchor common.Point) CameraOption {
	return func(o *CameraOptions) {
		o.Anchor = &anchor
	}
}

// WithZoom sets the camera zoom level.
//
// Parameters:
//   - zoom: the zoom level
//
// Returns:
//   - CameraOption: option function to apply
func WithZoom(zoom float64) CameraOption {
	return func(o *CameraOptions) {
		o.Zoom = &zoom
	}
}

// WithBearing sets the map rotation in degrees clockwise from north.
//
// Parameters:
//   - bearing: the bearing in degrees
//
// Returns:
//   - CameraOption: option function to apply
func WithBearing(bearing float64) CameraOption {
	return func(o *CameraOptions) {
		o.Bearing = &bearing
	}
}

// WithPitch sets the camera tilt in degrees from the nadir.
//
// Parameters:
//   - pitch: the pitch in degrees
//
// Returns:
//   - CameraOption: option function to apply
func WithPitch(pitch float64) CameraOption {
	return func(o *CameraOptions) {
		o.Pitch = &pitch
	}
}

// OverviewOption is a functional option for the Overview factory.
// Use the WithOverview*/WithGeometryPadding/WithMaxZoom/WithOffset functions
// to create options.
type OverviewOption func(*OverviewOptions)

// WithOverviewBearing sets the map rotation used while framing the geometry.
//
// Parameters:
//   - bearing: the bearing in degrees clockwise from north
//
// Returns:
//   - OverviewOption: option function to apply
func WithOverviewBearing(bearing float64) OverviewOption {
	return func(o *OverviewOptions) {
		o.Bearing = bearing
	}
}

// WithOverviewPitch sets the camera tilt used while framing the geometry.
//
// Parameters:
//   - pitch: the pitch in degrees
//
// Returns:
//   - OverviewOption: option function to apply
func WithOverviewPitch(pitch float64) OverviewOption {
	return func(o *OverviewOptions) {
		o.Pitch = pitch
	}
}

// WithGeometryPadding sets the abstract inset applied around the framed
// geometry, independent of the viewport's outer padding.
//
// Parameters:
//   - padding: the abstract geometry padding
//
// Returns:
//   - OverviewOption: option function to apply
func WithGeometryPadding(padding common.Insets) OverviewOption {
	return func(o *OverviewOptions) {
		o.GeometryPadding = padding
	}
}

// WithMaxZoom caps the zoom level chosen to fit the geometry.
//
// Parameters:
//   - maxZoom: the maximum zoom level
//
// Returns:
//   - OverviewOption: option function to apply
func WithMaxZoom(maxZoom float64) OverviewOption {
	return func(o *OverviewOptions) {
		o.MaxZoom = &maxZoom
	}
}

// WithOffset shifts the framed geometry from the padded viewport center.
//
// Parameters:
//   - offset: the screen-space offset
//
// Returns:
//   - OverviewOption: option function to apply
func WithOffset(offset common.Point) OverviewOption {
	return func(o *OverviewOptions) {
		o.Offset = &offset
	}
}

// FollowPuckOption is a functional option for the FollowPuck factory.
// Use the WithFollow* functions to create options.
type FollowPuckOption func(*FollowPuckOptions)

// WithFollowBearing selects the follow-puck bearing behavior.
//
// Parameters:
//   - bearing: a constant heading or the heading-tracking bearing
//
// Returns:
//   - FollowPuckOption: option function to apply
func WithFollowBearing(bearing Bearing) FollowPuckOption {
	return func(o *FollowPuckOptions) {
		o.Bearing = bearing
	}
}

// WithFollowPitch sets the camera tilt held while following the puck.
//
// Parameters:
//   - pitch: the pitch in degrees
//
// Returns:
//   - FollowPuckOption: option function to apply
func WithFollowPitch(pitch float64) FollowPuckOption {
	return func(o *FollowPuckOptions) {
		o.Pitch = pitch
	}
}
