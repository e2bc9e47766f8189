package viewport

import (
	"github.com/Carmen-Shannon/atlas-go/common"
)

// CameraOptions is the payload of a camera-mode viewport. Every field is
// optional; nil means the dimension is unspecified and the engine keeps its
// current value for it. None of the fields use a sentinel number; zero is a
// valid, distinct value for all of them.
type CameraOptions struct {
	// Center is the world-space coordinate to place at the viewport center.
	Center *common.Coordinate

	// Anchor is the screen-space pivot the camera change is performed around.
	// Mutually exclusive with Center by caller contract; both are carried
	// through unenforced.
	Anchor *common.Point

	// Zoom is the camera zoom level.
	Zoom *float64

	// Bearing is the map rotation in degrees clockwise from north.
	Bearing *float64

	// Pitch is the camera tilt in degrees from the nadir.
	Pitch *float64
}

// Equal reports field-wise equality, comparing optional fields by value.
//
// Parameters:
//   - other: the payload to compare against
//
// Returns:
//   - bool: true if all fields are equal
func (o CameraOptions) Equal(other CameraOptions) bool {
	return coordPtrEqual(o.Center, other.Center) &&
		pointPtrEqual(o.Anchor, other.Anchor) &&
		floatPtrEqual(o.Zoom, other.Zoom) &&
		floatPtrEqual(o.Bearing, other.Bearing) &&
		floatPtrEqual(o.Pitch, other.Pitch)
}

// OverviewOptions is the payload of an overview-mode viewport.
type OverviewOptions struct {
	// Geometry is the opaque geometry to frame.
	Geometry common.Geometry

	// Bearing is the map rotation in degrees clockwise from north.
	Bearing float64

	// Pitch is the camera tilt in degrees from the nadir.
	Pitch float64

	// GeometryPadding is the abstract inset applied around the geometry
	// itself, independent of the viewport's outer padding.
	GeometryPadding common.Insets

	// MaxZoom caps the zoom chosen to fit the geometry. Nil means uncapped.
	MaxZoom *float64

	// Offset shifts the framed geometry from the padded viewport center, in
	// screen points. Nil means no offset.
	Offset *common.Point
}

// Equal reports field-wise equality, comparing the geometry structurally and
// optional fields by value.
//
// Parameters:
//   - other: the payload to compare against
//
// Returns:
//   - bool: true if all fields are equal
func (o OverviewOptions) Equal(other OverviewOptions) bool {
	return common.GeometryEqual(o.Geometry, other.Geometry) &&
		o.Bearing == other.Bearing &&
		o.Pitch == other.Pitch &&
		o.GeometryPadding == other.GeometryPadding &&
		floatPtrEqual(o.MaxZoom, other.MaxZoom) &&
		pointPtrEqual(o.Offset, other.Offset)
}

// FollowPuckOptions is the payload of a follow-puck-mode viewport.
type FollowPuckOptions struct {
	// Zoom is the zoom level held while following.
	Zoom float64

	// Bearing selects between a constant heading and tracking the live
	// heading source.
	Bearing Bearing

	// Pitch is the camera tilt in degrees from the nadir.
	Pitch float64
}

// Bearing is the follow-puck bearing variant: either a constant heading in
// degrees, or "track the live heading source". The zero value is a constant
// 0 heading.
type Bearing struct {
	heading       float64
	tracksHeading bool
}

// ConstantBearing returns a bearing holding a fixed heading.
//
// Parameters:
//   - degrees: the heading in degrees clockwise from north
//
// Returns:
//   - Bearing: the constant-heading bearing
func ConstantBearing(degrees float64) Bearing {
	return Bearing{heading: degrees}
}

// HeadingBearing returns the bearing that tracks the live heading source of
// the consuming engine.
//
// Returns:
//   - Bearing: the heading-tracking bearing
func HeadingBearing() Bearing {
	return Bearing{tracksHeading: true}
}

// Constant returns the fixed heading when the bearing is constant.
//
// Returns:
//   - float64: the heading in degrees (0 when tracking)
//   - bool: true only for constant bearings
func (b Bearing) Constant() (float64, bool) {
	if b.tracksHeading {
		return 0, false
	}
	return b.heading, true
}

// TracksHeading reports whether the bearing follows the live heading source.
func (b Bearing) TracksHeading() bool {
	return b.tracksHeading
}

// floatPtrEqual compares two optional floats by value.
func floatPtrEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// pointPtrEqual compares two optional points by value.
func pointPtrEqual(a, b *common.Point) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// coordPtrEqual compares two optional coordinates by value.
func coordPtrEqual(a, b *common.Coordinate) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
