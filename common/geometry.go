package common

// Point is a screen-space point in logical pixels. Used for camera anchors
// and overview offsets.
type Point struct {
	// X is the horizontal component, increasing rightwards.
	X float64
	// Y is the vertical component, increasing downwards.
	Y float64
}

// Coordinate is a world-space geographic position in degrees.
type Coordinate struct {
	// Latitude in degrees, positive north.
	Latitude float64
	// Longitude in degrees, positive east.
	Longitude float64
}

// CoordinateBounds is the axis-aligned geographic rectangle spanned by two
// corner coordinates.
type CoordinateBounds struct {
	// Southwest is the lower-left corner.
	Southwest Coordinate
	// Northeast is the upper-right corner.
	Northeast Coordinate
}

// LineString is an ordered sequence of coordinates.
type LineString []Coordinate

// Polygon is a list of linear rings; the first ring is the outer boundary,
// any further rings are holes.
type Polygon [][]Coordinate

// Geometry is an opaque geometry value. The viewport core passes geometries
// through unexamined; only a camera-state engine interprets them when framing
// an overview.
type Geometry interface {
	isGeometry()
}

// GeometryConvertible is anything that can produce a Geometry. All concrete
// geometry types in this package convert to themselves.
type GeometryConvertible interface {
	// Geometry returns the value as an opaque Geometry.
	Geometry() Geometry
}

func (Coordinate) isGeometry()       {}
func (CoordinateBounds) isGeometry() {}
func (LineString) isGeometry()       {}
func (Polygon) isGeometry()          {}

// Geometry returns the coordinate as an opaque Geometry.
func (c Coordinate) Geometry() Geometry { return c }

// Geometry returns the bounds as an opaque Geometry.
func (b CoordinateBounds) Geometry() Geometry { return b }

// Geometry returns the line string as an opaque Geometry.
func (l LineString) Geometry() Geometry { return l }

// Geometry returns the polygon as an opaque Geometry.
func (p Polygon) Geometry() Geometry { return p }

// GeometryEqual reports whether two opaque geometries are structurally equal.
// Geometries of different concrete types are never equal.
//
// Parameters:
//   - a, b: the geometries to compare (either may be nil)
//
// Returns:
//   - bool: true if both are nil or both hold the same shape
func GeometryEqual(a, b Geometry) bool {
	if a == nil || b == nil {
		return a == b
	}
	switch ga := a.(type) {
	case Coordinate:
		gb, ok := b.(Coordinate)
		return ok && ga == gb
	case CoordinateBounds:
		gb, ok := b.(CoordinateBounds)
		return ok && ga == gb
	case LineString:
		gb, ok := b.(LineString)
		if !ok || len(ga) != len(gb) {
			return false
		}
		for i := range ga {
			if ga[i] != gb[i] {
				return false
			}
		}
		return true
	case Polygon:
		gb, ok := b.(Polygon)
		if !ok || len(ga) != len(gb) {
			return false
		}
		for i := range ga {
			if len(ga[i]) != len(gb[i]) {
				return false
			}
			for j := range ga[i] {
				if ga[i][j] != gb[i][j] {
					return false
				}
			}
		}
		return true
	default:
		return false
	}
}

// BoundsOf computes the coordinate bounds enclosing an opaque geometry.
// Intended for camera-state engines framing an overview; the viewport core
// never calls it.
//
// Parameters:
//   - g: the geometry to bound
//
// Returns:
//   - CoordinateBounds: the enclosing bounds (zero value for nil geometry)
func BoundsOf(g Geometry) CoordinateBounds {
	switch gv := g.(type) {
	case Coordinate:
		return CoordinateBounds{Southwest: gv, Northeast: gv}
	case CoordinateBounds:
		return gv
	case LineString:
		return boundsOfCoords(gv)
	case Polygon:
		var all []Coordinate
		for _, ring := range gv {
			all = append(all, ring...)
		}
		return boundsOfCoords(all)
	default:
		return CoordinateBounds{}
	}
}

// boundsOfCoords returns the bounds of a coordinate list, or the zero value
// for an empty list.
func boundsOfCoords(coords []Coordinate) CoordinateBounds {
	if len(coords) == 0 {
		return CoordinateBounds{}
	}
	b := CoordinateBounds{Southwest: coords[0], Northeast: coords[0]}
	for _, c := range coords[1:] {
		b.Southwest.Latitude = min(b.Southwest.Latitude, c.Latitude)
		b.Southwest.Longitude = min(b.Southwest.Longitude, c.Longitude)
		b.Northeast.Latitude = max(b.Northeast.Latitude, c.Latitude)
		b.Northeast.Longitude = max(b.Northeast.Longitude, c.Longitude)
	}
	return b
}
