// package common contains the shared value types used throughout this library: layout edges and directions, abstract and
// directional insets, and geographic geometry. They are not interface-wrapped structs, just plain values.
package common

//go:generate go tool stringer -type=LayoutDirection,Side -output=layout_string.go

// LayoutDirection describes the reading direction of the host layout.
// Abstract leading/trailing edges resolve to concrete left/right sides
// depending on this value.
type LayoutDirection int

const (
	// LayoutLeftToRight resolves leading to left and trailing to right.
	LayoutLeftToRight LayoutDirection = iota

	// LayoutRightToLeft resolves leading to right and trailing to left.
	LayoutRightToLeft
)

// Side is a concrete, direction-independent side of a rectangle.
type Side int

const (
	SideTop Side = iota
	SideLeft
	SideBottom
	SideRight
)

// Edge is an abstract rectangle edge. Top and bottom are direction-invariant;
// leading and trailing flip with the layout direction. Edge values are bit
// flags and compose with |.
type Edge uint8

const (
	EdgeTop Edge = 1 << iota
	EdgeBottom
	EdgeLeading
	EdgeTrailing

	// EdgeVertical combines the direction-invariant edges.
	EdgeVertical = EdgeTop | EdgeBottom

	// EdgeHorizontal combines the direction-dependent edges.
	EdgeHorizontal = EdgeLeading | EdgeTrailing

	// EdgeAll combines all four edges.
	EdgeAll = EdgeVertical | EdgeHorizontal
)

// edgeTable is the single source of truth mapping each abstract edge to its
// Insets field and to its concrete side under a layout direction. Every
// component that sets or reads a named edge's inset value consults this table;
// none duplicates the mapping.
var edgeTable = []struct {
	edge  Edge
	field func(*Insets) *float64
	side  func(LayoutDirection) Side
}{
	{
		edge:  EdgeTop,
		field: func(in *Insets) *float64 { return &in.Top },
		side:  func(LayoutDirection) Side { return SideTop },
	},
	{
		edge:  EdgeBottom,
		field: func(in *Insets) *float64 { return &in.Bottom },
		side:  func(LayoutDirection) Side { return SideBottom },
	},
	{
		edge:  EdgeLeading,
		field: func(in *Insets) *float64 { return &in.Leading },
		side: func(dir LayoutDirection) Side {
			if dir == LayoutRightToLeft {
				return SideRight
			}
			return SideLeft
		},
	},
	{
		edge:  EdgeTrailing,
		field: func(in *Insets) *float64 { return &in.Trailing },
		side: func(dir LayoutDirection) Side {
			if dir == LayoutRightToLeft {
				return SideLeft
			}
			return SideRight
		},
	},
}

// Contains reports whether e contains every edge in other.
//
// Parameters:
//   - other: the edge set to test for
//
// Returns:
//   - bool: true if all edges in other are present in e
func (e Edge) Contains(other Edge) bool {
	return e&other == other
}

// Resolve returns the concrete side of a single abstract edge under the given
// layout direction. For composite edge sets use Each instead.
//
// Parameters:
//   - dir: the layout direction to resolve under
//
// Returns:
//   - Side: the concrete side the edge maps to
func (e Edge) Resolve(dir LayoutDirection) Side {
	for _, entry := range edgeTable {
		if e == entry.edge {
			return entry.side(dir)
		}
	}
	panic("common: Resolve requires exactly one edge")
}

// Each calls fn once for every abstract edge contained in e, passing the edge
// and its concrete side under dir. Iteration order is top, bottom, leading,
// trailing.
//
// Parameters:
//   - dir: the layout direction used to resolve each edge's side
//   - fn: callback receiving the edge and its resolved side
func (e Edge) Each(dir LayoutDirection, fn func(edge Edge, side Side)) {
	for _, entry := range edgeTable {
		if e.Contains(entry.edge) {
			fn(entry.edge, entry.side(dir))
		}
	}
}
