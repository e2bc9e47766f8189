package common

// Insets is an abstract four-sided inset expressed with direction-independent
// edges. Leading and trailing resolve to left or right only once a layout
// direction is known; see Resolved.
type Insets struct {
	// Top is the inset applied to the top edge.
	Top float64
	// Leading is the inset applied to the leading edge (left in left-to-right
	// layouts, right in right-to-left layouts).
	Leading float64
	// Bottom is the inset applied to the bottom edge.
	Bottom float64
	// Trailing is the inset applied to the trailing edge (right in
	// left-to-right layouts, left in right-to-left layouts).
	Trailing float64
}

// EdgeInsets is a concrete four-sided inset in directional form, ready for a
// camera-state engine. Safe-area insets arrive in this form and resolved
// padding leaves in this form.
type EdgeInsets struct {
	// Top is the inset applied to the top side.
	Top float64
	// Left is the inset applied to the left side.
	Left float64
	// Bottom is the inset applied to the bottom side.
	Bottom float64
	// Right is the inset applied to the right side.
	Right float64
}

// Set writes length into the Insets field of every abstract edge contained in
// edges, leaving the other fields untouched.
//
// Parameters:
//   - edges: the abstract edges to set
//   - length: the inset value to write
func (in *Insets) Set(edges Edge, length float64) {
	for _, entry := range edgeTable {
		if edges.Contains(entry.edge) {
			*entry.field(in) = length
		}
	}
}

// Value returns the inset stored for a single abstract edge.
//
// Parameters:
//   - edge: the abstract edge to read
//
// Returns:
//   - float64: the stored inset value
func (in *Insets) Value(edge Edge) float64 {
	for _, entry := range edgeTable {
		if edge == entry.edge {
			return *entry.field(in)
		}
	}
	panic("common: Value requires exactly one edge")
}

// Resolved converts the abstract insets to directional form under the given
// layout direction.
//
// Parameters:
//   - dir: the layout direction to resolve under
//
// Returns:
//   - EdgeInsets: the directional equivalent of in
func (in Insets) Resolved(dir LayoutDirection) EdgeInsets {
	var out EdgeInsets
	for _, entry := range edgeTable {
		out.SetSide(entry.side(dir), *entry.field(&in))
	}
	return out
}

// Add returns the field-wise sum of in and other.
//
// Parameters:
//   - other: the insets to add
//
// Returns:
//   - EdgeInsets: the combined insets
func (in EdgeInsets) Add(other EdgeInsets) EdgeInsets {
	return EdgeInsets{
		Top:    in.Top + other.Top,
		Left:   in.Left + other.Left,
		Bottom: in.Bottom + other.Bottom,
		Right:  in.Right + other.Right,
	}
}

// Side returns the inset stored for the given concrete side.
//
// Parameters:
//   - s: the side to read
//
// Returns:
//   - float64: the stored inset value
func (in EdgeInsets) Side(s Side) float64 {
	switch s {
	case SideTop:
		return in.Top
	case SideLeft:
		return in.Left
	case SideBottom:
		return in.Bottom
	default:
		return in.Right
	}
}

// SetSide writes v into the field for the given concrete side.
//
// Parameters:
//   - s: the side to write
//   - v: the inset value to store
func (in *EdgeInsets) SetSide(s Side, v float64) {
	switch s {
	case SideTop:
		in.Top = v
	case SideLeft:
		in.Left = v
	case SideBottom:
		in.Bottom = v
	default:
		in.Right = v
	}
}
