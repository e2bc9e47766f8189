package viewport

import (
	"github.com/Carmen-Shannon/atlas-go/common"
)

// ResolvePadding combines the ambient safe-area insets with a viewport's
// inset configuration into the final directional padding for the camera-state
// engine.
//
// The ordering is significant: ignored edges are zeroed out of the safe-area
// contribution first, and the user insets are added afterwards. Ignoring an
// edge therefore never cancels a user-specified inset on that same edge.
//
// Parameters:
//   - opts: the viewport's inset configuration
//   - dir: the host layout direction
//   - safeArea: the ambient safe-area insets in directional form
//
// Returns:
//   - common.EdgeInsets: the combined padding in directional form
func ResolvePadding(opts InsetOptions, dir common.LayoutDirection, safeArea common.EdgeInsets) common.EdgeInsets {
	opts.IgnoredSafeAreaEdges.Each(dir, func(_ common.Edge, side common.Side) {
		safeArea.SetSide(side, 0)
	})
	return safeArea.Add(opts.Insets.Resolved(dir))
}
