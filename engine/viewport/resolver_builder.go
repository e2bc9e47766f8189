package viewport

import (
	"github.com/Carmen-Shannon/atlas-go/common"
)

// ResolverBuilderOption is a functional option for configuring a resolver.
// Use the With* functions to create options.
type ResolverBuilderOption func(*resolverImpl)

// WithHostView attaches the host view supplying ambient layout inputs.
// Required; NewResolver panics without one.
//
// Parameters:
//   - hostView: the host view to attach
//
// Returns:
//   - ResolverBuilderOption: option function to apply
func WithHostView(hostView HostView) ResolverBuilderOption {
	return func(r *resolverImpl) {
		r.hostView = hostView
	}
}

// WithStyle attaches the opaque style handle carried into style-default
// resolutions.
//
// Parameters:
//   - style: the style handle to attach
//
// Returns:
//   - ResolverBuilderOption: option function to apply
func WithStyle(style StyleSource) ResolverBuilderOption {
	return func(r *resolverImpl) {
		r.style = style
	}
}

// StaticHostView is a HostView with fixed inputs. Useful for headless
// resolution and tests.
type StaticHostView struct {
	// Insets is the fixed safe-area inset.
	Insets common.EdgeInsets
	// Direction is the fixed layout direction.
	Direction common.LayoutDirection
}

var _ HostView = StaticHostView{}

// SafeAreaInsets returns the fixed safe-area insets.
func (s StaticHostView) SafeAreaInsets() common.EdgeInsets {
	return s.Insets
}

// LayoutDirection returns the fixed layout direction.
func (s StaticHostView) LayoutDirection() common.LayoutDirection {
	return s.Direction
}
