package window

import (
	"github.com/Carmen-Shannon/atlas-go/common"
)

// WindowBuilderOption is a functional option for configuring an engineWindow.
// Use the With* functions to create options.
type WindowBuilderOption func(w *engineWindow)

// WithTitle sets the window title displayed in the title bar.
//
// Parameters:
//   - title: the window title text
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithTitle(title string) WindowBuilderOption {
	return func(w *engineWindow) {
		w.title = title
	}
}

// WithWidth sets the initial window width.
//
// Parameters:
//   - width: initial width in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithWidth(width int) WindowBuilderOption {
	return func(w *engineWindow) {
		w.width = width
	}
}

// WithHeight sets the initial window height.
//
// Parameters:
//   - height: initial height in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithHeight(height int) WindowBuilderOption {
	return func(w *engineWindow) {
		w.height = height
	}
}

// WithLayoutDirection sets the layout direction the window reports to
// viewport resolvers. Defaults to left-to-right.
//
// Parameters:
//   - dir: the layout direction
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithLayoutDirection(dir common.LayoutDirection) WindowBuilderOption {
	return func(w *engineWindow) {
		w.layoutDirection = dir
	}
}

// WithSafeAreaOverride replaces the measured chrome insets with a fixed
// value. Useful when the embedding application reserves its own chrome
// inside the client area.
//
// Parameters:
//   - insets: the fixed safe-area insets to report
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithSafeAreaOverride(insets common.EdgeInsets) WindowBuilderOption {
	return func(w *engineWindow) {
		w.safeAreaOverride = &insets
	}
}
