// package window provides the glfw-backed host view for map surfaces. It
// owns the platform window, measures the safe-area insets reserved by window
// chrome, and reports the layout direction: the ambient inputs a viewport
// resolver needs.
package window

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/Carmen-Shannon/atlas-go/common"
	"github.com/Carmen-Shannon/atlas-go/engine/viewport"
)

// Window provides platform windowing, input event handling, and the host
// view inputs consumed at viewport resolution time. It implements
// viewport.HostView.
type Window interface {
	viewport.HostView

	// SetUpdateCallback sets the function called each message loop iteration.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetUpdateCallback(callback func())

	// SetResizeCallback sets the function called when the window is resized.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SetScrollCallback sets the callback for mouse scroll wheel events.
	//
	// Parameters:
	//   - callback: function receiving scroll delta (positive = up/zoom in, negative = down/zoom out)
	SetScrollCallback(callback func(delta float32))

	// SetKeyDownCallback sets the callback for key press events.
	//
	// Parameters:
	//   - callback: function receiving the key code
	SetKeyDownCallback(callback func(keyCode uint32))

	// SetKeyUpCallback sets the callback for key release events.
	//
	// Parameters:
	//   - callback: function receiving the key code
	SetKeyUpCallback(callback func(keyCode uint32))

	// SetLayoutDirection changes the reported layout direction at runtime,
	// e.g. when the host locale changes.
	//
	// Parameters:
	//   - dir: the new layout direction
	SetLayoutDirection(dir common.LayoutDirection)

	// IsRunning returns true if the window is still active.
	//
	// Returns:
	//   - bool: true if window is running, false if closed
	IsRunning() bool

	// Close closes the window and releases platform resources.
	//
	// Returns:
	//   - error: error if close operation fails
	Close() error

	// ProcessMessages runs the window message loop.
	// Blocks until the window is closed. Calls OnUpdate callback each iteration.
	ProcessMessages()

	// Width returns the current window client area width in pixels.
	//
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the current window client area height in pixels.
	//
	// Returns:
	//   - int: height in pixels
	Height() int
}

// engineWindow is the implementation of the Window interface.
// Holds window configuration, GLFW state, and event callbacks.
type engineWindow struct {
	// mu guards the fields read off the windowing thread: dimensions, cached
	// safe-area insets, and layout direction. Viewport resolution runs on
	// worker goroutines while GLFW stays pinned to the main thread, so the
	// safe area is cached here each poll rather than queried from GLFW at
	// read time.
	mu sync.RWMutex

	// title is the window title displayed in the title bar.
	title string

	// width is the current window client area width in pixels.
	width int

	// height is the current window client area height in pixels.
	height int

	// layoutDirection is the reported host layout direction.
	layoutDirection common.LayoutDirection

	// safeArea is the cached chrome-reserved inset, refreshed each poll.
	safeArea common.EdgeInsets

	// safeAreaOverride, when non-nil, replaces the measured safe area.
	safeAreaOverride *common.EdgeInsets

	// internalWindow holds the platform-specific window data (glfwWindow).
	internalWindow any

	// onUpdate is called each iteration of the message loop (if set).
	onUpdate func()

	// onResize is called when the window is resized.
	onResize func(width, height int)

	// onScroll is called for mouse wheel events.
	// Positive delta = scroll up (zoom in), negative = scroll down (zoom out).
	onScroll func(delta float32)

	// onKeyDown is called when a key is pressed.
	onKeyDown func(keyCode uint32)

	// onKeyUp is called when a key is released.
	onKeyUp func(keyCode uint32)
}

var _ Window = &engineWindow{}

// NewWindow creates a new Window with the specified options.
// Applies default values first, then each option in order.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the configured window (not yet spawned)
func NewWindow(options ...WindowBuilderOption) Window {
	w := &engineWindow{
		title:           "Default Window Title",
		width:           1280,
		height:          720,
		layoutDirection: common.LayoutLeftToRight,
	}
	for _, opt := range options {
		opt(w)
	}
	if err := newPlatformWindow(w); err != nil {
		panic(fmt.Sprintf("failed to create platform window: %v", err))
	}
	return w
}

func (w *engineWindow) SetUpdateCallback(callback func()) {
	w.onUpdate = callback
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *engineWindow) SetScrollCallback(callback func(delta float32)) {
	w.onScroll = callback
}

func (w *engineWindow) SetKeyDownCallback(callback func(keyCode uint32)) {
	w.onKeyDown = callback
}

func (w *engineWindow) SetKeyUpCallback(callback func(keyCode uint32)) {
	w.onKeyUp = callback
}

func (w *engineWindow) SafeAreaInsets() common.EdgeInsets {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.safeAreaOverride != nil {
		return *w.safeAreaOverride
	}
	return w.safeArea
}

func (w *engineWindow) LayoutDirection() common.LayoutDirection {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.layoutDirection
}

func (w *engineWindow) SetLayoutDirection(dir common.LayoutDirection) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.layoutDirection = dir
}

func (w *engineWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *engineWindow) ProcessMessages() {
	for w.IsRunning() {
		if succ := platformProcessMessages(w); !succ {
			break
		}

		if w.onUpdate != nil {
			w.onUpdate()
		}

		runtime.Gosched()
	}
}

func (w *engineWindow) Width() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.width
}

func (w *engineWindow) Height() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.height
}
