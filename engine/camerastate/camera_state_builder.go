package camerastate

// EngineBuilderOption is a functional option for configuring a camera-state
// engine. Use the With* functions to create options.
type EngineBuilderOption func(*engineImpl)

// WithHeadingProvider attaches the live heading source consulted by
// follow-puck states whose bearing tracks the heading.
//
// Parameters:
//   - provider: the heading source to attach
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithHeadingProvider(provider HeadingProvider) EngineBuilderOption {
	return func(e *engineImpl) {
		e.headingProvider = provider
	}
}

// WithDefaultCamera sets the camera used for style-default requests whose
// style handle cannot report its own default.
//
// Parameters:
//   - snapshot: the fallback default camera
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithDefaultCamera(snapshot CameraSnapshot) EngineBuilderOption {
	return func(e *engineImpl) {
		e.defaultCamera = snapshot
	}
}
