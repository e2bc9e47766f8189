package surface

// ManagerBuilderOption is a functional option for configuring a manager.
// Use the With* functions to create options.
type ManagerBuilderOption func(*managerImpl)

// WithWorkers sets the number of worker goroutines used for the per-frame
// resolution fan-out. Defaults to NumCPU-1 (minimum 1).
//
// Parameters:
//   - workers: the worker count (values < 1 are clamped to 1)
//
// Returns:
//   - ManagerBuilderOption: option function to apply
func WithWorkers(workers int) ManagerBuilderOption {
	return func(m *managerImpl) {
		m.workers = max(workers, 1)
	}
}
