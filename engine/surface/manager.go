package surface

import (
	"log"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
)

// Manager holds the registry of surfaces keyed by z-index and drives their
// per-frame viewport resolution. Thread-safe for concurrent access.
type Manager interface {
	// AddSurface registers a surface at the given z-index key.
	//
	// Parameters:
	//   - key: the z-index key (lower prepares first)
	//   - s: the Surface to register
	AddSurface(key int, s Surface)

	// RemoveSurface removes the surface at the given z-index key.
	//
	// Parameters:
	//   - key: the z-index key of the surface to remove
	RemoveSurface(key int)

	// Surface retrieves the surface registered at the given z-index key.
	// Returns nil if no surface exists at that key.
	//
	// Parameters:
	//   - key: the z-index key of the surface to retrieve
	//
	// Returns:
	//   - Surface: the surface at the key, or nil if not found
	Surface(key int) Surface

	// Surfaces returns a copy of all registered surfaces keyed by z-index.
	//
	// Returns:
	//   - map[int]Surface: a copy of the surfaces map
	Surfaces() map[int]Surface

	// PrepareFrame resolves and applies the viewport of every active surface
	// exactly once. Resolution fans out across the worker pool; the call
	// returns once all surfaces have been prepared.
	PrepareFrame()
}

type managerImpl struct {
	mu *sync.RWMutex

	surfaces map[int]Surface

	// pool manages a bounded set of reusable goroutines for the parallel
	// resolution fan-out. Workers persist across frames, avoiding per-frame
	// goroutine spawn/teardown overhead.
	pool    worker.DynamicWorkerPool
	workers int // stored so we can log/inspect the configured count
}

var _ Manager = &managerImpl{}

// NewManager creates a Manager with an empty surface registry.
//
// Parameters:
//   - options: functional options to configure the manager
//
// Returns:
//   - Manager: the newly created manager
func NewManager(options ...ManagerBuilderOption) Manager {
	m := &managerImpl{
		mu:       &sync.RWMutex{},
		surfaces: make(map[int]Surface),
		workers:  max(runtime.NumCPU()-1, 1),
	}
	for _, option := range options {
		option(m)
	}

	// Initialize the pool after options so WithWorkers can override the
	// default. Queue size of 256 accommodates typical surface counts with
	// headroom.
	m.pool = worker.NewDynamicWorkerPool(m.workers, 256, 1*time.Second)

	return m
}

func (m *managerImpl) AddSurface(key int, s Surface) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.surfaces[key] = s
}

func (m *managerImpl) RemoveSurface(key int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.surfaces, key)
}

func (m *managerImpl) Surface(key int) Surface {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.surfaces[key]
}

func (m *managerImpl) Surfaces() map[int]Surface {
	m.mu.RLock()
	defer m.mu.RUnlock()
	cp := make(map[int]Surface, len(m.surfaces))
	for k, v := range m.surfaces {
		cp[k] = v
	}
	return cp
}

func (m *managerImpl) PrepareFrame() {
	m.mu.RLock()
	active := make([]Surface, 0, len(m.surfaces))
	for _, s := range m.surfaces {
		if s.Active() {
			active = append(active, s)
		}
	}
	m.mu.RUnlock()

	if len(active) == 0 {
		return
	}

	// Fan the per-surface resolution out over the worker pool. A WaitGroup
	// provides per-frame barrier sync since pool.Wait() blocks until workers
	// idle-exit, which is unsuitable for frame-rate workloads.
	var wg sync.WaitGroup
	for i, s := range active {
		wg.Add(1)
		sCap := s // capture for closure
		m.pool.SubmitTask(worker.Task{
			ID: i,
			Do: func() (any, error) {
				defer wg.Done()
				if err := sCap.PrepareFrame(); err != nil {
					log.Printf("surface %q: prepare frame failed: %v", sCap.Name(), err)
				}
				return nil, nil
			},
		})
	}
	wg.Wait()
}
