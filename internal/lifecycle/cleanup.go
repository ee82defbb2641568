// Package lifecycle tears the application down once the screen has exited.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"
)

// DefaultTimeout bounds how long teardown may take in total.
const DefaultTimeout = 5 * time.Second

// ErrTimeout is returned when teardown did not finish in time.
var ErrTimeout = errors.New("cleanup timeout exceeded")

// Resource is something released at teardown.
type Resource interface {
	Cleanup() error
	Name() string
}

type funcResource struct {
	name string
	fn   func() error
}

func (r funcResource) Cleanup() error { return r.fn() }
func (r funcResource) Name() string { return r.name }

// Manager runs registered cleanups once, in registration order, under a
// timeout. A panicking cleanup is recorded as an error and the rest still run.
type Manager struct {
	mu        sync.Mutex
	resources []Resource
	timeout   time.Duration
	once      sync.Once
	errs      []error
}

// NewManager returns a Manager. A non-positive timeout selects DefaultTimeout.
func NewManager(timeout time.Duration) *Manager {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Manager{timeout: timeout}
}

// Register adds a resource.
func (m *Manager) Register(r Resource) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resources = append(m.resources, r)
}

// RegisterFunc adds a named cleanup function.
func (m *Manager) RegisterFunc(name string, fn func() error) {
	m.Register(funcResource{name: name, fn: fn})
}

// Execute runs every cleanup. Later calls return the first call's errors.
func (m *Manager) Execute() []error {
	m.once.Do(func() {
		m.errs = m.execute()
	})
	return m.errs
}

func (m *Manager) execute() []error {
	m.mu.Lock()
	resources := make([]Resource, len(m.resources))
	copy(resources, m.resources)
	m.mu.Unlock()

	if len(resources) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	defer cancel()

	var (
		mu   sync.Mutex
		errs []error
	)
	record := func(err error) {
		mu.Lock()
		errs = append(errs, err)
		mu.Unlock()
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for _, r := range resources {
			func() {
				defer func() {
					if p := recover(); p != nil {
						record(fmt.Errorf("%s: panic during cleanup: %v", r.Name(), p))
						log.Printf("cleanup: panic cleaning up %s: %v", r.Name(), p)
					}
				}()

				if err := r.Cleanup(); err != nil {
					record(fmt.Errorf("%s: %w", r.Name(), err))
					log.Printf("cleanup: error cleaning up %s: %v", r.Name(), err)
					return
				}
				log.Printf("cleanup: released %s", r.Name())
			}()
		}
	}()

	select {
	case <-done:
	case <-ctx.Done():
		log.Printf("cleanup: timeout after %v, some resources may not have been released", m.timeout)
		record(ErrTimeout)
	}

	mu.Lock()
	defer mu.Unlock()
	return append([]error(nil), errs...)
}
