package lotlock

import (
	"fmt"
	"sync"
	"time"

	"auction-engine/internal/auctionerrors"
)

// DefaultTimeout is how long Acquire waits for a contended lot before
// giving up with ErrLotBusy.
const DefaultTimeout = 2 * time.Second

// Registry hands out per-lot exclusive locks keyed by lot id. Different lots
// lock independently; the same lot serializes all holders. Idle entries are
// dropped once their last holder releases.
type Registry struct {
	mu      sync.Mutex
	locks   map[string]*entry
	timeout time.Duration
}

type entry struct {
	sem  chan struct{} // capacity 1
	refs int
}

// NewRegistry creates a registry using the given acquisition timeout;
// non-positive timeouts fall back to DefaultTimeout.
func NewRegistry(timeout time.Duration) *Registry {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Registry{
		locks:   make(map[string]*entry),
		timeout: timeout,
	}
}

// Acquire takes the exclusive lock for lotID, waiting at most the registry
// timeout. On success it returns a release func the caller must invoke
// exactly once; on timeout it returns ErrLotBusy.
func (r *Registry) Acquire(lotID string) (func(), error) {
	r.mu.Lock()
	e, ok := r.locks[lotID]
	if !ok {
		e = &entry{sem: make(chan struct{}, 1)}
		r.locks[lotID] = e
	}
	e.refs++
	r.mu.Unlock()

	timer := time.NewTimer(r.timeout)
	defer timer.Stop()

	select {
	case e.sem <- struct{}{}:
		return func() { r.release(lotID, e) }, nil
	case <-timer.C:
		r.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(r.locks, lotID)
		}
		r.mu.Unlock()
		return nil, fmt.Errorf("acquire lock for lot %s: %w", lotID, auctionerrors.ErrLotBusy)
	}
}

func (r *Registry) release(lotID string, e *entry) {
	<-e.sem
	r.mu.Lock()
	e.refs--
	if e.refs == 0 {
		delete(r.locks, lotID)
	}
	r.mu.Unlock()
}

// Len returns the number of lots with live lock entries.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.locks)
}
