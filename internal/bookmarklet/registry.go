package bookmarklet

import (
	"sync"
	"time"

	"github.com/google/uuid"
	cache "github.com/patrickmn/go-cache"
)

// DefaultPendingTTL bounds how long the page waits for a save or search
// round-trip before the callback is dropped.
const DefaultPendingTTL = 30 * time.Second

// PendingRegistry holds in-flight request callbacks keyed by generated id,
// replacing the ambient per-page globals the overlay used to stash callbacks
// in. Entries expire on their own; resolving an expired or unknown id is a
// no-op.
type PendingRegistry struct {
	// mu makes the Get-then-Delete in Resolve atomic so a callback cannot
	// fire twice for concurrent resolves of the same id.
	mu      sync.Mutex
	pending *cache.Cache
}

func NewPendingRegistry(ttl time.Duration) *PendingRegistry {
	if ttl <= 0 {
		ttl = DefaultPendingTTL
	}
	return &PendingRegistry{
		pending: cache.New(ttl, ttl),
	}
}

// Register stores a callback and returns the id the response must carry.
func (r *PendingRegistry) Register(callback func(result any)) string {
	id := uuid.New().String()
	r.pending.SetDefault(id, callback)
	return id
}

// Resolve fires and removes the callback for id. Returns false when the id
// is unknown, already resolved, cancelled, or expired.
func (r *PendingRegistry) Resolve(id string, result any) bool {
	r.mu.Lock()
	entry, found := r.pending.Get(id)
	if found {
		r.pending.Delete(id)
	}
	r.mu.Unlock()

	if !found {
		return false
	}
	entry.(func(result any))(result)
	return true
}

// Cancel removes a pending entry without firing it.
func (r *PendingRegistry) Cancel(id string) {
	r.pending.Delete(id)
}

// Len reports how many requests are currently in flight.
func (r *PendingRegistry) Len() int {
	return r.pending.ItemCount()
}
