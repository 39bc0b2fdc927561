package workflow

import (
	"sync"

	"github.com/google/uuid"
)

// keyedMutex serializes all mutating operations per appointment. Locks are
// created on demand and never evicted; the per-entry cost is one mutex.
type keyedMutex struct {
	locks sync.Map // uuid.UUID -> *sync.Mutex
}

func (k *keyedMutex) lock(id uuid.UUID) func() {
	v, _ := k.locks.LoadOrStore(id, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
