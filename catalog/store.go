package catalog

import (
	"sync"
	"sync/atomic"
)

// Store publishes catalog snapshots to readers. Readers get the current
// snapshot pointer and keep using it for however long their computation
// runs; Replace swaps the pointer atomically so a half-loaded catalog is
// never observable.
type Store struct {
	current atomic.Pointer[Snapshot]

	mu   sync.Mutex
	subs []chan struct{}
}

// NewStore creates a store seeded with the given snapshot.
func NewStore(initial *Snapshot) *Store {
	s := &Store{}
	if initial == nil {
		initial = &Snapshot{}
	}
	s.current.Store(initial)
	return s
}

// Current returns the live snapshot. The returned value must be treated as
// read-only.
func (s *Store) Current() *Snapshot {
	return s.current.Load()
}

// Replace swaps in a new snapshot wholesale and wakes subscribers.
func (s *Store) Replace(next *Snapshot) {
	if next == nil {
		return
	}
	s.current.Store(next)

	s.mu.Lock()
	subs := make([]chan struct{}, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()
	for _, ch := range subs {
		select {
		case ch <- struct{}{}:
		default: // subscriber already has a pending wake-up
		}
	}
}

// Subscribe returns a channel that receives a signal after every Replace.
// The signal carries no data: subscribers re-read Current.
func (s *Store) Subscribe() <-chan struct{} {
	ch := make(chan struct{}, 1)
	s.mu.Lock()
	s.subs = append(s.subs, ch)
	s.mu.Unlock()
	return ch
}
