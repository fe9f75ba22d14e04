// Package session holds the process-wide authenticated identity. It is the
// single source of truth every view reads to branch on "is a user logged
// in" and "what may this user see".
//
// The store has exactly two write operations, Login and Logout, and never
// talks to the backend itself. Callers issue the corresponding auth request
// first and mutate the store only once the outcome is known.
package session

import (
	"sync"

	"github.com/marketbay/storefront/internal/commerce/domain"
)

// Snapshot is a point-in-time read of the store, delivered to subscribers.
// Authenticated is derived: it is true iff Identity is non-nil. The store
// never represents one without the other.
type Snapshot struct {
	Identity      *domain.Identity
	Authenticated bool
}

// Store is safe for concurrent use. Both write operations are single atomic
// assignments under the lock; there is no partial-update window.
type Store struct {
	mu       sync.RWMutex
	identity *domain.Identity
	subs     map[int]func(Snapshot)
	nextSub  int
}

func NewStore() *Store {
	return &Store{subs: make(map[int]func(Snapshot))}
}

// Login unconditionally replaces the stored identity. Last write wins; the
// input is trusted as already validated by the backend and is copied so the
// caller cannot alias the store's state.
func (s *Store) Login(identity domain.Identity) {
	id := identity
	id.Roles = append([]string(nil), identity.Roles...)

	s.mu.Lock()
	s.identity = &id
	subs := s.snapshotSubsLocked()
	snap := s.snapshotLocked()
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}

// Logout unconditionally clears the stored identity. Idempotent: logging
// out while already anonymous is a no-op that still notifies subscribers.
func (s *Store) Logout() {
	s.mu.Lock()
	s.identity = nil
	subs := s.snapshotSubsLocked()
	snap := s.snapshotLocked()
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}

// Identity returns a copy of the current identity, or nil when anonymous.
func (s *Store) Identity() *domain.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyIdentity(s.identity)
}

// Authenticated reports whether an identity is present.
func (s *Store) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity != nil
}

// Snapshot returns the current state as delivered to subscribers.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Subscribe registers fn to run after every state transition and returns an
// unsubscribe function. fn is called outside the store's lock.
func (s *Store) Subscribe(fn func(Snapshot)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{
		Identity:      copyIdentity(s.identity),
		Authenticated: s.identity != nil,
	}
}

func (s *Store) snapshotSubsLocked() []func(Snapshot) {
	out := make([]func(Snapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		out = append(out, fn)
	}
	return out
}

func copyIdentity(id *domain.Identity) *domain.Identity {
	if id == nil {
		return nil
	}
	clone := *id
	clone.Roles = append([]string(nil), id.Roles...)
	return &clone
}
