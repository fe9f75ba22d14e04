package console

import "sync"

// EntityStatus is the per-entity request state views branch on to disable
// controls and render spinners.
type EntityStatus int

const (
	StatusIdle EntityStatus = iota
	StatusPending
	StatusFailed
)

// Tracker records in-flight requests per entity ID. It gives views two
// guarantees:
//
//  1. Pending(id) lets a view ignore a second action on the same entity
//     while one is outstanding (the disabled-control rule).
//  2. Every request gets a per-entity sequence number from Begin; Finish
//     reports whether its response may still be applied. A response that
//     arrives after a newer one has already been applied is discarded, so
//     a slow request can never overwrite fresher state.
type Tracker struct {
	mu      sync.Mutex
	entries map[int64]*trackEntry
}

type trackEntry struct {
	inflight    int
	seq         uint64
	lastApplied uint64
	failed      bool
}

func NewTracker() *Tracker {
	return &Tracker{entries: make(map[int64]*trackEntry)}
}

// Pending reports whether a request for id is outstanding.
func (t *Tracker) Pending(id int64) bool {
	return t.Status(id) == StatusPending
}

// Status returns the current state for id.
func (t *Tracker) Status(id int64) EntityStatus {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.entries[id]
	switch {
	case !ok:
		return StatusIdle
	case e.inflight > 0:
		return StatusPending
	case e.failed:
		return StatusFailed
	default:
		return StatusIdle
	}
}

// Begin marks a request for id as in flight and returns its sequence
// number, to be handed back to Finish.
func (t *Tracker) Begin(id int64) uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	e := t.entry(id)
	e.inflight++
	e.seq++
	return e.seq
}

// Finish records the outcome of the request tagged seq and reports whether
// its response may be applied to local state. It returns false when a
// response with a higher sequence number was already applied.
func (t *Tracker) Finish(id int64, seq uint64, failed bool) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	e := t.entry(id)
	if e.inflight > 0 {
		e.inflight--
	}
	if seq <= e.lastApplied {
		return false
	}
	e.lastApplied = seq
	e.failed = failed
	return true
}

func (t *Tracker) entry(id int64) *trackEntry {
	e, ok := t.entries[id]
	if !ok {
		e = &trackEntry{}
		t.entries[id] = e
	}
	return e
}
