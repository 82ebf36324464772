package state

import (
	"log"
	"sync"
)

// Store is the ordered list of segments making up the drawing. Insertion
// order is z-order: later segments are drawn on top.
type Store struct {
	segments []Segment
	rev      revision
	mu       sync.RWMutex
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{segments: make([]Segment, 0)}
}

// Append adds s on top of the drawing.
func (st *Store) Append(s Segment) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.segments = append(st.segments, s)
	st.rev.next()
}

// EraseAt removes every segment with an endpoint inside the eraser box at
// cursor and returns how many were removed. Survivors keep their order.
func (st *Store) EraseAt(cursor Point, brushSize float32) int {
	area := EraseArea(cursor, brushSize)

	st.mu.Lock()
	defer st.mu.Unlock()

	kept := st.segments[:0]
	for _, s := range st.segments {
		if !s.inArea(area) {
			kept = append(kept, s)
		}
	}
	removed := len(st.segments) - len(kept)
	st.segments = kept

	if removed > 0 {
		st.rev.next()
		log.Printf("[STORE] Erased %d segments at (%.1f, %.1f), %d left", removed, cursor.X, cursor.Y, len(kept))
	}
	return removed
}

// Reset empties the store regardless of its contents.
func (st *Store) Reset() {
	st.mu.Lock()
	defer st.mu.Unlock()
	n := len(st.segments)
	st.segments = make([]Segment, 0)
	st.rev.next()
	log.Printf("[STORE] Reset, dropped %d segments", n)
}

// Apply performs a transition produced by Translate and returns the number
// of segments appended or removed.
func (st *Store) Apply(tr Transition) int {
	switch {
	case tr.Erase:
		return st.EraseAt(tr.Cursor, tr.BrushSize)
	case tr.Append != nil:
		st.Append(*tr.Append)
		return 1
	}
	return 0
}

// Snapshot returns a copy of the segments in drawing order. The copy is not
// affected by later mutations.
func (st *Store) Snapshot() []Segment {
	st.mu.RLock()
	defer st.mu.RUnlock()
	segments := make([]Segment, len(st.segments))
	copy(segments, st.segments)
	return segments
}

// Len returns the number of segments currently stored.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.segments)
}

// Revision changes every time the contents change.
func (st *Store) Revision() uint64 {
	return st.rev.load()
}
