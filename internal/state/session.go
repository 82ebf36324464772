package state

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// Session identifies one run of the painting app. Nothing about it is
// persisted.
type Session struct {
	ID    string
	Store *Store
	Tool  Tool
}

// NewSession starts a session with an empty store and the default tool.
func NewSession() *Session {
	return &Session{
		ID:    uuid.NewString(),
		Store: NewStore(),
		Tool:  NewTool(),
	}
}

// revision counts store mutations. It only moves forward.
type revision struct {
	n uint64
}

func (r *revision) next() uint64 {
	return atomic.AddUint64(&r.n, 1)
}

func (r *revision) load() uint64 {
	return atomic.LoadUint64(&r.n)
}
