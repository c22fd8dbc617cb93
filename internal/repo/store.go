// Package repo implements the typed repositories over the storage layer.
// Every mutation goes through a repository method; records are never modified
// in place by callers. Each repository guards its collection with a mutex so
// read-modify-write cycles are atomic within the process.
package repo

import (
	"github.com/google/uuid"

	"github.com/tempo-app/tempo/internal/clock"
	"github.com/tempo-app/tempo/internal/storage"
)

// Store bundles the four repositories over one backend.
type Store struct {
	Todos       *Todos
	Habits      *Habits
	Completions *Completions
	Sessions    *Sessions

	backend storage.Backend
}

// Open builds the repositories over the given backend and clock.
func Open(backend storage.Backend, clk clock.Clock) *Store {
	return &Store{
		Todos:       NewTodos(backend, clk),
		Habits:      NewHabits(backend, clk),
		Completions: NewCompletions(backend, clk),
		Sessions:    NewSessions(backend, clk),
		backend:     backend,
	}
}

// Backend exposes the underlying byte store, used by system commands.
func (s *Store) Backend() storage.Backend { return s.backend }

func (s *Store) Close() error { return s.backend.Close() }

// newID returns a process-unique record id.
func newID() string { return uuid.NewString() }
