// Package storage provides the durable layer for tempo's entity collections.
// Each entity kind occupies one named slot holding a JSON document; a Backend
// is any byte store that can read and write those slots.
package storage

import "errors"

// ErrSlotNotFound indicates the named slot has never been written.
var ErrSlotNotFound = errors.New("slot not found")

// Slot names, one per entity kind.
const (
	SlotTodos       = "todos"
	SlotHabits      = "habits"
	SlotCompletions = "completions"
	SlotSessions    = "sessions"
)

// Backend is a named-slot durable byte store. Implementations must be safe
// for use from a single process; cross-collection locking is handled by the
// repositories on top.
type Backend interface {
	Read(slot string) ([]byte, error)
	Write(slot string, data []byte) error
	Slots() ([]string, error)
	Close() error
}
