package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tempo-app/tempo/internal/logger"
)

// envelopeVersion is written into every slot so future format changes can be
// migrated on load.
const envelopeVersion = 1

type envelope[T any] struct {
	Version int `json:"version"`
	Items   []T `json:"items"`
}

// Collection is a typed view over one slot of a Backend. Load never fails on
// a missing or corrupt slot: both are treated as an empty collection, so the
// worst case after a bad write is the loss of that one slot's contents.
type Collection[T any] struct {
	backend Backend
	slot    string
}

func NewCollection[T any](backend Backend, slot string) *Collection[T] {
	return &Collection[T]{backend: backend, slot: slot}
}

// Slot returns the slot name this collection reads and writes.
func (c *Collection[T]) Slot() string { return c.slot }

// Load returns all records in the slot. A slot that has never been written,
// or whose payload cannot be decoded, yields an empty slice.
func (c *Collection[T]) Load() ([]T, error) {
	data, err := c.backend.Read(c.slot)
	if err != nil {
		if errors.Is(err, ErrSlotNotFound) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("failed to load collection %q: %w", c.slot, err)
	}

	items, err := decodeSlot[T](data)
	if err != nil {
		logger.Warn("Discarding corrupt slot data", "slot", c.slot, "error", err)
		return []T{}, nil
	}
	return items, nil
}

// Save replaces the slot contents with items.
func (c *Collection[T]) Save(items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(envelope[T]{Version: envelopeVersion, Items: items})
	if err != nil {
		return fmt.Errorf("failed to serialize collection %q: %w", c.slot, err)
	}
	if err := c.backend.Write(c.slot, data); err != nil {
		return fmt.Errorf("failed to save collection %q: %w", c.slot, err)
	}
	return nil
}

// decodeSlot accepts both the versioned envelope and the legacy layout where
// the slot held a bare JSON array of records.
func decodeSlot[T any](data []byte) ([]T, error) {
	var env envelope[T]
	if err := json.Unmarshal(data, &env); err == nil {
		if env.Items == nil {
			env.Items = []T{}
		}
		return env.Items, nil
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}
