package storage

import "sync"

// MemoryBackend is an in-process Backend for tests.
type MemoryBackend struct {
	mu    sync.Mutex
	slots map[string][]byte
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{slots: make(map[string][]byte)}
}

func (b *MemoryBackend) Read(slot string) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	data, ok := b.slots[slot]
	if !ok {
		return nil, ErrSlotNotFound
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return cp, nil
}

func (b *MemoryBackend) Write(slot string, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	cp := make([]byte, len(data))
	copy(cp, data)
	b.slots[slot] = cp
	return nil
}

func (b *MemoryBackend) Slots() ([]string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	var slots []string
	for name := range b.slots {
		slots = append(slots, name)
	}
	return slots, nil
}

func (b *MemoryBackend) Close() error { return nil }

var _ Backend = (*MemoryBackend)(nil)
