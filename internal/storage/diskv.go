package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"
)

// DiskvBackend stores each slot as one file under a base directory. It is the
// default backend.
type DiskvBackend struct {
	d        *diskv.Diskv
	basePath string
}

func NewDiskvBackend(basePath string) (*DiskvBackend, error) {
	if err := os.MkdirAll(basePath, 0700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &DiskvBackend{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
		basePath: basePath,
	}, nil
}

func (b *DiskvBackend) Read(slot string) ([]byte, error) {
	data, err := b.d.Read(slot)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrSlotNotFound
		}
		return nil, fmt.Errorf("failed to read slot %q: %w", slot, err)
	}
	return data, nil
}

func (b *DiskvBackend) Write(slot string, data []byte) error {
	if err := b.d.Write(slot, data); err != nil {
		return fmt.Errorf("failed to write slot %q: %w", slot, err)
	}
	return nil
}

func (b *DiskvBackend) Slots() ([]string, error) {
	var slots []string
	for key := range b.d.Keys(nil) {
		slots = append(slots, key)
	}
	return slots, nil
}

func (b *DiskvBackend) Close() error { return nil }

// BasePath returns the directory holding the slot files.
func (b *DiskvBackend) BasePath() string { return b.basePath }

var _ Backend = (*DiskvBackend)(nil)

// DefaultDataDir returns the default diskv base directory, honoring the
// filesystem layout used by the CLI (`~/.config/tempo/data`).
func DefaultDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config dir: %w", err)
	}
	return filepath.Join(configDir, "tempo", "data"), nil
}
