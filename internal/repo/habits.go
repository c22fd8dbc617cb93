package repo

import (
	"strings"
	"sync"

	"github.com/tempo-app/tempo/internal/clock"
	"github.com/tempo-app/tempo/internal/errors"
	"github.com/tempo-app/tempo/internal/models"
	"github.com/tempo-app/tempo/internal/storage"
)

type Habits struct {
	mu    sync.Mutex
	col   *storage.Collection[models.Habit]
	clock clock.Clock
}

func NewHabits(backend storage.Backend, clk clock.Clock) *Habits {
	return &Habits{
		col:   storage.NewCollection[models.Habit](backend, storage.SlotHabits),
		clock: clk,
	}
}

// All returns every habit, including disabled ones.
func (r *Habits) All() ([]models.Habit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.col.Load()
}

// Enabled returns only the habits shown in active tracking views.
func (r *Habits) Enabled() ([]models.Habit, error) {
	habits, err := r.All()
	if err != nil {
		return nil, err
	}
	enabled := make([]models.Habit, 0, len(habits))
	for _, h := range habits {
		if h.Enabled {
			enabled = append(enabled, h)
		}
	}
	return enabled, nil
}

// Create adds a habit, enabled by default.
func (r *Habits) Create(label string) (models.Habit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock.Now()
	habit := models.Habit{
		ID:        newID(),
		Label:     strings.TrimSpace(label),
		Enabled:   true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := habit.Validate(); err != nil {
		return models.Habit{}, err
	}

	habits, err := r.col.Load()
	if err != nil {
		return models.Habit{}, err
	}
	habits = append(habits, habit)
	if err := r.col.Save(habits); err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

// Update merges the patch into the habit with the given id.
func (r *Habits) Update(id string, patch models.HabitPatch) (models.Habit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	habits, err := r.col.Load()
	if err != nil {
		return models.Habit{}, err
	}

	for i, habit := range habits {
		if habit.ID != id {
			continue
		}

		if patch.Label != nil {
			habit.Label = strings.TrimSpace(*patch.Label)
			if err := habit.Validate(); err != nil {
				return models.Habit{}, err
			}
		}
		if patch.Enabled != nil {
			habit.Enabled = *patch.Enabled
		}
		habit.UpdatedAt = r.clock.Now()

		habits[i] = habit
		if err := r.col.Save(habits); err != nil {
			return models.Habit{}, err
		}
		return habit, nil
	}

	return models.Habit{}, errors.NotFound("habit", id)
}

// Delete removes the habit with the given id. Deleting an absent id is a
// no-op. Completions referencing the habit are retained as history.
func (r *Habits) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	habits, err := r.col.Load()
	if err != nil {
		return err
	}

	kept := habits[:0]
	for _, habit := range habits {
		if habit.ID != id {
			kept = append(kept, habit)
		}
	}
	if len(kept) == len(habits) {
		return nil
	}
	return r.col.Save(kept)
}
