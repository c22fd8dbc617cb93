package repo

import (
	"sync"

	"github.com/tempo-app/tempo/internal/clock"
	"github.com/tempo-app/tempo/internal/models"
	"github.com/tempo-app/tempo/internal/storage"
)

type Completions struct {
	mu    sync.Mutex
	col   *storage.Collection[models.HabitCompletion]
	clock clock.Clock
}

func NewCompletions(backend storage.Backend, clk clock.Clock) *Completions {
	return &Completions{
		col:   storage.NewCollection[models.HabitCompletion](backend, storage.SlotCompletions),
		clock: clk,
	}
}

func (r *Completions) All() ([]models.HabitCompletion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.col.Load()
}

// ForDate returns the completions recorded for one calendar day.
func (r *Completions) ForDate(date string) ([]models.HabitCompletion, error) {
	all, err := r.All()
	if err != nil {
		return nil, err
	}
	matched := make([]models.HabitCompletion, 0, len(all))
	for _, c := range all {
		if c.Date == date {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

// Toggle upserts the completion keyed by (habitID, date). An existing record
// for the pair is updated in place; two toggles for the same habit and day
// never produce two records.
func (r *Completions) Toggle(habitID, habitLabel, date string, completed bool) (models.HabitCompletion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	completions, err := r.col.Load()
	if err != nil {
		return models.HabitCompletion{}, err
	}

	now := r.clock.Now()
	for i, c := range completions {
		if c.HabitID == habitID && c.Date == date {
			c.Completed = completed
			c.UpdatedAt = now
			completions[i] = c
			if err := r.col.Save(completions); err != nil {
				return models.HabitCompletion{}, err
			}
			return c, nil
		}
	}

	completion := models.HabitCompletion{
		ID:         newID(),
		HabitID:    habitID,
		HabitLabel: habitLabel,
		Date:       date,
		Completed:  completed,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := completion.Validate(); err != nil {
		return models.HabitCompletion{}, err
	}

	completions = append(completions, completion)
	if err := r.col.Save(completions); err != nil {
		return models.HabitCompletion{}, err
	}
	return completion, nil
}
