package repo

import (
	"strings"
	"sync"

	"github.com/tempo-app/tempo/internal/clock"
	"github.com/tempo-app/tempo/internal/errors"
	"github.com/tempo-app/tempo/internal/models"
	"github.com/tempo-app/tempo/internal/storage"
)

type Todos struct {
	mu    sync.Mutex
	col   *storage.Collection[models.TodoItem]
	clock clock.Clock
}

func NewTodos(backend storage.Backend, clk clock.Clock) *Todos {
	return &Todos{
		col:   storage.NewCollection[models.TodoItem](backend, storage.SlotTodos),
		clock: clk,
	}
}

func (r *Todos) All() ([]models.TodoItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.col.Load()
}

// Create adds a todo. Text is trimmed before validation; empty or
// whitespace-only text is rejected.
func (r *Todos) Create(text string) (models.TodoItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock.Now()
	todo := models.TodoItem{
		ID:        newID(),
		Text:      strings.TrimSpace(text),
		Done:      false,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := todo.Validate(); err != nil {
		return models.TodoItem{}, err
	}

	todos, err := r.col.Load()
	if err != nil {
		return models.TodoItem{}, err
	}
	todos = append(todos, todo)
	if err := r.col.Save(todos); err != nil {
		return models.TodoItem{}, err
	}
	return todo, nil
}

// Update merges the patch into the todo with the given id. A false-to-true
// Done transition stamps DoneAt; a true-to-false transition clears it.
func (r *Todos) Update(id string, patch models.TodoPatch) (models.TodoItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	todos, err := r.col.Load()
	if err != nil {
		return models.TodoItem{}, err
	}

	for i, todo := range todos {
		if todo.ID != id {
			continue
		}

		now := r.clock.Now()
		if patch.Text != nil {
			todo.Text = strings.TrimSpace(*patch.Text)
			if err := todo.Validate(); err != nil {
				return models.TodoItem{}, err
			}
		}
		if patch.Done != nil && *patch.Done != todo.Done {
			todo.Done = *patch.Done
			if todo.Done {
				doneAt := now
				todo.DoneAt = &doneAt
			} else {
				todo.DoneAt = nil
			}
		}
		todo.UpdatedAt = now

		todos[i] = todo
		if err := r.col.Save(todos); err != nil {
			return models.TodoItem{}, err
		}
		return todo, nil
	}

	return models.TodoItem{}, errors.NotFound("todo", id)
}

// Delete removes the todo with the given id. Deleting an absent id is a no-op.
func (r *Todos) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	todos, err := r.col.Load()
	if err != nil {
		return err
	}

	kept := todos[:0]
	for _, todo := range todos {
		if todo.ID != id {
			kept = append(kept, todo)
		}
	}
	if len(kept) == len(todos) {
		return nil
	}
	return r.col.Save(kept)
}
