package repo

import (
	"testing"
	"time"

	"github.com/tempo-app/tempo/internal/errors"
	"github.com/tempo-app/tempo/internal/models"
	"github.com/tempo-app/tempo/internal/progress"
)

func TestTodoCreate(t *testing.T) {
	store, clk := newTestStore(t)

	todo, err := store.Todos.Create("  write the report  ")
	if err != nil {
		t.Fatalf("failed to create todo: %v", err)
	}
	if todo.Text != "write the report" {
		t.Errorf("text not trimmed: %q", todo.Text)
	}
	if todo.Done {
		t.Error("new todo should not be done")
	}
	if !todo.CreatedAt.Equal(clk.Now()) || !todo.UpdatedAt.Equal(clk.Now()) {
		t.Error("timestamps should come from the injected clock")
	}

	other, err := store.Todos.Create("another")
	if err != nil {
		t.Fatalf("failed to create second todo: %v", err)
	}
	if other.ID == todo.ID {
		t.Error("ids must be unique under rapid successive calls")
	}
}

func TestTodoCreateRejectsBlankText(t *testing.T) {
	store, _ := newTestStore(t)

	for _, text := range []string{"", "   ", "\t\n"} {
		if _, err := store.Todos.Create(text); err == nil {
			t.Errorf("expected error for text %q", text)
		}
	}

	todos, err := store.Todos.All()
	if err != nil {
		t.Fatalf("failed to list todos: %v", err)
	}
	if len(todos) != 0 {
		t.Errorf("rejected todos must not be stored, got %d", len(todos))
	}
}

func TestTodoDoneAtPairing(t *testing.T) {
	store, clk := newTestStore(t)

	todo, err := store.Todos.Create("stretch")
	if err != nil {
		t.Fatalf("failed to create todo: %v", err)
	}

	clk.Advance(5 * time.Minute)
	done := true
	updated, err := store.Todos.Update(todo.ID, models.TodoPatch{Done: &done})
	if err != nil {
		t.Fatalf("failed to mark done: %v", err)
	}
	if updated.DoneAt == nil || !updated.DoneAt.Equal(clk.Now()) {
		t.Errorf("DoneAt should be stamped on the false-to-true transition, got %v", updated.DoneAt)
	}
	if updated.UpdatedAt.Before(updated.CreatedAt) {
		t.Error("UpdatedAt must never precede CreatedAt")
	}

	// Marking done again is a no-op for DoneAt.
	firstDoneAt := *updated.DoneAt
	clk.Advance(time.Minute)
	updated, err = store.Todos.Update(todo.ID, models.TodoPatch{Done: &done})
	if err != nil {
		t.Fatalf("failed to re-mark done: %v", err)
	}
	if updated.DoneAt == nil || !updated.DoneAt.Equal(firstDoneAt) {
		t.Errorf("DoneAt should not move without a transition, got %v", updated.DoneAt)
	}

	undone := false
	updated, err = store.Todos.Update(todo.ID, models.TodoPatch{Done: &undone})
	if err != nil {
		t.Fatalf("failed to reopen: %v", err)
	}
	if updated.DoneAt != nil {
		t.Errorf("DoneAt should clear on the true-to-false transition, got %v", updated.DoneAt)
	}
}

func TestTodoUpdateNotFound(t *testing.T) {
	store, _ := newTestStore(t)

	done := true
	_, err := store.Todos.Update("missing", models.TodoPatch{Done: &done})
	if !errors.IsNotFound(err) {
		t.Errorf("expected not-found, got %v", err)
	}
}

func TestTodoDeleteIsIdempotent(t *testing.T) {
	store, _ := newTestStore(t)

	todo, err := store.Todos.Create("ephemeral")
	if err != nil {
		t.Fatalf("failed to create todo: %v", err)
	}

	if err := store.Todos.Delete(todo.ID); err != nil {
		t.Fatalf("failed to delete: %v", err)
	}
	if err := store.Todos.Delete(todo.ID); err != nil {
		t.Errorf("deleting an absent id must be a no-op, got %v", err)
	}
	if err := store.Todos.Delete("never-existed"); err != nil {
		t.Errorf("deleting an unknown id must be a no-op, got %v", err)
	}
}

func TestTodoSprintScenario(t *testing.T) {
	store, _ := newTestStore(t)

	a, err := store.Todos.Create("A")
	if err != nil {
		t.Fatalf("failed to create A: %v", err)
	}
	b, err := store.Todos.Create("B")
	if err != nil {
		t.Fatalf("failed to create B: %v", err)
	}

	done := true
	if _, err := store.Todos.Update(a.ID, models.TodoPatch{Done: &done}); err != nil {
		t.Fatalf("failed to mark A done: %v", err)
	}
	if err := store.Todos.Delete(b.ID); err != nil {
		t.Fatalf("failed to delete B: %v", err)
	}

	todos, err := store.Todos.All()
	if err != nil {
		t.Fatalf("failed to list: %v", err)
	}
	if len(todos) != 1 || todos[0].Text != "A" || !todos[0].Done {
		t.Fatalf("expected exactly [A done], got %+v", todos)
	}
	if pct := progress.Percent(todos, func(item models.TodoItem) bool { return item.Done }); pct != 100 {
		t.Errorf("expected 100%% complete, got %d", pct)
	}
}
