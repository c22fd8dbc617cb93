package cli

import (
	"testing"
	"time"

	"github.com/tempo-app/tempo/internal/clock"
	"github.com/tempo-app/tempo/internal/models"
)

func TestMatchOne(t *testing.T) {
	todos := []models.TodoItem{
		{ID: "aab3f0d1", Text: "first"},
		{ID: "aac91e22", Text: "second"},
		{ID: "b7d40c55", Text: "third"},
	}
	id := func(item models.TodoItem) string { return item.ID }

	got, err := MatchOne(todos, id, "b7")
	if err != nil {
		t.Fatalf("unique prefix should match: %v", err)
	}
	if got.Text != "third" {
		t.Errorf("matched the wrong record: %+v", got)
	}

	if _, err := MatchOne(todos, id, "aa"); err == nil {
		t.Error("ambiguous prefix should fail")
	}
	if _, err := MatchOne(todos, id, "zz"); err == nil {
		t.Error("unknown prefix should fail")
	}

	// An exact id wins even when it is also a prefix of another id.
	exact := []models.TodoItem{
		{ID: "abc", Text: "short"},
		{ID: "abcdef", Text: "long"},
	}
	got, err = MatchOne(exact, id, "abc")
	if err != nil {
		t.Fatalf("exact match should not be ambiguous: %v", err)
	}
	if got.Text != "short" {
		t.Errorf("expected the exact match, got %+v", got)
	}
}

func TestShortID(t *testing.T) {
	if got := ShortID("0a1b2c3d-4e5f-6789-abcd-ef0123456789"); got != "0a1b2c3d" {
		t.Errorf("ShortID = %q", got)
	}
	if got := ShortID("tiny"); got != "tiny" {
		t.Errorf("short input should pass through, got %q", got)
	}
}

func TestToday(t *testing.T) {
	ctx := &Context{Clock: clock.NewMock(time.Date(2026, 3, 14, 23, 59, 0, 0, time.UTC))}
	if got := ctx.Today(); got != "2026-03-14" {
		t.Errorf("Today = %q", got)
	}
}
