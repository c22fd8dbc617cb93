package repo

import (
	"testing"
	"time"

	"github.com/tempo-app/tempo/internal/errors"
	"github.com/tempo-app/tempo/internal/models"
)

func TestStartSession(t *testing.T) {
	store, clk := newTestStore(t)

	session, err := store.Sessions.Start()
	if err != nil {
		t.Fatalf("failed to start session: %v", err)
	}
	if session.Duration != models.DefaultSessionSeconds {
		t.Errorf("expected nominal duration %d, got %d", models.DefaultSessionSeconds, session.Duration)
	}
	if !session.StartTime.Equal(clk.Now()) {
		t.Error("start time should come from the injected clock")
	}
	if session.Completed || session.EndTime != nil {
		t.Error("new session must be incomplete with no end time")
	}

	current, ok, err := store.Sessions.Current()
	if err != nil {
		t.Fatalf("failed to query current: %v", err)
	}
	if !ok || current.ID != session.ID {
		t.Error("started session should be current")
	}
}

func TestStartConflictsWhileCurrent(t *testing.T) {
	store, _ := newTestStore(t)

	if _, err := store.Sessions.Start(); err != nil {
		t.Fatalf("failed to start session: %v", err)
	}
	_, err := store.Sessions.Start()
	if !errors.IsConflict(err) {
		t.Errorf("expected conflict, got %v", err)
	}
}

func TestCompleteSession(t *testing.T) {
	store, clk := newTestStore(t)

	session, err := store.Sessions.Start()
	if err != nil {
		t.Fatalf("failed to start session: %v", err)
	}

	clk.Advance(25 * time.Minute)
	completed, err := store.Sessions.Complete(session.ID, 1500)
	if err != nil {
		t.Fatalf("failed to complete session: %v", err)
	}
	if !completed.Completed {
		t.Error("session should be completed")
	}
	if completed.Duration != 1500 {
		t.Errorf("duration should hold the actual elapsed seconds, got %d", completed.Duration)
	}
	if completed.EndTime == nil || !completed.EndTime.Equal(clk.Now()) {
		t.Errorf("end time should be stamped at completion, got %v", completed.EndTime)
	}

	if _, ok, err := store.Sessions.Current(); err != nil || ok {
		t.Errorf("no session should be current after completion (ok=%v err=%v)", ok, err)
	}

	// A new session can start once the previous one is closed.
	if _, err := store.Sessions.Start(); err != nil {
		t.Errorf("failed to start after completion: %v", err)
	}
}

func TestCompleteNotFound(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Sessions.Complete("missing", 100)
	if !errors.IsNotFound(err) {
		t.Errorf("expected not-found, got %v", err)
	}
}

func TestDoubleCompleteConflicts(t *testing.T) {
	store, _ := newTestStore(t)

	session, err := store.Sessions.Start()
	if err != nil {
		t.Fatalf("failed to start session: %v", err)
	}
	if _, err := store.Sessions.Complete(session.ID, 1500); err != nil {
		t.Fatalf("failed to complete session: %v", err)
	}

	_, err = store.Sessions.Complete(session.ID, 900)
	if !errors.IsConflict(err) {
		t.Errorf("re-completion must conflict, got %v", err)
	}

	sessions, err := store.Sessions.All()
	if err != nil {
		t.Fatalf("failed to list sessions: %v", err)
	}
	if len(sessions) != 1 || sessions[0].Duration != 1500 {
		t.Errorf("first completion's duration must stand: %+v", sessions)
	}
}

func TestCompletedNewestFirst(t *testing.T) {
	store, clk := newTestStore(t)

	for i := 0; i < 3; i++ {
		session, err := store.Sessions.Start()
		if err != nil {
			t.Fatalf("failed to start session %d: %v", i, err)
		}
		clk.Advance(30 * time.Minute)
		if _, err := store.Sessions.Complete(session.ID, 1500); err != nil {
			t.Fatalf("failed to complete session %d: %v", i, err)
		}
	}

	completed, err := store.Sessions.Completed()
	if err != nil {
		t.Fatalf("failed to list completed: %v", err)
	}
	if len(completed) != 3 {
		t.Fatalf("expected 3 completed sessions, got %d", len(completed))
	}
	for i := 1; i < len(completed); i++ {
		if completed[i].StartTime.After(completed[i-1].StartTime) {
			t.Error("completed sessions should be newest first")
		}
	}
}
