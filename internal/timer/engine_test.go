package timer

import (
	"context"
	"testing"
	"time"

	"github.com/tempo-app/tempo/internal/clock"
	"github.com/tempo-app/tempo/internal/errors"
	"github.com/tempo-app/tempo/internal/models"
	"github.com/tempo-app/tempo/internal/repo"
	"github.com/tempo-app/tempo/internal/storage"
)

func newTestEngine(t *testing.T) (*Engine, *repo.Store, *clock.Mock) {
	t.Helper()
	clk := clock.NewMock(time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC))
	store := repo.Open(storage.NewMemoryBackend(), clk)
	return New(store.Sessions, clk), store, clk
}

func TestEngineStartAndCountdown(t *testing.T) {
	engine, _, clk := newTestEngine(t)

	if engine.State() != StateIdle {
		t.Fatalf("fresh engine should be idle, got %s", engine.State())
	}
	if engine.Remaining() != models.DefaultSessionSeconds {
		t.Errorf("idle remaining should show the full duration, got %d", engine.Remaining())
	}

	if err := engine.Start(); err != nil {
		t.Fatalf("failed to start: %v", err)
	}
	if engine.State() != StateRunning {
		t.Fatalf("expected running, got %s", engine.State())
	}

	clk.Advance(10 * time.Minute)
	if got := engine.Remaining(); got != 15*60 {
		t.Errorf("expected 900s remaining after 10 minutes, got %d", got)
	}
	if got := engine.Progress(); got != 40 {
		t.Errorf("expected 40%% progress, got %d", got)
	}
	if done, err := engine.Tick(); err != nil || done {
		t.Errorf("tick with time left must not complete (done=%v err=%v)", done, err)
	}
}

func TestEngineCompletesOnTick(t *testing.T) {
	engine, store, clk := newTestEngine(t)

	if err := engine.Start(); err != nil {
		t.Fatalf("failed to start: %v", err)
	}

	clk.Advance(25 * time.Minute)
	done, err := engine.Tick()
	if err != nil {
		t.Fatalf("tick failed: %v", err)
	}
	if !done {
		t.Fatal("tick at zero remaining must complete the session")
	}
	if engine.State() != StateCompleted {
		t.Errorf("expected completed, got %s", engine.State())
	}
	if engine.Progress() != 100 {
		t.Errorf("completed progress should be 100, got %d", engine.Progress())
	}

	session, ok := engine.Session()
	if !ok || !session.Completed {
		t.Fatal("engine should hold the completed session")
	}
	if session.Duration != 1500 {
		t.Errorf("completion should record actual elapsed seconds, got %d", session.Duration)
	}

	if _, ok, err := store.Sessions.Current(); err != nil || ok {
		t.Errorf("no current session should remain (ok=%v err=%v)", ok, err)
	}
}

func TestEnginePauseFreezesDisplayOnly(t *testing.T) {
	engine, _, clk := newTestEngine(t)

	if err := engine.Start(); err != nil {
		t.Fatalf("failed to start: %v", err)
	}

	clk.Advance(5 * time.Minute)
	engine.Pause()
	if engine.State() != StatePaused {
		t.Fatalf("expected paused, got %s", engine.State())
	}
	frozen := engine.Remaining()
	if frozen != 20*60 {
		t.Errorf("expected frozen display at 1200s, got %d", frozen)
	}

	// Wall-clock time keeps passing against the session while paused.
	clk.Advance(10 * time.Minute)
	if got := engine.Remaining(); got != frozen {
		t.Errorf("paused display must not move, got %d", got)
	}
	if done, err := engine.Tick(); err != nil || done {
		t.Errorf("paused engine must not tick (done=%v err=%v)", done, err)
	}

	engine.Resume()
	if got := engine.Remaining(); got != 10*60 {
		t.Errorf("resume should snap back to wall-clock truth, got %d", got)
	}
}

func TestEngineResetLeavesSessionOpen(t *testing.T) {
	engine, store, _ := newTestEngine(t)

	if err := engine.Start(); err != nil {
		t.Fatalf("failed to start: %v", err)
	}
	engine.Reset()
	if engine.State() != StateIdle {
		t.Fatalf("expected idle after reset, got %s", engine.State())
	}

	// Reset is local: the persisted session stays open, so a second start
	// conflicts until a viewer reattaches or completes it.
	if err := engine.Start(); !errors.IsConflict(err) {
		t.Errorf("expected conflict while the persisted session is open, got %v", err)
	}
	if _, ok, err := store.Sessions.Current(); err != nil || !ok {
		t.Errorf("persisted session should still be current (ok=%v err=%v)", ok, err)
	}
}

func TestEngineAttach(t *testing.T) {
	engine, store, clk := newTestEngine(t)

	if err := engine.Attach(); err != nil {
		t.Fatalf("attach with nothing persisted failed: %v", err)
	}
	if engine.State() != StateIdle {
		t.Errorf("attach without a session should stay idle, got %s", engine.State())
	}

	session, err := store.Sessions.Start()
	if err != nil {
		t.Fatalf("failed to start session: %v", err)
	}
	clk.Advance(7 * time.Minute)

	// A second viewer attaches to the same persisted session and derives
	// the same countdown from its start time.
	other := New(store.Sessions, clk)
	if err := other.Attach(); err != nil {
		t.Fatalf("attach failed: %v", err)
	}
	if other.State() != StateRunning {
		t.Fatalf("expected running after attach, got %s", other.State())
	}
	got, ok := other.Session()
	if !ok || got.ID != session.ID {
		t.Error("attach should pick up the persisted session")
	}
	if r := other.Remaining(); r != 18*60 {
		t.Errorf("expected 1080s remaining, got %d", r)
	}
}

func TestEngineAttachOverdueSession(t *testing.T) {
	engine, store, clk := newTestEngine(t)

	if _, err := store.Sessions.Start(); err != nil {
		t.Fatalf("failed to start session: %v", err)
	}
	clk.Advance(40 * time.Minute)

	if err := engine.Attach(); err != nil {
		t.Fatalf("attach failed: %v", err)
	}
	if engine.Remaining() != 0 {
		t.Errorf("overdue remaining should clamp to 0, got %d", engine.Remaining())
	}

	done, err := engine.Tick()
	if err != nil {
		t.Fatalf("tick failed: %v", err)
	}
	if !done {
		t.Fatal("first tick on an overdue session must complete it")
	}
	session, _ := engine.Session()
	if session.Duration != 40*60 {
		t.Errorf("overdue completion should record real elapsed time, got %d", session.Duration)
	}
}

func TestEngineRun(t *testing.T) {
	engine, _, clk := newTestEngine(t)

	if err := engine.Start(); err != nil {
		t.Fatalf("failed to start: %v", err)
	}
	clk.Advance(25 * time.Minute)

	var ticks int
	err := engine.Run(context.Background(), time.Millisecond, func(remaining int) {
		ticks++
		if remaining != 0 {
			t.Errorf("expected 0 remaining on the completing tick, got %d", remaining)
		}
	})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if ticks != 1 {
		t.Errorf("expected exactly one tick, got %d", ticks)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := engine.Run(ctx, time.Millisecond, nil); err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
