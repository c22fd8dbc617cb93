// Package timer implements the focus-session countdown state machine.
//
// Remaining time is always derived from wall-clock elapsed time
// (duration - (now - startTime)), never from a decrementing counter, so a
// running session survives process restarts and concurrent viewers. Pausing
// freezes the displayed values without touching the persisted session.
package timer

import (
	"context"
	"math"
	"time"

	"github.com/tempo-app/tempo/internal/clock"
	"github.com/tempo-app/tempo/internal/models"
	"github.com/tempo-app/tempo/internal/repo"
)

type State string

const (
	StateIdle      State = "idle"
	StateRunning   State = "running"
	StatePaused    State = "paused"
	StateCompleted State = "completed"
)

// TickInterval is the nominal granularity of the countdown while running.
const TickInterval = time.Second

// Engine drives a single focus session. It is not safe for concurrent use;
// callers own the event loop (TUI update cycle or watch ticker).
type Engine struct {
	sessions *repo.Sessions
	clock    clock.Clock

	state   State
	session models.FocusSession

	// Display values frozen at the moment of pause.
	frozenRemaining int
	frozenProgress  int
}

func New(sessions *repo.Sessions, clk clock.Clock) *Engine {
	return &Engine{sessions: sessions, clock: clk, state: StateIdle}
}

// Attach picks up the persisted current session, if any, and enters Running.
// A session whose time already ran out is still attached; the next tick
// completes it.
func (e *Engine) Attach() error {
	session, ok, err := e.sessions.Current()
	if err != nil {
		return err
	}
	if !ok {
		e.state = StateIdle
		return nil
	}
	e.session = session
	e.state = StateRunning
	return nil
}

func (e *Engine) State() State { return e.state }

// Session returns the tracked session and whether one is held.
func (e *Engine) Session() (models.FocusSession, bool) {
	return e.session, e.state != StateIdle
}

// Start opens a new session and enters Running. Starting is only valid from
// Idle; the repository rejects it with a conflict if an incomplete session
// already exists.
func (e *Engine) Start() error {
	session, err := e.sessions.Start()
	if err != nil {
		return err
	}
	e.session = session
	e.state = StateRunning
	return nil
}

// Pause freezes the displayed countdown. The persisted session keeps its
// original start time, so paused wall-clock time still counts against the
// session once resumed.
func (e *Engine) Pause() {
	if e.state != StateRunning {
		return
	}
	e.frozenRemaining = e.session.Remaining(e.clock.Now())
	e.frozenProgress = e.progressNow()
	e.state = StatePaused
}

// Resume re-enters Running; the countdown snaps back to wall-clock truth.
func (e *Engine) Resume() {
	if e.state != StatePaused {
		return
	}
	e.state = StateRunning
}

// Tick advances the state machine while Running. When the session's time has
// run out it commits the completion and reports true.
func (e *Engine) Tick() (bool, error) {
	if e.state != StateRunning {
		return false, nil
	}

	now := e.clock.Now()
	if e.session.Remaining(now) > 0 {
		return false, nil
	}

	completed, err := e.sessions.Complete(e.session.ID, e.session.Elapsed(now))
	if err != nil {
		return false, err
	}
	e.session = completed
	e.state = StateCompleted
	return true, nil
}

// Reset drops the locally held session and returns to Idle. The persisted
// current session, if any, is left incomplete; resetting is a local action,
// not a cancellation.
func (e *Engine) Reset() {
	e.session = models.FocusSession{}
	e.state = StateIdle
}

// Remaining returns the seconds left on the countdown for display.
func (e *Engine) Remaining() int {
	switch e.state {
	case StateIdle:
		return models.DefaultSessionSeconds
	case StatePaused:
		return e.frozenRemaining
	default:
		return e.session.Remaining(e.clock.Now())
	}
}

// Progress returns the completion percentage, clamped to 0..100.
func (e *Engine) Progress() int {
	switch e.state {
	case StateIdle:
		return 0
	case StatePaused:
		return e.frozenProgress
	case StateCompleted:
		return 100
	default:
		return e.progressNow()
	}
}

func (e *Engine) progressNow() int {
	if e.session.Duration <= 0 {
		return 100
	}
	elapsed := e.session.Elapsed(e.clock.Now())
	pct := int(math.Round(100 * float64(elapsed) / float64(e.session.Duration)))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// Run ticks the engine at the given interval until the session completes or
// the context is canceled. onTick, if non-nil, is called after every tick
// with the latest remaining seconds.
func (e *Engine) Run(ctx context.Context, interval time.Duration, onTick func(remaining int)) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			done, err := e.Tick()
			if err != nil {
				return err
			}
			if onTick != nil {
				onTick(e.Remaining())
			}
			if done {
				return nil
			}
		}
	}
}
