package repo

import (
	"sync"

	"github.com/tempo-app/tempo/internal/clock"
	"github.com/tempo-app/tempo/internal/errors"
	"github.com/tempo-app/tempo/internal/models"
	"github.com/tempo-app/tempo/internal/storage"
)

type Sessions struct {
	mu    sync.Mutex
	col   *storage.Collection[models.FocusSession]
	clock clock.Clock
}

func NewSessions(backend storage.Backend, clk clock.Clock) *Sessions {
	return &Sessions{
		col:   storage.NewCollection[models.FocusSession](backend, storage.SlotSessions),
		clock: clk,
	}
}

func (r *Sessions) All() ([]models.FocusSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.col.Load()
}

// Completed returns finished sessions, most recent start first.
func (r *Sessions) Completed() ([]models.FocusSession, error) {
	all, err := r.All()
	if err != nil {
		return nil, err
	}
	completed := make([]models.FocusSession, 0, len(all))
	for _, s := range all {
		if s.Completed {
			completed = append(completed, s)
		}
	}
	for i, j := 0, len(completed)-1; i < j; i, j = i+1, j-1 {
		completed[i], completed[j] = completed[j], completed[i]
	}
	return completed, nil
}

// Current returns the single incomplete session, if any.
func (r *Sessions) Current() (models.FocusSession, bool, error) {
	all, err := r.All()
	if err != nil {
		return models.FocusSession{}, false, err
	}
	for _, s := range all {
		if !s.Completed {
			return s, true, nil
		}
	}
	return models.FocusSession{}, false, nil
}

// Start opens a new session with the nominal 25-minute duration. It fails
// with a conflict if an incomplete session already exists.
func (r *Sessions) Start() (models.FocusSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sessions, err := r.col.Load()
	if err != nil {
		return models.FocusSession{}, err
	}
	for _, s := range sessions {
		if !s.Completed {
			return models.FocusSession{}, errors.Conflict("focus session %s is already running", s.ID)
		}
	}

	now := r.clock.Now()
	session := models.FocusSession{
		ID:        newID(),
		StartTime: now,
		Duration:  models.DefaultSessionSeconds,
		Completed: false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	sessions = append(sessions, session)
	if err := r.col.Save(sessions); err != nil {
		return models.FocusSession{}, err
	}
	return session, nil
}

// Complete closes the session with the actual elapsed seconds. Completing an
// absent id fails with not-found; completing an already-completed session
// fails with a conflict so two racing callers cannot record contradictory
// durations.
func (r *Sessions) Complete(id string, actualSeconds int) (models.FocusSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sessions, err := r.col.Load()
	if err != nil {
		return models.FocusSession{}, err
	}

	for i, s := range sessions {
		if s.ID != id {
			continue
		}
		if s.Completed {
			return models.FocusSession{}, errors.Conflict("focus session %s is already completed", id)
		}

		now := r.clock.Now()
		endTime := now
		s.EndTime = &endTime
		s.Duration = actualSeconds
		s.Completed = true
		s.UpdatedAt = now

		sessions[i] = s
		if err := r.col.Save(sessions); err != nil {
			return models.FocusSession{}, err
		}
		return s, nil
	}

	return models.FocusSession{}, errors.NotFound("focus session", id)
}
