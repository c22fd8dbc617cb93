package models

import "time"

// DefaultSessionSeconds is the nominal focus-session length (25 minutes).
const DefaultSessionSeconds = 25 * 60

// FocusSession is one countdown sprint. Duration holds the nominal target in
// seconds while the session is open and the actual elapsed seconds once it is
// completed. EndTime is set if and only if Completed is true.
type FocusSession struct {
	ID        string     `json:"id"`
	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time,omitempty"`
	Duration  int        `json:"duration"` // seconds
	Completed bool       `json:"completed"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Elapsed returns the whole seconds between the session start and now.
func (s *FocusSession) Elapsed(now time.Time) int {
	return int(now.Sub(s.StartTime) / time.Second)
}

// Remaining returns the seconds left before the nominal duration runs out,
// never negative.
func (s *FocusSession) Remaining(now time.Time) int {
	if r := s.Duration - s.Elapsed(now); r > 0 {
		return r
	}
	return 0
}
