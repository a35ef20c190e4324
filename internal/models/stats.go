package models

import "time"

// Session is one countdown run, from the moment a target was set until it was
// reached or replaced.
type Session struct {
	ID        string
	Target    time.Time
	StartedAt time.Time
	ReachedAt *time.Time
	Overtime  bool
}

// Duration is the planned length of the session.
func (s *Session) Duration() time.Duration {
	return s.Target.Sub(s.StartedAt)
}

type SessionStats struct {
	TotalSessions   int
	ReachedSessions int
	TotalDuration   int64 // in seconds
	AverageDuration float64
}
