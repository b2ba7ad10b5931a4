package domain

import (
	"time"
)

// SessionRecord represents one completed timing session in the domain model.
// This is a pure domain model without database-specific concerns. Records are
// immutable once written; the log is append-only.
type SessionRecord struct {
	ID              int64
	Project         string
	Date            time.Time // calendar date of the session start
	Start           time.Time
	End             time.Time
	DurationMinutes int64
	Rate            float64 // per 8-hour day
	Currency        Currency
}

// IsValid checks if the session record has valid data.
func (r SessionRecord) IsValid() bool {
	if r.Project == "" {
		return false
	}
	if r.Start.IsZero() || r.End.IsZero() {
		return false
	}
	if r.End.Before(r.Start) {
		return false
	}
	if r.DurationMinutes < 0 {
		return false
	}
	if r.Rate <= 0 {
		return false
	}
	return r.Currency.IsValid()
}

// ActiveSession is the single in-memory session currently being timed.
// It exists only between start and stop and is never persisted directly.
type ActiveSession struct {
	Project   string
	Rate      float64
	Currency  Currency
	StartedAt time.Time
}

// Elapsed returns the time spent in the session as of now.
func (a ActiveSession) Elapsed(now time.Time) time.Duration {
	return now.Sub(a.StartedAt)
}

// Complete converts the active session into a session record ending at the
// given time. Duration is truncated to whole minutes; sessions shorter than a
// minute are kept with zero minutes.
func (a ActiveSession) Complete(end time.Time) SessionRecord {
	elapsed := end.Sub(a.StartedAt)
	if elapsed < 0 {
		elapsed = 0
	}
	y, m, d := a.StartedAt.Date()
	return SessionRecord{
		Project:         a.Project,
		Date:            time.Date(y, m, d, 0, 0, 0, 0, a.StartedAt.Location()),
		Start:           a.StartedAt,
		End:             end,
		DurationMinutes: int64(elapsed.Seconds()) / 60,
		Rate:            a.Rate,
		Currency:        a.Currency,
	}
}
