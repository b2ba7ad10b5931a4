package billing

import (
	"context"
	"time"

	"ttb/internal/domain"
	"ttb/internal/repository/sqlite"
)

// minutesPerDay is the billable minute count of one rate unit (an 8-hour day).
const minutesPerDay = 8 * 60

// Totals holds the accumulated time and billable amount for a project.
// Totals are derived on demand and never persisted.
type Totals struct {
	Project      string
	TotalMinutes int64
	TotalAmount  float64
}

// Duration returns the accumulated time as a duration.
func (t Totals) Duration() time.Duration {
	return time.Duration(t.TotalMinutes) * time.Minute
}

// Aggregator recomputes cumulative project time and the amount billable from
// the session log. It is a pure reader; nothing is mutated.
type Aggregator struct {
	store  sqlite.Store
	mapper *domain.SessionMapper
}

// NewAggregator creates a new billing aggregator backed by the given store.
func NewAggregator(store sqlite.Store) *Aggregator {
	return &Aggregator{
		store:  store,
		mapper: domain.NewSessionMapper(),
	}
}

// ComputeTotals reads all session records, sums the minutes of those whose
// project exactly matches the given name, and converts the total to an amount
// at the given per-day rate. A project with no recorded sessions yields zero
// totals rather than an error.
//
// The rate applies to the whole history of the project: the per-record rate
// column is not consulted, so a project whose rate changed over time is
// billed entirely at the supplied rate.
func (a *Aggregator) ComputeTotals(ctx context.Context, project string, rate float64) (*Totals, error) {
	dbSessions, err := a.store.ListSessions(ctx)
	if err != nil {
		return nil, err
	}

	records, err := a.mapper.FromDatabaseSlice(dbSessions)
	if err != nil {
		return nil, err
	}

	var totalMinutes int64
	for _, record := range records {
		if record.Project == project {
			totalMinutes += record.DurationMinutes
		}
	}

	ratePerMinute := rate / minutesPerDay

	return &Totals{
		Project:      project,
		TotalMinutes: totalMinutes,
		TotalAmount:  float64(totalMinutes) * ratePerMinute,
	}, nil
}
