package domain

import (
	"time"

	"ttb/internal/repository/sqlite"
)

// SessionMapper handles conversion between domain and database session models.
type SessionMapper struct{}

// NewSessionMapper creates a new SessionMapper instance.
func NewSessionMapper() *SessionMapper {
	return &SessionMapper{}
}

// ToDatabase converts a domain SessionRecord to a database Session.
func (m *SessionMapper) ToDatabase(record SessionRecord) sqlite.Session {
	return sqlite.Session{
		ID:              record.ID,
		Project:         record.Project,
		Date:            sqlite.FormatDateForDB(record.Date),
		StartTime:       sqlite.FormatClockForDB(record.Start),
		EndTime:         sqlite.FormatClockForDB(record.End),
		DurationMinutes: record.DurationMinutes,
		Rate:            record.Rate,
		Currency:        string(record.Currency),
	}
}

// FromDatabase converts a database Session to a domain SessionRecord.
// The stored start and end are times of day; they are rebuilt on the record's
// calendar date. An end clock earlier than the start clock means the session
// crossed midnight, so the end lands on the following day.
func (m *SessionMapper) FromDatabase(dbSession sqlite.Session) (SessionRecord, error) {
	date, err := sqlite.ParseDateFromDB(dbSession.Date)
	if err != nil {
		return SessionRecord{}, err
	}

	startClock, err := sqlite.ParseClockFromDB(dbSession.StartTime)
	if err != nil {
		return SessionRecord{}, err
	}

	endClock, err := sqlite.ParseClockFromDB(dbSession.EndTime)
	if err != nil {
		return SessionRecord{}, err
	}

	start := onDate(date, startClock)
	end := onDate(date, endClock)
	if end.Before(start) {
		end = end.AddDate(0, 0, 1)
	}

	return SessionRecord{
		ID:              dbSession.ID,
		Project:         dbSession.Project,
		Date:            date,
		Start:           start,
		End:             end,
		DurationMinutes: dbSession.DurationMinutes,
		Rate:            dbSession.Rate,
		Currency:        Currency(dbSession.Currency),
	}, nil
}

// FromDatabaseSlice converts a slice of database Sessions to domain SessionRecords.
func (m *SessionMapper) FromDatabaseSlice(dbSessions []*sqlite.Session) ([]SessionRecord, error) {
	records := make([]SessionRecord, len(dbSessions))
	for i, dbSession := range dbSessions {
		record, err := m.FromDatabase(*dbSession)
		if err != nil {
			return nil, err
		}
		records[i] = record
	}
	return records, nil
}

func onDate(date time.Time, clock time.Time) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0,
		date.Location(),
	)
}
