package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ttb/internal/repository/sqlite"
)

func TestActiveSession_Complete(t *testing.T) {
	start := time.Date(2024, 3, 15, 9, 30, 0, 0, time.Local)

	session := ActiveSession{
		Project:   "Alpha",
		Rate:      400,
		Currency:  CurrencyUSD,
		StartedAt: start,
	}

	tests := []struct {
		name            string
		elapsed         time.Duration
		expectedMinutes int64
	}{
		{
			name:            "should truncate 90 seconds to 1 minute",
			elapsed:         90 * time.Second,
			expectedMinutes: 1,
		},
		{
			name:            "should record sessions shorter than a minute with 0 minutes",
			elapsed:         45 * time.Second,
			expectedMinutes: 0,
		},
		{
			name:            "should truncate 119 seconds to 1 minute",
			elapsed:         119 * time.Second,
			expectedMinutes: 1,
		},
		{
			name:            "should keep exact hours whole",
			elapsed:         2 * time.Hour,
			expectedMinutes: 120,
		},
		{
			name:            "should record a zero-length session with 0 minutes",
			elapsed:         0,
			expectedMinutes: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := session.Complete(start.Add(tt.elapsed))

			assert.Equal(t, tt.expectedMinutes, record.DurationMinutes)
			assert.Equal(t, "Alpha", record.Project)
			assert.Equal(t, 400.0, record.Rate)
			assert.Equal(t, CurrencyUSD, record.Currency)
			assert.Equal(t, start, record.Start)
			assert.Equal(t, start.Add(tt.elapsed), record.End)
		})
	}
}

func TestActiveSession_Complete_DateIsStartDay(t *testing.T) {
	// A session crossing midnight is dated on the day it started
	start := time.Date(2024, 3, 15, 23, 50, 0, 0, time.Local)
	session := ActiveSession{Project: "Alpha", Rate: 400, Currency: CurrencyEUR, StartedAt: start}

	record := session.Complete(start.Add(20 * time.Minute))

	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local), record.Date)
	assert.Equal(t, int64(20), record.DurationMinutes)
}

func TestSessionRecord_IsValid(t *testing.T) {
	start := time.Date(2024, 3, 15, 9, 0, 0, 0, time.Local)

	valid := SessionRecord{
		Project:         "Alpha",
		Date:            time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local),
		Start:           start,
		End:             start.Add(time.Hour),
		DurationMinutes: 60,
		Rate:            400,
		Currency:        CurrencyEUR,
	}

	assert.True(t, valid.IsValid())

	noProject := valid
	noProject.Project = ""
	assert.False(t, noProject.IsValid())

	badRate := valid
	badRate.Rate = 0
	assert.False(t, badRate.IsValid())

	badCurrency := valid
	badCurrency.Currency = Currency("XXX")
	assert.False(t, badCurrency.IsValid())

	endBeforeStart := valid
	endBeforeStart.End = start.Add(-time.Hour)
	assert.False(t, endBeforeStart.IsValid())
}

func TestSessionMapper_RoundTrip(t *testing.T) {
	mapper := NewSessionMapper()

	start := time.Date(2024, 3, 15, 9, 30, 15, 0, time.Local)
	record := ActiveSession{
		Project:   "Alpha",
		Rate:      400,
		Currency:  CurrencyUSD,
		StartedAt: start,
	}.Complete(start.Add(90 * time.Minute))

	dbSession := mapper.ToDatabase(record)
	assert.Equal(t, "2024-03-15", dbSession.Date)
	assert.Equal(t, "09:30:15", dbSession.StartTime)
	assert.Equal(t, "11:00:15", dbSession.EndTime)
	assert.Equal(t, int64(90), dbSession.DurationMinutes)

	restored, err := mapper.FromDatabase(dbSession)
	require.NoError(t, err)
	assert.Equal(t, record.Project, restored.Project)
	assert.Equal(t, record.Start, restored.Start)
	assert.Equal(t, record.End, restored.End)
	assert.Equal(t, record.DurationMinutes, restored.DurationMinutes)
	assert.Equal(t, record.Rate, restored.Rate)
	assert.Equal(t, record.Currency, restored.Currency)
}

func TestSessionMapper_FromDatabase_CrossesMidnight(t *testing.T) {
	mapper := NewSessionMapper()

	restored, err := mapper.FromDatabase(sqlite.Session{
		Project:         "Alpha",
		Date:            "2024-03-15",
		StartTime:       "23:50:00",
		EndTime:         "00:10:00",
		DurationMinutes: 20,
		Rate:            400,
		Currency:        "EUR",
	})
	require.NoError(t, err)

	assert.True(t, restored.End.After(restored.Start))
	assert.Equal(t, 15, restored.Start.Day())
	assert.Equal(t, 16, restored.End.Day())
	assert.Equal(t, 20*time.Minute, restored.End.Sub(restored.Start))
}
