package billing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ttb/internal/errors"
	"ttb/internal/repository/sqlite"
)

func setupSeededStore(t *testing.T) *sqlite.SQLiteStore {
	t.Helper()

	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		store.Close()
	})

	ctx := context.Background()
	seed := []*sqlite.Session{
		{Project: "Alpha", Date: "2024-03-14", StartTime: "09:00:00", EndTime: "10:00:00", DurationMinutes: 60, Rate: 400, Currency: "EUR"},
		{Project: "Alpha", Date: "2024-03-15", StartTime: "09:00:00", EndTime: "09:30:00", DurationMinutes: 30, Rate: 400, Currency: "EUR"},
		{Project: "Beta", Date: "2024-03-15", StartTime: "11:00:00", EndTime: "12:00:00", DurationMinutes: 60, Rate: 250, Currency: "EUR"},
		{Project: "Alpha", Date: "2024-03-15", StartTime: "14:00:00", EndTime: "14:00:45", DurationMinutes: 0, Rate: 400, Currency: "EUR"},
	}
	for _, session := range seed {
		require.NoError(t, store.AppendSession(ctx, session))
	}

	return store
}

func TestAggregator_ComputeTotals(t *testing.T) {
	// Arrange
	store := setupSeededStore(t)
	aggregator := NewAggregator(store)

	// Act
	totals, err := aggregator.ComputeTotals(context.Background(), "Alpha", 400)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Alpha", totals.Project)
	assert.Equal(t, int64(90), totals.TotalMinutes)
	// 90 minutes at 400 per 8-hour day: 90 * 400/480
	assert.InDelta(t, 75.0, totals.TotalAmount, 0.0001)
}

func TestAggregator_ComputeTotals_SingleShortSession(t *testing.T) {
	// Arrange
	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	session := &sqlite.Session{
		Project:         "Alpha",
		Date:            "2024-03-15",
		StartTime:       "09:00:00",
		EndTime:         "09:01:30",
		DurationMinutes: 1,
		Rate:            400,
		Currency:        "EUR",
	}
	require.NoError(t, store.AppendSession(ctx, session))

	aggregator := NewAggregator(store)

	// Act
	totals, err := aggregator.ComputeTotals(ctx, "Alpha", 400)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(1), totals.TotalMinutes)
	assert.InDelta(t, 400.0/480.0, totals.TotalAmount, 0.0001)
}

func TestAggregator_ComputeTotals_UnknownProject(t *testing.T) {
	// Arrange
	store := setupSeededStore(t)
	aggregator := NewAggregator(store)

	// Act
	totals, err := aggregator.ComputeTotals(context.Background(), "Nonexistent", 400)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(0), totals.TotalMinutes)
	assert.Equal(t, 0.0, totals.TotalAmount)
}

func TestAggregator_ComputeTotals_ExactNameMatch(t *testing.T) {
	// Arrange
	store := setupSeededStore(t)
	aggregator := NewAggregator(store)

	// Act
	totals, err := aggregator.ComputeTotals(context.Background(), "alpha", 400)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(0), totals.TotalMinutes)
}

func TestAggregator_ComputeTotals_IsRepeatable(t *testing.T) {
	// Arrange
	store := setupSeededStore(t)
	aggregator := NewAggregator(store)
	ctx := context.Background()

	// Act
	first, err := aggregator.ComputeTotals(ctx, "Alpha", 400)
	require.NoError(t, err)
	second, err := aggregator.ComputeTotals(ctx, "Alpha", 400)
	require.NoError(t, err)

	// Assert
	assert.Equal(t, first, second)
}

type failingStore struct{}

func (f *failingStore) AppendSession(ctx context.Context, session *sqlite.Session) error {
	return errors.NewPersistenceError("append session", nil)
}

func (f *failingStore) ListSessions(ctx context.Context) ([]*sqlite.Session, error) {
	return nil, errors.NewLoadError("sessions", nil)
}

func (f *failingStore) Close() error {
	return nil
}

func TestAggregator_ComputeTotals_ReadFailure(t *testing.T) {
	// Arrange
	aggregator := NewAggregator(&failingStore{})

	// Act
	totals, err := aggregator.ComputeTotals(context.Background(), "Alpha", 400)

	// Assert
	require.Error(t, err)
	assert.Nil(t, totals)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeLoad))
}

func TestTotals_Duration(t *testing.T) {
	totals := Totals{TotalMinutes: 90}
	assert.Equal(t, "01:30:00", FormatDuration(totals.Duration()))
}
