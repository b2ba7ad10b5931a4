package sqlite

// Session represents one completed session row in the append-only log.
// Date, StartTime and EndTime are stored as text in the canonical column
// formats (date as 2006-01-02, clock times as HH:MM:SS).
type Session struct {
	ID              int64
	Project         string
	Date            string
	StartTime       string
	EndTime         string
	DurationMinutes int64
	Rate            float64
	Currency        string
}
