package sqlite

import (
	"time"
)

const (
	dateFormat  = "2006-01-02"
	clockFormat = "15:04:05"
)

// FormatDateForDB formats a time.Time value as a calendar date string for
// consistent database storage
func FormatDateForDB(t time.Time) string {
	return t.Format(dateFormat)
}

// FormatClockForDB formats a time.Time value as an HH:MM:SS time-of-day string
func FormatClockForDB(t time.Time) string {
	return t.Format(clockFormat)
}

// ParseDateFromDB parses a calendar date string from the database
func ParseDateFromDB(s string) (time.Time, error) {
	return time.ParseInLocation(dateFormat, s, time.Local)
}

// ParseClockFromDB parses an HH:MM:SS time-of-day string from the database
func ParseClockFromDB(s string) (time.Time, error) {
	return time.ParseInLocation(clockFormat, s, time.Local)
}
