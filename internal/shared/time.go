package shared

import "time"

// TimestampLayout is how record timestamps are rendered throughout the
// system, matching the spreadsheet-era data already in the wild.
const TimestampLayout = "2006-01-02 15:04:05"

// DateLayout is the day-only format used by pratos and checkins.
const DateLayout = "2006-01-02"

// TimeLayout is the wall-clock format used by checkins.
const TimeLayout = "15:04"

// Timestamp returns the current time rendered with TimestampLayout.
func Timestamp() string {
	return time.Now().Format(TimestampLayout)
}

// Today returns the current date rendered with DateLayout.
func Today() string {
	return time.Now().Format(DateLayout)
}
