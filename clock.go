package main

import "time"

const (
	layout24h  = "15:04"
	layout12h  = "03:04"
	layoutDate = "January 2"
)

// formatTime renders hours and minutes as five fixed-width characters.
func formatTime(t time.Time, use24h bool) string {
	if use24h {
		return t.Format(layout24h)
	}
	return t.Format(layout12h)
}

// formatDate renders "<Month> <day>" without padding the day.
func formatDate(t time.Time) string {
	return t.Format(layoutDate)
}
