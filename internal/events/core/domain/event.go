package domain

import (
	"fmt"
	"time"
)

type Action string

const (
	ActionStart Action = "start"
	ActionEnd   Action = "end"
)

// Event is one logged start/end action. The log is append-only: events are
// never edited or deleted, and they are interpreted in storage order.
type Event struct {
	ID        string
	UserID    int64
	Username  string
	Action    Action
	Timestamp time.Time

	// Duration is a human-readable HH:MM:SS string carried on end events.
	// Informational only; it is never re-parsed as authoritative.
	Duration string
}

// FormatClock renders a duration as HH:MM:SS.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d.Seconds())
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}
