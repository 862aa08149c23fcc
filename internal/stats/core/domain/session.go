// Package domain holds the session reconstruction and aggregation logic:
// pairing a flat start/end event log into closed sessions and reducing those
// to windowed statistics and distribution fits.
package domain

import (
	"time"

	eventdomain "session-stats-service/internal/events/core/domain"
)

// Session is a closed start-to-end interval for one user. Sessions are
// derived from the log on every request and never persisted.
type Session struct {
	UserID   int64
	Start    time.Time
	End      time.Time
	Duration time.Duration
}

// TimeFilter reports whether a timestamp belongs to a window. A nil filter
// keeps everything.
type TimeFilter func(t time.Time) bool

// ReconstructSessions pairs one user's events into closed sessions in a
// single pass over the log.
//
// Pairing policy: a start event overwrites any earlier unconsumed start, so
// a double-tapped start silently drops the first interval; an end event with
// no pending start is discarded. This yields strictly non-overlapping
// sessions with at most one open at a time. It is a policy choice, not the
// only defensible reconciliation of a mismatched log.
//
// When keep is non-nil, only sessions whose start timestamp satisfies it are
// returned. Output order follows log order.
func ReconstructSessions(events []eventdomain.Event, userID int64, keep TimeFilter) []Session {
	var (
		sessions []Session
		pending  time.Time
		open     bool
	)

	for _, e := range events {
		if e.UserID != userID {
			continue
		}

		switch e.Action {
		case eventdomain.ActionStart:
			pending = e.Timestamp
			open = true
		case eventdomain.ActionEnd:
			if !open {
				continue
			}
			open = false
			if e.Timestamp.Before(pending) {
				continue
			}
			if keep != nil && !keep(pending) {
				continue
			}
			sessions = append(sessions, Session{
				UserID:   userID,
				Start:    pending,
				End:      e.Timestamp,
				Duration: e.Timestamp.Sub(pending),
			})
		}
	}

	return sessions
}

// FilterEvents keeps the events whose own timestamp satisfies the filter.
// Used by the recent-activity views, which window on event timestamps before
// pairing: a session counts only when both of its endpoints fall inside the
// window, since a surviving lone endpoint cannot pair.
func FilterEvents(events []eventdomain.Event, keep TimeFilter) []eventdomain.Event {
	if keep == nil {
		return events
	}

	var out []eventdomain.Event
	for _, e := range events {
		if keep(e.Timestamp) {
			out = append(out, e)
		}
	}

	return out
}
