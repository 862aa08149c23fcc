package domain

import (
	"fmt"
	"math"
	"time"

	eventdomain "session-stats-service/internal/events/core/domain"
)

// NoData is the rendered value for aggregates over zero sessions. A user
// with no sessions is distinct from a user whose sessions were zero-length.
const NoData = "N/A"

// WindowStats is the aggregate over one filtered session set. The duration
// fields are meaningful only when TotalSessions > 0; use the label methods
// for display.
type WindowStats struct {
	TotalSessions   int
	AverageDuration time.Duration
	MaxDuration     time.Duration
	TotalDuration   time.Duration
}

// Aggregate reduces sessions to a WindowStats.
func Aggregate(sessions []Session) WindowStats {
	stats := WindowStats{TotalSessions: len(sessions)}
	if len(sessions) == 0 {
		return stats
	}

	for _, s := range sessions {
		stats.TotalDuration += s.Duration
		if s.Duration > stats.MaxDuration {
			stats.MaxDuration = s.Duration
		}
	}
	stats.AverageDuration = stats.TotalDuration / time.Duration(len(sessions))

	return stats
}

// AverageLabel renders the average duration to the nearest minute.
func (s WindowStats) AverageLabel() string {
	if s.TotalSessions == 0 {
		return NoData
	}
	return minutesLabel(s.AverageDuration)
}

// MaxLabel renders the maximum duration to the nearest minute.
func (s WindowStats) MaxLabel() string {
	if s.TotalSessions == 0 {
		return NoData
	}
	return minutesLabel(s.MaxDuration)
}

// TotalLabel renders the total duration as HH:MM:SS.
func (s WindowStats) TotalLabel() string {
	if s.TotalSessions == 0 {
		return NoData
	}
	return eventdomain.FormatClock(s.TotalDuration)
}

func minutesLabel(d time.Duration) string {
	return fmt.Sprintf("%d min", int(math.Round(d.Minutes())))
}
