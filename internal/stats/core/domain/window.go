package domain

import "time"

// Window is a calendar time range anchored at a reference instant.
type Window string

const (
	WindowDay   Window = "day"
	WindowMonth Window = "month"
	WindowYear  Window = "year"
	WindowAll   Window = "all"
)

func (w Window) Valid() bool {
	switch w {
	case WindowDay, WindowMonth, WindowYear, WindowAll:
		return true
	}
	return false
}

// Filter returns the membership test for the window anchored at now.
// Calendar comparisons use now's location. WindowAll returns nil, which
// ReconstructSessions treats as unconditional.
func (w Window) Filter(now time.Time) TimeFilter {
	switch w {
	case WindowDay:
		return func(t time.Time) bool {
			t = t.In(now.Location())
			return t.Year() == now.Year() && t.YearDay() == now.YearDay()
		}
	case WindowMonth:
		return func(t time.Time) bool {
			t = t.In(now.Location())
			return t.Year() == now.Year() && t.Month() == now.Month()
		}
	case WindowYear:
		return func(t time.Time) bool {
			return t.In(now.Location()).Year() == now.Year()
		}
	default:
		return nil
	}
}

// RecentFilter keeps timestamps within the most recent `days` days of now,
// i.e. now-days < t <= now. Future timestamps are out of window.
func RecentFilter(now time.Time, days int) TimeFilter {
	cutoff := now.AddDate(0, 0, -days)
	return func(t time.Time) bool {
		return t.After(cutoff) && !t.After(now)
	}
}
