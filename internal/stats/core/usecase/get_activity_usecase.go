package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"session-stats-service/internal/stats/core/domain"
	"session-stats-service/internal/stats/core/ports"
)

var ErrInvalidDays = errors.New("invalid days value")

const (
	defaultActivityDays = 30
	maxActivityDays     = 365
)

type GetActivityUseCase struct {
	reader ports.EventReaderPort
}

func NewGetActivityUseCase(reader ports.EventReaderPort) *GetActivityUseCase {
	return &GetActivityUseCase{reader: reader}
}

type GetActivityInput struct {
	UserID int64
	Days   int // 0 means the default of 30
	Now    time.Time
}

type DailyTotal struct {
	Date    time.Time
	Minutes float64
}

type SessionSpan struct {
	Start time.Time
	End   time.Time
}

type DayTimeline struct {
	Date  time.Time
	Spans []SessionSpan
}

// ActivityReport feeds the chart consumers: per-date total minutes for the
// bar view and per-date session spans for the timeline view.
type ActivityReport struct {
	From        time.Time
	To          time.Time
	DailyTotals []DailyTotal
	Timelines   []DayTimeline
}

func (uc *GetActivityUseCase) Execute(ctx context.Context, in GetActivityInput) (*ActivityReport, error) {
	if in.UserID <= 0 {
		return nil, ErrInvalidUser
	}

	days := in.Days
	if days == 0 {
		days = defaultActivityDays
	}
	if days < 0 || days > maxActivityDays {
		return nil, ErrInvalidDays
	}

	now := in.Now
	if now.IsZero() {
		now = time.Now()
	}

	events, err := uc.reader.LoadEvents(ctx)
	if err != nil {
		return nil, err
	}

	// Window on event timestamps before pairing: a session counts only
	// when both endpoints fall inside the window.
	recent := domain.FilterEvents(events, domain.RecentFilter(now, days))
	sessions := domain.ReconstructSessions(recent, in.UserID, nil)

	totals := make(map[time.Time]float64)
	spans := make(map[time.Time][]SessionSpan)
	for _, s := range sessions {
		day := dateOf(s.Start, now.Location())
		totals[day] += s.Duration.Minutes()
		spans[day] = append(spans[day], SessionSpan{Start: s.Start, End: s.End})
	}

	dates := make([]time.Time, 0, len(totals))
	for day := range totals {
		dates = append(dates, day)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	report := &ActivityReport{
		From:        now.AddDate(0, 0, -days),
		To:          now,
		DailyTotals: make([]DailyTotal, 0, len(dates)),
		Timelines:   make([]DayTimeline, 0, len(dates)),
	}
	for _, day := range dates {
		report.DailyTotals = append(report.DailyTotals, DailyTotal{Date: day, Minutes: totals[day]})
		report.Timelines = append(report.Timelines, DayTimeline{Date: day, Spans: spans[day]})
	}

	return report, nil
}

func dateOf(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
