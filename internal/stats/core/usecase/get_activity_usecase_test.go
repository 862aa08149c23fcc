package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	eventdomain "session-stats-service/internal/events/core/domain"
	"session-stats-service/internal/stats/core/usecase"
)

func TestGetActivity_GroupsByStartDate(t *testing.T) {
	now := time.Date(2024, time.June, 15, 18, 0, 0, 0, time.UTC)

	day1 := time.Date(2024, time.June, 10, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, time.June, 12, 14, 0, 0, 0, time.UTC)

	var events []eventdomain.Event
	events = append(events, pair(42, day1, 30*time.Minute)...)
	events = append(events, pair(42, day1.Add(3*time.Hour), 15*time.Minute)...)
	events = append(events, pair(42, day2, time.Hour)...)

	uc := usecase.NewGetActivityUseCase(&fakeEventReader{events: events})

	report, err := uc.Execute(context.Background(), usecase.GetActivityInput{
		UserID: 42,
		Now:    now,
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.DailyTotals) != 2 {
		t.Fatalf("expected 2 days, got %d", len(report.DailyTotals))
	}
	if report.DailyTotals[0].Date.Day() != 10 || report.DailyTotals[1].Date.Day() != 12 {
		t.Fatalf("days out of order: %v", report.DailyTotals)
	}
	if report.DailyTotals[0].Minutes != 45 {
		t.Fatalf("expected 45 minutes on day 1, got %v", report.DailyTotals[0].Minutes)
	}
	if report.DailyTotals[1].Minutes != 60 {
		t.Fatalf("expected 60 minutes on day 2, got %v", report.DailyTotals[1].Minutes)
	}

	if len(report.Timelines) != 2 {
		t.Fatalf("expected 2 timeline days, got %d", len(report.Timelines))
	}
	if len(report.Timelines[0].Spans) != 2 {
		t.Fatalf("expected 2 spans on day 1, got %d", len(report.Timelines[0].Spans))
	}
}

func TestGetActivity_ExcludesEventsOutsideWindow(t *testing.T) {
	now := time.Date(2024, time.June, 15, 18, 0, 0, 0, time.UTC)

	var events []eventdomain.Event
	// 31 days back: both endpoints out of window.
	events = append(events, pair(42, now.AddDate(0, 0, -31), 30*time.Minute)...)
	// Straddling the cutoff: the start is out, so its end cannot pair.
	events = append(events, eventdomain.Event{
		UserID: 42, Action: eventdomain.ActionStart, Timestamp: now.AddDate(0, 0, -30).Add(-time.Hour),
	})
	events = append(events, eventdomain.Event{
		UserID: 42, Action: eventdomain.ActionEnd, Timestamp: now.AddDate(0, 0, -29),
	})
	// Fully inside.
	events = append(events, pair(42, now.Add(-48*time.Hour), 20*time.Minute)...)

	uc := usecase.NewGetActivityUseCase(&fakeEventReader{events: events})

	report, err := uc.Execute(context.Background(), usecase.GetActivityInput{
		UserID: 42,
		Now:    now,
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.DailyTotals) != 1 {
		t.Fatalf("expected only the in-window session, got %d days", len(report.DailyTotals))
	}
	if report.DailyTotals[0].Minutes != 20 {
		t.Fatalf("expected 20 minutes, got %v", report.DailyTotals[0].Minutes)
	}
}

func TestGetActivity_DefaultAndInvalidDays(t *testing.T) {
	uc := usecase.NewGetActivityUseCase(&fakeEventReader{})

	now := time.Date(2024, time.June, 15, 18, 0, 0, 0, time.UTC)
	report, err := uc.Execute(context.Background(), usecase.GetActivityInput{UserID: 42, Now: now})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := report.To.Sub(report.From); got != 30*24*time.Hour {
		t.Fatalf("expected a 30-day default window, got %v", got)
	}

	_, err = uc.Execute(context.Background(), usecase.GetActivityInput{UserID: 42, Days: -1})
	if !errors.Is(err, usecase.ErrInvalidDays) {
		t.Fatalf("expected ErrInvalidDays, got %v", err)
	}

	_, err = uc.Execute(context.Background(), usecase.GetActivityInput{UserID: 42, Days: 1000})
	if !errors.Is(err, usecase.ErrInvalidDays) {
		t.Fatalf("expected ErrInvalidDays, got %v", err)
	}
}
