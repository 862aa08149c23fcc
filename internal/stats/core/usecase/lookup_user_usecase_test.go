package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	eventdomain "session-stats-service/internal/events/core/domain"
	"session-stats-service/internal/stats/core/usecase"
)

func lookupEvents() []eventdomain.Event {
	base := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)
	return []eventdomain.Event{
		{UserID: 7, Username: "Alice", Action: eventdomain.ActionStart, Timestamp: base},
		{UserID: 9, Username: "bob", Action: eventdomain.ActionStart, Timestamp: base.Add(time.Hour)},
		// Alice renamed her account; the id stays the same, but a later
		// event may also reassign the display name to a different user.
		{UserID: 8, Username: "alice", Action: eventdomain.ActionStart, Timestamp: base.Add(2 * time.Hour)},
	}
}

func TestLookupUser_CaseInsensitive(t *testing.T) {
	uc := usecase.NewLookupUserUseCase(&fakeEventReader{events: lookupEvents()})

	userID, err := uc.Execute(context.Background(), usecase.LookupUserInput{Username: "BOB"})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if userID != 9 {
		t.Fatalf("expected user 9, got %d", userID)
	}
}

func TestLookupUser_LatestSightingWins(t *testing.T) {
	uc := usecase.NewLookupUserUseCase(&fakeEventReader{events: lookupEvents()})

	userID, err := uc.Execute(context.Background(), usecase.LookupUserInput{Username: "alice"})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if userID != 8 {
		t.Fatalf("expected the latest match (user 8), got %d", userID)
	}
}

func TestLookupUser_NotFound(t *testing.T) {
	uc := usecase.NewLookupUserUseCase(&fakeEventReader{events: lookupEvents()})

	_, err := uc.Execute(context.Background(), usecase.LookupUserInput{Username: "carol"})

	if !errors.Is(err, usecase.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestLookupUser_BlankUsername(t *testing.T) {
	uc := usecase.NewLookupUserUseCase(&fakeEventReader{})

	_, err := uc.Execute(context.Background(), usecase.LookupUserInput{Username: "   "})

	if !errors.Is(err, usecase.ErrInvalidUsername) {
		t.Fatalf("expected ErrInvalidUsername, got %v", err)
	}
}
