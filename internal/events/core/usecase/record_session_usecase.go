package usecase

import (
	"context"
	"errors"
	"time"

	"session-stats-service/internal/events/core/domain"
	"session-stats-service/internal/events/core/ports"

	"github.com/google/uuid"
)

var (
	ErrInvalidUser   = errors.New("invalid user id")
	ErrNoOpenSession = errors.New("no open session for user")
)

type RecordSessionUseCase struct {
	log ports.EventLogPort
}

func NewRecordSessionUseCase(log ports.EventLogPort) *RecordSessionUseCase {
	return &RecordSessionUseCase{log: log}
}

type StartSessionInput struct {
	UserID   int64
	Username string

	// Now overrides the event timestamp; zero means time.Now().
	Now time.Time
}

// StartSession appends a start event. An earlier start that was never closed
// is not an error: the reconstruction pairing discards it.
func (uc *RecordSessionUseCase) StartSession(ctx context.Context, in StartSessionInput) (*domain.Event, error) {
	if in.UserID <= 0 {
		return nil, ErrInvalidUser
	}

	now := in.Now
	if now.IsZero() {
		now = time.Now()
	}

	e := domain.Event{
		ID:        uuid.NewString(),
		UserID:    in.UserID,
		Username:  in.Username,
		Action:    domain.ActionStart,
		Timestamp: now,
	}

	if err := uc.log.AppendEvent(ctx, e); err != nil {
		return nil, err
	}

	return &e, nil
}

type EndSessionInput struct {
	UserID   int64
	Username string
	Now      time.Time
}

type EndSessionResult struct {
	Event    domain.Event
	Start    time.Time
	End      time.Time
	Duration time.Duration
}

// EndSession closes the user's open session, if any. The open start is
// reconstructed from the log on every call rather than remembered in process
// memory, so a restart between start and end loses nothing.
func (uc *RecordSessionUseCase) EndSession(ctx context.Context, in EndSessionInput) (*EndSessionResult, error) {
	if in.UserID <= 0 {
		return nil, ErrInvalidUser
	}

	now := in.Now
	if now.IsZero() {
		now = time.Now()
	}

	events, err := uc.log.LoadEvents(ctx)
	if err != nil {
		return nil, err
	}

	start, open := openStart(events, in.UserID)
	if !open {
		return nil, ErrNoOpenSession
	}

	duration := now.Sub(start)
	if duration < 0 {
		duration = 0
	}

	e := domain.Event{
		ID:        uuid.NewString(),
		UserID:    in.UserID,
		Username:  in.Username,
		Action:    domain.ActionEnd,
		Timestamp: now,
		Duration:  domain.FormatClock(duration),
	}

	if err := uc.log.AppendEvent(ctx, e); err != nil {
		return nil, err
	}

	return &EndSessionResult{
		Event:    e,
		Start:    start,
		End:      now,
		Duration: duration,
	}, nil
}

// openStart scans the user's events with the same overwrite rule the session
// reconstruction uses: the latest unconsumed start wins.
func openStart(events []domain.Event, userID int64) (time.Time, bool) {
	var pending time.Time
	open := false

	for _, e := range events {
		if e.UserID != userID {
			continue
		}
		switch e.Action {
		case domain.ActionStart:
			pending = e.Timestamp
			open = true
		case domain.ActionEnd:
			open = false
		}
	}

	return pending, open
}
