package usecase

import (
	"context"
	"errors"
	"time"

	"session-stats-service/internal/stats/core/domain"
	"session-stats-service/internal/stats/core/ports"
)

var (
	ErrInvalidUser   = errors.New("invalid user id")
	ErrInvalidWindow = errors.New("invalid window")
)

type GetWindowStatsUseCase struct {
	reader ports.EventReaderPort
}

func NewGetWindowStatsUseCase(reader ports.EventReaderPort) *GetWindowStatsUseCase {
	return &GetWindowStatsUseCase{reader: reader}
}

type GetWindowStatsInput struct {
	UserID int64
	Window domain.Window

	// Now anchors the calendar window; zero means time.Now(). It is
	// captured once per request so the window boundary cannot shift
	// mid-computation.
	Now time.Time
}

func (uc *GetWindowStatsUseCase) Execute(ctx context.Context, in GetWindowStatsInput) (domain.WindowStats, error) {
	if in.UserID <= 0 {
		return domain.WindowStats{}, ErrInvalidUser
	}
	if !in.Window.Valid() {
		return domain.WindowStats{}, ErrInvalidWindow
	}

	now := in.Now
	if now.IsZero() {
		now = time.Now()
	}

	events, err := uc.reader.LoadEvents(ctx)
	if err != nil {
		return domain.WindowStats{}, err
	}

	sessions := domain.ReconstructSessions(events, in.UserID, in.Window.Filter(now))

	return domain.Aggregate(sessions), nil
}
