package ports

import (
	"context"

	"session-stats-service/internal/events/core/domain"
)

type EventLogPort interface {
	// LoadEvents returns every event ever recorded, in storage order.
	// A missing or empty backing resource loads as an empty sequence.
	LoadEvents(ctx context.Context) ([]domain.Event, error)

	// AppendEvent adds one event to the end of the log.
	AppendEvent(ctx context.Context, e domain.Event) error
}
