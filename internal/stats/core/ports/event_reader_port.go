package ports

import (
	"context"

	eventdomain "session-stats-service/internal/events/core/domain"
)

// EventReaderPort is the read-only view of the event log the statistics side
// consumes. All aggregation re-derives sessions from the full log; nothing
// is cached between requests.
type EventReaderPort interface {
	LoadEvents(ctx context.Context) ([]eventdomain.Event, error)
}
