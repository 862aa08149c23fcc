package postgres

import (
	"context"
	"time"

	"session-stats-service/internal/events/core/domain"
	"session-stats-service/internal/events/core/ports"
)

type EventLog struct {
	db DB
}

func NewEventLog(db DB) *EventLog {
	return &EventLog{db: db}
}

var _ ports.EventLogPort = (*EventLog)(nil)

// SQL templates
const createSchemaSQL = `
CREATE TABLE IF NOT EXISTS events (
    seq        BIGSERIAL PRIMARY KEY,
    id         TEXT,
    user_id    BIGINT NOT NULL,
    username   TEXT,
    action     TEXT NOT NULL,
    event_time TIMESTAMPTZ NOT NULL,
    duration   TEXT
);

CREATE INDEX IF NOT EXISTS idx_events_user_id ON events (user_id);
`

const insertEventSQL = `
INSERT INTO events (
    id,
    user_id,
    username,
    action,
    event_time,
    duration
) VALUES (
    $1, $2, $3, $4, $5, $6
);
`

const selectEventsSQL = `
SELECT
    id,
    user_id,
    username,
    action,
    event_time,
    duration
FROM events
ORDER BY seq;
`

// EnsureSchema creates the events table if it does not exist, so a fresh
// database behaves like a missing log file rather than a crash.
func (l *EventLog) EnsureSchema(ctx context.Context) error {
	_, err := l.db.ExecContext(ctx, createSchemaSQL)
	return err
}

func (l *EventLog) AppendEvent(ctx context.Context, e domain.Event) error {
	var username any
	if e.Username != "" {
		username = e.Username
	}
	var duration any
	if e.Duration != "" {
		duration = e.Duration
	}

	_, err := l.db.ExecContext(ctx, insertEventSQL,
		e.ID,
		e.UserID,
		username,
		e.Action,
		e.Timestamp,
		duration,
	)

	return err
}

// LoadEvents returns the full log in insertion order (the serial key, not a
// re-sort on event_time: storage order is the contract).
func (l *EventLog) LoadEvents(ctx context.Context) ([]domain.Event, error) {
	rows, err := l.db.QueryContext(ctx, selectEventsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var (
			e         domain.Event
			username  *string
			action    string
			eventTime time.Time
			duration  *string
		)
		if err := rows.Scan(&e.ID, &e.UserID, &username, &action, &eventTime, &duration); err != nil {
			return nil, err
		}
		if username != nil {
			e.Username = *username
		}
		e.Action = domain.Action(action)
		e.Timestamp = eventTime
		if duration != nil {
			e.Duration = *duration
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
