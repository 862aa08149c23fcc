// Package sqlite backs the event log with an embedded database for
// single-binary deployments, behind the same load/append contract as the
// JSON file store.
package sqlite

import (
	"context"
	"database/sql"
	"time"

	"session-stats-service/internal/events/core/domain"
	"session-stats-service/internal/events/core/ports"

	_ "modernc.org/sqlite"
)

type Store struct {
	db *sql.DB
}

func NewStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	s := &Store{db: db}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

var _ ports.EventLogPort = (*Store)(nil)

func (s *Store) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS events (
		seq        INTEGER PRIMARY KEY AUTOINCREMENT,
		id         TEXT,
		user_id    INTEGER NOT NULL,
		username   TEXT,
		action     TEXT NOT NULL,
		event_time TEXT NOT NULL,
		duration   TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_events_user_id ON events (user_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

func (s *Store) AppendEvent(ctx context.Context, e domain.Event) error {
	query := `
		INSERT INTO events (id, user_id, username, action, event_time, duration)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		e.ID,
		e.UserID,
		e.Username,
		string(e.Action),
		e.Timestamp.Format(time.RFC3339Nano),
		e.Duration,
	)

	return err
}

func (s *Store) LoadEvents(ctx context.Context) ([]domain.Event, error) {
	query := `
		SELECT id, user_id, username, action, event_time, duration
		FROM events
		ORDER BY seq
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var (
			e         domain.Event
			action    string
			eventTime string
		)
		if err := rows.Scan(&e.ID, &e.UserID, &e.Username, &action, &eventTime, &e.Duration); err != nil {
			return nil, err
		}
		ts, err := time.Parse(time.RFC3339Nano, eventTime)
		if err != nil {
			continue
		}
		e.Action = domain.Action(action)
		e.Timestamp = ts
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
