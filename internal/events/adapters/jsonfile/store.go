// Package jsonfile persists the event log as a single JSON array on disk,
// the same format the original chat bot wrote. Append rewrites the whole
// array through a temp file + rename so readers never observe a torn write.
package jsonfile

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"session-stats-service/internal/events/core/domain"
	"session-stats-service/internal/events/core/ports"
)

type Store struct {
	path string

	// Serializes in-process writers; load-then-rewrite is not safe to
	// interleave. Cross-process writers remain the caller's problem.
	mu sync.Mutex
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

var _ ports.EventLogPort = (*Store)(nil)

type record struct {
	ID        string `json:"id,omitempty"`
	UserID    int64  `json:"user_id"`
	Username  string `json:"username,omitempty"`
	Action    string `json:"action"`
	Timestamp string `json:"timestamp"`
	Duration  string `json:"duration,omitempty"`
}

// LoadEvents returns the full log in file order. A missing, empty, or
// unparsable file loads as an empty log; the statistics pipeline must never
// crash on a corrupted store.
func (s *Store) LoadEvents(ctx context.Context) ([]domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadLocked(), nil
}

func (s *Store) AppendEvent(ctx context.Context, e domain.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := s.loadRecordsLocked()
	records = append(records, record{
		ID:        e.ID,
		UserID:    e.UserID,
		Username:  e.Username,
		Action:    string(e.Action),
		Timestamp: e.Timestamp.Format(time.RFC3339Nano),
		Duration:  e.Duration,
	})

	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return err
	}

	return s.replaceFile(data)
}

func (s *Store) loadLocked() []domain.Event {
	records := s.loadRecordsLocked()

	events := make([]domain.Event, 0, len(records))
	for _, r := range records {
		ts, err := time.Parse(time.RFC3339Nano, r.Timestamp)
		if err != nil {
			continue
		}
		events = append(events, domain.Event{
			ID:        r.ID,
			UserID:    r.UserID,
			Username:  r.Username,
			Action:    domain.Action(r.Action),
			Timestamp: ts,
			Duration:  r.Duration,
		})
	}

	return events
}

func (s *Store) loadRecordsLocked() []record {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil
	}

	return records
}

func (s *Store) replaceFile(data []byte) error {
	dir := filepath.Dir(s.path)

	tmp, err := os.CreateTemp(dir, ".events-*.json")
	if err != nil {
		return err
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	return nil
}
