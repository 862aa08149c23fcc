package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"session-stats-service/internal/events/core/domain"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "log.json"))
}

func TestLoadEvents_MissingFile(t *testing.T) {
	store := tempStore(t)

	events, err := store.LoadEvents(context.Background())

	if err != nil {
		t.Fatalf("a missing file must not error: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("expected an empty log, got %d events", len(events))
	}
}

func TestLoadEvents_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("failed to write corrupt file: %v", err)
	}
	store := NewStore(path)

	events, err := store.LoadEvents(context.Background())

	if err != nil {
		t.Fatalf("a corrupt file must not error: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("expected an empty log, got %d events", len(events))
	}
}

func TestAppendEvent_RoundTrip(t *testing.T) {
	store := tempStore(t)
	ctx := context.Background()

	e := domain.Event{
		ID:        "evt-1",
		UserID:    42,
		Username:  "alice",
		Action:    domain.ActionEnd,
		Timestamp: time.Date(2024, time.March, 1, 10, 30, 0, 0, time.UTC),
		Duration:  "00:30:00",
	}

	if err := store.AppendEvent(ctx, e); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	events, err := store.LoadEvents(ctx)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}

	got := events[0]
	if got.ID != e.ID || got.UserID != e.UserID || got.Username != e.Username ||
		got.Action != e.Action || got.Duration != e.Duration {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if !got.Timestamp.Equal(e.Timestamp) {
		t.Fatalf("expected timestamp %v, got %v", e.Timestamp, got.Timestamp)
	}
}

func TestAppendEvent_PreservesOrder(t *testing.T) {
	store := tempStore(t)
	ctx := context.Background()

	base := time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		e := domain.Event{
			ID:        string(rune('a' + i)),
			UserID:    42,
			Action:    domain.ActionStart,
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		}
		if err := store.AppendEvent(ctx, e); err != nil {
			t.Fatalf("append %d failed: %v", i, err)
		}
	}

	events, err := store.LoadEvents(ctx)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	for i, id := range []string{"a", "b", "c"} {
		if events[i].ID != id {
			t.Fatalf("expected event %d to be %q, got %q", i, id, events[i].ID)
		}
	}
}

func TestLoadEvents_Idempotent(t *testing.T) {
	store := tempStore(t)
	ctx := context.Background()

	e := domain.Event{
		UserID:    42,
		Action:    domain.ActionStart,
		Timestamp: time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC),
	}
	if err := store.AppendEvent(ctx, e); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	first, err := store.LoadEvents(ctx)
	if err != nil {
		t.Fatalf("first load failed: %v", err)
	}
	second, err := store.LoadEvents(ctx)
	if err != nil {
		t.Fatalf("second load failed: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("loads differ: %+v vs %+v", first, second)
	}
}

func TestLoadEvents_SkipsUnparsableTimestamps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.json")
	data := `[
        {"user_id": 1, "action": "start", "timestamp": "not-a-time"},
        {"user_id": 1, "action": "start", "timestamp": "2024-03-01T10:00:00Z"}
    ]`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("failed to seed file: %v", err)
	}
	store := NewStore(path)

	events, err := store.LoadEvents(context.Background())

	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected the bad record to be skipped, got %d events", len(events))
	}
}
